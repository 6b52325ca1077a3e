package rules

import (
	"fmt"
	"slices"
)

// InList validates that the value is one of the comma-separated list
// entries. Entries are trimmed of surrounding whitespace before the exact
// string comparison.
func InList(field, value, list string) Rule {
	return Rule{
		Check: func() (bool, error) {
			return slices.Contains(splitList(list), value), nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", list),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field": field,
				"list":  list,
			},
		},
	}
}

// NotInList is the exact negation of InList.
func NotInList(field, value, list string) Rule {
	return Rule{
		Check: func() (bool, error) {
			return !slices.Contains(splitList(list), value), nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not be one of: %s", list),
			TranslationKey: "validation.not_in_list",
			TranslationValues: map[string]any{
				"field": field,
				"list":  list,
			},
		},
	}
}
