package rules

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Required validates that a value is present: maps and other structured
// values always count as present, slices count when non-empty, and scalars
// count when non-blank after trimming whitespace.
func Required(field string, value any) Rule {
	return Rule{
		Check: func() (bool, error) {
			return present(value), nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ExactLength validates that the value's character count equals one of the
// comma-separated lengths. Length is counted in Unicode code points, not
// bytes. Non-numeric entries in the list are ignored; a list with no numeric
// entry fails the check.
func ExactLength(field, value, lengths string) Rule {
	return Rule{
		Check: func() (bool, error) {
			n := utf8.RuneCountInString(value)
			for _, want := range parseLengths(lengths) {
				if n == want {
					return true, nil
				}
			}
			return false, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %s characters long", lengths),
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"field":   field,
				"lengths": lengths,
			},
		},
	}
}

// MinLength validates that the value's character count is at least the
// numeric bound. A non-numeric bound fails the check.
func MinLength(field, value, min string) Rule {
	return Rule{
		Check: func() (bool, error) {
			n, err := strconv.Atoi(min)
			if err != nil {
				return false, nil
			}
			return utf8.RuneCountInString(value) >= n, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %s characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLength validates that the value's character count is at most the
// numeric bound. A non-numeric bound fails the check.
func MaxLength(field, value, max string) Rule {
	return Rule{
		Check: func() (bool, error) {
			n, err := strconv.Atoi(max)
			if err != nil {
				return false, nil
			}
			return utf8.RuneCountInString(value) <= n, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %s characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// present implements the Required predicate over arbitrary submission
// values.
func present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return !isBlank(v)
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]any, Submission:
		return true
	default:
		return !isBlank(fmt.Sprint(v))
	}
}
