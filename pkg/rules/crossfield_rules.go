package rules

import (
	"fmt"
	"strings"
)

// Differs validates that the value differs from the sibling field named by
// otherField.
//
// A plain reference must exist as an exact key in the submission; a missing
// plain field makes the check fail. A dotted reference always resolves via
// dotted-path lookup, and resolving to nothing counts as differing.
func Differs(field, value, otherField string, data Submission) Rule {
	return Rule{
		Check: func() (bool, error) {
			if strings.Contains(otherField, ".") {
				other, ok := data.Lookup(otherField)
				if !ok {
					return true, nil
				}
				return !sameValue(other, value), nil
			}
			other, ok := data.field(otherField)
			if !ok {
				return false, nil
			}
			return !sameValue(other, value), nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must differ from %s", otherField),
			TranslationKey: "validation.differs",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}

// Matches validates that the value equals the sibling field named by
// otherField. Same plain/dotted resolution asymmetry as Differs: a missing
// plain field fails the check, while a dotted reference that resolves to
// nothing simply never equals the value. A reference resolving to null never
// equals the value either, not even the empty string.
func Matches(field, value, otherField string, data Submission) Rule {
	return Rule{
		Check: func() (bool, error) {
			if strings.Contains(otherField, ".") {
				other, ok := data.Lookup(otherField)
				if !ok {
					return false, nil
				}
				return sameValue(other, value), nil
			}
			other, ok := data.field(otherField)
			if !ok {
				return false, nil
			}
			return sameValue(other, value), nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s", otherField),
			TranslationKey: "validation.matches",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}

// RequiredWith validates that the value is present whenever any of the
// comma-separated fields is present and non-empty in the submission.
//
// An empty field list or submission is a hard error, not a failed check.
func RequiredWith(field string, value any, fields string, data Submission) Rule {
	return Rule{
		Check: func() (bool, error) {
			if isBlank(fields) {
				return false, ErrMissingFields
			}
			if len(data) == 0 {
				return false, ErrMissingSubmission
			}
			if present(value) {
				return true, nil
			}
			for _, f := range splitList(fields) {
				if hasValue(f, data) {
					return false, nil
				}
			}
			return true, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("is required when %s is present", fields),
			TranslationKey: "validation.required_with",
			TranslationValues: map[string]any{
				"field":  field,
				"fields": fields,
			},
		},
	}
}

// RequiredWithout validates that the value is present unless every one of
// the comma-separated fields is present and non-empty in the submission.
//
// An empty field list or submission is a hard error, not a failed check.
func RequiredWithout(field string, value any, fields string, data Submission) Rule {
	return Rule{
		Check: func() (bool, error) {
			if isBlank(fields) {
				return false, ErrMissingFields
			}
			if len(data) == 0 {
				return false, ErrMissingSubmission
			}
			if present(value) {
				return true, nil
			}
			for _, f := range splitList(fields) {
				if !hasValue(f, data) {
					return false, nil
				}
			}
			return true, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("is required when %s is not present", fields),
			TranslationKey: "validation.required_without",
			TranslationValues: map[string]any{
				"field":  field,
				"fields": fields,
			},
		},
	}
}

// hasValue reports whether a referenced field resolves to a present,
// non-empty value. Dotted references go through dotted-path lookup; plain
// references require an exact key.
func hasValue(field string, data Submission) bool {
	var v any
	var ok bool
	if strings.Contains(field, ".") {
		v, ok = data.Lookup(field)
	} else {
		v, ok = data.field(field)
	}
	if !ok {
		return false
	}
	return present(v)
}

// sameValue compares a resolved field value with the rule value. A found
// nil is distinct from the empty string and never equals any value.
func sameValue(other any, value string) bool {
	switch t := other.(type) {
	case nil:
		return false
	case string:
		return t == value
	default:
		return fmt.Sprint(t) == value
	}
}
