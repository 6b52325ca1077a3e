package rules

import "fmt"

// Equals validates strict string equality with the rule parameter.
func Equals(field, value, param string) Rule {
	return Rule{
		Check: func() (bool, error) {
			return value == param, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must equal %s", param),
			TranslationKey: "validation.equals",
			TranslationValues: map[string]any{
				"field": field,
				"param": param,
			},
		},
	}
}

// NotEquals validates strict string inequality with the rule parameter.
func NotEquals(field, value, param string) Rule {
	return Rule{
		Check: func() (bool, error) {
			return value != param, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not equal %s", param),
			TranslationKey: "validation.not_equals",
			TranslationValues: map[string]any{
				"field": field,
				"param": param,
			},
		},
	}
}

// GreaterThan validates that the value, parsed as a number, is strictly
// greater than the bound. A non-numeric value or bound fails the check
// rather than erroring.
func GreaterThan(field, value, bound string) Rule {
	return numericRule(field, value, bound, "validation.greater_than",
		fmt.Sprintf("must be greater than %s", bound),
		func(v, b float64) bool { return v > b })
}

// GreaterThanEqual validates that the value, parsed as a number, is greater
// than or equal to the bound.
func GreaterThanEqual(field, value, bound string) Rule {
	return numericRule(field, value, bound, "validation.greater_than_equal",
		fmt.Sprintf("must be greater than or equal to %s", bound),
		func(v, b float64) bool { return v >= b })
}

// LessThan validates that the value, parsed as a number, is strictly less
// than the bound.
func LessThan(field, value, bound string) Rule {
	return numericRule(field, value, bound, "validation.less_than",
		fmt.Sprintf("must be less than %s", bound),
		func(v, b float64) bool { return v < b })
}

// LessThanEqual validates that the value, parsed as a number, is less than
// or equal to the bound.
func LessThanEqual(field, value, bound string) Rule {
	return numericRule(field, value, bound, "validation.less_than_equal",
		fmt.Sprintf("must be less than or equal to %s", bound),
		func(v, b float64) bool { return v <= b })
}

func numericRule(field, value, bound, key, message string, cmp func(v, b float64) bool) Rule {
	return Rule{
		Check: func() (bool, error) {
			v, ok := parseFloat(value)
			if !ok {
				return false, nil
			}
			b, ok := parseFloat(bound)
			if !ok {
				return false, nil
			}
			return cmp(v, b), nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
				"bound": bound,
			},
		},
	}
}
