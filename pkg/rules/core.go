package rules

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation failures.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
//
// Check reports whether the value under test passes. A false result is a
// soft validation failure described by Error. A non-nil error is a hard
// failure (missing rule arguments, malformed store spec, store I/O) and is
// never folded into ValidationErrors.
type Rule struct {
	Check func() (bool, error)
	Error ValidationError
}

// Apply executes rules in order. Soft failures are aggregated into
// ValidationErrors; the first hard error aborts evaluation and is returned
// unmodified.
func Apply(rules ...Rule) error {
	var verrs ValidationErrors

	for _, rule := range rules {
		ok, err := rule.Check()
		if err != nil {
			return err
		}
		if !ok {
			verrs = append(verrs, rule.Error)
		}
	}

	if verrs.IsEmpty() {
		return nil
	}

	return verrs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
