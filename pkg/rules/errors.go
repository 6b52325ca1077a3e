package rules

import "errors"

// Hard errors returned by rule checks. These signal caller mistakes or
// collaborator failures, never an invalid input value.
var (
	// ErrMissingFields is returned when a rule that depends on sibling fields
	// is invoked without a field list parameter.
	ErrMissingFields = errors.New("rule requires a comma-separated field list")

	// ErrMissingSubmission is returned when a cross-field rule is invoked
	// without submission data to resolve field references against.
	ErrMissingSubmission = errors.New("rule requires submission data")

	// ErrInvalidStoreSpec is returned when a store-backed rule is given a
	// parameter without a resolvable table and column, or no store at all.
	ErrInvalidStoreSpec = errors.New("store rule requires a table.column spec and a store")
)
