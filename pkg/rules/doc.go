// Package rules provides a set of named field-validation predicates that
// test a single submitted value, optionally against the sibling fields of
// the same submission or against a persistent store.
//
// Each exported rule constructor returns a Rule value pairing a boolean
// Check closure with translation-friendly error metadata. Rules are
// evaluated with the Apply helper, which aggregates soft failures into a
// ValidationErrors slice implementing the error interface.
//
// # Architecture
//
// Rule families are grouped per source file (crossfield_rules.go,
// comparison_rules.go, length_rules.go, choice_rules.go, unique_rules.go).
// Every rule parses its own comma-separated parameter string through the
// shared helpers in params.go, so parameter shapes are validated once and
// carried as typed values. There is no hidden global state; the package is
// stateless and goroutine-safe, and no rule mutates the submission it is
// given.
//
// Cross-field rules resolve sibling references through Submission.Lookup,
// which supports dotted paths into nested maps and slices with a
// wildcard-style descent into slice elements.
//
// # Usage
//
//	err := rules.Apply(
//		rules.Required("email", email),
//		rules.MaxLength("email", email, "254"),
//		rules.Matches("password_confirm", confirm, "password", data),
//		rules.IsUnique(ctx, store, "email", email, "users.email,id,{id}", data),
//	)
//
// # Error Handling
//
// A failed check is the expected outcome of validation and surfaces as a
// ValidationErrors value. Hard errors are different: missing rule arguments
// (ErrMissingFields, ErrMissingSubmission), malformed store specs
// (ErrInvalidStoreSpec), and store I/O failures abort Apply immediately and
// propagate unmodified, so a broken configuration is never reported to the
// user as an invalid input.
//
// # Performance Considerations
//
// All rules except IsUnique and IsNotUnique are allocation-light, in-memory
// comparisons. The store-backed rules perform one synchronous read per
// check; callers validating many fields may evaluate independent rules
// concurrently since no rule depends on another's execution order.
package rules
