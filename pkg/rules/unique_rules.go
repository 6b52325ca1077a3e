package rules

import (
	"context"
	"fmt"
)

// ExistsQuery describes a single store existence check. At most one of
// Exclude and Narrow is active for any query built by this package.
type ExistsQuery struct {
	Table  string
	Column string
	Value  string

	// Exclude removes rows matching its column/value pair from the match.
	Exclude Exclusion
	// Narrow restricts the match to rows that also satisfy its pair.
	Narrow Exclusion
	// Group selects a named store connection; empty targets the default.
	Group string
}

// Store is the narrow read contract the store-backed rules need from a
// persistence layer: does at least one row match the query. Errors from the
// store propagate to the caller unmodified; they are never interpreted as
// a validation outcome.
type Store interface {
	Exists(ctx context.Context, q ExistsQuery) (bool, error)
}

// IsUnique validates that no row in the store matches the value. The spec
// parameter is "table.column[,excludeColumn,excludeValue]"; when the
// exclusion pair is supplied and its value is not an unresolved {name}
// placeholder, the matching row is ignored, which lets updates skip the
// record being edited.
//
// The query is built fresh per check. A malformed spec or nil store is a
// hard error. The store connection group, if any, is read from the
// submission's ConnectionKey.
func IsUnique(ctx context.Context, store Store, field, value, spec string, data Submission) Rule {
	return Rule{
		Check: func() (bool, error) {
			q, err := buildQuery(store, spec, value, data)
			if err != nil {
				return false, err
			}
			exists, err := store.Exists(ctx, q)
			if err != nil {
				return false, err
			}
			return !exists, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "is already taken",
			TranslationKey: "validation.is_unique",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsNotUnique validates that at least one row in the store matches the
// value. The optional column/value pair narrows the match instead of
// excluding it: a row must satisfy both the column match and the pair.
func IsNotUnique(ctx context.Context, store Store, field, value, spec string, data Submission) Rule {
	return Rule{
		Check: func() (bool, error) {
			q, err := buildQuery(store, spec, value, data)
			if err != nil {
				return false, err
			}
			q.Narrow, q.Exclude = q.Exclude, NoExclusion()
			exists, err := store.Exists(ctx, q)
			if err != nil {
				return false, err
			}
			return exists, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "does not exist",
			TranslationKey: "validation.is_not_unique",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func buildQuery(store Store, spec, value string, data Submission) (ExistsQuery, error) {
	if store == nil {
		return ExistsQuery{}, fmt.Errorf("%w: nil store", ErrInvalidStoreSpec)
	}
	parsed, err := ParseStoreSpec(spec)
	if err != nil {
		return ExistsQuery{}, err
	}
	return ExistsQuery{
		Table:   parsed.Table,
		Column:  parsed.Column,
		Value:   value,
		Exclude: parsed.Exclude,
		Group:   data.ConnectionGroup(),
	}, nil
}
