package rules

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// placeholderRe matches a {name} exclusion value the caller was expected to
// substitute before invoking the rule. Such values disable the exclusion.
var placeholderRe = regexp.MustCompile(`^\{(\w+)\}$`)

// splitList splits a comma-separated rule parameter, trimming surrounding
// whitespace from each entry. Empty entries are kept so that membership
// checks against an explicit empty string still work.
func splitList(param string) []string {
	if param == "" {
		return nil
	}
	parts := strings.Split(param, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// parseLengths extracts the numeric entries from a comma-separated length
// list. Non-numeric entries are ignored rather than rejected.
func parseLengths(param string) []int {
	var lengths []int
	for _, p := range splitList(param) {
		if n, err := strconv.Atoi(p); err == nil {
			lengths = append(lengths, n)
		}
	}
	return lengths
}

// Exclusion narrows or excludes a row in a store existence query. The zero
// value means no exclusion applies.
type Exclusion struct {
	Column string
	Value  string
	active bool
}

// NoExclusion returns the inactive Exclusion.
func NoExclusion() Exclusion {
	return Exclusion{}
}

// ExcludeRow returns an Exclusion targeting rows where column equals value.
func ExcludeRow(column, value string) Exclusion {
	return Exclusion{Column: column, Value: value, active: true}
}

// Active reports whether the exclusion carries a column/value filter.
func (e Exclusion) Active() bool {
	return e.active
}

// StoreSpec is the parsed parameter of a store-backed rule.
type StoreSpec struct {
	Table   string
	Column  string
	Exclude Exclusion
}

// ParseStoreSpec parses "table.column[,excludeColumn,excludeValue]". A spec
// without a resolvable table and column is a configuration error. An
// exclusion value shaped like {name} is an unresolved caller placeholder and
// parses to NoExclusion.
func ParseStoreSpec(param string) (StoreSpec, error) {
	parts := splitList(param)
	if len(parts) == 0 {
		return StoreSpec{}, errors.Join(ErrInvalidStoreSpec, errors.New("empty spec"))
	}

	table, column, ok := strings.Cut(parts[0], ".")
	if !ok || table == "" || column == "" {
		return StoreSpec{}, errors.Join(ErrInvalidStoreSpec, errors.New("spec must start with table.column"))
	}

	spec := StoreSpec{Table: table, Column: column, Exclude: NoExclusion()}

	if len(parts) >= 3 && parts[1] != "" && !placeholderRe.MatchString(parts[2]) {
		spec.Exclude = ExcludeRow(parts[1], parts[2])
	}

	return spec, nil
}

// isBlank reports whether a scalar value is empty after trimming whitespace.
func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// parseFloat parses a rule operand as a number. The second return is false
// for non-numeric input, which numeric rules resolve to a failed check.
func parseFloat(value string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return f, err == nil
}
