package rules

import (
	"strconv"
	"strings"
)

// ConnectionKey is the reserved submission key naming the store connection
// group the store-backed rules should target. Lookup never resolves it as a
// field, so rules cannot reference it by accident.
const ConnectionKey = "_connection"

// Submission is the full set of submitted field values a validation pass runs
// over. Values are strings (or nil for absent inputs), nested maps, or
// slices. Rules treat it as read-only.
type Submission map[string]any

// Lookup resolves a field reference that may use a dotted path.
//
// An exact top-level key always wins, even when the key itself contains
// dots. Otherwise each dot-separated segment steps into nested maps and
// slices: map segments must match a key, slice segments may be a numeric
// index, a "*" wildcard, or a key searched for across the slice elements,
// in which case the first match wins.
//
// The second return distinguishes "not found" from a found nil or empty
// string.
func (s Submission) Lookup(path string) (any, bool) {
	if path == ConnectionKey {
		return nil, false
	}
	if v, ok := s[path]; ok {
		return v, true
	}
	if !strings.Contains(path, ".") {
		return nil, false
	}
	return search(strings.Split(path, "."), map[string]any(s))
}

// field reads an exact top-level key, excluding the reserved connection
// key. Cross-field rules resolve plain references through it.
func (s Submission) field(name string) (any, bool) {
	if name == ConnectionKey {
		return nil, false
	}
	v, ok := s[name]
	return v, ok
}

// ConnectionGroup returns the store connection group carried in the
// submission, or "" when the caller did not set one.
func (s Submission) ConnectionGroup() string {
	if g, ok := s[ConnectionKey].(string); ok {
		return g
	}
	return ""
}

func search(segments []string, node any) (any, bool) {
	if len(segments) == 0 {
		return node, true
	}
	seg, rest := segments[0], segments[1:]

	switch n := node.(type) {
	case Submission:
		return search(segments, map[string]any(n))

	case map[string]any:
		v, ok := n[seg]
		if !ok {
			return nil, false
		}
		return search(rest, v)

	case []any:
		if seg == "*" {
			for _, el := range n {
				if v, ok := search(rest, el); ok {
					return v, true
				}
			}
			return nil, false
		}
		if idx, err := strconv.Atoi(seg); err == nil {
			if idx < 0 || idx >= len(n) {
				return nil, false
			}
			return search(rest, n[idx])
		}
		// The segment names a key inside the slice elements; the index is
		// implicit and the first element that resolves wins.
		for _, el := range n {
			if v, ok := search(segments, el); ok {
				return v, true
			}
		}
		return nil, false

	default:
		return nil, false
	}
}
