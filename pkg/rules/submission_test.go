package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/rules"
)

func TestSubmissionLookup(t *testing.T) {
	t.Run("plain top-level key", func(t *testing.T) {
		data := rules.Submission{"email": "a@b.com"}
		v, ok := data.Lookup("email")
		require.True(t, ok)
		assert.Equal(t, "a@b.com", v)
	})

	t.Run("exact key containing dots wins over descent", func(t *testing.T) {
		data := rules.Submission{
			"a.b": "x",
			"a":   map[string]any{"b": "nested"},
		}
		v, ok := data.Lookup("a.b")
		require.True(t, ok)
		assert.Equal(t, "x", v)
	})

	t.Run("descends nested maps", func(t *testing.T) {
		data := rules.Submission{
			"user": map[string]any{
				"address": map[string]any{"city": "Kyiv"},
			},
		}
		v, ok := data.Lookup("user.address.city")
		require.True(t, ok)
		assert.Equal(t, "Kyiv", v)
	})

	t.Run("numeric segment indexes a slice", func(t *testing.T) {
		data := rules.Submission{
			"tags": []any{"go", "validation"},
		}
		v, ok := data.Lookup("tags.1")
		require.True(t, ok)
		assert.Equal(t, "validation", v)

		_, ok = data.Lookup("tags.5")
		assert.False(t, ok)
	})

	t.Run("wildcard segment searches slice elements", func(t *testing.T) {
		data := rules.Submission{
			"contacts": []any{
				map[string]any{"phone": "111"},
				map[string]any{"email": "a@b.com"},
			},
		}
		v, ok := data.Lookup("contacts.*.email")
		require.True(t, ok)
		assert.Equal(t, "a@b.com", v)
	})

	t.Run("named segment searches across slice elements without an index", func(t *testing.T) {
		data := rules.Submission{
			"contacts": []any{
				map[string]any{"phone": "111"},
				map[string]any{"email": "a@b.com"},
			},
		}
		v, ok := data.Lookup("contacts.email")
		require.True(t, ok)
		assert.Equal(t, "a@b.com", v)
	})

	t.Run("first match wins across slice elements", func(t *testing.T) {
		data := rules.Submission{
			"rows": []any{
				map[string]any{"id": "1"},
				map[string]any{"id": "2"},
			},
		}
		v, ok := data.Lookup("rows.id")
		require.True(t, ok)
		assert.Equal(t, "1", v)
	})

	t.Run("not found is distinct from found nil and found empty string", func(t *testing.T) {
		data := rules.Submission{
			"blank":   "",
			"null":    nil,
			"profile": map[string]any{"bio": nil},
		}

		v, ok := data.Lookup("blank")
		assert.True(t, ok)
		assert.Equal(t, "", v)

		v, ok = data.Lookup("null")
		assert.True(t, ok)
		assert.Nil(t, v)

		v, ok = data.Lookup("profile.bio")
		assert.True(t, ok)
		assert.Nil(t, v)

		_, ok = data.Lookup("missing")
		assert.False(t, ok)

		_, ok = data.Lookup("profile.missing")
		assert.False(t, ok)
	})

	t.Run("reserved connection key is never resolvable as a field", func(t *testing.T) {
		data := rules.Submission{rules.ConnectionKey: "analytics", "name": "john"}
		_, ok := data.Lookup(rules.ConnectionKey)
		assert.False(t, ok)
	})

	t.Run("scalar in the middle of a path stops descent", func(t *testing.T) {
		data := rules.Submission{"name": "john"}
		_, ok := data.Lookup("name.first")
		assert.False(t, ok)
	})
}

func TestConnectionGroup(t *testing.T) {
	t.Run("reads the reserved key", func(t *testing.T) {
		data := rules.Submission{rules.ConnectionKey: "analytics"}
		assert.Equal(t, "analytics", data.ConnectionGroup())
	})

	t.Run("empty when unset or not a string", func(t *testing.T) {
		assert.Equal(t, "", rules.Submission{}.ConnectionGroup())
		assert.Equal(t, "", rules.Submission{rules.ConnectionKey: 5}.ConnectionGroup())
	})
}
