package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/rules"
)

func TestParseStoreSpec(t *testing.T) {
	t.Run("table and column only", func(t *testing.T) {
		spec, err := rules.ParseStoreSpec("users.email")
		require.NoError(t, err)
		assert.Equal(t, "users", spec.Table)
		assert.Equal(t, "email", spec.Column)
		assert.False(t, spec.Exclude.Active())
	})

	t.Run("with exclusion pair", func(t *testing.T) {
		spec, err := rules.ParseStoreSpec("users.email,id,5")
		require.NoError(t, err)
		assert.True(t, spec.Exclude.Active())
		assert.Equal(t, "id", spec.Exclude.Column)
		assert.Equal(t, "5", spec.Exclude.Value)
	})

	t.Run("entries are trimmed", func(t *testing.T) {
		spec, err := rules.ParseStoreSpec(" users.email , id , 5 ")
		require.NoError(t, err)
		assert.Equal(t, "users", spec.Table)
		assert.Equal(t, "id", spec.Exclude.Column)
	})

	t.Run("placeholder exclusion value parses to no exclusion", func(t *testing.T) {
		spec, err := rules.ParseStoreSpec("users.email,id,{id}")
		require.NoError(t, err)
		assert.False(t, spec.Exclude.Active())
	})

	t.Run("missing exclusion value means no exclusion", func(t *testing.T) {
		spec, err := rules.ParseStoreSpec("users.email,id")
		require.NoError(t, err)
		assert.False(t, spec.Exclude.Active())
	})

	t.Run("missing table or column is rejected", func(t *testing.T) {
		for _, param := range []string{"", "users", "users.", ".email"} {
			_, err := rules.ParseStoreSpec(param)
			assert.ErrorIs(t, err, rules.ErrInvalidStoreSpec, "param=%q", param)
		}
	})
}

func TestExclusion(t *testing.T) {
	t.Run("zero value is inactive", func(t *testing.T) {
		var e rules.Exclusion
		assert.False(t, e.Active())
		assert.False(t, rules.NoExclusion().Active())
	})

	t.Run("ExcludeRow is active", func(t *testing.T) {
		e := rules.ExcludeRow("id", "5")
		assert.True(t, e.Active())
		assert.Equal(t, "id", e.Column)
		assert.Equal(t, "5", e.Value)
	})
}
