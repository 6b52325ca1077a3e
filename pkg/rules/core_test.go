package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/rules"
)

func passing(field string) rules.Rule {
	return rules.Rule{
		Check: func() (bool, error) { return true, nil },
		Error: rules.ValidationError{Field: field, Message: "should not appear"},
	}
}

func failing(field, msg string) rules.Rule {
	return rules.Rule{
		Check: func() (bool, error) { return false, nil },
		Error: rules.ValidationError{Field: field, Message: msg},
	}
}

func erroring(err error) rules.Rule {
	return rules.Rule{
		Check: func() (bool, error) { return false, err },
		Error: rules.ValidationError{Field: "x", Message: "should not appear"},
	}
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := rules.Apply(passing("a"), passing("b"))
		assert.NoError(t, err)
	})

	t.Run("aggregates soft failures into ValidationErrors", func(t *testing.T) {
		err := rules.Apply(passing("a"), failing("b", "bad"), failing("c", "worse"))
		require.Error(t, err)

		verrs := rules.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Len(t, verrs, 2)
		assert.True(t, verrs.Has("b"))
		assert.True(t, verrs.Has("c"))
		assert.False(t, verrs.Has("a"))
		assert.Equal(t, []string{"bad"}, verrs.Get("b"))
	})

	t.Run("hard error aborts evaluation and propagates unmodified", func(t *testing.T) {
		boom := errors.New("store is down")
		evaluated := false
		tail := rules.Rule{
			Check: func() (bool, error) { evaluated = true; return true, nil },
			Error: rules.ValidationError{Field: "tail"},
		}

		err := rules.Apply(failing("a", "bad"), erroring(boom), tail)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.False(t, rules.IsValidationError(err))
		assert.False(t, evaluated)
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("Error formats all failures", func(t *testing.T) {
		verrs := rules.ValidationErrors{
			{Field: "email", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		}
		assert.Equal(t, "validation failed: email: is required; age: must be a number", verrs.Error())
	})

	t.Run("empty collection has default message", func(t *testing.T) {
		assert.Equal(t, "validation failed", rules.ValidationErrors{}.Error())
	})

	t.Run("Fields deduplicates in order", func(t *testing.T) {
		verrs := rules.ValidationErrors{
			{Field: "email", Message: "a"},
			{Field: "email", Message: "b"},
			{Field: "name", Message: "c"},
		}
		assert.Equal(t, []string{"email", "name"}, verrs.Fields())
		assert.Equal(t, []string{"a", "b"}, verrs.Get("email"))
	})

	t.Run("ExtractValidationErrors on foreign error returns nil", func(t *testing.T) {
		assert.Nil(t, rules.ExtractValidationErrors(errors.New("other")))
		assert.Nil(t, rules.ExtractValidationErrors(nil))
	})
}
