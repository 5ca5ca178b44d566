package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

func TestBuiltin(t *testing.T) {
	t.Parallel()

	t.Run("codes are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, k := range kind.Builtin() {
			assert.False(t, seen[k.Code()], "duplicate code %s", k.Code())
			seen[k.Code()] = true
		}
		assert.Len(t, seen, 24)
	})

	t.Run("is builtin", func(t *testing.T) {
		assert.True(t, kind.IsBuiltin("min_length"))
		assert.False(t, kind.IsBuiltin("invalid_postcode"))
	})
}

func TestEquality(t *testing.T) {
	t.Parallel()

	t.Run("same variant and params are equal", func(t *testing.T) {
		var a, b kind.Kind = kind.MinLength{Min: 8}, kind.MinLength{Min: 8}
		assert.True(t, a == b)
	})

	t.Run("different params are not equal", func(t *testing.T) {
		var a, b kind.Kind = kind.MinLength{Min: 8}, kind.MinLength{Min: 9}
		assert.False(t, a == b)
	})

	t.Run("different variants are not equal", func(t *testing.T) {
		var a, b kind.Kind = kind.MinLength{Min: 8}, kind.MaxLength{Max: 8}
		assert.False(t, a == b)
	})
}

func TestMessages(t *testing.T) {
	t.Parallel()

	t.Run("length messages pluralize", func(t *testing.T) {
		assert.Equal(t, "Must be at least 8 characters", kind.MinLength{Min: 8}.Message())
		assert.Equal(t, "Must be at least 1 character", kind.MinLength{Min: 1}.Message())
		assert.Equal(t, "Must be at most 40 characters", kind.MaxLength{Max: 40}.Message())
	})

	t.Run("number messages drop trailing zeros", func(t *testing.T) {
		assert.Equal(t, "Must be at least 18", kind.NumberMinValue{Min: 18}.Message())
		assert.Equal(t, "Must be at most 2.5", kind.NumberMaxValue{Max: 2.5}.Message())
	})

	t.Run("password mismatch", func(t *testing.T) {
		assert.Equal(t, "Does not match", kind.PasswordDoesNotMatch{}.Message())
	})

	t.Run("date bounds", func(t *testing.T) {
		assert.Equal(t, "Must not be before 2024-01-01", kind.DateMin{Min: "2024-01-01"}.Message())
		assert.Equal(t, "Must not be after 17:00:00", kind.TimeMax{Max: "17:00:00"}.Message())
	})
}

func TestParams(t *testing.T) {
	t.Parallel()

	t.Run("carry named values", func(t *testing.T) {
		assert.Equal(t, []kind.Param{{Name: "min", Value: 8}}, kind.MinLength{Min: 8}.Params())
		assert.Equal(t, []kind.Param{{Name: "max", Value: 2.5}}, kind.NumberMaxValue{Max: 2.5}.Params())
		assert.Equal(t, []string{"min"}, kind.ParamNames(kind.DateTimeMin{Min: "x"}))
		assert.Nil(t, kind.CannotBeEmpty{}.Params())
	})

	t.Run("numeric detection", func(t *testing.T) {
		assert.True(t, kind.IsNumeric(8))
		assert.True(t, kind.IsNumeric(2.5))
		assert.False(t, kind.IsNumeric("2024-01-01"))
	})
}
