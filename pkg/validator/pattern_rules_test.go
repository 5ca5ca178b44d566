package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/validator"
	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

var (
	ukPostcode      = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]? ?[0-9][A-Z]{2}$`)
	invalidPostcode = kind.Custom{Key: "invalid_postcode", Text: "Invalid postcode"}
	invalidFruit    = kind.Custom{Key: "invalid_fruit", Text: "Pick a fruit from the list"}
)

func TestMatches(t *testing.T) {
	t.Parallel()

	t.Run("passes matching value", func(t *testing.T) {
		assert.Nil(t, validator.Matches("postcode", "SW1A 1AA", ukPostcode, invalidPostcode).Check())
	})

	t.Run("reports custom kind", func(t *testing.T) {
		got := validator.Matches("postcode", "12345", ukPostcode, invalidPostcode).Check()
		assert.Equal(t, invalidPostcode, got)
		assert.Equal(t, "invalid_postcode", got.Code())
		assert.Equal(t, "Invalid postcode", got.Message())
	})

	t.Run("nil pattern never matches", func(t *testing.T) {
		assert.Equal(t, invalidPostcode, validator.Matches("postcode", "SW1A 1AA", nil, invalidPostcode).Check())
	})
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	fruits := []string{"apple", "banana", "cherry"}

	t.Run("passes listed choice", func(t *testing.T) {
		assert.Nil(t, validator.OneOf("fruit", "banana", fruits, invalidFruit).Check())
	})

	t.Run("reports unlisted choice", func(t *testing.T) {
		assert.Equal(t, invalidFruit, validator.OneOf("fruit", "durian", fruits, invalidFruit).Check())
	})

	t.Run("works with other comparable types", func(t *testing.T) {
		assert.Nil(t, validator.OneOf("size", 2, []int{1, 2, 3}, invalidFruit).Check())
	})
}

func TestCustom(t *testing.T) {
	t.Parallel()

	even := func(n int) validator.Rule {
		return validator.Custom("n", func() kind.Kind {
			if n%2 != 0 {
				return kind.Custom{Key: "not_even", Text: "Must be even"}
			}
			return nil
		})
	}

	errs := validator.Validate(even(2), even(3))
	assert.Equal(t, []string{"Must be even"}, errs.Get("n"))
}
