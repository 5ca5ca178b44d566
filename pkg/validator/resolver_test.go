package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

func TestRender(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add("password", kind.MinLength{Min: 8})
	errs.Add("password", kind.MustHaveDigit{})
	errs.Add("password_confirm", kind.PasswordDoesNotMatch{})

	t.Run("renders default messages", func(t *testing.T) {
		out, err := errs.Render(validator.DefaultMessages, "en")
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{
			"password":         {"Must be at least 8 characters", "Must contain at least one digit"},
			"password_confirm": {"Does not match"},
		}, out)
	})

	t.Run("passes locale to resolver", func(t *testing.T) {
		var locales []string
		r := validator.ResolverFunc(func(k kind.Kind, locale string) (string, error) {
			locales = append(locales, locale)
			return k.Code(), nil
		})

		out, err := errs.Render(r, "fr-CA")
		require.NoError(t, err)
		assert.Equal(t, []string{"min_length", "must_have_digit"}, out["password"])
		assert.Equal(t, []string{"fr-CA", "fr-CA", "fr-CA"}, locales)
	})

	t.Run("does not mutate the store", func(t *testing.T) {
		before := append(validator.ValidationErrors(nil), errs...)
		_, _ = errs.Render(validator.DefaultMessages, "en")
		assert.Equal(t, before, errs)
	})

	t.Run("first resolver error aborts", func(t *testing.T) {
		boom := errors.New("no template")
		calls := 0
		r := validator.ResolverFunc(func(kind.Kind, string) (string, error) {
			calls++
			return "", boom
		})

		out, err := errs.Render(r, "en")
		assert.Nil(t, out)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, validator.ErrRenderFailed)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil resolver", func(t *testing.T) {
		_, err := errs.Render(nil, "en")
		assert.ErrorIs(t, err, validator.ErrNilResolver)
	})

	t.Run("empty store renders empty map", func(t *testing.T) {
		out, err := validator.ValidationErrors(nil).Render(validator.DefaultMessages, "en")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
