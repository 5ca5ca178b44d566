package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/validkit/pkg/validator"
	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

type mockTakenChecker struct {
	mock.Mock
}

func (m *mockTakenChecker) IsTaken(ctx context.Context, value string) (bool, error) {
	args := m.Called(ctx, value)
	return args.Bool(0), args.Error(1)
}

func TestUsernameAvailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reports taken username", func(t *testing.T) {
		checker := &mockTakenChecker{}
		checker.On("IsTaken", ctx, "alice").Return(true, nil).Once()

		rule := validator.UsernameAvailable(ctx, "username", checker, "alice")
		assert.Equal(t, kind.UsernameTaken{}, rule.Check())
		checker.AssertExpectations(t)
	})

	t.Run("passes free username", func(t *testing.T) {
		checker := &mockTakenChecker{}
		checker.On("IsTaken", ctx, "bob").Return(false, nil).Once()

		assert.Nil(t, validator.UsernameAvailable(ctx, "username", checker, "bob").Check())
		checker.AssertExpectations(t)
	})

	t.Run("does not call checker until evaluated", func(t *testing.T) {
		checker := &mockTakenChecker{}
		_ = validator.UsernameAvailable(ctx, "username", checker, "bob")
		checker.AssertNotCalled(t, "IsTaken", mock.Anything, mock.Anything)
	})

	t.Run("checker error becomes check unavailable", func(t *testing.T) {
		checker := &mockTakenChecker{}
		checker.On("IsTaken", ctx, "carol").Return(false, errors.New("connection refused")).Once()

		assert.Equal(t, kind.CheckUnavailable{}, validator.UsernameAvailable(ctx, "username", checker, "carol").Check())
	})

	t.Run("cancelled context skips the lookup", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		checker := &mockTakenChecker{}

		assert.Equal(t, kind.CheckUnavailable{}, validator.UsernameAvailable(cancelled, "username", checker, "dave").Check())
		checker.AssertNotCalled(t, "IsTaken", mock.Anything, mock.Anything)
	})

	t.Run("nil checker is unavailable", func(t *testing.T) {
		assert.Equal(t, kind.CheckUnavailable{}, validator.UsernameAvailable(ctx, "username", nil, "erin").Check())
	})

	t.Run("function adapter", func(t *testing.T) {
		taken := validator.TakenCheckerFunc(func(_ context.Context, v string) (bool, error) {
			return v == "admin", nil
		})
		assert.Equal(t, kind.UsernameTaken{}, validator.UsernameAvailable(ctx, "username", taken, "admin").Check())
		assert.Nil(t, validator.UsernameAvailable(ctx, "username", taken, "frank").Check())
	})
}
