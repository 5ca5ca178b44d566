package validator

import (
	"context"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// TakenChecker answers whether a value is already in use. Implementations
// may block on I/O and should honor ctx cancellation. Pointer implementations
// must return an error for a nil receiver: UsernameAvailable only catches a
// nil interface.
type TakenChecker interface {
	IsTaken(ctx context.Context, value string) (bool, error)
}

// TakenCheckerFunc adapts a function to TakenChecker.
type TakenCheckerFunc func(ctx context.Context, value string) (bool, error)

func (f TakenCheckerFunc) IsTaken(ctx context.Context, value string) (bool, error) {
	return f(ctx, value)
}

// UsernameAvailable consults checker when the rule is evaluated. A taken value
// yields UsernameTaken. A checker error, a cancelled context or a nil checker
// yields CheckUnavailable, never a pass.
func UsernameAvailable(ctx context.Context, field string, checker TakenChecker, value string) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if checker == nil {
				return kind.CheckUnavailable{}
			}
			if ctx.Err() != nil {
				return kind.CheckUnavailable{}
			}

			taken, err := checker.IsTaken(ctx, value)
			switch {
			case err != nil:
				return kind.CheckUnavailable{}
			case taken:
				return kind.UsernameTaken{}
			}
			return nil
		},
	}
}
