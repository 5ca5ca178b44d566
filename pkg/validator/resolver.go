package validator

import (
	"fmt"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// Resolver turns a kind into text for a locale. Implementations must be safe
// for concurrent use.
type Resolver interface {
	Resolve(k kind.Kind, locale string) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(k kind.Kind, locale string) (string, error)

func (f ResolverFunc) Resolve(k kind.Kind, locale string) (string, error) {
	return f(k, locale)
}

// DefaultMessages renders every kind with its English default message and
// ignores the locale.
var DefaultMessages Resolver = ResolverFunc(func(k kind.Kind, _ string) (string, error) {
	return k.Message(), nil
})

// Render resolves every entry and groups the text by field, keeping the
// per-field order. The store itself is left untouched. The first resolver
// error aborts rendering.
func (ve ValidationErrors) Render(r Resolver, locale string) (map[string][]string, error) {
	if r == nil {
		return nil, ErrNilResolver
	}

	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		text, rerr := r.Resolve(err.Kind, locale)
		if rerr != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrRenderFailed, err.Field, rerr)
		}
		out[err.Field] = append(out[err.Field], text)
	}
	return out, nil
}
