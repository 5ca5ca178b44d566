package validator

import (
	"regexp"
	"slices"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// Matches fails with k when value does not match re.
//
//	var postcode = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]? ?[0-9][A-Z]{2}$`)
//	validator.Matches("postcode", v, postcode, kind.Custom{Key: "postcode", Text: "Invalid postcode"})
func Matches(field, value string, re *regexp.Regexp, k kind.Custom) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if re == nil || !re.MatchString(value) {
				return k
			}
			return nil
		},
	}
}

// OneOf fails with k when value is not among choices.
func OneOf[T comparable](field string, value T, choices []T, k kind.Custom) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if !slices.Contains(choices, value) {
				return k
			}
			return nil
		},
	}
}

// Custom wraps an arbitrary check. The check must be pure and return nil on
// success.
func Custom(field string, check func() kind.Kind) Rule {
	return Rule{Field: field, Check: check}
}
