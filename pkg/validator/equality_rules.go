package validator

import "github.com/dmitrymomot/validkit/pkg/validator/kind"

// PasswordMatch reports PasswordDoesNotMatch on the confirmation field when
// confirm differs from password. Comparison is exact.
func PasswordMatch(field, password, confirm string) Rule {
	return matchRule(field, password, confirm, kind.PasswordDoesNotMatch{})
}

// EmailMatch reports EmailDoesNotMatch on the confirmation field when confirm
// differs from email.
func EmailMatch(field, email, confirm string) Rule {
	return matchRule(field, email, confirm, kind.EmailDoesNotMatch{})
}

func matchRule(field, a, b string, k kind.Kind) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if a != b {
				return k
			}
			return nil
		},
	}
}
