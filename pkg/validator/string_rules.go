package validator

import (
	"github.com/rivo/uniseg"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// Length returns the number of user-perceived characters (extended grapheme
// clusters) in s. "e" followed by a combining acute accent counts as one.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Required fails with CannotBeEmpty when value has no characters. Whitespace
// counts as content. It is a gate: on failure the remaining rules of the field
// are skipped.
func Required(field, value string) Rule {
	return Rule{
		Field: field,
		Gate:  true,
		Check: func() kind.Kind {
			if value == "" {
				return kind.CannotBeEmpty{}
			}
			return nil
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if Length(value) < min {
				return kind.MinLength{Min: min}
			}
			return nil
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if Length(value) > max {
				return kind.MaxLength{Max: max}
			}
			return nil
		},
	}
}

// LenBetween reports at most one of MinLength and MaxLength. The minimum is
// checked first, so with min > max only MinLength can be reported.
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			n := Length(value)
			switch {
			case n < min:
				return kind.MinLength{Min: min}
			case n > max:
				return kind.MaxLength{Max: max}
			}
			return nil
		},
	}
}
