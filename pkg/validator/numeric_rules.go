package validator

import (
	"math"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// MinNum fails with NumberMinValue when value < min. Bounds are inclusive.
// A NaN value is below every bound and fails.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if isNaN(value) || value < min {
				return kind.NumberMinValue{Min: float64(min)}
			}
			return nil
		},
	}
}

// MaxNum fails with NumberMaxValue when value > max. A NaN value fails.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if isNaN(value) || value > max {
				return kind.NumberMaxValue{Max: float64(max)}
			}
			return nil
		},
	}
}

// NumBetween reports at most one of NumberMinValue and NumberMaxValue, with
// the minimum checked first. A NaN value reports NumberMinValue. NaN bounds
// are not checked and always pass.
func NumBetween[T Numeric](field string, value T, min, max T) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			switch {
			case isNaN(value) || value < min:
				return kind.NumberMinValue{Min: float64(min)}
			case value > max:
				return kind.NumberMaxValue{Max: float64(max)}
			}
			return nil
		},
	}
}

func isNaN[T Numeric](v T) bool {
	return math.IsNaN(float64(v))
}
