package validator

import (
	"time"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// RequiredValue fails with CannotBeEmpty when value is nil. It is a gate like
// Required.
func RequiredValue[T any](field string, value *T) Rule {
	return Rule{
		Field: field,
		Gate:  true,
		Check: func() kind.Kind {
			if value == nil {
				return kind.CannotBeEmpty{}
			}
			return nil
		},
	}
}

// NumberRules is the preset for numeric inputs that may be absent. A nil
// value is absent: it reports CannotBeEmpty when Mandatory and yields no rules
// otherwise. A nil Min or Max disables that bound.
type NumberRules[T Numeric] struct {
	Mandatory bool
	Min       *T
	Max       *T
}

func (r NumberRules[T]) For(field string, value *T) []Rule {
	if value == nil {
		if r.Mandatory {
			return []Rule{RequiredValue(field, value)}
		}
		return nil
	}

	switch v := *value; {
	case r.Min != nil && r.Max != nil:
		return []Rule{NumBetween(field, v, *r.Min, *r.Max)}
	case r.Min != nil:
		return []Rule{MinNum(field, v, *r.Min)}
	case r.Max != nil:
		return []Rule{MaxNum(field, v, *r.Max)}
	}
	return nil
}

type (
	FloatRules    = NumberRules[float64]
	IntegerRules  = NumberRules[int]
	UnsignedRules = NumberRules[uint]
)

// DefaultFloatRules is mandatory with bounds 0..255.
func DefaultFloatRules() FloatRules {
	return FloatRules{Mandatory: true, Min: ptr(0.0), Max: ptr(255.0)}
}

func DefaultIntegerRules() IntegerRules {
	return IntegerRules{Mandatory: true, Min: ptr(0), Max: ptr(255)}
}

func DefaultUnsignedRules() UnsignedRules {
	return UnsignedRules{Mandatory: true, Min: ptr(uint(0)), Max: ptr(uint(255))}
}

// TimeRangeRules holds the settings shared by the date and time presets.
// Absent values follow NumberRules.
type TimeRangeRules struct {
	Mandatory bool
	Min       *time.Time
	Max       *time.Time
}

func (r TimeRangeRules) on(s timeScale, field string, value *time.Time) []Rule {
	if value == nil {
		if r.Mandatory {
			return []Rule{RequiredValue(field, value)}
		}
		return nil
	}

	switch {
	case r.Min != nil && r.Max != nil:
		return []Rule{s.between(field, *value, *r.Min, *r.Max)}
	case r.Min != nil:
		return []Rule{s.min(field, *value, *r.Min)}
	case r.Max != nil:
		return []Rule{s.max(field, *value, *r.Max)}
	}
	return nil
}

// DateRules compares calendar days, like MinDate.
type DateRules struct {
	TimeRangeRules
}

// DefaultDateRules is mandatory and accepts the 30 days starting at now.
func DefaultDateRules(now time.Time) DateRules {
	return DateRules{window(now)}
}

func (r DateRules) For(field string, value *time.Time) []Rule {
	return r.on(dateScale, field, value)
}

// DateTimeRules compares instants, like MinDateTime.
type DateTimeRules struct {
	TimeRangeRules
}

func DefaultDateTimeRules(now time.Time) DateTimeRules {
	return DateTimeRules{window(now)}
}

func (r DateTimeRules) For(field string, value *time.Time) []Rule {
	return r.on(dateTimeScale, field, value)
}

// NaiveDateTimeRules compares wall clocks, like MinNaiveDateTime.
type NaiveDateTimeRules struct {
	TimeRangeRules
}

// DefaultNaiveDateTimeRules reads now in UTC before building the window.
func DefaultNaiveDateTimeRules(now time.Time) NaiveDateTimeRules {
	return NaiveDateTimeRules{window(now.UTC())}
}

func (r NaiveDateTimeRules) For(field string, value *time.Time) []Rule {
	return r.on(naiveDateTimeScale, field, value)
}

// TimeRules compares times of day, like MinTime.
type TimeRules struct {
	TimeRangeRules
}

// DefaultTimeRules is mandatory and accepts 09:00 to 17:00.
func DefaultTimeRules() TimeRules {
	return TimeRules{TimeRangeRules{
		Mandatory: true,
		Min:       ptr(time.Date(0, time.January, 1, 9, 0, 0, 0, time.UTC)),
		Max:       ptr(time.Date(0, time.January, 1, 17, 0, 0, 0, time.UTC)),
	}}
}

func (r TimeRules) For(field string, value *time.Time) []Rule {
	return r.on(timeOfDayScale, field, value)
}

func window(now time.Time) TimeRangeRules {
	return TimeRangeRules{
		Mandatory: true,
		Min:       ptr(now),
		Max:       ptr(now.AddDate(0, 0, 30)),
	}
}

func ptr[T any](v T) *T {
	return &v
}
