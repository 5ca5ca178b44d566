package validator

import (
	"time"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// Layouts used to format bounds into kind parameters.
const (
	DateLayout          = time.DateOnly
	DateTimeLayout      = time.RFC3339
	NaiveDateTimeLayout = "2006-01-02T15:04:05"
	TimeLayout          = time.TimeOnly
)

// timeScale projects a time onto the axis a family of rules compares on and
// builds the kinds reported for it.
type timeScale struct {
	key   func(time.Time) time.Time
	below func(min time.Time) kind.Kind
	above func(max time.Time) kind.Kind
}

func (s timeScale) min(field string, value, min time.Time) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if s.key(value).Before(s.key(min)) {
				return s.below(min)
			}
			return nil
		},
	}
}

func (s timeScale) max(field string, value, max time.Time) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if s.key(value).After(s.key(max)) {
				return s.above(max)
			}
			return nil
		},
	}
}

func (s timeScale) between(field string, value, min, max time.Time) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			v := s.key(value)
			switch {
			case v.Before(s.key(min)):
				return s.below(min)
			case v.After(s.key(max)):
				return s.above(max)
			}
			return nil
		},
	}
}

// wall drops the location while keeping the clock reading.
func wall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

var (
	dateScale = timeScale{
		key: func(t time.Time) time.Time {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		},
		below: func(t time.Time) kind.Kind { return kind.DateMin{Min: t.Format(DateLayout)} },
		above: func(t time.Time) kind.Kind { return kind.DateMax{Max: t.Format(DateLayout)} },
	}

	dateTimeScale = timeScale{
		key:   func(t time.Time) time.Time { return t },
		below: func(t time.Time) kind.Kind { return kind.DateTimeMin{Min: t.Format(DateTimeLayout)} },
		above: func(t time.Time) kind.Kind { return kind.DateTimeMax{Max: t.Format(DateTimeLayout)} },
	}

	naiveDateTimeScale = timeScale{
		key:   wall,
		below: func(t time.Time) kind.Kind { return kind.DateTimeNaiveMin{Min: t.Format(NaiveDateTimeLayout)} },
		above: func(t time.Time) kind.Kind { return kind.DateTimeNaiveMax{Max: t.Format(NaiveDateTimeLayout)} },
	}

	timeOfDayScale = timeScale{
		key: func(t time.Time) time.Time {
			return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
		},
		below: func(t time.Time) kind.Kind { return kind.TimeMin{Min: t.Format(TimeLayout)} },
		above: func(t time.Time) kind.Kind { return kind.TimeMax{Max: t.Format(TimeLayout)} },
	}
)

// MinDate compares calendar days, each time read in its own location.
func MinDate(field string, value, min time.Time) Rule {
	return dateScale.min(field, value, min)
}

func MaxDate(field string, value, max time.Time) Rule {
	return dateScale.max(field, value, max)
}

func DateBetween(field string, value, min, max time.Time) Rule {
	return dateScale.between(field, value, min, max)
}

// MinDateTime compares instants, so locations do not matter.
func MinDateTime(field string, value, min time.Time) Rule {
	return dateTimeScale.min(field, value, min)
}

func MaxDateTime(field string, value, max time.Time) Rule {
	return dateTimeScale.max(field, value, max)
}

func DateTimeBetween(field string, value, min, max time.Time) Rule {
	return dateTimeScale.between(field, value, min, max)
}

// MinNaiveDateTime compares wall-clock readings and ignores locations:
// 10:00 in Tokyo is after 09:00 in New York.
func MinNaiveDateTime(field string, value, min time.Time) Rule {
	return naiveDateTimeScale.min(field, value, min)
}

func MaxNaiveDateTime(field string, value, max time.Time) Rule {
	return naiveDateTimeScale.max(field, value, max)
}

func NaiveDateTimeBetween(field string, value, min, max time.Time) Rule {
	return naiveDateTimeScale.between(field, value, min, max)
}

// MinTime compares the time of day only, with nanosecond precision.
func MinTime(field string, value, min time.Time) Rule {
	return timeOfDayScale.min(field, value, min)
}

func MaxTime(field string, value, max time.Time) Rule {
	return timeOfDayScale.max(field, value, max)
}

func TimeBetween(field string, value, min, max time.Time) Rule {
	return timeOfDayScale.between(field, value, min, max)
}
