package kind

import (
	"fmt"
	"strconv"
)

// NumberMinValue is reported when a number is below Min.
type NumberMinValue struct {
	Min float64
}

func (NumberMinValue) Code() string      { return "number_min_value" }
func (k NumberMinValue) Params() []Param { return []Param{{Name: "min", Value: k.Min}} }
func (k NumberMinValue) Message() string { return "Must be at least " + formatFloat(k.Min) }
func (NumberMinValue) sealed()           {}

// NumberMaxValue is reported when a number is above Max.
type NumberMaxValue struct {
	Max float64
}

func (NumberMaxValue) Code() string      { return "number_max_value" }
func (k NumberMaxValue) Params() []Param { return []Param{{Name: "max", Value: k.Max}} }
func (k NumberMaxValue) Message() string { return "Must be at most " + formatFloat(k.Max) }
func (NumberMaxValue) sealed()           {}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Date and time bounds are carried pre-formatted: YYYY-MM-DD for dates,
// RFC 3339 for date-times, YYYY-MM-DDTHH:MM:SS for naive date-times and
// HH:MM:SS for times of day.

type DateMin struct {
	Min string
}

func (DateMin) Code() string      { return "date_min" }
func (k DateMin) Params() []Param { return []Param{{Name: "min", Value: k.Min}} }
func (k DateMin) Message() string { return notBefore(k.Min) }
func (DateMin) sealed()           {}

type DateMax struct {
	Max string
}

func (DateMax) Code() string      { return "date_max" }
func (k DateMax) Params() []Param { return []Param{{Name: "max", Value: k.Max}} }
func (k DateMax) Message() string { return notAfter(k.Max) }
func (DateMax) sealed()           {}

type DateTimeMin struct {
	Min string
}

func (DateTimeMin) Code() string      { return "date_time_min" }
func (k DateTimeMin) Params() []Param { return []Param{{Name: "min", Value: k.Min}} }
func (k DateTimeMin) Message() string { return notBefore(k.Min) }
func (DateTimeMin) sealed()           {}

type DateTimeMax struct {
	Max string
}

func (DateTimeMax) Code() string      { return "date_time_max" }
func (k DateTimeMax) Params() []Param { return []Param{{Name: "max", Value: k.Max}} }
func (k DateTimeMax) Message() string { return notAfter(k.Max) }
func (DateTimeMax) sealed()           {}

type DateTimeNaiveMin struct {
	Min string
}

func (DateTimeNaiveMin) Code() string      { return "date_time_naive_min" }
func (k DateTimeNaiveMin) Params() []Param { return []Param{{Name: "min", Value: k.Min}} }
func (k DateTimeNaiveMin) Message() string { return notBefore(k.Min) }
func (DateTimeNaiveMin) sealed()           {}

type DateTimeNaiveMax struct {
	Max string
}

func (DateTimeNaiveMax) Code() string      { return "date_time_naive_max" }
func (k DateTimeNaiveMax) Params() []Param { return []Param{{Name: "max", Value: k.Max}} }
func (k DateTimeNaiveMax) Message() string { return notAfter(k.Max) }
func (DateTimeNaiveMax) sealed()           {}

type TimeMin struct {
	Min string
}

func (TimeMin) Code() string      { return "time_min" }
func (k TimeMin) Params() []Param { return []Param{{Name: "min", Value: k.Min}} }
func (k TimeMin) Message() string { return notBefore(k.Min) }
func (TimeMin) sealed()           {}

type TimeMax struct {
	Max string
}

func (TimeMax) Code() string      { return "time_max" }
func (k TimeMax) Params() []Param { return []Param{{Name: "max", Value: k.Max}} }
func (k TimeMax) Message() string { return notAfter(k.Max) }
func (TimeMax) sealed()           {}

func notBefore(s string) string { return fmt.Sprintf("Must not be before %s", s) }
func notAfter(s string) string  { return fmt.Sprintf("Must not be after %s", s) }
