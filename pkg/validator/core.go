package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError is a single failure attached to a field.
type ValidationError struct {
	Field string
	Kind  kind.Kind
}

// Message returns the default English text of the failure.
func (e ValidationError) Message() string {
	return e.Kind.Message()
}

// ValidationErrors is an ordered, append-only collection of field failures.
// Entries for the same field keep the order in which they were added.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message()))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for any store.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends a failure for field. A nil kind is ignored.
func (ve *ValidationErrors) Add(field string, k kind.Kind) {
	if k == nil {
		return
	}
	*ve = append(*ve, ValidationError{Field: field, Kind: k})
}

// Merge appends all entries of other after the existing ones.
func (ve *ValidationErrors) Merge(other ValidationErrors) {
	*ve = append(*ve, other...)
}

// MergePrefixed appends the entries of other with field names qualified as
// "prefix.field". It is used to lift errors of a nested structure.
func (ve *ValidationErrors) MergePrefixed(prefix string, other ValidationErrors) {
	for _, err := range other {
		field := err.Field
		switch {
		case prefix == "":
		case field == "":
			field = prefix
		default:
			field = prefix + "." + field
		}
		*ve = append(*ve, ValidationError{Field: field, Kind: err.Kind})
	}
}

// Merge returns a new store holding the entries of all stores in order.
func Merge(stores ...ValidationErrors) ValidationErrors {
	n := 0
	for _, s := range stores {
		n += len(s)
	}
	if n == 0 {
		return nil
	}

	merged := make(ValidationErrors, 0, n)
	for _, s := range stores {
		merged = append(merged, s...)
	}
	return merged
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// ErrorsFor returns the kinds recorded for field in insertion order.
func (ve ValidationErrors) ErrorsFor(field string) []kind.Kind {
	var kinds []kind.Kind
	for _, err := range ve {
		if err.Field == field {
			kinds = append(kinds, err.Kind)
		}
	}
	return kinds
}

// Get returns the default messages for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message())
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns field names in the order they first failed.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages groups the default messages by field.
func (ve ValidationErrors) Messages() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message())
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a lazily evaluated check of one field. Check returns nil when the
// value passes. When a Gate rule fails, the remaining rules of the same field
// are skipped by Validate.
type Rule struct {
	Field string
	Check func() kind.Kind
	Gate  bool
}

// Validate runs rules in declaration order and collects every failure.
func Validate(rules ...Rule) ValidationErrors {
	var (
		errs  ValidationErrors
		gated map[string]struct{}
	)

	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		if _, skip := gated[rule.Field]; skip {
			continue
		}

		k := rule.Check()
		if k == nil {
			continue
		}
		errs.Add(rule.Field, k)

		if rule.Gate {
			if gated == nil {
				gated = make(map[string]struct{})
			}
			gated[rule.Field] = struct{}{}
		}
	}

	return errs
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	errs := Validate(rules...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Validatable is implemented by structures that validate themselves.
type Validatable interface {
	Validate() ValidationErrors
}

// Nested validates v and qualifies its field names with prefix.
func Nested(prefix string, v Validatable) ValidationErrors {
	if v == nil {
		return nil
	}
	var errs ValidationErrors
	errs.MergePrefixed(prefix, v.Validate())
	return errs
}

// When returns rules only if cond holds. It is meant for optional fields.
func When(cond bool, rules ...Rule) []Rule {
	if !cond {
		return nil
	}
	return rules
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
