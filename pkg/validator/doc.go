// Package validator provides composable validation rules whose failures are
// language-agnostic error kinds rather than rendered text.
//
// Every exported rule constructor returns a Rule: a field name plus a lazy,
// pure Check that yields nil on success or a kind.Kind describing the failure.
// Rules are evaluated with Validate, which collects failures into an ordered
// ValidationErrors store, or with Apply, which returns the store as an error.
//
// # Architecture
//
// Rules are grouped by family (string_rules.go, charclass_rules.go,
// numeric_rules.go, date_rules.go, format_rules.go, etc.). The package keeps
// no global state and every rule is safe to build and evaluate concurrently.
//
// Core building blocks:
//   - Rule              lazy check bound to a field, optionally a gate
//   - ValidationError   a field name and the kind that failed
//   - ValidationErrors  ordered store that implements error
//   - Resolver          renders kinds to text for a locale
//
// Lengths are counted in extended grapheme clusters, so "é" written with a
// combining accent is one character.
//
// # Usage
//
//	errs := validator.Validate(append(
//	    validator.DefaultPasswordRules().For("password", form.Password),
//	    validator.PasswordMatch("password_confirm", form.Password, form.Confirm),
//	    validator.NumBetween("age", form.Age, 18, 120),
//	)...)
//	if !errs.IsEmpty() {
//	    messages, err := errs.Render(catalog, "fr")
//	    ...
//	}
//
// # Gates
//
// Required is a gate rule: when a field is empty its other rules are not
// evaluated, so an empty password reports only "cannot be empty" and not a
// list of missing character classes. Fields never gate each other.
//
// # Rendering
//
// ValidationErrors.Get and Messages use each kind's English default message.
// Render takes any Resolver, such as an i18n.Catalog, and leaves the store
// untouched so the same failures can be rendered for several locales.
package validator
