package validator

import (
	"context"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// TextRules is the common shape of the string field presets. A zero
// MinLength or MaxLength disables that bound.
//
// Optional fields cannot tell "absent" from "empty": a non-mandatory preset
// given an empty value produces no rules at all.
type TextRules struct {
	Mandatory bool
	MinLength int
	MaxLength int
}

func (r TextRules) For(field, value string) []Rule {
	if !r.Mandatory && value == "" {
		return nil
	}

	var rules []Rule
	if r.Mandatory {
		rules = append(rules, Required(field, value))
	}
	if r.MinLength > 0 {
		rules = append(rules, MinLen(field, value, r.MinLength))
	}
	if r.MaxLength > 0 {
		rules = append(rules, MaxLen(field, value, r.MaxLength))
	}
	return rules
}

// PasswordRules checks presence, length and then character classes.
type PasswordRules struct {
	TextRules
	CharClassRules
}

func DefaultPasswordRules() PasswordRules {
	return PasswordRules{
		TextRules: TextRules{Mandatory: true, MinLength: 8, MaxLength: 64},
		CharClassRules: CharClassRules{
			Special:   true,
			Uppercase: true,
			Lowercase: true,
			Digit:     true,
		},
	}
}

func (r PasswordRules) For(field, value string) []Rule {
	if !r.Mandatory && value == "" {
		return nil
	}
	rules := r.TextRules.For(field, value)
	return append(rules, CharClasses(field, value, r.CharClassRules)...)
}

// UsernameRules checks presence and length. When Taken is set, ForContext
// adds an availability lookup that only runs once the local rules pass.
type UsernameRules struct {
	TextRules
	Taken TakenChecker
}

func DefaultUsernameRules() UsernameRules {
	return UsernameRules{TextRules: TextRules{Mandatory: true, MinLength: 5, MaxLength: 30}}
}

func (r UsernameRules) For(field, value string) []Rule {
	return r.ForContext(context.Background(), field, value)
}

func (r UsernameRules) ForContext(ctx context.Context, field, value string) []Rule {
	local := r.TextRules.For(field, value)
	if r.Taken == nil || (!r.Mandatory && value == "") {
		return local
	}

	available := UsernameAvailable(ctx, field, r.Taken, value)
	lookup := available.Check
	available.Check = func() kind.Kind {
		if !Validate(local...).IsEmpty() {
			return nil
		}
		return lookup()
	}
	return append(local[:len(local):len(local)], available)
}

type NameRules struct {
	TextRules
}

func DefaultNameRules() NameRules {
	return NameRules{TextRules{Mandatory: true, MinLength: 5, MaxLength: 20}}
}

type DescriptionRules struct {
	TextRules
}

func DefaultDescriptionRules() DescriptionRules {
	return DescriptionRules{TextRules{Mandatory: true, MaxLength: 40}}
}

// EmailRules checks presence and then the address format. A nil Valid uses
// IsEmail.
type EmailRules struct {
	Mandatory bool
	Valid     FormatPredicate
}

func DefaultEmailRules() EmailRules {
	return EmailRules{Mandatory: true}
}

func (r EmailRules) For(field, value string) []Rule {
	if !r.Mandatory && value == "" {
		return nil
	}
	var rules []Rule
	if r.Mandatory {
		rules = append(rules, Required(field, value))
	}
	return append(rules, ValidEmailWith(field, value, r.Valid))
}

// URLRules checks presence and then the URL format. A nil Valid uses IsURL.
type URLRules struct {
	Mandatory bool
	Valid     FormatPredicate
}

func DefaultURLRules() URLRules {
	return URLRules{Mandatory: true}
}

func (r URLRules) For(field, value string) []Rule {
	if !r.Mandatory && value == "" {
		return nil
	}
	var rules []Rule
	if r.Mandatory {
		rules = append(rules, Required(field, value))
	}
	return append(rules, ValidURLWith(field, value, r.Valid))
}
