package validator

import (
	"strings"
	"sync"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// SpecialChars is the set of characters accepted as "special".
const SpecialChars = `!@#$%^&*()-_=+[]{}\|;:'",.<>/?`

type charClasses struct {
	upper   bool
	lower   bool
	digit   bool
	special bool
}

// scanClasses inspects value once. Letter and digit classes are ASCII only.
func scanClasses(value string) charClasses {
	var c charClasses
	for _, r := range value {
		switch {
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= '0' && r <= '9':
			c.digit = true
		case r < 0x80 && strings.ContainsRune(SpecialChars, r):
			c.special = true
		}
	}
	return c
}

func classRule(field string, classes func() charClasses, missing func(charClasses) kind.Kind) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			return missing(classes())
		},
	}
}

func scanOnce(value string) func() charClasses {
	return sync.OnceValue(func() charClasses { return scanClasses(value) })
}

func HasSpecialChar(field, value string) Rule {
	return classRule(field, scanOnce(value), missingSpecial)
}

func HasUppercase(field, value string) Rule {
	return classRule(field, scanOnce(value), missingUpper)
}

func HasLowercase(field, value string) Rule {
	return classRule(field, scanOnce(value), missingLower)
}

func HasDigit(field, value string) Rule {
	return classRule(field, scanOnce(value), missingDigit)
}

// HasUpperAndLower reports a single MustHaveUppercaseAndLowercase when either
// case is missing.
func HasUpperAndLower(field, value string) Rule {
	return classRule(field, scanOnce(value), missingUpperAndLower)
}

func missingSpecial(c charClasses) kind.Kind {
	if !c.special {
		return kind.MustHaveSpecialChars{}
	}
	return nil
}

func missingUpper(c charClasses) kind.Kind {
	if !c.upper {
		return kind.MustHaveUppercase{}
	}
	return nil
}

func missingLower(c charClasses) kind.Kind {
	if !c.lower {
		return kind.MustHaveLowercase{}
	}
	return nil
}

func missingDigit(c charClasses) kind.Kind {
	if !c.digit {
		return kind.MustHaveDigit{}
	}
	return nil
}

func missingUpperAndLower(c charClasses) kind.Kind {
	if !c.upper || !c.lower {
		return kind.MustHaveUppercaseAndLowercase{}
	}
	return nil
}

// CharClassRules selects the character classes a value must contain.
type CharClassRules struct {
	Special   bool
	Uppercase bool
	Lowercase bool
	Digit     bool
}

// CharClasses builds the rules selected by req, sharing one scan of value.
// Requiring both cases produces the combined upper-and-lower rule instead of
// two separate ones. Order: special, case, digit.
func CharClasses(field, value string, req CharClassRules) []Rule {
	classes := scanOnce(value)

	var rules []Rule
	if req.Special {
		rules = append(rules, classRule(field, classes, missingSpecial))
	}
	switch {
	case req.Uppercase && req.Lowercase:
		rules = append(rules, classRule(field, classes, missingUpperAndLower))
	case req.Uppercase:
		rules = append(rules, classRule(field, classes, missingUpper))
	case req.Lowercase:
		rules = append(rules, classRule(field, classes, missingLower))
	}
	if req.Digit {
		rules = append(rules, classRule(field, classes, missingDigit))
	}
	return rules
}
