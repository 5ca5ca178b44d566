package validator

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// FormatPredicate reports whether a string is well formed.
type FormatPredicate func(string) bool

// IsEmail accepts a bare RFC 5322 address whose domain has at least one dot
// and no empty labels. Display names ("Bob <bob@example.com>") are rejected.
func IsEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	localPart, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || localPart == "" {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// IsURL accepts absolute URLs with a scheme and a host.
func IsURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

func ValidEmail(field, value string) Rule {
	return ValidEmailWith(field, value, IsEmail)
}

// ValidEmailWith validates value with a caller-supplied predicate. A nil
// predicate falls back to IsEmail.
func ValidEmailWith(field, value string, valid FormatPredicate) Rule {
	if valid == nil {
		valid = IsEmail
	}
	return formatRule(field, value, valid, kind.EmailInvalid{})
}

func ValidURL(field, value string) Rule {
	return ValidURLWith(field, value, IsURL)
}

// ValidURLWith validates value with a caller-supplied predicate. A nil
// predicate falls back to IsURL.
func ValidURLWith(field, value string, valid FormatPredicate) Rule {
	if valid == nil {
		valid = IsURL
	}
	return formatRule(field, value, valid, kind.InvalidURL{})
}

func formatRule(field, value string, valid FormatPredicate, k kind.Kind) Rule {
	return Rule{
		Field: field,
		Check: func() kind.Kind {
			if !valid(value) {
				return k
			}
			return nil
		},
	}
}
