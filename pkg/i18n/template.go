package i18n

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// pluralKey names the optional selector entry of a plural template.
const pluralKey = "plural"

var pluralForms = map[string]plural.Form{
	"zero":  plural.Zero,
	"one":   plural.One,
	"two":   plural.Two,
	"few":   plural.Few,
	"many":  plural.Many,
	"other": plural.Other,
}

// paramSpec lists the parameters a kind code accepts and whether each one is
// numeric.
type paramSpec map[string]bool

func (s paramSpec) numeric() []string {
	var names []string
	for name, numeric := range s {
		if numeric {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func specOf(k kind.Kind) paramSpec {
	spec := make(paramSpec)
	for _, p := range k.Params() {
		spec[p.Name] = kind.IsNumeric(p.Value)
	}
	return spec
}

// segment is either literal text or a placeholder naming a parameter.
type segment struct {
	text  string
	param string
}

type pattern []segment

// template is a compiled message. A plain message is stored as the "other"
// branch with no selector.
type template struct {
	tag      language.Tag
	selector string
	branches map[string]pattern
}

// compileTemplate validates raw against spec. Every problem is returned.
func compileTemplate(tag language.Tag, raw any, spec paramSpec) (*template, []error) {
	if s, ok := raw.(string); ok {
		p, errs := compilePattern(s, spec)
		return &template{tag: tag, branches: map[string]pattern{"other": p}}, errs
	}

	m, ok := asStringMap(raw)
	if !ok {
		return nil, []error{fmt.Errorf("%w: expected string or plural map, got %T", ErrInvalidTemplate, raw)}
	}

	var errs []error
	t := &template{tag: tag, branches: make(map[string]pattern, len(m))}

	for key, value := range m {
		if key == pluralKey {
			selector, ok := value.(string)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: selector must be a parameter name, got %T", ErrInvalidPluralSelector, value))
				continue
			}
			t.selector = selector
			continue
		}
		if _, ok := pluralForms[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPluralCategory, key))
			continue
		}
		s, ok := value.(string)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: branch %q must be a string, got %T", ErrInvalidTemplate, key, value))
			continue
		}
		p, perrs := compilePattern(s, spec)
		errs = append(errs, perrs...)
		t.branches[key] = p
	}

	if _, ok := m["other"]; !ok {
		errs = append(errs, ErrMissingOtherBranch)
	}

	switch {
	case t.selector != "":
		numeric, known := spec[t.selector]
		if !known || !numeric {
			errs = append(errs, fmt.Errorf("%w: %q is not a numeric parameter", ErrInvalidPluralSelector, t.selector))
		}
	default:
		candidates := spec.numeric()
		if len(candidates) != 1 {
			errs = append(errs, fmt.Errorf("%w: cannot infer selector from %d numeric parameters", ErrInvalidPluralSelector, len(candidates)))
		} else {
			t.selector = candidates[0]
		}
	}

	return t, errs
}

// compilePattern splits s into literals and $name placeholders. "$$" is a
// literal dollar sign.
func compilePattern(s string, spec paramSpec) (pattern, []error) {
	var (
		p    pattern
		errs []error
		lit  strings.Builder
	)

	flush := func() {
		if lit.Len() > 0 {
			p = append(p, segment{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			lit.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '$' {
			lit.WriteByte('$')
			i++
			continue
		}

		j := i + 1
		for j < len(s) && isNameByte(s[j]) {
			j++
		}
		name := s[i+1 : j]
		if name == "" {
			errs = append(errs, fmt.Errorf("%w: dangling '$' at offset %d", ErrInvalidTemplate, i))
			lit.WriteByte('$')
			continue
		}
		if _, ok := spec[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: $%s", ErrUnknownPlaceholder, name))
		}

		flush()
		p = append(p, segment{param: name})
		i = j - 1
	}
	flush()

	return p, errs
}

func isNameByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// render fails when a placeholder names a parameter params does not carry.
func (t *template) render(params []kind.Param) (string, error) {
	branch := t.branches["other"]
	if t.selector != "" {
		if v, ok := paramValue(params, t.selector); ok {
			if b, ok := t.branches[t.category(v)]; ok {
				branch = b
			}
		}
	}

	printer := message.NewPrinter(t.tag)
	var sb strings.Builder
	for _, seg := range branch {
		if seg.param == "" {
			sb.WriteString(seg.text)
			continue
		}
		v, ok := paramValue(params, seg.param)
		if !ok {
			return "", fmt.Errorf("%w: $%s", ErrMissingParameter, seg.param)
		}
		sb.WriteString(formatValue(printer, v))
	}
	return sb.String(), nil
}

// category picks the branch for v. An explicit "zero" branch wins for the
// value zero in every language; otherwise the CLDR cardinal form decides.
func (t *template) category(v any) string {
	if isZero(v) {
		if _, ok := t.branches["zero"]; ok {
			return "zero"
		}
	}

	i, visible, frac := operands(v)
	base, _ := t.tag.Base()
	tag, _ := language.Compose(base)
	form := plural.Cardinal.MatchPlural(tag, i, visible, visible, frac, frac)
	for name, f := range pluralForms {
		if f == form {
			return name
		}
	}
	return "other"
}

func isZero(v any) bool {
	switch n := v.(type) {
	case int:
		return n == 0
	case float64:
		return n == 0
	}
	return false
}

// operands returns the CLDR integer digits, the number of visible fraction
// digits and the fraction digits of v. Trailing zeros never appear in the
// shortest representation, so v equals w and f equals t.
func operands(v any) (i, visible, frac int) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			n = -n
		}
		return n, 0, 0
	case float64:
		n = math.Abs(n)
		s := strconv.FormatFloat(n, 'f', -1, 64)
		intPart, fracPart, _ := strings.Cut(s, ".")
		i, _ = strconv.Atoi(intPart)
		if fracPart == "" {
			return i, 0, 0
		}
		frac, _ = strconv.Atoi(fracPart)
		return i, len(fracPart), frac
	}
	return 0, 0, 0
}

func paramValue(params []kind.Param, name string) (any, bool) {
	for _, p := range params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

func formatValue(p *message.Printer, v any) string {
	switch n := v.(type) {
	case int:
		return p.Sprint(number.Decimal(n))
	case float64:
		return p.Sprint(number.Decimal(n, number.MaxFractionDigits(fractionDigits(n))))
	case string:
		return n
	default:
		return fmt.Sprint(v)
	}
}

// fractionDigits counts the digits after the point in the shortest
// representation of f, so bounds render exactly as they were given.
func fractionDigits(f float64) int {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if _, frac, ok := strings.Cut(s, "."); ok {
		return len(frac)
	}
	return 0
}
