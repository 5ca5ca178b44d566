package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// DefaultKeyPrefix is the key under which each language keeps its validation
// templates.
const DefaultKeyPrefix = "validation"

// Catalog resolves validation kinds to localized text. All templates are
// compiled by NewCatalog; afterwards the catalog is read-only and safe for
// concurrent use.
type Catalog struct {
	defaultLang    string
	keyPrefix      string
	customKinds    []kind.Custom
	logger         *slog.Logger
	missingLogMode bool

	defaultTag language.Tag
	tags       []language.Tag // default language first
	matcher    language.Matcher
	templates  map[string]map[string]*template // keyed by canonical tag
}

// NewCatalog loads translations from adapter and compiles every template
// under the key prefix. Configuration problems are reported together.
func NewCatalog(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		defaultLang: DefaultLanguage,
		keyPrefix:   DefaultKeyPrefix,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.compile(translations); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "validation templates loaded",
		logger.Component("i18n"),
		slog.Any("languages", c.SupportedLanguages()),
	)
	return c, nil
}

func (c *Catalog) compile(translations map[string]map[string]any) error {
	var errs []error

	defaultTag, err := language.Parse(c.defaultLang)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: default %q", ErrInvalidLanguage, c.defaultLang), err)
	}
	c.defaultTag = defaultTag

	specs := make(map[string]paramSpec)
	required := make([]string, 0, len(kind.Builtin())+len(c.customKinds))
	for _, k := range kind.Builtin() {
		specs[k.Code()] = specOf(k)
		required = append(required, k.Code())
	}
	for _, k := range c.customKinds {
		if kind.IsBuiltin(k.Code()) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrKindCodeCollision, k.Code()))
			continue
		}
		specs[k.Code()] = specOf(k)
		required = append(required, k.Code())
	}

	c.templates = make(map[string]map[string]*template, len(translations))

	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang))
			continue
		}

		raw, ok := lookup(translations[lang], c.keyPrefix)
		if !ok {
			continue
		}
		entries, ok := asStringMap(raw)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q is not a map", ErrInvalidTemplate, lang, c.keyPrefix))
			continue
		}

		compiled := make(map[string]*template, len(entries))
		for code, value := range entries {
			spec, known := specs[code]
			if !known {
				spec = paramSpec{}
			}
			tpl, terrs := compileTemplate(tag, value, spec)
			for _, e := range terrs {
				errs = append(errs, fmt.Errorf("%s: %s: %w", lang, code, e))
			}
			if tpl != nil {
				compiled[code] = tpl
			}
		}
		if _, dup := c.templates[tag.String()]; dup {
			errs = append(errs, fmt.Errorf("%w: %q duplicates another language key", ErrInvalidLanguage, lang))
			continue
		}
		c.templates[tag.String()] = compiled
	}

	defaults, ok := c.templates[c.defaultTag.String()]
	if !ok {
		errs = append(errs, fmt.Errorf("%w: %s", ErrDefaultLanguageMissing, c.defaultTag))
	} else {
		for _, code := range required {
			if _, ok := defaults[code]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s: %s", ErrMissingTemplate, c.defaultTag, code))
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.tags = []language.Tag{c.defaultTag}
	for _, lang := range c.SupportedLanguages() {
		if lang != c.defaultTag.String() {
			c.tags = append(c.tags, language.Make(lang))
		}
	}
	c.matcher = language.NewMatcher(c.tags)

	return nil
}

// Resolve renders k for locale. An unknown or unsupported locale resolves to
// the closest loaded language and then to the default language. A kind with
// no template in the chosen language uses the default language template.
//
// A Custom kind carrying a built-in code is rejected with
// ErrKindCodeCollision, and a template referencing a parameter k does not
// carry fails with ErrMissingParameter. No partial text is returned.
func (c *Catalog) Resolve(k kind.Kind, locale string) (string, error) {
	return c.resolve(context.Background(), k, locale)
}

// ResolveContext renders k for the locale stored in ctx. Log records carry
// ctx, so logger context extractors see it.
func (c *Catalog) ResolveContext(ctx context.Context, k kind.Kind) (string, error) {
	return c.resolve(ctx, k, GetLocale(ctx))
}

func (c *Catalog) resolve(ctx context.Context, k kind.Kind, locale string) (string, error) {
	if k == nil {
		return "", fmt.Errorf("%w: nil kind", ErrMissingTemplate)
	}

	tag := c.match(locale)
	code := k.Code()

	if _, custom := k.(kind.Custom); custom && kind.IsBuiltin(code) {
		return "", fmt.Errorf("%w: %q", ErrKindCodeCollision, code)
	}

	tpl, ok := c.templates[tag.String()][code]
	if !ok && tag.String() != c.defaultTag.String() {
		if c.missingLogMode {
			c.logger.WarnContext(ctx, "validation template missing, using default language",
				logger.Locale(tag.String()),
				logger.Code(code),
			)
		}
		tpl, ok = c.templates[c.defaultTag.String()][code]
	}
	if !ok {
		if c.missingLogMode {
			c.logger.WarnContext(ctx, "validation template not found", logger.Locale(tag.String()), logger.Code(code))
		}
		return "", fmt.Errorf("%w: %s", ErrMissingTemplate, code)
	}

	text, err := tpl.render(k.Params())
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", tag, code, err)
	}
	return text, nil
}

// match maps a requested locale to a loaded language.
func (c *Catalog) match(locale string) language.Tag {
	if locale == "" {
		return c.defaultTag
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return c.defaultTag
	}
	if _, ok := c.templates[tag.String()]; ok {
		return tag
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.defaultTag
	}
	return c.tags[idx]
}

// MatchLanguage picks the best loaded language for an Accept-Language header.
func (c *Catalog) MatchLanguage(header string) string {
	return matchAcceptLanguage(c.matcher, c.tags, header)
}

// DefaultLanguage returns the language used when nothing better matches.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultTag.String()
}

// SupportedLanguages returns the loaded languages, sorted.
func (c *Catalog) SupportedLanguages() []string {
	langs := make([]string, 0, len(c.templates))
	for lang := range c.templates {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether lang itself defines a template for code,
// without any fallback.
func (c *Catalog) HasTranslation(lang, code string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, ok := c.templates[tag.String()][code]
	return ok
}

// MissingTemplates lists, sorted, the codes defined for the default language
// but not for lang. Those codes fall back to the default language.
func (c *Catalog) MissingTemplates(lang string) []string {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil
	}
	own := c.templates[tag.String()]

	var missing []string
	for code := range c.templates[c.defaultTag.String()] {
		if _, ok := own[code]; !ok {
			missing = append(missing, code)
		}
	}
	sort.Strings(missing)
	return missing
}
