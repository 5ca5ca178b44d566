package i18n

import (
	"log/slog"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested locale is
// unknown and for templates other languages do not define. Every built-in
// kind must have a template in this language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithKeyPrefix sets the dot-separated key under which templates are stored,
// "validation" by default.
func WithKeyPrefix(prefix string) Option {
	return func(c *Catalog) {
		if prefix != "" {
			c.keyPrefix = prefix
		}
	}
}

// WithCustomKinds registers caller-defined kinds. Their templates are then
// required in the default language, like the built-in ones.
func WithCustomKinds(kinds ...kind.Custom) Option {
	return func(c *Catalog) {
		c.customKinds = append(c.customKinds, kinds...)
	}
}

// WithLogger provides a customizable logger for the catalog.
// If not specified, a discard logger is used.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithMissingTranslationsLogging controls whether fallbacks to the default
// language are logged. Default is false to avoid excessive logging.
func WithMissingTranslationsLogging(log bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = log
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(c *Catalog) {
		c.logger = logger.Discard()
		c.missingLogMode = false
	}
}
