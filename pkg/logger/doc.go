// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler by Format, applies
// static attributes and wraps the handler in LogHandlerDecorator, which adds
// attributes pulled from the context of each record (for example the locale
// a request is rendered in).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithJSONFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("localecheck")),
//	)
//	log.Warn("template missing", logger.Locale("fr"), logger.Code("min_length"))
//
// Config reads LOG_LEVEL and LOG_FORMAT through pkg/config and converts them
// to options with Config.Options.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
