package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
)

var errLintFailed = errors.New("locale templates have problems")

// cliConfig is read from the environment; flags take precedence.
type cliConfig struct {
	LocalesDir    string `env:"LOCALES_DIR"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
	KeyPrefix     string `env:"LOCALE_KEY_PREFIX" envDefault:"validation"`
	Log           logger.Config
}

type app struct {
	out    io.Writer
	errOut io.Writer

	envFiles      []string
	dir           string
	defaultLocale string
	keyPrefix     string

	log *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:               "localecheck",
		Short:             "Lint and preview validation message templates",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "read environment from these .env files instead of ./.env")
	flags.StringVar(&a.dir, "dir", "", "templates directory (default: bundled templates, env LOCALES_DIR)")
	flags.StringVar(&a.defaultLocale, "default", i18n.DefaultLanguage, "default language (env DEFAULT_LOCALE)")
	flags.StringVar(&a.keyPrefix, "key-prefix", i18n.DefaultKeyPrefix, "key holding the templates of each language (env LOCALE_KEY_PREFIX)")

	root.AddCommand(newLintCmd(a), newRenderCmd(a))
	return root
}

// setup merges environment configuration into unset flags and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var cfg cliConfig
	if err := config.Load(&cfg, a.envFiles...); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("dir") {
		a.dir = cfg.LocalesDir
	}
	if !flags.Changed("default") {
		a.defaultLocale = cfg.DefaultLocale
	}
	if !flags.Changed("key-prefix") {
		a.keyPrefix = cfg.KeyPrefix
	}

	opts, err := cfg.Log.Options()
	if err != nil {
		return err
	}
	a.log = logger.New(append(opts,
		logger.WithOutput(a.errOut),
		logger.WithAttr(logger.Component("localecheck")),
		logger.WithContextExtractors(localeFromContext),
	)...)
	return nil
}

func (a *app) catalog(ctx context.Context) (*i18n.Catalog, error) {
	opts := []i18n.Option{
		i18n.WithDefaultLanguage(a.defaultLocale),
		i18n.WithKeyPrefix(a.keyPrefix),
		i18n.WithLogger(a.log),
		i18n.WithMissingTranslationsLogging(true),
	}
	if a.dir == "" {
		a.log.DebugContext(ctx, "using bundled templates")
		return i18n.NewBundledCatalog(ctx, opts...)
	}
	a.log.DebugContext(ctx, "loading templates", logger.Path(a.dir))
	return i18n.NewCatalog(ctx, i18n.NewDirectoryAdapter(nil, a.dir), opts...)
}

// localeFromContext records the locale a command asked for. The catalog logs
// the language it matched under "locale".
func localeFromContext(ctx context.Context) (slog.Attr, bool) {
	if l := i18n.GetLocale(ctx); l != "" {
		return slog.String("requested_locale", l), true
	}
	return slog.Attr{}, false
}
