package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/validator/kind"
)

// sampleKinds returns every built-in kind with representative parameters.
func sampleKinds() []kind.Kind {
	return []kind.Kind{
		kind.CannotBeEmpty{},
		kind.MinLength{Min: 8},
		kind.MaxLength{Max: 1},
		kind.MustHaveSpecialChars{},
		kind.MustHaveUppercaseAndLowercase{},
		kind.MustHaveUppercase{},
		kind.MustHaveLowercase{},
		kind.MustHaveDigit{},
		kind.PasswordDoesNotMatch{},
		kind.UsernameTaken{},
		kind.CheckUnavailable{},
		kind.InvalidURL{},
		kind.EmailInvalid{},
		kind.EmailDoesNotMatch{},
		kind.NumberMinValue{Min: 0.5},
		kind.NumberMaxValue{Max: 10000},
		kind.DateMin{Min: "2024-01-01"},
		kind.DateMax{Max: "2024-12-31"},
		kind.DateTimeMin{Min: "2024-01-01T09:00:00Z"},
		kind.DateTimeMax{Max: "2024-12-31T18:00:00+02:00"},
		kind.DateTimeNaiveMin{Min: "2024-01-01T09:00:00"},
		kind.DateTimeNaiveMax{Max: "2024-12-31T18:00:00"},
		kind.TimeMin{Min: "09:00:00"},
		kind.TimeMax{Max: "18:00:00"},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var locales []string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every built-in kind with sample parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			targets := locales
			if len(targets) == 0 {
				targets = catalog.SupportedLanguages()
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			for i, locale := range targets {
				ctx := i18n.SetLocale(cmd.Context(), locale)
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "[%s]\n", locale)
				for _, k := range sampleKinds() {
					text, err := catalog.ResolveContext(ctx, k)
					if err != nil {
						a.log.ErrorContext(ctx, "render failed", logger.Code(k.Code()), logger.Error(err))
						return err
					}
					fmt.Fprintf(w, "  %s\t%s\n", k.Code(), text)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringSliceVar(&locales, "locale", nil, "locales to render (default: every loaded language)")
	return cmd
}
