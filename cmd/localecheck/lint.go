package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

func newLintCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Compile every template and report languages that fall back to the default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			catalog, err := a.catalog(ctx)
			if err != nil {
				a.log.ErrorContext(ctx, "templates rejected", logger.Path(a.dir), logger.Error(err))
				fmt.Fprintln(a.out, "FAIL")
				for _, line := range errorLines(err) {
					fmt.Fprintln(a.out, "  "+line)
				}
				return errLintFailed
			}

			def := catalog.DefaultLanguage()
			incomplete := 0
			for _, lang := range catalog.SupportedLanguages() {
				if lang == def {
					fmt.Fprintf(a.out, "%s: ok (default)\n", lang)
					continue
				}
				missing := catalog.MissingTemplates(lang)
				if len(missing) == 0 {
					fmt.Fprintf(a.out, "%s: ok\n", lang)
					continue
				}
				incomplete++
				fmt.Fprintf(a.out, "%s: %d missing, falls back to %s: %s\n",
					lang, len(missing), def, strings.Join(missing, ", "))
			}

			if strict && incomplete > 0 {
				return fmt.Errorf("%w: %d incomplete language(s)", errLintFailed, incomplete)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a language lacks templates the default language has")
	return cmd
}

// errorLines splits the top level of an errors.Join into one line per
// problem. Nested joins are folded with ": ".
func errorLines(err error) []string {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, strings.ReplaceAll(e.Error(), "\n", ": "))
	}
	return lines
}
