// Command localecheck lints and previews validation message templates.
//
//	localecheck lint --dir ./locales --default en
//	localecheck render --dir ./locales --locale fr --locale de-CH
//
// Without --dir the templates bundled with pkg/i18n are used. Flags fall back
// to LOCALES_DIR, DEFAULT_LOCALE and LOCALE_KEY_PREFIX; LOG_LEVEL and
// LOG_FORMAT configure diagnostics written to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "localecheck:", err)
		stop()
		os.Exit(1)
	}
}
