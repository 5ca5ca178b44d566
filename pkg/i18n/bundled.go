package i18n

import (
	"context"
	"embed"
	"io/fs"
)

//go:embed locales/*.yaml
var bundledLocales embed.FS

// BundledLocales returns the English and French templates shipped with the
// package, one YAML file per language.
func BundledLocales() fs.FS {
	return bundledLocales
}

// NewBundledCatalog builds a Catalog from the bundled templates.
func NewBundledCatalog(ctx context.Context, opts ...Option) (*Catalog, error) {
	return NewCatalog(ctx, NewFSAdapter(NewYAMLParser(), bundledLocales, "locales"), opts...)
}
