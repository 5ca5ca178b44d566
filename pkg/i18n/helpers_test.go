package i18n_test

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/i18n"
)

// bundledTree returns a fresh copy of the bundled templates of lang.
func bundledTree(t *testing.T, lang string) map[string]any {
	t.Helper()
	content, err := fs.ReadFile(i18n.BundledLocales(), "locales/"+lang+".yaml")
	require.NoError(t, err)

	tree, err := i18n.NewYAMLParser().Parse(context.Background(), string(content))
	require.NoError(t, err)
	require.Contains(t, tree, lang)
	return tree[lang]
}

// templates returns the validation subtree of a language tree.
func templates(t *testing.T, tree map[string]any) map[string]any {
	t.Helper()
	m, ok := tree["validation"].(map[string]any)
	require.True(t, ok)
	return m
}

// englishWith returns the complete English templates plus overrides.
func englishWith(t *testing.T, overrides map[string]any) map[string]any {
	t.Helper()
	tree := bundledTree(t, "en")
	tpl := templates(t, tree)
	for code, v := range overrides {
		tpl[code] = v
	}
	return tree
}

func newCatalog(t *testing.T, data map[string]map[string]any, opts ...i18n.Option) *i18n.Catalog {
	t.Helper()
	c, err := i18n.NewCatalog(context.Background(), &i18n.MapAdapter{Data: data}, opts...)
	require.NoError(t, err)
	return c
}
