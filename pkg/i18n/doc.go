// Package i18n renders validation error kinds as localized text.
//
// The Catalog type implements validator.Resolver. It loads message templates
// through a TranslationAdapter, compiles them once at construction and then
// serves lookups without locking.
//
// # Templates
//
// Each language keeps its templates under a key prefix ("validation" by
// default), one entry per kind code:
//
//	en:
//	  validation:
//	    cannot_be_empty: "Cannot be empty"
//	    min_length:
//	      one: "Must be at least $min character"
//	      other: "Must be at least $min characters"
//
// A template is either a string or a plural map. Placeholders are written
// $name and must name a parameter of the kind; $$ renders a literal dollar
// sign. A plural map selects its branch with the CLDR cardinal rules of the
// language (zero, one, two, few, many, other). The "other" branch is
// mandatory, and the optional "plural" entry names the numeric parameter that
// drives selection when a kind has more than one. An explicit "zero" branch is
// used for the value zero in every language.
//
// Numbers are formatted with the conventions of the language, so 1000 renders
// as "1,000" in English and "1 000" in French.
//
// # Fallback
//
// A locale that is not loaded resolves to its closest loaded language
// (fr-CA to fr) and otherwise to the default language. A kind missing from
// the chosen language is rendered with the default language template. The
// default language must define every built-in kind and every kind registered
// with WithCustomKinds, which NewCatalog verifies.
//
// # Usage
//
//	catalog, err := i18n.NewCatalog(ctx,
//		i18n.NewDirectoryAdapter(nil, "./locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err // every configuration problem, joined
//	}
//
//	messages, err := errs.Render(catalog, catalog.MatchLanguage(r.Header.Get("Accept-Language")))
//
// NewBundledCatalog loads the English and French templates embedded in the
// package.
package i18n
