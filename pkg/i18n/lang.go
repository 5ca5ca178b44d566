package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size parsed. 4KB is generous for
// legitimate headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage returns the supported language that best serves an
// Accept-Language header, honoring quality values. Regional variants match
// their base language (fr-CA is served by fr). When nothing matches, or the
// header is empty or malformed, defaultLang is returned.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supportedLangs))
	names := make([]string, 0, len(supportedLangs))
	for _, lang := range supportedLangs {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, lang)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	idx, ok := bestMatch(language.NewMatcher(tags), header)
	if !ok {
		return defaultLang
	}
	return names[idx]
}

func matchAcceptLanguage(matcher language.Matcher, tags []language.Tag, header string) string {
	idx, ok := bestMatch(matcher, header)
	if !ok {
		idx = 0
	}
	return tags[idx].String()
}

func bestMatch(matcher language.Matcher, header string) (int, bool) {
	if header == "" {
		return 0, false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return 0, false
	}

	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return 0, false
	}
	return idx, true
}
