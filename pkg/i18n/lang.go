package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header we are willing to parse.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header, returning "" when nothing matches.
func MatchAcceptLanguage(header string, supported []string) string {
	if header == "" || len(supported) == 0 {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(s))
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return ""
	}
	return supported[idx]
}

// normalizeLang reduces a tag such as "en-US" to a supported base language.
func normalizeLang(lang string, supported []string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || len(lang) > 35 {
		return ""
	}
	for _, s := range supported {
		if s == lang {
			return s
		}
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		for _, s := range supported {
			if s == base {
				return s
			}
		}
	}
	return ""
}
