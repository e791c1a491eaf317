package site

import (
	"strconv"
	"time"

	"github.com/dmitrymomot/almare/pkg/i18n"
	"github.com/dmitrymomot/almare/pkg/validator"
)

// Locale binds the translator to one request language for templates.
type Locale struct {
	Lang string
	tr   *i18n.Translator
}

func newLocale(tr *i18n.Translator, lang string) Locale {
	if lang == "" {
		lang = tr.DefaultLanguage()
	}
	return Locale{Lang: lang, tr: tr}
}

// T translates key; args are name/value pairs.
func (l Locale) T(key string, args ...string) string {
	return l.tr.T(l.Lang, key, args...)
}

// List returns a translated list.
func (l Locale) List(key string) []string {
	return l.tr.List(l.Lang, key)
}

// Date renders t as a long date in the locale's language.
func (l Locale) Date(t time.Time) string {
	month := t.Month().String()
	if months := l.List("common.months"); len(months) == 12 {
		month = months[t.Month()-1]
	}
	return l.T("common.date_format",
		"day", strconv.Itoa(t.Day()),
		"month", month,
		"year", strconv.Itoa(t.Year()),
	)
}

// Switch is the other supported language, for the header toggle.
func (l Locale) Switch() string {
	for _, lang := range l.tr.Languages() {
		if lang != l.Lang {
			return lang
		}
	}
	return l.Lang
}

// FieldErrors translates the first error of every field.
func (l Locale) FieldErrors(err error) map[string]string {
	errs := validator.ExtractValidationErrors(err)
	if errs.IsEmpty() {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := out[e.Field]; ok {
			continue
		}
		msg := e.Message
		if e.TranslationKey != "" && l.tr.Has(l.Lang, e.TranslationKey) {
			msg = l.tr.Tv(l.Lang, e.TranslationKey, e.TranslationValues)
		}
		out[e.Field] = msg
	}
	return out
}
