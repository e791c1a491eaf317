package i18n

import (
	"net/http"
	"time"
)

// LangExtractor returns the language requested by r, or "".
type LangExtractor func(r *http.Request) string

// ExtractorConfig configures DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// DefaultLangExtractor checks, in order: the query parameter, the cookie and
// the Accept-Language header. Only supported languages are returned.
func DefaultLangExtractor(cfg ExtractorConfig) LangExtractor {
	return func(r *http.Request) string {
		if cfg.QueryParamName != "" {
			if lang := normalizeLang(r.URL.Query().Get(cfg.QueryParamName), cfg.SupportedLangs); lang != "" {
				return lang
			}
		}
		if cfg.CookieName != "" {
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := normalizeLang(c.Value, cfg.SupportedLangs); lang != "" {
					return lang
				}
			}
		}
		return MatchAcceptLanguage(r.Header.Get("Accept-Language"), cfg.SupportedLangs)
	}
}

// Middleware resolves the request language with the translator's supported
// languages and stores it in the request context. A language chosen
// explicitly with the query parameter is remembered in a cookie.
func Middleware(t *Translator, cookieName, queryParam string) func(http.Handler) http.Handler {
	extract := DefaultLangExtractor(ExtractorConfig{
		CookieName:     cookieName,
		QueryParamName: queryParam,
		SupportedLangs: t.Languages(),
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extract(r)
			if lang == "" {
				lang = t.DefaultLanguage()
			}

			if queryParam != "" && cookieName != "" && r.URL.Query().Has(queryParam) {
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    lang,
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
