// Package i18n loads YAML translations and resolves the visitor's language.
//
// Translations are nested maps addressed with dot-separated keys
// ("contact.form.name"). Strings may contain %{name} placeholders filled from
// name/value pairs. Lookups fall back to the default language and finally to
// the key itself, so a missing translation never renders an empty label.
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//	    i18n.WithDefaultLanguage("es"),
//	)
//	router.Use(i18n.Middleware(tr, "lang", "lang"))
//	title := tr.Tc(r.Context(), "contact.hero.title")
//
// Accept-Language negotiation uses golang.org/x/text/language.
package i18n
