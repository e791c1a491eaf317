package site

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/almare/pkg/i18n"
	"github.com/dmitrymomot/almare/pkg/validator"
)

func testLocale(t *testing.T, lang string) Locale {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), Locales(), "."))
	require.NoError(t, err)
	return newLocale(tr, lang)
}

func TestPageSEO(t *testing.T) {
	t.Parallel()
	loc := testLocale(t, "es")

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		seo := pageSEO(loc, "", "/", "", "")
		assert.Equal(t, loc.T("seo.title"), seo.Title)
		assert.Equal(t, loc.T("seo.description"), seo.Description)
		assert.Empty(t, seo.CanonicalURL)
	})

	t.Run("page title and canonical url", func(t *testing.T) {
		t.Parallel()
		seo := pageSEO(loc, "https://fundacionalmare.cl/", "/about", "Nosotros", "Quiénes somos")
		assert.Equal(t, "Nosotros | "+loc.T("common.site_name"), seo.Title)
		assert.Equal(t, "Quiénes somos", seo.Description)
		assert.Equal(t, "https://fundacionalmare.cl/about", seo.CanonicalURL)
	})

	t.Run("long description is truncated", func(t *testing.T) {
		t.Parallel()
		seo := pageSEO(loc, "", "/", "", strings.Repeat("á", 200))
		assert.Equal(t, strings.Repeat("á", maxDescriptionLn)+"...", seo.Description)
	})
}

func TestLocale(t *testing.T) {
	t.Parallel()

	t.Run("empty language uses the default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "es", testLocale(t, "").Lang)
	})

	t.Run("switch", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en", testLocale(t, "es").Switch())
		assert.Equal(t, "es", testLocale(t, "en").Switch())
	})

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		d := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "18 de octubre de 2026", testLocale(t, "es").Date(d))
	})

	t.Run("field errors are translated", func(t *testing.T) {
		t.Parallel()
		loc := testLocale(t, "en")
		err := validator.ValidationErrors{
			{Field: "amount", Message: "Máximo $12000", TranslationKey: "validation.amount_max",
				TranslationValues: map[string]any{"symbol": "$", "amount": "12000"}},
			{Field: "amount", Message: "second"},
			{Field: "name", Message: "raw", TranslationKey: "validation.no_such_key"},
		}

		got := loc.FieldErrors(err)
		assert.Equal(t, map[string]string{"amount": "Maximum $12000", "name": "raw"}, got)
		assert.Nil(t, loc.FieldErrors(nil))
	})
}
