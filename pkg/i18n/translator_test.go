package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/almare/pkg/i18n"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"es": {
			"contact": map[string]any{
				"title":   "Contáctanos",
				"success": "Gracias %{name}",
			},
			"only_es": "solo español",
			"months":  []any{"enero", "febrero"},
		},
		"en": {
			"contact": map[string]any{
				"title":   "Contact us",
				"success": "Thanks %{name}",
			},
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, i18n.WithDefaultLanguage("es"))
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"nested key", "en", "contact.title", nil, "Contact us"},
		{"placeholder", "es", "contact.success", []string{"name", "Ana"}, "Gracias Ana"},
		{"unknown placeholder kept", "en", "contact.success", nil, "Thanks %{name}"},
		{"falls back to default language", "en", "only_es", nil, "solo español"},
		{"unsupported language falls back", "de", "contact.title", nil, "Contáctanos"},
		{"missing key returns key", "en", "contact.missing", nil, "contact.missing"},
		{"non string value returns key", "es", "contact", nil, "contact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_Helpers(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, []string{"en", "es"}, tr.Languages())
	assert.Equal(t, "es", tr.DefaultLanguage())
	assert.True(t, tr.Supports("en"))
	assert.False(t, tr.Supports("de"))
	assert.True(t, tr.Has("es", "only_es"))
	assert.False(t, tr.Has("en", "only_es"))

	assert.Equal(t, "Thanks 5", tr.Tv("en", "contact.success", map[string]any{"name": 5}))
	assert.Equal(t, []string{"enero", "febrero"}, tr.List("en", "months"))
	assert.Nil(t, tr.List("es", "contact.title"))

	ctx := i18n.SetLocale(context.Background(), "en")
	assert.Equal(t, "Contact us", tr.Tc(ctx, "contact.title"))
	assert.Equal(t, "Contáctanos", tr.Tc(context.Background(), "contact.title"))
}

func TestNewTranslator_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
	assert.ErrorIs(t, err, i18n.ErrInvalidTranslationFile)
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/common.yaml":  {Data: []byte("es:\n  nav:\n    home: Inicio\nen:\n  nav:\n    home: Home\n")},
		"locales/contact.yaml": {Data: []byte("es:\n  nav:\n    contact: Contacto\n")},
		"locales/README.md":    {Data: []byte("ignored")},
	}

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
	require.NoError(t, err)

	assert.Equal(t, "Inicio", tr.T("es", "nav.home"))
	assert.Equal(t, "Contacto", tr.T("es", "nav.contact"))
	assert.Equal(t, "Home", tr.T("en", "nav.home"))

	t.Run("invalid yaml", func(t *testing.T) {
		bad := fstest.MapFS{"l/a.yaml": {Data: []byte("es: [unclosed")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), bad, "l").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language must be a map", func(t *testing.T) {
		bad := fstest.MapFS{"l/a.yml": {Data: []byte("es: hola\n")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), bad, "l").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslationFile)
	})

	t.Run("empty directory", func(t *testing.T) {
		empty := fstest.MapFS{"l/readme.txt": {Data: []byte("x")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), empty, "l").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationsFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingTranslationsCancel)
	})
}
