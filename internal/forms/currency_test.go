package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/almare/internal/forms"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("only USD is active by default", func(t *testing.T) {
		t.Parallel()
		c := forms.MustNewCatalog(forms.DefaultCurrencies()...)

		assert.Equal(t, "USD", c.Default().Code)
		assert.Len(t, c.Enabled(), 1)
		assert.False(t, c.Selectable())

		_, ok := c.Lookup("EUR")
		assert.False(t, ok)
	})

	t.Run("select resets amount to the second preset", func(t *testing.T) {
		t.Parallel()
		all := forms.DefaultCurrencies()
		for i := range all {
			all[i].Enabled = true
		}
		c := forms.MustNewCatalog(all...)
		assert.True(t, c.Selectable())

		cur, amount, err := c.Select("EUR")
		require.NoError(t, err)
		assert.Equal(t, "€", cur.Symbol)
		assert.Equal(t, 25.0, amount)

		_, amount, err = c.Select("CLP")
		require.NoError(t, err)
		assert.Equal(t, 20000.0, amount)
	})

	t.Run("unknown currency", func(t *testing.T) {
		t.Parallel()
		c := forms.MustNewCatalog(forms.DefaultCurrencies()...)
		_, _, err := c.Select("JPY")
		assert.ErrorIs(t, err, forms.ErrUnknownCurrency)
	})

	t.Run("rejects invalid sets", func(t *testing.T) {
		t.Parallel()
		_, err := forms.NewCatalog(forms.Currency{Code: "USD", MinAmount: 5, MaxAmount: 10})
		assert.ErrorIs(t, err, forms.ErrNoActiveCurrency)

		_, err = forms.NewCatalog(forms.Currency{Code: "USD", MinAmount: 10, MaxAmount: 5, Enabled: true})
		assert.ErrorIs(t, err, forms.ErrInvalidConfig)

		usd := forms.Currency{Code: "USD", MinAmount: 5, MaxAmount: 10, Enabled: true}
		_, err = forms.NewCatalog(usd, usd)
		assert.ErrorIs(t, err, forms.ErrInvalidConfig)
	})
}

func TestCurrencyFormat(t *testing.T) {
	t.Parallel()
	usd := forms.DefaultCurrencies()[0]

	assert.Equal(t, "$30", usd.Format(30))
	assert.Equal(t, "$12.5", usd.Format(12.5))
	assert.Equal(t, 30.0, usd.DefaultAmount())
	assert.Equal(t, 7.0, forms.Currency{MinAmount: 7}.DefaultAmount())
	assert.Equal(t, 3.0, forms.Currency{Presets: []float64{3}}.DefaultAmount())
}

func TestRedirectBuilder(t *testing.T) {
	t.Parallel()
	b := forms.RedirectBuilder{BaseURL: forms.DefaultPaymentBaseURL}

	assert.Equal(t, "https://www.paypal.me/FundacionAlmare/30USD", b.Build(30, "USD"))
	assert.Equal(t, "https://www.paypal.me/FundacionAlmare/12.5USD", b.Build(12.5, "USD"))

	b.BaseURL = "https://pay.example.org/"
	assert.Equal(t, "https://pay.example.org/20000CLP", b.Build(20000, "CLP"))
}
