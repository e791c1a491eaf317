package forms

import (
	"fmt"
	"strconv"
)

// Currency describes one donation currency.
type Currency struct {
	Code      string
	Symbol    string
	Name      string
	MinAmount float64
	MaxAmount float64
	Presets   []float64
	Enabled   bool
}

// DefaultAmount is the preset preselected when the currency becomes active.
func (c Currency) DefaultAmount() float64 {
	switch {
	case len(c.Presets) > 1:
		return c.Presets[1]
	case len(c.Presets) == 1:
		return c.Presets[0]
	}
	return c.MinAmount
}

// Format renders amount with the currency symbol, e.g. "$30".
func (c Currency) Format(amount float64) string {
	return c.Symbol + FormatNumber(amount)
}

// FormatNumber renders amount in its shortest exact form: 30, 12.5.
func FormatNumber(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// DefaultCurrencies is the static currency set. Only USD is enabled; EUR and
// CLP are configured for when the payment provider accepts them.
func DefaultCurrencies() []Currency {
	return []Currency{
		{Code: "USD", Symbol: "$", Name: "US Dollar", MinAmount: 5, MaxAmount: 12000, Presets: []float64{10, 30, 60, 120}, Enabled: true},
		{Code: "EUR", Symbol: "€", Name: "Euro", MinAmount: 5, MaxAmount: 10000, Presets: []float64{10, 25, 50, 100}},
		{Code: "CLP", Symbol: "$", Name: "Peso Chileno", MinAmount: 4000, MaxAmount: 8000000, Presets: []float64{8000, 20000, 40000, 80000}},
	}
}

// Catalog is an immutable set of currencies.
type Catalog struct {
	all     []Currency
	enabled []Currency
}

// NewCatalog requires at least one enabled currency with sane bounds.
func NewCatalog(currencies ...Currency) (*Catalog, error) {
	c := &Catalog{all: currencies}
	seen := make(map[string]bool, len(currencies))
	for _, cur := range currencies {
		if cur.Code == "" || seen[cur.Code] {
			return nil, fmt.Errorf("%w: empty or duplicate currency code %q", ErrInvalidConfig, cur.Code)
		}
		seen[cur.Code] = true
		if cur.MinAmount <= 0 || cur.MaxAmount < cur.MinAmount {
			return nil, fmt.Errorf("%w: bad bounds for %s", ErrInvalidConfig, cur.Code)
		}
		if cur.Enabled {
			c.enabled = append(c.enabled, cur)
		}
	}
	if len(c.enabled) == 0 {
		return nil, ErrNoActiveCurrency
	}
	return c, nil
}

// MustNewCatalog panics on an invalid currency set.
func MustNewCatalog(currencies ...Currency) *Catalog {
	c, err := NewCatalog(currencies...)
	if err != nil {
		panic(err)
	}
	return c
}

// Enabled lists the currencies a donor can pick, in configured order.
func (c *Catalog) Enabled() []Currency {
	return append([]Currency(nil), c.enabled...)
}

// Selectable reports whether the donor gets a currency picker.
func (c *Catalog) Selectable() bool {
	return len(c.enabled) > 1
}

// Default is the first enabled currency.
func (c *Catalog) Default() Currency {
	return c.enabled[0]
}

// Lookup finds an enabled currency by code.
func (c *Catalog) Lookup(code string) (Currency, bool) {
	for _, cur := range c.enabled {
		if cur.Code == code {
			return cur, true
		}
	}
	return Currency{}, false
}

// Select makes code the active currency and returns it with the amount the
// form resets to.
func (c *Catalog) Select(code string) (Currency, float64, error) {
	cur, ok := c.Lookup(code)
	if !ok {
		return Currency{}, 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return cur, cur.DefaultAmount(), nil
}
