package forms

import "strings"

// DefaultPaymentBaseURL is the foundation's PayPal.Me page.
const DefaultPaymentBaseURL = "https://www.paypal.me/FundacionAlmare"

// RedirectBuilder builds payment links.
type RedirectBuilder struct {
	BaseURL string
}

// Build appends "<amount><code>" to the base URL. The amount is not
// URL-encoded; FormatNumber only ever yields ASCII digits and a dot.
func (b RedirectBuilder) Build(amount float64, code string) string {
	return strings.TrimRight(b.BaseURL, "/") + "/" + FormatNumber(amount) + code
}
