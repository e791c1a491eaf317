package forms

import (
	"strings"

	"github.com/dmitrymomot/almare/pkg/sanitizer"
	"github.com/dmitrymomot/almare/pkg/validator"
)

// Submitted text is cleaned before validation. Markup never reaches the
// email templates.
var (
	cleanLine = sanitizer.Compose(sanitizer.StripHTML, sanitizer.SingleLine)
	cleanText = sanitizer.Compose(sanitizer.StripHTML, sanitizer.Multiline)
)

// ContactInput is the raw contact form.
type ContactInput struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// ContactSubmission is a validated contact message.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Values returns the fields keyed by form field name.
func (in ContactInput) Values() map[string]string {
	return map[string]string{"name": in.Name, "email": in.Email, "subject": in.Subject, "message": in.Message}
}

// ValidateContact checks every field and reports the first broken rule of
// each one.
func ValidateContact(in ContactInput) (ContactSubmission, error) {
	sub := ContactSubmission{
		Name:    cleanLine(in.Name),
		Email:   sanitizer.NormalizeEmail(in.Email),
		Subject: cleanLine(in.Subject),
		Message: cleanText(in.Message),
	}

	err := validator.Apply(
		validator.MinLenString("name", sub.Name, 2).
			WithMessage("Nombre requerido").
			WithTranslation("validation.name_required", nil),
		validator.ValidEmail("email", sub.Email).
			WithMessage("Email inválido").
			WithTranslation("validation.email_invalid", nil),
		validator.MinLenString("subject", sub.Subject, 5).
			WithMessage("Asunto requerido").
			WithTranslation("validation.subject_required", nil),
		validator.MinLenString("message", sub.Message, 10).
			WithMessage("Mensaje muy corto").
			WithTranslation("validation.message_too_short", nil),
	)
	if err != nil {
		return ContactSubmission{}, err
	}
	return sub, nil
}

// DonationInput is the raw donation form.
type DonationInput struct {
	Amount   string `form:"amount" json:"amount"`
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Message  string `form:"message" json:"message"`
	Currency string `form:"currency" json:"currency"`
}

// Values returns the fields keyed by form field name.
func (in DonationInput) Values() map[string]string {
	return map[string]string{
		"amount": in.Amount, "name": in.Name, "email": in.Email,
		"message": in.Message, "currency": in.Currency,
	}
}

// DonationSubmission is a validated donation notice.
type DonationSubmission struct {
	Amount   float64
	Name     string
	Email    string
	Message  string // may be empty
	Currency string
}

// ValidateDonation checks the donation against the active currency cur.
// An empty currency field means the active one.
func ValidateDonation(in DonationInput, cur Currency) (DonationSubmission, error) {
	code := strings.TrimSpace(in.Currency)
	if code == "" {
		code = cur.Code
	}
	amount, _ := validator.ParseNumber(in.Amount)

	sub := DonationSubmission{
		Amount:   amount,
		Name:     cleanLine(in.Name),
		Email:    sanitizer.NormalizeEmail(in.Email),
		Message:  cleanText(in.Message),
		Currency: code,
	}

	bound := func(v float64) map[string]any {
		return map[string]any{"symbol": cur.Symbol, "amount": FormatNumber(v)}
	}
	err := validator.Apply(
		validator.NumericString("amount", in.Amount).
			WithMessage("Monto inválido").
			WithTranslation("validation.amount_invalid", nil),
		validator.MinNum("amount", amount, cur.MinAmount).
			WithMessage("Mínimo "+cur.Format(cur.MinAmount)).
			WithTranslation("validation.amount_min", bound(cur.MinAmount)),
		validator.MaxNum("amount", amount, cur.MaxAmount).
			WithMessage("Máximo "+cur.Format(cur.MaxAmount)).
			WithTranslation("validation.amount_max", bound(cur.MaxAmount)),
		validator.MinLenString("name", sub.Name, 2).
			WithMessage("Nombre requerido").
			WithTranslation("validation.name_required", nil),
		validator.ValidEmail("email", sub.Email).
			WithMessage("Email inválido").
			WithTranslation("validation.email_invalid", nil),
		validator.OneOfString("currency", code, cur.Code).
			WithMessage("Moneda no disponible").
			WithTranslation("validation.currency", map[string]any{"code": cur.Code}),
	)
	if err != nil {
		return DonationSubmission{}, err
	}
	return sub, nil
}
