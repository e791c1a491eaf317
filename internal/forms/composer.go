package forms

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/dmitrymomot/almare/pkg/mailer"
)

// NoMessage replaces an empty donation message.
const NoMessage = "Sin mensaje"

// Composer maps submissions to email template parameters.
type Composer struct {
	Recipient string
	Location  *time.Location
	Now       func() time.Time
}

// NewComposer returns a Composer; a nil loc means UTC and a nil now means time.Now.
func NewComposer(recipient string, loc *time.Location, now func() time.Time) Composer {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return Composer{Recipient: recipient, Location: loc, Now: now}
}

// Contact builds the contact template parameters.
func (c Composer) Contact(s ContactSubmission) mailer.Params {
	return mailer.Params{
		"from_name":  s.Name,
		"from_email": s.Email,
		"subject":    s.Subject,
		"message":    s.Message,
		"to_email":   c.Recipient,
		"sent_date":  LongDate(c.Now(), c.Location),
	}
}

// Donation builds the donation template parameters.
func (c Composer) Donation(s DonationSubmission, cur Currency) mailer.Params {
	msg := s.Message
	if msg == "" {
		msg = NoMessage
	}
	return mailer.Params{
		"donor_name":      s.Name,
		"donor_email":     s.Email,
		"donation_amount": cur.Format(s.Amount),
		"currency":        s.Currency,
		"message":         msg,
		"donation_date":   LongDate(c.Now(), c.Location),
		"to_email":        c.Recipient,
	}
}

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate formats t in loc the es-CL long way: "18 de octubre de 2026, 14:05".
func LongDate(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%d de %s de %d, %02d:%02d", t.Day(), monthsES[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
