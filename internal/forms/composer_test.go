package forms_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/almare/internal/forms"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 18, 17, 5, 0, 0, time.UTC)
}

func TestLongDate(t *testing.T) {
	t.Parallel()
	clt := time.FixedZone("CLT", -3*60*60)

	assert.Equal(t, "18 de octubre de 2026, 14:05", forms.LongDate(fixedNow(), clt))
	assert.Equal(t, "1 de enero de 2027, 00:00",
		forms.LongDate(time.Date(2027, time.January, 1, 3, 0, 0, 0, time.UTC), clt))
}

func TestComposer(t *testing.T) {
	t.Parallel()
	c := forms.NewComposer("contacto@fundacionalmare.cl", time.UTC, fixedNow)

	t.Run("contact", func(t *testing.T) {
		t.Parallel()
		p := c.Contact(forms.ContactSubmission{
			Name: "Ana", Email: "ana@x.com", Subject: "Volunteering", Message: "I would like to help out",
		})
		assert.Equal(t, "Ana", p["from_name"])
		assert.Equal(t, "ana@x.com", p["from_email"])
		assert.Equal(t, "Volunteering", p["subject"])
		assert.Equal(t, "I would like to help out", p["message"])
		assert.Equal(t, "contacto@fundacionalmare.cl", p["to_email"])
		assert.Equal(t, "18 de octubre de 2026, 17:05", p["sent_date"])
	})

	t.Run("donation", func(t *testing.T) {
		t.Parallel()
		usd := forms.DefaultCurrencies()[0]
		p := c.Donation(forms.DonationSubmission{
			Amount: 30, Name: "Leo", Email: "leo@x.com", Currency: "USD",
		}, usd)
		assert.Equal(t, "Leo", p["donor_name"])
		assert.Equal(t, "leo@x.com", p["donor_email"])
		assert.Equal(t, "$30", p["donation_amount"])
		assert.Equal(t, "USD", p["currency"])
		assert.Equal(t, forms.NoMessage, p["message"])
		assert.NotEmpty(t, p["donation_date"])
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		c := forms.NewComposer("a@b.cl", nil, nil)
		assert.Equal(t, time.UTC, c.Location)
		assert.NotEmpty(t, c.Contact(forms.ContactSubmission{})["sent_date"])
	})
}
