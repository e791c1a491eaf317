package site

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/almare/internal/forms"
	"github.com/dmitrymomot/almare/pkg/handler"
	"github.com/dmitrymomot/almare/pkg/mailer"
	"github.com/dmitrymomot/almare/pkg/validator"
)

const (
	contactStatusTarget  = "contact-status"
	donationStatusTarget = "donation-status"
)

// ErrDeliveryFailed is the HTTP face of a failed email delivery.
var ErrDeliveryFailed = handler.NewHTTPError(http.StatusBadGateway, "delivery_failed")

// FormStatus is the alert shown under a form.
type FormStatus struct {
	Target      string
	State       string
	Message     string
	RedirectURL string
}

// ContactForm is the data of the contact form fragment.
type ContactForm struct {
	ID     string
	Values map[string]string
	Errors map[string]string
	Status FormStatus
}

type contactRequest struct {
	FormID  string `form:"form_id" json:"form_id"`
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

func (c contactRequest) input() forms.ContactInput {
	return forms.ContactInput{Name: c.Name, Email: c.Email, Subject: c.Subject, Message: c.Message}
}

func (s *Site) contactPage(ctx handler.Context, _ struct{}) handler.Response {
	r := ctx.Request()
	loc := s.locale(r)
	title := loc.T("contact.hero.title")
	s.trackPageView(r, title)

	inst := s.tracker.Create(forms.KindContact)
	form := ContactForm{ID: inst.ID, Status: FormStatus{Target: contactStatusTarget, State: inst.Machine.State().Name()}}
	return handler.Templ(s.views.Page("contact", s.view(r, "contact", title, loc.T("contact.hero.subtitle"), form)))
}

func (s *Site) submitContact(ctx handler.Context, req contactRequest) handler.Response {
	r := ctx.Request()
	loc := s.locale(r)
	inst := s.tracker.Resolve(req.FormID, forms.KindContact)
	in := req.input()

	_, err := s.forms.SubmitContact(ctx, inst, in)
	if wantsJSON(r) {
		return formJSON(inst, err, nil)
	}

	form := ContactForm{ID: inst.ID, Status: FormStatus{Target: contactStatusTarget, State: inst.Machine.State().Name()}}
	status := http.StatusOK
	switch {
	case err == nil:
		form.Status.Message = loc.T("contact.form.success")
	case validator.IsValidationError(err):
		form.Values = in.Values()
		form.Errors = loc.FieldErrors(err)
		status = http.StatusUnprocessableEntity
	case errors.Is(err, forms.ErrBusy), errors.Is(err, forms.ErrInstanceClosed):
		return handler.Error(fmt.Errorf("%w: %w", handler.ErrConflict, err))
	case errors.Is(err, mailer.ErrDeliveryFailed):
		form.Values = inst.Machine.Values()
		form.Status.Message = loc.T("forms.delivery_failed", "email", s.forms.FallbackAddress())
		status = ErrDeliveryFailed.Code
	default:
		return handler.Error(err)
	}

	page := s.view(r, "contact", loc.T("contact.hero.title"), loc.T("contact.hero.subtitle"), form)
	return handler.WithStatus(status, handler.TemplMultiScript(
		s.views.Page("contact", page), "",
		handler.Patch(s.views.Partial("contact_form", page)),
		handler.Patch(s.views.Partial("form_status", page.WithData(form.Status))),
	))
}

// wantsJSON reports whether a non-DataStar client asked for JSON.
func wantsJSON(r *http.Request) bool {
	if handler.IsDataStar(r) {
		return false
	}
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

type formResult struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

func formJSON(inst *forms.Instance, err error, res *forms.DonationResult) handler.Response {
	switch {
	case err == nil:
		out := formResult{ID: inst.ID, State: inst.Machine.State().Name()}
		if res != nil {
			out.RedirectURL = res.RedirectURL
		}
		return handler.JSON(out)
	case errors.Is(err, forms.ErrBusy), errors.Is(err, forms.ErrInstanceClosed):
		return handler.JSONError(fmt.Errorf("%w: %w", handler.ErrConflict, err))
	case errors.Is(err, mailer.ErrDeliveryFailed):
		return handler.JSONError(fmt.Errorf("%w: %w", ErrDeliveryFailed, err))
	}
	return handler.JSONError(err)
}
