package site

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/almare/internal/forms"
	"github.com/dmitrymomot/almare/pkg/handler"
	"github.com/dmitrymomot/almare/pkg/mailer"
	"github.com/dmitrymomot/almare/pkg/qrcode"
	"github.com/dmitrymomot/almare/pkg/validator"
)

var donationImpact = []string{"counseling", "workshops", "support"}

// Preset is a one-click donation amount.
type Preset struct {
	Value string
	Label string
}

// DonationForm is the data of the donation form fragment.
type DonationForm struct {
	ID           string
	Currencies   []forms.Currency
	Selectable   bool
	Currency     forms.Currency
	Presets      []Preset
	Amount       string
	SubmitAmount string
	Signals      map[string]any
	Values       map[string]string
	Errors       map[string]string
	Status       FormStatus
	Impact       []string
}

func (s *Site) donationForm(inst *forms.Instance, cur forms.Currency, amount string) DonationForm {
	catalog := s.forms.Catalog()
	presets := make([]Preset, 0, len(cur.Presets))
	for _, p := range cur.Presets {
		presets = append(presets, Preset{Value: forms.FormatNumber(p), Label: cur.Format(p)})
	}
	return DonationForm{
		ID:           inst.ID,
		Currencies:   catalog.Enabled(),
		Selectable:   catalog.Selectable(),
		Currency:     cur,
		Presets:      presets,
		Amount:       amount,
		SubmitAmount: cur.Symbol + amount,
		Signals:      map[string]any{"amount": amount},
		Status:       FormStatus{Target: donationStatusTarget, State: inst.Machine.State().Name()},
		Impact:       donationImpact,
	}
}

func (s *Site) donationsPage(ctx handler.Context, _ struct{}) handler.Response {
	r := ctx.Request()
	loc := s.locale(r)
	title := loc.T("donations.hero.title")
	s.trackPageView(r, title)

	inst := s.tracker.Create(forms.KindDonation)
	cur := s.forms.ActiveCurrency(inst)
	form := s.donationForm(inst, cur, forms.FormatNumber(cur.DefaultAmount()))
	return handler.Templ(s.views.Page("donations", s.view(r, "donations", title, loc.T("donations.hero.subtitle"), form)))
}

type donationRequest struct {
	FormID   string `form:"form_id" json:"form_id"`
	Amount   string `form:"amount" json:"amount"`
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Message  string `form:"message" json:"message"`
	Currency string `form:"currency" json:"currency"`
}

func (d donationRequest) input() forms.DonationInput {
	return forms.DonationInput{Amount: d.Amount, Name: d.Name, Email: d.Email, Message: d.Message, Currency: d.Currency}
}

func (s *Site) submitDonation(ctx handler.Context, req donationRequest) handler.Response {
	r := ctx.Request()
	loc := s.locale(r)
	inst := s.tracker.Resolve(req.FormID, forms.KindDonation)
	in := req.input()

	res, err := s.forms.SubmitDonation(ctx, inst, in)
	if wantsJSON(r) {
		return formJSON(inst, err, &res)
	}

	cur := s.forms.ActiveCurrency(inst)
	status := http.StatusOK
	var (
		form   DonationForm
		script string
	)
	switch {
	case err == nil:
		form = s.donationForm(inst, cur, forms.FormatNumber(cur.DefaultAmount()))
		form.Status.Message = loc.T("donations.success.donation", "amount", res.FormattedAmount())
		form.Status.RedirectURL = res.RedirectURL
		script = "window.open(" + strconv.Quote(res.RedirectURL) + ", '_blank')"
	case validator.IsValidationError(err):
		form = s.donationForm(inst, cur, in.Amount)
		form.Values = in.Values()
		form.Errors = loc.FieldErrors(err)
		status = http.StatusUnprocessableEntity
	case errors.Is(err, forms.ErrBusy), errors.Is(err, forms.ErrInstanceClosed):
		return handler.Error(fmt.Errorf("%w: %w", handler.ErrConflict, err))
	case errors.Is(err, mailer.ErrDeliveryFailed):
		values := inst.Machine.Values()
		form = s.donationForm(inst, cur, values["amount"])
		form.Values = values
		form.Status.Message = loc.T("donations.error", "email", s.forms.FallbackAddress())
		status = ErrDeliveryFailed.Code
	default:
		return handler.Error(err)
	}

	page := s.view(r, "donations", loc.T("donations.hero.title"), loc.T("donations.hero.subtitle"), form)
	return handler.WithStatus(status, handler.TemplMultiScript(
		s.views.Page("donations", page), script,
		handler.Patch(s.views.Partial("donation_form", page)),
		handler.Patch(s.views.Partial("form_status", page.WithData(form.Status))),
	))
}

type currencyRequest struct {
	FormID   string `form:"form_id" json:"form_id"`
	Currency string `form:"currency" json:"currency"`
}

// selectCurrency switches the active currency of a donation form. The
// amount resets to the currency's default preset and errors are cleared.
func (s *Site) selectCurrency(ctx handler.Context, req currencyRequest) handler.Response {
	r := ctx.Request()
	loc := s.locale(r)
	inst := s.tracker.Resolve(req.FormID, forms.KindDonation)

	cur, amount, err := s.forms.SelectCurrency(inst, req.Currency)
	switch {
	case errors.Is(err, forms.ErrUnknownCurrency):
		return handler.Error(fmt.Errorf("%w: %w", handler.ErrBadRequest, err))
	case errors.Is(err, forms.ErrBusy), errors.Is(err, forms.ErrInstanceClosed):
		return handler.Error(fmt.Errorf("%w: %w", handler.ErrConflict, err))
	case err != nil:
		return handler.Error(err)
	}

	form := s.donationForm(inst, cur, forms.FormatNumber(amount))
	page := s.view(r, "donations", loc.T("donations.hero.title"), loc.T("donations.hero.subtitle"), form)
	return handler.TemplMultiScript(
		s.views.Page("donations", page), "",
		handler.Patch(s.views.Partial("donation_form", page)),
		handler.Patch(s.views.Partial("form_status", page.WithData(form.Status))),
	)
}

type qrRequest struct {
	Amount   string `query:"amount"`
	Currency string `query:"currency"`
}

// donationQR renders the payment link for the requested amount as a PNG.
// Unknown currencies and out of range amounts fall back to the defaults.
func (s *Site) donationQR(ctx handler.Context, req qrRequest) handler.Response {
	cur, ok := s.forms.Catalog().Lookup(req.Currency)
	if !ok {
		cur = s.forms.Catalog().Default()
	}
	amount, err := validator.ParseNumber(req.Amount)
	if err != nil || amount < cur.MinAmount || amount > cur.MaxAmount {
		amount = cur.DefaultAmount()
	}

	h, err := qrcode.Handler(s.forms.Redirects().Build(amount, cur.Code), s.cfg.QRSize)
	if err != nil {
		return handler.Error(err)
	}
	return serve(h)
}

type serveResponse struct {
	h http.Handler
}

func (s serveResponse) Render(w http.ResponseWriter, r *http.Request) error {
	s.h.ServeHTTP(w, r)
	return nil
}

func serve(h http.Handler) handler.Response { return serveResponse{h: h} }
