package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/almare/pkg/analytics"
	"github.com/dmitrymomot/almare/pkg/logger"
	"github.com/dmitrymomot/almare/pkg/mailer"
)

// Service runs the submission pipeline of both forms:
// validate, compose, deliver, record the outcome, then track.
type Service struct {
	cfg      Config
	sender   mailer.Sender
	sink     analytics.Sink
	catalog  *Catalog
	composer Composer
	redirect RedirectBuilder
	log      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock sets the clock used for email timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.composer.Now = now
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService validates cfg and returns a Service. A nil sink discards events.
func NewService(cfg Config, sender mailer.Sender, sink analytics.Sink, catalog *Catalog, opts ...ServiceOption) (*Service, error) {
	if sender == nil || catalog == nil {
		return nil, fmt.Errorf("%w: sender and catalog are required", ErrInvalidConfig)
	}
	if cfg.ServiceID == "" || cfg.ContactTemplateID == "" || cfg.DonationTemplateID == "" {
		return nil, fmt.Errorf("%w: service and template ids are required", ErrInvalidConfig)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, cfg.Timezone, err)
	}
	if sink == nil {
		sink = analytics.Nop
	}
	baseURL := cfg.PaymentBaseURL
	if baseURL == "" {
		baseURL = DefaultPaymentBaseURL
	}

	s := &Service{
		cfg:      cfg,
		sender:   sender,
		sink:     sink,
		catalog:  catalog,
		composer: NewComposer(cfg.Recipient, loc, nil),
		redirect: RedirectBuilder{BaseURL: baseURL},
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("forms"))
	return s, nil
}

// Catalog returns the currency catalog.
func (s *Service) Catalog() *Catalog { return s.catalog }

// Redirects returns the payment link builder.
func (s *Service) Redirects() RedirectBuilder { return s.redirect }

// FallbackAddress is shown to visitors when delivery fails.
func (s *Service) FallbackAddress() string { return s.cfg.Recipient }

// SubmitContact validates and delivers a contact message for inst. It
// returns ErrBusy unless inst is idle, validation errors without touching
// the state, and the delivery error after moving inst to error.
func (s *Service) SubmitContact(ctx context.Context, inst *Instance, in ContactInput) (ContactSubmission, error) {
	if err := checkInstance(inst, KindContact); err != nil {
		return ContactSubmission{}, err
	}
	sub, err := ValidateContact(in)
	if err != nil {
		return ContactSubmission{}, err
	}
	if err := inst.Machine.Submit(in.Values()); err != nil {
		return ContactSubmission{}, err
	}

	if err := s.deliver(ctx, inst, s.cfg.ContactTemplateID, s.composer.Contact(sub)); err != nil {
		return ContactSubmission{}, err
	}

	s.sink.Track(ctx, analytics.ContactForm(sub.Subject))
	s.succeed(ctx, inst)
	return sub, nil
}

// DonationResult is a delivered donation notice and where to pay.
type DonationResult struct {
	Submission  DonationSubmission
	Currency    Currency
	RedirectURL string
}

// FormattedAmount is the amount with the currency symbol.
func (r DonationResult) FormattedAmount() string {
	return r.Currency.Format(r.Submission.Amount)
}

// SubmitDonation validates the donation against the instance's active
// currency, delivers the notice, records the donation event and only then
// builds the payment link.
func (s *Service) SubmitDonation(ctx context.Context, inst *Instance, in DonationInput) (DonationResult, error) {
	if err := checkInstance(inst, KindDonation); err != nil {
		return DonationResult{}, err
	}
	cur := s.ActiveCurrency(inst)
	sub, err := ValidateDonation(in, cur)
	if err != nil {
		return DonationResult{}, err
	}
	if err := inst.Machine.Submit(in.Values()); err != nil {
		return DonationResult{}, err
	}

	if err := s.deliver(ctx, inst, s.cfg.DonationTemplateID, s.composer.Donation(sub, cur)); err != nil {
		return DonationResult{}, err
	}

	s.sink.Track(ctx, analytics.Donation(sub.Amount, sub.Currency))
	res := DonationResult{
		Submission:  sub,
		Currency:    cur,
		RedirectURL: s.redirect.Build(sub.Amount, sub.Currency),
	}
	s.succeed(ctx, inst)
	return res, nil
}

// ActiveCurrency is the currency chosen on inst, or the catalog default.
func (s *Service) ActiveCurrency(inst *Instance) Currency {
	if inst != nil {
		if cur, ok := s.catalog.Lookup(inst.Currency()); ok {
			return cur
		}
	}
	return s.catalog.Default()
}

// SelectCurrency switches the active currency of inst. The amount resets to
// the currency's default preset and a shown error is dismissed.
func (s *Service) SelectCurrency(inst *Instance, code string) (Currency, float64, error) {
	if err := checkInstance(inst, KindDonation); err != nil {
		return Currency{}, 0, err
	}
	cur, amount, err := s.catalog.Select(code)
	if err != nil {
		return Currency{}, 0, err
	}
	if inst.Machine.State() == StateSubmitting {
		return Currency{}, 0, ErrBusy
	}
	inst.setCurrency(cur.Code)
	if inst.Machine.State() == StateError {
		_ = inst.Machine.Dismiss()
	}
	return cur, amount, nil
}

func (s *Service) deliver(ctx context.Context, inst *Instance, templateID string, params mailer.Params) error {
	err := s.sender.Send(ctx, s.cfg.ServiceID, templateID, params)
	if err == nil {
		return nil
	}

	s.log.ErrorContext(ctx, "submission delivery failed",
		logger.Form(string(inst.Kind)),
		logger.FormInstance(inst.ID),
		logger.Error(err),
	)
	if ferr := inst.Machine.Fail(); ferr != nil {
		s.log.WarnContext(ctx, "could not record failed delivery",
			logger.FormInstance(inst.ID), logger.Error(ferr))
	}
	if !errors.Is(err, mailer.ErrDeliveryFailed) {
		err = &mailer.DeliveryError{ServiceID: s.cfg.ServiceID, TemplateID: templateID, Err: err}
	}
	return err
}

func (s *Service) succeed(ctx context.Context, inst *Instance) {
	if err := inst.Machine.Succeed(); err != nil {
		s.log.WarnContext(ctx, "could not record delivered submission",
			logger.FormInstance(inst.ID), logger.Error(err))
		return
	}
	s.log.InfoContext(ctx, "submission delivered",
		logger.Form(string(inst.Kind)),
		logger.FormInstance(inst.ID),
		logger.State(StateSuccess.Name()),
	)
}

func checkInstance(inst *Instance, kind Kind) error {
	if inst == nil || inst.Kind != kind {
		return ErrWrongInstanceKind
	}
	return nil
}
