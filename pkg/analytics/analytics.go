package analytics

import (
	"context"
	"strconv"
	"time"
)

// Event is one analytics record.
type Event struct {
	Action    string
	Category  string
	Label     string
	Title     string // page title, page views only
	Timestamp time.Time
}

// Sink records events. Track never fails from the caller's point of view;
// sinks log their own errors.
type Sink interface {
	Track(ctx context.Context, e Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, e Event)

func (f SinkFunc) Track(ctx context.Context, e Event) { f(ctx, e) }

const (
	ActionPageView    = "page_view"
	ActionContactForm = "contact_form"
	ActionDonation    = "donation"

	CategoryNavigation  = "navigation"
	CategoryEngagement  = "engagement"
	CategoryFundraising = "fundraising"
)

// PageView records a rendered page.
func PageView(url, title string) Event {
	return Event{Action: ActionPageView, Category: CategoryNavigation, Label: url, Title: title}
}

// ContactForm records a delivered contact message.
func ContactForm(subject string) Event {
	return Event{Action: ActionContactForm, Category: CategoryEngagement, Label: subject}
}

// Donation records a delivered donation notice, labelled "<amount> <currency>".
func Donation(amount float64, currency string) Event {
	return Event{
		Action:   ActionDonation,
		Category: CategoryFundraising,
		Label:    strconv.FormatFloat(amount, 'f', -1, 64) + " " + currency,
	}
}

// Multi fans an event out to every sink, in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Track(ctx, e)
			}
		}
	})
}

// Stamped sets Timestamp on events that have none, using now.
func Stamped(next Sink, now func() time.Time) Sink {
	if now == nil {
		now = time.Now
	}
	return SinkFunc(func(ctx context.Context, e Event) {
		if e.Timestamp.IsZero() {
			e.Timestamp = now()
		}
		next.Track(ctx, e)
	})
}

// Nop discards events.
var Nop Sink = SinkFunc(func(context.Context, Event) {})
