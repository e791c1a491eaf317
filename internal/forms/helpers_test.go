package forms_test

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/almare/internal/forms"
	"github.com/dmitrymomot/almare/pkg/analytics"
)

// fakeScheduler records scheduled resets and runs them on demand.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) forms.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Elapse runs every scheduled reset whose delay is at most d.
func (s *fakeScheduler) Elapse(d time.Duration) {
	s.mu.Lock()
	var due []*fakeTimer
	rest := s.pending[:0]
	for _, t := range s.pending {
		if t.d <= d {
			due = append(due, t)
			continue
		}
		rest = append(rest, t)
	}
	s.pending = rest
	s.mu.Unlock()

	for _, t := range due {
		if !t.stopped {
			t.f()
		}
	}
}

func (s *fakeScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

type recordingSink struct {
	mu     sync.Mutex
	events []analytics.Event
}

func (r *recordingSink) Track(_ context.Context, e analytics.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recordingSink) Events() []analytics.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]analytics.Event(nil), r.events...)
}
