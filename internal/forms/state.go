package forms

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/dmitrymomot/almare/pkg/statemachine"
)

// Submission states.
const (
	StateIdle       = statemachine.StringState("idle")
	StateSubmitting = statemachine.StringState("submitting")
	StateSuccess    = statemachine.StringState("success")
	StateError      = statemachine.StringState("error")
)

// Submission events.
const (
	EventSubmit    = statemachine.StringEvent("submit")
	EventSucceeded = statemachine.StringEvent("delivery_succeeded")
	EventFailed    = statemachine.StringEvent("delivery_failed")
	EventTimeout   = statemachine.StringEvent("timeout")
	EventDismiss   = statemachine.StringEvent("dismiss")
)

// DefaultResetAfter is how long success and error are shown.
const DefaultResetAfter = 5 * time.Second

// Timer is a pending reset.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Machine is the submission state of one form instance:
// idle -> submitting -> success|error -> idle after a delay.
type Machine struct {
	mu         sync.Mutex
	sm         *statemachine.SimpleStateMachine
	resetAfter time.Duration
	afterFunc  AfterFunc
	timer      Timer
	generation uint64
	values     map[string]string
	subs       map[uint64]func(statemachine.State)
	nextSub    uint64
	closed     bool
	done       chan struct{}
}

// NewMachine builds an idle machine. A nil after uses time.AfterFunc.
func NewMachine(resetAfter time.Duration, after AfterFunc) *Machine {
	if resetAfter <= 0 {
		resetAfter = DefaultResetAfter
	}
	if after == nil {
		after = realAfterFunc
	}
	m := &Machine{
		resetAfter: resetAfter,
		afterFunc:  after,
		values:     map[string]string{},
		subs:       map[uint64]func(statemachine.State){},
		done:       make(chan struct{}),
	}

	clearValues := func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
		m.values = map[string]string{}
		return nil
	}
	holdValues := func(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
		if v, ok := data.(map[string]string); ok {
			m.values = maps.Clone(v)
		}
		return nil
	}

	m.sm = statemachine.MustNew(StateIdle,
		statemachine.WithTransition(StateIdle, StateSubmitting, EventSubmit, statemachine.WithAction(holdValues)),
		statemachine.WithTransition(StateSubmitting, StateSuccess, EventSucceeded, statemachine.WithAction(clearValues)),
		statemachine.WithTransition(StateSubmitting, StateError, EventFailed),
		statemachine.WithTransition(StateSuccess, StateIdle, EventTimeout),
		statemachine.WithTransition(StateError, StateIdle, EventTimeout),
		statemachine.WithTransition(StateSuccess, StateIdle, EventDismiss),
		statemachine.WithTransition(StateError, StateIdle, EventDismiss),
		statemachine.WithListener(m.onTransition),
	)
	return m
}

// onTransition runs inside fire, with m.mu held.
func (m *Machine) onTransition(_ context.Context, _, to statemachine.State, _ statemachine.Event, _ any) {
	m.stopTimer()
	if to != StateSuccess && to != StateError {
		return
	}
	gen := m.generation
	m.timer = m.afterFunc(m.resetAfter, func() { m.timeout(gen) })
}

func (m *Machine) stopTimer() {
	m.generation++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Machine) timeout(gen uint64) {
	m.mu.Lock()
	if m.closed || gen != m.generation {
		m.mu.Unlock()
		return
	}
	_ = m.fireLocked(EventTimeout, nil)
}

// fireLocked fires event with m.mu held, unlocks, then notifies subscribers.
func (m *Machine) fireLocked(event statemachine.Event, data any) error {
	err := m.sm.Fire(context.Background(), event, data)
	state := m.sm.Current()
	subs := make([]func(statemachine.State), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	if err != nil {
		return err
	}
	for _, fn := range subs {
		fn(state)
	}
	return nil
}

func (m *Machine) fire(event statemachine.Event, data any) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrInstanceClosed
	}
	return m.fireLocked(event, data)
}

// State returns the current state.
func (m *Machine) State() statemachine.State {
	return m.sm.Current()
}

// Submit moves idle to submitting and holds values until the outcome is
// known. Any other state returns ErrBusy.
func (m *Machine) Submit(values map[string]string) error {
	if err := m.fire(EventSubmit, values); err != nil {
		if errors.Is(err, statemachine.ErrNoTransition) {
			return ErrBusy
		}
		return err
	}
	return nil
}

// Succeed records a delivered submission; held values are cleared.
func (m *Machine) Succeed() error { return m.fire(EventSucceeded, nil) }

// Fail records a failed delivery; held values are kept for the retry.
func (m *Machine) Fail() error { return m.fire(EventFailed, nil) }

// Dismiss returns success or error to idle before the timer fires.
func (m *Machine) Dismiss() error { return m.fire(EventDismiss, nil) }

// Values returns a copy of the held field values.
func (m *Machine) Values() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.values)
}

// Subscribe calls fn with the new state after every transition, outside
// the machine's lock. The returned func unsubscribes.
func (m *Machine) Subscribe(fn func(statemachine.State)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Close cancels a pending reset and rejects further events.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.stopTimer()
	m.subs = map[uint64]func(statemachine.State){}
	close(m.done)
}

// Done is closed when the machine is closed.
func (m *Machine) Done() <-chan struct{} {
	return m.done
}
