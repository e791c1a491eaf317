package statemachine

import (
	"context"
)

// State and Event are identified by name only; two values with the same
// name are the same state or event.
type (
	State interface{ Name() string }
	Event interface{ Name() string }
)

// Guard decides whether a declared transition applies to this Fire call.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs before the state changes. A non-nil error aborts Fire and
// leaves the machine where it was.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Listener is told about every completed transition. It is called without
// the machine's lock, so it may call Fire itself.
type Listener func(ctx context.Context, from, to State, event Event, data any)

// Transition is one edge of the machine. When several share a From and
// Event, the first whose Guards all pass is taken.
type Transition struct {
	From, To State
	Event    Event
	Guards   []Guard
	Actions  []Action
}

// StateMachine is the behaviour callers depend on; SimpleStateMachine is
// the only implementation.
type StateMachine interface {
	Current() State
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
	Reset()
}

var _ StateMachine = (*SimpleStateMachine)(nil)

type (
	StringState string
	StringEvent string
)

func (s StringState) Name() string { return string(s) }
func (e StringEvent) Name() string { return string(e) }
