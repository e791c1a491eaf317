package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrNilInitialState   = errors.New("statemachine: initial state is nil")
	ErrInvalidTransition = errors.New("statemachine: transition requires from, to and event")
	ErrInvalidEvent      = errors.New("statemachine: nil event")
	ErrNoTransition      = errors.New("statemachine: event not declared for state")
	ErrRejected          = errors.New("statemachine: guards rejected transition")
)

// TransitionError records where a Fire call failed. It unwraps to
// ErrNoTransition or ErrRejected.
type TransitionError struct {
	State string
	Event string
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s (state %q, event %q)", e.Err, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error { return e.Err }
