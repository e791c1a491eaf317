// Package statemachine implements a small finite-state machine.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. Transitions are declared with options and may carry
// guards (which select between transitions) and actions (which may veto a
// transition by returning an error). Listeners observe completed transitions
// after the lock is released, which makes them the right place to schedule
// follow-up events such as timeouts.
//
//	const (
//	    Idle       = statemachine.StringState("idle")
//	    Submitting = statemachine.StringState("submitting")
//	    Submit     = statemachine.StringEvent("submit")
//	)
//
//	sm := statemachine.MustNew(Idle,
//	    statemachine.WithTransition(Idle, Submitting, Submit),
//	)
//	if err := sm.Fire(ctx, Submit, nil); errors.Is(err, statemachine.ErrNoTransition) {
//	    // event not valid in the current state
//	}
package statemachine
