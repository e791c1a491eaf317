package statemachine

import (
	"context"
	"fmt"
	"sync"
)

type transitionKey struct {
	from  string
	event string
}

// SimpleStateMachine is a mutex-guarded in-memory state machine.
type SimpleStateMachine struct {
	mu           sync.Mutex
	initialState State
	currentState State
	transitions  map[transitionKey][]Transition
	listeners    []Listener
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[transitionKey][]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.currentState
}

func (sm *SimpleStateMachine) addTransition(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}

	key := transitionKey{from: t.From.Name(), event: t.Event.Name()}
	// Several transitions per key are allowed; guards pick the first match.
	sm.transitions[key] = append(sm.transitions[key], t)
	return nil
}

// match returns the first transition whose guards all pass. Must be called with mu held.
func (sm *SimpleStateMachine) match(ctx context.Context, event Event, data any) (*Transition, error) {
	key := transitionKey{from: sm.currentState.Name(), event: event.Name()}
	candidates := sm.transitions[key]
	if len(candidates) == 0 {
		return nil, &TransitionError{State: key.from, Event: key.event, Err: ErrNoTransition}
	}

	for i := range candidates {
		passed := true
		for _, guard := range candidates[i].Guards {
			if !guard(ctx, sm.currentState, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return &candidates[i], nil
		}
	}

	return nil, &TransitionError{State: key.from, Event: key.event, Err: ErrRejected}
}

// Fire applies the event to the current state. Actions run before the state
// changes; listeners run after it, once the lock has been released.
func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	t, err := sm.match(ctx, event, data)
	if err != nil {
		sm.mu.Unlock()
		return err
	}

	from := sm.currentState
	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event, data); err != nil {
			sm.mu.Unlock()
			return fmt.Errorf("statemachine: %s action: %w", event.Name(), err)
		}
	}

	sm.currentState = t.To
	listeners := sm.listeners
	sm.mu.Unlock()

	for _, l := range listeners {
		l(ctx, from, t.To, event, data)
	}
	return nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	_, err := sm.match(ctx, event, data)
	return err == nil
}

// Reset returns the machine to its initial state without running actions or listeners.
func (sm *SimpleStateMachine) Reset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
}
