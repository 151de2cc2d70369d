package statemachine

import "context"

// State is a node of the machine.
type State interface {
	Name() string
}

// Event triggers a transition out of the current state.
type Event interface {
	Name() string
}

// Guard decides at fire time whether a transition may be taken.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs a side effect during a transition. A non-nil error cancels it.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Transition is one edge of the machine.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// StateMachine is the behaviour exposed to callers.
type StateMachine interface {
	Current() State
	AddTransition(from, to State, event Event, guards []Guard, actions []Action) error
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
	Restore(state State) error
	Reset() error
}

// StringState is a State backed by its own name.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is an Event backed by its own name.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
