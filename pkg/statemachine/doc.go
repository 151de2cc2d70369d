// Package statemachine implements a small finite state machine used to drive
// step-based flows such as multi-page forms.
//
// States and events are plain interfaces with a Name method, so any type can
// play either role. StringState and StringEvent cover the common case.
//
// # Architecture
//
// Machine keeps its transition table as map[from][event][]Transition behind a
// RWMutex. When several transitions share a from/event pair, the first one
// whose guards all pass is taken, which allows guard-based branching.
// Actions run in order after the guards and before the state changes; an
// action error aborts the transition and leaves the state untouched.
//
// # Usage
//
//	const (
//	    Basic   = statemachine.StringState("basic")
//	    Address = statemachine.StringState("address")
//	    Next    = statemachine.StringEvent("next")
//	    Back    = statemachine.StringEvent("back")
//	)
//
//	m := statemachine.MustNew(Basic,
//	    statemachine.WithTransition(Basic, Address, Next),
//	    statemachine.WithTransition(Address, Basic, Back),
//	)
//	_ = m.Fire(ctx, Next, nil)
//
// # Restoring state
//
// Long-lived flows are often rebuilt from persisted data. Restore moves the
// machine directly to a known state without firing events, guards or
// actions. Only states that appear in the transition table, plus the initial
// state, are accepted.
//
// # Errors
//
// Fire reports *ErrNoTransitionAvailable when nothing is defined for the
// current state and event, and *ErrTransitionRejected when every candidate
// was vetoed by guards. Use IsNoTransitionAvailableError and
// IsTransitionRejectedError to tell them apart.
package statemachine
