package statemachine

import (
	"context"
	"fmt"
	"sync"
)

var _ StateMachine = (*Machine)(nil)

// Machine is the in-memory, goroutine-safe StateMachine implementation.
type Machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[string]map[string][]Transition
	known       map[string]State
}

func newMachine(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
		known:       map[string]State{initial.Name(): initial},
	}
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Machine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		m.transitions[from.Name()] = byEvent
	}
	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	m.known[from.Name()] = from
	m.known[to.Name()] = to

	return nil
}

func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	candidates := m.transitions[m.current.Name()][event.Name()]
	if len(candidates) == 0 {
		return NewErrNoTransitionAvailable(m.current.Name(), event.Name())
	}

	t, ok := m.pick(ctx, candidates, event, data)
	if !ok {
		return NewErrTransitionRejected(m.current.Name(), event.Name())
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.current = t.To
	return nil
}

func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.pick(ctx, m.transitions[m.current.Name()][event.Name()], event, data)
	return ok
}

// Restore jumps to state without running guards or actions.
func (m *Machine) Restore(state State) error {
	if state == nil {
		return ErrInvalidState
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	known, ok := m.known[state.Name()]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, state.Name())
	}
	m.current = known
	return nil
}

func (m *Machine) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
	return nil
}

// pick returns the first candidate whose guards all pass. Caller holds mu.
func (m *Machine) pick(ctx context.Context, candidates []Transition, event Event, data any) (Transition, bool) {
	for _, t := range candidates {
		if m.guardsPass(ctx, t, event, data) {
			return t, true
		}
	}
	return Transition{}, false
}

func (m *Machine) guardsPass(ctx context.Context, t Transition, event Event, data any) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(ctx, m.current, event, data) {
			return false
		}
	}
	return true
}
