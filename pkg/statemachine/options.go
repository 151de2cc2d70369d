package statemachine

import "fmt"

// Option configures a Machine during construction.
type Option func(*Machine) error

// TransitionOption attaches guards or actions to a single transition.
type TransitionOption func(*transitionConfig)

type transitionConfig struct {
	guards  []Guard
	actions []Action
}

// New builds a machine starting at initial.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, ErrInvalidState
	}

	m := newMachine(initial)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

// WithTransition registers from --event--> to.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		cfg := &transitionConfig{}
		for _, opt := range opts {
			opt(cfg)
		}
		if err := m.AddTransition(from, to, event, cfg.guards, cfg.actions); err != nil {
			return fmt.Errorf("%s -> %s on %s: %w", nameOf(from), nameOf(to), nameOf(event), err)
		}
		return nil
	}
}

func WithGuard(guard Guard) TransitionOption {
	return func(cfg *transitionConfig) {
		if guard != nil {
			cfg.guards = append(cfg.guards, guard)
		}
	}
}

func WithAction(action Action) TransitionOption {
	return func(cfg *transitionConfig) {
		if action != nil {
			cfg.actions = append(cfg.actions, action)
		}
	}
}

type named interface{ Name() string }

func nameOf(n named) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name()
}
