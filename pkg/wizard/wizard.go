package wizard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/userdash/pkg/logger"
	"github.com/dmitrymomot/userdash/pkg/statemachine"
)

// Wizard owns one in-progress form. It is safe for concurrent use.
type Wizard struct {
	mu         sync.Mutex
	machine    *statemachine.Machine
	record     Record
	store      DraftStore
	logger     *slog.Logger
	submitting atomic.Bool
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithDraftStore sets where drafts are persisted. Without it nothing is stored.
func WithDraftStore(s DraftStore) Option {
	return func(w *Wizard) {
		if s != nil {
			w.store = s
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Wizard) {
		if l != nil {
			w.logger = l
		}
	}
}

// New mounts a wizard, rehydrating step and record from the draft store.
func New(ctx context.Context, opts ...Option) *Wizard {
	w := &Wizard{
		store:  nopStore{},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.machine = newMachine(w.idle, w.logTransition)

	if record, step, ok := w.store.Read(ctx); ok {
		w.record = record
		// Every clamped step is a registered state, so Restore cannot fail here.
		_ = w.machine.Restore(step.state())
		w.logger.DebugContext(ctx, "wizard rehydrated",
			logger.Component("wizard"),
			logger.Step(int(w.step())),
		)
	}

	return w
}

// Snapshot returns a copy of the current step and record.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// UpdateRecord merges the non-nil fields of p into the record. The step is
// never changed. It fails with ErrSubmitInProgress while a submission runs.
func (w *Wizard) UpdateRecord(ctx context.Context, p Patch) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.idle() {
		return w.snapshot(), ErrSubmitInProgress
	}
	w.record = w.record.Apply(p)
	w.persist(ctx)
	return w.snapshot(), nil
}

// Advance moves one step forward. On the review step it does nothing but
// persist.
func (w *Wizard) Advance(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fire(ctx, eventAdvance); err != nil {
		return w.snapshot(), err
	}
	w.persist(ctx)
	return w.snapshot(), nil
}

// TryAdvance validates the current step's group and advances only when it
// passes. On failure the record and step are unchanged and the returned
// error is a validator.ValidationErrors.
func (w *Wizard) TryAdvance(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.idle() {
		return w.snapshot(), ErrSubmitInProgress
	}
	if verrs := ValidateStep(w.step(), w.record); !verrs.IsEmpty() {
		return w.snapshot(), verrs
	}

	if err := w.fire(ctx, eventAdvance); err != nil {
		return w.snapshot(), err
	}
	w.persist(ctx)
	return w.snapshot(), nil
}

// Retreat moves one step back without touching the record.
func (w *Wizard) Retreat(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fire(ctx, eventRetreat); err != nil {
		return w.snapshot(), err
	}
	w.persist(ctx)
	return w.snapshot(), nil
}

// Reset empties the record, returns to the first step and clears the draft.
func (w *Wizard) Reset(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.idle() {
		return w.snapshot(), ErrSubmitInProgress
	}
	w.reset(ctx)
	return w.snapshot(), nil
}

// CanAdvance reports whether Advance would leave the current step.
func (w *Wizard) CanAdvance(ctx context.Context) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.machine.CanFire(ctx, eventAdvance, nil)
}

// CanRetreat reports whether Retreat would leave the current step.
func (w *Wizard) CanRetreat(ctx context.Context) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.machine.CanFire(ctx, eventRetreat, nil)
}

// Submitting reports whether a submission is running.
func (w *Wizard) Submitting() bool {
	return w.submitting.Load()
}

// Submit hands a fully valid record on the review step to s. Every other
// operation is refused with ErrSubmitInProgress until it returns. On success
// the wizard is reset; on failure the state is left as it was and the error
// is returned joined with ErrSubmitFailed.
func (w *Wizard) Submit(ctx context.Context, s Submitter) error {
	if !w.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer w.submitting.Store(false)

	snap := w.Snapshot()
	if snap.Step != StepReview {
		return ErrNotOnReviewStep
	}
	if verrs := ValidateStep(StepReview, snap.Record); !verrs.IsEmpty() {
		return verrs
	}

	if err := s.Submit(ctx, snap.Record); err != nil {
		w.logger.LogAttrs(ctx, slog.LevelWarn, "submission failed",
			logger.Component("wizard"),
			logger.Error(err),
		)
		return errors.Join(ErrSubmitFailed, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset(ctx)
	return nil
}

// fire applies event. A missing transition is the boundary clamp and is
// ignored; a rejected one means a submission holds the wizard. Caller holds mu.
func (w *Wizard) fire(ctx context.Context, event statemachine.Event) error {
	if !w.idle() {
		return ErrSubmitInProgress
	}
	err := w.machine.Fire(ctx, event, nil)
	switch {
	case err == nil, statemachine.IsNoTransitionAvailableError(err):
		return nil
	case statemachine.IsTransitionRejectedError(err):
		return ErrSubmitInProgress
	}
	w.logger.LogAttrs(ctx, slog.LevelError, "unexpected transition failure",
		logger.Component("wizard"),
		logger.Event(event.Name()),
		logger.Error(err),
	)
	return err
}

func (w *Wizard) idle() bool {
	return !w.submitting.Load()
}

func (w *Wizard) logTransition(ctx context.Context, from, to statemachine.State, event statemachine.Event, _ any) error {
	w.logger.DebugContext(ctx, "wizard step changed",
		logger.Component("wizard"),
		logger.Event(event.Name()),
		logger.Step(int(stepOf(to))),
		slog.Int("from_step", int(stepOf(from))),
	)
	return nil
}

// Caller holds mu.
func (w *Wizard) reset(ctx context.Context) {
	w.record = Record{}
	_ = w.machine.Reset()
	w.store.Clear(ctx)
}

// Caller holds mu.
func (w *Wizard) persist(ctx context.Context) {
	w.store.Write(ctx, w.record, w.step())
}

// Caller holds mu.
func (w *Wizard) step() Step {
	return stepOf(w.machine.Current())
}

// Caller holds mu.
func (w *Wizard) snapshot() Snapshot {
	return Snapshot{Step: w.step(), Record: w.record}
}
