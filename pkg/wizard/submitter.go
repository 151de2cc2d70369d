package wizard

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/userdash/pkg/logger"
)

// DefaultSubmitDelay mirrors the latency of the simulated backend.
const DefaultSubmitDelay = 1500 * time.Millisecond

// Submitter delivers a finished record.
type Submitter interface {
	Submit(ctx context.Context, r Record) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, r Record) error

func (f SubmitterFunc) Submit(ctx context.Context, r Record) error {
	return f(ctx, r)
}

// SimulatedSubmitter stands in for a user-creation backend: it waits, logs
// the record and succeeds unless a failure hook says otherwise.
type SimulatedSubmitter struct {
	delay  time.Duration
	logger *slog.Logger
	fail   func(Record) error
}

type SubmitterOption func(*SimulatedSubmitter)

func WithSubmitDelay(d time.Duration) SubmitterOption {
	return func(s *SimulatedSubmitter) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithSubmitLogger(l *slog.Logger) SubmitterOption {
	return func(s *SimulatedSubmitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFailure makes the submitter return fn's error after the delay.
func WithFailure(fn func(Record) error) SubmitterOption {
	return func(s *SimulatedSubmitter) { s.fail = fn }
}

func NewSimulatedSubmitter(opts ...SubmitterOption) *SimulatedSubmitter {
	s := &SimulatedSubmitter{
		delay:  DefaultSubmitDelay,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit blocks for the configured delay or until ctx is done.
func (s *SimulatedSubmitter) Submit(ctx context.Context, r Record) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if s.fail != nil {
		if err := s.fail(r); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "New User Data",
		logger.Component("submitter"),
		slog.Group("record",
			slog.String("name", r.Name),
			slog.String("email", r.Email),
			slog.String("street", r.Street),
			slog.String("city", r.City),
			slog.String("zipcode", r.Zipcode),
		),
	)
	return nil
}
