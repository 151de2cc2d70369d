package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/userdash/pkg/logger"
)

// Deliverer pushes a stored toast to wherever it is displayed.
type Deliverer interface {
	Deliver(ctx context.Context, t Toast) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(ctx context.Context, t Toast) error

func (f DelivererFunc) Deliver(ctx context.Context, t Toast) error {
	return f(ctx, t)
}

// MultiDeliverer fans out to several deliverers; one failing does not stop
// the others.
type MultiDeliverer struct {
	deliverers []Deliverer
	logger     *slog.Logger
}

func NewMultiDeliverer(logger *slog.Logger, deliverers ...Deliverer) *MultiDeliverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MultiDeliverer{deliverers: deliverers, logger: logger}
}

func (m *MultiDeliverer) Deliver(ctx context.Context, t Toast) error {
	for i, d := range m.deliverers {
		if err := d.Deliver(ctx, t); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver toast",
				logger.Component("notifications"),
				slog.String("toast_id", t.ID),
				slog.Int("deliverer_index", i),
				logger.Error(err),
			)
		}
	}
	return nil
}

type NoOpDeliverer struct{}

func (NoOpDeliverer) Deliver(context.Context, Toast) error { return nil }
