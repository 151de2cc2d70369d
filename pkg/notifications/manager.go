package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/userdash/pkg/logger"
)

// Notifier is the sink views depend on.
type Notifier interface {
	Notify(ctx context.Context, t Toast)
}

var _ Notifier = (*Manager)(nil)

// Manager stores toasts and delivers them.
type Manager struct {
	storage   Storage
	deliverer Deliverer
	logger    *slog.Logger
	now       func() time.Time
}

type ManagerOption func(*Manager)

func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides time.Now for CreatedAt.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(storage Storage, deliverer Deliverer, opts ...ManagerOption) *Manager {
	if deliverer == nil {
		deliverer = NoOpDeliverer{}
	}
	m := &Manager{
		storage:   storage,
		deliverer: deliverer,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send fills defaults, stores and delivers t. Only storage errors are
// returned; delivery failures are logged.
func (m *Manager) Send(ctx context.Context, t Toast) (Toast, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Type == "" {
		t.Type = TypeInfo
	}
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	if t.Position == "" {
		t.Position = DefaultPosition
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = m.now()
	}

	if err := m.storage.Create(ctx, t); err != nil {
		return t, fmt.Errorf("failed to store toast: %w", err)
	}

	if err := m.deliverer.Deliver(ctx, t); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "toast stored but not delivered",
			logger.Component("notifications"),
			slog.String("toast_id", t.ID),
			logger.ProfileID(t.ProfileID),
			logger.Error(err),
		)
	}
	return t, nil
}

// Notify is Send without a result; failures are logged.
func (m *Manager) Notify(ctx context.Context, t Toast) {
	if _, err := m.Send(ctx, t); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "toast dropped",
			logger.Component("notifications"),
			logger.ProfileID(t.ProfileID),
			logger.Error(err),
		)
	}
}

func (m *Manager) Success(ctx context.Context, profileID, msg string) {
	m.Notify(ctx, Toast{ProfileID: profileID, Type: TypeSuccess, Message: msg})
}

func (m *Manager) Error(ctx context.Context, profileID, msg string) {
	m.Notify(ctx, Toast{ProfileID: profileID, Type: TypeError, Message: msg})
}

// Recent returns the profile's latest toasts, newest first.
func (m *Manager) Recent(ctx context.Context, profileID string, limit int) ([]Toast, error) {
	return m.storage.Recent(ctx, profileID, limit)
}
