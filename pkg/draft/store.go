package draft

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/userdash/pkg/logger"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

const (
	KeyRecord = "userFormData"
	KeyStep   = "userFormStep"
)

var _ wizard.DraftStore = (*Store)(nil)

// Store reads and writes one profile's draft.
type Store struct {
	backend   Backend
	profileID string
	logger    *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore binds backend to profileID. An empty profile id stores under the
// bare keys.
func NewStore(backend Backend, profileID string, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		profileID: profileID,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Factory adapts a backend to wizard.StoreFactory.
func Factory(backend Backend, opts ...Option) wizard.StoreFactory {
	return func(profileID string) wizard.DraftStore {
		return NewStore(backend, profileID, opts...)
	}
}

func (s *Store) RecordKey() string { return s.key(KeyRecord) }
func (s *Store) StepKey() string   { return s.key(KeyStep) }

// Read returns the stored draft. ok is false when no usable record exists.
func (s *Store) Read(ctx context.Context) (wizard.Record, wizard.Step, bool) {
	raw, err := s.backend.Get(ctx, s.RecordKey())
	if err != nil {
		s.fail(ctx, "read", err)
		return wizard.Record{}, wizard.StepBasicInfo, false
	}
	if raw == nil {
		return wizard.Record{}, wizard.StepBasicInfo, false
	}

	var record wizard.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		s.fail(ctx, "decode_record", err)
		return wizard.Record{}, wizard.StepBasicInfo, false
	}

	return record, s.readStep(ctx), true
}

// Write overwrites both entries.
func (s *Store) Write(ctx context.Context, r wizard.Record, step wizard.Step) {
	raw, err := json.Marshal(r)
	if err != nil {
		s.fail(ctx, "encode_record", err)
		return
	}
	if err := s.backend.Set(ctx, s.RecordKey(), raw); err != nil {
		s.fail(ctx, "write_record", err)
	}
	if err := s.backend.Set(ctx, s.StepKey(), []byte(step.Clamp().String())); err != nil {
		s.fail(ctx, "write_step", err)
	}
}

// Clear removes both entries.
func (s *Store) Clear(ctx context.Context) {
	if err := s.backend.Delete(ctx, s.RecordKey(), s.StepKey()); err != nil {
		s.fail(ctx, "clear", err)
	}
}

func (s *Store) readStep(ctx context.Context) wizard.Step {
	raw, err := s.backend.Get(ctx, s.StepKey())
	if err != nil {
		s.fail(ctx, "read_step", err)
		return wizard.StepBasicInfo
	}
	if raw == nil {
		return wizard.StepBasicInfo
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return wizard.StepBasicInfo
	}
	return wizard.Step(n).Clamp()
}

func (s *Store) key(name string) string {
	if s.profileID == "" {
		return name
	}
	return s.profileID + ":" + name
}

func (s *Store) fail(ctx context.Context, op string, err error) {
	s.logger.LogAttrs(ctx, slog.LevelError, "draft store operation failed",
		logger.Component("draft_store"),
		logger.Event(op),
		logger.ProfileID(s.profileID),
		logger.Error(err),
	)
}
