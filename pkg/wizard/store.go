package wizard

import "context"

// DraftStore persists the in-progress record and step. Implementations
// absorb their own failures: Read reports false when nothing usable is
// stored, Write and Clear never fail from the caller's point of view.
type DraftStore interface {
	Read(ctx context.Context) (Record, Step, bool)
	Write(ctx context.Context, r Record, s Step)
	Clear(ctx context.Context)
}

type nopStore struct{}

func (nopStore) Read(context.Context) (Record, Step, bool) { return Record{}, StepBasicInfo, false }
func (nopStore) Write(context.Context, Record, Step)       {}
func (nopStore) Clear(context.Context)                     {}
