package wizard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userdash/pkg/draft"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

func TestRegistry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backend := draft.NewMemoryBackend()
	reg := wizard.NewRegistry(
		wizard.WithCapacity(2),
		wizard.WithStoreFactory(draft.Factory(backend)),
	)

	a := reg.Mount(ctx, "a")
	assert.Same(t, a, reg.Mount(ctx, "a"))
	assert.NotSame(t, a, reg.Mount(ctx, "b"))

	a.UpdateRecord(ctx, wizard.Patch{Name: ptr("Ada")})
	a.Advance(ctx)

	t.Run("unmount keeps the draft", func(t *testing.T) {
		reg.Unmount("a")
		remounted := reg.Mount(ctx, "a")
		assert.NotSame(t, a, remounted)
		assert.Equal(t, wizard.Snapshot{Step: wizard.StepAddress, Record: wizard.Record{Name: "Ada"}}, remounted.Snapshot())
	})

	t.Run("profiles are isolated", func(t *testing.T) {
		assert.Equal(t, wizard.Snapshot{Step: wizard.StepBasicInfo}, reg.Mount(ctx, "b").Snapshot())
	})

	t.Run("capacity bounds mounted wizards", func(t *testing.T) {
		reg.Mount(ctx, "c")
		assert.Equal(t, 2, reg.Mounted())
	})
}
