package draft_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/draft"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

func TestFileBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "drafts")

	backend, err := draft.NewFileBackend(dir)
	require.NoError(t, err)

	val, err := backend.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, backend.Set(ctx, "p:userFormStep", []byte("2")))
	val, err = backend.Get(ctx, "p:userFormStep")
	require.NoError(t, err)
	assert.Equal(t, "2", string(val))

	require.NoError(t, backend.Delete(ctx, "p:userFormStep", "never-written"))
	val, err = backend.Get(ctx, "p:userFormStep")
	require.NoError(t, err)
	assert.Nil(t, val)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, ".lock", e.Name(), "temp files must not be left behind")
	}
}

func TestFileBackendStoreSurvivesRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	first, err := draft.NewFileBackend(dir)
	require.NoError(t, err)
	draft.NewStore(first, "cli").Write(ctx, record, wizard.StepAddress)

	second, err := draft.NewFileBackend(dir)
	require.NoError(t, err)
	got, step, ok := draft.NewStore(second, "cli").Read(ctx)
	require.True(t, ok)
	assert.Equal(t, record, got)
	assert.Equal(t, wizard.StepAddress, step)

	draft.NewStore(second, "cli").Clear(ctx)
	_, _, ok = draft.NewStore(first, "cli").Read(ctx)
	assert.False(t, ok)
}

func TestFileBackendConcurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backend, err := draft.NewFileBackend(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store := draft.NewStore(backend, "p")
			store.Write(ctx, record, wizard.Step(i%3+1))
			_, _, _ = store.Read(ctx)
		}(i)
	}
	wg.Wait()

	got, step, ok := draft.NewStore(backend, "p").Read(ctx)
	require.True(t, ok)
	assert.Equal(t, record, got)
	assert.True(t, step.Valid())
}
