package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdash/pkg/draft"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func newModel(t *testing.T, backend draft.Backend, submit func(context.Context, wizard.Record) error) Model {
	t.Helper()
	ctx := context.Background()
	w := wizard.New(ctx, wizard.WithDraftStore(draft.NewStore(backend, "")))
	return New(ctx, w, wizard.SubmitterFunc(submit))
}

func fillBasicInfo(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(t, m, "Jo")
	m, _ = press(t, m, tea.KeyTab)
	return typeText(t, m, "jo@x.io")
}

func fillAddress(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(t, m, "1 Main St")
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "Oslo")
	m, _ = press(t, m, tea.KeyTab)
	return typeText(t, m, "12345")
}

func TestTypingWritesThrough(t *testing.T) {
	t.Parallel()
	backend := draft.NewMemoryBackend()
	m := newModel(t, backend, nil)

	m = fillBasicInfo(t, m)

	snap := m.wizard.Snapshot()
	assert.Equal(t, "Jo", snap.Record.Name)
	assert.Equal(t, "jo@x.io", snap.Record.Email)
	assert.Contains(t, string(backend.Dump()[draft.KeyRecord]), `"email":"jo@x.io"`)
}

func TestEnterWithInvalidStepShowsErrors(t *testing.T) {
	t.Parallel()
	m := newModel(t, draft.NewMemoryBackend(), nil)

	m = typeText(t, m, "J")
	m, _ = press(t, m, tea.KeyEnter)

	assert.Equal(t, wizard.StepBasicInfo, m.wizard.Snapshot().Step)
	assert.True(t, m.errs.Has("name"))
	assert.True(t, m.errs.Has("email"))
	assert.Contains(t, m.View(), "Name must be at least 2 characters")
}

func TestStepNavigation(t *testing.T) {
	t.Parallel()
	m := newModel(t, draft.NewMemoryBackend(), nil)

	m = fillBasicInfo(t, m)
	m, _ = press(t, m, tea.KeyEnter)
	require.Equal(t, wizard.StepAddress, m.wizard.Snapshot().Step)
	assert.Empty(t, m.errs)

	m, _ = press(t, m, tea.KeyEsc)
	assert.Equal(t, wizard.StepBasicInfo, m.wizard.Snapshot().Step)
	assert.Equal(t, "Jo", m.fields[0].input.Value())

	m, _ = press(t, m, tea.KeyEsc)
	assert.Equal(t, wizard.StepBasicInfo, m.wizard.Snapshot().Step)
}

func TestSubmitFlow(t *testing.T) {
	t.Parallel()

	var submitted wizard.Record
	backend := draft.NewMemoryBackend()
	m := newModel(t, backend, func(_ context.Context, r wizard.Record) error {
		submitted = r
		return nil
	})

	m = fillBasicInfo(t, m)
	m, _ = press(t, m, tea.KeyEnter)
	m = fillAddress(t, m)
	m, _ = press(t, m, tea.KeyEnter)
	require.Equal(t, wizard.StepReview, m.wizard.Snapshot().Step)
	assert.Contains(t, m.View(), "Oslo")

	m, cmd := press(t, m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Contains(t, m.View(), "Submitting...")

	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.False(t, m.submitting)
	assert.Equal(t, "Oslo", submitted.City)
	assert.Equal(t, wizard.StepBasicInfo, m.wizard.Snapshot().Step)
	assert.Empty(t, m.fields[0].input.Value())
	assert.Contains(t, m.View(), submitSuccessMessage)
	assert.Empty(t, backend.Dump())
}

func TestSubmitFailureKeepsReview(t *testing.T) {
	t.Parallel()
	m := newModel(t, draft.NewMemoryBackend(), func(context.Context, wizard.Record) error {
		return errors.New("boom")
	})

	m = fillBasicInfo(t, m)
	m, _ = press(t, m, tea.KeyEnter)
	m = fillAddress(t, m)
	m, _ = press(t, m, tea.KeyEnter)

	m, cmd := press(t, m, tea.KeyEnter)
	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.Equal(t, wizard.StepReview, m.wizard.Snapshot().Step)
	assert.Equal(t, "Jo", m.wizard.Snapshot().Record.Name)
	assert.Contains(t, m.View(), submitFailureMessage)
}

func TestResumesFromDraft(t *testing.T) {
	t.Parallel()
	backend := draft.NewMemoryBackend()

	m := newModel(t, backend, nil)
	m = fillBasicInfo(t, m)
	m, _ = press(t, m, tea.KeyEnter)

	resumed := newModel(t, backend, nil)
	assert.Equal(t, wizard.StepAddress, resumed.wizard.Snapshot().Step)
	assert.Equal(t, "Jo", resumed.fields[0].input.Value())
	assert.True(t, resumed.fields[2].input.Focused())
}

func TestResetKey(t *testing.T) {
	t.Parallel()
	backend := draft.NewMemoryBackend()
	m := newModel(t, backend, nil)

	m = fillBasicInfo(t, m)
	m, _ = press(t, m, tea.KeyCtrlR)

	assert.True(t, m.wizard.Snapshot().Record.IsZero())
	assert.Empty(t, m.fields[1].input.Value())
	assert.Empty(t, backend.Dump())
}

func TestCtrlCQuits(t *testing.T) {
	t.Parallel()
	m := newModel(t, draft.NewMemoryBackend(), nil)

	_, cmd := press(t, m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpOffersBackOnlyWhenPossible(t *testing.T) {
	t.Parallel()
	m := newModel(t, draft.NewMemoryBackend(), nil)
	assert.NotContains(t, m.View(), "esc back")

	m = fillBasicInfo(t, m)
	m, _ = press(t, m, tea.KeyEnter)
	assert.Contains(t, m.View(), "esc back")
}
