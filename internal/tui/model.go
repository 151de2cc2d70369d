// Package tui is the terminal rendition of the add-user wizard. Each step
// is a screen of text inputs; every keystroke is written through to the
// wizard so an interrupted session resumes where it stopped.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/userdash/pkg/validator"
	"github.com/dmitrymomot/userdash/pkg/wizard"
)

const (
	submitSuccessMessage = "User added successfully!"
	submitFailureMessage = "Failed to add user. Please try again."
)

type field struct {
	key   string
	label string
	step  wizard.Step
	input textinput.Model
}

// submitDoneMsg carries the result of an asynchronous Submit.
type submitDoneMsg struct{ err error }

// Model is the bubbletea model driving one wizard.
type Model struct {
	ctx       context.Context
	wizard    *wizard.Wizard
	submitter wizard.Submitter

	fields     []field
	focus      int
	errs       validator.ValidationErrors
	status     string
	statusOK   bool
	submitting bool
}

// New builds a model over w, filling the inputs from its current snapshot.
func New(ctx context.Context, w *wizard.Wizard, submitter wizard.Submitter) Model {
	m := Model{
		ctx:       ctx,
		wizard:    w,
		submitter: submitter,
		fields: []field{
			newField("name", "Name", wizard.StepBasicInfo, "Jane Doe", 50),
			newField("email", "Email", wizard.StepBasicInfo, "jane@example.com", 0),
			newField("street", "Street", wizard.StepAddress, "1 Main St", 0),
			newField("city", "City", wizard.StepAddress, "Springfield", 0),
			newField("zipcode", "Zipcode", wizard.StepAddress, "12345", 10),
		},
	}
	m.load(w.Snapshot())
	return m
}

func newField(key, label string, step wizard.Step, placeholder string, limit int) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	if limit > 0 {
		in.CharLimit = limit
	}
	return field{key: key, label: label, step: step, input: in}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return m.submitted(msg.err)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		case "enter":
			return m.next()
		case "esc":
			return m.back()
		case "ctrl+r":
			snap, err := m.wizard.Reset(m.ctx)
			if err != nil {
				return m, nil
			}
			m.load(snap)
			m.errs, m.status = nil, ""
			return m, nil
		}
	}
	return m.edit(msg)
}

// edit forwards msg to the focused input and writes a changed value through.
func (m Model) edit(msg tea.Msg) (tea.Model, tea.Cmd) {
	idx := m.focusedField()
	if idx < 0 {
		return m, nil
	}

	before := m.fields[idx].input.Value()
	var cmd tea.Cmd
	m.fields[idx].input, cmd = m.fields[idx].input.Update(msg)
	if after := m.fields[idx].input.Value(); after != before {
		if _, err := m.wizard.UpdateRecord(m.ctx, patchFor(m.fields[idx].key, after)); err != nil {
			m.fields[idx].input.SetValue(before)
		}
	}
	return m, cmd
}

func (m Model) next() (tea.Model, tea.Cmd) {
	if m.wizard.Snapshot().Step == wizard.StepReview {
		m.submitting = true
		m.status = ""
		w, s, ctx := m.wizard, m.submitter, m.ctx
		return m, func() tea.Msg {
			return submitDoneMsg{err: w.Submit(ctx, s)}
		}
	}

	snap, err := m.wizard.TryAdvance(m.ctx)
	if errors.Is(err, wizard.ErrSubmitInProgress) {
		return m, nil
	}
	m.errs = validator.ExtractValidationErrors(err)
	m.status = ""
	if m.errs.IsEmpty() {
		m.focus = 0
	}
	return m, m.focusCurrent(snap.Step)
}

func (m Model) back() (tea.Model, tea.Cmd) {
	if !m.wizard.CanRetreat(m.ctx) {
		return m, nil
	}
	snap, err := m.wizard.Retreat(m.ctx)
	if err != nil {
		return m, nil
	}
	m.errs = nil
	m.focus = 0
	return m, m.focusCurrent(snap.Step)
}

func (m Model) submitted(err error) (tea.Model, tea.Cmd) {
	m.submitting = false
	switch {
	case err == nil:
		m.status, m.statusOK = submitSuccessMessage, true
		m.errs = nil
		m.load(m.wizard.Snapshot())
	case validator.IsValidationError(err):
		m.errs = validator.ExtractValidationErrors(err)
	case errors.Is(err, wizard.ErrSubmitInProgress):
	default:
		m.status, m.statusOK = submitFailureMessage, false
	}
	return m, nil
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	step := m.wizard.Snapshot().Step
	n := len(m.stepFields(step))
	if n == 0 {
		return m, nil
	}
	m.focus = (m.focus + delta + n) % n
	return m, m.focusCurrent(step)
}

// focusCurrent focuses the m.focus-th input of step and blurs the rest.
func (m *Model) focusCurrent(step wizard.Step) tea.Cmd {
	var cmd tea.Cmd
	idxs := m.stepFields(step)
	for i := range m.fields {
		m.fields[i].input.Blur()
	}
	if m.focus < len(idxs) {
		cmd = m.fields[idxs[m.focus]].input.Focus()
	}
	return cmd
}

func (m *Model) load(snap wizard.Snapshot) {
	values := map[string]string{
		"name":    snap.Record.Name,
		"email":   snap.Record.Email,
		"street":  snap.Record.Street,
		"city":    snap.Record.City,
		"zipcode": snap.Record.Zipcode,
	}
	for i := range m.fields {
		m.fields[i].input.SetValue(values[m.fields[i].key])
	}
	m.focus = 0
	m.focusCurrent(snap.Step)
}

func (m Model) stepFields(step wizard.Step) []int {
	var idxs []int
	for i, f := range m.fields {
		if f.step == step {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (m Model) focusedField() int {
	idxs := m.stepFields(m.wizard.Snapshot().Step)
	if m.focus < len(idxs) {
		return idxs[m.focus]
	}
	return -1
}

func patchFor(key, value string) wizard.Patch {
	switch key {
	case "name":
		return wizard.Patch{Name: &value}
	case "email":
		return wizard.Patch{Email: &value}
	case "street":
		return wizard.Patch{Street: &value}
	case "city":
		return wizard.Patch{City: &value}
	case "zipcode":
		return wizard.Patch{Zipcode: &value}
	}
	return wizard.Patch{}
}

func (m Model) View() string {
	snap := m.wizard.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Add New User"))
	b.WriteString("\n")
	b.WriteString(progress(snap.Step))
	b.WriteString("\n\n")

	if snap.Step == wizard.StepReview {
		b.WriteString(review(snap.Record))
		b.WriteString("\n")
	} else {
		for _, i := range m.stepFields(snap.Step) {
			f := m.fields[i]
			label := labelStyle
			if m.errs.Has(f.key) {
				label = errorLabelStyle
			}
			b.WriteString(label.Render(f.label))
			b.WriteString("\n")
			b.WriteString(f.input.View())
			b.WriteString("\n")
			for _, msg := range m.errs.Get(f.key) {
				b.WriteString(errorStyle.Render("  " + msg))
				b.WriteString("\n")
			}
		}
	}

	if snap.Step == wizard.StepReview {
		for _, field := range m.errs.Fields() {
			for _, msg := range m.errs.Get(field) {
				b.WriteString(errorStyle.Render(msg))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(dimStyle.Render("Submitting..."))
	case m.status != "" && m.statusOK:
		b.WriteString(successStyle.Render(m.status))
	case m.status != "":
		b.WriteString(errorStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(help(snap.Step, m.wizard.CanRetreat(m.ctx))))
	b.WriteString("\n")
	return b.String()
}

func progress(current wizard.Step) string {
	parts := make([]string, 0, len(wizard.Steps))
	for _, st := range wizard.Steps {
		label := fmt.Sprintf("%d %s", st, st.Title())
		switch {
		case st == current:
			parts = append(parts, activeStepStyle.Render(label))
		case st < current:
			parts = append(parts, doneStepStyle.Render(label))
		default:
			parts = append(parts, pendingStepStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func review(r wizard.Record) string {
	rows := []string{
		labelStyle.Render("Name:    ") + r.Name,
		labelStyle.Render("Email:   ") + r.Email,
		labelStyle.Render("Street:  ") + r.Street,
		labelStyle.Render("City:    ") + r.City,
		labelStyle.Render("Zipcode: ") + r.Zipcode,
	}
	return reviewStyle.Render(strings.Join(rows, "\n"))
}

func help(step wizard.Step, canRetreat bool) string {
	keys := []string{"tab next field", "enter continue"}
	if step == wizard.StepReview {
		keys = []string{"enter submit"}
	}
	if canRetreat {
		keys = append(keys, "esc back")
	}
	keys = append(keys, "ctrl+r reset", "ctrl+c quit")
	return strings.Join(keys, " • ")
}
