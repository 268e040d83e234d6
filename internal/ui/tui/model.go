package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/wizard"
)

// DefaultSubmitTimeout bounds a single Submit when Options leaves it unset.
const DefaultSubmitTimeout = 30 * time.Second

// Options configures the model.
type Options struct {
	// SubmitTimeout bounds each submission.
	SubmitTimeout time.Duration
}

// Model is the Bubble Tea model for the profile wizard.
//
// The controller is shared between Update and the submit command. While a
// submission is in flight Update ignores every key except ctrl+c, so the
// controller is never mutated concurrently.
type Model struct {
	ctx  context.Context
	ctrl *wizard.Controller
	opts Options

	// Inputs of the current step. Empty on the review step.
	inputs []input
	focus  int

	Submitting  bool
	Submissions int
	Err         error

	// UI state
	Width  int
	Height int
	Quit   bool
}

// New creates a model driving ctrl. ctx bounds every submission.
func New(ctx context.Context, ctrl *wizard.Controller, opts Options) Model {
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = DefaultSubmitTimeout
	}
	m := Model{ctx: ctx, ctrl: ctrl, opts: opts}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quit = true
			return m, tea.Quit
		}
		if m.Submitting {
			return m, nil
		}
		switch {
		case m.ctrl.Submitted():
			return m.updateSuccess(msg)
		case m.ctrl.Step() == wizard.StepReview:
			return m.updateReview(msg)
		default:
			return m.updateEditing(msg)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		for i := range m.inputs {
			m.inputs[i].setWidth(m.inputWidth())
		}

	case submitResultMsg:
		m.Submitting = false
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Err = nil
		m.Submissions++
		m.rebuild()
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case "shift+tab":
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	case "ctrl+s":
		return m.advance()
	case "ctrl+b", "esc":
		return m.retreat()
	case "enter":
		if !m.inputs[m.focus].multiline() {
			if m.focus == len(m.inputs)-1 {
				return m.advance()
			}
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].update(msg)
	in := m.inputs[m.focus]
	if err := m.ctrl.Set(in.spec.Name, in.value()); err != nil {
		m.Err = err
	}
	return m, cmd
}

func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.Submitting = true
		m.Err = nil
		return m, m.submitCmd()
	case "ctrl+b", "esc":
		return m.retreat()
	}
	return m, nil
}

func (m Model) updateSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		if err := m.ctrl.Reset(m.ctx); err != nil {
			m.Err = err
			return m, nil
		}
		m.Err = nil
		cmd := m.rebuild()
		return m, cmd
	case "q":
		m.Quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	err := m.ctrl.Advance(m.ctx)
	var verr *form.ValidationError
	switch {
	case err == nil:
		m.Err = nil
		cmd := m.rebuild()
		return m, cmd
	case errors.As(err, &verr):
		m.Err = err
		cmd := m.setFocus(m.indexOf(verr.First()))
		return m, cmd
	default:
		m.Err = err
		return m, nil
	}
}

func (m Model) retreat() (tea.Model, tea.Cmd) {
	if !m.ctrl.CanRetreat() {
		return m, nil
	}
	if err := m.ctrl.Retreat(m.ctx); err != nil {
		m.Err = err
		return m, nil
	}
	m.Err = nil
	cmd := m.rebuild()
	return m, cmd
}

func (m Model) submitCmd() tea.Cmd {
	ctrl, parent, timeout := m.ctrl, m.ctx, m.opts.SubmitTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		return submitResultMsg{err: ctrl.Submit(ctx)}
	}
}

// rebuild recreates the inputs for the controller's current step, seeded
// with the record's values, and focuses the first one.
func (m *Model) rebuild() tea.Cmd {
	m.inputs = nil
	m.focus = 0
	if m.ctrl.Submitted() {
		return nil
	}
	values := m.ctrl.Form()
	for _, spec := range m.ctrl.Step().Fields() {
		m.inputs = append(m.inputs, newInput(spec, values.Get(spec.Name), m.inputWidth()))
	}
	if len(m.inputs) == 0 {
		return nil
	}
	return m.setFocus(0)
}

// setFocus focuses input i, wrapping around at both ends.
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	for j := range m.inputs {
		m.inputs[j].blur()
	}
	m.focus = i
	return m.inputs[i].focus()
}

func (m Model) indexOf(f form.Field) int {
	for i, in := range m.inputs {
		if in.spec.Name == f {
			return i
		}
	}
	return 0
}

func (m Model) inputWidth() int {
	if m.Width > 0 && m.Width-6 < defaultInputWidth {
		if m.Width-6 < 10 {
			return 10
		}
		return m.Width - 6
	}
	return defaultInputWidth
}

// Focused returns the field that currently has focus, or "" on screens
// without inputs.
func (m Model) Focused() form.Field {
	if len(m.inputs) == 0 {
		return ""
	}
	return m.inputs[m.focus].spec.Name
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
