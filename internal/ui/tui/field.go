package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/stepform/internal/form"
)

const (
	defaultInputWidth = 48
	bioHeight         = 4
)

// input is one editable field: a single-line textinput or, for multiline
// fields, a textarea.
type input struct {
	spec form.Spec
	line textinput.Model
	area textarea.Model
}

func newInput(spec form.Spec, value string, width int) input {
	in := input{spec: spec}
	if spec.Kind == form.KindMultiline {
		ta := textarea.New()
		ta.Placeholder = spec.Placeholder
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.SetWidth(width)
		ta.SetHeight(bioHeight)
		ta.SetValue(value)
		in.area = ta
		return in
	}

	ti := textinput.New()
	ti.Placeholder = spec.Placeholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Width = width
	ti.Cursor.Style = activeStyle
	ti.SetValue(value)
	in.line = ti
	return in
}

func (in input) multiline() bool {
	return in.spec.Kind == form.KindMultiline
}

func (in input) value() string {
	if in.multiline() {
		return in.area.Value()
	}
	return in.line.Value()
}

func (in *input) focus() tea.Cmd {
	if in.multiline() {
		return in.area.Focus()
	}
	return in.line.Focus()
}

func (in *input) blur() {
	if in.multiline() {
		in.area.Blur()
		return
	}
	in.line.Blur()
}

func (in *input) setWidth(width int) {
	if in.multiline() {
		in.area.SetWidth(width)
		return
	}
	in.line.Width = width
}

func (in input) update(msg tea.Msg) (input, tea.Cmd) {
	var cmd tea.Cmd
	if in.multiline() {
		in.area, cmd = in.area.Update(msg)
	} else {
		in.line, cmd = in.line.Update(msg)
	}
	return in, cmd
}

func (in input) view() string {
	if in.multiline() {
		return in.area.View()
	}
	return in.line.View()
}
