package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/ui/focus"
	"coinmind/internal/ui/views"
)

// form pairs text inputs and buttons with a focus ring. Buttons are ring
// members without an input behind them.
type form struct {
	ring   *focus.Ring
	inputs map[string]*textinput.Model
	labels map[string]string
}

func newForm() *form {
	return &form{
		ring:   focus.NewRing(),
		inputs: make(map[string]*textinput.Model),
		labels: make(map[string]string),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Width = 30
	return ti
}

func (f *form) addInput(id, label string, order int, ti textinput.Model) {
	f.inputs[id] = &ti
	f.labels[id] = label
	f.ring.Register(id, order)
}

func (f *form) addButton(id, label string, order int) {
	f.labels[id] = label
	f.ring.Register(id, order)
}

func (f *form) focused() string { return f.ring.Current() }

// focus moves focus to id, or blurs everything when id is unknown
func (f *form) focus(id string) tea.Cmd {
	f.ring.Focus(id)
	return f.syncInputs()
}

func (f *form) next() tea.Cmd {
	f.ring.Next()
	return f.syncInputs()
}

func (f *form) prev() tea.Cmd {
	f.ring.Prev()
	return f.syncInputs()
}

func (f *form) syncInputs() tea.Cmd {
	var cmd tea.Cmd
	current := f.ring.Current()
	for id, in := range f.inputs {
		if id == current {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (f *form) isInput(id string) bool {
	_, ok := f.inputs[id]
	return ok
}

func (f *form) value(id string) string {
	if in, ok := f.inputs[id]; ok {
		return in.Value()
	}
	return ""
}

func (f *form) setValue(id, v string) {
	if in, ok := f.inputs[id]; ok {
		in.SetValue(v)
	}
}

// updateFocused forwards msg to the focused input
func (f *form) updateFocused(msg tea.Msg) tea.Cmd {
	in, ok := f.inputs[f.ring.Current()]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (f *form) reset() {
	for _, in := range f.inputs {
		in.Reset()
		in.Blur()
	}
	f.ring.Blur()
}

// renderInput draws a labelled input with an optional error below it
func (f *form) renderInput(s *views.Styles, id, errText string) string {
	var b strings.Builder
	b.WriteString(s.Label.Render(f.labels[id]))
	b.WriteString("\n")
	b.WriteString(s.RenderField(f.inputs[id].View(), f.focused() == id))
	if errText != "" {
		b.WriteString("\n")
		b.WriteString(s.FieldError.Render(errText))
	}
	return b.String()
}

func (f *form) renderButton(s *views.Styles, id string) string {
	return s.RenderButton(f.labels[id], f.focused() == id)
}
