package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/ui/input/types"
)

// KeyMap binds terminal keys to the navigation keys
type KeyMap struct {
	Escape key.Binding
	F12    key.Binding
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		F12:    key.NewBinding(key.WithKeys("f12"), key.WithHelp("f12", "action")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	}
}

// Translate maps a key message to a navigation key
func (km KeyMap) Translate(msg tea.KeyMsg) types.Key {
	switch {
	case key.Matches(msg, km.Escape):
		return types.KeyEscape
	case key.Matches(msg, km.F12):
		return types.KeyF12
	case key.Matches(msg, km.Enter):
		return types.KeyEnter
	case key.Matches(msg, km.Up):
		return types.KeyUp
	case key.Matches(msg, km.Down):
		return types.KeyDown
	case key.Matches(msg, km.Left):
		return types.KeyLeft
	case key.Matches(msg, km.Right):
		return types.KeyRight
	}
	return types.KeyOther
}

// ShortHelp implements help.KeyMap
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Escape, km.Enter, km.Up, km.Down}
}

// FullHelp implements help.KeyMap
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Escape, km.F12, km.Enter},
		{km.Up, km.Down, km.Left, km.Right},
	}
}
