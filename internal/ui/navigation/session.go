// Package navigation holds the routes, the menu entries and the menu session
// that moves a selection over them.
package navigation

import "errors"

// ErrEmptyMenu is returned when a session is created without entries
var ErrEmptyMenu = errors.New("navigation menu has no entries")

// Session owns the menu open flag and the selected entry
type Session struct {
	menu      []MenuEntry
	navigator Navigator
	state     State
}

// NewSession creates a closed session with the first entry selected
func NewSession(menu []MenuEntry, navigator Navigator) (*Session, error) {
	if len(menu) == 0 {
		return nil, ErrEmptyMenu
	}
	entries := make([]MenuEntry, len(menu))
	copy(entries, menu)
	return &Session{menu: entries, navigator: navigator}, nil
}

// State returns a copy of the current state
func (s *Session) State() State { return s.state }

// IsOpen reports whether the menu is shown
func (s *Session) IsOpen() bool { return s.state.IsOpen }

// SelectedIndex returns the highlighted entry
func (s *Session) SelectedIndex() int { return s.state.SelectedIndex }

// Entries returns a copy of the menu
func (s *Session) Entries() []MenuEntry {
	out := make([]MenuEntry, len(s.menu))
	copy(out, s.menu)
	return out
}

func (s *Session) Open()   { s.state.IsOpen = true }
func (s *Session) Close()  { s.state.IsOpen = false }
func (s *Session) Toggle() { s.state.IsOpen = !s.state.IsOpen }

// MoveSelectionUp moves to the previous entry, wrapping to the last
func (s *Session) MoveSelectionUp() {
	n := len(s.menu)
	s.state.SelectedIndex = (s.state.SelectedIndex - 1 + n) % n
}

// MoveSelectionDown moves to the next entry, wrapping to the first
func (s *Session) MoveSelectionDown() {
	s.state.SelectedIndex = (s.state.SelectedIndex + 1) % len(s.menu)
}

// SelectCurrent navigates to the selected entry and closes the menu.
// Nothing happens when the index does not name an entry.
func (s *Session) SelectCurrent() {
	i := s.state.SelectedIndex
	if i < 0 || i >= len(s.menu) {
		return
	}
	if s.navigator != nil {
		s.navigator.Navigate(s.menu[i].Route)
	}
	s.state.IsOpen = false
}
