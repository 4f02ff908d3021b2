package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyNavigator struct {
	routes []Route
}

func (s *spyNavigator) Navigate(r Route) { s.routes = append(s.routes, r) }

func TestNewSessionRejectsEmptyMenu(t *testing.T) {
	_, err := NewSession(nil, &spyNavigator{})
	assert.ErrorIs(t, err, ErrEmptyMenu)
}

func TestInitialState(t *testing.T) {
	s, err := NewSession(DefaultMenu(), &spyNavigator{})
	require.NoError(t, err)
	assert.Equal(t, State{IsOpen: false, SelectedIndex: 0}, s.State())
	assert.Len(t, s.Entries(), 6)
}

func TestToggleOpenClose(t *testing.T) {
	s, err := NewSession(DefaultMenu(), nil)
	require.NoError(t, err)

	s.Toggle()
	assert.True(t, s.IsOpen())
	s.Toggle()
	assert.False(t, s.IsOpen())

	s.Open()
	s.Open()
	assert.True(t, s.IsOpen(), "Open is idempotent")
	s.Close()
	s.Close()
	assert.False(t, s.IsOpen(), "Close is idempotent")
}

func TestSelectionWraps(t *testing.T) {
	s, err := NewSession(DefaultMenu(), nil)
	require.NoError(t, err)
	n := len(DefaultMenu())

	s.MoveSelectionUp()
	assert.Equal(t, n-1, s.SelectedIndex(), "Up from the first entry wraps to the last")
	s.MoveSelectionDown()
	assert.Equal(t, 0, s.SelectedIndex(), "Down from the last entry wraps to the first")

	for i := 0; i < n; i++ {
		s.MoveSelectionDown()
	}
	assert.Equal(t, 0, s.SelectedIndex(), "n moves return to the start")

	for start := 0; start < n; start++ {
		s.state.SelectedIndex = start
		s.MoveSelectionDown()
		s.MoveSelectionUp()
		assert.Equal(t, start, s.SelectedIndex(), "Down then Up is the identity")
	}
}

func TestSelectCurrentNavigatesAndCloses(t *testing.T) {
	nav := &spyNavigator{}
	s, err := NewSession(DefaultMenu(), nav)
	require.NoError(t, err)

	s.Open()
	s.MoveSelectionDown()
	s.MoveSelectionDown()
	s.SelectCurrent()

	assert.Equal(t, []Route{RouteCurrencyConverter}, nav.routes)
	assert.False(t, s.IsOpen())
	assert.Equal(t, 2, s.SelectedIndex(), "Selection is kept after navigating")
}

func TestSelectCurrentOutOfRangeIsNoop(t *testing.T) {
	nav := &spyNavigator{}
	s, err := NewSession(DefaultMenu(), nav)
	require.NoError(t, err)

	s.Open()
	s.state.SelectedIndex = 99
	s.SelectCurrent()
	assert.Empty(t, nav.routes)
	assert.True(t, s.IsOpen())
}

func TestDefaultMenuIsACopy(t *testing.T) {
	m := DefaultMenu()
	m[0].Label = "changed"
	assert.Equal(t, "Expense Tracker", DefaultMenu()[0].Label)
	assert.True(t, RouteLogin.Public())
	assert.False(t, RouteHome.Public())
}
