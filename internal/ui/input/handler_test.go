package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinmind/internal/ui/highlight"
	"coinmind/internal/ui/input/types"
)

type fakeMenu struct {
	open     bool
	calls    []string
	selected int
}

func (m *fakeMenu) IsOpen() bool { return m.open }
func (m *fakeMenu) Toggle()      { m.open = !m.open; m.calls = append(m.calls, "toggle") }
func (m *fakeMenu) MoveSelectionUp() {
	m.selected--
	m.calls = append(m.calls, "up")
}
func (m *fakeMenu) MoveSelectionDown() {
	m.selected++
	m.calls = append(m.calls, "down")
}
func (m *fakeMenu) SelectCurrent() {
	m.open = false
	m.calls = append(m.calls, "select")
}

type fakePulser struct {
	flags []highlight.Flag
}

func (p *fakePulser) Pulse(f highlight.Flag) { p.flags = append(p.flags, f) }

type fakeSurface struct {
	name     string
	claiming bool
	keys     []types.Key
}

func (s *fakeSurface) Name() string   { return s.name }
func (s *fakeSurface) Claiming() bool { return s.claiming }
func (s *fakeSurface) HandleKey(_ tea.KeyMsg, k types.Key) tea.Cmd {
	s.keys = append(s.keys, k)
	return nil
}

var (
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyF12   = tea.KeyMsg{Type: tea.KeyF12}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyA     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
)

func newTestRouter() (*Router, *fakeMenu, *fakePulser) {
	menu := &fakeMenu{}
	pulser := &fakePulser{}
	return NewRouter(DefaultKeyMap(), menu, pulser), menu, pulser
}

func TestTranslate(t *testing.T) {
	km := DefaultKeyMap()
	assert.Equal(t, types.KeyEscape, km.Translate(keyEsc))
	assert.Equal(t, types.KeyF12, km.Translate(keyF12))
	assert.Equal(t, types.KeyEnter, km.Translate(keyEnter))
	assert.Equal(t, types.KeyUp, km.Translate(keyUp))
	assert.Equal(t, types.KeyDown, km.Translate(keyDown))
	assert.Equal(t, types.KeyLeft, km.Translate(keyLeft))
	assert.Equal(t, types.KeyRight, km.Translate(keyRight))
	assert.Equal(t, types.KeyOther, km.Translate(keyA))
}

func TestEveryKnownKeyPulses(t *testing.T) {
	r, _, pulser := newTestRouter()
	for _, msg := range []tea.KeyMsg{keyEsc, keyF12, keyEnter, keyUp, keyDown, keyLeft, keyRight, keyA} {
		r.Route(msg)
	}
	assert.Equal(t, []highlight.Flag{
		highlight.Left, highlight.Right, highlight.Center,
		highlight.Up, highlight.Down, highlight.LeftArrowKey, highlight.RightArrowKey,
	}, pulser.flags)
}

func TestEscapeTogglesMenu(t *testing.T) {
	r, menu, _ := newTestRouter()

	out := r.Route(keyEsc)
	assert.True(t, out.Handled)
	assert.True(t, menu.open)

	out = r.Route(keyEsc)
	assert.True(t, out.Handled)
	assert.False(t, menu.open)
}

func TestMenuOpenHandlesSelectionKeys(t *testing.T) {
	r, menu, _ := newTestRouter()
	menu.open = true

	assert.True(t, r.Route(keyDown).Handled)
	assert.True(t, r.Route(keyUp).Handled)
	assert.True(t, r.Route(keyEnter).Handled)
	assert.Equal(t, []string{"down", "up", "select"}, menu.calls)
	assert.False(t, menu.open, "Enter selects and closes")
}

func TestMenuOpenPassesOtherKeys(t *testing.T) {
	r, menu, _ := newTestRouter()
	menu.open = true

	assert.False(t, r.Route(keyLeft).Handled)
	assert.False(t, r.Route(keyRight).Handled)
	assert.False(t, r.Route(keyF12).Handled)
	assert.False(t, r.Route(keyA).Handled)
	assert.Empty(t, menu.calls)
}

func TestMenuClosedPassesThrough(t *testing.T) {
	r, menu, _ := newTestRouter()

	out := r.Route(keyUp)
	assert.False(t, out.Handled, "ArrowUp with the menu closed belongs to the page")
	assert.Equal(t, types.KeyUp, out.Key)

	assert.False(t, r.Route(keyDown).Handled)
	assert.False(t, r.Route(keyEnter).Handled)
	assert.False(t, r.Route(keyF12).Handled)
	assert.Empty(t, menu.calls, "Menu must not move while closed")
}

func TestClaimingSurfaceTakesEveryKey(t *testing.T) {
	r, menu, pulser := newTestRouter()
	drawer := &fakeSurface{name: "drawer", claiming: true}
	r.Register(drawer)

	for _, msg := range []tea.KeyMsg{keyEsc, keyUp, keyEnter, keyA} {
		assert.True(t, r.Route(msg).Handled)
	}
	assert.Equal(t, []types.Key{types.KeyEscape, types.KeyUp, types.KeyEnter, types.KeyOther}, drawer.keys)
	assert.Empty(t, menu.calls, "Escape inside a drawer must not toggle the menu")
	assert.Len(t, pulser.flags, 3, "Highlights still pulse while a surface claims keys")
}

func TestSurfacePriorityAndUnregister(t *testing.T) {
	r, menu, _ := newTestRouter()
	first := &fakeSurface{name: "first", claiming: false}
	second := &fakeSurface{name: "second", claiming: true}
	third := &fakeSurface{name: "third", claiming: true}

	r.Register(first)
	unregister := r.Register(second)
	r.Register(third)

	r.Route(keyDown)
	assert.Empty(t, first.keys)
	assert.Equal(t, []types.Key{types.KeyDown}, second.keys)
	assert.Empty(t, third.keys, "Only the first claiming surface gets the key")

	first.claiming = true
	r.Route(keyUp)
	assert.Equal(t, []types.Key{types.KeyUp}, first.keys)

	first.claiming = false
	unregister()
	require.Equal(t, 2, r.Surfaces())
	r.Route(keyEnter)
	assert.Equal(t, []types.Key{types.KeyEnter}, third.keys)

	third.claiming = false
	assert.True(t, r.Route(keyEsc).Handled)
	assert.Equal(t, []string{"toggle"}, menu.calls)
}
