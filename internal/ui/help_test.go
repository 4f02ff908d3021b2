package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/pager"
)

func TestHelpListsMenuAndKeys(t *testing.T) {
	out := NewHelpRenderer().Render(navigation.DefaultMenu())
	assert.Contains(t, out, "CoinMind Help")
	for _, e := range navigation.DefaultMenu() {
		assert.Contains(t, out, e.Label)
	}
	assert.Contains(t, out, "F12")
	assert.Contains(t, out, "Ctrl+C")
}

func TestHelpWithoutProgramReportsError(t *testing.T) {
	m, _ := newTestModel(t, true)

	cmd := press(m, tea.KeyF1)
	require.NotNil(t, cmd)
	msg := cmd()
	closed, ok := msg.(helpClosedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, closed.err, pager.ErrNoProgram)

	m.Update(msg)
	assert.Contains(t, m.View(), "Could not open help")
}
