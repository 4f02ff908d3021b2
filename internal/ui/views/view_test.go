package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinmind/internal/domain"
	"coinmind/internal/ui/highlight"
)

func TestRenderFrameShowsTitleAndContent(t *testing.T) {
	r := NewRenderer(nil)
	out := ansi.Strip(r.Render(ViewState{
		Width:     60,
		Height:    20,
		PageTitle: "About",
		Content:   "CoinMind is a lightweight finance app",
		Status:    "Loading",
		HelpText:  "esc menu",
	}))

	assert.Contains(t, out, "CoinMind")
	assert.Contains(t, out, "About")
	assert.Contains(t, out, "lightweight finance app")
	assert.Contains(t, out, "esc menu")
	assert.Contains(t, out, "≡")
	assert.Contains(t, out, "❬")
	assert.LessOrEqual(t, lipgloss.Height(out), 20)
}

func TestRenderFrameWithMenuOverlay(t *testing.T) {
	r := NewRenderer(nil)
	out := ansi.Strip(r.Render(ViewState{
		Width:        60,
		Height:       20,
		Content:      "body",
		MenuOpen:     true,
		MenuEntries:  []string{"Expense Tracker", "About"},
		MenuSelected: 1,
	}))
	assert.Contains(t, out, "Expense Tracker")
	assert.Contains(t, out, "About")
}

func TestPopupOverlayKeepsSurroundings(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	out := ansi.Strip(pr.RenderPopupOverlay(base, "XY", 3, 10, 4, 1, lipgloss.NewStyle()))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "aaaaaaaaaa", lines[0])
	assert.Equal(t, "bbbbXYbbbb", lines[1])
	assert.Equal(t, "cccccccccc", lines[2])
}

func TestRenderTransactionTruncatesDescription(t *testing.T) {
	tr := NewTransactionRenderer(NewStyles())
	tx := domain.Transaction{
		Description: strings.Repeat("very long description ", 10),
		Amount:      12.5,
		Type:        "Food",
	}
	out := ansi.Strip(tr.RenderTransaction(tx, false, 40))
	assert.Contains(t, out, "-$12.50")
	assert.Contains(t, out, "…")
	assert.LessOrEqual(t, ansi.StringWidth(out), 42)

	tx.Income = true
	out = ansi.Strip(tr.RenderTransaction(tx, true, 40))
	assert.Contains(t, out, "+$12.50")
}

func TestKeypadReflectsHighlights(t *testing.T) {
	r := NewRenderer(nil)
	var snap highlight.Snapshot
	off := r.RenderKeypad(snap)
	snap[highlight.Up] = true
	on := r.RenderKeypad(snap)
	assert.Equal(t, ansi.Strip(off), ansi.Strip(on), "Highlight only changes colors")
	assert.Contains(t, ansi.Strip(on), "↑")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Budget\n\nSpend **less**.", 40)
	require.NoError(t, err)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Budget")
	assert.Contains(t, plain, "Spend less.")
}
