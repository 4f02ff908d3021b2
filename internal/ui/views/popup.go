package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent, styled with popupStyle, over
// mainContent at column x and row y. Negative coordinates center the popup.
// The base layer is dimmed so the popup stands out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width, x, y int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if modalW > width {
		modalW = width
	}
	if modalH > height {
		modalH = height
	}
	if x < 0 {
		x = (width - modalW) / 2
	}
	if y < 0 {
		y = (height - modalH) / 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := splitLinesN(desaturate(mainContent), height)
	fg := strings.Split(styledPopup, "\n")
	for i := 0; i < len(fg) && i < modalH && y+i < len(base); i++ {
		line := base[y+i]
		left := ansi.Cut(line, 0, x)
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.Cut(line, x+modalW, width)

		mid := fg[i]
		if w := ansi.StringWidth(mid); w < modalW {
			mid += strings.Repeat(" ", modalW-w)
		} else if w > modalW {
			mid = ansi.Cut(mid, 0, modalW)
		}
		base[y+i] = left + mid + right
	}
	return strings.Join(base, "\n")
}

// desaturate strips ANSI color/style codes and recolors text dim gray
func desaturate(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	for i, l := range lines {
		lines[i] = dim.Render(l)
	}
	return strings.Join(lines, "\n")
}

// splitLinesN splits s into exactly n lines, padding with empty ones
func splitLinesN(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if n <= 0 {
		return lines
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines[:n]
}
