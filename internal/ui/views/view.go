package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coinmind/internal/ui/highlight"
)

// StatusKind selects the color of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering the frame
type ViewState struct {
	Width        int
	Height       int
	PageTitle    string
	Content      string
	Status       string
	StatusKind   StatusKind
	Spinner      string // current spinner frame, shown while loading
	MenuOpen     bool
	MenuEntries  []string
	MenuSelected int
	Highlights   highlight.Snapshot
	HelpText     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles { return r.styles }

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	termHeight := state.Height
	if termHeight <= 0 {
		termHeight = 24
	}

	content := &strings.Builder{}

	logo := r.styles.Title.Render("CoinMind")
	rightContent := r.renderStatus(state)

	// Build the title line with right-aligned status
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if rightContent == "" {
		content.WriteString(logo)
	} else if paddingWidth > 0 {
		content.WriteString(fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent))
	} else {
		content.WriteString(fmt.Sprintf("%s  %s", logo, rightContent))
	}
	content.WriteString("\n\n")

	if state.PageTitle != "" {
		content.WriteString(r.styles.PageTitle.Render(state.PageTitle))
		content.WriteString("\n")
	}

	// Reserve lines for the bottom bar and help
	bottom := r.RenderBottomBar(state.Highlights, availableWidth)
	if state.HelpText != "" {
		bottom += "\n" + r.styles.Help.Render(state.HelpText)
	}
	bottomLines := lipgloss.Height(bottom)

	headerLines := strings.Count(content.String(), "\n")
	bodyHeight := termHeight - headerLines - bottomLines
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.NewStyle().MaxHeight(bodyHeight).Render(state.Content)
	content.WriteString(body)

	// Push the bottom bar to the last lines
	paddingNeeded := bodyHeight - lipgloss.Height(body)
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(bottom)

	mainStyle := r.styles.Main.MaxHeight(termHeight)
	finalContent := mainStyle.Render(content.String())

	if state.MenuOpen && len(state.MenuEntries) > 0 {
		navbar := r.RenderNavbar(state.MenuEntries, state.MenuSelected)
		return r.popupRender.RenderPopupOverlay(finalContent, navbar, termHeight, termWidth, 2, 2, r.styles.Navbar)
	}
	return finalContent
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.Status == "" {
		return ""
	}
	switch state.StatusKind {
	case StatusLoading:
		text := state.Status
		if state.Spinner != "" {
			text = state.Spinner + " " + text
		}
		return r.styles.StatusLoading.Render(text)
	case StatusSuccess:
		return r.styles.StatusSuccess.Render(state.Status)
	case StatusError:
		return r.styles.StatusError.Render(state.Status)
	}
	return r.styles.Dim.Render(state.Status)
}

// RenderNavbar lists the menu entries with the selected one highlighted
func (r *Renderer) RenderNavbar(entries []string, selected int) string {
	lines := make([]string, 0, len(entries))
	width := 0
	for _, e := range entries {
		if w := lipgloss.Width(e); w > width {
			width = w
		}
	}
	for i, e := range entries {
		label := " " + e + strings.Repeat(" ", width-lipgloss.Width(e)) + " "
		if i == selected {
			lines = append(lines, r.styles.NavSelected.Render(label))
		} else {
			lines = append(lines, r.styles.NavItem.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderBottomBar draws the two soft keys: ≡ (Escape) on the left and
// ❬ (F12) on the right, lit while their highlight is on.
func (r *Renderer) RenderBottomBar(h highlight.Snapshot, width int) string {
	left := r.keyCap("≡", h.On(highlight.Left))
	center := r.keyCap("●", h.On(highlight.Center))
	right := r.keyCap("❬", h.On(highlight.Right))

	used := lipgloss.Width(left) + lipgloss.Width(center) + lipgloss.Width(right)
	gap := (width - used) / 2
	if gap < 1 {
		gap = 1
	}
	spacer := strings.Repeat(" ", gap)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, center, spacer, right)
}

// RenderKeypad draws the arrow keypad shown on the home screen
func (r *Renderer) RenderKeypad(h highlight.Snapshot) string {
	up := r.keyCap("↑", h.On(highlight.Up))
	down := r.keyCap("↓", h.On(highlight.Down))
	left := r.keyCap("←", h.On(highlight.LeftArrowKey))
	right := r.keyCap("→", h.On(highlight.RightArrowKey))
	blank := strings.Repeat(" ", lipgloss.Width(up))

	middle := lipgloss.JoinHorizontal(lipgloss.Top, left, blank, right)
	return lipgloss.JoinVertical(lipgloss.Center, up, middle, down)
}

func (r *Renderer) keyCap(label string, on bool) string {
	if on {
		return r.styles.KeyCapOn.Render(label)
	}
	return r.styles.KeyCap.Render(label)
}
