package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coinmind/internal/ui/navigation"
)

// helpClosedMsg is sent when the key reference pager exits
type helpClosedMsg struct {
	err error
}

// helpEntry is one key and what it does
type helpEntry struct {
	key  string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

// HelpRenderer builds the key reference shown in the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("35")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

func helpSections(menu []navigation.MenuEntry) []helpSection {
	var pages []helpEntry
	for _, e := range menu {
		pages = append(pages, helpEntry{key: "", desc: e.Label})
	}
	return []helpSection{
		{title: "Menu", entries: []helpEntry{
			{"Esc", "Open or close the menu"},
			{"↑/↓", "Move through the menu"},
			{"Enter", "Go to the selected page"},
		}},
		{title: "Pages", entries: pages},
		{title: "Forms", entries: []helpEntry{
			{"↑/↓", "Move between fields and buttons"},
			{"Enter", "Activate the focused button"},
			{"Type", "Edit the focused field"},
		}},
		{title: "Expense Tracker", entries: []helpEntry{
			{"↑/↓", "Select a row, the last row loads more"},
			{"Enter", "Add or edit a transaction"},
			{"Space", "Toggle income in the drawer"},
			{"Esc", "Close the drawer"},
		}},
		{title: "Currency Converter", entries: []helpEntry{
			{"Arrows", "Move around the grid"},
			{"Enter", "Pick a currency"},
		}},
		{title: "Analysis and Tips", entries: []helpEntry{
			{"Enter", "Fetch"},
			{"F12", "Open the analysis in the pager"},
			{"s", "Save the analysis as audio"},
			{"y", "Copy the text"},
		}},
		{title: "Other", entries: []helpEntry{
			{"F1", "Show this help"},
			{"Ctrl+C", "Quit"},
		}},
	}
}

// Render returns the key reference for the given menu
func (r *HelpRenderer) Render(menu []navigation.MenuEntry) string {
	var help strings.Builder

	help.WriteString(r.title.Render("CoinMind Help"))
	help.WriteString("\n")

	for _, s := range helpSections(menu) {
		help.WriteString(r.section.Render(s.title))
		help.WriteString("\n")
		width := 0
		for _, e := range s.entries {
			width = max(width, lipgloss.Width(e.key))
		}
		for _, e := range s.entries {
			if e.key == "" {
				help.WriteString(fmt.Sprintf("  %s\n", r.desc.Render(e.desc)))
				continue
			}
			pad := strings.Repeat(" ", width-lipgloss.Width(e.key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", r.key.Render(e.key), pad, r.desc.Render(e.desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.note.Render("  Press q to leave the pager"))
	return help.String()
}
