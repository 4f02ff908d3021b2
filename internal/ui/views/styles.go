package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	PageTitle     lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	KeyCap        lipgloss.Style
	KeyCapOn      lipgloss.Style
	Navbar        lipgloss.Style
	NavItem       lipgloss.Style
	NavSelected   lipgloss.Style
	Drawer        lipgloss.Style
	Label         lipgloss.Style
	Field         lipgloss.Style
	FieldFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Danger        lipgloss.Style
	DateHeader    lipgloss.Style
	SelectionBg   lipgloss.Style
	Income        lipgloss.Style
	Expense       lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	FieldError    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("35")),
		PageTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			MarginBottom(1),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(0, 2),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		KeyCap: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1),
		KeyCapOn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Background(lipgloss.Color("226")).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1),
		Navbar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("35")).
			Padding(0, 1),
		NavItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		NavSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("35")).Bold(true),
		Drawer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2).
			Width(48),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Field:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("241")).Width(36),
		FieldFocused:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("33")).Width(36),
		Button:        lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("238")),
		ButtonFocused: lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("33")).Foreground(lipgloss.Color("231")).Bold(true),
		Danger:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		DateHeader: lipgloss.NewStyle().
			Background(lipgloss.Color("28")).
			Foreground(lipgloss.Color("231")).
			Padding(0, 1),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Income:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Expense:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		FieldError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
	}
}

// RenderButton renders a label as a focused or idle button
func (s *Styles) RenderButton(label string, focused bool) string {
	if focused {
		return s.ButtonFocused.Render(label)
	}
	return s.Button.Render(label)
}

// RenderField wraps a rendered input in a focused or idle border
func (s *Styles) RenderField(content string, focused bool) string {
	if focused {
		return s.FieldFocused.Render(content)
	}
	return s.Field.Render(content)
}
