package pages

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/views"
)

// Home is the landing page with the arrow keypad
type Home struct {
	deps     Deps
	renderer *views.Renderer
}

// NewHome creates the home page
func NewHome(deps Deps) *Home {
	return &Home{deps: deps, renderer: views.NewRenderer(deps.Styles)}
}

func (p *Home) Route() navigation.Route    { return navigation.RouteHome }
func (p *Home) Title() string              { return "" }
func (p *Home) Init() tea.Cmd              { return nil }
func (p *Home) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *Home) Status() Status             { return Status{} }
func (p *Home) Surfaces() []types.Surface  { return nil }
func (p *Home) Help() string               { return "esc menu • f1 help • ctrl+c quit" }

func (p *Home) View(width, height int) string {
	s := p.deps.Styles
	var b strings.Builder
	b.WriteString(s.Highlight.Render("Keep Your Coins in Mind!"))
	b.WriteString("\n\n")
	b.WriteString(s.Dim.Render("Press Esc (≡) to open the menu."))
	if p.deps.Config.UISettings.ShowKeypad {
		b.WriteString("\n\n")
		b.WriteString(p.renderer.RenderKeypad(p.deps.Highlights()))
	}
	if width <= 4 {
		return b.String()
	}
	return lipgloss.PlaceHorizontal(width-4, lipgloss.Center, b.String())
}
