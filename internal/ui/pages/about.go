package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
)

type aboutSection struct {
	title string
	body  []string
}

var aboutSections = []aboutSection{
	{"Overview", []string{
		"CoinMind is a lightweight finance app designed to help you track expenses,",
		"manage assets, and build smarter money habits, anytime and anywhere!",
	}},
	{"Tips", []string{
		"Update your records regularly, add notes for clarity, and use the analysis",
		"tools to understand your money flow. Small steps lead to smarter habits.",
	}},
	{"Disclaimer", []string{
		"All info from CoinMind is for reference. Please verify and decide at your own risk.",
	}},
	{"Our Teams", []string{
		"Cup Soup, small team, big passion:",
		"• EllaChang: LLM Research & Content",
		"• Kiri487: UI Design",
		"• SiriusKoan: Backend Development",
		"• Willy_awkward: Frontend Development",
	}},
	{"Contact Us", []string{"willy1118t@gmail.com"}},
	{"Version Info", []string{"v0.1.0 Demo"}},
	{"Acknowledgments", []string{"CloudMosa"}},
}

// About shows static information about the app
type About struct {
	deps     Deps
	viewport viewport.Model
	ready    bool
}

// NewAbout creates the about page
func NewAbout(deps Deps) *About {
	return &About{deps: deps}
}

func (p *About) Route() navigation.Route   { return navigation.RouteAbout }
func (p *About) Title() string             { return "About" }
func (p *About) Init() tea.Cmd             { return nil }
func (p *About) Status() Status            { return Status{} }
func (p *About) Surfaces() []types.Surface { return nil }
func (p *About) Help() string              { return "↑/↓ scroll • esc menu" }

func (p *About) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !p.ready {
		return nil
	}
	switch p.deps.Keys.Translate(km) {
	case types.KeyUp:
		p.viewport.ScrollUp(1)
	case types.KeyDown:
		p.viewport.ScrollDown(1)
	}
	return nil
}

func (p *About) content(width int) string {
	s := p.deps.Styles
	rule := strings.Repeat("─", max(width-4, 10))
	var b strings.Builder
	for i, sec := range aboutSections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s.Label.Render(sec.title))
		b.WriteString("\n")
		b.WriteString(s.Dim.Render(rule))
		for _, line := range sec.body {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}

func (p *About) View(width, height int) string {
	if !p.ready {
		p.viewport = viewport.New(width, height)
		p.ready = true
	}
	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.SetContent(p.content(width))
	return p.viewport.View()
}
