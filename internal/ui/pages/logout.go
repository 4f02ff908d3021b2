package pages

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
)

// Logout asks for confirmation before deleting the session
type Logout struct {
	deps    Deps
	yes     bool
	pending bool
	err     string
}

// NewLogout creates the logout page. "No" is focused first.
func NewLogout(deps Deps) *Logout {
	return &Logout{deps: deps}
}

func (p *Logout) Route() navigation.Route   { return navigation.RouteLogout }
func (p *Logout) Title() string             { return "Logout" }
func (p *Logout) Init() tea.Cmd             { return nil }
func (p *Logout) Surfaces() []types.Surface { return nil }
func (p *Logout) Help() string              { return "←/→ choose • enter confirm • esc menu" }

func (p *Logout) Status() Status {
	if p.err != "" {
		return errorStatus(p.err)
	}
	return Status{}
}

func (p *Logout) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commands.LoggedOutMsg:
		p.pending = false
		if msg.Err != nil {
			p.err = msg.Err.Error()
			return nil
		}
		return p.deps.Exec.Navigate(navigation.RouteLogin)

	case tea.KeyMsg:
		if p.pending {
			return nil
		}
		k := p.deps.Keys.Translate(msg)
		switch {
		case k.Arrow():
			p.yes = !p.yes
		case k == types.KeyEnter:
			if !p.yes {
				return p.deps.Exec.Back()
			}
			p.pending = true
			return p.deps.Exec.ExecuteLogout()
		}
	}
	return nil
}

func (p *Logout) View(width, height int) string {
	s := p.deps.Styles
	var b strings.Builder
	b.WriteString(s.Label.Render("Are you sure you want to logout?"))
	b.WriteString("\n\n")
	yes := s.RenderButton("Yes", p.yes)
	if p.yes {
		yes = s.ButtonFocused.Background(lipgloss.Color("160")).Render("Yes")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", s.RenderButton("No", !p.yes)))
	return b.String()
}
