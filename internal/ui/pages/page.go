// Package pages holds one model per route. Pages never see keys the router
// consumed: the menu and claiming surfaces get them first.
package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/config"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/highlight"
	"coinmind/internal/ui/input"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/pager"
	"coinmind/internal/ui/views"
)

// Page is the screen shown for one route
type Page interface {
	Route() navigation.Route
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Status() Status
	Help() string
	// Surfaces are registered with the router while the page is active
	Surfaces() []types.Surface
}

// Status is the line shown at the top right of the frame
type Status struct {
	Text string
	Kind views.StatusKind
}

// Deps are the collaborators every page may use
type Deps struct {
	Exec       *commands.Executor
	Styles     *views.Styles
	Keys       input.KeyMap
	Config     *config.Config
	Pager      *pager.Pager
	Highlights func() highlight.Snapshot
}

func (d Deps) withDefaults() Deps {
	if d.Styles == nil {
		d.Styles = views.NewStyles()
	}
	if d.Config == nil {
		d.Config = config.DefaultConfig()
	}
	if d.Keys.Enter.Keys() == nil {
		d.Keys = input.DefaultKeyMap()
	}
	if d.Highlights == nil {
		d.Highlights = func() highlight.Snapshot { return highlight.Snapshot{} }
	}
	return d
}

// New builds the page for route. Unknown routes get the home page.
func New(route navigation.Route, deps Deps) Page {
	deps = deps.withDefaults()
	switch route {
	case navigation.RouteLogin:
		return NewLogin(deps)
	case navigation.RouteSignup:
		return NewSignup(deps)
	case navigation.RouteExpenseTracker:
		return NewExpenses(deps)
	case navigation.RouteFinancialAnalysis:
		return NewAnalysis(deps)
	case navigation.RouteCurrencyConverter:
		return NewConverter(deps)
	case navigation.RouteFinancialTips:
		return NewTips(deps)
	case navigation.RouteAbout:
		return NewAbout(deps)
	case navigation.RouteLogout:
		return NewLogout(deps)
	}
	return NewHome(deps)
}

func errorStatus(text string) Status {
	return Status{Text: text, Kind: views.StatusError}
}

func loadingStatus(text string) Status {
	return Status{Text: text, Kind: views.StatusLoading}
}
