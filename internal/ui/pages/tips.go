package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/api"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/views"
)

// Tips shows one financial tip at a time
type Tips struct {
	deps    Deps
	panel   *textPanel
	loading bool
	failed  bool
	flash   Status
}

// NewTips creates the tips page
func NewTips(deps Deps) *Tips {
	return &Tips{deps: deps, panel: newTextPanel(deps.Config.UISettings.Markdown)}
}

func (p *Tips) Route() navigation.Route   { return navigation.RouteFinancialTips }
func (p *Tips) Title() string             { return "Financial Tips" }
func (p *Tips) Surfaces() []types.Surface { return nil }
func (p *Tips) Help() string              { return "enter another tip • y copy • ↑/↓ scroll • esc menu" }

func (p *Tips) Init() tea.Cmd {
	return p.fetch()
}

func (p *Tips) fetch() tea.Cmd {
	if p.loading {
		return nil
	}
	p.loading = true
	p.flash = Status{}
	return p.deps.Exec.FetchTip()
}

func (p *Tips) Status() Status {
	switch {
	case p.loading:
		return loadingStatus("Fetching tip...")
	case p.flash.Text != "":
		return p.flash
	case p.failed:
		return errorStatus(api.TipFailed)
	}
	return Status{}
}

func (p *Tips) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commands.TipLoadedMsg:
		p.loading = false
		p.failed = msg.Err != nil || msg.Tip.Error != ""
		text := msg.Tip.Text
		if text == "" {
			text = api.NoTip
		}
		p.panel.SetText(text)

	case commands.CopiedMsg:
		p.flash = copiedStatus(msg.Err)

	case tea.KeyMsg:
		k := p.deps.Keys.Translate(msg)
		if k == types.KeyEnter {
			return p.fetch()
		}
		if p.panel.scroll(k) {
			return nil
		}
		if msg.String() == "y" && !p.loading && p.panel.Text() != "" {
			return p.deps.Exec.CopyToClipboard(p.panel.Text())
		}
	}
	return nil
}

func (p *Tips) View(width, height int) string {
	if p.loading && p.panel.Text() == "" {
		return p.deps.Styles.Dim.Render("Loading...")
	}
	return p.panel.View(width, height)
}

func copiedStatus(err error) Status {
	if err != nil {
		return errorStatus("Copy failed: " + err.Error())
	}
	return Status{Text: "Copied to clipboard", Kind: views.StatusSuccess}
}
