package pages

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/api"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/pager"
	"coinmind/internal/ui/views"
)

// Analysis requests an AI financial analysis of recent transactions
type Analysis struct {
	deps        Deps
	panel       *textPanel
	started     bool
	loading     bool
	audioSaving bool
	errText     string
	flash       Status
}

// NewAnalysis creates the analysis page
func NewAnalysis(deps Deps) *Analysis {
	return &Analysis{deps: deps, panel: newTextPanel(deps.Config.UISettings.Markdown)}
}

func (p *Analysis) Route() navigation.Route   { return navigation.RouteFinancialAnalysis }
func (p *Analysis) Title() string             { return "Financial Analysis" }
func (p *Analysis) Init() tea.Cmd             { return nil }
func (p *Analysis) Surfaces() []types.Surface { return nil }

func (p *Analysis) Help() string {
	if !p.started || p.loading {
		return "enter start analysis • esc menu"
	}
	return "enter analyze again • f12 full screen • s save audio • y copy • ↑/↓ scroll • esc menu"
}

func (p *Analysis) Status() Status {
	switch {
	case p.loading:
		return loadingStatus("Analyzing... (may take ~30s)")
	case p.audioSaving:
		return loadingStatus("Loading audio...")
	case p.flash.Text != "":
		return p.flash
	case p.errText != "":
		return errorStatus(p.errText)
	}
	return Status{}
}

func (p *Analysis) hasAdvice() bool {
	return p.started && !p.loading && p.panel.Text() != ""
}

func (p *Analysis) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commands.AdviceLoadedMsg:
		p.loading = false
		p.errText = msg.Advice.Error
		text := msg.Advice.Text
		if text == "" {
			text = api.NoAdvice
		}
		p.panel.SetText(text)

	case commands.AdviceAudioSavedMsg:
		p.audioSaving = false
		if msg.Err != nil {
			p.flash = errorStatus(msg.Err.Error())
		} else {
			p.flash = Status{Text: "Audio saved to " + msg.Path, Kind: views.StatusSuccess}
		}

	case commands.CopiedMsg:
		p.flash = copiedStatus(msg.Err)

	case pager.ClosedMsg:
		if msg.Err != nil {
			p.flash = errorStatus("Pager failed: " + msg.Err.Error())
		}

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *Analysis) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := p.deps.Keys.Translate(msg)
	switch k {
	case types.KeyEnter:
		if p.loading {
			return nil
		}
		p.started = true
		p.loading = true
		p.errText = ""
		p.flash = Status{}
		p.panel.SetText("")
		return p.deps.Exec.FetchAdvice(p.deps.Config.UISettings.AdviceDays)
	case types.KeyF12:
		if p.hasAdvice() && p.deps.Pager != nil {
			return p.deps.Pager.Cmd(p.panel.Text())
		}
		return nil
	}
	if p.panel.scroll(k) || !p.hasAdvice() {
		return nil
	}

	switch msg.String() {
	case "s":
		if p.audioSaving {
			return nil
		}
		p.audioSaving = true
		p.flash = Status{}
		return p.deps.Exec.SaveAdviceAudio(p.deps.Config.UISettings.AdviceDays)
	case "y":
		return p.deps.Exec.CopyToClipboard(p.panel.Text())
	}
	return nil
}

func (p *Analysis) View(width, height int) string {
	s := p.deps.Styles
	if !p.started {
		return s.RenderButton("Start Financial Analysis", true)
	}
	if p.loading {
		return s.Dim.Render("Analyzing... (may take ~30s)")
	}

	var b strings.Builder
	bodyHeight := height
	if p.errText != "" {
		b.WriteString(s.StatusError.Render(p.errText))
		b.WriteString("\n")
		bodyHeight--
	}
	b.WriteString(p.panel.View(width, max(bodyHeight, 1)))
	return b.String()
}
