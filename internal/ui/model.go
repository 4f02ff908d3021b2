package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"

	"coinmind/internal/config"
	"coinmind/internal/eventbus"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/handlers"
	"coinmind/internal/ui/highlight"
	"coinmind/internal/ui/input"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/pager"
	"coinmind/internal/ui/pages"
	"coinmind/internal/ui/state"
	"coinmind/internal/ui/views"
)

// SessionChecker reports whether a valid session exists
type SessionChecker interface {
	Active() bool
}

// Options are the collaborators of the root model
type Options struct {
	Config     *config.Config
	Bus        eventbus.EventBus
	Exec       *commands.Executor
	Sessions   SessionChecker
	Highlights *highlight.Store // nil creates one from the config
	Pager      *pager.Pager     // nil creates one
}

// Model is the root Bubble Tea model. It owns the key router, the menu
// session and the highlight store, and hosts the page for the current route.
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.AppState
	sessions SessionChecker

	keys       input.KeyMap
	router     *input.Router
	nav        *navigation.Session
	highlights *highlight.Store
	renderer   *views.Renderer
	spinner    spinner.Model
	help       help.Model

	exec         *commands.Executor
	eventHandler *handlers.EventHandler
	pager        *pager.Pager
	helpRenderer *HelpRenderer

	page       pages.Page
	unregister []func()
	pending    *navigation.Route // set by the menu while routing a key

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the root model
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:        opts.Bus,
		config:     cfg,
		sessions:   opts.Sessions,
		keys:       input.DefaultKeyMap(),
		renderer:   views.NewRenderer(nil),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
		exec:       opts.Exec,
		pager:      opts.Pager,
		highlights: opts.Highlights,

		helpRenderer: NewHelpRenderer(),
	}
	m.state = state.NewAppState(m.sessionActive())
	m.eventHandler = handlers.NewEventHandler(m.state)

	if m.highlights == nil {
		m.highlights = highlight.New(cfg.HighlightDuration(), nil)
	}
	if m.pager == nil {
		m.pager = pager.New()
	}

	nav, err := navigation.NewSession(navigation.DefaultMenu(), navigation.NavigatorFunc(func(r navigation.Route) {
		m.pending = &r
	}))
	if err != nil {
		return nil, err
	}
	m.nav = nav
	m.router = input.NewRouter(m.keys, nav, m.highlights)
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
	// Turning a highlight on happens inside Update, which renders anyway.
	// Only the timer-driven reset needs a message.
	m.highlights.OnChange(func(flag highlight.Flag, on bool) {
		if !on && m.program != nil {
			m.program.Send(highlightMsg{flag: flag, on: on})
		}
	})
}

// Close stops pending highlight timers
func (m *Model) Close() {
	m.highlights.Close()
}

// Route returns the current route
func (m *Model) Route() navigation.Route { return m.state.Route }

// Page returns the active page
func (m *Model) Page() pages.Page { return m.page }

// Menu returns the navigation session
func (m *Model) Menu() *navigation.Session { return m.nav }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.navigate(navigation.RouteHome, true))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyF1:
			return m, m.showHelp()
		}
		return m, m.handleKey(msg)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case commands.NavigateMsg:
		if msg.Back {
			return m, m.navigate(m.state.PopRoute(), false)
		}
		return m, m.navigate(msg.Route, true)

	case highlightMsg:
		return m, nil

	case helpClosedMsg:
		if msg.err != nil {
			cblog.With("component", "help").Warn("Help pager failed", "err", msg.err)
			m.state.SetStatus("Could not open help: "+msg.err.Error(), state.StatusError)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.page == nil {
		return m, nil
	}
	return m, m.page.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	out := m.router.Route(msg)

	var cmds []tea.Cmd
	if out.Cmd != nil {
		cmds = append(cmds, out.Cmd)
	}
	if m.pending != nil {
		r := *m.pending
		m.pending = nil
		cmds = append(cmds, m.navigate(r, true))
		return tea.Batch(cmds...)
	}
	if !out.Handled && m.page != nil {
		cmds = append(cmds, m.page.Update(msg))
	}
	return tea.Batch(cmds...)
}

// showHelp opens the key reference in the pager
func (m *Model) showHelp() tea.Cmd {
	content := m.helpRenderer.Render(m.nav.Entries())
	show := m.pager.Cmd(content)
	return func() tea.Msg {
		closed, _ := show().(pager.ClosedMsg)
		return helpClosedMsg{err: closed.Err}
	}
}

func (m *Model) sessionActive() bool {
	return m.sessions != nil && m.sessions.Active()
}

// guard maps a requested route to the one that may be shown: protected
// routes need a session, login and signup are skipped with one
func (m *Model) guard(r navigation.Route) navigation.Route {
	m.state.LoggedIn = m.sessionActive()
	switch {
	case !r.Public() && !m.state.LoggedIn:
		return navigation.RouteLogin
	case r.Public() && m.state.LoggedIn:
		return navigation.RouteHome
	}
	return r
}

// navigate swaps the active page. push records the current route for Back.
func (m *Model) navigate(requested navigation.Route, push bool) tea.Cmd {
	target := m.guard(requested)
	if target != requested {
		cblog.With("component", "navigation").Debug("Route guard redirect", "requested", requested, "target", target)
	}
	if m.page != nil && target == m.state.Route {
		m.nav.Close()
		return nil
	}

	for _, unregister := range m.unregister {
		unregister()
	}
	m.unregister = nil

	if push {
		m.state.SetRoute(target)
	} else {
		m.state.Route = target
	}
	// Keep an expiry notice visible on the login page
	if target != navigation.RouteLogin {
		m.state.ClearStatus()
	}
	m.nav.Close()

	m.page = pages.New(target, pages.Deps{
		Exec:       m.exec,
		Styles:     m.renderer.Styles(),
		Keys:       m.keys,
		Config:     m.config,
		Pager:      m.pager,
		Highlights: m.highlights.Snapshot,
	})
	for _, s := range m.page.Surfaces() {
		m.unregister = append(m.unregister, m.router.Register(s))
	}
	cblog.With("component", "navigation").Debug("Navigated", "route", target)
	return m.page.Init()
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.page == nil {
		return ""
	}

	entries := m.nav.Entries()
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}

	helpText := m.page.Help()
	if helpText == "" {
		helpText = m.help.View(m.keys)
	}

	vs := views.ViewState{
		Width:        m.state.Width,
		Height:       m.state.Height,
		PageTitle:    m.page.Title(),
		Spinner:      m.spinner.View(),
		MenuOpen:     m.nav.IsOpen(),
		MenuEntries:  labels,
		MenuSelected: m.nav.SelectedIndex(),
		Highlights:   m.highlights.Snapshot(),
		HelpText:     helpText,
	}
	vs.Status, vs.StatusKind = m.status()

	// Body area left over by the frame: title rows, page title, soft keys
	// and help line
	bodyHeight := m.state.Height - 9
	if m.page.Title() == "" {
		bodyHeight += 2
	}
	bodyWidth := m.state.Width - 4
	vs.Content = m.page.View(max(bodyWidth, 10), max(bodyHeight, 3))
	return m.renderer.Render(vs)
}

func (m *Model) status() (string, views.StatusKind) {
	if st := m.page.Status(); st.Text != "" {
		return st.Text, st.Kind
	}
	if m.state.StatusMessage == "" {
		return "", views.StatusInfo
	}
	switch m.state.StatusKind {
	case state.StatusError:
		return m.state.StatusMessage, views.StatusError
	case state.StatusSuccess:
		return m.state.StatusMessage, views.StatusSuccess
	}
	return m.state.StatusMessage, views.StatusInfo
}
