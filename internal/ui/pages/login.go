package pages

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/api"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/validation"
)

const (
	fieldUsername = "username"
	fieldPassword = "password"
	fieldSubmit   = "submit"
	fieldSwitch   = "switch"
)

// Login asks for credentials and stores the session on success
type Login struct {
	deps    Deps
	form    *form
	message string
	pending bool
}

// NewLogin creates the login page
func NewLogin(deps Deps) *Login {
	f := newForm()
	f.addInput(fieldUsername, "Username", 0, newInput("your username"))
	pw := newInput("")
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	f.addInput(fieldPassword, "Password", 1, pw)
	f.addButton(fieldSubmit, "Log In", 2)
	f.addButton(fieldSwitch, "Create an account", 3)
	return &Login{deps: deps, form: f}
}

func (p *Login) Route() navigation.Route   { return navigation.RouteLogin }
func (p *Login) Title() string             { return "Log In" }
func (p *Login) Surfaces() []types.Surface { return nil }
func (p *Login) Help() string              { return "↑/↓ move • enter submit • esc menu" }

func (p *Login) Init() tea.Cmd {
	return p.form.focus(fieldUsername)
}

func (p *Login) Status() Status {
	if p.pending {
		return loadingStatus("Logging in...")
	}
	return Status{}
}

func (p *Login) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commands.LoginResultMsg:
		p.pending = false
		if msg.Err != nil {
			p.message = loginMessage(msg.Err)
			return nil
		}
		p.message = ""
		return p.deps.Exec.Navigate(navigation.RouteHome)

	case tea.KeyMsg:
		if p.pending {
			return nil
		}
		switch p.deps.Keys.Translate(msg) {
		case types.KeyDown:
			return p.form.next()
		case types.KeyUp:
			return p.form.prev()
		case types.KeyEnter:
			return p.activate()
		}
		return p.form.updateFocused(msg)
	}
	return nil
}

func (p *Login) activate() tea.Cmd {
	switch p.form.focused() {
	case fieldSwitch:
		return p.deps.Exec.Navigate(navigation.RouteSignup)
	case fieldSubmit:
		return p.submit()
	}
	return p.form.next()
}

func (p *Login) submit() tea.Cmd {
	username := p.form.value(fieldUsername)
	password := p.form.value(fieldPassword)
	if err := validation.ValidateLogin(username, password); err != nil {
		p.message = "Invalid form submission."
		return nil
	}
	p.message = ""
	p.pending = true
	return p.deps.Exec.ExecuteLogin(strings.TrimSpace(username), password)
}

func loginMessage(err error) string {
	if errors.Is(err, api.ErrMissingToken) {
		return err.Error()
	}
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return "Invalid username or password."
	}
	return "Login failed: " + err.Error()
}

func (p *Login) View(width, height int) string {
	s := p.deps.Styles
	var b strings.Builder
	b.WriteString(p.form.renderInput(s, fieldUsername, ""))
	b.WriteString("\n")
	b.WriteString(p.form.renderInput(s, fieldPassword, ""))
	b.WriteString("\n\n")
	if p.message != "" {
		b.WriteString(s.StatusError.Render(p.message))
		b.WriteString("\n")
	}
	if p.pending {
		b.WriteString(s.Dim.Render("Logging in..."))
	} else {
		b.WriteString(p.form.renderButton(s, fieldSubmit))
	}
	b.WriteString("\n\n")
	b.WriteString(p.form.renderButton(s, fieldSwitch))
	return b.String()
}
