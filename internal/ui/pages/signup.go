package pages

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/validation"
)

const (
	fieldName  = "name"
	fieldEmail = "email"
)

// Signup registers an account and sends the user to login
type Signup struct {
	deps    Deps
	form    *form
	errs    validation.FieldErrors
	message string
	pending bool
}

// NewSignup creates the signup page
func NewSignup(deps Deps) *Signup {
	f := newForm()
	f.addInput(fieldName, "Name", 0, newInput("your name"))
	f.addInput(fieldEmail, "Email", 1, newInput("you@example.com"))
	pw := newInput("")
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	f.addInput(fieldPassword, "Password", 2, pw)
	f.addButton(fieldSubmit, "Sign Up", 3)
	f.addButton(fieldSwitch, "Back to login", 4)
	return &Signup{deps: deps, form: f}
}

func (p *Signup) Route() navigation.Route   { return navigation.RouteSignup }
func (p *Signup) Title() string             { return "Sign Up" }
func (p *Signup) Surfaces() []types.Surface { return nil }
func (p *Signup) Help() string              { return "↑/↓ move • enter submit • esc menu" }

func (p *Signup) Init() tea.Cmd {
	return p.form.focus(fieldName)
}

func (p *Signup) Status() Status {
	if p.pending {
		return loadingStatus("Signing up...")
	}
	return Status{}
}

func (p *Signup) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commands.SignupResultMsg:
		p.pending = false
		if msg.Err != nil {
			p.message = "An error occurred while creating your account."
			return nil
		}
		return p.deps.Exec.Navigate(navigation.RouteLogin)

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
			switch p.form.focused() {
			case fieldSwitch:
				return p.deps.Exec.Navigate(navigation.RouteLogin)
			case fieldSubmit:
				return p.submit()
			}
			return p.form.next()
		}
		return p.form.updateFocused(msg)
	}
	return nil
}

func (p *Signup) submit() tea.Cmd {
	in, err := validation.ValidateSignup(p.form.value(fieldName), p.form.value(fieldEmail), p.form.value(fieldPassword))
	p.errs = nil
	p.message = ""
	if err != nil {
		var fe validation.FieldErrors
		if errors.As(err, &fe) {
			p.errs = fe
		} else {
			p.message = err.Error()
		}
		return nil
	}
	p.pending = true
	return p.deps.Exec.ExecuteSignup(in.Name, in.Email, in.Password)
}

func (p *Signup) View(width, height int) string {
	s := p.deps.Styles
	var b strings.Builder
	b.WriteString(p.form.renderInput(s, fieldName, p.errs.First(fieldName)))
	b.WriteString("\n")
	b.WriteString(p.form.renderInput(s, fieldEmail, p.errs.First(fieldEmail)))
	b.WriteString("\n")
	b.WriteString(p.form.renderInput(s, fieldPassword, ""))
	if msgs := p.errs[fieldPassword]; len(msgs) > 0 {
		b.WriteString("\n")
		b.WriteString(s.FieldError.Render("Password must:"))
		for _, m := range msgs {
			b.WriteString("\n")
			b.WriteString(s.FieldError.Render("- " + m))
		}
	}
	b.WriteString("\n\n")
	if p.message != "" {
		b.WriteString(s.StatusError.Render(p.message))
		b.WriteString("\n")
	}
	if p.pending {
		b.WriteString(s.Dim.Render("Signing up..."))
	} else {
		b.WriteString(p.form.renderButton(s, fieldSubmit))
	}
	b.WriteString("\n\n")
	b.WriteString(p.form.renderButton(s, fieldSwitch))
	return b.String()
}
