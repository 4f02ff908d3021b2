package commands

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"

	"coinmind/internal/api"
	"coinmind/internal/currency"
	"coinmind/internal/domain"
	"coinmind/internal/eventbus"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Backend is the part of the API client the screens call
type Backend interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*api.TokenResponse, error)
	ListTransactions(ctx context.Context, page, pageSize int) (*domain.TransactionPage, error)
	CreateTransaction(ctx context.Context, in domain.TransactionInput) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, in domain.TransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	FinancialAdvice(ctx context.Context, days int) (domain.Advice, error)
	FinancialAdviceAudio(ctx context.Context, days int) ([]byte, error)
	FinancialTip(ctx context.Context) (domain.Tip, error)
}

// Rates is the exchange rate provider
type Rates interface {
	Currencies(ctx context.Context) ([]string, error)
	Convert(ctx context.Context, amount float64, from, to string) (currency.Conversion, error)
}

// Sessions stores the bearer token
type Sessions interface {
	Create(token string, expiresIn time.Duration) error
	Delete() error
}

// CommandContext provides context for command execution
type CommandContext struct {
	Backend  Backend
	Rates    Rates
	Sessions Sessions
	Bus      eventbus.EventBus
	Timeout  time.Duration

	// Clipboard writes text to the system clipboard
	Clipboard func(text string) error
	// WriteFile persists downloaded audio
	WriteFile func(name string, data []byte) error
	AudioDir  string
	Now       func() time.Time
}

func (c *CommandContext) context() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

// fail records a failed call. A 401 ends the session so the route guard
// sends the user back to login.
func (c *CommandContext) fail(op string, err error) {
	cblog.With("component", "commands").Error("Request failed", "op", op, "err", err)
	if errors.Is(err, api.ErrUnauthorized) && c.Sessions != nil {
		if derr := c.Sessions.Delete(); derr != nil {
			cblog.With("component", "commands").Error("Failed to drop session after 401", "err", derr)
		}
	}
	if c.Bus != nil {
		c.Bus.Publish(eventbus.ErrorEvent{Message: op, Err: err})
	}
}

// LoginCommand exchanges credentials for a token and stores it
type LoginCommand struct {
	ctx      *CommandContext
	username string
	password string
}

// NewLoginCommand creates a new login command
func NewLoginCommand(ctx *CommandContext, username, password string) *LoginCommand {
	return &LoginCommand{ctx: ctx, username: username, password: password}
}

// Execute performs the login
func (c *LoginCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		tok, err := c.ctx.Backend.Login(ctx, c.username, c.password)
		if err != nil {
			cblog.With("component", "login").Info("Login failed", "user", c.username, "err", err)
			return LoginResultMsg{Err: err}
		}
		expires := time.Duration(tok.ExpiresIn) * time.Second
		if err := c.ctx.Sessions.Create(tok.AccessToken, expires); err != nil {
			c.ctx.fail("Create session", err)
			return LoginResultMsg{Err: err}
		}
		return LoginResultMsg{}
	}
}

// SignupCommand registers a new account
type SignupCommand struct {
	ctx                   *CommandContext
	name, email, password string
}

// NewSignupCommand creates a new signup command
func NewSignupCommand(ctx *CommandContext, name, email, password string) *SignupCommand {
	return &SignupCommand{ctx: ctx, name: name, email: email, password: password}
}

// Execute performs the signup
func (c *SignupCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		if _, err := c.ctx.Backend.Signup(ctx, c.name, c.email, c.password); err != nil {
			cblog.With("component", "signup").Info("Signup failed", "err", err)
			return SignupResultMsg{Err: err}
		}
		return SignupResultMsg{}
	}
}

// SaveTransactionCommand creates a transaction, or updates it when id is set
type SaveTransactionCommand struct {
	ctx *CommandContext
	id  string
	in  domain.TransactionInput
}

// NewSaveTransactionCommand creates a new save command
func NewSaveTransactionCommand(ctx *CommandContext, id string, in domain.TransactionInput) *SaveTransactionCommand {
	return &SaveTransactionCommand{ctx: ctx, id: id, in: in}
}

// Execute performs the create or update
func (c *SaveTransactionCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		var (
			tx  *domain.Transaction
			err error
		)
		created := c.id == ""
		if created {
			tx, err = c.ctx.Backend.CreateTransaction(ctx, c.in)
		} else {
			tx, err = c.ctx.Backend.UpdateTransaction(ctx, c.id, c.in)
		}
		if err != nil {
			c.ctx.fail("Save transaction", err)
			return TransactionSavedMsg{Created: created, Err: err}
		}

		if c.ctx.Bus != nil {
			if created {
				c.ctx.Bus.Publish(eventbus.TransactionCreatedEvent{Transaction: *tx})
			} else {
				c.ctx.Bus.Publish(eventbus.TransactionUpdatedEvent{Transaction: *tx})
			}
		}
		return TransactionSavedMsg{Transaction: *tx, Created: created}
	}
}

// DeleteTransactionCommand removes a transaction
type DeleteTransactionCommand struct {
	ctx *CommandContext
	id  string
}

// NewDeleteTransactionCommand creates a new delete command
func NewDeleteTransactionCommand(ctx *CommandContext, id string) *DeleteTransactionCommand {
	return &DeleteTransactionCommand{ctx: ctx, id: id}
}

// Execute performs the delete
func (c *DeleteTransactionCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		if err := c.ctx.Backend.DeleteTransaction(ctx, c.id); err != nil {
			c.ctx.fail("Delete transaction", err)
			return TransactionDeletedMsg{ID: c.id, Err: err}
		}
		if c.ctx.Bus != nil {
			c.ctx.Bus.Publish(eventbus.TransactionDeletedEvent{ID: c.id})
		}
		return TransactionDeletedMsg{ID: c.id}
	}
}

// LogoutCommand deletes the stored session
type LogoutCommand struct {
	ctx *CommandContext
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand(ctx *CommandContext) *LogoutCommand {
	return &LogoutCommand{ctx: ctx}
}

// Execute performs the logout
func (c *LogoutCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		if err := c.ctx.Sessions.Delete(); err != nil {
			cblog.With("component", "logout").Error("Logout failed", "err", err)
			return LoggedOutMsg{Err: err}
		}
		return LoggedOutMsg{}
	}
}
