package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"

	"coinmind/internal/domain"
	"coinmind/internal/eventbus"
	"coinmind/internal/ui/navigation"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. Unset hooks in ctx fall
// back to the system clipboard, os.WriteFile and time.Now.
func NewExecutor(ctx CommandContext) *Executor {
	if ctx.Clipboard == nil {
		ctx.Clipboard = clipboard.WriteAll
	}
	if ctx.WriteFile == nil {
		ctx.WriteFile = func(name string, data []byte) error {
			return os.WriteFile(name, data, 0644)
		}
	}
	if ctx.Now == nil {
		ctx.Now = time.Now
	}
	return &Executor{ctx: &ctx}
}

// Bus returns the event bus commands publish to
func (e *Executor) Bus() eventbus.EventBus { return e.ctx.Bus }

// Navigate returns a command that switches to route
func (e *Executor) Navigate(route navigation.Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

// Back returns a command that goes to the previous route
func (e *Executor) Back() tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Back: true} }
}

// ExecuteLogin creates and executes a login command
func (e *Executor) ExecuteLogin(username, password string) tea.Cmd {
	cmd := NewLoginCommand(e.ctx, username, password)
	return cmd.Execute()
}

// ExecuteSignup creates and executes a signup command
func (e *Executor) ExecuteSignup(name, email, password string) tea.Cmd {
	cmd := NewSignupCommand(e.ctx, name, email, password)
	return cmd.Execute()
}

// ExecuteSaveTransaction creates or updates a transaction
func (e *Executor) ExecuteSaveTransaction(id string, in domain.TransactionInput) tea.Cmd {
	cmd := NewSaveTransactionCommand(e.ctx, id, in)
	return cmd.Execute()
}

// ExecuteDeleteTransaction deletes a transaction
func (e *Executor) ExecuteDeleteTransaction(id string) tea.Cmd {
	cmd := NewDeleteTransactionCommand(e.ctx, id)
	return cmd.Execute()
}

// ExecuteLogout deletes the session
func (e *Executor) ExecuteLogout() tea.Cmd {
	cmd := NewLogoutCommand(e.ctx)
	return cmd.Execute()
}

// LoadTransactions fetches one page of transactions for the list with
// generation gen
func (e *Executor) LoadTransactions(gen uint64, page, pageSize int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx.context()
		defer cancel()

		res, err := e.ctx.Backend.ListTransactions(ctx, page, pageSize)
		if err != nil {
			e.ctx.fail("Load transactions", err)
		}
		return TransactionsLoadedMsg{Gen: gen, Page: page, Result: res, Err: err}
	}
}

// FetchAdvice loads the financial analysis for the last days days
func (e *Executor) FetchAdvice(days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx.context()
		defer cancel()

		advice, err := e.ctx.Backend.FinancialAdvice(ctx, days)
		if err != nil {
			e.ctx.fail("Fetch financial analysis", err)
		}
		return AdviceLoadedMsg{Advice: advice, Err: err}
	}
}

// SaveAdviceAudio downloads the spoken analysis into AudioDir
func (e *Executor) SaveAdviceAudio(days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx.context()
		defer cancel()

		data, err := e.ctx.Backend.FinancialAdviceAudio(ctx, days)
		if err != nil {
			e.ctx.fail("Fetch audio", err)
			return AdviceAudioSavedMsg{Err: err}
		}
		if len(data) == 0 {
			return AdviceAudioSavedMsg{Err: fmt.Errorf("No audio data received")}
		}

		name := fmt.Sprintf("coinmind-advice-%s.mp3", e.ctx.Now().Format("20060102-150405"))
		path := filepath.Join(e.ctx.AudioDir, name)
		if err := e.ctx.WriteFile(path, data); err != nil {
			e.ctx.fail("Save audio", err)
			return AdviceAudioSavedMsg{Err: err}
		}
		return AdviceAudioSavedMsg{Path: path}
	}
}

// FetchTip loads one financial tip
func (e *Executor) FetchTip() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx.context()
		defer cancel()

		tip, err := e.ctx.Backend.FinancialTip(ctx)
		if err != nil {
			e.ctx.fail("Fetch financial tip", err)
		}
		return TipLoadedMsg{Tip: tip, Err: err}
	}
}

// LoadCurrencies fetches the currency list. Codes is always usable.
func (e *Executor) LoadCurrencies() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx.context()
		defer cancel()

		codes, err := e.ctx.Rates.Currencies(ctx)
		if err != nil {
			cblog.With("component", "currency").Warn("Using fallback currency list", "err", err)
		}
		return CurrenciesLoadedMsg{Codes: codes, Err: err}
	}
}

// Convert converts amount from one currency to another. seq identifies the
// request so stale responses can be told apart.
func (e *Executor) Convert(seq int, amount float64, from, to string, reverse bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.ctx.context()
		defer cancel()

		res, err := e.ctx.Rates.Convert(ctx, amount, from, to)
		if err != nil {
			cblog.With("component", "currency").Warn("Conversion failed", "seq", seq, "err", err)
		}
		return ConvertedMsg{Seq: seq, Reverse: reverse, Result: res, Err: err}
	}
}

// CopyToClipboard writes text to the system clipboard
func (e *Executor) CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := e.ctx.Clipboard(text)
		if err != nil {
			cblog.With("component", "clipboard").Warn("Clipboard write failed", "err", err)
		}
		return CopiedMsg{Err: err}
	}
}
