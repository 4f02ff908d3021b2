package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"coinmind/internal/api"
	"coinmind/internal/config"
	"coinmind/internal/currency"
	"coinmind/internal/domain"
	"coinmind/internal/ui/commands"
)

type recordingBackend struct {
	pages    map[int]*domain.TransactionPage
	listed   []int
	loginErr error
	saveErr  error
}

func (b *recordingBackend) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	return &domain.User{Username: name}, nil
}

func (b *recordingBackend) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	if b.loginErr != nil {
		return nil, b.loginErr
	}
	return &api.TokenResponse{AccessToken: "tok", ExpiresIn: 60}, nil
}

func (b *recordingBackend) ListTransactions(ctx context.Context, page, pageSize int) (*domain.TransactionPage, error) {
	b.listed = append(b.listed, page)
	if p, ok := b.pages[page]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("no page %d", page)
}

func (b *recordingBackend) CreateTransaction(ctx context.Context, in domain.TransactionInput) (*domain.Transaction, error) {
	if b.saveErr != nil {
		return nil, b.saveErr
	}
	return &domain.Transaction{ID: "new", Description: in.Description, Amount: in.Amount, Type: in.Type}, nil
}

func (b *recordingBackend) UpdateTransaction(ctx context.Context, id string, in domain.TransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: id, Description: in.Description, Amount: in.Amount, Type: in.Type}, nil
}

func (b *recordingBackend) DeleteTransaction(ctx context.Context, id string) error { return nil }

func (b *recordingBackend) FinancialAdvice(ctx context.Context, days int) (domain.Advice, error) {
	return domain.Advice{Text: "Spend less."}, nil
}

func (b *recordingBackend) FinancialAdviceAudio(ctx context.Context, days int) ([]byte, error) {
	return []byte("ID3"), nil
}

func (b *recordingBackend) FinancialTip(ctx context.Context) (domain.Tip, error) {
	return domain.Tip{Text: "Save more."}, nil
}

type doublingRates struct{}

func (doublingRates) Currencies(ctx context.Context) ([]string, error) {
	return []string{"EUR", "JPY", "USD"}, nil
}

func (doublingRates) Convert(ctx context.Context, amount float64, from, to string) (currency.Conversion, error) {
	return currency.Conversion{Amount: amount * 2, Rate: 2, Date: "2024-05-01"}, nil
}

type noopSessions struct{}

func (noopSessions) Create(token string, expiresIn time.Duration) error { return nil }
func (noopSessions) Delete() error                                    { return nil }

func testDeps(b *recordingBackend) Deps {
	exec := commands.NewExecutor(commands.CommandContext{
		Backend:   b,
		Rates:     doublingRates{},
		Sessions:  noopSessions{},
		Clipboard: func(string) error { return nil },
		WriteFile: func(string, []byte) error { return nil },
		AudioDir:  "out",
	})
	cfg := config.DefaultConfig()
	cfg.PageSize = 2
	cfg.UISettings.Markdown = false
	return Deps{Exec: exec, Config: cfg}.withDefaults()
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends s one rune at a time
func typeText(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		update(runes(string(r)))
	}
}

func countOf(s, sub string) int {
	return strings.Count(s, sub)
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}
