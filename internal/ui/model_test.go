package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinmind/internal/api"
	"coinmind/internal/config"
	"coinmind/internal/currency"
	"coinmind/internal/domain"
	"coinmind/internal/eventbus"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/highlight"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/pages"
)

type stubBackend struct{}

func (stubBackend) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	return &domain.User{}, nil
}

func (stubBackend) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	return &api.TokenResponse{AccessToken: "tok"}, nil
}

func (stubBackend) ListTransactions(ctx context.Context, page, pageSize int) (*domain.TransactionPage, error) {
	return &domain.TransactionPage{}, nil
}

func (stubBackend) CreateTransaction(ctx context.Context, in domain.TransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: "1"}, nil
}

func (stubBackend) UpdateTransaction(ctx context.Context, id string, in domain.TransactionInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: id}, nil
}

func (stubBackend) DeleteTransaction(ctx context.Context, id string) error { return nil }

func (stubBackend) FinancialAdvice(ctx context.Context, days int) (domain.Advice, error) {
	return domain.Advice{Text: "Spend less."}, nil
}

func (stubBackend) FinancialAdviceAudio(ctx context.Context, days int) ([]byte, error) {
	return nil, nil
}

func (stubBackend) FinancialTip(ctx context.Context) (domain.Tip, error) {
	return domain.Tip{Text: "Save more."}, nil
}

type stubRates struct{}

func (stubRates) Currencies(ctx context.Context) ([]string, error) {
	return []string{"EUR", "USD"}, nil
}

func (stubRates) Convert(ctx context.Context, amount float64, from, to string) (currency.Conversion, error) {
	return currency.Conversion{Amount: amount, Rate: 1}, nil
}

type stubSessions struct {
	active bool
}

func (s *stubSessions) Active() bool { return s.active }

func (s *stubSessions) Create(token string, expiresIn time.Duration) error {
	s.active = true
	return nil
}

func (s *stubSessions) Delete() error {
	s.active = false
	return nil
}

func newTestModel(t *testing.T, loggedIn bool) (*Model, *stubSessions) {
	t.Helper()
	sessions := &stubSessions{active: loggedIn}
	exec := commands.NewExecutor(commands.CommandContext{
		Backend:   stubBackend{},
		Rates:     stubRates{},
		Sessions:  sessions,
		Clipboard: func(string) error { return nil },
	})
	store := highlight.New(time.Hour, nil)
	m, err := NewModel(Options{
		Config:     config.DefaultConfig(),
		Exec:       exec,
		Sessions:   sessions,
		Highlights: store,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)

	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, sessions
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestStartsOnLoginWithoutSession(t *testing.T) {
	m, _ := newTestModel(t, false)
	assert.Equal(t, navigation.RouteLogin, m.Route())
	assert.Contains(t, m.View(), "CoinMind")
	assert.Contains(t, m.View(), "Username")
}

func TestStartsOnHomeWithSession(t *testing.T) {
	m, _ := newTestModel(t, true)
	assert.Equal(t, navigation.RouteHome, m.Route())
	assert.Contains(t, m.View(), "Keep Your Coins in Mind!")
}

func TestMenuSelectNavigates(t *testing.T) {
	m, _ := newTestModel(t, true)

	press(m, tea.KeyEsc)
	require.True(t, m.Menu().IsOpen())
	assert.Contains(t, m.View(), "Expense Tracker")

	press(m, tea.KeyDown)
	assert.Equal(t, 1, m.Menu().SelectedIndex())

	press(m, tea.KeyEnter)
	assert.Equal(t, navigation.RouteFinancialAnalysis, m.Route())
	assert.False(t, m.Menu().IsOpen(), "Selecting closes the menu")
}

func TestDrawerClaimsEscape(t *testing.T) {
	m, _ := newTestModel(t, true)
	press(m, tea.KeyEsc)
	press(m, tea.KeyEnter) // Expense Tracker is the first entry
	require.Equal(t, navigation.RouteExpenseTracker, m.Route())

	expenses, ok := m.Page().(*pages.Expenses)
	require.True(t, ok)

	press(m, tea.KeyEnter)
	require.True(t, expenses.Drawer().IsOpen(), "Enter on the add row opens the drawer")

	press(m, tea.KeyEsc)
	assert.False(t, expenses.Drawer().IsOpen())
	assert.False(t, m.Menu().IsOpen(), "Escape went to the drawer, not the menu")

	press(m, tea.KeyEsc)
	assert.True(t, m.Menu().IsOpen())
}

func TestSurfacesFollowThePage(t *testing.T) {
	m, _ := newTestModel(t, true)
	assert.Zero(t, m.router.Surfaces())

	m.Update(commands.NavigateMsg{Route: navigation.RouteCurrencyConverter})
	assert.Equal(t, 1, m.router.Surfaces())

	m.Update(commands.NavigateMsg{Route: navigation.RouteAbout})
	assert.Zero(t, m.router.Surfaces(), "Leaving a page unregisters its surfaces")
}

func TestRouteGuard(t *testing.T) {
	m, sessions := newTestModel(t, false)

	m.Update(commands.NavigateMsg{Route: navigation.RouteExpenseTracker})
	assert.Equal(t, navigation.RouteLogin, m.Route(), "Protected routes need a session")

	sessions.active = true
	m.Update(commands.NavigateMsg{Route: navigation.RouteSignup})
	assert.Equal(t, navigation.RouteHome, m.Route(), "Signup is skipped with a session")
}

func TestSessionDeletedReturnsToLogin(t *testing.T) {
	m, sessions := newTestModel(t, true)
	m.Update(commands.NavigateMsg{Route: navigation.RouteFinancialTips})

	sessions.active = false
	_, cmd := m.Update(EventMsg{Event: eventbus.SessionDeletedEvent{Expired: true}})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, navigation.RouteLogin, m.Route())
	assert.Contains(t, m.View(), "Session expired")
}

func TestBackReturnsToPreviousRoute(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.Update(commands.NavigateMsg{Route: navigation.RouteAbout})
	m.Update(commands.NavigateMsg{Route: navigation.RouteLogout})

	m.Update(commands.NavigateMsg{Back: true})
	assert.Equal(t, navigation.RouteAbout, m.Route())
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, true)
	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
