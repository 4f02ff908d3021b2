package pages

import (
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"

	"coinmind/internal/domain"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/views"
)

// expensesGen numbers Expenses instances so a page requested by an earlier
// visit is not applied to a later one
var expensesGen atomic.Uint64

// Expenses lists transactions grouped by day. Row 0 is the "Add new
// transaction" item; row i > 0 is transactions[i-1].
type Expenses struct {
	deps     Deps
	gen      uint64
	drawer   *Drawer
	rows     *views.TransactionRenderer
	popup    *views.PopupRenderer
	txs      []domain.Transaction
	meta     domain.PageMetadata
	loaded   map[int]bool
	selected int
	offset   int

	loading     bool
	loadingMore bool
	loadErr     string
}

// NewExpenses creates the expense tracker page
func NewExpenses(deps Deps) *Expenses {
	return &Expenses{
		deps:   deps,
		gen:    expensesGen.Add(1),
		drawer: NewDrawer(deps),
		rows:   views.NewTransactionRenderer(deps.Styles),
		popup:  views.NewPopupRenderer(deps.Styles),
		loaded: make(map[int]bool),
	}
}

func (p *Expenses) Route() navigation.Route   { return navigation.RouteExpenseTracker }
func (p *Expenses) Title() string             { return "Expense Tracker" }
func (p *Expenses) Surfaces() []types.Surface { return []types.Surface{p.drawer} }

// Drawer returns the create/edit drawer
func (p *Expenses) Drawer() *Drawer { return p.drawer }

// Selected returns the selected row
func (p *Expenses) Selected() int { return p.selected }

// Transactions returns the loaded transactions in list order
func (p *Expenses) Transactions() []domain.Transaction { return p.txs }

func (p *Expenses) Help() string {
	if p.drawer.IsOpen() {
		return "↑/↓/←/→ move • enter activate • esc close"
	}
	return "↑/↓ select • enter open • esc menu"
}

func (p *Expenses) Status() Status {
	switch {
	case p.loading:
		return loadingStatus("Loading transactions...")
	case p.loadErr != "":
		return errorStatus(p.loadErr)
	}
	return Status{}
}

func (p *Expenses) Init() tea.Cmd {
	p.loading = true
	return p.deps.Exec.LoadTransactions(p.gen, 1, p.deps.Config.PageSize)
}

func (p *Expenses) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commands.TransactionsLoadedMsg:
		p.applyPage(msg)

	case commands.TransactionSavedMsg:
		if msg.Err != nil {
			p.drawer.Fail(msg.Err)
			return nil
		}
		if msg.Created {
			p.txs = append([]domain.Transaction{msg.Transaction}, p.txs...)
			p.selected = 1
		} else {
			for i := range p.txs {
				if p.txs[i].ID == msg.Transaction.ID {
					p.txs[i] = msg.Transaction
				}
			}
		}
		p.drawer.Finish()

	case commands.TransactionDeletedMsg:
		if msg.Err != nil {
			p.drawer.Fail(msg.Err)
			return nil
		}
		p.removeTransaction(msg.ID)
		p.selected = 0
		p.drawer.Finish()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *Expenses) applyPage(msg commands.TransactionsLoadedMsg) {
	if msg.Gen != p.gen {
		cblog.With("component", "expenses").Debug("Dropping page from an earlier list", "page", msg.Page)
		return
	}
	if msg.Page <= 1 {
		p.loading = false
	} else {
		p.loadingMore = false
	}
	if msg.Err != nil {
		p.loadErr = msg.Err.Error()
		return
	}
	p.loadErr = ""
	p.loaded[msg.Page] = true
	if msg.Result == nil {
		return
	}

	if msg.Page <= 1 {
		p.txs = append([]domain.Transaction(nil), msg.Result.Items...)
	} else {
		seen := make(map[string]bool, len(p.txs))
		for _, tx := range p.txs {
			seen[tx.ID] = true
		}
		for _, tx := range msg.Result.Items {
			if !seen[tx.ID] {
				seen[tx.ID] = true
				p.txs = append(p.txs, tx)
			}
		}
	}
	p.meta = msg.Result.Metadata
	if p.selected > len(p.txs) {
		p.selected = len(p.txs)
	}
}

func (p *Expenses) removeTransaction(id string) {
	for i := range p.txs {
		if p.txs[i].ID == id {
			p.txs = append(p.txs[:i], p.txs[i+1:]...)
			return
		}
	}
}

func (p *Expenses) handleKey(msg tea.KeyMsg) tea.Cmd {
	total := len(p.txs) + 1
	switch p.deps.Keys.Translate(msg) {
	case types.KeyUp:
		p.selected = (p.selected - 1 + total) % total
		return p.maybeLoadMore()
	case types.KeyDown:
		p.selected = (p.selected + 1) % total
		return p.maybeLoadMore()
	case types.KeyEnter:
		if p.selected == 0 {
			return p.drawer.OpenCreate()
		}
		if p.selected-1 < len(p.txs) {
			return p.drawer.OpenEdit(p.txs[p.selected-1])
		}
	}
	return nil
}

// maybeLoadMore fetches the next page once the last loaded row is selected
func (p *Expenses) maybeLoadMore() tea.Cmd {
	if p.selected != len(p.txs) || !p.meta.HasNext || p.loadingMore {
		return nil
	}
	current := p.meta.Page
	if current < 1 {
		current = 1
	}
	next := current + 1
	if p.loaded[next] {
		return nil
	}
	cblog.With("component", "expenses").Debug("Loading page", "page", next)
	p.loadingMore = true
	p.loadErr = ""
	return p.deps.Exec.LoadTransactions(p.gen, next, p.deps.Config.PageSize)
}

// groups returns date keys in order of first appearance with the indexes
// of their transactions
func (p *Expenses) groups() ([]string, map[string][]int) {
	var order []string
	byDate := make(map[string][]int)
	for i, tx := range p.txs {
		key := tx.DateKey()
		if _, ok := byDate[key]; !ok {
			order = append(order, key)
		}
		byDate[key] = append(byDate[key], i)
	}
	return order, byDate
}

func (p *Expenses) View(width, height int) string {
	listWidth := width - 4
	if listWidth < 20 {
		listWidth = 20
	}

	lines := []string{p.rows.RenderAddRow(p.selected == 0, listWidth)}
	selectedLine := 0
	order, byDate := p.groups()
	for _, date := range order {
		lines = append(lines, p.rows.RenderDateHeader(date, listWidth))
		for _, i := range byDate[date] {
			row := i + 1
			if row == p.selected {
				selectedLine = len(lines)
			}
			lines = append(lines, p.rows.RenderTransaction(p.txs[i], row == p.selected, listWidth))
		}
	}

	var footer string
	if p.meta.HasNext {
		footer = "Scroll down to load more"
		if p.loadingMore {
			footer = "Loading"
		}
		footer = p.deps.Styles.Dim.Render(footer)
		if p.loadErr != "" {
			footer += "  " + p.deps.Styles.StatusError.Render(p.loadErr)
		}
	} else if p.loading {
		footer = p.deps.Styles.Dim.Render("Loading...")
	}

	visible := height
	if footer != "" {
		visible--
	}
	if visible < 1 {
		visible = 1
	}
	p.scrollTo(selectedLine, visible, len(lines))
	end := min(p.offset+visible, len(lines))
	body := strings.Join(lines[p.offset:end], "\n")
	if footer != "" {
		body += "\n" + footer
	}

	if !p.drawer.IsOpen() {
		return body
	}
	return p.popup.RenderPopupOverlay(body, p.drawer.View(), height, width, -1, -1, p.deps.Styles.Drawer)
}

func (p *Expenses) scrollTo(line, visible, total int) {
	if line < p.offset {
		p.offset = line
	}
	if line >= p.offset+visible {
		p.offset = line - visible + 1
	}
	if p.offset > total-1 {
		p.offset = max(total-1, 0)
	}
	if p.offset < 0 {
		p.offset = 0
	}
}
