package pages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coinmind/internal/currency"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/focus"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/ui/navigation"
)

// convertTickMsg fires when the debounce period for request seq is over
type convertTickMsg struct {
	seq int
}

// Converter converts between two currencies in either direction. The side
// the user edited last is the source of the conversion.
type Converter struct {
	deps      Deps
	grid      *focus.Grid
	amount    textinput.Model
	converted textinput.Model
	selector  *currencySelector

	amountVal    float64
	convertedVal float64
	reverse      bool // the converted side was edited last

	seq      int // latest scheduled conversion
	sent     int // latest request sent
	applied  int // latest response applied
	loading  bool
	rate     float64
	updated  string
	errText  string
	fallback bool
}

// NewConverter creates the currency converter page
func NewConverter(deps Deps) *Converter {
	g := focus.NewGrid()
	g.SetOptions(focus.SlotFrom, currency.PopularCurrencies)
	g.SetOptions(focus.SlotTo, currency.PopularCurrencies)
	g.SetValue(focus.SlotFrom, "USD")
	g.SetValue(focus.SlotTo, "EUR")

	amount := newInput("1")
	amount.Width = 16
	amount.SetValue("1")
	converted := newInput("")
	converted.Width = 16
	converted.SetValue("1")

	p := &Converter{
		deps:         deps,
		grid:         g,
		amount:       amount,
		converted:    converted,
		amountVal:    1,
		convertedVal: 1,
	}
	p.selector = &currencySelector{page: p}
	return p
}

func (p *Converter) Route() navigation.Route   { return navigation.RouteCurrencyConverter }
func (p *Converter) Title() string             { return "Currency Converter" }
func (p *Converter) Surfaces() []types.Surface { return []types.Surface{p.selector} }

// Grid returns the focus grid
func (p *Converter) Grid() *focus.Grid { return p.grid }

func (p *Converter) Help() string {
	if p.grid.Selecting() {
		return "↑/↓ choose currency • enter/esc done"
	}
	return "arrows move • enter pick currency • type to edit • esc menu"
}

func (p *Converter) Status() Status {
	switch {
	case p.errText != "":
		return errorStatus(p.errText)
	case p.fallback:
		return Status{Text: "Offline currency list"}
	}
	return Status{}
}

func (p *Converter) Init() tea.Cmd {
	return tea.Batch(p.syncFocus(), p.deps.Exec.LoadCurrencies(), p.schedule())
}

func (p *Converter) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commands.CurrenciesLoadedMsg:
		p.fallback = msg.Err != nil
		if len(msg.Codes) > 0 {
			p.grid.SetOptions(focus.SlotFrom, msg.Codes)
			p.grid.SetOptions(focus.SlotTo, msg.Codes)
		}

	case convertTickMsg:
		if msg.seq != p.seq {
			return nil
		}
		return p.convert()

	case commands.ConvertedMsg:
		p.applyConversion(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *Converter) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := p.deps.Keys.Translate(msg)
	if k != types.KeyOther {
		ch := p.grid.HandleKey(k)
		if ch.Moved {
			return p.syncFocus()
		}
		return nil
	}

	switch p.grid.Focus() {
	case focus.SlotAmount:
		before := p.amount.Value()
		var cmd tea.Cmd
		p.amount, cmd = p.amount.Update(msg)
		if p.amount.Value() != before {
			p.amountVal = parseAmount(p.amount.Value(), true)
			p.reverse = false
			return tea.Batch(cmd, p.schedule())
		}
		return cmd
	case focus.SlotConverted:
		before := p.converted.Value()
		var cmd tea.Cmd
		p.converted, cmd = p.converted.Update(msg)
		if p.converted.Value() != before {
			p.convertedVal = parseAmount(p.converted.Value(), false)
			p.reverse = true
			return tea.Batch(cmd, p.schedule())
		}
		return cmd
	}
	return nil
}

// parseAmount reads a number the way a numeric input does: garbage is 0
func parseAmount(s string, clampZero bool) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	if clampZero && v < 0 {
		return 0
	}
	return v
}

func (p *Converter) syncFocus() tea.Cmd {
	p.amount.Blur()
	p.converted.Blur()
	switch p.grid.Focus() {
	case focus.SlotAmount:
		return p.amount.Focus()
	case focus.SlotConverted:
		return p.converted.Focus()
	}
	return nil
}

// schedule restarts the debounce period
func (p *Converter) schedule() tea.Cmd {
	p.seq++
	seq := p.seq
	return tea.Tick(p.deps.Config.DebounceDuration(), func(time.Time) tea.Msg {
		return convertTickMsg{seq: seq}
	})
}

func (p *Converter) convert() tea.Cmd {
	from := p.grid.Value(focus.SlotFrom)
	to := p.grid.Value(focus.SlotTo)
	p.errText = ""

	if from == to {
		if p.reverse {
			p.setAmount(p.convertedVal)
		} else {
			p.setConverted(p.amountVal)
		}
		p.rate = 1
		p.applied = p.seq
		return nil
	}

	query := p.amountVal
	if p.reverse {
		query = p.convertedVal
		from, to = to, from
	}
	if query < 0 {
		return nil
	}

	p.loading = true
	p.sent = p.seq
	return p.deps.Exec.Convert(p.seq, query, from, to, p.reverse)
}

func (p *Converter) applyConversion(msg commands.ConvertedMsg) {
	if msg.Seq >= p.sent {
		p.loading = false
	}
	if msg.Seq < p.applied {
		return
	}
	p.applied = msg.Seq
	if msg.Err != nil {
		p.errText = "Conversion failed"
		return
	}

	if msg.Reverse {
		p.setAmount(msg.Result.Amount)
	} else {
		p.setConverted(msg.Result.Amount)
	}
	p.rate = msg.Result.Rate
	p.updated = msg.Result.Date
}

func (p *Converter) setAmount(v float64) {
	p.amountVal = v
	p.amount.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
}

func (p *Converter) setConverted(v float64) {
	p.convertedVal = v
	p.converted.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
}

// formatAmount renders v with thousands separators and 4 to 5 decimals
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 5, 64)
	if strings.HasSuffix(s, "0") {
		s = s[:len(s)-1]
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

func (p *Converter) View(width, height int) string {
	s := p.deps.Styles
	from := p.grid.Value(focus.SlotFrom)
	to := p.grid.Value(focus.SlotTo)

	var b strings.Builder
	if p.reverse {
		b.WriteString(fmt.Sprintf("%.4f %s equals", p.convertedVal, to))
	} else {
		b.WriteString(fmt.Sprintf("%s %s equals", strconv.FormatFloat(p.amountVal, 'f', -1, 64), from))
	}
	b.WriteString("\n")
	switch {
	case p.loading:
		b.WriteString(s.Dim.Render("Loading..."))
	case p.reverse:
		b.WriteString(s.Highlight.Render(formatAmount(p.amountVal) + " " + from))
	default:
		b.WriteString(s.Highlight.Render(formatAmount(p.convertedVal) + " " + to))
	}
	b.WriteString("\n")
	if p.rate != 0 && !p.loading && p.updated != "" {
		b.WriteString(s.Dim.Render("Last updated: " + p.updated))
		b.WriteString("\n")
		b.WriteString(s.Dim.Render("Source: Frankfurter"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		s.RenderField(p.amount.View(), p.grid.Focus() == focus.SlotAmount),
		" ",
		p.renderSelect(focus.SlotFrom),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		s.RenderField(p.converted.View(), p.grid.Focus() == focus.SlotConverted),
		" ",
		p.renderSelect(focus.SlotTo),
	)
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(bottom)
	return b.String()
}

func (p *Converter) renderSelect(slot focus.Slot) string {
	s := p.deps.Styles
	value := p.grid.Value(slot)
	focused := p.grid.Focus() == slot
	if focused && p.grid.Selecting() {
		value = "↑ " + value + " ↓"
	} else {
		value = value + " ▾"
	}
	style := s.Field
	if focused {
		style = s.FieldFocused
	}
	return style.Width(12).Render(value)
}

// currencySelector owns the keyboard while a currency list is open
type currencySelector struct {
	page *Converter
}

func (c *currencySelector) Name() string   { return "currency-select" }
func (c *currencySelector) Claiming() bool { return c.page.grid.Selecting() }

func (c *currencySelector) HandleKey(msg tea.KeyMsg, key types.Key) tea.Cmd {
	ch := c.page.grid.HandleKey(key)
	if ch.ValueChanged {
		return c.page.schedule()
	}
	return nil
}
