package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"coinmind/internal/domain"
)

// TransactionRenderer renders the expense tracker list
type TransactionRenderer struct {
	styles *Styles
}

// NewTransactionRenderer creates a new transaction renderer
func NewTransactionRenderer(styles *Styles) *TransactionRenderer {
	return &TransactionRenderer{styles: styles}
}

// RenderAddRow renders the "Add new transaction" pseudo item
func (t *TransactionRenderer) RenderAddRow(isSelected bool, width int) string {
	line := fmt.Sprintf(" %s  %s  %s", "+", "Add new transaction", t.styles.Dim.Render("Press Enter to create"))
	return t.row(line, isSelected, width)
}

// RenderDateHeader renders the header of one day group
func (t *TransactionRenderer) RenderDateHeader(date string, width int) string {
	style := t.styles.DateHeader
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(date)
}

// RenderTransaction renders one transaction line. The description is cut
// to fit so the amount stays visible.
func (t *TransactionRenderer) RenderTransaction(tx domain.Transaction, isSelected bool, width int) string {
	sign := "-"
	amountStyle := t.styles.Expense
	if tx.Income {
		sign = "+"
		amountStyle = t.styles.Income
	}
	if isSelected {
		amountStyle = amountStyle.Inherit(t.styles.SelectionBg)
	}
	amount := amountStyle.Render(fmt.Sprintf("%s$%.2f", sign, tx.Amount))

	icon := domain.CategoryIcon(tx.Type)
	prefix := fmt.Sprintf(" %s  ", icon)
	descWidth := width - lipgloss.Width(prefix) - lipgloss.Width(amount) - 2
	desc := tx.Description
	if descWidth > 0 && ansi.StringWidth(desc) > descWidth {
		desc = ansi.Truncate(desc, descWidth, "…")
	}
	pad := width - lipgloss.Width(prefix) - ansi.StringWidth(desc) - lipgloss.Width(amount)
	if pad < 1 {
		pad = 1
	}
	return t.row(prefix+desc+strings.Repeat(" ", pad), isSelected, 0) + amount
}

func (t *TransactionRenderer) row(line string, isSelected bool, width int) string {
	if width > 0 && lipgloss.Width(line) < width {
		line += strings.Repeat(" ", width-lipgloss.Width(line))
	}
	if isSelected {
		return t.styles.SelectionBg.Render(line)
	}
	return line
}
