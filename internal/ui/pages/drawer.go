package pages

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coinmind/internal/domain"
	"coinmind/internal/ui/input/types"
	"coinmind/internal/validation"
)

const (
	fieldDescription = "description"
	fieldAmount      = "amount"
	fieldType        = "type"
	fieldIncome      = "income"
	fieldCancel      = "cancel"
	fieldSave        = "save"
	fieldDelete      = "delete"
)

// Drawer is the create/edit transaction form. While open it claims every
// key: arrows move focus, Escape closes, the rest goes to the focused field.
type Drawer struct {
	deps     Deps
	form     *form
	open     bool
	editing  *domain.Transaction
	income   bool
	saving   bool
	deleting bool
	confirm  bool
	message  string
}

// NewDrawer creates a closed drawer
func NewDrawer(deps Deps) *Drawer {
	f := newForm()
	f.addInput(fieldDescription, "Description", 0, newInput("Description"))
	f.addInput(fieldAmount, "Amount", 1, newInput("Amount"))
	typeInput := newInput("Type")
	typeInput.ShowSuggestions = true
	typeInput.SetSuggestions(domain.Categories)
	f.addInput(fieldType, "Type", 2, typeInput)
	f.addButton(fieldIncome, "Income?", 3)
	f.addButton(fieldCancel, "Cancel", 4)
	f.addButton(fieldSave, "Save", 5)
	return &Drawer{deps: deps, form: f}
}

func (d *Drawer) Name() string   { return "transaction-drawer" }
func (d *Drawer) Claiming() bool { return d.open }

// IsOpen reports whether the drawer is shown
func (d *Drawer) IsOpen() bool { return d.open }

// Editing returns the transaction being edited, or nil in create mode
func (d *Drawer) Editing() *domain.Transaction { return d.editing }

// Pending reports whether a save or delete is in flight
func (d *Drawer) Pending() bool { return d.saving || d.deleting }

// OpenCreate shows an empty form
func (d *Drawer) OpenCreate() tea.Cmd {
	d.reset()
	d.form.ring.Unregister(fieldDelete)
	d.form.labels[fieldSave] = "Create"
	d.open = true
	return d.form.focus(fieldDescription)
}

// OpenEdit shows the form filled with tx
func (d *Drawer) OpenEdit(tx domain.Transaction) tea.Cmd {
	d.reset()
	d.editing = &tx
	d.form.setValue(fieldDescription, tx.Description)
	d.form.setValue(fieldAmount, strconv.FormatFloat(tx.Amount, 'f', -1, 64))
	d.form.setValue(fieldType, tx.Type)
	d.income = tx.Income
	d.form.labels[fieldSave] = "Save"
	d.form.addButton(fieldDelete, "Delete", 6)
	d.open = true
	return d.form.focus(fieldDescription)
}

// Close hides the drawer. It does nothing while a request is pending and
// reports whether the drawer is closed afterwards.
func (d *Drawer) Close() bool {
	if !d.open {
		return true
	}
	if d.Pending() {
		return false
	}
	d.open = false
	d.reset()
	return true
}

// Finish ends a successful request and closes the drawer
func (d *Drawer) Finish() {
	d.setPending(false, false)
	d.Close()
}

// Fail ends a failed request and keeps the drawer open with the error
func (d *Drawer) Fail(err error) {
	wasDeleting := d.deleting
	d.setPending(false, false)
	d.message = err.Error()
	if wasDeleting {
		d.form.focus(fieldDelete)
	} else {
		d.form.focus(fieldSave)
	}
}

func (d *Drawer) reset() {
	d.form.reset()
	d.editing = nil
	d.income = false
	d.confirm = false
	d.message = ""
	d.setPending(false, false)
}

func (d *Drawer) setPending(saving, deleting bool) {
	d.saving = saving
	d.deleting = deleting
	busy := saving || deleting
	d.form.ring.SetEnabled(fieldSave, !busy)
	d.form.ring.SetEnabled(fieldCancel, !busy)
	d.form.ring.SetEnabled(fieldDelete, !busy)
}

// HandleKey processes a key while the drawer is open
func (d *Drawer) HandleKey(msg tea.KeyMsg, key types.Key) tea.Cmd {
	if key != types.KeyEnter {
		d.confirm = false
	}
	switch key {
	case types.KeyDown, types.KeyRight:
		return d.form.next()
	case types.KeyUp, types.KeyLeft:
		return d.form.prev()
	case types.KeyEscape:
		d.Close()
		return nil
	case types.KeyEnter:
		return d.activate()
	}

	if d.form.focused() == fieldIncome && msg.String() == " " {
		d.income = !d.income
		return nil
	}
	return d.form.updateFocused(msg)
}

func (d *Drawer) activate() tea.Cmd {
	switch d.form.focused() {
	case fieldIncome:
		d.income = !d.income
	case fieldCancel:
		d.Close()
	case fieldSave:
		return d.submit()
	case fieldDelete:
		if d.editing == nil || d.Pending() {
			return nil
		}
		if !d.confirm {
			d.confirm = true
			return nil
		}
		d.confirm = false
		d.message = ""
		d.setPending(false, true)
		return d.deps.Exec.ExecuteDeleteTransaction(d.editing.ID)
	default:
		return d.form.next()
	}
	return nil
}

func (d *Drawer) submit() tea.Cmd {
	if d.Pending() {
		return nil
	}
	in, err := validation.ValidateTransaction(
		d.form.value(fieldDescription),
		d.form.value(fieldAmount),
		d.form.value(fieldType),
		d.income,
	)
	if err != nil {
		d.message = validation.FirstMessage(err, fieldDescription, fieldAmount, fieldType)
		return nil
	}
	d.message = ""
	d.setPending(true, false)
	id := ""
	if d.editing != nil {
		id = d.editing.ID
	}
	return d.deps.Exec.ExecuteSaveTransaction(id, in)
}

// View renders the drawer body
func (d *Drawer) View() string {
	s := d.deps.Styles
	var b strings.Builder

	title := "New Transaction"
	if d.editing != nil {
		title = "Edit Transaction"
	}
	b.WriteString(s.PageTitle.Render(title))
	b.WriteString("\n")

	for _, id := range []string{fieldDescription, fieldAmount, fieldType} {
		b.WriteString(d.form.renderInput(s, id, ""))
		b.WriteString("\n")
	}

	box := "[ ]"
	if d.income {
		box = "[x]"
	}
	b.WriteString(d.form.renderButton(s, fieldIncome) + " " + box)
	b.WriteString("\n")

	if d.message != "" {
		b.WriteString(s.FieldError.Render(d.message))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	save := d.form.labels[fieldSave]
	if d.saving {
		save = "Saving..."
		if d.editing == nil {
			save = "Sending..."
		}
	}
	b.WriteString(d.form.renderButton(s, fieldCancel))
	b.WriteString("  ")
	b.WriteString(s.RenderButton(save, d.form.focused() == fieldSave))

	if d.editing != nil {
		label := "Delete"
		switch {
		case d.deleting:
			label = "Deleting..."
		case d.confirm:
			label = "Sure to delete? Enter again to confirm"
		}
		b.WriteString("\n\n")
		if d.form.focused() == fieldDelete {
			b.WriteString(s.ButtonFocused.Background(lipgloss.Color("160")).Render(label))
		} else {
			b.WriteString(s.Danger.Render(label))
		}
	}
	return b.String()
}
