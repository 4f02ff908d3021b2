package focus

import "coinmind/internal/ui/input/types"

// Slot is a cell of the converter grid:
//
//	Amount(0)    From(1)
//	Converted(2) To(3)
type Slot int

const (
	SlotAmount Slot = iota
	SlotFrom
	SlotConverted
	SlotTo
)

func (s Slot) String() string {
	switch s {
	case SlotAmount:
		return "amount"
	case SlotFrom:
		return "from"
	case SlotConverted:
		return "converted"
	case SlotTo:
		return "to"
	}
	return "unknown"
}

// Selectable reports whether the slot holds a value list
func (s Slot) Selectable() bool {
	return s == SlotFrom || s == SlotTo
}

// Change describes what a key did to the grid
type Change struct {
	Handled      bool // the key was used by the grid
	Moved        bool // focus moved to another slot
	ValueChanged bool // the focused select slot changed its value
}

// Grid tracks the focused slot and, for the two select slots, the chosen value
type Grid struct {
	focus     Slot
	selecting bool
	options   [4][]string
	index     [4]int
}

// NewGrid creates a grid focused on the amount slot
func NewGrid() *Grid {
	return &Grid{}
}

// Focus returns the focused slot
func (g *Grid) Focus() Slot { return g.focus }

// SetFocus moves focus directly and leaves select mode
func (g *Grid) SetFocus(s Slot) {
	if s < SlotAmount || s > SlotTo {
		return
	}
	g.focus = s
	g.selecting = false
}

// Selecting reports whether Up/Down currently cycle a value list
func (g *Grid) Selecting() bool { return g.selecting }

// SetOptions replaces the value list of a select slot. The current value is
// kept when it is still in the list, otherwise the first value is chosen.
func (g *Grid) SetOptions(s Slot, opts []string) {
	if !s.Selectable() {
		return
	}
	prev := g.Value(s)
	g.options[s] = append([]string(nil), opts...)
	g.index[s] = 0
	for i, v := range opts {
		if v == prev {
			g.index[s] = i
			break
		}
	}
}

// Value returns the chosen value of a select slot, or ""
func (g *Grid) Value(s Slot) string {
	if !s.Selectable() || len(g.options[s]) == 0 {
		return ""
	}
	return g.options[s][g.index[s]]
}

// SetValue chooses v for a select slot. It returns false when v is not offered.
func (g *Grid) SetValue(s Slot, v string) bool {
	if !s.Selectable() {
		return false
	}
	for i, o := range g.options[s] {
		if o == v {
			g.index[s] = i
			return true
		}
	}
	return false
}

// HandleKey applies a navigation key
func (g *Grid) HandleKey(k types.Key) Change {
	if g.selecting {
		return g.handleSelect(k)
	}

	switch k {
	case types.KeyLeft, types.KeyRight:
		// same row: flip the column bit
		g.focus ^= 1
		return Change{Handled: true, Moved: true}
	case types.KeyUp, types.KeyDown:
		// same column: flip the row bit
		g.focus ^= 2
		return Change{Handled: true, Moved: true}
	case types.KeyEnter:
		if g.focus.Selectable() {
			g.selecting = true
			return Change{Handled: true}
		}
	}
	return Change{}
}

func (g *Grid) handleSelect(k types.Key) Change {
	switch k {
	case types.KeyEnter, types.KeyEscape:
		g.selecting = false
		return Change{Handled: true}
	case types.KeyUp, types.KeyDown:
		n := len(g.options[g.focus])
		if n == 0 {
			return Change{Handled: true}
		}
		step := 1
		if k == types.KeyUp {
			step = n - 1
		}
		g.index[g.focus] = (g.index[g.focus] + step) % n
		return Change{Handled: true, ValueChanged: true}
	}
	// select mode owns the keyboard; other keys do nothing
	return Change{Handled: true}
}
