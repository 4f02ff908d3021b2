// Package input routes translated keys to the menu, to modal surfaces that
// claim them, or to the current page.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"

	"coinmind/internal/ui/highlight"
	"coinmind/internal/ui/input/types"
)

// Pulser receives the highlight for every recognised key
type Pulser interface {
	Pulse(flag highlight.Flag)
}

// Outcome is the result of routing one key. Handled means the key was
// consumed and must not reach the page.
type Outcome struct {
	Key     types.Key
	Handled bool
	Cmd     tea.Cmd
}

// PulseFlag returns the indicator a key lights up
func PulseFlag(k types.Key) (highlight.Flag, bool) {
	switch k {
	case types.KeyEscape:
		return highlight.Left, true
	case types.KeyF12:
		return highlight.Right, true
	case types.KeyEnter:
		return highlight.Center, true
	case types.KeyUp:
		return highlight.Up, true
	case types.KeyDown:
		return highlight.Down, true
	case types.KeyLeft:
		return highlight.LeftArrowKey, true
	case types.KeyRight:
		return highlight.RightArrowKey, true
	}
	return 0, false
}

type registration struct {
	id      uint64
	surface types.Surface
}

// Router decides, for every key, whether a modal surface, the menu, or the
// page gets it. Checks run in a fixed order:
//
//  1. the key's highlight is pulsed
//  2. the first claiming surface takes the key
//  3. keys other than Escape, F12, Enter, Up and Down go to the page
//  4. Escape toggles the menu
//  5. with the menu open, Up/Down move the selection and Enter selects
//  6. everything else goes to the page
type Router struct {
	keys     KeyMap
	menu     types.Menu
	pulser   Pulser
	surfaces []registration
	nextID   uint64
}

// NewRouter creates a router. pulser may be nil.
func NewRouter(keys KeyMap, menu types.Menu, pulser Pulser) *Router {
	return &Router{keys: keys, menu: menu, pulser: pulser}
}

// Register adds a modal surface behind the ones already registered.
// The returned function removes it again.
func (r *Router) Register(s types.Surface) func() {
	r.nextID++
	id := r.nextID
	r.surfaces = append(r.surfaces, registration{id: id, surface: s})
	return func() {
		for i, reg := range r.surfaces {
			if reg.id == id {
				r.surfaces = append(r.surfaces[:i:i], r.surfaces[i+1:]...)
				return
			}
		}
	}
}

// Surfaces returns the number of registered surfaces
func (r *Router) Surfaces() int { return len(r.surfaces) }

// Route dispatches one key press
func (r *Router) Route(msg tea.KeyMsg) Outcome {
	k := r.keys.Translate(msg)
	out := Outcome{Key: k}

	if flag, ok := PulseFlag(k); ok && r.pulser != nil {
		r.pulser.Pulse(flag)
	}

	for _, reg := range r.surfaces {
		if reg.surface.Claiming() {
			cblog.With("component", "router").Debug("Surface claimed key", "surface", reg.surface.Name(), "key", k)
			out.Handled = true
			out.Cmd = reg.surface.HandleKey(msg, k)
			return out
		}
	}

	switch k {
	case types.KeyEscape, types.KeyF12, types.KeyEnter, types.KeyUp, types.KeyDown:
	default:
		return out
	}

	if k == types.KeyEscape {
		r.menu.Toggle()
		out.Handled = true
		return out
	}

	if !r.menu.IsOpen() {
		return out
	}

	switch k {
	case types.KeyUp:
		r.menu.MoveSelectionUp()
		out.Handled = true
	case types.KeyDown:
		r.menu.MoveSelectionDown()
		out.Handled = true
	case types.KeyEnter:
		r.menu.SelectCurrent()
		out.Handled = true
	}
	return out
}
