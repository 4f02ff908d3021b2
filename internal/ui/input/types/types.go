package types

import tea "github.com/charmbracelet/bubbletea"

// Key is one of the keys the navigation core reacts to
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyF12
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyF12:
		return "F12"
	case KeyEnter:
		return "Enter"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	default:
		return "Other"
	}
}

// Arrow reports whether k is one of the four arrow keys
func (k Key) Arrow() bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}

// Surface is a modal region that can take exclusive ownership of the keyboard
type Surface interface {
	// Name identifies the surface in logs
	Name() string

	// Claiming reports whether the surface currently owns every key
	Claiming() bool

	// HandleKey processes a key while the surface is claiming
	HandleKey(msg tea.KeyMsg, key Key) tea.Cmd
}

// Menu is the navigation session as seen by the router
type Menu interface {
	IsOpen() bool
	Toggle()
	MoveSelectionUp()
	MoveSelectionDown()
	SelectCurrent()
}
