package state

import (
	"coinmind/internal/ui/navigation"
)

// StatusKind classifies the status bar message
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// maxHistory bounds how far Back can go
const maxHistory = 16

// AppState contains the application state shared by the root model and the
// event handler
type AppState struct {
	// Routing
	Route   navigation.Route
	History []navigation.Route // previous routes, most recent last

	// Session
	LoggedIn bool

	// UI state
	Width         int
	Height        int
	StatusMessage string // status bar message set by events
	StatusKind    StatusKind
}

// NewAppState creates a new application state
func NewAppState(loggedIn bool) *AppState {
	return &AppState{
		Route:    navigation.RouteLogin,
		LoggedIn: loggedIn,
	}
}

// SetRoute records a route change. Re-entering the current route keeps
// the history unchanged.
func (s *AppState) SetRoute(r navigation.Route) {
	if r == s.Route {
		return
	}
	s.History = append(s.History, s.Route)
	if len(s.History) > maxHistory {
		s.History = s.History[len(s.History)-maxHistory:]
	}
	s.Route = r
}

// PopRoute removes and returns the previous route. It returns RouteHome
// when there is no history.
func (s *AppState) PopRoute() navigation.Route {
	if len(s.History) == 0 {
		return navigation.RouteHome
	}
	r := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]
	return r
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string, kind StatusKind) {
	s.StatusMessage = msg
	s.StatusKind = kind
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusKind = StatusInfo
}
