package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"

	"coinmind/internal/eventbus"
	"coinmind/internal/ui/commands"
	"coinmind/internal/ui/navigation"
	"coinmind/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SessionCreatedEvent:
		h.state.LoggedIn = true
		h.state.ClearStatus()

	case eventbus.SessionDeletedEvent:
		h.state.LoggedIn = false
		if e.Expired {
			h.state.SetStatus("Session expired, please log in again", state.StatusError)
		}
		if !h.state.Route.Public() {
			return func() tea.Msg {
				return commands.NavigateMsg{Route: navigation.RouteLogin}
			}
		}

	case eventbus.TransactionCreatedEvent:
		h.state.SetStatus("Create successful", state.StatusSuccess)

	case eventbus.TransactionUpdatedEvent:
		h.state.SetStatus("Transaction saved", state.StatusSuccess)

	case eventbus.TransactionDeletedEvent:
		h.state.SetStatus("Transaction deleted", state.StatusSuccess)

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = e.Message + ": " + e.Err.Error()
		}
		h.state.SetStatus(msg, state.StatusError)

	case eventbus.ConfigLoadedEvent:
		cblog.With("component", "config").Info("Config loaded", "path", e.Path, "backend", e.BaseURL)

	case eventbus.ConfigSavedEvent:
		cblog.With("component", "config").Info("Config saved", "path", e.Path)
	}
	return nil
}
