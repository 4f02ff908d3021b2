package ui

import (
	"coinmind/internal/eventbus"
	"coinmind/internal/ui/highlight"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// highlightMsg is sent when a key highlight switches off
type highlightMsg struct {
	flag highlight.Flag
	on   bool
}
