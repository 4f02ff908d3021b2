package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSessionCreated     EventType = "SessionCreated"
	EventSessionDeleted     EventType = "SessionDeleted"
	EventTransactionCreated EventType = "TransactionCreated"
	EventTransactionUpdated EventType = "TransactionUpdated"
	EventTransactionDeleted EventType = "TransactionDeleted"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SessionCreatedEvent is emitted after a successful login
type SessionCreatedEvent struct {
	ExpiresIn int // seconds
}

func (e SessionCreatedEvent) Type() EventType { return EventSessionCreated }

// SessionDeletedEvent is emitted on logout or when a stored token expires
type SessionDeletedEvent struct {
	Expired bool
}

func (e SessionDeletedEvent) Type() EventType { return EventSessionDeleted }

// TransactionCreatedEvent is emitted when the backend accepts a new transaction
type TransactionCreatedEvent struct {
	Transaction Transaction
}

func (e TransactionCreatedEvent) Type() EventType { return EventTransactionCreated }

// TransactionUpdatedEvent is emitted when a transaction was changed
type TransactionUpdatedEvent struct {
	Transaction Transaction
}

func (e TransactionUpdatedEvent) Type() EventType { return EventTransactionUpdated }

// TransactionDeletedEvent is emitted when a transaction was removed
type TransactionDeletedEvent struct {
	ID string
}

func (e TransactionDeletedEvent) Type() EventType { return EventTransactionDeleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	BaseURL string
	Path    string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
