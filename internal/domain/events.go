package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchQueryChanged EventType = "SearchQueryChanged"
	EventItemSelected       EventType = "ItemSelected"
	EventDefaultRequested   EventType = "DefaultRequested"
	EventSourcesResolved    EventType = "SourcesResolved"
	EventStoreBuilt         EventType = "StoreBuilt"
	EventCommandExecuted    EventType = "CommandExecuted"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchQueryChangedEvent is emitted when the search entry text changes.
// A later query supersedes an earlier one; processing is synchronous so
// there is nothing to cancel.
type SearchQueryChangedEvent struct {
	Query string
}

func (e SearchQueryChangedEvent) Type() EventType { return EventSearchQueryChanged }

// ItemSelectedEvent is emitted when a mime type is picked from the
// candidate list. Index == InvalidIndex means the list had nothing to pick.
type ItemSelectedEvent struct {
	Index int
}

func (e ItemSelectedEvent) Type() EventType { return EventItemSelected }

// DefaultRequestedEvent is emitted when the user asks to make a handler
// the default for the selected mime type.
type DefaultRequestedEvent struct {
	Handler string
}

func (e DefaultRequestedEvent) Type() EventType { return EventDefaultRequested }

// SourcesResolvedEvent is emitted once startup discovery has settled on
// the readable association files.
type SourcesResolvedEvent struct {
	Paths []string
}

func (e SourcesResolvedEvent) Type() EventType { return EventSourcesResolved }

// StoreBuiltEvent is emitted after the association store was built.
type StoreBuiltEvent struct {
	Types   int
	Sources int
}

func (e StoreBuiltEvent) Type() EventType { return EventStoreBuilt }

// CommandExecutedEvent is emitted for every registry tool invocation.
type CommandExecutedEvent struct {
	Tool     string
	Verb     string // "query" or "default"
	MimeType string
	Handler  string
	Success  bool
	Output   string
	Duration int64 // milliseconds
}

func (e CommandExecutedEvent) Type() EventType { return EventCommandExecuted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
