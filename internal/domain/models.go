package domain

import "math"

// InvalidIndex marks a selection that points at nothing, e.g. when the
// current search has no matches. It is the maximum representable index,
// used as a sentinel instead of an error value.
const InvalidIndex = math.MaxInt

// Association maps one mime type to the applications able to handle it.
// Handlers are unique, non-empty and sorted ascending.
type Association struct {
	MimeType string
	Handlers []string
}

// Mode is the interaction mode of the controller.
type Mode int

const (
	ModeSearching Mode = iota // initial mode, narrowing the type list
	ModeSelecting             // a type is selected, handlers shown
	ModeSetting               // a default was just requested
)

// String returns the mode name for logs and status lines.
func (m Mode) String() string {
	switch m {
	case ModeSearching:
		return "Searching"
	case ModeSelecting:
		return "Selecting"
	case ModeSetting:
		return "Setting"
	default:
		return "Unknown"
	}
}
