// Package core holds the document lifecycle and the session that orchestrates it.
package core

import "fmt"

// DefaultBaseURL is used when no store URL is configured.
const DefaultBaseURL = "http://localhost:7777"

// Highlight modes understood by the render pipeline.
const (
	HighlightNone = ""
	HighlightAuto = "auto"
)

// Config selects the store and the post-processing applied to loaded documents.
// None of these fields alter the load/save contract itself.
type Config struct {
	BaseURL        string
	Highlight      string // "", "auto" or a language name
	HighlightStyle string
	HTML           bool
	Trim           bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Highlight:      HighlightNone,
		HighlightStyle: "github",
	}
}

// Rendered is the display-ready result of a load.
type Rendered struct {
	Key   string
	Value string
}

// EventType represents the kind of transition observed.
type EventType string

const (
	EventNew       EventType = "NEW"
	EventLoad      EventType = "LOAD"
	EventLock      EventType = "LOCK"
	EventDuplicate EventType = "DUPLICATE"
	EventModify    EventType = "MODIFY"
)

// Event represents a transition of the active document, or a change to a watched file.
// For file events Key holds the path.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	if e.Key == "" {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
