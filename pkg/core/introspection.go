package core

import (
	"github.com/aretw0/introspection"
)

// SessionState exposes internal state for observability.
type SessionState struct {
	Key        string `json:"key,omitempty"`
	Locked     bool   `json:"locked"`
	ViewLength int    `json:"view_length"`
	StoreType  string `json:"store_type"`
	Highlight  string `json:"highlight,omitempty"`
	HTML       bool   `json:"html"`
	Trim       bool   `json:"trim"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	doc := s.Document()

	storeType := "unknown"
	if s.store != nil {
		storeType = "store"
		if comp, ok := s.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return SessionState{
		Key:        doc.Key(),
		Locked:     doc.Locked(),
		ViewLength: len(s.view.Get()),
		StoreType:  storeType,
		Highlight:  s.config.Highlight,
		HTML:       s.config.HTML,
		Trim:       s.config.Trim,
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
