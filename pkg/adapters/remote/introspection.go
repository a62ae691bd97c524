package remote

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	BaseURL    string `json:"base_url"`
	Requests   int    `json:"requests"`
	Failures   int    `json:"failures"`
	LastStatus int    `json:"last_status,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StoreState{
		BaseURL:    s.baseURL,
		Requests:   s.requests,
		Failures:   s.failures,
		LastStatus: s.lastStatus,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "remote-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
