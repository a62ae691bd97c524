package core

import "context"

// Store defines the contract of the remote document store.
// Implementations perform exactly one attempt per call.
type Store interface {
	// Get fetches the raw content stored under key.
	// It returns ErrNotFound when the store does not know the key.
	Get(ctx context.Context, key string) (string, error)

	// Put persists content and returns the key the store assigned to it.
	// Failures are reported as *StoreError.
	Put(ctx context.Context, content string) (string, error)
}

// Formatter post-processes loaded content for display (highlighting, HTML wrapping).
type Formatter interface {
	Format(content string) (string, error)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(content string) (string, error)

// Format calls f(content).
func (f FormatterFunc) Format(content string) (string, error) {
	return f(content)
}
