package core

import "sync"

// Mode tells a View whether content is shown read-only or is editable.
// The session passes it through without interpreting it.
type Mode string

const (
	ModeRead  Mode = "r"
	ModeWrite Mode = "w"
)

// View is the text buffer the user edits or reads.
type View interface {
	Get() string
	Set(content string, mode Mode)
}

// Buffer is an in-memory View.
type Buffer struct {
	mu      sync.RWMutex
	content string
	mode    Mode
}

// NewBuffer creates an empty, writable buffer.
func NewBuffer() *Buffer {
	return &Buffer{mode: ModeWrite}
}

// Get returns the buffer content.
func (b *Buffer) Get() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content
}

// Set replaces the buffer content.
func (b *Buffer) Set(content string, mode Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = content
	b.mode = mode
}

// Mode returns the mode of the last Set.
func (b *Buffer) Mode() Mode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mode
}
