package haste

import (
	"log/slog"
	"net/http"

	"github.com/aretw0/haste/internal/platform"
	"github.com/aretw0/haste/pkg/core"
)

// --- Types ---

// Session is a public alias for the core session.
type Session = core.Session

// Document is a public alias for the core document.
type Document = core.Document

// Config is a public alias for the session configuration.
type Config = core.Config

// Mode tells a View whether its content is editable.
type Mode = core.Mode

const (
	ModeRead  = core.ModeRead
	ModeWrite = core.ModeWrite
)

// StoreError is the error returned by failed saves.
type StoreError = core.StoreError

// --- Configuration ---

// Option defines a functional option for configuring a Session.
type Option = platform.Option

// WithStore injects a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithAdapter selects the storage adapter by name ("remote" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return platform.WithConfig(cfg)
}

// WithBaseURL sets the address of the document store.
func WithBaseURL(url string) Option {
	return platform.WithBaseURL(url)
}

// WithHighlight enables syntax highlighting ("auto" or a language name).
func WithHighlight(lang string) Option {
	return platform.WithHighlight(lang)
}

// WithHTML wraps every line of loaded documents in a line span.
func WithHTML(enabled bool) Option {
	return platform.WithHTML(enabled)
}

// WithTrim trims content before it is saved.
func WithTrim(enabled bool) Option {
	return platform.WithTrim(enabled)
}

// WithHTTPClient sets the client used by the remote adapter.
func WithHTTPClient(client *http.Client) Option {
	return platform.WithHTTPClient(client)
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFormatter overrides the formatter applied to loaded documents.
func WithFormatter(f core.Formatter) Option {
	return platform.WithFormatter(f)
}

// WithView sets the view that displays the active document.
func WithView(v core.View) Option {
	return platform.WithView(v)
}

// WithUI sets the UI notified on document transitions.
func WithUI(ui core.UI) Option {
	return platform.WithUI(ui)
}

// WithEvents registers a channel receiving session events.
func WithEvents(ch chan<- core.Event) Option {
	return platform.WithEvents(ch)
}

// --- Factory ---

// New creates a Session showing a blank document.
func New(opts ...Option) (*Session, error) {
	return platform.New(opts...)
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return core.DefaultConfig()
}

// FindConfig looks upwards from startDir for a .haste.yaml file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}
