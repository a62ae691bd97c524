package platform

import (
	"log/slog"
	"net/http"

	"github.com/aretw0/haste/pkg/core"
)

// options holds the internal configuration for a haste Session.
type options struct {
	store      core.Store
	adapter    string
	config     core.Config
	httpClient *http.Client
	logger     *slog.Logger
	formatter  core.Formatter
	view       core.View
	ui         core.UI
	events     chan<- core.Event
}

// Option defines a functional option for configuring a Session.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "remote",
		config:  core.DefaultConfig(),
	}
}

// WithStore injects a custom storage adapter (e.g. a mock).
// If provided, the adapter selected by WithAdapter is not built.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAdapter selects the storage adapter by name: "remote" (default) or "memory".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg core.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithBaseURL sets the address of the document store.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.config.BaseURL = url
	}
}

// WithHighlight enables syntax highlighting of loaded documents.
// lang is "auto" or a language name; "" disables it.
func WithHighlight(lang string) Option {
	return func(o *options) {
		o.config.Highlight = lang
	}
}

// WithHTML wraps every line of loaded documents in a line span.
func WithHTML(enabled bool) Option {
	return func(o *options) {
		o.config.HTML = enabled
	}
}

// WithTrim trims surrounding whitespace from content before it is saved.
func WithTrim(enabled bool) Option {
	return func(o *options) {
		o.config.Trim = enabled
	}
}

// WithHTTPClient sets the client used by the remote adapter.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger for the session and the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFormatter overrides the formatter derived from the configuration.
func WithFormatter(f core.Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithView sets the view that displays the active document.
func WithView(v core.View) Option {
	return func(o *options) {
		o.view = v
	}
}

// WithUI sets the UI notified on document transitions.
func WithUI(ui core.UI) Option {
	return func(o *options) {
		o.ui = ui
	}
}

// WithEvents registers a channel receiving session events.
// Sends never block; events are dropped when the channel is full.
func WithEvents(ch chan<- core.Event) Option {
	return func(o *options) {
		o.events = ch
	}
}
