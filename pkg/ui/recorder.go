// Package ui holds the title/URL bookkeeping and the toolbar model that sit
// between a front end and core.Session.
package ui

import (
	"strings"
	"sync"

	"github.com/aretw0/haste/pkg/core"
)

// BaseTitle is the page title of a new document.
const BaseTitle = "Hastebin Plus"

// Title returns the page title for key.
func Title(key string) string {
	if key == "" {
		return BaseTitle
	}
	return BaseTitle + " - " + key
}

// DocumentURL returns the shareable URL of key, or the base URL for "".
func DocumentURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}

// RawURL returns the URL serving the unformatted text of key.
func RawURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/raw/" + key
}

// Recorder implements core.UI by remembering what a page would show:
// the title, the URL history and which buttons are enabled.
type Recorder struct {
	baseURL string

	mu      sync.RWMutex
	key     string
	title   string
	history []string
	enabled map[core.Button]bool
}

// NewRecorder creates a Recorder for documents served under baseURL.
func NewRecorder(baseURL string) *Recorder {
	return &Recorder{
		baseURL: baseURL,
		title:   BaseTitle,
		enabled: make(map[core.Button]bool),
	}
}

// EnterDocument implements core.UI. Title and history only change with the key.
func (r *Recorder) EnterDocument(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if key != r.key {
		r.title = Title(key)
		r.history = append(r.history, DocumentURL(r.baseURL, key))
	}
	r.key = key
}

// ConfigureKey implements core.UI.
func (r *Recorder) ConfigureKey(enabled ...core.Button) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = make(map[core.Button]bool, len(enabled))
	for _, b := range enabled {
		r.enabled[b] = true
	}
}

// Key returns the key of the document currently entered.
func (r *Recorder) Key() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.key
}

// Title returns the current page title.
func (r *Recorder) Title() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.title
}

// URL returns the URL of the current document.
func (r *Recorder) URL() string {
	return DocumentURL(r.baseURL, r.Key())
}

// RawURL returns the raw URL of the current document.
func (r *Recorder) RawURL() string {
	return RawURL(r.baseURL, r.Key())
}

// History returns every URL pushed so far.
func (r *Recorder) History() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.history...)
}

// Enabled reports whether b is currently enabled.
func (r *Recorder) Enabled(b core.Button) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[b]
}

var _ core.UI = (*Recorder)(nil)
