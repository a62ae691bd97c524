package core

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
)

// SessionConfig wires a Session to its collaborators.
// Zero-value fields get defaults: a Buffer view, NopUI and a discarding logger.
type SessionConfig struct {
	Config    Config
	Formatter Formatter
	View      View
	UI        UI
	Logger    *slog.Logger
	Events    chan<- Event // optional; sends never block
}

// Session coordinates one active Document with the view and the UI.
type Session struct {
	store     Store
	formatter Formatter
	config    Config
	view      View
	ui        UI
	logger    *slog.Logger
	events    chan<- Event

	mu  sync.RWMutex
	doc *Document
}

// NewSession creates a Session showing a new, blank document.
func NewSession(store Store, cfg SessionConfig) *Session {
	s := &Session{
		store:     store,
		formatter: cfg.Formatter,
		config:    cfg.Config,
		view:      cfg.View,
		ui:        cfg.UI,
		logger:    cfg.Logger,
		events:    cfg.Events,
	}
	if s.view == nil {
		s.view = NewBuffer()
	}
	if s.ui == nil {
		s.ui = NopUI{}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s.NewDocument()
	return s
}

// Document returns the active document.
func (s *Session) Document() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// View returns the view buffer.
func (s *Session) View() View {
	return s.view
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	return s.config
}

func (s *Session) freshDocument() *Document {
	return NewDocument(s.store, s.formatter, s.config.Trim)
}

// NewDocument discards the active document and starts a blank, editable one.
func (s *Session) NewDocument() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// resetLocked must be called with s.mu held.
func (s *Session) resetLocked() {
	s.doc = s.freshDocument()
	s.ui.EnterDocument("")
	s.ui.ConfigureKey(LightKey...)
	s.view.Set("", ModeWrite)
	s.emit(EventNew, "")
}

// LoadDocument replaces the active document with the one stored under key.
// A failed load is not returned: the session falls back to a blank document.
// If another operation replaced the document while the load was in flight,
// the result is discarded.
func (s *Session) LoadDocument(ctx context.Context, key string) {
	doc := s.freshDocument()
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	rendered, err := doc.Load(ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc != doc {
		s.logger.Debug("discarding stale load", "key", key)
		return
	}
	if err != nil {
		s.logger.Warn("load failed, starting a new document", "key", key, "error", err)
		s.resetLocked()
		return
	}

	s.ui.EnterDocument(rendered.Key)
	s.ui.ConfigureKey(FullKey...)
	s.view.Set(rendered.Value, ModeRead)
	s.emit(EventLoad, rendered.Key)
	s.logger.Debug("document loaded", "key", rendered.Key)
}

// SaveDocument saves the view content through the active document.
//
// Despite the name there is no save that leaves the document editable: a
// successful save locks it, exactly like LockDocument minus the reload.
func (s *Session) SaveDocument(ctx context.Context) (string, error) {
	key, err := s.Document().Save(ctx, s.view.Get())
	if err != nil {
		s.logger.Warn("save failed", "error", err)
		return "", err
	}
	return key, nil
}

// LockDocument saves the view content and, when that persisted something new,
// reloads the document under its key to display the canonical version.
// The reload is skipped if another operation replaced the document meanwhile.
// The key and error of the save are returned in every case.
func (s *Session) LockDocument(ctx context.Context) (string, error) {
	doc := s.Document()
	if doc.Locked() {
		return doc.Key(), nil
	}

	key, err := doc.Save(ctx, s.view.Get())
	if err != nil {
		s.logger.Warn("lock failed", "error", err)
		return "", err
	}

	s.emit(EventLock, key)
	s.logger.Info("document locked", "key", key)
	if s.Document() != doc {
		s.logger.Debug("document replaced during save, skipping reload", "key", key)
		return key, nil
	}
	s.LoadDocument(ctx, key)
	return key, nil
}

// DuplicateDocument starts a new editable document seeded with the content of
// the active one. It only applies to a locked document and reports whether it did.
func (s *Session) DuplicateDocument() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.Locked() {
		return false
	}
	content := s.doc.Content()
	s.resetLocked()
	s.view.Set(content, ModeWrite)
	s.emit(EventDuplicate, "")
	return true
}

// GetDocument is the low-level accessor. It returns a new Document right away.
//
// With a key, the document is loaded in the background and cb receives it on
// success, or a nil document and the error on failure. Without a key, cb is
// called before GetDocument returns with the blank document. Callers must not
// assume the returned document is populated until cb has run.
// The active document of the session is not affected.
func (s *Session) GetDocument(ctx context.Context, key string, cb func(*Document, error)) *Document {
	doc := s.freshDocument()
	if cb == nil {
		cb = func(*Document, error) {}
	}
	if key == "" {
		cb(doc, nil)
		return doc
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		if _, err := doc.Load(ctx, key); err != nil {
			cb(nil, err)
			return nil
		}
		cb(doc, nil)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("background load panic", "key", key, "error", err)
	}))

	return doc
}

func (s *Session) emit(t EventType, key string) {
	if s.events == nil {
		return
	}
	select {
	case s.events <- Event{Type: t, Key: key, Timestamp: time.Now().Unix()}:
	default:
		s.logger.Debug("event dropped", "type", t, "key", key)
	}
}
