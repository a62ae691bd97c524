package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Document is one shareable text snippet.
// It starts unlocked and empty, and becomes locked exactly once, after a
// successful load or save. A locked document never changes again.
type Document struct {
	store     Store
	formatter Formatter
	trim      bool

	mu      sync.RWMutex
	key     string
	content string
	locked  bool
	busy    bool
}

// NewDocument creates an unlocked, empty document backed by store.
// formatter may be nil.
func NewDocument(store Store, formatter Formatter, trim bool) *Document {
	return &Document{
		store:     store,
		formatter: formatter,
		trim:      trim,
	}
}

// Key returns the store key, or "" for an unsaved document.
func (d *Document) Key() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.key
}

// Content returns the last loaded or saved content.
func (d *Document) Content() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

// Locked reports whether the document has been persisted or loaded.
func (d *Document) Locked() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.locked
}

// beginLoad marks a load in flight. Overlapping calls get ErrBusy.
func (d *Document) beginLoad() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.locked {
		return ErrLocked
	}
	if d.busy {
		return ErrBusy
	}
	d.busy = true
	return nil
}

func (d *Document) end() {
	d.mu.Lock()
	d.busy = false
	d.mu.Unlock()
}

// Load fetches key from the store and locks the document.
// Only an unlocked document can be loaded into; use a fresh Document per key.
// The returned value has been passed through the formatter, when one is set;
// Content keeps the raw text. On any failure the document is left untouched.
func (d *Document) Load(ctx context.Context, key string) (Rendered, error) {
	if key == "" {
		return Rendered{}, ErrEmptyKey
	}
	if err := d.beginLoad(); err != nil {
		return Rendered{}, err
	}
	defer d.end()

	data, err := d.store.Get(ctx, key)
	if err != nil {
		return Rendered{}, fmt.Errorf("load %s: %w", key, err)
	}

	value := data
	if d.formatter != nil {
		value, err = d.formatter.Format(data)
		if err != nil {
			return Rendered{}, fmt.Errorf("format %s: %w", key, err)
		}
	}

	d.mu.Lock()
	d.locked = true
	d.key = key
	d.content = data
	d.mu.Unlock()

	return Rendered{Key: key, Value: value}, nil
}

// Save sends content to the store and locks the document under the new key.
//
// Saving a locked document is a silent no-op: the store is not contacted and
// the key the document already has is returned with a nil error.
// Failures are always reported as *StoreError.
func (d *Document) Save(ctx context.Context, content string) (string, error) {
	d.mu.Lock()
	if d.locked {
		key := d.key
		d.mu.Unlock()
		return key, nil
	}
	if d.busy {
		d.mu.Unlock()
		return "", ErrBusy
	}
	d.busy = true
	d.mu.Unlock()
	defer d.end()

	if d.trim {
		content = strings.TrimSpace(content)
	}

	newKey, err := d.store.Put(ctx, content)
	if err != nil {
		var storeErr *StoreError
		if errors.As(err, &storeErr) {
			return "", storeErr
		}
		return "", NewGenericStoreError(0, err)
	}

	d.mu.Lock()
	d.locked = true
	d.key = newKey
	d.content = content
	d.mu.Unlock()

	return newKey, nil
}
