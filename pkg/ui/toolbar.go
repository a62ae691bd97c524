package ui

import (
	"context"
	"strings"

	"github.com/aretw0/haste/pkg/core"
)

// Key codes used by the default shortcuts.
const (
	KeySpace = 32
	KeyD     = 68
	KeyR     = 82
	KeyS     = 83
)

// Keystroke is a key press with its modifiers.
type Keystroke struct {
	Ctrl  bool
	Shift bool
	Code  int
}

type button struct {
	name     core.Button
	shortcut func(Keystroke) bool
	action   func(ctx context.Context) error
}

// Toolbar binds the fixed button set and its shortcuts to a Session.
// Buttons only act while the Recorder reports them enabled, whether clicked
// or triggered by a shortcut.
type Toolbar struct {
	session  *core.Session
	recorder *Recorder
	onRaw    func(url string)
	buttons  []button
}

// NewToolbar creates the toolbar. onRaw receives the raw URL when the raw
// button fires; it may be nil.
func NewToolbar(session *core.Session, recorder *Recorder, onRaw func(url string)) *Toolbar {
	t := &Toolbar{session: session, recorder: recorder, onRaw: onRaw}
	t.buttons = []button{
		{
			name:     core.ButtonSave,
			shortcut: func(k Keystroke) bool { return k.Ctrl && k.Code == KeyS },
			action:   t.save,
		},
		{
			name:     core.ButtonNew,
			shortcut: func(k Keystroke) bool { return k.Ctrl && k.Code == KeySpace },
			action: func(context.Context) error {
				t.session.NewDocument()
				return nil
			},
		},
		{
			name:     core.ButtonDuplicate,
			shortcut: func(k Keystroke) bool { return k.Ctrl && k.Code == KeyD },
			action: func(context.Context) error {
				t.session.DuplicateDocument()
				return nil
			},
		},
		{
			name:     core.ButtonRaw,
			shortcut: func(k Keystroke) bool { return k.Ctrl && k.Shift && k.Code == KeyR },
			action:   t.raw,
		},
	}
	return t
}

// Click runs the action of b if it is enabled. It reports whether it ran.
func (t *Toolbar) Click(ctx context.Context, b core.Button) (bool, error) {
	for _, btn := range t.buttons {
		if btn.name != b {
			continue
		}
		if !t.recorder.Enabled(b) {
			return false, nil
		}
		return true, btn.action(ctx)
	}
	return false, nil
}

// Press dispatches k to the first button whose shortcut matches.
func (t *Toolbar) Press(ctx context.Context, k Keystroke) (bool, error) {
	for _, btn := range t.buttons {
		if btn.shortcut(k) {
			return t.Click(ctx, btn.name)
		}
	}
	return false, nil
}

// save locks the document unless the view holds only whitespace.
// An empty view is still saved.
func (t *Toolbar) save(ctx context.Context) error {
	content := t.session.View().Get()
	if content != "" && strings.TrimSpace(content) == "" {
		return nil
	}
	_, err := t.session.LockDocument(ctx)
	return err
}

func (t *Toolbar) raw(context.Context) error {
	if t.onRaw != nil {
		t.onRaw(t.recorder.RawURL())
	}
	return nil
}
