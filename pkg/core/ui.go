package core

// Button is one of the fixed toolbar actions.
type Button string

const (
	ButtonSave      Button = "save"
	ButtonNew       Button = "new"
	ButtonDuplicate Button = "duplicate"
	ButtonRaw       Button = "raw"
)

// Buttons lists the toolbar in display order.
var Buttons = []Button{ButtonSave, ButtonNew, ButtonDuplicate, ButtonRaw}

// LightKey is enabled while editing an unsaved document.
var LightKey = []Button{ButtonNew, ButtonSave}

// FullKey is enabled while viewing a locked document.
var FullKey = []Button{ButtonNew, ButtonDuplicate, ButtonRaw}

// UI receives document-entry transitions and button state from the session.
type UI interface {
	// EnterDocument is called with the key of the document now shown, or "" for a new one.
	EnterDocument(key string)

	// ConfigureKey enables exactly the given buttons and disables the others.
	ConfigureKey(enabled ...Button)
}

// NopUI ignores every signal.
type NopUI struct{}

func (NopUI) EnterDocument(string) {}
func (NopUI) ConfigureKey(...Button) {}
