package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNotFound = errors.New("document not found")
	ErrBusy     = errors.New("document has an operation in flight")
	ErrEmptyKey = errors.New("document key cannot be empty")
	ErrLocked   = errors.New("document is locked")
)

// GenericFailureMessage is reported when the store's error body cannot be parsed.
const GenericFailureMessage = "Something went wrong!"

// StoreError is the uniform failure shape of a save.
// Payload holds the store's error body exactly as it was decoded, or a
// synthesized {"message": GenericFailureMessage} when there was none to decode.
type StoreError struct {
	Status  int
	Payload map[string]any
	Err     error
}

// NewGenericStoreError wraps a transport or decode failure into the generic payload.
func NewGenericStoreError(status int, err error) *StoreError {
	return &StoreError{
		Status:  status,
		Payload: map[string]any{"message": GenericFailureMessage},
		Err:     err,
	}
}

// Message returns Payload["message"] when it is a string.
func (e *StoreError) Message() string {
	if msg, ok := e.Payload["message"].(string); ok {
		return msg
	}
	return ""
}

func (e *StoreError) Error() string {
	msg := e.Message()
	if msg == "" {
		msg = "store request failed"
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
