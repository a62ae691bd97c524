package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/haste/pkg/core"
)

func TestDocument_NewIsUnlocked(t *testing.T) {
	doc := core.NewDocument(newFakeStore(), nil, false)

	assert.False(t, doc.Locked())
	assert.Empty(t, doc.Key())
	assert.Empty(t, doc.Content())
}

func TestDocument_SaveLocks(t *testing.T) {
	store := newFakeStore()
	store.nextKey = "abc123"
	doc := core.NewDocument(store, nil, false)

	key, err := doc.Save(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, "abc123", key)
	assert.True(t, doc.Locked())
	assert.Equal(t, "abc123", doc.Key())
	assert.Equal(t, "hello", doc.Content())
}

func TestDocument_SaveWhenLockedIsNoop(t *testing.T) {
	store := newFakeStore()
	doc := core.NewDocument(store, nil, false)
	ctx := context.Background()

	first, err := doc.Save(ctx, "original")
	require.NoError(t, err)

	again, err := doc.Save(ctx, "changed")
	require.NoError(t, err)

	_, puts := store.calls()
	assert.Equal(t, 1, puts, "locked save must not reach the store")
	assert.Equal(t, first, again)
	assert.Equal(t, first, doc.Key())
	assert.Equal(t, "original", doc.Content())
}

func TestDocument_SaveFailureLeavesUnlocked(t *testing.T) {
	store := newFakeStore()
	store.putErr = &core.StoreError{Status: 500, Payload: map[string]any{"message": "too large"}}
	doc := core.NewDocument(store, nil, false)

	_, err := doc.Save(context.Background(), "hello")

	var storeErr *core.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, map[string]any{"message": "too large"}, storeErr.Payload)
	assert.False(t, doc.Locked())
	assert.Empty(t, doc.Key())
	assert.Empty(t, doc.Content())
}

func TestDocument_SaveWrapsPlainErrors(t *testing.T) {
	store := newFakeStore()
	cause := errors.New("connection reset")
	store.putErr = cause
	doc := core.NewDocument(store, nil, false)

	_, err := doc.Save(context.Background(), "hello")

	var storeErr *core.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, core.GenericFailureMessage, storeErr.Message())
	assert.ErrorIs(t, err, cause)
}

func TestDocument_SaveTrims(t *testing.T) {
	store := newFakeStore()
	doc := core.NewDocument(store, nil, true)

	key, err := doc.Save(context.Background(), "\n  hello  \n")
	require.NoError(t, err)

	assert.Equal(t, "hello", store.docs[key])
	assert.Equal(t, "hello", doc.Content())
}

func TestDocument_LoadLocks(t *testing.T) {
	store := newFakeStore()
	store.docs["abc"] = "content"
	doc := core.NewDocument(store, nil, false)

	rendered, err := doc.Load(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, core.Rendered{Key: "abc", Value: "content"}, rendered)
	assert.True(t, doc.Locked())
	assert.Equal(t, "abc", doc.Key())
	assert.Equal(t, "content", doc.Content())
}

func TestDocument_LoadFailureHasNoSideEffects(t *testing.T) {
	doc := core.NewDocument(newFakeStore(), nil, false)

	_, err := doc.Load(context.Background(), "missing")

	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.False(t, doc.Locked())
	assert.Empty(t, doc.Key())
	assert.Empty(t, doc.Content())
}

func TestDocument_LoadEmptyKey(t *testing.T) {
	store := newFakeStore()
	doc := core.NewDocument(store, nil, false)

	_, err := doc.Load(context.Background(), "")

	assert.ErrorIs(t, err, core.ErrEmptyKey)
	gets, _ := store.calls()
	assert.Zero(t, gets)
}

func TestDocument_LoadIntoLockedDocument(t *testing.T) {
	store := newFakeStore()
	store.docs["a"] = "first"
	store.docs["b"] = "second"
	doc := core.NewDocument(store, nil, false)
	ctx := context.Background()

	_, err := doc.Load(ctx, "a")
	require.NoError(t, err)

	_, err = doc.Load(ctx, "b")
	assert.ErrorIs(t, err, core.ErrLocked)
	assert.Equal(t, "a", doc.Key())
	assert.Equal(t, "first", doc.Content())
}

func TestDocument_LoadFormats(t *testing.T) {
	store := newFakeStore()
	store.docs["abc"] = "raw"
	upper := core.FormatterFunc(func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
	doc := core.NewDocument(store, upper, false)

	rendered, err := doc.Load(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "RAW", rendered.Value)
	assert.Equal(t, "raw", doc.Content(), "content keeps the raw text")
}

func TestDocument_LoadFormatterFailure(t *testing.T) {
	store := newFakeStore()
	store.docs["abc"] = "raw"
	failing := core.FormatterFunc(func(string) (string, error) {
		return "", errors.New("boom")
	})
	doc := core.NewDocument(store, failing, false)

	_, err := doc.Load(context.Background(), "abc")

	assert.Error(t, err)
	assert.False(t, doc.Locked())
	assert.Empty(t, doc.Key())
}

func TestDocument_OverlappingSaveIsBusy(t *testing.T) {
	store := newFakeStore()
	store.entered = make(chan struct{})
	store.release = make(chan struct{})
	doc := core.NewDocument(store, nil, false)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := doc.Save(ctx, "first")
		done <- err
	}()
	<-store.entered

	_, err := doc.Save(ctx, "second")
	assert.ErrorIs(t, err, core.ErrBusy)

	_, err = doc.Load(ctx, "anything")
	assert.ErrorIs(t, err, core.ErrBusy)

	close(store.release)
	require.NoError(t, <-done)
	assert.Equal(t, "first", doc.Content())
	_, puts := store.calls()
	assert.Equal(t, 1, puts)
}

func TestDocument_RoundTrip(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	saved := core.NewDocument(store, nil, false)
	key, err := saved.Save(ctx, "round\ntrip\n")
	require.NoError(t, err)

	loaded := core.NewDocument(store, nil, false)
	rendered, err := loaded.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "round\ntrip\n", rendered.Value)
	assert.Equal(t, saved.Content(), loaded.Content())
}
