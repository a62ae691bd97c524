package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/haste/pkg/adapters/lifecycle"
	"github.com/aretw0/haste/pkg/core"
)

func TestSource_ForwardsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event, 2)
	src := lifecycle.NewSource(in)
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventLock, Key: "abc123"}
	close(in)

	select {
	case e, ok := <-src.Events():
		require.True(t, ok)
		assert.Equal(t, "LOCK abc123", e.String())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "output closes with input")
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for close")
	}
}

func TestSource_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := lifecycle.NewSource(make(chan core.Event))
	require.NoError(t, src.Start(ctx))

	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for close")
	}
}
