package platform_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/haste/internal/platform"
	"github.com/aretw0/haste/internal/testutil"
	"github.com/aretw0/haste/pkg/adapters/memory"
	"github.com/aretw0/haste/pkg/core"
)

func TestNew_RemoteAdapter(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.NextKey("abc123")

	session, err := platform.New(platform.WithBaseURL(srv.URL), platform.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	session.View().Set("hello", core.ModeWrite)
	key, err := session.LockDocument(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
	assert.Equal(t, []string{"hello"}, srv.Posts())

	assert.Equal(t, "hello", session.View().Get())
	assert.True(t, session.Document().Locked())
}

func TestNew_InjectedStore(t *testing.T) {
	store := memory.NewStore()
	store.Set("k1", "package main")

	session, err := platform.New(platform.WithStore(store), platform.WithAdapter("nonexistent"))
	require.NoError(t, err)

	session.LoadDocument(context.Background(), "k1")
	assert.Equal(t, "package main", session.View().Get())
}

func TestNew_UnknownAdapter(t *testing.T) {
	_, err := platform.New(platform.WithAdapter("s3"))
	assert.ErrorContains(t, err, "unknown adapter")
}

func TestNew_FormatterFromConfig(t *testing.T) {
	store := memory.NewStore()
	store.Set("k1", "a\nb")

	session, err := platform.New(platform.WithStore(store), platform.WithHTML(true))
	require.NoError(t, err)

	session.LoadDocument(context.Background(), "k1")
	assert.Equal(t, `<span class="line">a</span>`+"\n"+`<span class="line">b</span>`, session.View().Get())
	assert.Equal(t, "a\nb", session.Document().Content())
}

func TestNew_FormatterOverride(t *testing.T) {
	store := memory.NewStore()
	store.Set("k1", "shout")

	session, err := platform.New(
		platform.WithStore(store),
		platform.WithHTML(true),
		platform.WithFormatter(core.FormatterFunc(func(s string) (string, error) {
			return strings.ToUpper(s), nil
		})),
	)
	require.NoError(t, err)

	session.LoadDocument(context.Background(), "k1")
	assert.Equal(t, "SHOUT", session.View().Get())
}

func TestNew_TrimAndEvents(t *testing.T) {
	store := memory.NewStore()
	events := make(chan core.Event, 8)

	session, err := platform.New(
		platform.WithStore(store),
		platform.WithTrim(true),
		platform.WithEvents(events),
	)
	require.NoError(t, err)

	session.View().Set("  padded \n", core.ModeWrite)
	key, err := session.LockDocument(context.Background())
	require.NoError(t, err)

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "padded", got)

	var types []core.EventType
	for len(events) > 0 {
		types = append(types, (<-events).Type)
	}
	assert.Equal(t, []core.EventType{core.EventNew, core.EventLock, core.EventLoad}, types)
}

func TestInit(t *testing.T) {
	store, err := platform.Init(platform.WithAdapter("memory"))
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, store)
}
