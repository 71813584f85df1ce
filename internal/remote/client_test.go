package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/remote"
	"github.com/Tiliavir/temps-vecu/internal/server"
	"github.com/Tiliavir/temps-vecu/internal/storage"
)

func TestRoundTripThroughServer(t *testing.T) {
	backing := storage.NewMemory()
	ts := httptest.NewServer(server.New(backing).Handler())
	defer ts.Close()

	c := remote.NewClient(ts.URL + "/")
	ctx := context.Background()
	require.True(t, c.Available(ctx))

	snap := model.Snapshot{
		Themes:  []model.Theme{{ID: "R", Name: "Repos", Color: "#9aa380"}},
		Entries: model.Entries{"2024-01-10": {Pebbles: []model.Pebble{{ID: "p", ThemeID: "R", Minutes: 45}}}},
	}
	require.NoError(t, c.Save(ctx, "alice", snap))
	assert.Equal(t, 1, backing.Saves())

	got, err := c.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.User)
	require.Len(t, got.Themes, 1)
	assert.Equal(t, 45, got.Entries["2024-01-10"].Pebbles[0].Minutes)

	other, err := backing.Load(ctx, "Seb")
	require.NoError(t, err)
	assert.Empty(t, other.Themes, "save is keyed by the document user")
}

func TestPingIsCached(t *testing.T) {
	var pings atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/ping" {
			pings.Add(1)
		}
		w.Write([]byte("{}"))
	}))
	defer ts.Close()

	c := remote.NewClient(ts.URL)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := c.Load(ctx, "")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), pings.Load())
}

func TestNoServer(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	ctx := context.Background()
	c := remote.NewClient(url)
	_, err := c.Load(ctx, "Seb")
	assert.True(t, errors.Is(err, remote.ErrNoServer))
	assert.True(t, errors.Is(c.Save(ctx, "Seb", model.Snapshot{}), remote.ErrNoServer))

	local := storage.NewMemory()
	fb := remote.NewClient(url, remote.WithFallback(local))
	require.NoError(t, fb.Save(ctx, "Seb", model.Snapshot{Themes: []model.Theme{{ID: "x", Name: "X"}}}))
	assert.Equal(t, 1, local.Saves())
	got, err := fb.Load(ctx, "Seb")
	require.NoError(t, err)
	assert.Len(t, got.Themes, 1)
}

func TestServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/ping" {
			w.Write([]byte("ok"))
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := remote.NewClient(ts.URL)
	_, err := c.Load(context.Background(), "Seb")
	assert.EqualError(t, err, "server error 500: boom")
}
