package fetcher

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T) (*Fetcher, string) {
	t.Helper()
	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{Root: root, Timeout: 5 * time.Second}, logger), root
}

func TestFetch_SavesAndReturnsName(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		_, _ = w.Write([]byte("image bytes"))
	}))
	defer server.Close()

	f, root := newTestFetcher(t)

	name, err := f.Fetch(context.Background(), server.URL, "/files/fanbox/c1/p1", "a.png", "sess")
	require.NoError(t, err)
	assert.Equal(t, "a.png", name)
	assert.Equal(t, "FANBOXSESSID=sess", gotCookie)

	data, err := os.ReadFile(filepath.Join(root, "files", "fanbox", "c1", "p1", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestFetch_IsIdempotent(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	f, _ := newTestFetcher(t)
	ctx := context.Background()

	first, err := f.Fetch(ctx, server.URL, "/inline/fanbox", "a.png", "sess")
	require.NoError(t, err)

	second, err := f.Fetch(ctx, server.URL, "/inline/fanbox", "a.png", "sess")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load(), "second fetch must reuse the file on disk")
}

func TestFetch_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	f, root := newTestFetcher(t)

	_, err := f.Fetch(context.Background(), server.URL, "/inline/fanbox", "a.png", "sess")
	require.ErrorIs(t, err, ErrBadStatus)

	// Nothing may land under the final name on failure.
	_, statErr := os.Stat(filepath.Join(root, "inline", "fanbox", "a.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetch_StripsPathFromHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()

	f, root := newTestFetcher(t)

	name, err := f.Fetch(context.Background(), server.URL, "/inline/fanbox", "../../evil.png", "sess")
	require.NoError(t, err)
	assert.Equal(t, "evil.png", name)

	_, err = os.Stat(filepath.Join(root, "inline", "fanbox", "evil.png"))
	assert.NoError(t, err)
}
