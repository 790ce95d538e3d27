package moderation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCheckForFlags_PostsQuery(t *testing.T) {
	var got FlagQuery
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	c := New(server.URL, testLogger())

	err := c.CheckForFlags(context.Background(), FlagQuery{
		Service:  "fanbox",
		Entity:   "post",
		EntityID: "c1",
		ID:       "p1",
	})
	require.NoError(t, err)
	assert.Equal(t, "fanbox", got.Service)
	assert.Equal(t, "post", got.Entity)
	assert.Equal(t, "c1", got.EntityID)
	assert.Equal(t, "p1", got.ID)
}

func TestCheckForFlags_BlankEndpointIsNoOp(t *testing.T) {
	c := New("", testLogger())
	assert.NoError(t, c.CheckForFlags(context.Background(), FlagQuery{}))
}

func TestCheckForFlags_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, testLogger())
	assert.Error(t, c.CheckForFlags(context.Background(), FlagQuery{}))
}
