package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingksjo/recipe-platform/internal/config"
)

// mockStore provides a minimal database stand-in for handler testing.
type mockStore struct {
	collections []string
	listErr     error
	pingErr     error
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *mockStore) ListCollections(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.collections, nil
}

func newTestServer(t *testing.T, store Store) *Server {
	t.Helper()

	cfg := &config.Config{
		Env:          "test",
		Debug:        true,
		Port:         "8080",
		MongoURL:     "mongodb://localhost:27017",
		DatabaseName: "recipe_db",
	}
	return NewServer(cfg, store, clockwork.NewFakeClock())
}

func TestHandleRoot(t *testing.T) {
	srv := newTestServer(t, &mockStore{collections: []string{"recipes", "users"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp rootResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome to the Recipe Sharing Platform API!", resp.Message)
	assert.Equal(t, "test", resp.Env)
	assert.True(t, resp.Debug)
	assert.Equal(t, "recipe_db", resp.Database)
	assert.Equal(t, []string{"recipes", "users"}, resp.Collections)
	assert.Equal(t, srv.InstanceID().String(), resp.InstanceID)
}

func TestHandleRootEmptyDatabase(t *testing.T) {
	srv := newTestServer(t, &mockStore{collections: []string{}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp rootResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Collections)
}

func TestHandleRootDatabaseUnavailable(t *testing.T) {
	srv := newTestServer(t, &mockStore{listErr: fmt.Errorf("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "database unavailable", resp["error"])
	assert.Equal(t, "unavailable", resp["type"])
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, &mockStore{})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["version"])
	assert.NotEmpty(t, resp["go_version"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockStore{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
