package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minji/glowup-backend/internal/db"
)

// mockLogStore collects audit entries in memory for tests.
type mockLogStore struct {
	mu      sync.Mutex
	entries []*db.AnalysisLog
	err     error
}

func (m *mockLogStore) InsertAnalysisLog(_ context.Context, entry *db.AnalysisLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockLogStore) recorded() []*db.AnalysisLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*db.AnalysisLog(nil), m.entries...)
}

type testServer struct {
	*Server
	logs *mockLogStore
}

func newTestServer() *testServer {
	logs := &mockLogStore{}
	s := &Server{
		db:    nil, // Handlers under unit test never reach the database
		audit: newAuditLogger(logs),
	}
	return &testServer{Server: s, logs: logs}
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["time"])
}

// TestCORSPreflight tests that OPTIONS requests short-circuit with CORS headers
func TestCORSPreflight(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler should not run for OPTIONS")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analysis/sensitivity", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, err := rw.Write([]byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.Status())
}

func TestResponseWriter_CapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, rw.Status())
}
