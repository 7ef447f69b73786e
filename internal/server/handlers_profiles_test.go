package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandleGetProfile_InvalidID tests get profile with invalid UUID
func TestHandleGetProfile_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/profiles/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid profile ID")
}

// TestHandleDeleteProfile_InvalidID tests delete profile with invalid UUID
func TestHandleDeleteProfile_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/profiles/xyz", nil)
	req.SetPathValue("id", "xyz")
	w := httptest.NewRecorder()

	s.handleDeleteProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleCreateProfile_MissingName tests create profile without a name
func TestHandleCreateProfile_MissingName(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(`{"email":"a@b.com"}`))
	w := httptest.NewRecorder()

	s.handleCreateProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "name")
}

// TestHandleCreateProfile_MalformedBody tests create profile with bad JSON
func TestHandleCreateProfile_MalformedBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(`{`))
	w := httptest.NewRecorder()

	s.handleCreateProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
