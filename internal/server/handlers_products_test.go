package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandleGetProduct_InvalidID tests get product with a non-numeric ID
func TestHandleGetProduct_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	s.handleGetProduct(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid product ID")
}

// TestParseQueryInt tests the parseQueryInt helper function
func TestParseQueryInt(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		key          string
		defaultValue int
		maxValue     int
		want         int
	}{
		{
			name:         "valid value",
			query:        "?limit=25",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         25,
		},
		{
			name:         "missing value uses default",
			query:        "?offset=10",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         50,
		},
		{
			name:         "value exceeds max",
			query:        "?limit=200",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         100,
		},
		{
			name:         "invalid value uses default",
			query:        "?limit=abc",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         50,
		},
		{
			name:         "negative value uses default",
			query:        "?limit=-10",
			key:          "limit",
			defaultValue: 50,
			maxValue:     100,
			want:         50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil)
			got := parseQueryInt(req, tt.key, tt.defaultValue, tt.maxValue)
			assert.Equal(t, tt.want, got)
		})
	}
}
