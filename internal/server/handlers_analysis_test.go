package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minji/glowup-backend/internal/analysis"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHandlePersonalColor_BlueVeinFair(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handlePersonalColor, "/api/v1/analysis/personal-color",
		`{"user_id":"u-1","skin_tone":"fair","vein_color":"blue"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res analysis.PersonalColorResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, analysis.UndertoneCool, res.Undertone)
	assert.Equal(t, analysis.SeasonSummer, res.Season)
	assert.Equal(t, []string{"cool pink", "lavender", "soft blue", "rose", "mauve"}, res.Palette)

	s.audit.Wait()
	entries := s.logs.recorded()
	require.Len(t, entries, 1)
	assert.Equal(t, "personal-color", entries[0].Kind)
	assert.Equal(t, "u-1", entries[0].UserID)
}

func TestHandlePersonalColor_EmptyBodyIsValid(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handlePersonalColor, "/api/v1/analysis/personal-color", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res analysis.PersonalColorResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, analysis.UndertoneNeutral, res.Undertone)
	assert.NotEmpty(t, res.Palette)
}

func TestHandlePersonalColor_InvalidEnum(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handlePersonalColor, "/api/v1/analysis/personal-color",
		`{"skin_tone":"porcelain"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Invalid request")

	// Rejected requests are never audited.
	s.audit.Wait()
	assert.Empty(t, s.logs.recorded())
}

func TestHandlePersonalColor_MalformedBody(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handlePersonalColor, "/api/v1/analysis/personal-color", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSensitivity_OilyWithReactions(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleSensitivity, "/api/v1/analysis/sensitivity",
		`{"skin_type":"oily","ingredients_reactions":["Alcohol","AHA"]}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res analysis.SensitivityResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []string{"oily_skin"}, res.Flags)
	assert.Equal(t, []string{"alcohol", "heavy occlusives", "strong AHA"}, res.AvoidIngredients)
	assert.NotEmpty(t, res.Notes)
}

func TestHandleSensitivity_InvalidSkinType(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleSensitivity, "/api/v1/analysis/sensitivity",
		`{"skin_type":"scaly"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleComprehensive_SensitivityBlockOnly(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleComprehensive, "/api/v1/analysis/comprehensive",
		`{"user_id":"u-2","sensitivity":{"skin_type":"dry"}}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotContains(t, res, "personal")
	assert.Contains(t, res, "sensitivity")

	var recs map[string]any
	require.NoError(t, json.Unmarshal(res["recommendations"], &recs))
	assert.NotContains(t, recs, "palette")
	assert.Contains(t, recs, "avoid")

	s.audit.Wait()
	entries := s.logs.recorded()
	require.Len(t, entries, 1)
	assert.Equal(t, "comprehensive", entries[0].Kind)
}

func TestHandleComprehensive_EmptyBlocksRunWithDefaults(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleComprehensive, "/api/v1/analysis/comprehensive",
		`{"personal":{},"sensitivity":{}}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res analysis.ComprehensiveResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotNil(t, res.Personal)
	require.NotNil(t, res.Sensitivity)
	assert.Contains(t, res.Recommendations, "palette")
	assert.Contains(t, res.Recommendations, "avoid")
}

func TestHandleComprehensive_InvalidNestedEnum(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s.handleComprehensive, "/api/v1/analysis/comprehensive",
		`{"personal":{"vein_color":"purple"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
