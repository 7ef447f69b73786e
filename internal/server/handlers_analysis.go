package server

import (
	"encoding/json"
	"net/http"

	"github.com/minji/glowup-backend/internal/analysis"
	"github.com/minji/glowup-backend/internal/types"
)

// The analysis handlers validate the request, run the pure engine and record
// an audit entry in the background. The engine itself is total: once a
// request passes validation, the response is always 200.

func (s *Server) handlePersonalColor(w http.ResponseWriter, r *http.Request) {
	var req types.PersonalColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	res := analysis.ComputePersonalColor(req.ToInput())
	s.audit.Record("personal-color", req.UserID, req, res)

	s.jsonResponse(w, http.StatusOK, res)
}

func (s *Server) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	var req types.SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	res := analysis.ComputeSensitivity(req.ToInput())
	s.audit.Record("sensitivity", req.UserID, req, res)

	s.jsonResponse(w, http.StatusOK, res)
}

func (s *Server) handleComprehensive(w http.ResponseWriter, r *http.Request) {
	var req types.ComprehensiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	res := analysis.ComputeComprehensive(req.ToInput())
	s.audit.Record("comprehensive", req.UserID, req, res)

	s.jsonResponse(w, http.StatusOK, res)
}
