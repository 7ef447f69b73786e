package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/minji/glowup-backend/internal/db"
)

// CreateProfileRequest is the body of POST /profiles.
type CreateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	SkinType string `json:"skin_type,omitempty"`
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.db.ListProfiles(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	profileID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		err := &ErrValidation{Field: "name", Message: "is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.db.CreateProfile(r.Context(), req.Name, req.Email, req.SkinType)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	profileID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	if err := s.db.DeleteProfile(r.Context(), profileID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Profile not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
