package server

import (
	"net/http"
	"strconv"

	"github.com/minji/glowup-backend/internal/db"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	products, err := s.db.ListProducts(r.Context(), db.ProductFilters{
		Category: r.URL.Query().Get("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
		"limit":    limit,
		"offset":   offset,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	productID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := s.db.GetProduct(r.Context(), productID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if product == nil {
		s.errorResponse(w, http.StatusNotFound, "Product not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, product)
}
