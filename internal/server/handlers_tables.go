package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"
)

func (s *Server) handleListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := s.db.ListPublicTables(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"tables": tables,
		"count":  len(tables),
	})
}

// handleStats reports row counts for the main tables. The counts are
// independent queries, so they run concurrently.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var profiles, products, logs int64

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		profiles, err = s.db.CountProfiles(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.db.CountProducts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.db.CountAnalysisLogs(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profiles":      profiles,
		"products":      products,
		"analysis_logs": logs,
	})
}
