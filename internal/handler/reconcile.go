package handler

import (
	"net/http"

	"github.com/ngoldman/tripsmith/internal/domain"
)

// ReconcileRequest is the body of POST /api/v1/reconcile.
type ReconcileRequest struct {
	Trip       domain.TripRecord     `json:"trip"`
	Candidates domain.CandidateBatch `json:"candidates"`
}

// ReconcileResponse carries the merged aggregate back to the persistence
// collaborator.
type ReconcileResponse struct {
	Trip domain.TripRecord `json:"trip"`
}

// ReconcileTrip handles POST /api/v1/reconcile. It merges the candidate
// batch into the supplied trip and returns the updated aggregate; the
// supplied trip itself is never modified.
func (s *Server) ReconcileTrip(w http.ResponseWriter, r *http.Request) {
	var req ReconcileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	merged := s.reconcile.Reconcile(req.Trip, req.Candidates)

	writeJSON(w, http.StatusOK, ReconcileResponse{Trip: merged})
}
