package handler

import (
	"net/http"

	"github.com/ngoldman/tripsmith/internal/domain"
)

// TimelineRequest is the body of POST /api/v1/timeline.
type TimelineRequest struct {
	Trip           domain.TripRecord `json:"trip"`
	ExternalEvents []domain.Event    `json:"external_events,omitempty"`
}

// TimelineResponse carries the synthesized agenda and its insights.
type TimelineResponse struct {
	Days     []domain.DayPlan `json:"days"`
	Insights []domain.Insight `json:"insights"`
}

// SynthesizeTimeline handles POST /api/v1/timeline. It rebuilds the per-day
// agenda from the supplied trip aggregate and external events, then derives
// insights from the result. The endpoint is pure: calling it twice with the
// same body yields the same response.
func (s *Server) SynthesizeTimeline(w http.ResponseWriter, r *http.Request) {
	var req TimelineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	days := s.timeline.Build(req.Trip, req.ExternalEvents)
	insights := s.insights.Derive(days, req.Trip)

	writeJSON(w, http.StatusOK, TimelineResponse{Days: days, Insights: insights})
}
