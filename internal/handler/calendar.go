package handler

import (
	"net/http"

	"github.com/ngoldman/tripsmith/internal/domain"
)

// CalendarMapRequest is the body of POST /api/v1/calendar/map.
type CalendarMapRequest struct {
	Items []domain.CalendarImportItem `json:"items"`
}

// CalendarMapResponse carries the mapped external events, ready to be fed to
// the timeline endpoint as external_events.
type CalendarMapResponse struct {
	Events []domain.Event `json:"events"`
}

// MapCalendarEvents handles POST /api/v1/calendar/map. It converts imported
// calendar items into external timeline events.
func (s *Server) MapCalendarEvents(w http.ResponseWriter, r *http.Request) {
	var req CalendarMapRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	writeJSON(w, http.StatusOK, CalendarMapResponse{Events: s.calendar.Map(req.Items)})
}
