// Package handler implements the HTTP boundary of the planner. The API is
// stateless: every request carries the full trip aggregate in, and the
// response carries derived data (or an updated aggregate) back out for the
// calling collaborator to persist or render.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ngoldman/tripsmith/internal/domain"
)

// TimelineSynthesizer defines the timeline operation the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type TimelineSynthesizer interface {
	Build(trip domain.TripRecord, external []domain.Event) []domain.DayPlan
}

// InsightDeriver derives advisory insights from a built timeline.
type InsightDeriver interface {
	Derive(days []domain.DayPlan, trip domain.TripRecord) []domain.Insight
}

// TripReconciler merges extracted candidates into a trip aggregate.
type TripReconciler interface {
	Reconcile(existing domain.TripRecord, batch domain.CandidateBatch) domain.TripRecord
}

// CalendarEventMapper converts calendar-import items into external events.
type CalendarEventMapper interface {
	Map(items []domain.CalendarImportItem) []domain.Event
}

// Server holds the handlers for all API endpoints. Methods live in
// endpoint-specific files but all operate on this struct.
type Server struct {
	timeline  TimelineSynthesizer
	insights  InsightDeriver
	reconcile TripReconciler
	calendar  CalendarEventMapper
}

// NewServer constructs the Server with all its dependencies.
func NewServer(timeline TimelineSynthesizer, insights InsightDeriver, reconcile TripReconciler, calendar CalendarEventMapper) *Server {
	return &Server{
		timeline:  timeline,
		insights:  insights,
		reconcile: reconcile,
		calendar:  calendar,
	}
}

// Routes returns the API route tree. Cross-cutting middleware (request IDs,
// logging, CORS, body limits) is applied by the caller in main.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/timeline", s.SynthesizeTimeline)
		r.Post("/reconcile", s.ReconcileTrip)
		r.Post("/calendar/map", s.MapCalendarEvents)
	})
	return r
}
