package service

import (
	"fmt"

	"github.com/ngoldman/tripsmith/internal/dates"
	"github.com/ngoldman/tripsmith/internal/domain"
)

// InsightEngine scans a built timeline for logistics gaps and emits advisory
// suggestions. Rules are evaluated independently; adding a rule means adding
// a method and calling it from Derive. Insights never mutate trip data — the
// remediation action is a descriptor the UI may invoke.
type InsightEngine struct{}

// NewInsightEngine constructs an InsightEngine.
func NewInsightEngine() *InsightEngine {
	return &InsightEngine{}
}

// Derive runs every rule against the timeline and returns the collected
// insights. The result is recomputed from scratch on each call.
func (e *InsightEngine) Derive(days []domain.DayPlan, trip domain.TripRecord) []domain.Insight {
	byDate := make(map[dates.CalendarDate]domain.DayPlan, len(days))
	for _, day := range days {
		byDate[day.Date] = day
	}

	insights := []domain.Insight{}
	insights = append(insights, e.missingTransfers(byDate, trip)...)
	return insights
}

// missingTransfers flags every flight day that has no travel-category event:
// the traveller booked a flight but no ground transport to it. The
// remediation opens a prefilled transfer form defaulting to the flight's
// departure time.
func (e *InsightEngine) missingTransfers(byDate map[dates.CalendarDate]domain.DayPlan, trip domain.TripRecord) []domain.Insight {
	var insights []domain.Insight
	for _, seg := range trip.Flights.Segments {
		d, err := dates.Normalize(seg.Date)
		if err != nil {
			continue
		}
		day, ok := byDate[d]
		if !ok {
			continue
		}
		if hasCategory(day.Events, domain.CategoryTravel) {
			continue
		}
		insights = append(insights, domain.Insight{
			ID:          "flight-transfer-" + seg.FlightNumber,
			Kind:        domain.InsightWarning,
			Title:       "Airport transfer",
			Description: fmt.Sprintf("Flight on %s. Have you arranged ground transport?", d),
			ActionLabel: "Add",
			Action: domain.RemediationAction{
				Type:        "add_transfer",
				Date:        d,
				DefaultTime: displayTime(seg.DepartureTime),
			},
		})
	}
	return insights
}

func hasCategory(events []domain.Event, cat domain.EventCategory) bool {
	for _, e := range events {
		if e.Category == cat {
			return true
		}
	}
	return false
}
