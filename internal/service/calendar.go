package service

import (
	"time"

	"github.com/ngoldman/tripsmith/internal/dates"
	"github.com/ngoldman/tripsmith/internal/domain"
)

// CalendarMapper converts calendar-import items into external timeline
// events. The import collaborator does the fetching; this mapping is the only
// part of calendar sync that belongs to the core.
type CalendarMapper struct {
	classify Classifier
}

// NewCalendarMapper constructs a CalendarMapper. A nil classifier falls back
// to the keyword default.
func NewCalendarMapper(classify Classifier) *CalendarMapper {
	if classify == nil {
		classify = KeywordClassifier{}
	}
	return &CalendarMapper{classify: classify}
}

// Map converts each item into an external event. Timed items keep an HH:MM
// display time; all-day items come through untimed. Items with no resolvable
// start are skipped.
func (m *CalendarMapper) Map(items []domain.CalendarImportItem) []domain.Event {
	events := make([]domain.Event, 0, len(items))
	for _, item := range items {
		day, hhmm, ok := resolveStart(item.Start)
		if !ok {
			continue
		}

		title := item.Summary
		if title == "" {
			title = "Untitled event"
		}

		events = append(events, domain.Event{
			ID:         "gcal-" + item.ID,
			SourceID:   item.ID,
			Category:   m.classify.ClassifySummary(item.Summary),
			Date:       day,
			Time:       hhmm,
			Title:      title,
			Subtitle:   item.Description,
			Location:   item.Location,
			IsExternal: true,
		})
	}
	return events
}

// resolveStart reads a calendar start boundary: DateTime for timed events
// (RFC 3339, zone offset respected), Date for all-day events.
func resolveStart(start domain.CalendarImportTime) (dates.CalendarDate, string, bool) {
	if start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, start.DateTime); err == nil {
			return dates.FromTime(t), t.Format("15:04"), true
		}
		if d, err := dates.Normalize(start.DateTime); err == nil {
			return d, displayTime(start.DateTime), true
		}
		return dates.CalendarDate{}, "", false
	}
	if start.Date != "" {
		if d, err := dates.Normalize(start.Date); err == nil {
			return d, "", true
		}
	}
	return dates.CalendarDate{}, "", false
}
