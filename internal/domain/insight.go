package domain

import "github.com/ngoldman/tripsmith/internal/dates"

// InsightKind grades an insight's urgency.
type InsightKind string

// Insight kinds.
const (
	InsightWarning    InsightKind = "warning"
	InsightInfo       InsightKind = "info"
	InsightSuggestion InsightKind = "suggestion"
)

// RemediationAction describes what the UI should do when the user accepts an
// insight. It is a descriptor only — insights never mutate trip data
// themselves.
type RemediationAction struct {
	Type        string             `json:"type"` // e.g. "add_transfer"
	Date        dates.CalendarDate `json:"date,omitzero"`
	DefaultTime string             `json:"default_time,omitempty"`
}

// Insight is a derived advisory notice. Insights are regenerated on every
// timeline rebuild and are never stored.
type Insight struct {
	ID          string            `json:"id"`
	Kind        InsightKind       `json:"kind"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ActionLabel string            `json:"action_label,omitempty"`
	Action      RemediationAction `json:"action"`
}
