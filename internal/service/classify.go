// Package service contains the planner's synthesis and reconciliation logic.
// Everything here is a pure function over in-memory data: no I/O, no shared
// mutable state. Services accept the trip aggregate and return fresh values;
// persistence and rendering belong to the surrounding collaborators.
package service

import (
	"strings"

	"github.com/ngoldman/tripsmith/internal/domain"
)

// Classifier infers an event category from free text. It is a swappable
// strategy: the default keyword implementation is heuristic and
// language-specific, and the builder must not care which one is plugged in.
type Classifier interface {
	// Classify categorizes a manually typed itinerary line.
	Classify(text string) domain.EventCategory

	// ClassifySummary categorizes an imported calendar event by its summary.
	ClassifySummary(summary string) domain.EventCategory
}

// Keyword vocabularies, lowercase. Hebrew entries match the manual-entry
// habits of the original user base; substring matching keeps the check
// language-agnostic.
var (
	flightKeywords = []string{"flight", "טיסה"}
	travelKeywords = []string{"transfer", "driver", "taxi", "shuttle", "נסיעה", "הסעה", "מונית"}
	hotelKeywords  = []string{"hotel", "מלון"}
	foodKeywords   = []string{"dinner", "lunch", "restaurant", "מסעדה"}
)

// KeywordClassifier is the default Classifier: case-insensitive substring
// matching against fixed transport and venue vocabularies. Manually typed
// flight or transfer lines end up visually matching their structured
// counterparts on the timeline.
type KeywordClassifier struct{}

// Classify returns flight or travel when the text mentions one, and activity
// otherwise.
func (KeywordClassifier) Classify(text string) domain.EventCategory {
	lower := strings.ToLower(text)
	if containsAny(lower, flightKeywords) {
		return domain.CategoryFlight
	}
	if containsAny(lower, travelKeywords) {
		return domain.CategoryTravel
	}
	return domain.CategoryActivity
}

// ClassifySummary maps a calendar event summary onto a timeline category.
// Calendar events default to activity rather than travel: an unrecognized
// appointment is more likely a plan than a transfer.
func (KeywordClassifier) ClassifySummary(summary string) domain.EventCategory {
	lower := strings.ToLower(summary)
	switch {
	case containsAny(lower, flightKeywords):
		return domain.CategoryFlight
	case containsAny(lower, hotelKeywords):
		return domain.CategoryHotelStay
	case containsAny(lower, foodKeywords):
		return domain.CategoryFood
	default:
		return domain.CategoryActivity
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
