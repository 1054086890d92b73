package domain

import "github.com/ngoldman/tripsmith/internal/dates"

// EventCategory tags a timeline event with its kind. The category drives
// in-day ordering, per-day statistics, and the icon/color the UI picks.
type EventCategory string

// Event categories.
const (
	CategoryFlight        EventCategory = "flight"
	CategoryHotelCheckIn  EventCategory = "hotel_checkin"
	CategoryHotelStay     EventCategory = "hotel_stay"
	CategoryHotelCheckOut EventCategory = "hotel_checkout"
	CategoryFood          EventCategory = "food"
	CategoryAttraction    EventCategory = "attraction"
	CategoryActivity      EventCategory = "activity"
	CategoryTravel        EventCategory = "travel"
)

// Event is the timeline projection of a trip fact onto a single day. Events
// are value objects rebuilt from scratch on every synthesis pass; they are
// never persisted.
//
// Time is a display time in "HH:MM" form; empty means untimed. Date is the
// anchor date and is only required on externally supplied events — for
// events the builder derives itself the owning DayPlan carries the date.
type Event struct {
	ID       string             `json:"id"`
	Category EventCategory      `json:"category"`
	Date     dates.CalendarDate `json:"date,omitzero"`
	Time     string             `json:"time,omitempty"`
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle,omitempty"`
	Location string             `json:"location,omitempty"`
	Price    string             `json:"price,omitempty"`

	// ExternalLink is a maps or booking URL the UI can open directly.
	ExternalLink string `json:"external_link,omitempty"`

	// Back-references to the originating fact, so edits and deletes can be
	// routed to the owning collaborator.
	SourceID      string `json:"source_id,omitempty"`
	DayID         string `json:"day_id,omitempty"`
	ActivityIndex int    `json:"activity_index,omitempty"`

	IsManual   bool `json:"is_manual,omitempty"`
	IsExternal bool `json:"is_external,omitempty"`
}
