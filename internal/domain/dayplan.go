package domain

import "github.com/ngoldman/tripsmith/internal/dates"

// DayStats counts a day's events per category for the agenda-grid badges.
// Hotels counts check-ins and stay nights but not check-outs.
type DayStats struct {
	Food        int `json:"food"`
	Attractions int `json:"attractions"`
	Flights     int `json:"flights"`
	Travel      int `json:"travel"`
	Hotels      int `json:"hotels"`
}

// DayPlan is one calendar day of the synthesized timeline: the day's events
// in display order plus derived context. A DayPlan with no events is a valid
// free day, not an error.
//
// Events is sorted with the untimed hotel-stay marker first, then timed
// events by ascending time string, then untimed events last.
type DayPlan struct {
	Date            dates.CalendarDate `json:"date"`
	DisplayDate     string             `json:"display_date"` // e.g. "2 Feb"
	DayOfWeek       string             `json:"day_of_week"`  // e.g. "Monday"
	LocationContext string             `json:"location_context"`
	Events          []Event            `json:"events"`
	Stats           DayStats           `json:"stats"`
	HasHotel        bool               `json:"has_hotel"`
}
