package domain

// CalendarImportItem mirrors the event shape the calendar-import collaborator
// hands over (a Google-Calendar-style item). Exactly one of Start.DateTime
// and Start.Date is set: DateTime for timed events, Date for all-day events.
type CalendarImportItem struct {
	ID          string             `json:"id"`
	Summary     string             `json:"summary"`
	Description string             `json:"description,omitempty"`
	Location    string             `json:"location,omitempty"`
	Start       CalendarImportTime `json:"start"`
	End         CalendarImportTime `json:"end"`
}

// CalendarImportTime is a calendar item boundary: an RFC 3339 instant for
// timed events or a bare YYYY-MM-DD for all-day events.
type CalendarImportTime struct {
	DateTime string `json:"date_time,omitempty"`
	Date     string `json:"date,omitempty"`
}
