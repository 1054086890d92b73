package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ngoldman/tripsmith/internal/dates"
	"github.com/ngoldman/tripsmith/internal/domain"
)

// Fixed display times for events whose source carries none.
const (
	hotelCheckInTime  = "14:00"
	hotelCheckOutTime = "11:00"
	diningDefaultTime = "20:00"
	attractionDefault = "10:00"
)

// TimelineBuilder synthesizes per-day agendas from a trip aggregate and a set
// of externally imported events. Build is a pure function of its input plus
// the injected clock: identical input yields identical output, so callers can
// rebuild on every edit.
type TimelineBuilder struct {
	classify Classifier
	now      func() time.Time
}

// NewTimelineBuilder constructs a TimelineBuilder. A nil classifier falls
// back to the keyword default; a nil clock falls back to time.Now. Tests
// should inject a fixed clock so the default-range fallback is reproducible.
func NewTimelineBuilder(classify Classifier, now func() time.Time) *TimelineBuilder {
	if classify == nil {
		classify = KeywordClassifier{}
	}
	if now == nil {
		now = time.Now
	}
	return &TimelineBuilder{classify: classify, now: now}
}

// Build buckets every trip fact and external event into per-day, time-ordered
// agendas spanning the trip's declared date range inclusive. Days with no
// events are kept — a free day is a valid plan. Facts with unresolvable
// dates are skipped; facts dated outside the range are silently dropped.
func (b *TimelineBuilder) Build(trip domain.TripRecord, external []domain.Event) []domain.DayPlan {
	start, end := dates.ParseRange(trip.Dates, b.now())

	plans := make(map[dates.CalendarDate]*domain.DayPlan)
	var order []dates.CalendarDate
	for d := start; !d.After(end); d = d.AddDays(1) {
		plans[d] = &domain.DayPlan{
			Date:        d,
			DisplayDate: d.Time().Format("2 Jan"),
			DayOfWeek:   d.Weekday().String(),
			Events:      []domain.Event{},
		}
		order = append(order, d)
	}

	// hotelNames/hotelCities feed the location-context chain after bucketing.
	hotelNames := make(map[dates.CalendarDate]string)  // check-in day → hotel name
	hotelCities := make(map[dates.CalendarDate]string) // stay night → city

	facts := trip.Facts()
	for _, ev := range external {
		ext := ev
		ext.IsExternal = true
		facts = append(facts, domain.ExternalCalendarEvent{Event: ext})
	}

	for _, fact := range facts {
		switch f := fact.(type) {
		case domain.FlightSegment:
			b.ingestFlight(plans, f)
		case domain.HotelStay:
			b.ingestHotel(plans, f, hotelNames, hotelCities)
		case domain.DiningReservation:
			b.ingestDining(plans, f)
		case domain.AttractionVisit:
			b.ingestAttraction(plans, f)
		case domain.FreeTextActivity:
			b.ingestFreeText(plans, f)
		case domain.ExternalCalendarEvent:
			if plan, ok := plans[f.Event.Date]; ok {
				plan.Events = append(plan.Events, f.Event)
			}
		}
	}

	out := make([]domain.DayPlan, 0, len(order))
	for i, d := range order {
		plan := plans[d]
		sortDayEvents(plan.Events)
		plan.Stats = countStats(plan.Events)
		plan.LocationContext = locationContext(*plan, trip, hotelNames[d], hotelCities[d], i, len(order))
		out = append(out, *plan)
	}
	return out
}

// addToDay resolves the raw date and appends the event to the matching day.
// Both failure modes are silent: an unparsable date skips the fact, a date
// outside the pre-populated range drops it.
func addToDay(plans map[dates.CalendarDate]*domain.DayPlan, rawDate string, ev domain.Event) {
	d, err := dates.Normalize(rawDate)
	if err != nil {
		return
	}
	plan, ok := plans[d]
	if !ok {
		return
	}
	plan.Events = append(plan.Events, ev)
}

func (b *TimelineBuilder) ingestFlight(plans map[dates.CalendarDate]*domain.DayPlan, f domain.FlightSegment) {
	dest := firstNonEmpty(f.ToCity, f.ToCode, "destination")
	addToDay(plans, f.Date, domain.Event{
		ID:       "flight-dep-" + f.FlightNumber,
		Category: domain.CategoryFlight,
		Time:     displayTime(f.DepartureTime),
		Title:    "Flight to " + dest,
		Subtitle: strings.TrimSpace("Departure: " + strings.TrimSpace(f.Airline+" "+f.FlightNumber)),
		Location: f.FromCode + " ➔ " + f.ToCode,
		SourceID: f.FlightNumber,
	})
}

func (b *TimelineBuilder) ingestHotel(plans map[dates.CalendarDate]*domain.DayPlan, h domain.HotelStay, names, cities map[dates.CalendarDate]string) {
	mapsURL := "https://www.google.com/maps/search/?api=1&query=" + strings.ReplaceAll(strings.TrimSpace(h.Name+" "+h.Address), " ", "+")

	addToDay(plans, h.CheckInDate, domain.Event{
		ID:           "hotel-in-" + h.ID,
		Category:     domain.CategoryHotelCheckIn,
		Time:         hotelCheckInTime,
		Title:        "Check-in: " + h.Name,
		Location:     h.Address,
		ExternalLink: mapsURL,
		SourceID:     h.ID,
	})
	addToDay(plans, h.CheckOutDate, domain.Event{
		ID:           "hotel-out-" + h.ID,
		Category:     domain.CategoryHotelCheckOut,
		Time:         hotelCheckOutTime,
		Title:        "Check-out: " + h.Name,
		ExternalLink: mapsURL,
		SourceID:     h.ID,
	})

	checkIn, errIn := dates.Normalize(h.CheckInDate)
	checkOut, errOut := dates.Normalize(h.CheckOutDate)
	if errIn != nil || errOut != nil {
		return
	}

	city := h.Name
	if h.Address != "" {
		city = strings.TrimSpace(strings.Split(h.Address, ",")[0])
	}

	for d := checkIn; !d.After(checkOut); d = d.AddDays(1) {
		plan, ok := plans[d]
		if !ok {
			continue
		}
		// The traveller sleeps here every night except check-out day.
		if d != checkOut {
			plan.HasHotel = true
			cities[d] = city
		}
		if d == checkIn {
			names[d] = h.Name
		}
		if d != checkIn && d != checkOut {
			stayID := fmt.Sprintf("stay-%s-%s", h.ID, d)
			if !hasEventID(plan.Events, stayID) {
				plan.Events = append(plan.Events, domain.Event{
					ID:           stayID,
					Category:     domain.CategoryHotelStay,
					Title:        "Staying at " + h.Name,
					Location:     h.Address,
					ExternalLink: mapsURL,
					SourceID:     h.ID,
				})
			}
		}
	}
}

func (b *TimelineBuilder) ingestDining(plans map[dates.CalendarDate]*domain.DayPlan, r domain.DiningReservation) {
	if r.ReservationDate == "" {
		return
	}
	addToDay(plans, r.ReservationDate, domain.Event{
		ID:       r.ID,
		Category: domain.CategoryFood,
		Time:     firstNonEmpty(r.ReservationTime, diningDefaultTime),
		Title:    r.Name,
		Subtitle: r.Cuisine,
		Location: r.Location,
		SourceID: r.ID,
	})
}

func (b *TimelineBuilder) ingestAttraction(plans map[dates.CalendarDate]*domain.DayPlan, a domain.AttractionVisit) {
	if a.ScheduledDate == "" {
		return
	}
	addToDay(plans, a.ScheduledDate, domain.Event{
		ID:       a.ID,
		Category: domain.CategoryAttraction,
		Time:     firstNonEmpty(a.ScheduledTime, attractionDefault),
		Title:    a.Name,
		Price:    a.Price,
		Location: a.Location,
		SourceID: a.ID,
	})
}

func (b *TimelineBuilder) ingestFreeText(plans map[dates.CalendarDate]*domain.DayPlan, f domain.FreeTextActivity) {
	hhmm, text := splitLeadingTime(f.Text)
	addToDay(plans, f.Date, domain.Event{
		ID:            fmt.Sprintf("manual-%s-%d", f.DayID, f.Index),
		Category:      b.classify.Classify(text),
		Time:          hhmm,
		Title:         text,
		IsManual:      true,
		DayID:         f.DayID,
		ActivityIndex: f.Index,
	})
}

// sortDayEvents orders a day's events for display: the untimed hotel-stay
// marker first, timed events by ascending time string, untimed events last.
func sortDayEvents(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return eventSortKey(events[i]) < eventSortKey(events[j])
	})
}

// eventSortKey encodes the tie-break rule as a sortable string.
func eventSortKey(e domain.Event) string {
	switch {
	case e.Category == domain.CategoryHotelStay && e.Time == "":
		return "0"
	case e.Time == "":
		return "2"
	default:
		return "1" + e.Time
	}
}

func countStats(events []domain.Event) domain.DayStats {
	var s domain.DayStats
	for _, e := range events {
		switch e.Category {
		case domain.CategoryFood:
			s.Food++
		case domain.CategoryAttraction:
			s.Attractions++
		case domain.CategoryFlight:
			s.Flights++
		case domain.CategoryTravel:
			s.Travel++
		case domain.CategoryHotelCheckIn, domain.CategoryHotelStay:
			s.Hotels++
		}
	}
	return s
}

// locationContext derives the day's context line. Priorities: flight day,
// hotel check-in, free day, a single self-explanatory event, dominant
// category, then the trip's primary destination.
func locationContext(day domain.DayPlan, trip domain.TripRecord, hotelName, hotelCity string, dayIndex, totalDays int) string {
	dest := primaryDestination(trip)

	for _, e := range day.Events {
		if e.Category == domain.CategoryFlight {
			if dayIndex >= totalDays-2 {
				return "Return flight"
			}
			if e.Title != "" {
				return e.Title
			}
			return "In transit"
		}
	}

	for _, e := range day.Events {
		if e.Category == domain.CategoryHotelCheckIn {
			if hotelName != "" {
				return "Hotel " + hotelName
			}
			return "Check-in day"
		}
	}

	if len(day.Events) == 0 {
		return "Free day in " + dest
	}

	if len(day.Events) == 1 {
		e := day.Events[0]
		switch {
		case e.Category == domain.CategoryTravel:
			return "Transfer"
		case e.Category == domain.CategoryHotelStay:
			return firstNonEmpty(hotelCity, dest)
		case e.Title != "" && len(e.Title) < 30:
			return e.Title
		}
	}

	stats := countStats(day.Events)
	switch {
	case stats.Attractions >= 2:
		return "Sightseeing in " + dest
	case stats.Food >= 2:
		return "Food day in " + dest
	case len(day.Events) >= 3:
		return "Activity day in " + dest
	}
	return firstNonEmpty(hotelCity, dest)
}

// primaryDestination prefers the latin destination name and falls back to the
// part of the display destination before the first dash.
func primaryDestination(trip domain.TripRecord) string {
	if trip.DestinationEnglish != "" {
		return trip.DestinationEnglish
	}
	return strings.TrimSpace(strings.Split(trip.Destination, "-")[0])
}

var leadingTimeRe = regexp.MustCompile(`^(\d{1,2}:\d{2})\s*-?\s*(.*)`)

// splitLeadingTime extracts an H:MM prefix (with optional trailing separator)
// from a free-text line. "08:30 Taxi to airport" → ("08:30", "Taxi to airport").
// Lines without a time prefix come back whole and untimed.
func splitLeadingTime(text string) (hhmm, rest string) {
	m := leadingTimeRe.FindStringSubmatch(text)
	if m == nil {
		return "", text
	}
	return m[1], m[2]
}

var hhmmPrefixRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)

// displayTime reduces whatever a source stored as a time — "9:30", "09:30:00",
// or a full ISO timestamp — to a display "HH:MM". Unrecognized input yields
// the untimed sentinel (empty string).
func displayTime(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if m := hhmmPrefixRe.FindStringSubmatch(s); m != nil {
		hh := m[1]
		if len(hh) == 1 {
			hh = "0" + hh
		}
		return hh + ":" + m[2]
	}
	if strings.Contains(s, "T") {
		if d, err := time.Parse(time.RFC3339, s); err == nil {
			return d.Format("15:04")
		}
		if d, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
			return d.Format("15:04")
		}
	}
	return ""
}

// firstNonEmpty returns the first non-empty value in the chain. It is the
// backbone of every field-priority fallback in this package: list accessors
// newest-schema-first and the right value wins regardless of which extractor
// generation produced the record.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func hasEventID(events []domain.Event, id string) bool {
	for _, e := range events {
		if e.ID == id {
			return true
		}
	}
	return false
}
