package domain

// FactKind discriminates the closed set of trip-fact variants.
type FactKind string

// Fact kinds.
const (
	FactFlight     FactKind = "flight"
	FactHotel      FactKind = "hotel"
	FactDining     FactKind = "dining"
	FactAttraction FactKind = "attraction"
	FactFreeText   FactKind = "free_text"
	FactExternal   FactKind = "external"
)

// TripFact is the tagged union over everything a trip can contain. Each
// variant carries its own fields; the timeline builder switches on the
// concrete type and the compiler keeps the switch honest when a variant is
// added.
type TripFact interface {
	FactKind() FactKind
}

// FactKind implements TripFact.
func (FlightSegment) FactKind() FactKind { return FactFlight }

// FactKind implements TripFact.
func (HotelStay) FactKind() FactKind { return FactHotel }

// FactKind implements TripFact.
func (DiningReservation) FactKind() FactKind { return FactDining }

// FactKind implements TripFact.
func (AttractionVisit) FactKind() FactKind { return FactAttraction }

// FreeTextActivity is a single manually typed itinerary line, lifted out of
// its ItineraryDay so it can travel through the fact union on its own.
// DayID and Index route edits and deletes back to the owning entry.
type FreeTextActivity struct {
	DayID string
	Date  string
	Index int
	Text  string
}

// FactKind implements TripFact.
func (FreeTextActivity) FactKind() FactKind { return FactFreeText }

// ExternalCalendarEvent wraps an already-shaped event supplied by the
// calendar-import collaborator. The event's own Date field anchors it.
type ExternalCalendarEvent struct {
	Event Event
}

// FactKind implements TripFact.
func (ExternalCalendarEvent) FactKind() FactKind { return FactExternal }

// Facts flattens the aggregate's collections into the fact union, in a fixed
// order: flights, hotels, dining, attractions, then free-text itinerary lines.
// The order matters only for event IDs minted per day; bucketing and sorting
// do not depend on it.
func (t TripRecord) Facts() []TripFact {
	var facts []TripFact
	for _, seg := range t.Flights.Segments {
		facts = append(facts, seg)
	}
	for _, h := range t.Hotels {
		facts = append(facts, h)
	}
	for _, r := range t.Restaurants {
		facts = append(facts, r)
	}
	for _, a := range t.Attractions {
		facts = append(facts, a)
	}
	for _, day := range t.Itinerary {
		for i, line := range day.Activities {
			facts = append(facts, FreeTextActivity{
				DayID: day.ID,
				Date:  day.Date,
				Index: i,
				Text:  line,
			})
		}
	}
	return facts
}
