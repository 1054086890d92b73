// Package domain contains the core data types for the trip planner.
// This package depends only on internal/dates and is imported by every other
// internal package (service, handler).
package domain

// TripRecord is the durable trip aggregate. It is owned by the persistence
// collaborator; the planner core receives one, derives timelines from it, or
// returns an updated copy after reconciliation. The core never mutates a
// TripRecord it was handed.
type TripRecord struct {
	ID                 string              `json:"id,omitempty"`
	Name               string              `json:"name"`
	Dates              string              `json:"dates,omitempty"` // "<start> - <end>", any supported date format per side
	Destination        string              `json:"destination,omitempty"`
	DestinationEnglish string              `json:"destination_english,omitempty"`
	Flights            TicketInfo          `json:"flights"`
	Hotels             []HotelStay         `json:"hotels,omitempty"`
	Restaurants        []DiningReservation `json:"restaurants,omitempty"`
	Attractions        []AttractionVisit   `json:"attractions,omitempty"`
	Itinerary          []ItineraryDay      `json:"itinerary,omitempty"`
	Documents          []string            `json:"documents,omitempty"` // processed import-file IDs
	SecureDocuments    []SecureDocument    `json:"secure_documents,omitempty"`
}

// TicketInfo groups booking-level flight metadata with its segments.
type TicketInfo struct {
	PassengerNames []string        `json:"passenger_names,omitempty"`
	PNR            string          `json:"pnr,omitempty"`
	Segments       []FlightSegment `json:"segments,omitempty"`
}

// FlightSegment is one leg of a booked flight. Date and the two time fields
// are kept as received; they are normalized at the point of comparison.
type FlightSegment struct {
	FromCode      string `json:"from_code,omitempty"`
	FromCity      string `json:"from_city,omitempty"`
	ToCode        string `json:"to_code,omitempty"`
	ToCity        string `json:"to_city,omitempty"`
	Date          string `json:"date"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	FlightNumber  string `json:"flight_number,omitempty"`
	Airline       string `json:"airline,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

// HotelStay is a booked accommodation. The stay anchors to every night from
// check-in (inclusive) to check-out (exclusive of the check-out night).
type HotelStay struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name"`
	Address          string `json:"address,omitempty"`
	CheckInDate      string `json:"check_in_date"`
	CheckOutDate     string `json:"check_out_date"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	RoomType         string `json:"room_type,omitempty"`
	Nights           int    `json:"nights,omitempty"`
}

// DiningReservation is a restaurant booking. ReservationTime may be empty;
// the timeline falls back to a dinner-hour default.
type DiningReservation struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	Cuisine         string `json:"cuisine,omitempty"`
	Location        string `json:"location,omitempty"`
	ReservationDate string `json:"reservation_date,omitempty"`
	ReservationTime string `json:"reservation_time,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// AttractionVisit is a scheduled attraction or activity booking.
type AttractionVisit struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location,omitempty"`
	Price         string `json:"price,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
}

// ItineraryDay is a free-text day plan: a date plus manually typed activity
// lines, each optionally prefixed with an H:MM time.
type ItineraryDay struct {
	ID         string   `json:"id,omitempty"`
	Day        int      `json:"day,omitempty"`
	Date       string   `json:"date"`
	Title      string   `json:"title,omitempty"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes,omitempty"`
}

// DocumentCategory classifies a secure document.
type DocumentCategory string

// Document categories recognized by the extraction collaborator.
const (
	DocPassport   DocumentCategory = "passport"
	DocVisa       DocumentCategory = "visa"
	DocInsurance  DocumentCategory = "insurance"
	DocCreditCard DocumentCategory = "credit_card"
	DocOther      DocumentCategory = "other"
)

// SecureDocument is a vault entry: a passport number, visa reference,
// insurance policy, or similar.
type SecureDocument struct {
	ID       string           `json:"id,omitempty"`
	Title    string           `json:"title"`
	Value    string           `json:"value,omitempty"`
	Category DocumentCategory `json:"category,omitempty"`
}
