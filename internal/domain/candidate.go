package domain

// CandidateBatch is the output of the AI extraction collaborator for one
// import run: category-tagged candidate records plus batch-level metadata.
// Every field is optional — extraction confidence varies per field and the
// reconciler must cope with whatever subset arrived.
type CandidateBatch struct {
	Categories       CandidateCategories `json:"categories"`
	ProcessedFileIDs []string            `json:"processed_file_ids,omitempty"`
	PassengerNames   []string            `json:"passenger_names,omitempty"`
}

// CandidateCategories groups candidate records by extraction category.
type CandidateCategories struct {
	Transport     []CandidateRecord `json:"transport,omitempty"`
	Accommodation []CandidateRecord `json:"accommodation,omitempty"`
	Wallet        []CandidateRecord `json:"wallet,omitempty"`
	Dining        []CandidateRecord `json:"dining,omitempty"`
	Activities    []CandidateRecord `json:"activities,omitempty"`
}

// CandidateRecord is one extracted fact awaiting reconciliation.
// Type refines the category: "flight" within transport, or a document
// category ("passport", "visa", "insurance") within wallet.
type CandidateRecord struct {
	Type  string        `json:"type,omitempty"`
	Title string        `json:"title,omitempty"`
	Data  CandidateData `json:"data"`
}

// CandidateData is the loosely typed field bag of a candidate record. The
// extractor's schema changed over time, so the same logical value can arrive
// under several names: a nested Departure endpoint on new output, flat
// DepartureTime/From fields on legacy output. The reconciler resolves each
// value through an ordered accessor chain, newest shape first.
type CandidateData struct {
	// Flight fields — nested segments are the current shape, the flat fields
	// below them are legacy.
	Segments      []CandidateSegment `json:"segments,omitempty"`
	Departure     *CandidateEndpoint `json:"departure,omitempty"`
	Arrival       *CandidateEndpoint `json:"arrival,omitempty"`
	Airline       string             `json:"airline,omitempty"`
	FlightNumber  string             `json:"flight_number,omitempty"`
	DepartureTime string             `json:"departure_time,omitempty"`
	ArrivalTime   string             `json:"arrival_time,omitempty"`
	From          string             `json:"from,omitempty"`
	To            string             `json:"to,omitempty"`

	// Accommodation fields.
	HotelName    string `json:"hotel_name,omitempty"`
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	Address      string `json:"address,omitempty"`

	// Dining / activity fields.
	Name        string `json:"name,omitempty"`
	DisplayTime string `json:"display_time,omitempty"`

	// Wallet fields.
	DocumentName string `json:"document_name,omitempty"`
}

// CandidateSegment is one flight leg inside a nested transport candidate.
// The duplicated flat fields (DepartureDate vs Departure.Date and so on)
// again reflect extractor schema drift.
type CandidateSegment struct {
	Departure            *CandidateEndpoint `json:"departure,omitempty"`
	Arrival              *CandidateEndpoint `json:"arrival,omitempty"`
	Airline              string             `json:"airline,omitempty"`
	FlightNumber         string             `json:"flight_number,omitempty"`
	DepartureDate        string             `json:"departure_date,omitempty"`
	DepartureCity        string             `json:"departure_city,omitempty"`
	ArrivalCity          string             `json:"arrival_city,omitempty"`
	DepartureIATA        string             `json:"departure_iata,omitempty"`
	ArrivalIATA          string             `json:"arrival_iata,omitempty"`
	DisplayDepartureTime string             `json:"display_departure_time,omitempty"`
	DisplayArrivalTime   string             `json:"display_arrival_time,omitempty"`
	DurationMinutes      int                `json:"duration_minutes,omitempty"`
	Duration             string             `json:"duration,omitempty"`
}

// CandidateEndpoint is the origin or destination of a flight candidate.
type CandidateEndpoint struct {
	IATA        string `json:"iata,omitempty"`
	Airport     string `json:"airport,omitempty"`
	City        string `json:"city,omitempty"`
	Date        string `json:"date,omitempty"`
	DisplayTime string `json:"display_time,omitempty"`
}
