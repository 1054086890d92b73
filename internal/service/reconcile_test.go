package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoldman/tripsmith/internal/domain"
	"github.com/ngoldman/tripsmith/internal/service"
)

// existingTrip builds a fresh copy of the merge target so tests can compare
// the input against an untouched copy after reconciling.
func existingTrip() domain.TripRecord {
	return domain.TripRecord{
		ID:   "trip-1",
		Name: "Bangkok",
		Flights: domain.TicketInfo{
			PassengerNames: []string{"Alice Cohen"},
			Segments: []domain.FlightSegment{{
				FromCode:      "TLV",
				FromCity:      "Tel Aviv",
				ToCode:        "BKK",
				ToCity:        "Bangkok",
				Date:          "2026-03-05",
				DepartureTime: "23:30",
				FlightNumber:  "LY081",
				Airline:       "EL AL",
			}},
		},
		Hotels: []domain.HotelStay{{
			ID:          "h1",
			Name:        "grand hotel paris!!",
			CheckInDate: "2026-04-01",
		}},
		SecureDocuments: []domain.SecureDocument{{
			ID:       "doc1",
			Title:    "Passport - Alice",
			Value:    "12345678",
			Category: domain.DocPassport,
		}},
		Documents: []string{"file-1"},
	}
}

func transportFlight(data domain.CandidateData) domain.CandidateBatch {
	return domain.CandidateBatch{Categories: domain.CandidateCategories{
		Transport: []domain.CandidateRecord{{Type: "flight", Data: data}},
	}}
}

// ---- flight dedup ----------------------------------------------------------

func TestReconcile_DuplicateFlightByNumberAndDate(t *testing.T) {
	existing := existingTrip()
	// Same flight, different date encoding.
	batch := transportFlight(domain.CandidateData{
		FlightNumber: "LY081",
		Departure:    &domain.CandidateEndpoint{Date: "05/03/2026"},
	})

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Len(t, merged.Flights.Segments, 1)
	assert.Equal(t, existing.Flights.Segments[0], merged.Flights.Segments[0],
		"the existing entry wins over the candidate")
}

func TestReconcile_DuplicateFlightByRouteAndTime(t *testing.T) {
	existing := existingTrip()
	// Different flight number but identical route, date, and departure time.
	batch := transportFlight(domain.CandidateData{
		FlightNumber:  "XY999",
		From:          "TLV",
		To:            "BKK",
		DepartureTime: "23:30",
		Departure:     &domain.CandidateEndpoint{Date: "2026-03-05", DisplayTime: "23:30"},
	})

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Len(t, merged.Flights.Segments, 1)
}

func TestReconcile_DuplicateFlightByCityPairCaseInsensitive(t *testing.T) {
	existing := existingTrip()
	existing.Flights.Segments[0].FlightNumber = ""
	existing.Flights.Segments[0].FromCode = ""
	existing.Flights.Segments[0].ToCode = ""
	batch := transportFlight(domain.CandidateData{
		Departure: &domain.CandidateEndpoint{City: "tel aviv", Date: "05/03/2026"},
		Arrival:   &domain.CandidateEndpoint{City: "BANGKOK"},
	})

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Len(t, merged.Flights.Segments, 1)
}

func TestReconcile_NewFlightAppendedAfterExisting(t *testing.T) {
	existing := existingTrip()
	batch := transportFlight(domain.CandidateData{
		FlightNumber: "LY082",
		From:         "BKK",
		To:           "TLV",
		Departure:    &domain.CandidateEndpoint{Date: "2026-03-15"},
	})

	merged := service.NewReconciler().Reconcile(existing, batch)

	require.Len(t, merged.Flights.Segments, 2)
	assert.Equal(t, "LY081", merged.Flights.Segments[0].FlightNumber)
	assert.Equal(t, "LY082", merged.Flights.Segments[1].FlightNumber)
}

func TestReconcile_SparseCandidateDoesNotCollapseIntoExisting(t *testing.T) {
	existing := existingTrip()
	// Nothing identifying at all: no number, codes, or cities. Must not match
	// the existing segment via empty-equals-empty comparisons.
	batch := transportFlight(domain.CandidateData{
		Departure: &domain.CandidateEndpoint{Date: "2026-03-05"},
	})

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Len(t, merged.Flights.Segments, 2)
}

// ---- flight mapping --------------------------------------------------------

func TestReconcile_NestedSegmentMapping(t *testing.T) {
	batch := transportFlight(domain.CandidateData{
		Segments: []domain.CandidateSegment{{
			Departure:       &domain.CandidateEndpoint{IATA: "TLV", City: "Tel Aviv", Date: "2026-03-05", DisplayTime: "23:30"},
			Arrival:         &domain.CandidateEndpoint{IATA: "BKK", City: "Bangkok", DisplayTime: "09:55"},
			Airline:         "EL AL",
			FlightNumber:    "LY083",
			DurationMinutes: 630,
		}},
	})

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	require.Len(t, merged.Flights.Segments, 1)
	assert.Equal(t, domain.FlightSegment{
		FromCode:      "TLV",
		FromCity:      "Tel Aviv",
		ToCode:        "BKK",
		ToCity:        "Bangkok",
		Date:          "2026-03-05",
		DepartureTime: "23:30",
		ArrivalTime:   "09:55",
		FlightNumber:  "LY083",
		Airline:       "EL AL",
		Duration:      "10h 30m",
	}, merged.Flights.Segments[0])
}

func TestReconcile_MultiLegCandidateYieldsOneSegmentPerLeg(t *testing.T) {
	batch := transportFlight(domain.CandidateData{
		Segments: []domain.CandidateSegment{
			{FlightNumber: "LY083", DepartureIATA: "TLV", ArrivalIATA: "IST", DepartureDate: "2026-03-05"},
			{FlightNumber: "TK064", DepartureIATA: "IST", ArrivalIATA: "BKK", DepartureDate: "2026-03-06"},
		},
	})

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	require.Len(t, merged.Flights.Segments, 2)
	assert.Equal(t, "TLV", merged.Flights.Segments[0].FromCode)
	assert.Equal(t, "IST", merged.Flights.Segments[1].FromCode)
}

func TestReconcile_LegacyFlightPlaceholders(t *testing.T) {
	// A transport candidate with nothing extractable still maps, with
	// placeholder codes rather than empty strings.
	batch := transportFlight(domain.CandidateData{})

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	require.Len(t, merged.Flights.Segments, 1)
	seg := merged.Flights.Segments[0]
	assert.Equal(t, "ORG", seg.FromCode)
	assert.Equal(t, "DST", seg.ToCode)
	assert.Equal(t, "0h", seg.Duration)
}

func TestReconcile_CityCodeDerivedWhenNoAirportCode(t *testing.T) {
	batch := transportFlight(domain.CandidateData{
		Departure: &domain.CandidateEndpoint{City: "Bangkok"},
		Arrival:   &domain.CandidateEndpoint{City: "Tel Aviv"},
	})

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	require.Len(t, merged.Flights.Segments, 1)
	assert.Equal(t, "BAN", merged.Flights.Segments[0].FromCode)
	assert.Equal(t, "TEL", merged.Flights.Segments[0].ToCode)
}

func TestReconcile_NonFlightTransportRecordIsIgnored(t *testing.T) {
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Transport: []domain.CandidateRecord{{Type: "train", Data: domain.CandidateData{From: "Paris", To: "Lyon"}}},
	}}

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	assert.Empty(t, merged.Flights.Segments)
}

// ---- hotels ----------------------------------------------------------------

func TestReconcile_DuplicateHotelByFuzzyNameAndDate(t *testing.T) {
	existing := existingTrip()
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Accommodation: []domain.CandidateRecord{{Data: domain.CandidateData{
			HotelName:   "Grand Hotel Paris",
			CheckInDate: "2026-04-01T15:00:00",
		}}},
	}}

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Len(t, merged.Hotels, 1)
}

func TestReconcile_SameHotelDifferentDateIsNotDuplicate(t *testing.T) {
	existing := existingTrip()
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Accommodation: []domain.CandidateRecord{{Data: domain.CandidateData{
			HotelName:   "Grand Hotel Paris",
			CheckInDate: "2026-04-08",
		}}},
	}}

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Len(t, merged.Hotels, 2)
}

func TestReconcile_NewHotelMapping(t *testing.T) {
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Accommodation: []domain.CandidateRecord{{Data: domain.CandidateData{
			HotelName:    "Mandarin Oriental",
			CheckInDate:  "2026-03-05T15:00:00",
			CheckOutDate: "2026-03-09T11:00:00",
			Address:      "48 Oriental Ave, Bangkok",
		}}},
	}}

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	require.Len(t, merged.Hotels, 1)
	h := merged.Hotels[0]
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "Mandarin Oriental", h.Name)
	assert.Equal(t, "2026-03-05", h.CheckInDate, "time-of-day component stripped")
	assert.Equal(t, "2026-03-09", h.CheckOutDate)
	assert.Equal(t, "48 Oriental Ave, Bangkok", h.Address)
}

// ---- documents -------------------------------------------------------------

func TestReconcile_DuplicateDocumentByTitle(t *testing.T) {
	existing := existingTrip()
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Wallet: []domain.CandidateRecord{{Type: "visa", Title: "Passport - Alice"}},
	}}

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Len(t, merged.SecureDocuments, 1)
}

func TestReconcile_DuplicateDocumentByCategoryAndValue(t *testing.T) {
	existing := existingTrip()
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Wallet: []domain.CandidateRecord{{
			Type:  "passport",
			Title: "Alice's Passport",
			Data:  domain.CandidateData{DisplayTime: "12345678"},
		}},
	}}

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Len(t, merged.SecureDocuments, 1)
}

func TestReconcile_NewDocumentMappingDefaults(t *testing.T) {
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Wallet: []domain.CandidateRecord{{Type: "credit_card"}},
	}}

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	require.Len(t, merged.SecureDocuments, 1)
	doc := merged.SecureDocuments[0]
	assert.Equal(t, "Document", doc.Title)
	assert.Equal(t, "No details", doc.Value)
	assert.Equal(t, domain.DocOther, doc.Category, "unrecognized types fold into other")
}

func TestReconcile_KnownDocumentCategoriesPassThrough(t *testing.T) {
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Wallet: []domain.CandidateRecord{
			{Type: "passport", Title: "Passport"},
			{Type: "visa", Title: "Visa"},
			{Type: "insurance", Title: "Policy"},
		},
	}}

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	require.Len(t, merged.SecureDocuments, 3)
	assert.Equal(t, domain.DocPassport, merged.SecureDocuments[0].Category)
	assert.Equal(t, domain.DocVisa, merged.SecureDocuments[1].Category)
	assert.Equal(t, domain.DocInsurance, merged.SecureDocuments[2].Category)
}

// ---- dining, activities, metadata ------------------------------------------

func TestReconcile_DiningImportedWithoutDedup(t *testing.T) {
	existing := domain.TripRecord{Restaurants: []domain.DiningReservation{
		{ID: "r1", Name: "Sukiyabashi"},
	}}
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Dining: []domain.CandidateRecord{{Data: domain.CandidateData{
			Name:        "Sukiyabashi",
			Address:     "Ginza, Tokyo",
			DisplayTime: "19:00",
		}}},
	}}

	merged := service.NewReconciler().Reconcile(existing, batch)

	require.Len(t, merged.Restaurants, 2)
	imported := merged.Restaurants[1]
	assert.NotEmpty(t, imported.ID)
	assert.Equal(t, "Sukiyabashi", imported.Name)
	assert.Equal(t, "Ginza, Tokyo", imported.Location)
	assert.Equal(t, "19:00", imported.ReservationTime)
	assert.Equal(t, "Imported via AI", imported.Notes)
}

func TestReconcile_ActivityImported(t *testing.T) {
	batch := domain.CandidateBatch{Categories: domain.CandidateCategories{
		Activities: []domain.CandidateRecord{{Data: domain.CandidateData{
			Name:        "Grand Palace tour",
			Address:     "Na Phra Lan Rd, Bangkok",
			DisplayTime: "09:00",
		}}},
	}}

	merged := service.NewReconciler().Reconcile(domain.TripRecord{}, batch)

	require.Len(t, merged.Attractions, 1)
	a := merged.Attractions[0]
	assert.Equal(t, "Grand Palace tour", a.Name)
	assert.Equal(t, "Imported via AI", a.Description)
	assert.Equal(t, "09:00", a.ScheduledTime)
}

func TestReconcile_PassengerNamesUnion(t *testing.T) {
	existing := existingTrip()
	batch := domain.CandidateBatch{PassengerNames: []string{"Alice Cohen", "Noam Levi"}}

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Equal(t, []string{"Alice Cohen", "Noam Levi"}, merged.Flights.PassengerNames)
}

func TestReconcile_ProcessedFileIDsUnion(t *testing.T) {
	existing := existingTrip()
	batch := domain.CandidateBatch{ProcessedFileIDs: []string{"file-1", "file-2"}}

	merged := service.NewReconciler().Reconcile(existing, batch)

	assert.Equal(t, []string{"file-1", "file-2"}, merged.Documents)
}

// ---- merge contract --------------------------------------------------------

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	existing := existingTrip()
	batch := domain.CandidateBatch{
		PassengerNames:   []string{"Noam Levi"},
		ProcessedFileIDs: []string{"file-2"},
		Categories: domain.CandidateCategories{
			Transport: []domain.CandidateRecord{{Type: "flight", Data: domain.CandidateData{
				FlightNumber: "LY082",
				Departure:    &domain.CandidateEndpoint{Date: "2026-03-15"},
			}}},
			Accommodation: []domain.CandidateRecord{{Data: domain.CandidateData{
				HotelName:   "Mandarin Oriental",
				CheckInDate: "2026-03-05",
			}}},
			Wallet: []domain.CandidateRecord{{Type: "visa", Title: "Visa - Thailand"}},
			Dining: []domain.CandidateRecord{{Data: domain.CandidateData{Name: "Jay Fai"}}},
		},
	}

	_ = service.NewReconciler().Reconcile(existing, batch)

	assert.Equal(t, existingTrip(), existing, "input aggregate must come back untouched")
}

func TestReconcile_EmptyBatchReturnsEquivalentTrip(t *testing.T) {
	existing := existingTrip()

	merged := service.NewReconciler().Reconcile(existing, domain.CandidateBatch{})

	assert.Equal(t, existing.Flights.Segments, merged.Flights.Segments)
	assert.Equal(t, existing.Hotels, merged.Hotels)
	assert.Equal(t, existing.SecureDocuments, merged.SecureDocuments)
	assert.Equal(t, existing.Documents, merged.Documents)
	assert.Equal(t, existing.Name, merged.Name)
}
