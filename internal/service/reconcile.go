package service

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ngoldman/tripsmith/internal/dates"
	"github.com/ngoldman/tripsmith/internal/domain"
)

// Reconciler merges a batch of extracted candidate records into an existing
// trip aggregate. The merge is additive-only: existing entries are never
// deleted or overwritten, duplicates are discarded in favor of what is
// already there, and the input aggregate is never mutated — a fresh
// TripRecord comes back.
type Reconciler struct {
	newID func() string
}

// NewReconciler constructs a Reconciler minting uuid identifiers for new
// entries.
func NewReconciler() *Reconciler {
	return &Reconciler{newID: uuid.NewString}
}

// Reconcile maps each candidate into the trip's native fact shape, drops the
// ones already present, and appends the rest after the existing entries in
// supplied order. Passenger names and processed-document IDs merge as sets.
// Dining and activity candidates are imported without record-level dedup —
// duplicate restaurant bookings are rare enough that the original product
// never needed it.
func (r *Reconciler) Reconcile(existing domain.TripRecord, batch domain.CandidateBatch) domain.TripRecord {
	merged := existing

	segments := slices.Clone(existing.Flights.Segments)
	for _, cand := range r.mapFlights(batch.Categories.Transport) {
		if !isDuplicateFlight(existing.Flights.Segments, cand) {
			segments = append(segments, cand)
		}
	}
	merged.Flights.Segments = segments
	merged.Flights.PassengerNames = unionStrings(existing.Flights.PassengerNames, batch.PassengerNames)

	hotels := slices.Clone(existing.Hotels)
	for _, cand := range r.mapHotels(batch.Categories.Accommodation) {
		if !isDuplicateHotel(existing.Hotels, cand) {
			hotels = append(hotels, cand)
		}
	}
	merged.Hotels = hotels

	docs := slices.Clone(existing.SecureDocuments)
	for _, cand := range r.mapDocuments(batch.Categories.Wallet) {
		if !isDuplicateDocument(existing.SecureDocuments, cand) {
			docs = append(docs, cand)
		}
	}
	merged.SecureDocuments = docs

	if dining := r.mapDining(batch.Categories.Dining); len(dining) > 0 {
		merged.Restaurants = append(slices.Clone(existing.Restaurants), dining...)
	}
	if visits := r.mapActivities(batch.Categories.Activities); len(visits) > 0 {
		merged.Attractions = append(slices.Clone(existing.Attractions), visits...)
	}

	merged.Documents = unionStrings(existing.Documents, batch.ProcessedFileIDs)

	return merged
}

// ---- candidate mapping -----------------------------------------------------
//
// Each field resolves through an ordered fallback chain, newest extractor
// schema first: nested endpoint fields, then flat per-segment fields, then
// legacy flat record fields, then a placeholder. The chains are spelled out
// once per field here and nowhere else.

func (r *Reconciler) mapFlights(records []domain.CandidateRecord) []domain.FlightSegment {
	var out []domain.FlightSegment
	for _, rec := range records {
		if rec.Type != "flight" {
			continue
		}
		if len(rec.Data.Segments) > 0 {
			for _, seg := range rec.Data.Segments {
				out = append(out, mapNestedSegment(seg))
			}
			continue
		}
		out = append(out, mapLegacyFlight(rec.Data))
	}
	return out
}

func mapNestedSegment(seg domain.CandidateSegment) domain.FlightSegment {
	dep := endpoint(seg.Departure)
	arr := endpoint(seg.Arrival)
	return domain.FlightSegment{
		FromCode:      firstNonEmpty(dep.IATA, dep.Airport, seg.DepartureIATA, cityCode(dep.City), cityCode(seg.DepartureCity), "ORG"),
		ToCode:        firstNonEmpty(arr.IATA, arr.Airport, seg.ArrivalIATA, cityCode(arr.City), cityCode(seg.ArrivalCity), "DST"),
		Date:          firstNonEmpty(dep.Date, seg.DepartureDate),
		Airline:       seg.Airline,
		FlightNumber:  seg.FlightNumber,
		DepartureTime: firstNonEmpty(dep.DisplayTime, seg.DisplayDepartureTime, dep.Date),
		ArrivalTime:   firstNonEmpty(arr.DisplayTime, seg.DisplayArrivalTime, arr.Date),
		FromCity:      firstNonEmpty(dep.City, seg.DepartureCity),
		ToCity:        firstNonEmpty(arr.City, seg.ArrivalCity),
		Duration:      segmentDuration(seg),
	}
}

func mapLegacyFlight(d domain.CandidateData) domain.FlightSegment {
	dep := endpoint(d.Departure)
	arr := endpoint(d.Arrival)
	return domain.FlightSegment{
		FromCode:      firstNonEmpty(dep.Airport, d.From, cityCode(dep.City), "ORG"),
		ToCode:        firstNonEmpty(arr.Airport, d.To, cityCode(arr.City), "DST"),
		Date:          firstNonEmpty(dep.Date, d.DepartureTime),
		Airline:       d.Airline,
		FlightNumber:  d.FlightNumber,
		DepartureTime: firstNonEmpty(dep.DisplayTime, d.DepartureTime),
		ArrivalTime:   firstNonEmpty(arr.DisplayTime, d.ArrivalTime),
		FromCity:      firstNonEmpty(dep.City, d.From),
		ToCity:        firstNonEmpty(arr.City, d.To),
		Duration:      "0h",
	}
}

func (r *Reconciler) mapHotels(records []domain.CandidateRecord) []domain.HotelStay {
	out := make([]domain.HotelStay, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.HotelStay{
			ID:           r.newID(),
			Name:         rec.Data.HotelName,
			CheckInDate:  stripTimeComponent(rec.Data.CheckInDate),
			CheckOutDate: stripTimeComponent(rec.Data.CheckOutDate),
			Address:      rec.Data.Address,
			Nights:       1,
		})
	}
	return out
}

func (r *Reconciler) mapDocuments(records []domain.CandidateRecord) []domain.SecureDocument {
	out := make([]domain.SecureDocument, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.SecureDocument{
			ID:       r.newID(),
			Title:    firstNonEmpty(rec.Title, rec.Data.DocumentName, "Document"),
			Value:    firstNonEmpty(rec.Data.DisplayTime, "No details"),
			Category: documentCategory(rec.Type),
		})
	}
	return out
}

func (r *Reconciler) mapDining(records []domain.CandidateRecord) []domain.DiningReservation {
	out := make([]domain.DiningReservation, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.DiningReservation{
			ID:              r.newID(),
			Name:            rec.Data.Name,
			Location:        rec.Data.Address,
			ReservationTime: rec.Data.DisplayTime,
			Notes:           "Imported via AI",
		})
	}
	return out
}

func (r *Reconciler) mapActivities(records []domain.CandidateRecord) []domain.AttractionVisit {
	out := make([]domain.AttractionVisit, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.AttractionVisit{
			ID:            r.newID(),
			Name:          rec.Data.Name,
			Description:   "Imported via AI",
			Location:      rec.Data.Address,
			ScheduledTime: rec.Data.DisplayTime,
		})
	}
	return out
}

// documentCategory accepts the extraction types that map one-to-one onto
// vault categories and folds everything else into "other".
func documentCategory(t string) domain.DocumentCategory {
	switch domain.DocumentCategory(t) {
	case domain.DocPassport, domain.DocVisa, domain.DocInsurance:
		return domain.DocumentCategory(t)
	default:
		return domain.DocOther
	}
}

// endpoint dereferences an optional candidate endpoint, turning absence into
// a zero value so field chains stay flat.
func endpoint(p *domain.CandidateEndpoint) domain.CandidateEndpoint {
	if p == nil {
		return domain.CandidateEndpoint{}
	}
	return *p
}

// cityCode derives a placeholder airport code from a city name: its first
// three letters, uppercased. Only used when no real code was extracted.
func cityCode(city string) string {
	if city == "" {
		return ""
	}
	r := []rune(city)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// segmentDuration prefers the extractor's minute count, then its preformatted
// duration string.
func segmentDuration(seg domain.CandidateSegment) string {
	if seg.DurationMinutes > 0 {
		return fmt.Sprintf("%dh %dm", seg.DurationMinutes/60, seg.DurationMinutes%60)
	}
	return firstNonEmpty(seg.Duration, "0h")
}

// stripTimeComponent cuts a trailing T-separated time-of-day off a date
// string: "2026-03-01T15:00:00" → "2026-03-01".
func stripTimeComponent(s string) string {
	return strings.SplitN(s, "T", 2)[0]
}

// ---- duplicate detection ---------------------------------------------------
//
// Multi-signal, short-circuiting on the first true signal, evaluated per
// candidate against every existing record of the same category in insertion
// order. When a candidate could match two existing records under different
// signals, the first match in this fixed order wins — deterministic, if
// arbitrary.

// isDuplicateFlight reports whether cand matches an existing segment by
// (a) flight number + date, (b) route codes + date + departure time, or
// (c) city pair (case-insensitive) + date. Identifier signals require the
// candidate side to be non-empty so that two sparsely extracted records do
// not collapse into each other.
func isDuplicateFlight(existing []domain.FlightSegment, cand domain.FlightSegment) bool {
	for _, ex := range existing {
		if cand.FlightNumber != "" && ex.FlightNumber == cand.FlightNumber && sameDate(ex.Date, cand.Date) {
			return true
		}
		if cand.FromCode != "" && cand.ToCode != "" &&
			ex.FromCode == cand.FromCode && ex.ToCode == cand.ToCode &&
			sameDate(ex.Date, cand.Date) && ex.DepartureTime == cand.DepartureTime {
			return true
		}
		if cand.FromCity != "" && cand.ToCity != "" &&
			strings.EqualFold(ex.FromCity, cand.FromCity) && strings.EqualFold(ex.ToCity, cand.ToCity) &&
			sameDate(ex.Date, cand.Date) {
			return true
		}
	}
	return false
}

// isDuplicateHotel reports whether cand matches an existing stay by exact
// check-in date plus fuzzy name match.
func isDuplicateHotel(existing []domain.HotelStay, cand domain.HotelStay) bool {
	for _, ex := range existing {
		if sameDate(ex.CheckInDate, cand.CheckInDate) && fuzzyNameMatch(ex.Name, cand.Name) {
			return true
		}
	}
	return false
}

// isDuplicateDocument reports whether cand matches an existing document by
// exact title, or by category and value together.
func isDuplicateDocument(existing []domain.SecureDocument, cand domain.SecureDocument) bool {
	for _, ex := range existing {
		if ex.Title == cand.Title {
			return true
		}
		if ex.Category == cand.Category && ex.Value == cand.Value {
			return true
		}
	}
	return false
}

// sameDate compares two raw date strings through the normalizer, so
// "05/03/2026" and "2026-03-05" count as the same day. When either side does
// not parse the comparison falls back to exact string equality.
func sameDate(a, b string) bool {
	da, errA := dates.Normalize(a)
	db, errB := dates.Normalize(b)
	if errA == nil && errB == nil {
		return da == db
	}
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// fuzzyNameMatch compares two venue names after lowercasing and stripping
// every non-alphanumeric rune. Equal or substring-of-each-other counts as a
// match, so "Grand Hotel Paris" and "grand hotel paris!!" deduplicate.
func fuzzyNameMatch(a, b string) bool {
	na, nb := normalizeName(a), normalizeName(b)
	if na == nb {
		return true
	}
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

func normalizeName(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// unionStrings merges incoming into existing as a duplicate-free union,
// preserving existing order first and incoming order after.
func unionStrings(existing, incoming []string) []string {
	out := slices.Clone(existing)
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, v := range existing {
		seen[v] = struct{}{}
	}
	for _, v := range incoming {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
