// Package dates provides the canonical calendar-date type used across the
// planner and the normalizer that produces it. Every date comparison in the
// application goes through a CalendarDate; raw strings are only ever parsed
// here.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnparsable is returned by Normalize when a string cannot be resolved to
// a calendar date by any supported reading. Callers are expected to skip the
// offending value rather than abort — one bad date must never blank a whole
// timeline.
var ErrUnparsable = errors.New("unparsable date")

// CalendarDate is an immutable (year, month, day) triple with no time zone.
// Two CalendarDates are equal iff all three fields are equal, so values are
// directly comparable with ==.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Normalize resolves a textual date into a CalendarDate. Input shapes are
// tried in priority order:
//
//  1. DD/MM/YYYY (slash-delimited, day first)
//  2. YYYY-MM-DD with an optional trailing time-of-day, which is discarded
//  3. DD-MM-YYYY (dash-delimited, four-digit year last)
//  4. anything else a general-purpose date parser can resolve
//
// Booking confirmations, AI extraction output, and manual entry all disagree
// on format, so all four readings show up in real trips.
func Normalize(raw string) (CalendarDate, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return CalendarDate{}, fmt.Errorf("%w: empty string", ErrUnparsable)
	}

	if strings.Contains(s, "/") {
		if d, ok := parseSlashed(s); ok {
			return d, nil
		}
	} else if strings.Contains(s, "-") {
		if d, ok := parseDashed(s); ok {
			return d, nil
		}
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrUnparsable, raw)
	}
	return FromTime(t), nil
}

// parseSlashed reads DD/MM/YYYY.
func parseSlashed(s string) (CalendarDate, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return CalendarDate{}, false
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return CalendarDate{}, false
	}
	return checked(year, month, day)
}

// parseDashed reads either YYYY-MM-DD (first group four digits, trailing
// time-of-day discarded) or DD-MM-YYYY (last group four digits).
func parseDashed(s string) (CalendarDate, bool) {
	parts := strings.Split(s, "-")
	if len(parts) >= 3 && len(parts[0]) == 4 {
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		day, err3 := strconv.Atoi(leadingDigits(parts[2]))
		if err1 == nil && err2 == nil && err3 == nil {
			return checked(year, month, day)
		}
		return CalendarDate{}, false
	}
	if len(parts) == 3 && len(strings.TrimSpace(parts[2])) == 4 {
		day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 == nil && err2 == nil && err3 == nil {
			return checked(year, month, day)
		}
	}
	return CalendarDate{}, false
}

// leadingDigits returns the digit prefix of s. "28T19:30:00" → "28".
func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}

// checked builds a CalendarDate only when the components name a real day.
// time.Date normalizes overflow (month 13 becomes January of the next year),
// so the round trip detects values like 32/13/2026.
func checked(year, month, day int) (CalendarDate, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return CalendarDate{}, false
	}
	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return CalendarDate{}, false
	}
	return CalendarDate{Year: year, Month: time.Month(month), Day: day}, true
}

// FromTime projects a time.Time onto its calendar date, dropping the
// time-of-day and zone.
func FromTime(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the date pinned to midday UTC. Midday keeps day arithmetic
// (AddDays, DaysUntil) safe from DST and zone-offset day shifts.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (or before, for negative n).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to o. Negative when o is
// earlier than d.
func (d CalendarDate) DaysUntil(o CalendarDate) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

// Before reports whether d is strictly earlier than o.
func (d CalendarDate) Before(o CalendarDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is strictly later than o.
func (d CalendarDate) After(o CalendarDate) bool {
	return o.Before(d)
}

// IsZero reports whether d is the zero value (no date).
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Weekday returns the day of the week d falls on.
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON decodes any string Normalize accepts.
func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := Normalize(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
