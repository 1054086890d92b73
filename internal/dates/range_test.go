package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ngoldman/tripsmith/internal/dates"
)

// A fixed "now" keeps the fallback path reproducible.
var fixedNow = time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)

func TestParseRange_SlashDates(t *testing.T) {
	start, end := dates.ParseRange("10/01/2026 - 17/01/2026", fixedNow)

	assert.Equal(t, dates.CalendarDate{Year: 2026, Month: time.January, Day: 10}, start)
	assert.Equal(t, dates.CalendarDate{Year: 2026, Month: time.January, Day: 17}, end)
}

func TestParseRange_ISODates(t *testing.T) {
	// ISO dates contain dashes themselves, so the range separator must win.
	start, end := dates.ParseRange("2026-01-10 - 2026-01-17", fixedNow)

	assert.Equal(t, dates.CalendarDate{Year: 2026, Month: time.January, Day: 10}, start)
	assert.Equal(t, dates.CalendarDate{Year: 2026, Month: time.January, Day: 17}, end)
}

func TestParseRange_NoSpacesAroundDash(t *testing.T) {
	start, end := dates.ParseRange("10/01/2026-17/01/2026", fixedNow)

	assert.Equal(t, dates.CalendarDate{Year: 2026, Month: time.January, Day: 10}, start)
	assert.Equal(t, dates.CalendarDate{Year: 2026, Month: time.January, Day: 17}, end)
}

func TestParseRange_Empty_FallsBackToWeekFromNow(t *testing.T) {
	start, end := dates.ParseRange("", fixedNow)

	assert.Equal(t, dates.FromTime(fixedNow), start)
	assert.Equal(t, dates.FromTime(fixedNow).AddDays(7), end)
}

func TestParseRange_Unparsable_FallsBackToWeekFromNow(t *testing.T) {
	start, end := dates.ParseRange("sometime next spring", fixedNow)

	assert.Equal(t, dates.FromTime(fixedNow), start)
	assert.Equal(t, dates.FromTime(fixedNow).AddDays(7), end)
}
