package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoldman/tripsmith/internal/domain"
	"github.com/ngoldman/tripsmith/internal/service"
)

func TestMap_TimedItem(t *testing.T) {
	items := []domain.CalendarImportItem{{
		ID:          "abc123",
		Summary:     "Dinner with Dana",
		Description: "Table for two",
		Location:    "Ginza",
		Start:       domain.CalendarImportTime{DateTime: "2026-01-12T19:30:00+02:00"},
	}}

	events := service.NewCalendarMapper(nil).Map(items)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "gcal-abc123", ev.ID)
	assert.Equal(t, "abc123", ev.SourceID)
	assert.Equal(t, day(2026, time.January, 12), ev.Date)
	assert.Equal(t, "19:30", ev.Time, "display time keeps the event's own zone")
	assert.Equal(t, domain.CategoryFood, ev.Category)
	assert.Equal(t, "Dinner with Dana", ev.Title)
	assert.Equal(t, "Table for two", ev.Subtitle)
	assert.Equal(t, "Ginza", ev.Location)
	assert.True(t, ev.IsExternal)
}

func TestMap_AllDayItemIsUntimed(t *testing.T) {
	items := []domain.CalendarImportItem{{
		ID:      "d1",
		Summary: "Museum day",
		Start:   domain.CalendarImportTime{Date: "2026-01-13"},
	}}

	events := service.NewCalendarMapper(nil).Map(items)

	require.Len(t, events, 1)
	assert.Equal(t, day(2026, time.January, 13), events[0].Date)
	assert.Empty(t, events[0].Time)
	assert.Equal(t, domain.CategoryActivity, events[0].Category)
}

func TestMap_ZonelessDateTimeStillResolves(t *testing.T) {
	// Not valid RFC 3339, but the date normalizer can still anchor it.
	items := []domain.CalendarImportItem{{
		ID:      "z1",
		Summary: "Briefing",
		Start:   domain.CalendarImportTime{DateTime: "2026-01-12T09:00:00"},
	}}

	events := service.NewCalendarMapper(nil).Map(items)

	require.Len(t, events, 1)
	assert.Equal(t, day(2026, time.January, 12), events[0].Date)
	assert.Equal(t, "09:00", events[0].Time)
}

func TestMap_ItemWithoutStartIsSkipped(t *testing.T) {
	items := []domain.CalendarImportItem{
		{ID: "bad", Summary: "No start"},
		{ID: "ok", Summary: "Museum day", Start: domain.CalendarImportTime{Date: "2026-01-13"}},
	}

	events := service.NewCalendarMapper(nil).Map(items)

	require.Len(t, events, 1)
	assert.Equal(t, "gcal-ok", events[0].ID)
}

func TestMap_EmptySummaryGetsPlaceholderTitle(t *testing.T) {
	items := []domain.CalendarImportItem{{
		ID:    "e1",
		Start: domain.CalendarImportTime{Date: "2026-01-13"},
	}}

	events := service.NewCalendarMapper(nil).Map(items)

	require.Len(t, events, 1)
	assert.Equal(t, "Untitled event", events[0].Title)
}

func TestMap_SummaryClassification(t *testing.T) {
	items := []domain.CalendarImportItem{
		{ID: "1", Summary: "Flight LY001", Start: domain.CalendarImportTime{Date: "2026-01-13"}},
		{ID: "2", Summary: "Hotel pickup", Start: domain.CalendarImportTime{Date: "2026-01-13"}},
		{ID: "3", Summary: "Lunch meeting", Start: domain.CalendarImportTime{Date: "2026-01-13"}},
	}

	events := service.NewCalendarMapper(nil).Map(items)

	require.Len(t, events, 3)
	assert.Equal(t, domain.CategoryFlight, events[0].Category)
	assert.Equal(t, domain.CategoryHotelStay, events[1].Category)
	assert.Equal(t, domain.CategoryFood, events[2].Category)
}

func TestMap_NoItemsYieldsEmptyNonNilSlice(t *testing.T) {
	events := service.NewCalendarMapper(nil).Map(nil)

	assert.NotNil(t, events)
	assert.Empty(t, events)
}
