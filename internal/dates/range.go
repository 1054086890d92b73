package dates

import (
	"strings"
	"time"
)

// ParseRange resolves a trip date-range string of the shape "<start> - <end>"
// into its two endpoints. Each side may be any format Normalize accepts.
//
// When the string is absent or unparsable the range defaults to the week
// starting at now — the UI still gets something sensible to render. Callers
// that need reproducible output must pass an explicit range; now only
// influences the fallback.
func ParseRange(raw string, now time.Time) (CalendarDate, CalendarDate) {
	start := FromTime(now)
	end := start.AddDays(7)

	s := strings.TrimSpace(raw)
	if s == "" {
		return start, end
	}

	// Split on " - " first so ISO dates, which contain dashes themselves,
	// survive. The bare-dash split handles ranges like "14/02/2026-21/02/2026".
	var parts []string
	if strings.Contains(s, " - ") {
		parts = strings.SplitN(s, " - ", 2)
	} else {
		parts = strings.Split(s, "-")
	}
	if len(parts) != 2 {
		return start, end
	}

	from, errFrom := Normalize(strings.TrimSpace(parts[0]))
	to, errTo := Normalize(strings.TrimSpace(parts[1]))
	if errFrom != nil || errTo != nil {
		return start, end
	}
	return from, to
}
