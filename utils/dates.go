package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical storage format for booking dates.
const DateLayout = "2006-01-02"

// acceptedDateLayouts are the input formats clients are allowed to send.
// Everything is normalized to DateLayout before it touches the database.
var acceptedDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// NormalizeDate parses a client-supplied date string and returns it in the
// canonical YYYY-MM-DD form. The time portion, if any, is discarded.
func NormalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("date is empty")
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("invalid date format: %s", raw)
}

// Today returns the current date in canonical form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// IsPastDate reports whether date (canonical form) is strictly before today.
// Canonical dates compare correctly as strings.
func IsPastDate(date string, now time.Time) bool {
	return date < now.Format(DateLayout)
}

// IsSameDayAfterNoon reports whether date is today and the local clock has
// already passed 12:00. Same-day bookings close at noon.
func IsSameDayAfterNoon(date string, now time.Time) bool {
	return date == now.Format(DateLayout) && now.Hour() >= 12
}

// StartOfDay returns local midnight for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekAgo returns local midnight seven days before now. Used for the
// trailing-week dashboard figures.
func WeekAgo(now time.Time) time.Time {
	return StartOfDay(now).AddDate(0, 0, -7)
}
