package puzzle

import (
	"time"
)

// DayKeyFormat is the civil-date layout used as the day identifier everywhere
// in the app: puzzle selection, result records, streaks.
const DayKeyFormat = "2006-01-02"

// referenceTimezone is the canonical timezone for "what day is it". Every
// player worldwide rolls over to the next puzzle at midnight US Eastern,
// regardless of their local clock.
const referenceTimezone = "America/New_York"

var referenceLocation = mustLoadLocation(referenceTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("puzzle: cannot load reference timezone " + name + ": " + err.Error())
	}
	return loc
}

// DayKey formats an instant as a YYYY-MM-DD civil date in the reference
// timezone. This is the single authority for the current day: deriving a day
// identifier any other way (raw UTC date, viewer-local date) would
// desynchronize puzzle selection from statistics.
func DayKey(t time.Time) string {
	return t.In(referenceLocation).Format(DayKeyFormat)
}

// ParseDayKey parses a YYYY-MM-DD string back into a time anchored at noon
// UTC. Noon keeps whole-day arithmetic immune to DST boundary rounding.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.Parse(DayKeyFormat, key)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// DaysBetween returns the number of whole calendar days from fromKey to
// toKey. Negative when toKey is earlier. Malformed keys count as day zero.
func DaysBetween(fromKey, toKey string) int {
	from, err := ParseDayKey(fromKey)
	if err != nil {
		return 0
	}
	to, err := ParseDayKey(toKey)
	if err != nil {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// PreviousDayKey returns the day key one calendar day before the given key.
func PreviousDayKey(key string) string {
	t, err := ParseDayKey(key)
	if err != nil {
		return key
	}
	return t.AddDate(0, 0, -1).Format(DayKeyFormat)
}
