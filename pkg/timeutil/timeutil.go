// Package timeutil provides time-window helpers for CitySpark Hub.
// Analytics metrics are computed over trailing day windows and insight
// detection relies on hour-of-day buckets, so all helpers operate in UTC.
// No external dependencies - uses only standard library.
package timeutil

import (
	"time"
)

// Now returns the current time in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// StartOfDay returns the start of the day (00:00:00) in UTC.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the end of the day (23:59:59.999999999) in UTC.
func EndOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999999999, time.UTC)
}

// TrailingWindow returns the cutoff for a trailing window of the given
// number of days, ending now.
func TrailingWindow(days int) time.Time {
	return Now().AddDate(0, 0, -days)
}

// TrailingWindowFrom returns the cutoff for a trailing window of the given
// number of days, ending at the given reference time.
func TrailingWindowFrom(ref time.Time, days int) time.Time {
	return ref.UTC().AddDate(0, 0, -days)
}

// DaysSince calculates the number of whole days since the given time.
func DaysSince(t time.Time) int {
	now := StartOfDay(Now())
	then := StartOfDay(t)
	return int(now.Sub(then).Hours() / 24)
}

// IsSameDay checks if two times fall on the same UTC day.
func IsSameDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}

// Evening hours used by learning-pattern detection (7 PM - 11 PM inclusive).
const (
	EveningStart = 19
	EveningEnd   = 23
)

// IsEveningHour checks if the given time falls in the evening learning band.
func IsEveningHour(t time.Time) bool {
	hour := t.UTC().Hour()
	return hour >= EveningStart && hour <= EveningEnd
}

// Common date/time formats.
const (
	// FormatDate is the standard date format (YYYY-MM-DD).
	FormatDate = "2006-01-02"
	// FormatDateTime is the standard datetime format.
	FormatDateTime = "2006-01-02 15:04"
	// FormatCompact is used for time-derived identifiers (art pieces,
	// collections, analytics events).
	FormatCompact = "20060102_150405"
)

// CompactTimestamp formats a time for use inside generated identifiers.
func CompactTimestamp(t time.Time) string {
	return t.UTC().Format(FormatCompact)
}

// CompactTimestampMicro formats a time with microsecond precision for
// identifiers that need a finer grain (analytics events).
func CompactTimestampMicro(t time.Time) string {
	return t.UTC().Format("20060102_150405_000000")
}
