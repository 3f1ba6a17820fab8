// FilePath: internal/recordings/recordings.go

// Package recordings derives day-grouped recordings from a hive's raw
// record stream. A recording is one calendar day of records; days with
// no records are never emitted.
package recordings

import (
	"time"

	"github.com/gobees/hub/internal/models"
)

// DayOf returns midnight of t's calendar day, in t's location.
func DayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// NextDay returns midnight of the day after t's calendar day.
func NextDay(t time.Time) time.Time {
	return DayOf(t).AddDate(0, 0, 1)
}

// DayStart returns 00:00:00.000 of t's calendar day.
func DayStart(t time.Time) time.Time {
	return DayOf(t)
}

// DayEnd returns 23:59:59.999 of t's calendar day, the inclusive upper
// bound of the day range.
func DayEnd(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

// Aggregate partitions records into one Recording per calendar day
// present in the input. The input must be sorted ascending by timestamp
// (duplicate timestamps are allowed; ties keep input order). Recordings
// come out in ascending date order, each holding exactly the records
// whose timestamp falls in [day, day+1d).
func Aggregate(records []models.Record) []models.Recording {
	recordings := []models.Recording{}
	var cursor time.Time // zero value acts as the "day zero" sentinel
	rest := records
	for {
		// Skip to the first record at or after the cursor. Running out
		// of records is the only termination condition.
		rest = rest[firstAtOrAfter(rest, cursor):]
		if len(rest) == 0 {
			break
		}
		day := DayOf(rest[0].Timestamp)
		cursor = NextDay(rest[0].Timestamp)
		// All remaining records are >= day already, so the bucket is
		// bounded by the start of the next day alone.
		bucket := rest[:firstAtOrAfter(rest, cursor)]
		recordings = append(recordings, models.NewRecording(day, bucket))
	}
	return recordings
}

// firstAtOrAfter returns the index of the first record whose timestamp
// is >= bound. Records are timestamp-ascending, so a linear scan from
// the front stays O(n) across the whole aggregation.
func firstAtOrAfter(records []models.Record, bound time.Time) int {
	for i, r := range records {
		if !r.Timestamp.Before(bound) {
			return i
		}
	}
	return len(records)
}
