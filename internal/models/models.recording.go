// FilePath: internal/models/models.recording.go
package models

import "time"

// Recording groups a hive's records for one calendar day. Recordings
// are derived from the record stream and never stored: Date is the
// midnight of the day and every record in Records falls on that day,
// in ascending timestamp order.
type Recording struct {
	Date    time.Time `json:"date"`
	Records []Record  `json:"records"`
}

// NewRecording builds a recording for the given day.
func NewRecording(date time.Time, records []Record) Recording {
	return Recording{Date: date, Records: records}
}
