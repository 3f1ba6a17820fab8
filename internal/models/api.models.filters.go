// FilePath: internal/models/api.models.filters.go
package models

import "time"

// DateLayout is the wire format for calendar days in query parameters.
const DateLayout = "2006-01-02"

// RecordingFilter defines the query parameters of a recordings
// date-range request. Start and End name calendar days, both inclusive.
type RecordingFilter struct {
	Start string `schema:"start,required"`
	End   string `schema:"end,required"`
}

// Range parses the filter into a pair of calendar days.
func (f RecordingFilter) Range() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, f.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.Parse(DateLayout, f.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
