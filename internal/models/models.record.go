// FilePath: internal/models/models.record.go
package models

import "time"

// Record is a single time-stamped sensor measurement of a hive. Record
// ids are assigned from one global counter across all hives. Multiple
// records may share a timestamp.
type Record struct {
	ID          int64     `json:"id" db:"id"`
	HiveID      int64     `json:"hive_id" db:"hive_id"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
	NumBees     int       `json:"num_bees" db:"num_bees"`
	Temperature float64   `json:"temperature" db:"temperature"`
}
