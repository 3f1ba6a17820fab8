// FilePath: internal/models/models.apiary.go
package models

import "time"

// Apiary is a location holding a group of hives. Deleting an apiary
// cascades to its hives and their records.
type Apiary struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Hives is populated on demand by list queries, it is not a column.
	Hives []*Hive `json:"hives,omitempty" db:"-"`
}
