// FilePath: internal/models/models.hive.go
package models

import "time"

// Hive belongs to exactly one apiary and owns its records. Deleting a
// hive cascades to its records.
type Hive struct {
	ID        int64     `json:"id" db:"id"`
	ApiaryID  int64     `json:"apiary_id" db:"apiary_id"`
	Name      string    `json:"name" db:"name"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Recordings is a derived view of the hive's records grouped by
	// calendar day. It is computed on demand and never persisted; the
	// stored records are the source of truth.
	Recordings []Recording `json:"recordings,omitempty" db:"-"`
}
