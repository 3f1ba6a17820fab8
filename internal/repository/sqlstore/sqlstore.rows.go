// FilePath: internal/repository/sqlstore/sqlstore.rows.go
package sqlstore

import (
	"time"

	"github.com/gobees/hub/internal/models"
)

// Row types mirror the table columns; instants live as unix
// milliseconds and convert at this boundary only.

type apiaryRow struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Location  string  `db:"location"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
	Notes     string  `db:"notes"`
	CreatedAt int64   `db:"created_at"`
	UpdatedAt int64   `db:"updated_at"`
}

func newApiaryRow(a *models.Apiary) apiaryRow {
	return apiaryRow{
		ID:        a.ID,
		Name:      a.Name,
		Location:  a.Location,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt.UnixMilli(),
		UpdatedAt: a.UpdatedAt.UnixMilli(),
	}
}

func (r apiaryRow) toModel() *models.Apiary {
	return &models.Apiary{
		ID:        r.ID,
		Name:      r.Name,
		Location:  r.Location,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Notes:     r.Notes,
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt: time.UnixMilli(r.UpdatedAt).UTC(),
	}
}

type hiveRow struct {
	ID        int64  `db:"id"`
	ApiaryID  int64  `db:"apiary_id"`
	Name      string `db:"name"`
	Notes     string `db:"notes"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func newHiveRow(apiaryID int64, h *models.Hive) hiveRow {
	return hiveRow{
		ID:        h.ID,
		ApiaryID:  apiaryID,
		Name:      h.Name,
		Notes:     h.Notes,
		CreatedAt: h.CreatedAt.UnixMilli(),
		UpdatedAt: h.UpdatedAt.UnixMilli(),
	}
}

func (r hiveRow) toModel() *models.Hive {
	return &models.Hive{
		ID:        r.ID,
		ApiaryID:  r.ApiaryID,
		Name:      r.Name,
		Notes:     r.Notes,
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt: time.UnixMilli(r.UpdatedAt).UTC(),
	}
}

type recordRow struct {
	ID          int64   `db:"id"`
	HiveID      int64   `db:"hive_id"`
	Timestamp   int64   `db:"timestamp"`
	NumBees     int     `db:"num_bees"`
	Temperature float64 `db:"temperature"`
}

func newRecordRow(hiveID int64, rec *models.Record) recordRow {
	return recordRow{
		ID:          rec.ID,
		HiveID:      hiveID,
		Timestamp:   rec.Timestamp.UnixMilli(),
		NumBees:     rec.NumBees,
		Temperature: rec.Temperature,
	}
}

func (r recordRow) toModel() models.Record {
	return models.Record{
		ID:          r.ID,
		HiveID:      r.HiveID,
		Timestamp:   time.UnixMilli(r.Timestamp).UTC(),
		NumBees:     r.NumBees,
		Temperature: r.Temperature,
	}
}
