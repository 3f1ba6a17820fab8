// FilePath: internal/repository/sqlstore/sqlstore.schema.go
package sqlstore

import (
	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/errors"
)

// Timestamps persist as unix-millisecond BIGINT columns so the
// inclusive 23:59:59.999 day bound is exact on every driver.
var schemaQueries = []string{
	`CREATE TABLE IF NOT EXISTS apiaries (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hives (
		id BIGINT PRIMARY KEY,
		apiary_id BIGINT NOT NULL REFERENCES apiaries(id),
		name TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS records (
		id BIGINT PRIMARY KEY,
		hive_id BIGINT NOT NULL REFERENCES hives(id),
		timestamp BIGINT NOT NULL,
		num_bees BIGINT NOT NULL DEFAULT 0,
		temperature DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hives_apiary ON hives(apiary_id)`,
	`CREATE INDEX IF NOT EXISTS idx_records_hive_timestamp ON records(hive_id, timestamp)`,
}

// InitializeSchema creates the tables and indexes if they do not exist.
// Call once after database.Open, before constructing repositories.
func InitializeSchema(db database.DB) error {
	for _, query := range schemaQueries {
		if _, err := db.GetDB().Exec(query); err != nil {
			return errors.NewOperationFailureError("failed to initialize schema", err)
		}
	}
	return nil
}
