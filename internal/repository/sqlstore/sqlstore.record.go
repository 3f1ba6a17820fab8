// FilePath: internal/repository/sqlstore/sqlstore.record.go
package sqlstore

import (
	"context"
	"time"

	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
)

const upsertRecordQuery = `
	INSERT INTO records (
		id, hive_id, timestamp, num_bees, temperature
	) VALUES (
		:id, :hive_id, :timestamp, :num_bees, :temperature
	)
	ON CONFLICT (id) DO UPDATE SET
		hive_id = excluded.hive_id,
		timestamp = excluded.timestamp,
		num_bees = excluded.num_bees,
		temperature = excluded.temperature`

type RecordRepo struct {
	SQLBaseRepo
}

func NewRecordRepository(db database.DB) *RecordRepo {
	return &RecordRepo{SQLBaseRepo{db: db}}
}

// Save inserts the record, or replaces its fields if the id exists, and
// links it to the given hive.
func (r *RecordRepo) Save(ctx context.Context, hiveID int64, record *models.Record) error {
	_, err := r.db.GetDB().NamedExecContext(ctx, upsertRecordQuery, newRecordRow(hiveID, record))
	if err != nil {
		return errors.NewOperationFailureError("failed to save record", err)
	}
	record.HiveID = hiveID
	return nil
}

// SaveMany assigns a contiguous id block starting at the current global
// max+1, in input order, then inserts all records in one transaction.
// The id read is a hint, not atomic with the insert (same limitation as
// NextID).
func (r *RecordRepo) SaveMany(ctx context.Context, hiveID int64, records []*models.Record) error {
	next, err := r.NextID(ctx)
	if err != nil {
		return errors.NewOperationFailureError("failed to allocate record ids", err)
	}
	for _, record := range records {
		record.ID = next
		next++
	}

	tx, err := r.beginTxx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, record := range records {
		if _, err := tx.NamedExecContext(ctx, upsertRecordQuery, newRecordRow(hiveID, record)); err != nil {
			return errors.NewOperationFailureError("failed to save records", err)
		}
		record.HiveID = hiveID
	}

	if err := tx.Commit(); err != nil {
		return errors.NewOperationFailureError("failed to commit record batch", err)
	}
	return nil
}

// ListByHive returns all records of the hive, timestamp-ascending with
// ids breaking timestamp ties stably.
func (r *RecordRepo) ListByHive(ctx context.Context, hiveID int64) ([]models.Record, error) {
	rows := []recordRow{}
	query := r.rebind(`SELECT * FROM records WHERE hive_id = ? ORDER BY timestamp ASC, id ASC`)

	err := r.db.GetDB().SelectContext(ctx, &rows, query, hiveID)
	if err != nil {
		return nil, errors.NewDataUnavailableError("failed to list records", err)
	}
	return recordModels(rows), nil
}

// ListRange returns the hive's records with timestamp in [start, end],
// both bounds inclusive, timestamp-ascending.
func (r *RecordRepo) ListRange(ctx context.Context, hiveID int64, start, end time.Time) ([]models.Record, error) {
	rows := []recordRow{}
	query := r.rebind(`
		SELECT * FROM records
		WHERE hive_id = ? AND timestamp BETWEEN ? AND ?
		ORDER BY timestamp ASC, id ASC`)

	err := r.db.GetDB().SelectContext(ctx, &rows, query, hiveID, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, errors.NewDataUnavailableError("failed to query record range", err)
	}
	return recordModels(rows), nil
}

// DeleteRange removes the hive's records with timestamp in [start, end]
// inclusive, as one transaction.
func (r *RecordRepo) DeleteRange(ctx context.Context, hiveID int64, start, end time.Time) error {
	tx, err := r.beginTxx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := tx.Rebind(`DELETE FROM records WHERE hive_id = ? AND timestamp BETWEEN ? AND ?`)
	if _, err := tx.ExecContext(ctx, query, hiveID, start.UnixMilli(), end.UnixMilli()); err != nil {
		return errors.NewOperationFailureError("failed to delete record range", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewOperationFailureError("failed to commit range delete", err)
	}
	return nil
}

// NextID returns the global max(id)+1 across all hives' records, or 0
// when none exist.
func (r *RecordRepo) NextID(ctx context.Context) (int64, error) {
	return nextID(ctx, r.db, "records")
}

func recordModels(rows []recordRow) []models.Record {
	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toModel())
	}
	return records
}
