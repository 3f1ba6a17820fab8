// FilePath: internal/repository/sqlstore/sqlstore.hive.go
package sqlstore

import (
	"context"
	"database/sql"

	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
)

type HiveRepo struct {
	SQLBaseRepo
}

func NewHiveRepository(db database.DB) *HiveRepo {
	return &HiveRepo{SQLBaseRepo{db: db}}
}

func (r *HiveRepo) ListByApiary(ctx context.Context, apiaryID int64) ([]*models.Hive, error) {
	rows := []hiveRow{}
	query := r.rebind(`SELECT * FROM hives WHERE apiary_id = ? ORDER BY id ASC`)

	err := r.db.GetDB().SelectContext(ctx, &rows, query, apiaryID)
	if err != nil {
		return nil, errors.NewDataUnavailableError("failed to list hives", err)
	}

	hives := make([]*models.Hive, 0, len(rows))
	for _, row := range rows {
		hives = append(hives, row.toModel())
	}
	return hives, nil
}

// Get returns (nil, nil) when no hive has the given id.
func (r *HiveRepo) Get(ctx context.Context, id int64) (*models.Hive, error) {
	row := hiveRow{}
	query := r.rebind(`SELECT * FROM hives WHERE id = ?`)

	err := r.db.GetDB().GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.NewDataUnavailableError("failed to get hive", err)
	}
	return row.toModel(), nil
}

// Save inserts or updates the hive and links it to the given apiary.
func (r *HiveRepo) Save(ctx context.Context, apiaryID int64, hive *models.Hive) error {
	query := `
		INSERT INTO hives (
			id, apiary_id, name, notes, created_at, updated_at
		) VALUES (
			:id, :apiary_id, :name, :notes, :created_at, :updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			apiary_id = excluded.apiary_id,
			name = excluded.name,
			notes = excluded.notes,
			updated_at = excluded.updated_at`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, newHiveRow(apiaryID, hive))
	if err != nil {
		return errors.NewOperationFailureError("failed to save hive", err)
	}
	hive.ApiaryID = apiaryID
	return nil
}

// Delete removes the hive and all its records in one transaction,
// records first.
func (r *HiveRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.beginTxx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM records WHERE hive_id = ?`), id); err != nil {
		return errors.NewOperationFailureError("failed to delete hive records", err)
	}

	result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM hives WHERE id = ?`), id)
	if err != nil {
		return errors.NewOperationFailureError("failed to delete hive", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return errors.NewOperationFailureError("hive not found", nil)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewOperationFailureError("failed to commit hive cascade", err)
	}
	return nil
}

// NextID returns max(id)+1, or 0 for an empty table.
func (r *HiveRepo) NextID(ctx context.Context) (int64, error) {
	return nextID(ctx, r.db, "hives")
}
