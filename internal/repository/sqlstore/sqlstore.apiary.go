// FilePath: internal/repository/sqlstore/sqlstore.apiary.go
package sqlstore

import (
	"context"
	"database/sql"

	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	"github.com/jmoiron/sqlx"
)

type ApiaryRepo struct {
	SQLBaseRepo
}

func NewApiaryRepository(db database.DB) *ApiaryRepo {
	return &ApiaryRepo{SQLBaseRepo{db: db}}
}

func (r *ApiaryRepo) List(ctx context.Context) ([]*models.Apiary, error) {
	rows := []apiaryRow{}
	query := `SELECT * FROM apiaries ORDER BY id ASC`

	err := r.db.GetDB().SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, errors.NewDataUnavailableError("failed to list apiaries", err)
	}

	apiaries := make([]*models.Apiary, 0, len(rows))
	for _, row := range rows {
		apiaries = append(apiaries, row.toModel())
	}
	return apiaries, nil
}

// Get returns (nil, nil) when no apiary has the given id.
func (r *ApiaryRepo) Get(ctx context.Context, id int64) (*models.Apiary, error) {
	row := apiaryRow{}
	query := r.rebind(`SELECT * FROM apiaries WHERE id = ?`)

	err := r.db.GetDB().GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.NewDataUnavailableError("failed to get apiary", err)
	}
	return row.toModel(), nil
}

// Save inserts the apiary, or replaces its fields if the id exists.
func (r *ApiaryRepo) Save(ctx context.Context, apiary *models.Apiary) error {
	query := `
		INSERT INTO apiaries (
			id, name, location, latitude, longitude, notes, created_at, updated_at
		) VALUES (
			:id, :name, :location, :latitude, :longitude, :notes, :created_at, :updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			location = excluded.location,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			notes = excluded.notes,
			updated_at = excluded.updated_at`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, newApiaryRow(apiary))
	if err != nil {
		return errors.NewOperationFailureError("failed to save apiary", err)
	}
	return nil
}

// Delete removes the apiary, its hives and their records in one
// transaction: descendant ids are collected first, then one batched
// delete per level, parent last.
func (r *ApiaryRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.beginTxx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback() // no-op once committed

	hiveIDs := []int64{}
	err = tx.SelectContext(ctx, &hiveIDs, tx.Rebind(`SELECT id FROM hives WHERE apiary_id = ?`), id)
	if err != nil {
		return errors.NewOperationFailureError("failed to collect hives for cascade", err)
	}

	if err := deleteRecordsOfHives(ctx, tx, hiveIDs); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM hives WHERE apiary_id = ?`), id); err != nil {
		return errors.NewOperationFailureError("failed to delete hives", err)
	}

	result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM apiaries WHERE id = ?`), id)
	if err != nil {
		return errors.NewOperationFailureError("failed to delete apiary", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return errors.NewOperationFailureError("apiary not found", nil)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewOperationFailureError("failed to commit apiary cascade", err)
	}
	return nil
}

// DeleteAll removes every apiary and cascades like Delete. Every hive
// belongs to an apiary and every record to a hive, so the cascade
// empties all three tables.
func (r *ApiaryRepo) DeleteAll(ctx context.Context) error {
	tx, err := r.beginTxx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM records`,
		`DELETE FROM hives`,
		`DELETE FROM apiaries`,
	} {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return errors.NewOperationFailureError("failed to delete all apiaries", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewOperationFailureError("failed to commit delete-all", err)
	}
	return nil
}

// NextID returns max(id)+1, or 0 for an empty table. It is a hint for
// client-assigned ids, not atomic with the save that follows.
func (r *ApiaryRepo) NextID(ctx context.Context) (int64, error) {
	return nextID(ctx, r.db, "apiaries")
}

// deleteRecordsOfHives batch-deletes the records of all given hives
// inside the supplied transaction.
func deleteRecordsOfHives(ctx context.Context, tx *sqlx.Tx, hiveIDs []int64) error {
	if len(hiveIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM records WHERE hive_id IN (?)`, hiveIDs)
	if err != nil {
		return errors.NewOperationFailureError("failed to build record delete", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return errors.NewOperationFailureError("failed to delete records", err)
	}
	return nil
}

// nextID computes the max+1 id hint for a table.
func nextID(ctx context.Context, db database.DB, table string) (int64, error) {
	var next int64
	query := `SELECT COALESCE(MAX(id) + 1, 0) FROM ` + table

	err := db.GetDB().GetContext(ctx, &next, query)
	if err != nil {
		return 0, errors.NewDataUnavailableError("failed to compute next id", err)
	}
	return next, nil
}
