// FilePath: internal/repository/sqlstore/sqlstore.admin.go
package sqlstore

import (
	"context"

	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/errors"
)

type AdminRepo struct {
	SQLBaseRepo
}

func NewAdminRepository(db database.DB) *AdminRepo {
	return &AdminRepo{SQLBaseRepo{db: db}}
}

// Wipe deletes every entity in the store, children first, in one
// transaction.
func (r *AdminRepo) Wipe(ctx context.Context) error {
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
			return errors.NewOperationFailureError("failed to wipe store", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewOperationFailureError("failed to commit wipe", err)
	}
	return nil
}
