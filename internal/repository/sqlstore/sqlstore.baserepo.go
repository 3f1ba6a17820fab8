// FilePath: internal/repository/sqlstore/sqlstore.baserepo.go

// Package sqlstore implements the repositories on a transactional SQL
// store via sqlx. The same queries run against the embedded SQLite file
// (default) and PostgreSQL; placeholders are rebound per driver.
package sqlstore

import (
	"context"

	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/errors"
	"github.com/jmoiron/sqlx"
)

type SQLBaseRepo struct {
	db database.DB
}

func (r *SQLBaseRepo) BeginTx(ctx context.Context) (database.Transaction, error) {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.NewOperationFailureError("failed to begin transaction", err)
	}
	return tx, nil
}

// beginTxx is the sqlx-typed variant used internally by cascades that
// need to query inside the transaction.
func (r *SQLBaseRepo) beginTxx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.NewOperationFailureError("failed to begin transaction", err)
	}
	return tx, nil
}

// rebind translates ?-placeholders to the connected driver's form.
func (r *SQLBaseRepo) rebind(query string) string {
	return r.db.GetDB().Rebind(query)
}

func (r *SQLBaseRepo) Ping(ctx context.Context) error {
	if err := r.db.GetDB().PingContext(ctx); err != nil {
		return errors.NewDataUnavailableError("failed to ping database", err)
	}
	return nil
}
