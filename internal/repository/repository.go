// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/models"
)

// ApiaryRepository defines the interface for apiary data operations.
// Get returns (nil, nil) when the apiary does not exist: absence is a
// result, not an error.
type ApiaryRepository interface {
	database.Repository
	List(ctx context.Context) ([]*models.Apiary, error)
	Get(ctx context.Context, id int64) (*models.Apiary, error)
	Save(ctx context.Context, apiary *models.Apiary) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	NextID(ctx context.Context) (int64, error)
}

// HiveRepository defines the interface for hive data operations.
// Save links the hive to its parent apiary; Delete cascades to the
// hive's records.
type HiveRepository interface {
	database.Repository
	ListByApiary(ctx context.Context, apiaryID int64) ([]*models.Hive, error)
	Get(ctx context.Context, id int64) (*models.Hive, error)
	Save(ctx context.Context, apiaryID int64, hive *models.Hive) error
	Delete(ctx context.Context, id int64) error
	NextID(ctx context.Context) (int64, error)
}

// RecordRepository defines the interface for hive sensor records.
// Range bounds are inclusive instants; callers derive them from day
// boundaries. Record ids come from one global counter across hives.
type RecordRepository interface {
	database.Repository
	Save(ctx context.Context, hiveID int64, record *models.Record) error
	SaveMany(ctx context.Context, hiveID int64, records []*models.Record) error
	ListByHive(ctx context.Context, hiveID int64) ([]models.Record, error)
	ListRange(ctx context.Context, hiveID int64, start, end time.Time) ([]models.Record, error)
	DeleteRange(ctx context.Context, hiveID int64, start, end time.Time) error
	NextID(ctx context.Context) (int64, error)
}

// AdminRepository exposes whole-store maintenance operations.
type AdminRepository interface {
	Wipe(ctx context.Context) error
}
