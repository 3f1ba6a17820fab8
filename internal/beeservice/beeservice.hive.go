// FilePath: internal/beeservice/beeservice.hive.go
package beeservice

import (
	"context"
	"strconv"
	"time"

	"github.com/gobees/hub/internal/cleanup"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	"github.com/gobees/hub/internal/recordings"
	nuts "github.com/vaudience/go-nuts"
)

// ListHives returns the hives of an apiary.
func (s *BeeService) ListHives(ctx context.Context, apiaryID int64) ([]*models.Hive, error) {
	return s.Hives.ListByApiary(ctx, apiaryID)
}

// GetHive returns the hive, or (nil, nil) when it does not exist.
func (s *BeeService) GetHive(ctx context.Context, id int64) (*models.Hive, error) {
	return s.Hives.Get(ctx, id)
}

// GetHiveWithRecordings returns the hive with its records aggregated
// into one recording per calendar day present. A missing hive is
// DataUnavailable here: the caller asked for its contents, not just a
// lookup.
func (s *BeeService) GetHiveWithRecordings(ctx context.Context, id int64) (*models.Hive, error) {
	hive, err := s.Hives.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if hive == nil {
		return nil, errors.NewDataUnavailableError("hive not found", nil)
	}

	if cached, ok := s.Cache.Get(ctx, id); ok {
		hive.Recordings = cached
		return hive, nil
	}

	records, err := s.Records.ListByHive(ctx, id)
	if err != nil {
		return nil, err
	}

	hive.Recordings = recordings.Aggregate(records)
	s.Cache.Set(ctx, id, hive.Recordings)
	return hive, nil
}

// SaveHive inserts or updates the hive and links it to the apiary.
func (s *BeeService) SaveHive(ctx context.Context, apiaryID int64, hive *models.Hive) error {
	if hive.Name == "" {
		return errors.NewValidationError("hive name is required", nil)
	}

	now := time.Now()
	if hive.CreatedAt.IsZero() {
		hive.CreatedAt = now
	}
	hive.UpdatedAt = now

	nuts.L.Infof("[HiveService] Saving hive %d (%s) in apiary %d", hive.ID, hive.Name, apiaryID)
	return s.Hives.Save(ctx, apiaryID, hive)
}

// DeleteHive deletes the hive and all its records atomically.
func (s *BeeService) DeleteHive(ctx context.Context, id int64) error {
	if err := s.Hives.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, id)
	nuts.L.Infof("[HiveService] Deleted hive %d and its records", id)
	s.Cleanup.Emit(cleanup.EventHiveDeleted, strconv.FormatInt(id, 10))
	return nil
}

// NextHiveID returns the max+1 id hint for client-assigned ids.
func (s *BeeService) NextHiveID(ctx context.Context) (int64, error) {
	return s.Hives.NextID(ctx)
}
