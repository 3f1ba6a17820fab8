// FilePath: internal/beeservice/beeservice.apiary.go
package beeservice

import (
	"context"
	"strconv"
	"time"

	"github.com/gobees/hub/internal/cleanup"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// ListApiaries returns every apiary, without child hives.
func (s *BeeService) ListApiaries(ctx context.Context) ([]*models.Apiary, error) {
	return s.Apiaries.List(ctx)
}

// GetApiary returns the apiary with its hives attached, or (nil, nil)
// when it does not exist.
func (s *BeeService) GetApiary(ctx context.Context, id int64) (*models.Apiary, error) {
	apiary, err := s.Apiaries.Get(ctx, id)
	if err != nil || apiary == nil {
		return apiary, err
	}

	hives, err := s.Hives.ListByApiary(ctx, id)
	if err != nil {
		return nil, err
	}
	apiary.Hives = hives
	return apiary, nil
}

// SaveApiary inserts or updates the apiary by id.
func (s *BeeService) SaveApiary(ctx context.Context, apiary *models.Apiary) error {
	if apiary.Name == "" {
		return errors.NewValidationError("apiary name is required", nil)
	}

	now := time.Now()
	if apiary.CreatedAt.IsZero() {
		apiary.CreatedAt = now
	}
	apiary.UpdatedAt = now

	nuts.L.Infof("[ApiaryService] Saving apiary %d (%s)", apiary.ID, apiary.Name)
	return s.Apiaries.Save(ctx, apiary)
}

// DeleteApiary deletes the apiary and cascades to its hives and their
// records as one atomic operation.
func (s *BeeService) DeleteApiary(ctx context.Context, id int64) error {
	// Collect hive ids first so their cached recordings can be dropped
	// after the cascade commits.
	hives, err := s.Hives.ListByApiary(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Apiaries.Delete(ctx, id); err != nil {
		return err
	}

	for _, hive := range hives {
		s.Cache.Invalidate(ctx, hive.ID)
	}
	nuts.L.Infof("[ApiaryService] Deleted apiary %d with %d hives", id, len(hives))
	s.Cleanup.Emit(cleanup.EventApiaryDeleted, strconv.FormatInt(id, 10))
	return nil
}

// DeleteAllApiaries deletes every apiary. It cascades exactly like
// single deletion, so no orphaned hives or records survive.
func (s *BeeService) DeleteAllApiaries(ctx context.Context) error {
	if err := s.Apiaries.DeleteAll(ctx); err != nil {
		return err
	}
	s.Cache.InvalidateAll(ctx)
	nuts.L.Infof("[ApiaryService] Deleted all apiaries")
	s.Cleanup.Emit(cleanup.EventApiaryDeleted, "all")
	return nil
}

// NextApiaryID returns the max+1 id hint for client-assigned ids. Two
// concurrent callers can observe the same value; the store does not
// serialize this read with the save that follows.
func (s *BeeService) NextApiaryID(ctx context.Context) (int64, error) {
	return s.Apiaries.NextID(ctx)
}
