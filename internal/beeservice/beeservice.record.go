// FilePath: internal/beeservice/beeservice.record.go
package beeservice

import (
	"context"

	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// SaveRecord inserts or updates one record and links it to the hive.
func (s *BeeService) SaveRecord(ctx context.Context, hiveID int64, record *models.Record) error {
	if record.Timestamp.IsZero() {
		return errors.NewValidationError("record timestamp is required", nil)
	}

	if err := s.Records.Save(ctx, hiveID, record); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, hiveID)
	return nil
}

// SaveRecords stores a batch of records for the hive. Ids are assigned
// as a contiguous block starting at the current global max+1, in input
// order.
func (s *BeeService) SaveRecords(ctx context.Context, hiveID int64, records []*models.Record) error {
	for _, record := range records {
		if record.Timestamp.IsZero() {
			return errors.NewValidationError("record timestamp is required", nil)
		}
	}

	if err := s.Records.SaveMany(ctx, hiveID, records); err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, hiveID)
	nuts.L.Infof("[RecordService] Saved %d records for hive %d", len(records), hiveID)
	return nil
}

// NextRecordID returns the max+1 hint of the global record id space.
func (s *BeeService) NextRecordID(ctx context.Context) (int64, error) {
	return s.Records.NextID(ctx)
}
