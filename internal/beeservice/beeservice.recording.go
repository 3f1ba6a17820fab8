// FilePath: internal/beeservice/beeservice.recording.go
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

// GetRecording returns the hive's records with timestamp in
// [start 00:00:00.000, end 23:59:59.999], timestamp-ascending, wrapped
// as one recording labeled with the start day. DataUnavailable when the
// hive does not exist.
func (s *BeeService) GetRecording(ctx context.Context, hiveID int64, start, end time.Time) (*models.Recording, error) {
	hive, err := s.Hives.Get(ctx, hiveID)
	if err != nil {
		return nil, err
	}
	if hive == nil {
		return nil, errors.NewDataUnavailableError("hive not found", nil)
	}

	records, err := s.Records.ListRange(ctx, hiveID,
		recordings.DayStart(start), recordings.DayEnd(end))
	if err != nil {
		return nil, err
	}

	recording := models.NewRecording(recordings.DayOf(start), records)
	return &recording, nil
}

// DeleteRecording deletes every record of the hive falling on the
// recording's calendar day. Any records the recording object carries
// are ignored; only its date drives the deletion. Reports
// OperationFailure when the hive does not exist.
func (s *BeeService) DeleteRecording(ctx context.Context, hiveID int64, recording models.Recording) error {
	hive, err := s.Hives.Get(ctx, hiveID)
	if err != nil {
		return err
	}
	if hive == nil {
		return errors.NewOperationFailureError("hive not found", nil)
	}

	err = s.Records.DeleteRange(ctx, hiveID,
		recordings.DayStart(recording.Date), recordings.DayEnd(recording.Date))
	if err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, hiveID)
	nuts.L.Infof("[RecordingService] Deleted recording %s of hive %d",
		recording.Date.Format(models.DateLayout), hiveID)
	s.Cleanup.Emit(cleanup.EventRecordingDeleted, strconv.FormatInt(hiveID, 10))
	return nil
}
