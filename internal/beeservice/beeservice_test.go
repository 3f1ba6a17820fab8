// FilePath: internal/beeservice/beeservice_test.go
package beeservice

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/models"
	"github.com/gobees/hub/internal/repository/sqlstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCache is an in-memory RecordingsCache that counts invalidations so
// tests can assert cache coherence on mutations.
type memCache struct {
	entries        map[int64][]models.Recording
	invalidations  map[int64]int
	invalidatedAll int
}

func newMemCache() *memCache {
	return &memCache{
		entries:       map[int64][]models.Recording{},
		invalidations: map[int64]int{},
	}
}

func (c *memCache) Get(ctx context.Context, hiveID int64) ([]models.Recording, bool) {
	recs, ok := c.entries[hiveID]
	return recs, ok
}

func (c *memCache) Set(ctx context.Context, hiveID int64, recordings []models.Recording) {
	c.entries[hiveID] = recordings
}

func (c *memCache) Invalidate(ctx context.Context, hiveID int64) {
	delete(c.entries, hiveID)
	c.invalidations[hiveID]++
}

func (c *memCache) InvalidateAll(ctx context.Context) {
	c.entries = map[int64][]models.Recording{}
	c.invalidatedAll++
}

func newTestService(t *testing.T) (*BeeService, *memCache) {
	t.Helper()
	db, err := database.NewSqliteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlstore.InitializeSchema(db))

	cached := newMemCache()
	svc := New(
		sqlstore.NewApiaryRepository(db),
		sqlstore.NewHiveRepository(db),
		sqlstore.NewRecordRepository(db),
		sqlstore.NewAdminRepository(db),
		cached,
	)
	require.NoError(t, svc.Validate())
	return svc, cached
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func seedHive(t *testing.T, svc *BeeService, apiaryID, hiveID int64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.SaveApiary(ctx, &models.Apiary{ID: apiaryID, Name: "Apiary"}))
	require.NoError(t, svc.SaveHive(ctx, apiaryID, &models.Hive{ID: hiveID, Name: "Hive"}))
}

func TestSaveApiaryRequiresName(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.SaveApiary(context.Background(), &models.Apiary{ID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestGetApiaryAttachesHives(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seedHive(t, svc, 1, 10)
	require.NoError(t, svc.SaveHive(ctx, 1, &models.Hive{ID: 11, Name: "Second"}))

	apiary, err := svc.GetApiary(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, apiary)
	assert.Len(t, apiary.Hives, 2)
}

func TestGetApiaryAbsentIsEmptyResult(t *testing.T) {
	svc, _ := newTestService(t)

	apiary, err := svc.GetApiary(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, apiary)
}

func TestGetHiveWithRecordingsAggregatesPerDay(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seedHive(t, svc, 1, 10)
	require.NoError(t, svc.SaveRecords(ctx, 10, []*models.Record{
		{Timestamp: ts(t, "2024-01-01T08:00:00Z"), NumBees: 10},
		{Timestamp: ts(t, "2024-01-01T20:00:00Z"), NumBees: 20},
		{Timestamp: ts(t, "2024-01-02T09:00:00Z"), NumBees: 30},
	}))

	hive, err := svc.GetHiveWithRecordings(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, hive)
	require.Len(t, hive.Recordings, 2)
	assert.Len(t, hive.Recordings[0].Records, 2)
	assert.Len(t, hive.Recordings[1].Records, 1)
	assert.Equal(t, "2024-01-01", hive.Recordings[0].Date.Format(models.DateLayout))
	assert.Equal(t, "2024-01-02", hive.Recordings[1].Date.Format(models.DateLayout))
}

func TestGetHiveWithRecordingsMissingHive(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetHiveWithRecordings(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.IsDataUnavailable(err))
}

func TestGetHiveWithRecordingsUsesCache(t *testing.T) {
	svc, cached := newTestService(t)
	ctx := context.Background()

	seedHive(t, svc, 1, 10)
	require.NoError(t, svc.SaveRecord(ctx, 10, &models.Record{Timestamp: ts(t, "2024-01-01T08:00:00Z")}))

	hive, err := svc.GetHiveWithRecordings(ctx, 10)
	require.NoError(t, err)
	require.Len(t, hive.Recordings, 1)
	assert.Contains(t, cached.entries, int64(10), "first read populates the cache")

	// A stale cached entry is served as-is until a mutation drops it.
	cached.entries[10] = []models.Recording{}
	hive, err = svc.GetHiveWithRecordings(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, hive.Recordings)
}

func TestSaveRecordRequiresTimestamp(t *testing.T) {
	svc, _ := newTestService(t)
	seedHive(t, svc, 1, 10)

	err := svc.SaveRecord(context.Background(), 10, &models.Record{ID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestSaveRecordInvalidatesCache(t *testing.T) {
	svc, cached := newTestService(t)
	ctx := context.Background()

	seedHive(t, svc, 1, 10)
	cached.entries[10] = []models.Recording{{}}

	require.NoError(t, svc.SaveRecord(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z")}))
	assert.NotContains(t, cached.entries, int64(10))
	assert.Equal(t, 1, cached.invalidations[10])
}

func TestGetRecordingLabeledWithStartDay(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seedHive(t, svc, 1, 10)
	require.NoError(t, svc.SaveRecords(ctx, 10, []*models.Record{
		{Timestamp: ts(t, "2024-01-01T08:00:00Z")},
		{Timestamp: ts(t, "2024-01-02T23:59:59.999Z")},
		{Timestamp: ts(t, "2024-01-03T00:00:00Z")},
	}))

	recording, err := svc.GetRecording(ctx, 10,
		ts(t, "2024-01-01T15:30:00Z"), ts(t, "2024-01-02T04:00:00Z"))
	require.NoError(t, err)
	require.NotNil(t, recording)
	assert.Equal(t, "2024-01-01", recording.Date.Format(models.DateLayout))
	// Bounds snap to full days: the end day's last millisecond is in,
	// the following midnight is out.
	assert.Len(t, recording.Records, 2)
}

func TestGetRecordingMissingHive(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetRecording(context.Background(), 99,
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-01T00:00:00Z"))
	require.Error(t, err)
	assert.True(t, errors.IsDataUnavailable(err))
}

func TestDeleteRecordingRemovesOneDayOnly(t *testing.T) {
	svc, cached := newTestService(t)
	ctx := context.Background()

	seedHive(t, svc, 1, 10)
	require.NoError(t, svc.SaveRecords(ctx, 10, []*models.Record{
		{Timestamp: ts(t, "2024-01-01T08:00:00Z")},
		{Timestamp: ts(t, "2024-01-01T23:59:59.999Z")},
		{Timestamp: ts(t, "2024-01-02T00:00:00Z")},
	}))

	cached.entries[10] = []models.Recording{{}}
	err := svc.DeleteRecording(ctx, 10, models.Recording{Date: ts(t, "2024-01-01T12:00:00Z")})
	require.NoError(t, err)
	assert.NotContains(t, cached.entries, int64(10))

	hive, err := svc.GetHiveWithRecordings(ctx, 10)
	require.NoError(t, err)
	require.Len(t, hive.Recordings, 1)
	assert.Equal(t, "2024-01-02", hive.Recordings[0].Date.Format(models.DateLayout))
}

func TestDeleteRecordingMissingHive(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteRecording(context.Background(), 99,
		models.Recording{Date: ts(t, "2024-01-01T00:00:00Z")})
	require.Error(t, err)
	assert.True(t, errors.IsOperationFailure(err))
}

func TestDeleteApiaryInvalidatesHiveCaches(t *testing.T) {
	svc, cached := newTestService(t)
	ctx := context.Background()

	seedHive(t, svc, 1, 10)
	require.NoError(t, svc.SaveHive(ctx, 1, &models.Hive{ID: 11, Name: "Second"}))
	cached.entries[10] = []models.Recording{{}}
	cached.entries[11] = []models.Recording{{}}

	require.NoError(t, svc.DeleteApiary(ctx, 1))
	assert.Empty(t, cached.entries)

	apiary, err := svc.GetApiary(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, apiary)
}

func TestDeleteEverything(t *testing.T) {
	svc, cached := newTestService(t)
	ctx := context.Background()

	seedHive(t, svc, 1, 10)
	require.NoError(t, svc.SaveRecord(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z")}))
	cached.entries[10] = []models.Recording{{}}

	require.NoError(t, svc.DeleteEverything(ctx))
	assert.Equal(t, 1, cached.invalidatedAll)

	apiaries, err := svc.ListApiaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, apiaries)

	next, err := svc.NextRecordID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), next)
}
