// FilePath: internal/repository/sqlstore/sqlstore_test.go
package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) database.DB {
	t.Helper()
	db, err := database.NewSqliteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, InitializeSchema(db))
	return db
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func saveApiary(t *testing.T, repo *ApiaryRepo, id int64, name string) {
	t.Helper()
	err := repo.Save(context.Background(), &models.Apiary{
		ID: id, Name: name, CreatedAt: ts(t, "2024-01-01T00:00:00Z"), UpdatedAt: ts(t, "2024-01-01T00:00:00Z"),
	})
	require.NoError(t, err)
}

func saveHive(t *testing.T, repo *HiveRepo, apiaryID, id int64, name string) {
	t.Helper()
	err := repo.Save(context.Background(), apiaryID, &models.Hive{
		ID: id, Name: name, CreatedAt: ts(t, "2024-01-01T00:00:00Z"), UpdatedAt: ts(t, "2024-01-01T00:00:00Z"),
	})
	require.NoError(t, err)
}

func TestApiarySaveAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewApiaryRepository(db)
	ctx := context.Background()

	apiary := &models.Apiary{
		ID:        3,
		Name:      "Valley Apiary",
		Location:  "Rio Duero",
		Latitude:  41.5,
		Longitude: -3.2,
		Notes:     "south slope",
		CreatedAt: ts(t, "2024-01-01T10:00:00Z"),
		UpdatedAt: ts(t, "2024-01-01T10:00:00Z"),
	}
	require.NoError(t, repo.Save(ctx, apiary))

	got, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Valley Apiary", got.Name)
	assert.Equal(t, 41.5, got.Latitude)
	assert.True(t, got.CreatedAt.Equal(apiary.CreatedAt))
}

func TestApiaryGetAbsentIsEmptyResult(t *testing.T) {
	db := newTestDB(t)
	repo := NewApiaryRepository(db)

	got, err := repo.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestApiarySaveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewApiaryRepository(db)
	ctx := context.Background()

	apiary := &models.Apiary{ID: 1, Name: "Home", CreatedAt: ts(t, "2024-01-01T00:00:00Z")}
	require.NoError(t, repo.Save(ctx, apiary))
	require.NoError(t, repo.Save(ctx, apiary))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Home", all[0].Name)
}

func TestApiarySaveUpdatesExisting(t *testing.T) {
	db := newTestDB(t)
	repo := NewApiaryRepository(db)
	ctx := context.Background()

	saveApiary(t, repo, 1, "Old Name")
	saveApiary(t, repo, 1, "New Name")

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Name", got.Name)
}

func TestApiaryNextID(t *testing.T) {
	db := newTestDB(t)
	repo := NewApiaryRepository(db)
	ctx := context.Background()

	next, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), next, "empty collection starts at 0")

	for _, id := range []int64{0, 2, 5} {
		saveApiary(t, repo, id, "a")
	}

	next, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), next)
}

func TestHiveSaveLinksApiary(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")
	saveHive(t, hives, 1, 11, "Hive B")

	got, err := hives.Get(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ApiaryID)

	list, err := hives.ListByApiary(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRecordSaveManyAssignsContiguousIDs(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")
	saveHive(t, hives, 1, 11, "Hive B")

	// Seed the global id space through another hive.
	require.NoError(t, records.Save(ctx, 11, &models.Record{ID: 4, Timestamp: ts(t, "2024-01-01T00:00:00Z")}))

	batch := []*models.Record{
		{Timestamp: ts(t, "2024-01-02T08:00:00Z")},
		{Timestamp: ts(t, "2024-01-02T09:00:00Z")},
		{Timestamp: ts(t, "2024-01-02T10:00:00Z")},
	}
	require.NoError(t, records.SaveMany(ctx, 10, batch))

	// Ids continue the global counter, in input order.
	assert.Equal(t, int64(5), batch[0].ID)
	assert.Equal(t, int64(6), batch[1].ID)
	assert.Equal(t, int64(7), batch[2].ID)

	stored, err := records.ListByHive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, int64(5), stored[0].ID)
}

func TestRecordListByHiveSorted(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")

	// Insert out of timestamp order; equal timestamps tie-break by id.
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-02T00:00:00Z")}))
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 2, Timestamp: ts(t, "2024-01-01T00:00:00Z")}))
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 3, Timestamp: ts(t, "2024-01-01T00:00:00Z")}))

	got, err := records.ListByHive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, int64(1), got[2].ID)
}

func TestRecordRangeInclusivity(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")

	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T00:00:00Z")}))
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 2, Timestamp: ts(t, "2024-01-01T23:59:59.999Z")}))
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 3, Timestamp: ts(t, "2024-01-02T00:00:00Z")}))

	got, err := records.ListRange(ctx, 10,
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-01T23:59:59.999Z"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestRecordDeleteRange(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")

	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z")}))
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 2, Timestamp: ts(t, "2024-01-01T20:00:00Z")}))
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 3, Timestamp: ts(t, "2024-01-02T09:00:00Z")}))

	err := records.DeleteRange(ctx, 10,
		ts(t, "2024-01-01T00:00:00Z"), ts(t, "2024-01-01T23:59:59.999Z"))
	require.NoError(t, err)

	remaining, err := records.ListByHive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, int64(3), remaining[0].ID)
}

func TestRecordSaveUpdatesByID(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")

	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z"), NumBees: 5}))
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z"), NumBees: 9}))

	got, err := records.ListByHive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 9, got[0].NumBees)
}

func TestApiaryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveApiary(t, apiaries, 2, "Other")
	saveHive(t, hives, 1, 10, "Hive A")
	saveHive(t, hives, 1, 11, "Hive B")
	saveHive(t, hives, 2, 20, "Hive C")
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z")}))
	require.NoError(t, records.Save(ctx, 11, &models.Record{ID: 2, Timestamp: ts(t, "2024-01-01T09:00:00Z")}))
	require.NoError(t, records.Save(ctx, 20, &models.Record{ID: 3, Timestamp: ts(t, "2024-01-01T10:00:00Z")}))

	require.NoError(t, apiaries.Delete(ctx, 1))

	// Hives and records of apiary 1 are gone, apiary 2 untouched.
	gone, err := hives.Get(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, gone)

	orphans, err := records.ListByHive(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, orphans)
	orphans, err = records.ListByHive(ctx, 11)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	kept, err := records.ListByHive(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestApiaryDeleteMissingReportsFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewApiaryRepository(db)

	err := repo.Delete(context.Background(), 99)
	assert.Error(t, err)
}

func TestHiveDeleteCascadesToRecords(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z")}))

	require.NoError(t, hives.Delete(ctx, 10))

	orphans, err := records.ListByHive(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestApiaryDeleteAllCascades(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z")}))

	require.NoError(t, apiaries.DeleteAll(ctx))

	all, err := apiaries.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	orphans, err := records.ListByHive(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, orphans, "bulk delete must cascade like single delete")
}

func TestAdminWipe(t *testing.T) {
	db := newTestDB(t)
	apiaries := NewApiaryRepository(db)
	hives := NewHiveRepository(db)
	records := NewRecordRepository(db)
	admin := NewAdminRepository(db)
	ctx := context.Background()

	saveApiary(t, apiaries, 1, "Home")
	saveHive(t, hives, 1, 10, "Hive A")
	require.NoError(t, records.Save(ctx, 10, &models.Record{ID: 1, Timestamp: ts(t, "2024-01-01T08:00:00Z")}))

	require.NoError(t, admin.Wipe(ctx))

	all, err := apiaries.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	next, err := records.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), next)
}
