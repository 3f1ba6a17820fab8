// FilePath: internal/cache/cache.go

// Package cache holds derived recordings per hive so repeated
// hive-with-recordings reads skip re-aggregation. The store stays the
// source of truth: every record mutation invalidates the hive's entry.
package cache

import (
	"context"

	"github.com/gobees/hub/internal/models"
)

// RecordingsCache caches the aggregated recordings of a hive.
type RecordingsCache interface {
	Get(ctx context.Context, hiveID int64) ([]models.Recording, bool)
	Set(ctx context.Context, hiveID int64, recordings []models.Recording)
	Invalidate(ctx context.Context, hiveID int64)
	InvalidateAll(ctx context.Context)
}

// NoopCache disables caching; every Get misses.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(ctx context.Context, hiveID int64) ([]models.Recording, bool) {
	return nil, false
}

func (NoopCache) Set(ctx context.Context, hiveID int64, recordings []models.Recording) {}

func (NoopCache) Invalidate(ctx context.Context, hiveID int64) {}

func (NoopCache) InvalidateAll(ctx context.Context) {}
