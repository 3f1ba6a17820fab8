// FilePath: internal/beeservice/beeservice.go
package beeservice

import (
	"context"

	"github.com/gobees/hub/internal/cache"
	"github.com/gobees/hub/internal/cleanup"
	"github.com/gobees/hub/internal/errors"
	"github.com/gobees/hub/internal/repository"
)

// BeeService contains all repositories and service-wide dependencies.
// Every public operation delivers exactly one outcome: a payload, an
// empty result, or a StoreError.
type BeeService struct {
	Apiaries repository.ApiaryRepository
	Hives    repository.HiveRepository
	Records  repository.RecordRepository
	Admin    repository.AdminRepository
	Cache    cache.RecordingsCache
	Cleanup  *cleanup.Notifier
}

// New creates a new BeeService instance
func New(
	apiaries repository.ApiaryRepository,
	hives repository.HiveRepository,
	records repository.RecordRepository,
	admin repository.AdminRepository,
	recordingsCache cache.RecordingsCache,
) *BeeService {
	return &BeeService{
		Apiaries: apiaries,
		Hives:    hives,
		Records:  records,
		Admin:    admin,
		Cache:    recordingsCache,
		Cleanup:  cleanup.New(),
	}
}

// Validate checks if all required dependencies are initialized
func (s *BeeService) Validate() error {
	if s.Apiaries == nil {
		return ErrMissingDependency("apiaries")
	}
	if s.Hives == nil {
		return ErrMissingDependency("hives")
	}
	if s.Records == nil {
		return ErrMissingDependency("records")
	}
	if s.Admin == nil {
		return ErrMissingDependency("admin")
	}
	if s.Cache == nil {
		return ErrMissingDependency("cache")
	}
	return nil
}

// DeleteEverything wipes the whole store, children first, atomically.
func (s *BeeService) DeleteEverything(ctx context.Context) error {
	if err := s.Admin.Wipe(ctx); err != nil {
		return err
	}
	s.Cache.InvalidateAll(ctx)
	s.Cleanup.Emit(cleanup.EventStoreWiped, "all")
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewOperationFailureError("missing dependency: "+name, nil)
}
