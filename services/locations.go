package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mapspot/admin-api/database"
	"github.com/mapspot/admin-api/model"
	"github.com/mapspot/admin-api/utils/cache"
)

const (
	locationsListKey     = "locations:list"
	locationsRevisionKey = "locations:revision"

	// Matches the frontend's 3-second poll interval, so within one
	// cycle every poller hits the cache at most once.
	locationsListTTL = 3 * time.Second
)

// LocationService orchestrates the location repository, the optional
// Redis cache for the polling clients, and the change-revision counter.
type LocationService struct {
	store database.Storage
	cache *cache.RedisCache // nil when Redis is not configured
	rev   atomic.Int64      // in-process fallback for the revision counter
}

// NewLocationService creates a new location service
func NewLocationService(store database.Storage, redisCache *cache.RedisCache) *LocationService {
	return &LocationService{
		store: store,
		cache: redisCache,
	}
}

// List returns all locations newest-first with the availability status
// derived relative to now. Served from cache when available.
func (s *LocationService) List(ctx context.Context) ([]model.Location, error) {
	now := time.Now().UTC()

	if s.cache != nil {
		cached := []model.Location{}
		if err := s.cache.GetJSON(ctx, locationsListKey, &cached); err == nil {
			deriveAll(cached, now)
			return cached, nil
		}
	}

	locations, err := s.store.ListLocations()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Best effort, a cache miss just means one extra store read.
		_ = s.cache.SetJSON(ctx, locationsListKey, locations, locationsListTTL)
	}

	deriveAll(locations, now)
	return locations, nil
}

// Create persists a new location and bumps the revision counter.
func (s *LocationService) Create(ctx context.Context, loc *model.Location) error {
	if err := s.store.CreateLocation(loc); err != nil {
		return err
	}
	loc.DeriveStatus(time.Now().UTC())
	s.invalidate(ctx)
	return nil
}

// Update applies a partial update to an existing location.
func (s *LocationService) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Location, error) {
	location, err := s.store.UpdateLocation(id, fields)
	if err != nil {
		return nil, err
	}
	location.DeriveStatus(time.Now().UTC())
	s.invalidate(ctx)
	return location, nil
}

// Delete removes a location by id.
func (s *LocationService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteLocation(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Revision returns the monotonic counter bumped on every location write.
// Pollers compare it against their last seen value to skip redundant
// full refetches.
func (s *LocationService) Revision(ctx context.Context) int64 {
	if s.cache != nil {
		if val, err := s.cache.GetInt64(ctx, locationsRevisionKey); err == nil {
			return val
		}
	}
	return s.rev.Load()
}

func (s *LocationService) invalidate(ctx context.Context) {
	s.rev.Add(1)
	if s.cache != nil {
		_ = s.cache.Delete(ctx, locationsListKey)
		_, _ = s.cache.Incr(ctx, locationsRevisionKey)
	}
}

func deriveAll(locations []model.Location, now time.Time) {
	for i := range locations {
		locations[i].DeriveStatus(now)
	}
}
