package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"

	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

const memoryCleanupInterval = 5 * time.Minute

// MemoryCacheRepository is the in-process cache used when Redis is not configured.
// Values are stored JSON encoded so callers never share mutable state.
type MemoryCacheRepository struct {
	cache *gocache.Cache
}

// NewMemoryCacheRepository builds an empty cache expiring entries after defaultTTL.
func NewMemoryCacheRepository(defaultTTL time.Duration) *MemoryCacheRepository {
	return &MemoryCacheRepository{cache: gocache.New(defaultTTL, memoryCleanupInterval)}
}

// Get decodes the cached value for key into dest.
func (r *MemoryCacheRepository) Get(_ context.Context, key string, dest interface{}) error {
	value, found := r.cache.Get(key)
	if !found {
		return appErrors.ErrCacheMiss
	}
	raw, ok := value.([]byte)
	if !ok {
		r.cache.Delete(key)
		return appErrors.ErrCacheMiss
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set stores value under key for ttl.
func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	r.cache.Set(key, payload, ttl)
	return nil
}

// DeleteByPattern removes every key matching the glob pattern.
func (r *MemoryCacheRepository) DeleteByPattern(_ context.Context, pattern string) error {
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}
	for key := range r.cache.Items() {
		if ok, _ := path.Match(pattern, key); ok {
			r.cache.Delete(key)
		}
	}
	return nil
}

// Len returns the number of live entries.
func (r *MemoryCacheRepository) Len() int {
	return r.cache.ItemCount()
}
