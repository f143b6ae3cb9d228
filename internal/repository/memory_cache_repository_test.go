package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
)

func TestMemoryCacheRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryCacheRepository(time.Minute)
	ctx := context.Background()

	var rows []models.CourseSummary
	assert.True(t, errors.Is(repo.Get(ctx, "catalog:list", &rows), appErrors.ErrCacheMiss))

	want := []models.CourseSummary{{Name: "CSC216", Section: "001", Title: "SDF", Meeting: "MW 1:30PM-2:45PM", OpenSeats: 10}}
	require.NoError(t, repo.Set(ctx, "catalog:list", want, 0))
	require.NoError(t, repo.Get(ctx, "catalog:list", &rows))
	assert.Equal(t, want, rows)
}

func TestMemoryCacheRepositoryDeleteByPattern(t *testing.T) {
	repo := NewMemoryCacheRepository(time.Minute)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, "catalog:list", []string{"a"}, 0))
	require.NoError(t, repo.Set(ctx, "catalog:CSC216:001", "x", 0))
	require.NoError(t, repo.Set(ctx, "schedule:s1", "y", 0))

	require.NoError(t, repo.DeleteByPattern(ctx, "catalog:*"))
	assert.Equal(t, 1, repo.Len())
	assert.Error(t, repo.DeleteByPattern(ctx, "["))
}

func TestMemoryCacheRepositoryExpires(t *testing.T) {
	repo := NewMemoryCacheRepository(time.Minute)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, "k", 1, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var v int
	assert.True(t, errors.Is(repo.Get(ctx, "k", &v), appErrors.ErrCacheMiss))
}

func TestCacheRepositoryWithoutClientMisses(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	var v int
	assert.True(t, errors.Is(repo.Get(context.Background(), "k", &v), appErrors.ErrCacheMiss))
	assert.NoError(t, repo.Set(context.Background(), "k", 1, time.Second))
	assert.NoError(t, repo.DeleteByPattern(context.Background(), "*"))
	assert.NoError(t, repo.Close())
}
