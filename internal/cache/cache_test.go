package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/wheelmate/internal/models"
)

func TestLocalCache_MissSetInvalidate(t *testing.T) {
	c := NewLocalCache(time.Minute)
	ctx := context.Background()

	got, err := c.GetFacilities(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	facilities := []*models.Facility{{ID: "a", RatingValues: []int{3}}}
	require.NoError(t, c.SetFacilities(ctx, facilities))

	got, err = c.GetFacilities(ctx)
	require.NoError(t, err)
	assert.Equal(t, facilities, got)

	require.NoError(t, c.InvalidateFacilities(ctx))
	got, err = c.GetFacilities(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocalCache_EmptyListIsAHit(t *testing.T) {
	c := NewLocalCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetFacilities(ctx, []*models.Facility{}))

	got, err := c.GetFacilities(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLocalCache_IsolatedFromCallers(t *testing.T) {
	c := NewLocalCache(time.Minute)
	ctx := context.Background()
	facilities := []*models.Facility{{ID: "a", RatingValues: []int{}}}
	require.NoError(t, c.SetFacilities(ctx, facilities))

	facilities[0].RatingValues = append(facilities[0].RatingValues, 5)
	got, _ := c.GetFacilities(ctx)
	got[0].Name = "mutated"

	again, _ := c.GetFacilities(ctx)
	assert.Empty(t, again[0].RatingValues)
	assert.Empty(t, again[0].Name)
}

func TestLocalCache_Expires(t *testing.T) {
	c := NewLocalCache(20 * time.Millisecond)
	ctx := context.Background()
	require.NoError(t, c.SetFacilities(ctx, []*models.Facility{{ID: "a"}}))

	assert.Eventually(t, func() bool {
		got, _ := c.GetFacilities(ctx)
		return got == nil
	}, time.Second, 10*time.Millisecond)
}

func TestDecodeFacilities(t *testing.T) {
	facilities, err := decodeFacilities([]byte(`[{"id":"a","ratingValues":null,"averageRating":0}]`))
	require.NoError(t, err)
	require.Len(t, facilities, 1)
	assert.NotNil(t, facilities[0].RatingValues)

	_, err = decodeFacilities([]byte(`{not json`))
	assert.Error(t, err)
}

func TestRedisCache_ReportsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	_, err := c.GetFacilities(ctx)
	assert.Error(t, err)
	assert.Error(t, c.SetFacilities(ctx, []*models.Facility{}))
	assert.Error(t, c.InvalidateFacilities(ctx))
}
