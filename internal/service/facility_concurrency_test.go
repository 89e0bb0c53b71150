package service_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/wheelmate/internal/cache"
	"github.com/shenikar/wheelmate/internal/config"
	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/repository/memory"
	"github.com/shenikar/wheelmate/internal/service"
	"github.com/shenikar/wheelmate/internal/webhook"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService() service.FacilityService {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{RatingMaxRetries: 5}
	return service.NewFacilityService(
		memory.NewFacilityRepository(),
		cache.NewLocalCache(time.Minute),
		webhook.NopPublisher{},
		logger,
		cfg,
	)
}

func ptr(v float64) *float64 { return &v }

func TestSubmitRating_ConcurrentRatingsAreAllKept(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	facility, err := svc.CreateFacility(ctx, models.FacilityInput{
		Name:    "Station Square",
		Address: "2 Rail Rd",
		Type:    "toilet",
		Lat:     ptr(0),
		Lng:     ptr(0),
	}, "owner-1")
	require.NoError(t, err)

	const raters = 40
	var wg sync.WaitGroup
	for i := 0; i < raters; i++ {
		wg.Add(1)
		go func(rating float64) {
			defer wg.Done()
			_, err := svc.SubmitRating(ctx, facility.ID, models.RatingInput{Rating: ptr(rating)})
			assert.NoError(t, err)
		}(float64(i%5 + 1))
	}
	wg.Wait()

	stored, err := svc.GetFacility(ctx, facility.ID)
	require.NoError(t, err)
	assert.Len(t, stored.RatingValues, raters)
	assert.InDelta(t, 3.0, stored.AverageRating, 1e-9)
	assert.Equal(t, models.Location{Lat: 0, Lng: 0}, stored.Location)
}

func TestListFacilities_SeesWritesThroughCache(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	empty, err := svc.ListFacilities(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	created, err := svc.CreateFacility(ctx, models.FacilityInput{
		Name:    "Harbor Clinic",
		Address: "9 Dock St",
		Type:    "hospital",
		Lat:     ptr(51.5),
		Lng:     ptr(-0.1),
	}, "owner-1")
	require.NoError(t, err)

	facilities, err := svc.ListFacilities(ctx)
	require.NoError(t, err)
	require.Len(t, facilities, 1)
	assert.Equal(t, created.ID, facilities[0].ID)

	_, err = svc.SubmitRating(ctx, created.ID, models.RatingInput{Rating: ptr(5)})
	require.NoError(t, err)

	facilities, err = svc.ListFacilities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, facilities[0].RatingValues)
}
