package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shenikar/wheelmate/internal/apperror"
	"github.com/shenikar/wheelmate/internal/config"
	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/ranking"
	"github.com/shenikar/wheelmate/internal/service/mocks"
	"github.com/shenikar/wheelmate/internal/webhook"
	webhook_mocks "github.com/shenikar/wheelmate/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type facilityDeps struct {
	repo      *mocks.MockFacilityRepository
	cache     *mocks.MockFacilityCache
	publisher *webhook_mocks.MockEventPublisher
}

// newTestFacilityService собирает сервис на моках с фиксированными часами
func newTestFacilityService(t *testing.T) (*facilityService, facilityDeps) {
	ctrl := gomock.NewController(t)
	deps := facilityDeps{
		repo:      mocks.NewMockFacilityRepository(ctrl),
		cache:     mocks.NewMockFacilityCache(ctrl),
		publisher: webhook_mocks.NewMockEventPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{RatingMaxRetries: 3}

	svc := NewFacilityService(deps.repo, deps.cache, deps.publisher, logger, cfg).(*facilityService)
	svc.now = func() time.Time { return fixedNow }
	svc.retryBaseDelay = time.Millisecond
	return svc, deps
}

func ptr(v float64) *float64 { return &v }

func validInput() models.FacilityInput {
	return models.FacilityInput{
		Name:    "  City Hospital ",
		Address: "1 Main St",
		Type:    "hospital",
		Notes:   "ramp at the side entrance",
		Lat:     ptr(40.0),
		Lng:     ptr(-74.0),
	}
}

func TestCreateFacility_Success(t *testing.T) {
	// Подготовка
	svc, deps := newTestFacilityService(t)
	ctx := context.Background()

	// Ожидания
	var stored *models.Facility
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f *models.Facility) error {
			stored = f
			return nil
		}).
		Times(1)
	deps.cache.EXPECT().InvalidateFacilities(ctx).Return(nil).Times(1)
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.Event) error {
			assert.Equal(t, webhook.EventFacilityCreated, e.Type)
			assert.Equal(t, stored.ID, e.FacilityID)
			assert.Equal(t, "owner-1", e.OwnerID)
			return nil
		}).
		Times(1)

	// Действие
	facility, err := svc.CreateFacility(ctx, validInput(), "owner-1")

	// Проверки
	require.NoError(t, err)
	assert.Same(t, stored, facility)
	assert.NotEmpty(t, facility.ID)
	assert.Equal(t, "City Hospital", facility.Name)
	assert.Equal(t, models.TypeHospital, facility.Type)
	assert.Equal(t, models.Location{Lat: 40, Lng: -74}, facility.Location)
	assert.True(t, facility.Accessible)
	assert.Empty(t, facility.RatingValues)
	assert.NotNil(t, facility.RatingValues)
	assert.Zero(t, facility.AverageRating)
	assert.Equal(t, "owner-1", facility.OwnerID)
	assert.Equal(t, fixedNow, facility.CreatedAt)
	assert.Equal(t, fixedNow, facility.UpdatedAt)
}

func TestCreateFacility_ValidationError(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	input := validInput()
	input.Type = "castle"

	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0) // Репозиторий не должен вызываться

	facility, err := svc.CreateFacility(context.Background(), input, "owner-1")

	require.Error(t, err)
	assert.Nil(t, facility)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestCreateFacility_MissingCoordinates(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	input := validInput()
	input.Lat = nil

	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateFacility(context.Background(), input, "owner-1")

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Contains(t, err.Error(), "lat")
}

func TestCreateFacility_RequiresOwner(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateFacility(context.Background(), validInput(), "")

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
}

func TestCreateFacility_RepositoryError(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("db is down")).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateFacility(context.Background(), validInput(), "owner-1")

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInternal))
	assert.Equal(t, "internal server error", apperror.PublicMessage(err))
}

func TestCreateFacility_PublishFailureIsIgnored(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().InvalidateFacilities(gomock.Any()).Return(errors.New("redis down")).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	facility, err := svc.CreateFacility(context.Background(), validInput(), "owner-1")

	require.NoError(t, err)
	assert.NotNil(t, facility)
}

func TestListFacilities_FromCache(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	ctx := context.Background()
	cached := []*models.Facility{{ID: "a"}, {ID: "b"}}

	deps.cache.EXPECT().GetFacilities(ctx).Return(cached, nil).Times(1)
	deps.repo.EXPECT().List(gomock.Any()).Times(0)

	facilities, err := svc.ListFacilities(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, facilities)
}

func TestListFacilities_CacheMiss(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	ctx := context.Background()
	stored := []*models.Facility{{ID: "b"}, {ID: "a"}}

	gomock.InOrder(
		deps.cache.EXPECT().GetFacilities(ctx).Return(nil, nil),
		deps.repo.EXPECT().List(ctx).Return(stored, nil),
		deps.cache.EXPECT().SetFacilities(ctx, stored).Return(nil),
	)

	facilities, err := svc.ListFacilities(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, facilities)
}

func TestListFacilities_CacheErrorFallsBackToStore(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	stored := []*models.Facility{{ID: "a"}}

	deps.cache.EXPECT().GetFacilities(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	deps.repo.EXPECT().List(gomock.Any()).Return(stored, nil).Times(1)
	deps.cache.EXPECT().SetFacilities(gomock.Any(), stored).Return(errors.New("redis down")).Times(1)

	facilities, err := svc.ListFacilities(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, facilities)
}

func TestListFacilities_EmptyStoreReturnsEmptySlice(t *testing.T) {
	svc, deps := newTestFacilityService(t)

	deps.cache.EXPECT().GetFacilities(gomock.Any()).Return(nil, nil)
	deps.repo.EXPECT().List(gomock.Any()).Return(nil, nil)
	deps.cache.EXPECT().SetFacilities(gomock.Any(), gomock.Any()).Return(nil)

	facilities, err := svc.ListFacilities(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, facilities)
	assert.Empty(t, facilities)
}

func TestListFacilities_RepositoryError(t *testing.T) {
	svc, deps := newTestFacilityService(t)

	deps.cache.EXPECT().GetFacilities(gomock.Any()).Return(nil, nil)
	deps.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := svc.ListFacilities(context.Background())

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInternal))
}

func TestGetFacility(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, deps := newTestFacilityService(t)
		expected := &models.Facility{ID: "f-1"}
		deps.repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(expected, nil)

		facility, err := svc.GetFacility(context.Background(), "f-1")

		require.NoError(t, err)
		assert.Equal(t, expected, facility)
	})

	t.Run("not found", func(t *testing.T) {
		svc, deps := newTestFacilityService(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, fmt.Errorf("get: %w", models.ErrNotFound))

		_, err := svc.GetFacility(context.Background(), "missing")

		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

// ratingRepo применяет оценки к одной записи, как это делает хранилище
func ratingRepo(deps facilityDeps, facility *models.Facility) {
	deps.repo.EXPECT().
		AppendRating(gomock.Any(), facility.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rating int) (*models.Facility, error) {
			facility.AddRating(rating, fixedNow)
			return facility.Clone(), nil
		}).
		AnyTimes()
}

func TestSubmitRating_RecomputesAverage(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	ctx := context.Background()
	facility := &models.Facility{ID: "f-1", Name: "Diner", RatingValues: []int{}}

	ratingRepo(deps, facility)
	deps.cache.EXPECT().InvalidateFacilities(gomock.Any()).Return(nil).Times(2)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	updated, err := svc.SubmitRating(ctx, "f-1", models.RatingInput{Rating: ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, updated.RatingValues)
	assert.InDelta(t, 4.0, updated.AverageRating, 1e-9)

	updated, err = svc.SubmitRating(ctx, "f-1", models.RatingInput{Rating: ptr(2), Feedback: "narrow door"})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, updated.RatingValues)
	assert.InDelta(t, 3.0, updated.AverageRating, 1e-9)
}

func TestSubmitRating_PublishesRatedEvent(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	facility := &models.Facility{ID: "f-1", Name: "Diner", OwnerID: "owner-1", RatingValues: []int{5}}

	ratingRepo(deps, facility)
	deps.cache.EXPECT().InvalidateFacilities(gomock.Any()).Return(nil)
	deps.publisher.EXPECT().
		Publish(gomock.Any(), webhook.Event{
			Type:          webhook.EventFacilityRated,
			FacilityID:    "f-1",
			FacilityName:  "Diner",
			OwnerID:       "owner-1",
			Rating:        3,
			RatingCount:   2,
			AverageRating: 4,
			Timestamp:     fixedNow,
		}).
		Return(nil)

	_, err := svc.SubmitRating(context.Background(), "f-1", models.RatingInput{Rating: ptr(3)})

	require.NoError(t, err)
}

func TestSubmitRating_InvalidRatingNeverReachesStore(t *testing.T) {
	cases := []struct {
		name    string
		rating  *float64
		message string
	}{
		{"too high", ptr(6), "rating must be between 1 and 5"},
		{"zero", ptr(0), "rating must be between 1 and 5"},
		{"fraction", ptr(3.5), "rating must be a whole number between 1 and 5"},
		{"missing", nil, "rating is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, deps := newTestFacilityService(t)
			deps.repo.EXPECT().AppendRating(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.SubmitRating(context.Background(), "f-1", models.RatingInput{Rating: tc.rating})

			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindValidation))
			assert.Equal(t, tc.message, apperror.PublicMessage(err))
		})
	}
}

func TestSubmitRating_NotFound(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	deps.repo.EXPECT().
		AppendRating(gomock.Any(), "missing", 4).
		Return(nil, fmt.Errorf("append: %w", models.ErrNotFound)).
		Times(1) // Ошибка "не найдено" не повторяется
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SubmitRating(context.Background(), "missing", models.RatingInput{Rating: ptr(4)})

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestSubmitRating_RetriesConflicts(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	updated := &models.Facility{ID: "f-1", RatingValues: []int{5}, AverageRating: 5}

	gomock.InOrder(
		deps.repo.EXPECT().AppendRating(gomock.Any(), "f-1", 5).Return(nil, models.ErrConflict).Times(2),
		deps.repo.EXPECT().AppendRating(gomock.Any(), "f-1", 5).Return(updated, nil).Times(1),
	)
	deps.cache.EXPECT().InvalidateFacilities(gomock.Any()).Return(nil)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	facility, err := svc.SubmitRating(context.Background(), "f-1", models.RatingInput{Rating: ptr(5)})

	require.NoError(t, err)
	assert.Equal(t, updated, facility)
}

func TestSubmitRating_ConflictRetriesExhausted(t *testing.T) {
	svc, deps := newTestFacilityService(t)

	// Первая попытка плюс RatingMaxRetries повторов
	deps.repo.EXPECT().
		AppendRating(gomock.Any(), "f-1", 2).
		Return(nil, fmt.Errorf("append: %w", models.ErrConflict)).
		Times(svc.cfg.RatingMaxRetries + 1)
	deps.cache.EXPECT().InvalidateFacilities(gomock.Any()).Times(0)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SubmitRating(context.Background(), "f-1", models.RatingInput{Rating: ptr(2)})

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.True(t, errors.Is(err, models.ErrConflict))
}

func TestSubmitRating_ZeroRetriesMeansSingleAttempt(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	svc.cfg.RatingMaxRetries = 0

	deps.repo.EXPECT().
		AppendRating(gomock.Any(), "f-1", 3).
		Return(nil, models.ErrConflict).
		Times(1)

	_, err := svc.SubmitRating(context.Background(), "f-1", models.RatingInput{Rating: ptr(3)})

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
}

func TestSubmitRating_RepositoryErrorIsNotRetried(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	deps.repo.EXPECT().AppendRating(gomock.Any(), "f-1", 1).Return(nil, errors.New("disk full")).Times(1)

	_, err := svc.SubmitRating(context.Background(), "f-1", models.RatingInput{Rating: ptr(1)})

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInternal))
}

func policeAt(id string, lat float64) *models.Facility {
	return &models.Facility{ID: id, Type: models.TypePolice, Location: models.Location{Lat: lat, Lng: 0}}
}

func TestFindNearest(t *testing.T) {
	observer := &models.Location{Lat: 0, Lng: 0}
	// ~12.3, ~4.1 и ~7.0 км к северу
	stations := []*models.Facility{
		policeAt("far", 12.3/111.195),
		policeAt("near", 4.1/111.195),
		policeAt("mid", 7.0/111.195),
		{ID: "hospital", Type: models.TypeHospital, Location: models.Location{Lat: 0.001}},
	}

	t.Run("returns closest of type", func(t *testing.T) {
		svc, deps := newTestFacilityService(t)
		deps.cache.EXPECT().GetFacilities(gomock.Any()).Return(stations, nil)

		nearest, err := svc.FindNearest(context.Background(), models.TypePolice, observer)

		require.NoError(t, err)
		assert.Equal(t, "near", nearest.ID)
		require.NotNil(t, nearest.DistanceKm)
		assert.InDelta(t, 4.1, *nearest.DistanceKm, 0.01)
	})

	t.Run("none of type", func(t *testing.T) {
		svc, deps := newTestFacilityService(t)
		deps.cache.EXPECT().GetFacilities(gomock.Any()).Return(stations, nil)

		_, err := svc.FindNearest(context.Background(), models.TypeToilet, observer)

		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		assert.Equal(t, "no toilet nearby", apperror.PublicMessage(err))
	})

	t.Run("location needed", func(t *testing.T) {
		svc, deps := newTestFacilityService(t)
		deps.cache.EXPECT().GetFacilities(gomock.Any()).Times(0)

		_, err := svc.FindNearest(context.Background(), models.TypePolice, nil)

		assert.True(t, apperror.Is(err, apperror.KindValidation))
		assert.Equal(t, "location needed", apperror.PublicMessage(err))
	})

	t.Run("unknown type", func(t *testing.T) {
		svc, _ := newTestFacilityService(t)

		_, err := svc.FindNearest(context.Background(), "castle", observer)

		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})
}

func TestNearbyFacilities(t *testing.T) {
	observer := &models.Location{}
	facilities := []*models.Facility{
		policeAt("a", 1/111.195),
		policeAt("b", 2/111.195),
		policeAt("c", 3/111.195),
		policeAt("d", 4/111.195),
		policeAt("e", 9/111.195),
	}

	svc, deps := newTestFacilityService(t)
	deps.cache.EXPECT().GetFacilities(gomock.Any()).Return(facilities, nil)

	nearby, err := svc.NearbyFacilities(context.Background(), observer, 5, 3)

	require.NoError(t, err)
	require.Len(t, nearby, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{nearby[0].ID, nearby[1].ID, nearby[2].ID})

	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = svc.NearbyFacilities(context.Background(), observer, radius, 3)
		assert.True(t, apperror.Is(err, apperror.KindValidation), "radius %v", radius)
	}
}

func TestExploreFacilities(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	facilities := []*models.Facility{
		{ID: "1", Name: "Zed Diner", Type: models.TypeRestaurant, AverageRating: 3},
		{ID: "2", Name: "Alpha Diner", Type: models.TypeRestaurant, AverageRating: 5},
		{ID: "3", Name: "Clinic", Type: models.TypeHospital, AverageRating: 4},
	}
	deps.cache.EXPECT().GetFacilities(gomock.Any()).Return(facilities, nil)

	ranked, err := svc.ExploreFacilities(context.Background(), ranking.Query{
		Search:   "diner",
		Category: "restaurant",
		SortKey:  ranking.SortName,
	})

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Alpha Diner", ranked[0].Name)
	assert.Nil(t, ranked[0].DistanceKm)
}

func TestGetStats(t *testing.T) {
	svc, deps := newTestFacilityService(t)
	deps.cache.EXPECT().GetFacilities(gomock.Any()).Return([]*models.Facility{
		{Type: models.TypeRepair, RatingValues: []int{4, 2}},
		{Type: models.TypeRepair, RatingValues: []int{5}},
		{Type: models.TypeToilet, RatingValues: []int{}},
	}, nil)

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Facilities)
	assert.Equal(t, 3, stats.Ratings)
	assert.InDelta(t, 11.0/3.0, stats.AverageRating, 1e-9)
	assert.Equal(t, 2, stats.ByType[models.TypeRepair])
	assert.Equal(t, 0, stats.ByType[models.TypePolice])
}
