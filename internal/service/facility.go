package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shenikar/wheelmate/internal/apperror"
	"github.com/shenikar/wheelmate/internal/config"
	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/ranking"
	"github.com/shenikar/wheelmate/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=facility.go -destination=mocks/facility_mock.go -package=mocks

// FacilityRepository определяет контракт для работы с хранилищем объектов
type FacilityRepository interface {
	Create(ctx context.Context, facility *models.Facility) error
	// List возвращает все объекты, новые первыми
	List(ctx context.Context) ([]*models.Facility, error)
	GetByID(ctx context.Context, id string) (*models.Facility, error)
	// AppendRating атомарно добавляет оценку и пересчитывает среднее
	AppendRating(ctx context.Context, id string, rating int) (*models.Facility, error)
}

// FacilityCache кеширует полный список объектов. Промах - (nil, nil).
type FacilityCache interface {
	GetFacilities(ctx context.Context) ([]*models.Facility, error)
	SetFacilities(ctx context.Context, facilities []*models.Facility) error
	InvalidateFacilities(ctx context.Context) error
}

// FacilityService определяет контракт для бизнес-логики объектов
type FacilityService interface {
	CreateFacility(ctx context.Context, input models.FacilityInput, ownerID string) (*models.Facility, error)
	ListFacilities(ctx context.Context) ([]*models.Facility, error)
	GetFacility(ctx context.Context, id string) (*models.Facility, error)
	SubmitRating(ctx context.Context, id string, input models.RatingInput) (*models.Facility, error)
	ExploreFacilities(ctx context.Context, query ranking.Query) ([]ranking.Ranked, error)
	FindNearest(ctx context.Context, facilityType models.FacilityType, observer *models.Location) (ranking.Ranked, error)
	NearbyFacilities(ctx context.Context, observer *models.Location, radiusKm float64, limit int) ([]ranking.Ranked, error)
	GetStats(ctx context.Context) (ranking.Summary, error)
}

type facilityService struct {
	repo           FacilityRepository
	cache          FacilityCache
	publisher      webhook.EventPublisher
	logger         *logrus.Logger
	cfg            *config.Config
	now            func() time.Time
	retryBaseDelay time.Duration
}

func NewFacilityService(repo FacilityRepository, cache FacilityCache, publisher webhook.EventPublisher, logger *logrus.Logger, cfg *config.Config) FacilityService {
	return &facilityService{
		repo:           repo,
		cache:          cache,
		publisher:      publisher,
		logger:         logger,
		cfg:            cfg,
		now:            time.Now,
		retryBaseDelay: 10 * time.Millisecond,
	}
}

// CreateFacility валидирует ввод и сохраняет новый объект
func (s *facilityService) CreateFacility(ctx context.Context, input models.FacilityInput, ownerID string) (*models.Facility, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "facility",
		"method":   "CreateFacility",
		"owner_id": ownerID,
	})
	log.Info("Attempting to create a new facility")

	if ownerID == "" {
		return nil, apperror.NewUnauthorized("authenticated user is required")
	}
	if err := input.Validate(); err != nil {
		log.WithError(err).Warn("Facility input rejected")
		return nil, err
	}

	facility := models.NewFacility(input, ownerID, s.now())
	if err := s.repo.Create(ctx, facility); err != nil {
		log.WithError(err).Error("Failed to create facility in repository")
		return nil, apperror.NewInternal("could not create facility", err)
	}

	s.invalidateCache(ctx, log)
	s.publish(ctx, log, webhook.EventFacilityCreated, facility, 0)

	log.WithField("facility_id", facility.ID).Info("Facility created successfully")
	return facility, nil
}

// ListFacilities возвращает все объекты, новые первыми
func (s *facilityService) ListFacilities(ctx context.Context) ([]*models.Facility, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "facility",
		"method":  "ListFacilities",
	})

	cached, err := s.cache.GetFacilities(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read facilities from cache")
	}
	if cached != nil {
		log.WithField("count", len(cached)).Debug("Facilities served from cache")
		return cached, nil
	}

	facilities, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list facilities from repository")
		return nil, apperror.NewInternal("could not list facilities", err)
	}
	if facilities == nil {
		facilities = []*models.Facility{}
	}

	if err := s.cache.SetFacilities(ctx, facilities); err != nil {
		log.WithError(err).Warn("Failed to cache facilities")
	}

	log.WithField("count", len(facilities)).Info("Facilities listed successfully")
	return facilities, nil
}

// GetFacility получает объект по ID
func (s *facilityService) GetFacility(ctx context.Context, id string) (*models.Facility, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "facility",
		"method":      "GetFacility",
		"facility_id": id,
	})

	if id == "" {
		return nil, apperror.NewValidation("facility id is required")
	}

	facility, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Facility not found")
			return nil, apperror.NewNotFound("facility not found")
		}
		log.WithError(err).Error("Failed to get facility in repository")
		return nil, apperror.NewInternal("could not get facility", err)
	}
	return facility, nil
}

// SubmitRating добавляет оценку к объекту.
// Конфликты параллельных обновлений повторяются ограниченное число раз.
func (s *facilityService) SubmitRating(ctx context.Context, id string, input models.RatingInput) (*models.Facility, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "facility",
		"method":      "SubmitRating",
		"facility_id": id,
	})
	log.Info("Attempting to submit a rating")

	rating, err := input.Validate()
	if err != nil {
		log.WithError(err).Warn("Rating rejected")
		return nil, err
	}
	if id == "" {
		return nil, apperror.NewValidation("facility id is required")
	}
	if input.Feedback != "" {
		log.WithField("feedback", input.Feedback).Debug("Feedback received")
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryBaseDelay
	policy.MaxInterval = 20 * s.retryBaseDelay
	policy.MaxElapsedTime = 0
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(s.cfg.RatingMaxRetries)), ctx)

	var updated *models.Facility
	err = backoff.RetryNotify(func() error {
		f, err := s.repo.AppendRating(ctx, id, rating)
		if err != nil {
			if errors.Is(err, models.ErrConflict) {
				return err
			}
			return backoff.Permanent(err)
		}
		updated = f
		return nil
	}, b, func(err error, next time.Duration) {
		log.WithError(err).Warnf("Rating update conflicted, retrying in %v", next)
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.Warn("Attempted to rate a non-existent facility")
			return nil, apperror.NewNotFound("facility not found")
		case errors.Is(err, models.ErrConflict):
			log.WithError(err).Error("Rating update conflict retries exhausted")
			return nil, apperror.NewConflict("rating could not be saved due to concurrent updates, please retry", err)
		default:
			log.WithError(err).Error("Failed to append rating in repository")
			return nil, apperror.NewInternal("could not submit rating", err)
		}
	}

	s.invalidateCache(ctx, log)
	s.publish(ctx, log, webhook.EventFacilityRated, updated, rating)

	log.WithFields(logrus.Fields{
		"rating_count":   len(updated.RatingValues),
		"average_rating": updated.AverageRating,
	}).Info("Rating submitted successfully")
	return updated, nil
}

// ExploreFacilities применяет поиск, фильтр и сортировку к полному списку
func (s *facilityService) ExploreFacilities(ctx context.Context, query ranking.Query) ([]ranking.Ranked, error) {
	facilities, err := s.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Apply(facilities, query), nil
}

// FindNearest находит ближайший объект заданного типа
func (s *facilityService) FindNearest(ctx context.Context, facilityType models.FacilityType, observer *models.Location) (ranking.Ranked, error) {
	if !facilityType.Valid() {
		return ranking.Ranked{}, apperror.NewValidation(fmt.Sprintf("unknown facility type %q", facilityType))
	}
	if observer == nil {
		return ranking.Ranked{}, apperror.NewValidation("location needed")
	}

	facilities, err := s.ListFacilities(ctx)
	if err != nil {
		return ranking.Ranked{}, err
	}

	nearest, err := ranking.FindNearestOfType(facilities, facilityType, observer)
	switch {
	case errors.Is(err, ranking.ErrNoLocation):
		return ranking.Ranked{}, apperror.NewValidation("location needed")
	case errors.Is(err, ranking.ErrNoneFound):
		return ranking.Ranked{}, apperror.NewNotFound(fmt.Sprintf("no %s nearby", facilityType))
	case err != nil:
		return ranking.Ranked{}, apperror.NewInternal("could not find nearest facility", err)
	}
	return nearest, nil
}

// NearbyFacilities возвращает ближайшие объекты в радиусе
func (s *facilityService) NearbyFacilities(ctx context.Context, observer *models.Location, radiusKm float64, limit int) ([]ranking.Ranked, error) {
	if observer == nil {
		return nil, apperror.NewValidation("location needed")
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return nil, apperror.NewValidation("radius must be a positive finite number")
	}

	facilities, err := s.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Nearby(facilities, observer, radiusKm, limit), nil
}

// GetStats возвращает сводку по объектам и оценкам
func (s *facilityService) GetStats(ctx context.Context) (ranking.Summary, error) {
	facilities, err := s.ListFacilities(ctx)
	if err != nil {
		return ranking.Summary{}, err
	}
	return ranking.Summarize(facilities), nil
}

func (s *facilityService) invalidateCache(ctx context.Context, log *logrus.Entry) {
	if err := s.cache.InvalidateFacilities(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate facilities cache")
	}
}

// publish не влияет на результат операции: запись уже сохранена
func (s *facilityService) publish(ctx context.Context, log *logrus.Entry, eventType string, f *models.Facility, rating int) {
	event := webhook.Event{
		Type:          eventType,
		FacilityID:    f.ID,
		FacilityName:  f.Name,
		OwnerID:       f.OwnerID,
		Rating:        rating,
		RatingCount:   len(f.RatingValues),
		AverageRating: f.AverageRating,
		Timestamp:     s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish facility event")
	}
}
