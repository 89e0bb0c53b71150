// Package memory хранит данные в памяти процесса. Используется для локального запуска и тестов.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/service"
)

type FacilityRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Facility
	order []string // в порядке вставки
	now   func() time.Time
}

func NewFacilityRepository() service.FacilityRepository {
	return &FacilityRepository{
		byID: make(map[string]*models.Facility),
		now:  time.Now,
	}
}

// Create сохраняет копию записи
func (r *FacilityRepository) Create(ctx context.Context, facility *models.Facility) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[facility.ID]; ok {
		return fmt.Errorf("facility %s: %w", facility.ID, models.ErrDuplicate)
	}
	r.byID[facility.ID] = facility.Clone()
	r.order = append(r.order, facility.ID)
	return nil
}

// List возвращает копии записей, новые первыми.
// При равном createdAt позже вставленная запись идет раньше.
func (r *FacilityRepository) List(ctx context.Context) ([]*models.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	facilities := make([]*models.Facility, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		facilities = append(facilities, r.byID[r.order[i]].Clone())
	}
	sortByCreatedDesc(facilities)
	return facilities, nil
}

func (r *FacilityRepository) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	facility, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("facility %s: %w", id, models.ErrNotFound)
	}
	return facility.Clone(), nil
}

// AppendRating добавляет оценку под блокировкой, поэтому обновления не теряются
func (r *FacilityRepository) AppendRating(ctx context.Context, id string, rating int) (*models.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	facility, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("facility %s: %w", id, models.ErrNotFound)
	}
	facility.AddRating(rating, r.now())
	return facility.Clone(), nil
}

func sortByCreatedDesc(facilities []*models.Facility) {
	slices.SortStableFunc(facilities, func(a, b *models.Facility) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
