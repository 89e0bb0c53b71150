package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/service"
)

type UserRepository struct {
	mu         sync.RWMutex
	byUsername map[string]models.User
}

func NewUserRepository() service.UserRepository {
	return &UserRepository{byUsername: make(map[string]models.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return fmt.Errorf("user %s: %w", user.Username, models.ErrDuplicate)
	}
	r.byUsername[user.Username] = *user
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", username, models.ErrNotFound)
	}
	return &user, nil
}
