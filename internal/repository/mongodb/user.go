package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/service"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) service.UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// Create опирается на уникальный индекс по username
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", mapError(err))
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(user); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, mapError(err))
	}
	return user, nil
}
