// Package mongodb реализует хранилища на MongoDB
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/service"
)

const (
	facilitiesCollection = "facilities"
	usersCollection      = "users"

	codeWriteConflict        = 112
	labelTransientTxnFailure = "TransientTransactionError"
)

type FacilityRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewFacilityRepository(db *mongo.Database) service.FacilityRepository {
	return &FacilityRepository{
		coll: db.Collection(facilitiesCollection),
		now:  time.Now,
	}
}

// Create вставляет новый документ
func (r *FacilityRepository) Create(ctx context.Context, facility *models.Facility) error {
	if _, err := r.coll.InsertOne(ctx, facility); err != nil {
		return fmt.Errorf("failed to create facility: %w", mapError(err))
	}
	return nil
}

// List возвращает все объекты, новые первыми
func (r *FacilityRepository) List(ctx context.Context) ([]*models.Facility, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", mapError(err))
	}
	defer cursor.Close(ctx)

	facilities := make([]*models.Facility, 0)
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, fmt.Errorf("failed to decode facilities: %w", err)
	}
	for _, f := range facilities {
		normalize(f)
	}
	return facilities, nil
}

func (r *FacilityRepository) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	facility := &models.Facility{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(facility)
	if err != nil {
		return nil, fmt.Errorf("failed to get facility %s: %w", id, mapError(err))
	}
	normalize(facility)
	return facility, nil
}

// AppendRating добавляет оценку и пересчитывает среднее одним пайплайн-обновлением.
// Документ обновляется атомарно, параллельные оценки не теряются.
func (r *FacilityRepository) AppendRating(ctx context.Context, id string, rating int) (*models.Facility, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "ratingValues", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$ratingValues", bson.A{}}}},
				bson.A{rating},
			}}}},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$ratingValues"}}},
			{Key: "updatedAt", Value: r.now().UTC().Truncate(models.TimestampPrecision)},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	facility := &models.Facility{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(facility)
	if err != nil {
		return nil, fmt.Errorf("failed to append rating to facility %s: %w", id, mapError(err))
	}
	normalize(facility)
	return facility, nil
}

// EnsureIndexes создает индексы, нужные репозиториям
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(facilitiesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create facilities index: %w", err)
	}

	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}
	return nil
}

// normalize гарантирует, что ratingValues никогда не null
func normalize(f *models.Facility) {
	if f.RatingValues == nil {
		f.RatingValues = []int{}
	}
}

// mapError переводит ошибки драйвера в ошибки моделей
func mapError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", models.ErrDuplicate, err)
	}
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) &&
		(serverErr.HasErrorCode(codeWriteConflict) || serverErr.HasErrorLabel(labelTransientTxnFailure)) {
		return fmt.Errorf("%w: %v", models.ErrConflict, err)
	}
	return err
}
