// Package postgres реализует хранилища на PostgreSQL
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/service"
)

const facilityColumns = `
	id::text,
	name,
	type,
	lat,
	lng,
	address,
	notes,
	accessible,
	rating_values,
	average_rating,
	owner_id::text,
	created_at,
	updated_at`

type FacilityRepository struct {
	db *pgxpool.Pool
}

func NewFacilityRepository(db *pgxpool.Pool) service.FacilityRepository {
	return &FacilityRepository{db: db}
}

// Create создает новую запись об объекте в бд
func (r *FacilityRepository) Create(ctx context.Context, facility *models.Facility) error {
	query := `
		INSERT INTO facilities (id, name, type, lat, lng, address, notes, accessible,
			rating_values, average_rating, owner_id, created_at, updated_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::uuid, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		facility.ID,
		facility.Name,
		string(facility.Type),
		facility.Location.Lat,
		facility.Location.Lng,
		facility.Address,
		facility.Notes,
		facility.Accessible,
		facility.RatingValues,
		facility.AverageRating,
		facility.OwnerID,
		facility.CreatedAt,
		facility.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create facility: %w", mapError(err))
	}
	return nil
}

// List возвращает все объекты, новые первыми
func (r *FacilityRepository) List(ctx context.Context) ([]*models.Facility, error) {
	query := `SELECT` + facilityColumns + `
		FROM facilities
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", mapError(err))
	}
	defer rows.Close()

	facilities := make([]*models.Facility, 0)
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facility row: %w", err)
		}
		facilities = append(facilities, facility)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return facilities, nil
}

// GetByID возвращает объект по его UUID
func (r *FacilityRepository) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	query := `SELECT` + facilityColumns + `
		FROM facilities
		WHERE id = $1::uuid;
	`
	facility, err := scanFacility(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get facility %s: %w", id, mapError(err))
	}
	return facility, nil
}

// appendRatingQuery добавляет оценку и пересчитывает среднее по тому же массиву.
// Строка заблокирована на время UPDATE, поэтому параллельные оценки не теряются.
const appendRatingQuery = `
	UPDATE facilities SET
		rating_values = array_append(rating_values, $2::int),
		average_rating = (
			SELECT AVG(v)::float8 FROM unnest(array_append(rating_values, $2::int)) AS v
		),
		updated_at = NOW()
	WHERE id = $1::uuid
	RETURNING` + facilityColumns + `;
`

// AppendRating добавляет оценку и пересчитывает среднее одним UPDATE
func (r *FacilityRepository) AppendRating(ctx context.Context, id string, rating int) (*models.Facility, error) {
	facility, err := scanFacility(r.db.QueryRow(ctx, appendRatingQuery, id, rating))
	if err != nil {
		return nil, fmt.Errorf("failed to append rating to facility %s: %w", id, mapError(err))
	}
	return facility, nil
}

func scanFacility(row pgx.Row) (*models.Facility, error) {
	var (
		facility     models.Facility
		facilityType string
	)
	err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facilityType,
		&facility.Location.Lat,
		&facility.Location.Lng,
		&facility.Address,
		&facility.Notes,
		&facility.Accessible,
		&facility.RatingValues,
		&facility.AverageRating,
		&facility.OwnerID,
		&facility.CreatedAt,
		&facility.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	facility.Type = models.FacilityType(facilityType)
	if facility.RatingValues == nil {
		facility.RatingValues = []int{}
	}
	facility.CreatedAt = facility.CreatedAt.UTC()
	facility.UpdatedAt = facility.UpdatedAt.UTC()
	return &facility, nil
}

// mapError переводит ошибки драйвера в ошибки моделей
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %v", models.ErrDuplicate, err)
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return fmt.Errorf("%w: %v", models.ErrConflict, err)
		case pgerrcode.InvalidTextRepresentation:
			// id не является UUID, такой записи быть не может
			return fmt.Errorf("%w: %v", models.ErrNotFound, err)
		}
	}
	return err
}
