package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "facility_events"
)

// Типы событий
const (
	EventFacilityCreated = "facility.created"
	EventFacilityRated   = "facility.rated"
)

// Event - структура для данных вебхука
type Event struct {
	Type          string    `json:"type"`
	FacilityID    string    `json:"facility_id"`
	FacilityName  string    `json:"facility_name"`
	OwnerID       string    `json:"owner_id"`
	Rating        int       `json:"rating,omitempty"`
	RatingCount   int       `json:"rating_count"`
	AverageRating float64   `json:"average_rating"`
	Timestamp     time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий
//
//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда Redis не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
