// Package cache хранит полный список объектов между запросами
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/wheelmate/internal/models"
	"github.com/shenikar/wheelmate/internal/service"
)

const facilitiesKey = "facilities:list"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) service.FacilityCache {
	return &RedisCache{client: client, ttl: ttl}
}

// GetFacilities возвращает (nil, nil) при промахе
func (c *RedisCache) GetFacilities(ctx context.Context) ([]*models.Facility, error) {
	data, err := c.client.Get(ctx, facilitiesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get facilities from redis: %w", err)
	}
	return decodeFacilities(data)
}

func (c *RedisCache) SetFacilities(ctx context.Context, facilities []*models.Facility) error {
	data, err := json.Marshal(facilities)
	if err != nil {
		return fmt.Errorf("failed to marshal facilities: %w", err)
	}
	if err := c.client.Set(ctx, facilitiesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set facilities in redis: %w", err)
	}
	return nil
}

func (c *RedisCache) InvalidateFacilities(ctx context.Context) error {
	if err := c.client.Del(ctx, facilitiesKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate facilities in redis: %w", err)
	}
	return nil
}

func decodeFacilities(data []byte) ([]*models.Facility, error) {
	facilities := make([]*models.Facility, 0)
	if err := json.Unmarshal(data, &facilities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached facilities: %w", err)
	}
	for _, f := range facilities {
		if f.RatingValues == nil {
			f.RatingValues = []int{}
		}
	}
	return facilities, nil
}
