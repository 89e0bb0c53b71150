package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/shenikar/wheelmate/internal/models"
)

// LocalCache - кеш в памяти процесса для запуска без Redis
type LocalCache struct {
	items *ttlcache.Cache[string, []*models.Facility]
}

func NewLocalCache(ttl time.Duration) *LocalCache {
	items := ttlcache.New(
		ttlcache.WithTTL[string, []*models.Facility](ttl),
		ttlcache.WithDisableTouchOnHit[string, []*models.Facility](),
	)
	return &LocalCache{items: items}
}

// Start запускает очистку просроченных записей до отмены ctx
func (c *LocalCache) Start(ctx context.Context) {
	go c.items.Start()
	go func() {
		<-ctx.Done()
		c.items.Stop()
	}()
}

func (c *LocalCache) GetFacilities(_ context.Context) ([]*models.Facility, error) {
	item := c.items.Get(facilitiesKey)
	if item == nil {
		return nil, nil
	}
	return cloneAll(item.Value()), nil
}

func (c *LocalCache) SetFacilities(_ context.Context, facilities []*models.Facility) error {
	c.items.Set(facilitiesKey, cloneAll(facilities), ttlcache.DefaultTTL)
	return nil
}

func (c *LocalCache) InvalidateFacilities(_ context.Context) error {
	c.items.Delete(facilitiesKey)
	return nil
}

// cloneAll отвязывает кеш от записей, которые держат вызывающие
func cloneAll(facilities []*models.Facility) []*models.Facility {
	clones := make([]*models.Facility, len(facilities))
	for i, f := range facilities {
		clones[i] = f.Clone()
	}
	return clones
}
