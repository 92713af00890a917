package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/courtbooking/config"
	"github.com/Domenick1991/courtbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds whole-day availability listings. Only unfiltered
// (date-only) queries are cached; a booking invalidates its date.
type RedisCache struct {
	client          *redis.Client
	availabilityTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, availabilityTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:          redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		availabilityTTL: availabilityTTL,
	}
}

func (c *RedisCache) GetAvailability(ctx context.Context, date string) ([]domain.Slot, error) {
	data, err := c.client.Get(ctx, availabilityKey(date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var slots []domain.Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *RedisCache) SetAvailability(ctx context.Context, date string, slots []domain.Slot) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(date), payload, c.availabilityTTL).Err()
}

func (c *RedisCache) InvalidateDate(ctx context.Context, date string) error {
	return c.client.Del(ctx, availabilityKey(date)).Err()
}

func availabilityKey(date string) string {
	return "cache:availability:" + date
}
