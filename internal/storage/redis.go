package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pitchbook/internal/model"
)

// Redis keeps the collection snapshot as one string value under the fixed
// key. The value never expires.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Load(ctx context.Context) ([]model.Booking, error) {
	raw, err := r.client.Get(ctx, StorageKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", StorageKey, err)
	}
	var bookings []model.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, fmt.Errorf("decode %s: %w", StorageKey, err)
	}
	return bookings, nil
}

func (r *Redis) Save(ctx context.Context, bookings []model.Booking) error {
	if bookings == nil {
		bookings = []model.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	return r.client.Set(ctx, StorageKey, data, 0).Err()
}
