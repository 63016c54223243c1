package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"storefront/internal/domain"
)

// Redis stores the serialized wishlist as a single string value.
type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) Save(ctx context.Context, items []domain.Product) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal wishlist: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Load(ctx context.Context) ([]domain.Product, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.key, err)
	}
	var items []domain.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal wishlist: %w", err)
	}
	if items == nil {
		items = []domain.Product{}
	}
	return items, nil
}
