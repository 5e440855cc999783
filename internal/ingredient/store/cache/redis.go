package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"larder/internal/ingredient/models"
)

const (
	keyPrefix  = "larder:search:"
	versionKey = "larder:search:version"
)

// Redis caches search results across processes. Invalidation bumps a version
// counter baked into every key; stale generations age out via TTL instead of
// a scan-and-delete pass.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]*models.Ingredient, bool) {
	raw, err := r.client.Get(ctx, r.versionedKey(ctx, key)).Bytes()
	if err != nil {
		return nil, false
	}
	var ingredients []*models.Ingredient
	if err := json.Unmarshal(raw, &ingredients); err != nil {
		return nil, false
	}
	return ingredients, true
}

func (r *Redis) Set(ctx context.Context, key string, ingredients []*models.Ingredient) {
	raw, err := json.Marshal(ingredients)
	if err != nil {
		return
	}
	r.client.Set(ctx, r.versionedKey(ctx, key), raw, r.ttl)
}

func (r *Redis) Invalidate(ctx context.Context) {
	r.client.Incr(ctx, versionKey)
}

func (r *Redis) versionedKey(ctx context.Context, key string) string {
	version, err := r.client.Get(ctx, versionKey).Result()
	if err != nil {
		version = "0"
	}
	return fmt.Sprintf("%s%s:%s", keyPrefix, version, key)
}
