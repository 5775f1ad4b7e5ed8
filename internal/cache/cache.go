// Package cache keeps the latest nutrition result per recipe in redis so the
// read path does not hit postgres.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
)

const keyPrefix = "nutrition:result:"

// NutritionCache is a redis-backed service.ResultCache.
type NutritionCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ service.ResultCache = (*NutritionCache)(nil)

// Connect dials redis at addr and verifies the connection.
func Connect(ctx context.Context, addr string, ttl time.Duration) (*NutritionCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return New(client, ttl), nil
}

func New(client *redis.Client, ttl time.Duration) *NutritionCache {
	return &NutritionCache{client: client, ttl: ttl}
}

// Get returns the cached result for a recipe. A miss is (zero, false, nil).
func (c *NutritionCache) Get(ctx context.Context, recipeID uuid.UUID) (db.NutritionResult, bool, error) {
	data, err := c.client.Get(ctx, key(recipeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return db.NutritionResult{}, false, nil
		}
		return db.NutritionResult{}, false, fmt.Errorf("failed to get cache: %w", err)
	}
	var r db.NutritionResult
	if err := json.Unmarshal(data, &r); err != nil {
		return db.NutritionResult{}, false, fmt.Errorf("failed to unmarshal cache: %w", err)
	}
	return r, true, nil
}

// maxSetAttempts bounds the optimistic retries of Set when another writer
// touches the key between the read and the write.
const maxSetAttempts = 10

// Set caches result unless the cache already holds a result for the same
// recipe with a later ComputedAt. The check and the write run in one
// WATCH/MULTI transaction.
func (c *NutritionCache) Set(ctx context.Context, result db.NutritionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	k := key(result.RecipeID)
	txf := func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, k).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil && !replaces(cur, result) {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, data, c.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxSetAttempts; i++ {
		err = c.client.Watch(ctx, txf, k)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// replaces reports whether next should overwrite the cached entry cur. An
// entry that cannot be decoded is always replaced.
func replaces(cur []byte, next db.NutritionResult) bool {
	var cached db.NutritionResult
	if err := json.Unmarshal(cur, &cached); err != nil {
		return true
	}
	return !cached.ComputedAt.After(next.ComputedAt)
}

func (c *NutritionCache) Close() error {
	return c.client.Close()
}

func key(recipeID uuid.UUID) string {
	return keyPrefix + recipeID.String()
}
