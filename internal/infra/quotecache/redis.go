package quotecache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "quote:last:"

// RedisCache keeps the most recent quote per holder in Redis. The TTL is
// cache retention only, not a quote expiry: quotes themselves never expire,
// commit always revalidates from scratch.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Put(ctx context.Context, holderID uuid.UUID, q *commands.Quote) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return errs.Wrap(err, "failed to encode quote")
	}
	if err := c.client.Set(ctx, keyPrefix+holderID.String(), payload, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store quote")
	}
	return nil
}

func (c *RedisCache) Get(ctx context.Context, holderID uuid.UUID) (*commands.Quote, error) {
	payload, err := c.client.Get(ctx, keyPrefix+holderID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to load quote")
	}

	var q commands.Quote
	if err := json.Unmarshal(payload, &q); err != nil {
		return nil, errs.Wrap(err, "failed to decode quote")
	}
	return &q, nil
}

func (c *RedisCache) Delete(ctx context.Context, holderID uuid.UUID) error {
	if err := c.client.Del(ctx, keyPrefix+holderID.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to delete quote")
	}
	return nil
}
