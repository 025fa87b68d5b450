package cache

import (
	"context"
	"errors"
	"fmt"

	"promocode-service/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const antifraudKeyPrefix = "antifraud_cache"

// AntifraudCache stores raw anti-fraud verdicts per (email, promocode).
// Entries never expire in Redis; the caller decides freshness from the
// payload's cache_until.
type AntifraudCache struct {
	client *redis.Client
}

func NewAntifraudCache(client *redis.Client) *AntifraudCache {
	return &AntifraudCache{client: client}
}

func AntifraudKey(email, promoID string) string {
	return fmt.Sprintf("%s:%s:%s", antifraudKeyPrefix, email, promoID)
}

// Get returns (nil, nil) on a miss.
func (c *AntifraudCache) Get(ctx context.Context, email, promoID string) ([]byte, error) {
	data, err := c.client.Get(ctx, AntifraudKey(email, promoID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "redis get antifraud verdict")
	}
	return data, nil
}

// Set overwrites the entry; the last writer wins.
func (c *AntifraudCache) Set(ctx context.Context, email, promoID string, payload []byte) error {
	if err := c.client.Set(ctx, AntifraudKey(email, promoID), payload, 0).Err(); err != nil {
		return errs.Wrap(err, "redis set antifraud verdict")
	}
	return nil
}
