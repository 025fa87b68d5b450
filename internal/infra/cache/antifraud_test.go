//go:build unit

package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"promocode-service/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*AntifraudCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewAntifraudCache(client), mr
}

func TestAntifraudCache(t *testing.T) {
	ctx := context.Background()
	const email, promoID = "user@example.com", "5f0c1f86-2c5a-4c89-9d0e-0d6f3a7c1e11"

	t.Run("miss returns nil without error", func(t *testing.T) {
		c, _ := newTestCache(t)

		data, err := c.Get(ctx, email, promoID)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("set stores payload without expiry", func(t *testing.T) {
		c, mr := newTestCache(t)
		payload := []byte(`{"ok":true,"cache_until":"2025-01-01T13:00:00"}`)

		require.NoError(t, c.Set(ctx, email, promoID, payload))

		key := AntifraudKey(email, promoID)
		assert.Equal(t, "antifraud_cache:user@example.com:"+promoID, key)
		assert.Zero(t, mr.TTL(key))

		mr.FastForward(30 * 24 * time.Hour)
		data, err := c.Get(ctx, email, promoID)
		require.NoError(t, err)
		assert.Equal(t, payload, data, "staleness is judged from cache_until, not by redis")
	})

	t.Run("last writer wins", func(t *testing.T) {
		c, _ := newTestCache(t)

		require.NoError(t, c.Set(ctx, email, promoID, []byte(`{"ok":true}`)))
		require.NoError(t, c.Set(ctx, email, promoID, []byte(`{"ok":false}`)))

		data, err := c.Get(ctx, email, promoID)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":false}`, string(data))
	})

	t.Run("keys are scoped per email and promocode", func(t *testing.T) {
		c, _ := newTestCache(t)
		require.NoError(t, c.Set(ctx, email, promoID, []byte(`{"ok":true}`)))

		data, err := c.Get(ctx, "other@example.com", promoID)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("redis failure is reported", func(t *testing.T) {
		c, mr := newTestCache(t)
		mr.Close()

		_, err := c.Get(ctx, email, promoID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis get antifraud verdict")

		err = c.Set(ctx, email, promoID, []byte(`{"ok":true}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis set antifraud verdict")
	})
}

func TestNewRedisClientPingFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	cfg := config.RedisConfig{Host: mr.Host(), Port: port}
	mr.Close()

	_, err = NewRedisClient(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping redis")
}
