//go:build unit

package antifraud

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"promocode-service/internal/infra/cache"
	"promocode-service/internal/infra/metrics"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/config"
	"promocode-service/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail   = "user@example.com"
	testPromoID = "5f0c1f86-2c5a-4c89-9d0e-0d6f3a7c1e11"
)

var testNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeRecorder struct {
	mu        sync.Mutex
	decisions []string
	attempts  []string
}

func (r *fakeRecorder) ObserveFraudDecision(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, outcome)
}

func (r *fakeRecorder) ObserveFraudAttempt(result string, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, result)
}

func (r *fakeRecorder) SetBreakerState(string, gobreaker.State) {}

type fraudServer struct {
	*httptest.Server
	calls atomic.Int32
}

// newFraudServer answers the n-th validate call (1-based) with responses[n-1];
// the last response repeats.
func newFraudServer(t *testing.T, responses ...func(w http.ResponseWriter)) *fraudServer {
	t.Helper()
	fs := &fraudServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case pingPath:
			w.WriteHeader(http.StatusOK)
		case validatePath:
			var req validateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserEmail != testEmail || req.PromoID != testPromoID {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			n := int(fs.calls.Add(1))
			if n > len(responses) {
				n = len(responses)
			}
			responses[n-1](w)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func respond(status int, body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

type clientFixture struct {
	client   *Client
	recorder *fakeRecorder
	redis    *miniredis.Miniredis
	clock    *clock.MockClock
}

func newTestClient(t *testing.T, address string, mutate ...func(*config.AntiFraudConfig)) *clientFixture {
	t.Helper()
	cfg := config.NewTestConfig().AntiFraud
	cfg.Address = address
	cfg.Timeout = 500 * time.Millisecond
	cfg.BreakerMinRequests = 100
	for _, m := range mutate {
		m(&cfg)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	rec := &fakeRecorder{}
	clk := clock.NewMockClock(testNow)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := NewClient(cfg, cache.NewAntifraudCache(rdb), rec, clk, logger)
	require.NoError(t, err)
	return &clientFixture{client: c, recorder: rec, redis: mr, clock: clk}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	key := cache.AntifraudKey(testEmail, testPromoID)

	t.Run("allowed verdict with cache_until is cached until that instant", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `{"ok":true,"cache_until":"2025-01-01T13:00:00"}`))
		f := newTestClient(t, srv.URL)

		d := f.client.Validate(ctx, testEmail, testPromoID)
		require.True(t, d.OK)
		require.NotNil(t, d.CacheUntil)
		assert.True(t, d.CacheUntil.Equal(testNow.Add(time.Hour)))
		assert.Zero(t, f.redis.TTL(key), "freshness comes from cache_until, not a redis expiry")

		again := f.client.Validate(ctx, testEmail, testPromoID)
		assert.True(t, again.OK)
		assert.Equal(t, int32(1), srv.calls.Load(), "fresh cache entry must not reach the service")
		assert.Equal(t, []string{metrics.FraudAllowed, metrics.FraudCacheHit}, f.recorder.decisions)
	})

	t.Run("denied verdict is served from cache too", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `{"ok":false,"cache_until":"2025-01-02"}`))
		f := newTestClient(t, srv.URL)

		assert.False(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
		assert.False(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
		assert.Equal(t, int32(1), srv.calls.Load())
		assert.Equal(t, []string{metrics.FraudDenied, metrics.FraudCacheHit}, f.recorder.decisions)
	})

	t.Run("stale cache entry triggers a new call", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `{"ok":true}`))
		f := newTestClient(t, srv.URL)
		require.NoError(t, f.redis.Set(key, `{"ok":false,"cache_until":"2025-01-01T11:59:59Z"}`))

		d := f.client.Validate(ctx, testEmail, testPromoID)
		assert.True(t, d.OK)
		assert.Nil(t, d.CacheUntil)
		assert.Equal(t, int32(1), srv.calls.Load())
	})

	t.Run("entry expires once the clock passes cache_until", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `{"ok":true,"cache_until":"2025-01-01T12:30:00Z"}`))
		f := newTestClient(t, srv.URL)

		f.client.Validate(ctx, testEmail, testPromoID)
		f.clock.Add(31 * time.Minute)
		f.client.Validate(ctx, testEmail, testPromoID)

		assert.Equal(t, int32(2), srv.calls.Load())
	})

	t.Run("verdict without cache_until is not cached", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `{"ok":true}`))
		f := newTestClient(t, srv.URL)

		assert.True(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
		assert.False(t, f.redis.Exists(key))
	})

	t.Run("unparsable cache_until overwrites the entry and reads as a miss", func(t *testing.T) {
		body := `{"ok":true,"cache_until":"tomorrow"}`
		srv := newFraudServer(t, respond(http.StatusOK, body))
		f := newTestClient(t, srv.URL)
		require.NoError(t, f.redis.Set(key, `{"ok":false,"cache_until":"2024-01-01T00:00:00Z"}`))

		d := f.client.Validate(ctx, testEmail, testPromoID)
		assert.True(t, d.OK)
		assert.Nil(t, d.CacheUntil)
		stored, err := f.redis.Get(key)
		require.NoError(t, err)
		assert.Equal(t, body, stored)

		f.client.Validate(ctx, testEmail, testPromoID)
		assert.Equal(t, int32(2), srv.calls.Load())
	})

	t.Run("second attempt succeeds after a server error", func(t *testing.T) {
		srv := newFraudServer(t,
			respond(http.StatusInternalServerError, `{}`),
			respond(http.StatusOK, `{"ok":true}`),
		)
		f := newTestClient(t, srv.URL)

		assert.True(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
		assert.Equal(t, int32(2), srv.calls.Load())
		assert.Equal(t, []string{"failure", "success"}, f.recorder.attempts)
	})

	t.Run("fails closed after all attempts fail", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusServiceUnavailable, `{}`))
		f := newTestClient(t, srv.URL)

		d := f.client.Validate(ctx, testEmail, testPromoID)
		assert.False(t, d.OK)
		assert.Equal(t, int32(2), srv.calls.Load())
		assert.Equal(t, []string{metrics.FraudFailClosed}, f.recorder.decisions)
		assert.False(t, f.redis.Exists(key))
	})

	t.Run("client errors are not treated as verdicts", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusBadRequest, `{"ok":true}`))
		f := newTestClient(t, srv.URL)

		assert.False(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
	})

	t.Run("malformed body fails closed", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `not json`))
		f := newTestClient(t, srv.URL)

		assert.False(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
		assert.Equal(t, []string{metrics.FraudFailClosed}, f.recorder.decisions)
	})

	t.Run("slow service counts as a failed attempt", func(t *testing.T) {
		srv := newFraudServer(t, func(w http.ResponseWriter) {
			time.Sleep(200 * time.Millisecond)
			respond(http.StatusOK, `{"ok":true}`)(w)
		})
		f := newTestClient(t, srv.URL, func(c *config.AntiFraudConfig) {
			c.Timeout = 20 * time.Millisecond
			c.Attempts = 1
		})

		assert.False(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
	})

	t.Run("unreachable service fails closed", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `{"ok":true}`))
		srv.Close()
		f := newTestClient(t, srv.URL)

		assert.False(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
	})

	t.Run("cache outage is treated as a miss", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `{"ok":true}`))
		f := newTestClient(t, srv.URL)
		f.redis.Close()

		assert.True(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
		assert.Equal(t, int32(1), srv.calls.Load())
	})
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	srv := newFraudServer(t, respond(http.StatusInternalServerError, `{}`))
	f := newTestClient(t, srv.URL, func(c *config.AntiFraudConfig) {
		c.BreakerMinRequests = 2
		c.BreakerFailRatio = 0.5
	})

	assert.False(t, f.client.Validate(context.Background(), testEmail, testPromoID).OK)
	assert.Equal(t, gobreaker.StateOpen, f.client.BreakerState())

	assert.False(t, f.client.Validate(context.Background(), testEmail, testPromoID).OK)
	assert.Equal(t, int32(2), srv.calls.Load(), "open breaker must short-circuit calls")
}

func TestBreakerIgnoresCallerCancellation(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	f := newTestClient(t, srv.URL, func(c *config.AntiFraudConfig) {
		c.Timeout = 5 * time.Second
		c.BreakerMinRequests = 2
		c.BreakerFailRatio = 0.5
	})

	for range 3 {
		ctx, cancel := context.WithCancel(context.Background())
		stop := time.AfterFunc(20*time.Millisecond, cancel)
		assert.False(t, f.client.Validate(ctx, testEmail, testPromoID).OK)
		stop.Stop()
		cancel()
	}

	assert.Equal(t, gobreaker.StateClosed, f.client.BreakerState())
	assert.Equal(t, int32(3), calls.Load(), "each request reached the service")
}

func TestPing(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		srv := newFraudServer(t, respond(http.StatusOK, `{"ok":true}`))
		f := newTestClient(t, srv.URL)

		assert.NoError(t, f.client.Ping(context.Background()))
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)
		f := newTestClient(t, srv.URL)

		err := f.client.Ping(context.Background())
		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrUnavailable))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		f := newTestClient(t, srv.URL)

		err := f.client.Ping(context.Background())
		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrUnavailable))
	})
}

func TestParseCacheUntil(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-01-01T13:00:00Z", time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)},
		{"2025-01-01T13:00:00+03:00", time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2025-01-01T13:00:00.123456", time.Date(2025, 1, 1, 13, 0, 0, 123456000, msk)},
		{"2025-01-01 13:00:00", time.Date(2025, 1, 1, 13, 0, 0, 0, msk)},
		{"2025-01-01", time.Date(2025, 1, 1, 0, 0, 0, 0, msk)},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parseCacheUntil(c.in, msk)
			require.NoError(t, err)
			assert.True(t, c.want.Equal(got), "want %s got %s", c.want, got)
		})
	}

	_, err := parseCacheUntil("soon", msk)
	assert.True(t, errs.Is(err, errInvalidCacheUntil))
}
