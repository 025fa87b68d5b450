package antifraud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"promocode-service/internal/infra/metrics"
	"promocode-service/internal/pkg/clock"
	"promocode-service/internal/pkg/config"
	"promocode-service/internal/pkg/errs"
	"promocode-service/internal/usecase/shared"

	"github.com/sony/gobreaker/v2"
)

const (
	validatePath = "/api/validate"
	pingPath     = "/api/ping"
	breakerName  = "antifraud"

	maxResponseBytes = 64 << 10
)

var (
	ErrUnavailable       = errs.New("anti-fraud service is unavailable")
	errInvalidCacheUntil = errs.New("invalid cache_until")
)

// Cache keeps raw verdict payloads per (email, promocode).
type Cache interface {
	Get(ctx context.Context, email, promoID string) ([]byte, error)
	Set(ctx context.Context, email, promoID string, payload []byte) error
}

type Recorder interface {
	ObserveFraudDecision(outcome string)
	ObserveFraudAttempt(result string, seconds float64)
	SetBreakerState(name string, state gobreaker.State)
}

type validateRequest struct {
	UserEmail string `json:"user_email"`
	PromoID   string `json:"promo_id"`
}

type verdict struct {
	OK         bool    `json:"ok"`
	CacheUntil *string `json:"cache_until"`
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// Client gates activations behind the external anti-fraud service. Validate
// never fails: when the service cannot be reached the verdict is a denial.
type Client struct {
	cfg        config.AntiFraudConfig
	baseURL    string
	location   *time.Location
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	cache      Cache
	recorder   Recorder
	clock      clock.Clock
	logger     *slog.Logger
}

func NewClient(cfg config.AntiFraudConfig, cache Cache, recorder Recorder, clk clock.Clock, logger *slog.Logger) (*Client, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "load anti-fraud time zone")
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.Address, "/"),
		location:   loc,
		httpClient: &http.Client{Transport: transport},
		cache:      cache,
		recorder:   recorder,
		clock:      clk,
		logger:     logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     cfg.BreakerTimeout,
		// A caller that gave up says nothing about the service's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errs.Is(err, context.Canceled)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.BreakerFailRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			recorder.SetBreakerState(name, to)
		},
	})
	recorder.SetBreakerState(breakerName, gobreaker.StateClosed)

	return c, nil
}

func (c *Client) Validate(ctx context.Context, userEmail, promoID string) shared.FraudDecision {
	if d, ok := c.cached(ctx, userEmail, promoID); ok {
		c.recorder.ObserveFraudDecision(metrics.FraudCacheHit)
		return d
	}

	body, err := c.request(ctx, userEmail, promoID)
	if err != nil {
		c.logger.Error("all anti-fraud attempts failed",
			slog.Int("attempts", c.cfg.Attempts),
			slog.String("error", err.Error()))
		c.recorder.ObserveFraudDecision(metrics.FraudFailClosed)
		return shared.FraudDecision{OK: false}
	}

	var v verdict
	if err := json.Unmarshal(body, &v); err != nil {
		c.logger.Error("malformed anti-fraud response", slog.String("error", err.Error()))
		c.recorder.ObserveFraudDecision(metrics.FraudFailClosed)
		return shared.FraudDecision{OK: false}
	}

	decision := shared.FraudDecision{OK: v.OK}
	if v.CacheUntil != nil {
		c.store(ctx, userEmail, promoID, body, *v.CacheUntil, &decision)
	}

	if decision.OK {
		c.recorder.ObserveFraudDecision(metrics.FraudAllowed)
	} else {
		c.recorder.ObserveFraudDecision(metrics.FraudDenied)
	}
	return decision
}

// Ping reports whether the service answers at all; any status below 500 counts.
func (c *Client) Ping(ctx context.Context) error {
	pctx, cancel := context.WithTimeout(ctx, c.cfg.PingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pctx, http.MethodGet, c.baseURL+pingPath, http.NoBody)
	if err != nil {
		return errs.Wrap(err, "create ping request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrUnavailable)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return errs.Mark(statusError{code: resp.StatusCode}, ErrUnavailable)
	}
	return nil
}

func (c *Client) BreakerState() gobreaker.State {
	return c.breaker.State()
}

func (c *Client) request(ctx context.Context, userEmail, promoID string) ([]byte, error) {
	payload, err := json.Marshal(validateRequest{UserEmail: userEmail, PromoID: promoID})
	if err != nil {
		return nil, errs.Wrap(err, "marshal anti-fraud request")
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.Attempts; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		start := time.Now()
		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.attempt(ctx, payload)
		})
		latency := time.Since(start)

		attrs := []any{
			slog.Int("attempt", attempt),
			slog.Duration("latency", latency),
		}
		if err == nil {
			c.logger.Info("anti-fraud attempt succeeded", append(attrs, slog.String("status", "ok"))...)
			c.recorder.ObserveFraudAttempt("success", latency.Seconds())
			return body, nil
		}

		var se statusError
		if errs.As(err, &se) {
			attrs = append(attrs, slog.Int("status", se.code))
		}
		c.logger.Warn("anti-fraud attempt failed", append(attrs, slog.String("error", err.Error()))...)
		c.recorder.ObserveFraudAttempt("failure", latency.Seconds())
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, payload []byte) ([]byte, error) {
	actx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(actx, http.MethodPost, c.baseURL+validatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "create validate request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.Wrap(err, "read validate response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError{code: resp.StatusCode}
	}
	return body, nil
}

func (c *Client) cached(ctx context.Context, userEmail, promoID string) (shared.FraudDecision, bool) {
	data, err := c.cache.Get(ctx, userEmail, promoID)
	if err != nil {
		c.logger.Warn("anti-fraud cache read failed", slog.String("error", err.Error()))
		return shared.FraudDecision{}, false
	}
	if data == nil {
		return shared.FraudDecision{}, false
	}

	var v verdict
	if err := json.Unmarshal(data, &v); err != nil || v.CacheUntil == nil {
		return shared.FraudDecision{}, false
	}
	until, err := parseCacheUntil(*v.CacheUntil, c.location)
	if err != nil || !until.After(c.clock.Now()) {
		return shared.FraudDecision{}, false
	}
	return shared.FraudDecision{OK: v.OK, CacheUntil: &until}, true
}

// store overwrites the cache entry; the last writer wins. Freshness is
// checked against cache_until on read, so the entry carries no expiry.
func (c *Client) store(ctx context.Context, userEmail, promoID string, body []byte, rawUntil string, decision *shared.FraudDecision) {
	if until, err := parseCacheUntil(rawUntil, c.location); err != nil {
		c.logger.Warn("anti-fraud cache_until is not a timestamp", slog.String("cache_until", rawUntil))
	} else {
		decision.CacheUntil = &until
	}

	if err := c.cache.Set(ctx, userEmail, promoID, body); err != nil {
		c.logger.Warn("anti-fraud cache write failed", slog.String("error", err.Error()))
	}
}

var cacheUntilLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseCacheUntil accepts ISO-8601 timestamps; values without an offset are read in loc.
func parseCacheUntil(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range cacheUntilLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidCacheUntil
}
