package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/blog-api/internal/config"
	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	rateLimitKeyPrefix    = "ratelimit"
	redisRateLimitTimeout = 200 * time.Millisecond
)

// RateLimitMiddleware limits requests per client IP. Counters live in Redis
// when a client is configured so every instance shares them, and in process
// memory otherwise.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the echo rate limiter. GET /status is never limited.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if cfg == nil {
		cfg = config.DefaultRateLimitConfig()
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/status"
		},
		Store: r.newStore(cfg),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewBadRequestError("Could not identify client", false, nil, nil, nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("identifier", identifier).
				Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Too many requests, slow down")
		},
	})
}

func (r *RateLimitMiddleware) newStore(cfg *config.RateLimitConfig) middleware.RateLimiterStore {
	if r.server.Redis != nil {
		return &redisRateLimiterStore{
			client: r.server.Redis,
			limit:  int64(cfg.Requests),
			window: cfg.Window,
			log:    r.server.Logger,
		}
	}

	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		Burst:     cfg.Requests,
		ExpiresIn: 3 * cfg.Window,
	})
}

// RecordRateLimitHit reports a denied request to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}

// redisRateLimiterStore is a fixed-window counter: one key per identifier
// and window, incremented on every request and expiring with the window.
type redisRateLimiterStore struct {
	client *redis.Client
	limit  int64
	window time.Duration
	log    *zerolog.Logger
}

// Allow fails open: a Redis outage must not take the API down with it.
func (s *redisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisRateLimitTimeout)
	defer cancel()

	key := windowKey(identifier, time.Now(), s.window)

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn().Err(err).Msg("rate limiter store unavailable, allowing request")
		return true, nil
	}

	return count.Val() <= s.limit, nil
}

func windowKey(identifier string, now time.Time, window time.Duration) string {
	return fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, identifier, now.UnixNano()/int64(window))
}
