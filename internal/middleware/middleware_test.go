package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(method, target, nil), rec), rec
}

func TestRequestID(t *testing.T) {
	run := func(header string) string {
		c, rec := newTestContext(http.MethodGet, "/users")
		if header != "" {
			c.Request().Header.Set(RequestIDHeader, header)
		}

		var seen string
		err := RequestID()(func(c echo.Context) error {
			seen = GetRequestID(c)
			return nil
		})(c)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
		return seen
	}

	assert.Equal(t, "abc-123", run("abc-123"))

	generated := run("")
	assert.Len(t, generated, 36)

	tooLong := strings.Repeat("a", maxRequestIDLength+1)
	assert.NotEqual(t, tooLong, run(tooLong))
}

func TestLoggerFallbacks(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/")
	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
	assert.Equal(t, zerolog.Disabled, LoggerFromContext(context.Background()).GetLevel())

	logger := zerolog.New(nil).Level(zerolog.WarnLevel)
	s := &server.Server{Logger: &logger}

	err := NewContextEnhancer(s).EnhanceContext()(func(c echo.Context) error {
		assert.Equal(t, zerolog.WarnLevel, GetLogger(c).GetLevel())
		assert.Same(t, GetLogger(c), LoggerFromContext(c.Request().Context()))
		return nil
	})(c)
	require.NoError(t, err)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"http error", errs.NewNotFoundError("User not found", true, nil), http.StatusNotFound},
		{"wrapped http error", fmt.Errorf("create: %w", errs.NewFieldValidationError()), http.StatusBadRequest},
		{"echo error", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{"missing row", sqlerr.NotFound("posts"), http.StatusNotFound},
		{"foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "posts_user_id_fkey"}, http.StatusBadRequest},
		{"anything else", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(&server.Server{})

	tests := []struct {
		name    string
		method  string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found entity", http.MethodGet, sqlerr.NotFound("comments"), http.StatusNotFound, "NOT_FOUND", "Comment not found"},
		{"unknown route", http.MethodGet, echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Route not found"},
		{"echo error", http.MethodPost, echo.NewHTTPError(http.StatusUnsupportedMediaType, "bad media"), http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "bad media"},
		{"internal", http.MethodGet, fmt.Errorf("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(tt.method, "/x")
			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.status, body.Status)
		})
	}

	t.Run("head has no body", func(t *testing.T) {
		c, rec := newTestContext(http.MethodHead, "/x")
		global.GlobalErrorHandler(sqlerr.NotFound("users"), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("field errors survive", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPost, "/posts")
		global.GlobalErrorHandler(errs.NewFieldValidationError(errs.FieldError{Field: "user_id", Error: "does not exist"}), c)

		var body errs.HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Override)
		assert.Equal(t, []errs.FieldError{{Field: "user_id", Error: "does not exist"}}, body.Errors)
	})
}

func TestWindowKey(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 30, 0, time.UTC)

	assert.Equal(t, windowKey("10.0.0.1", now, time.Minute), windowKey("10.0.0.1", now.Add(20*time.Second), time.Minute))
	assert.NotEqual(t, windowKey("10.0.0.1", now, time.Minute), windowKey("10.0.0.1", now.Add(40*time.Second), time.Minute))
	assert.NotEqual(t, windowKey("10.0.0.1", now, time.Minute), windowKey("10.0.0.2", now, time.Minute))
}

func TestRedisStoreFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	logger := zerolog.Nop()
	store := &redisRateLimiterStore{client: client, limit: 1, window: time.Minute, log: &logger}

	for range 3 {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
