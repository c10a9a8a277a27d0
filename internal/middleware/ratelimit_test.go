package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnav/campus-nav-server/internal/config"
)

func TestRateLimitRejectsOverLimit(t *testing.T) {
	rdb := newCacheClient(t)
	e := echo.New()

	cfg := config.RateLimitConfig{
		Enabled: true,
		Limit:   3,
		Window:  time.Minute,
		Prefix:  "rl:test",
	}
	handler := RateLimit(rdb, cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitSubSecondWindowClampsToOneSecond(t *testing.T) {
	rdb := newCacheClient(t)
	e := echo.New()

	cfg := config.RateLimitConfig{
		Enabled: true,
		Limit:   2,
		Window:  500 * time.Millisecond,
		Prefix:  "rl:test",
	}
	handler := RateLimit(rdb, cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	rdb := newCacheClient(t)
	e := echo.New()

	cfg := config.RateLimitConfig{Enabled: false, Limit: 1, Window: time.Minute, Prefix: "rl:test"}
	handler := RateLimit(rdb, cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
