package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func resetVisitors() {
	mu.Lock()
	visitors = make(map[string]*visitor)
	mu.Unlock()
}

func doRequest(e *echo.Echo, handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	resetVisitors()

	e := echo.New()
	handler := RateLimiterWithConfig(2, 4)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 4; i++ {
		rec := doRequest(e, handler, "192.168.1.100")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst should pass", i)
	}
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	resetVisitors()

	e := echo.New()
	handler := RateLimiterWithConfig(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rateLimited := false
	for i := 0; i < 10; i++ {
		rec := doRequest(e, handler, "192.168.1.100")
		if rec.Code == http.StatusTooManyRequests {
			rateLimited = true
			break
		}
	}
	assert.True(t, rateLimited, "should be rate limited after exhausting the burst")
}

func TestRateLimiter_TracksIPsSeparately(t *testing.T) {
	resetVisitors()

	e := echo.New()
	handler := RateLimiterWithConfig(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Exhaust the first IP's budget
	for i := 0; i < 5; i++ {
		doRequest(e, handler, "192.168.1.100")
	}

	rec := doRequest(e, handler, "10.0.0.7")
	assert.Equal(t, http.StatusOK, rec.Code, "a fresh IP has its own budget")
}

func TestRateLimiter_UsesForwardedForHeader(t *testing.T) {
	resetVisitors()

	e := echo.New()
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec = httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
