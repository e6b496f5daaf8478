package middleware

import (
	"sync"
	"time"

	"pennywise/internal/errors"
	"pennywise/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	mu       sync.Mutex
	visitors = make(map[string]*visitor)

	requestsPerSecond = 5
	burstSize         = 10
)

// RateLimiter throttles requests per client IP with a token bucket. State
// is process-local, so the limit applies per instance.
func RateLimiter() echo.MiddlewareFunc {
	go evictIdleVisitors()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiterFor(clientIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// RateLimiterWithConfig overrides the default rate and burst.
func RateLimiterWithConfig(rps, burst int) echo.MiddlewareFunc {
	requestsPerSecond = rps
	burstSize = burst
	return RateLimiter()
}

func limiterFor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, ok := visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)}
		visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// clientIP prefers proxy headers so the limit follows the real client
// rather than the load balancer address.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func evictIdleVisitors() {
	for {
		time.Sleep(cleanupInterval)

		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > visitorTTL {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}
