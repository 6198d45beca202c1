package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/dto"
)

// minLimiterIdle is the shortest time an unused bucket is kept
const minLimiterIdle = 10 * time.Minute

// IPRateLimiter stores a token bucket for each client IP. Buckets left
// unused for longer than idle are evicted.
type IPRateLimiter struct {
	limiters *cache.Cache
	r        rate.Limit
	b        int
}

// NewIPRateLimiter creates a limiter allowing r requests per second with burst b per IP
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return NewIPRateLimiterWithIdle(r, b, limiterIdle(r, b))
}

// NewIPRateLimiterWithIdle is NewIPRateLimiter with an explicit eviction delay
func NewIPRateLimiterWithIdle(r rate.Limit, b int, idle time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: cache.New(idle, idle),
		r:        r,
		b:        b,
	}
}

// limiterIdle keeps a bucket at least until it would have refilled, so
// evicting it never grants a client more than a full burst
func limiterIdle(r rate.Limit, b int) time.Duration {
	idle := minLimiterIdle
	if r > 0 && r != rate.Inf {
		if refill := time.Duration(float64(b) / float64(r) * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	return idle
}

// GetLimiter returns the limiter of an IP, creating it on first use
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	if found, ok := i.limiters.Get(ip); ok {
		limiter := found.(*rate.Limiter)
		i.limiters.SetDefault(ip, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	if err := i.limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		// lost the race to another request from the same IP
		if found, ok := i.limiters.Get(ip); ok {
			return found.(*rate.Limiter)
		}
	}
	return limiter
}

// Len reports how many client buckets are currently held
func (i *IPRateLimiter) Len() int {
	return i.limiters.ItemCount()
}

// RateLimiter is a middleware for IP-based rate limiting. A non-positive rate disables it.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	if r <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if b <= 0 {
		b = 1
	}

	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    errs.CodeTooManyRequests,
				Message: "Too many requests",
			})
			return
		}
		c.Next()
	}
}
