package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket is one client's token-bucket state.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimiter applies a per-client token bucket. Buckets idle past the
// stale window are evicted so the map does not grow with every IP ever
// seen.
type RateLimiter struct {
	buckets    map[string]*bucket
	mu         sync.Mutex
	rate       float64 // tokens per second
	bucketSize float64 // maximum tokens
	staleAfter time.Duration
	lastSweep  time.Time
}

func NewRateLimiter(rate float64, bucketSize float64) *RateLimiter {
	return &RateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		bucketSize: bucketSize,
		staleAfter: 10 * time.Minute,
		lastSweep:  time.Now(),
	}
}

// allow consumes one token for the client if available.
func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > rl.staleAfter {
		rl.sweepLocked(now)
	}

	b, exists := rl.buckets[ip]
	if !exists {
		b = &bucket{tokens: rl.bucketSize, lastRefill: now}
		rl.buckets[ip] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = minFloat(rl.bucketSize, b.tokens+elapsed*rl.rate)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	for ip, b := range rl.buckets {
		if now.Sub(b.lastRefill) > rl.staleAfter {
			delete(rl.buckets, ip)
		}
	}
	rl.lastSweep = now
}

// RateLimit is the gin middleware form of the limiter.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
