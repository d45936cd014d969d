package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleExpiry    = 5 * time.Minute
	limiterPruneInterval = time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	expires time.Time
}

// rateLimiter keeps one token bucket per key and forgets idle keys. Idle keys
// are swept at most once per limiterPruneInterval.
type rateLimiter struct {
	limit     rate.Limit
	burst     int
	mutex     sync.Mutex
	entries   map[string]*limiterEntry
	nextPrune time.Time
	now       func() time.Time
}

func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	return &rateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   max(burst, 1),
		entries: map[string]*limiterEntry{},
		now:     time.Now,
	}
}

func (limiter *rateLimiter) allow(key string) bool {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()
	now := limiter.now()
	limiter.prune(now)
	entry, ok := limiter.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.entries[key] = entry
	}
	entry.expires = now.Add(limiterIdleExpiry)
	return entry.limiter.AllowN(now, 1)
}

func (limiter *rateLimiter) prune(now time.Time) {
	if now.Before(limiter.nextPrune) {
		return
	}
	limiter.nextPrune = now.Add(limiterPruneInterval)
	for key, entry := range limiter.entries {
		if now.After(entry.expires) {
			delete(limiter.entries, key)
		}
	}
}

func (limiter *rateLimiter) middleware(keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !limiter.allow(keyFn(ctx)) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse(errorCodeRateLimited, "rate limit exceeded"))
			return
		}
		ctx.Next()
	}
}
