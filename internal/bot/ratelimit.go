package bot

import (
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// userLimiter — token bucket на пользователя.
type userLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
	rps      rate.Limit
	burst    int
	counter  atomic.Int64
}

// newUserLimiter возвращает nil при rps <= 0 (лимитер выключен).
func newUserLimiter(rps, burst int) *userLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = rps
	}
	return &userLimiter{
		limiters: make(map[int64]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *userLimiter) allow(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[userID]
	if !exists {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[userID] = limiter
	}

	// Simple cleanup: every 1000 events, clear idle entries to prevent
	// unbounded growth.
	if count := l.counter.Add(1); count%1000 == 0 {
		l.cleanup()
	}

	return limiter.Allow()
}

// cleanup removes users whose token bucket is full (idle clients).
func (l *userLimiter) cleanup() {
	for userID, limiter := range l.limiters {
		if limiter.Tokens() >= float64(l.burst) {
			delete(l.limiters, userID)
		}
	}
}
