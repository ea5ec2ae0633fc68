package infra

import (
	"sync"
	"time"
)

// RateLimiter is a token bucket. Thread-safe; a protective client-side
// throttle ahead of the exchange's own limits, not a retry mechanism.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing a burst of maxRequests and a
// sustained rate of perSecond requests.
func NewRateLimiter(maxRequests int, perSecond float64) *RateLimiter {
	return &RateLimiter{
		tokens:     float64(maxRequests),
		maxTokens:  float64(maxRequests),
		refillRate: perSecond,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available.
func (r *RateLimiter) Wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()

	for r.tokens < 1 {
		waitTime := time.Duration(float64(time.Second) / r.refillRate)
		r.mu.Unlock()
		time.Sleep(waitTime)
		r.mu.Lock()
		r.refill()
	}

	r.tokens--
}

// TryAcquire attempts to take a token without blocking.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()

	if r.tokens >= 1 {
		r.tokens--
		return true
	}
	return false
}

// refill adds tokens based on elapsed time. Caller holds the mutex.
func (r *RateLimiter) refill() {
	now := time.Now()
	r.tokens += now.Sub(r.lastRefill).Seconds() * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
	r.lastRefill = now
}

// Pre-configured limiters for the Binance futures endpoint categories.
// Binance enforces 1200 request-weight/min and 300 orders/10s; these stay
// well below that to avoid IP bans.
var (
	orderLimiter    *RateLimiter
	accountLimiter  *RateLimiter
	marketLimiter   *RateLimiter
	rateLimiterOnce sync.Once
)

// GetOrderLimiter returns the limiter for order placement/cancel calls.
func GetOrderLimiter() *RateLimiter {
	rateLimiterOnce.Do(initLimiters)
	return orderLimiter
}

// GetAccountLimiter returns the limiter for account/balance calls.
func GetAccountLimiter() *RateLimiter {
	rateLimiterOnce.Do(initLimiters)
	return accountLimiter
}

// GetMarketLimiter returns the limiter for public market-data calls.
func GetMarketLimiter() *RateLimiter {
	rateLimiterOnce.Do(initLimiters)
	return marketLimiter
}

func initLimiters() {
	orderLimiter = NewRateLimiter(5, 10)
	accountLimiter = NewRateLimiter(3, 5)
	marketLimiter = NewRateLimiter(10, 20)
}
