package auth

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RateLimiter provides rate limiting functionality
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
	SetLimits(requestsPerMinute, burst int)
}

// TokenBucketLimiter implements per-key token bucket rate limiting.
// Each key accrues tokens continuously up to the burst size.
type TokenBucketLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	ratePerSec float64
	burst      float64
	cleanupInt time.Duration
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// NewTokenBucketLimiter creates a limiter allowing requestsPerMinute
// sustained with bursts up to burst.
func NewTokenBucketLimiter(requestsPerMinute, burst int) *TokenBucketLimiter {
	l := &TokenBucketLimiter{
		buckets:    make(map[string]*bucket),
		ratePerSec: float64(requestsPerMinute) / 60.0,
		burst:      float64(burst),
		cleanupInt: 5 * time.Minute,
	}
	go l.cleanup()
	return l
}

// Allow checks if a request is allowed
func (l *TokenBucketLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.burst, lastSeen: now}
		l.buckets[key] = b
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * l.ratePerSec
	if b.tokens > l.burst {
		b.tokens = l.burst
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, nil
	}
	return false, nil
}

// SetLimits retunes the sustained rate and burst without dropping state.
// Existing buckets accrue at the new rate from their next request; tokens
// above a lowered burst clamp on that request too.
func (l *TokenBucketLimiter) SetLimits(requestsPerMinute, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ratePerSec = float64(requestsPerMinute) / 60.0
	l.burst = float64(burst)
}

// Reset resets the rate limit for a key
func (l *TokenBucketLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
	return nil
}

// cleanup drops buckets not seen for an hour
func (l *TokenBucketLimiter) cleanup() {
	ticker := time.NewTicker(l.cleanupInt)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour)
		l.mu.Lock()
		for key, b := range l.buckets {
			if b.lastSeen.Before(cutoff) {
				delete(l.buckets, key)
			}
		}
		l.mu.Unlock()
	}
}

// IPRateLimiter wraps a rate limiter for IP-based limiting
type IPRateLimiter struct {
	limiter RateLimiter
}

// NewIPRateLimiter creates a new IP-based rate limiter
func NewIPRateLimiter(requestsPerMinute, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiter: NewTokenBucketLimiter(requestsPerMinute, burst),
	}
}

// Allow checks if a request from an IP is allowed
func (l *IPRateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	return l.limiter.Allow(ctx, fmt.Sprintf("ip:%s", ip))
}

// SetLimits retunes the underlying limiter
func (l *IPRateLimiter) SetLimits(requestsPerMinute, burst int) {
	l.limiter.SetLimits(requestsPerMinute, burst)
}
