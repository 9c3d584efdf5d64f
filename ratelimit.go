package bumblebee

import (
	"context"
	"sync"
	"time"
)

// RateLimiter throttles upstream requests with a token bucket.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// RateLimitConfig configures a RateLimiter.
type RateLimitConfig struct {
	RequestsPerMinute int
	BurstSize         int // defaults to RequestsPerMinute
}

// NewRateLimiter creates a rate limiter starting with a full bucket.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}
	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}
	return &RateLimiter{
		tokens:     burst,
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.TryAcquire() {
			return nil
		}
		wait := time.Duration(float64(time.Second) / r.refillRate)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// TryAcquire takes a token without blocking.
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

// refill credits tokens for elapsed time. Caller holds the lock.
func (r *RateLimiter) refill() {
	now := time.Now()
	r.tokens += now.Sub(r.lastRefill).Seconds() * r.refillRate
	r.lastRefill = now
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
}

// Available returns the current token count.
func (r *RateLimiter) Available() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refill()
	return r.tokens
}

// RateLimitedGateway wraps a Gateway with a rate limiter.
type RateLimitedGateway struct {
	gateway Gateway
	limiter *RateLimiter
}

// NewRateLimitedGateway wraps gateway so every Translate call first acquires
// a token.
func NewRateLimitedGateway(gateway Gateway, cfg RateLimitConfig) *RateLimitedGateway {
	return &RateLimitedGateway{gateway: gateway, limiter: NewRateLimiter(cfg)}
}

// Translate implements Gateway.
func (g *RateLimitedGateway) Translate(ctx context.Context, req TranslationRequest) (map[string]string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, &TransportError{Op: "rate limit wait", Cause: err}
	}
	return g.gateway.Translate(ctx, req)
}

// CheckCredentials implements CredentialChecker by delegating to the
// wrapped gateway when it supports the check.
func (g *RateLimitedGateway) CheckCredentials() error {
	if checker, ok := g.gateway.(CredentialChecker); ok {
		return checker.CheckCredentials()
	}
	return nil
}

// Limiter exposes the underlying limiter for inspection.
func (g *RateLimitedGateway) Limiter() *RateLimiter {
	return g.limiter
}
