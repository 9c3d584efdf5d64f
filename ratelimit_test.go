package bumblebee

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterBurst(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 60, BurstSize: 3})

	for i := 0; i < 3; i++ {
		if !limiter.TryAcquire() {
			t.Fatalf("acquire %d should succeed within burst", i)
		}
	}
	if limiter.TryAcquire() {
		t.Error("acquire beyond burst should fail")
	}
}

func TestRateLimiterRefill(t *testing.T) {
	// 600 rpm = 10 tokens/second, so a drained bucket recovers quickly.
	limiter := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 600, BurstSize: 1})
	if !limiter.TryAcquire() {
		t.Fatal("initial acquire should succeed")
	}
	if limiter.TryAcquire() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(150 * time.Millisecond)
	if !limiter.TryAcquire() {
		t.Error("bucket should have refilled")
	}
}

func TestRateLimiterWaitCancelled(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})
	limiter.TryAcquire() // drain

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx); err == nil {
		t.Error("Wait should fail once the context expires")
	}
}

func TestRateLimitedGateway(t *testing.T) {
	gw := &stubGateway{}
	limited := NewRateLimitedGateway(gw, RateLimitConfig{RequestsPerMinute: 600})

	req := TranslationRequest{Fields: map[string]string{"name": "Hello"}, TargetTag: "es"}
	out, err := limited.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out["name"] == "" {
		t.Error("empty translation")
	}
	if limited.Limiter().Available() >= 600 {
		t.Error("no token was consumed")
	}
}

func TestRateLimitedGatewayCredentials(t *testing.T) {
	gw := &stubGateway{credErr: &CredentialError{Provider: "openai"}}
	limited := NewRateLimitedGateway(gw, RateLimitConfig{})
	if limited.CheckCredentials() == nil {
		t.Error("credential check should delegate to the wrapped gateway")
	}
}
