package bumblebee

import (
	"context"
	"errors"
	"time"
)

// RetryConfig controls exponential backoff for the opt-in retry wrapper.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultRetryConfig returns sensible backoff defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// WithRetry runs fn with exponential backoff on retryable errors.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetryable(err) {
			return zero, err
		}

		if attempt < cfg.MaxRetries {
			delay := cfg.BaseDelay * time.Duration(1<<attempt)
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return zero, lastErr
}

// IsRetryable reports whether the error is a transient transport failure.
// Validation, integrity, and credential failures never retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return transport.Retryable()
	}
	return false
}

// RetryGateway wraps a Gateway with backoff on transient failures. Failed
// (record, locale) pairs are never retried automatically by the
// orchestrator; this wrapper is an explicit opt-in at construction time.
type RetryGateway struct {
	gateway Gateway
	config  RetryConfig
}

// NewRetryGateway wraps gateway with the given retry policy.
func NewRetryGateway(gateway Gateway, cfg RetryConfig) *RetryGateway {
	return &RetryGateway{gateway: gateway, config: cfg}
}

// Translate implements Gateway.
func (g *RetryGateway) Translate(ctx context.Context, req TranslationRequest) (map[string]string, error) {
	return WithRetry(ctx, g.config, func() (map[string]string, error) {
		return g.gateway.Translate(ctx, req)
	})
}

// CheckCredentials implements CredentialChecker by delegating to the
// wrapped gateway when it supports the check.
func (g *RetryGateway) CheckCredentials() error {
	if checker, ok := g.gateway.(CredentialChecker); ok {
		return checker.CheckCredentials()
	}
	return nil
}
