package gateway

import (
	"context"
	"errors"
	"testing"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
	"github.com/arshaad-deriv/bumble-bee/cache"
)

func TestCachedGatewayHitAndMiss(t *testing.T) {
	mock := NewMockGateway()
	cached := NewCachedGateway(mock, cache.NewInMemoryCache(0))

	req := TranslationRequest{
		Fields:     map[string]string{"name": "Hello"},
		FieldOrder: []string{"name"},
		TargetTag:  "es",
	}

	first, err := cached.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	second, err := cached.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if mock.Calls() != 1 {
		t.Errorf("expected 1 upstream call, got %d", mock.Calls())
	}
	if first["name"] != second["name"] {
		t.Errorf("cached reply differs: %v vs %v", first, second)
	}
}

func TestCachedGatewayKeyedByLocale(t *testing.T) {
	mock := NewMockGateway()
	cached := NewCachedGateway(mock, cache.NewInMemoryCache(0))

	req := TranslationRequest{
		Fields:     map[string]string{"name": "Hello"},
		FieldOrder: []string{"name"},
	}
	for _, tag := range []string{"es", "ar"} {
		req.TargetTag = tag
		if _, err := cached.Translate(context.Background(), req); err != nil {
			t.Fatalf("Translate(%s) failed: %v", tag, err)
		}
	}
	if mock.Calls() != 2 {
		t.Errorf("locales must not share cache entries: %d calls", mock.Calls())
	}
}

func TestCachedGatewayCorruptEntryIsMiss(t *testing.T) {
	store := cache.NewInMemoryCache(0)
	req := TranslationRequest{
		Fields:     map[string]string{"name": "Hello"},
		FieldOrder: []string{"name"},
		TargetTag:  "es",
	}
	key := bumblebee.CacheKey(bumblebee.HashFields(req.Fields, req.FieldOrder), req.TargetTag)
	if err := store.Set(key, "not json"); err != nil {
		t.Fatal(err)
	}

	mock := NewMockGateway()
	cached := NewCachedGateway(mock, store)
	out, err := cached.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if mock.Calls() != 1 {
		t.Errorf("corrupt entry should fall through to upstream: %d calls", mock.Calls())
	}
	if out["name"] == "" {
		t.Errorf("out = %v", out)
	}
}

func TestCachedGatewayDoesNotCacheFailures(t *testing.T) {
	mock := NewMockGateway()
	mock.Err = &bumblebee.TransportError{Op: "chat completion", Status: 503}
	cached := NewCachedGateway(mock, cache.NewInMemoryCache(0))

	req := TranslationRequest{
		Fields:     map[string]string{"name": "Hello"},
		FieldOrder: []string{"name"},
		TargetTag:  "es",
	}
	if _, err := cached.Translate(context.Background(), req); err == nil {
		t.Fatal("expected error")
	}

	mock.Err = nil
	if _, err := cached.Translate(context.Background(), req); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if mock.Calls() != 2 {
		t.Errorf("failure should not produce a cache entry: %d calls", mock.Calls())
	}
}

func TestCachedGatewayCredentials(t *testing.T) {
	mock := NewMockGateway()
	cached := NewCachedGateway(mock, cache.NewInMemoryCache(0))
	// MockGateway has no credential check; the wrapper must not invent one.
	if err := cached.CheckCredentials(); err != nil {
		t.Errorf("CheckCredentials = %v", err)
	}

	failing := &credFailGateway{}
	if err := NewCachedGateway(failing, cache.NewInMemoryCache(0)).CheckCredentials(); err == nil {
		t.Error("credential failure should propagate through the cache wrapper")
	}
}

type credFailGateway struct{}

func (g *credFailGateway) Translate(_ context.Context, _ TranslationRequest) (map[string]string, error) {
	return nil, errors.New("unreachable")
}

func (g *credFailGateway) CheckCredentials() error {
	return &bumblebee.CredentialError{Provider: "openai"}
}
