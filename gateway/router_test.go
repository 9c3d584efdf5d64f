package gateway

import (
	"context"
	"testing"
)

func TestLocaleRouterDispatch(t *testing.T) {
	primary := NewMockGateway()
	regional := NewMockGateway()
	router := NewLocaleRouter(primary).Route(regional, "zh-CN", "zh-TW")

	req := TranslationRequest{Fields: map[string]string{"name": "Hello"}}

	req.TargetTag = "es"
	if _, err := router.Translate(context.Background(), req); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	req.TargetTag = "zh-CN"
	if _, err := router.Translate(context.Background(), req); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	// Tag matching is case-insensitive.
	req.TargetTag = "ZH-TW"
	if _, err := router.Translate(context.Background(), req); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if primary.Calls() != 1 {
		t.Errorf("primary calls = %d, want 1", primary.Calls())
	}
	if regional.Calls() != 2 {
		t.Errorf("regional calls = %d, want 2", regional.Calls())
	}
}

func TestLocaleRouterCredentials(t *testing.T) {
	router := NewLocaleRouter(NewMockGateway()).Route(&credFailGateway{}, "zh-CN")
	if err := router.CheckCredentials(); err == nil {
		t.Error("a routed gateway's credential failure must fail the router")
	}

	healthy := NewLocaleRouter(NewMockGateway()).Route(NewMockGateway(), "zh-CN")
	if err := healthy.CheckCredentials(); err != nil {
		t.Errorf("CheckCredentials = %v", err)
	}
}
