package gateway

import (
	"context"
	"errors"
	"testing"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

func TestMockGatewayDefaultReply(t *testing.T) {
	mock := NewMockGateway()
	mock.Translations["Hello"] = "Hola"

	out, err := mock.Translate(context.Background(), TranslationRequest{
		Fields:    map[string]string{"name": "Hello", "summary": "World"},
		TargetTag: "es",
	})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out["name"] != "Hola" {
		t.Errorf("canned translation not applied: %v", out)
	}
	if out["summary"] != "[es] World" {
		t.Errorf("default tagging not applied: %v", out)
	}
	if mock.Calls() != 1 {
		t.Errorf("Calls = %d", mock.Calls())
	}
}

func TestMockGatewayMutateTripsValidation(t *testing.T) {
	mock := NewMockGateway()
	mock.Mutate = func(reply map[string]string) {
		delete(reply, "name")
		reply["Name"] = "Hola"
	}

	_, err := mock.Translate(context.Background(), TranslationRequest{
		Fields:    map[string]string{"name": "Hello"},
		TargetTag: "es",
	})
	var validation *bumblebee.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestMockGatewayFailTags(t *testing.T) {
	mock := NewMockGateway()
	mock.FailTags["ar"] = &bumblebee.TransportError{Op: "chat completion", Status: 429}

	req := TranslationRequest{Fields: map[string]string{"name": "Hello"}}
	req.TargetTag = "ar"
	if _, err := mock.Translate(context.Background(), req); err == nil {
		t.Error("ar should fail")
	}
	req.TargetTag = "es"
	if _, err := mock.Translate(context.Background(), req); err != nil {
		t.Errorf("es should succeed: %v", err)
	}

	mock.Reset()
	if mock.Calls() != 0 || mock.LastRequest != nil {
		t.Error("Reset did not clear state")
	}
}
