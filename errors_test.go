package bumblebee

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "fetch page dom", Cause: cause}

	if !strings.Contains(err.Error(), "fetch page dom") {
		t.Errorf("unexpected message: %s", err)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}

	withStatus := &TransportError{Op: "update dom", Status: 404}
	if !strings.Contains(withStatus.Error(), "404") {
		t.Errorf("unexpected message: %s", withStatus)
	}
}

func TestTransportErrorRetryable(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{0, true}, // network-level failure
		{429, true},
		{502, true},
		{503, true},
		{504, true},
		{400, false},
		{401, false},
		{404, false},
		{500, false},
	}
	for _, tc := range cases {
		err := &TransportError{Status: tc.status}
		if got := err.Retryable(); got != tc.want {
			t.Errorf("status %d: Retryable() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestIntegrityError(t *testing.T) {
	err := &IntegrityError{Message: "pagination overran reported total", Expected: 250, Got: 400}
	if !strings.Contains(err.Error(), "expected 250, got 400") {
		t.Errorf("unexpected message: %s", err)
	}

	bare := &IntegrityError{Message: "malformed response body"}
	if bare.Error() != "malformed response body" {
		t.Errorf("unexpected message: %s", bare)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Message: "reply field set does not match request",
		Missing: []string{"summary"},
		Extra:   []string{"Summary"},
	}
	msg := err.Error()
	if !strings.Contains(msg, "missing keys: summary") || !strings.Contains(msg, "unexpected keys: Summary") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestCredentialError(t *testing.T) {
	err := &CredentialError{Provider: "webflow"}
	if !strings.Contains(err.Error(), "webflow") {
		t.Errorf("unexpected message: %s", err)
	}
}

func TestErrIncompleteWrapping(t *testing.T) {
	err := fmt.Errorf("%w: got 150 of 250 items", ErrIncomplete)
	if !errors.Is(err, ErrIncomplete) {
		t.Error("wrapped ErrIncomplete not detected")
	}
}

func TestPartialWriteWarning(t *testing.T) {
	warn := &PartialWriteWarning{Nodes: []NodeWriteError{
		{NodeID: "n1", Error: "bad format"},
		{NodeID: "n2", Error: "unknown node"},
	}}
	msg := warn.Error()
	if !strings.Contains(msg, "node n1: bad format") || !strings.Contains(msg, "node n2") {
		t.Errorf("unexpected message: %s", msg)
	}
}
