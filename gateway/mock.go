package gateway

import (
	"context"
	"sync"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// MockGateway is a stub translation backend for tests. By default it
// returns a key-isomorphic reply tagging every value with the target
// locale. Translations overrides specific source values; Err or FailTags
// force failures; Mutate post-processes the reply (e.g. to inject a
// key-set violation).
type MockGateway struct {
	mu           sync.Mutex
	Translations map[string]string
	Err          error
	FailTags     map[string]error
	Mutate       func(reply map[string]string)
	CallCount    int
	LastRequest  *TranslationRequest
}

// NewMockGateway creates a mock with no canned translations.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		Translations: make(map[string]string),
		FailTags:     make(map[string]error),
	}
}

// Translate implements bumblebee.Gateway.
func (m *MockGateway) Translate(ctx context.Context, req TranslationRequest) (map[string]string, error) {
	m.mu.Lock()
	m.CallCount++
	reqCopy := req
	m.LastRequest = &reqCopy
	err := m.Err
	if tagged, ok := m.FailTags[req.TargetTag]; ok {
		err = tagged
	}
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	reply := make(map[string]string, len(req.Fields))
	for name, value := range req.Fields {
		if canned, ok := m.Translations[value]; ok {
			reply[name] = canned
		} else {
			reply[name] = "[" + req.TargetTag + "] " + value
		}
	}
	if m.Mutate != nil {
		m.Mutate(reply)
	}
	// Same isomorphism contract as the real gateways, so mocks exercise
	// the rejection path too.
	if err := validateIsomorphic(req.Fields, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// Reset clears the call count and last request.
func (m *MockGateway) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
	m.LastRequest = nil
}

// Calls returns the number of Translate invocations.
func (m *MockGateway) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

var _ bumblebee.Gateway = (*MockGateway)(nil)
