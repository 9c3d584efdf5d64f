package gateway

import (
	"context"
	"encoding/json"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
	"github.com/arshaad-deriv/bumble-bee/cache"
)

// CachedGateway wraps a Gateway with a translation cache keyed on the
// record's content hash and target locale tag. Cache set failures are
// ignored; a cache entry that fails to decode is treated as a miss.
type CachedGateway struct {
	gateway Gateway
	cache   cache.TranslationCache
}

// NewCachedGateway wraps gateway with the given cache.
func NewCachedGateway(gateway Gateway, c cache.TranslationCache) *CachedGateway {
	return &CachedGateway{gateway: gateway, cache: c}
}

// Translate implements bumblebee.Gateway.
func (g *CachedGateway) Translate(ctx context.Context, req TranslationRequest) (map[string]string, error) {
	key := bumblebee.CacheKey(bumblebee.HashFields(req.Fields, req.FieldOrder), req.TargetTag)

	if cached, ok := g.cache.Get(key); ok {
		var fields map[string]string
		if err := json.Unmarshal([]byte(cached), &fields); err == nil && len(fields) == len(req.Fields) {
			return fields, nil
		}
	}

	translated, err := g.gateway.Translate(ctx, req)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(translated); err == nil {
		_ = g.cache.Set(key, string(encoded))
	}
	return translated, nil
}

// CheckCredentials implements bumblebee.CredentialChecker by delegating to
// the wrapped gateway when it supports the check.
func (g *CachedGateway) CheckCredentials() error {
	if checker, ok := g.gateway.(bumblebee.CredentialChecker); ok {
		return checker.CheckCredentials()
	}
	return nil
}

var _ Gateway = (*CachedGateway)(nil)
