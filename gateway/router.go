package gateway

import (
	"context"
	"strings"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// LocaleRouter selects a gateway per target locale tag. It exists for the
// regional-provider case: one designated language routes to a different
// upstream when a second credential is configured, everything else uses the
// primary. The translation contract is identical regardless of provider.
type LocaleRouter struct {
	primary Gateway
	byTag   map[string]Gateway
}

// NewLocaleRouter creates a router with a primary gateway.
func NewLocaleRouter(primary Gateway) *LocaleRouter {
	return &LocaleRouter{
		primary: primary,
		byTag:   make(map[string]Gateway),
	}
}

// Route sends the given locale tags to gw instead of the primary.
func (r *LocaleRouter) Route(gw Gateway, tags ...string) *LocaleRouter {
	for _, tag := range tags {
		r.byTag[strings.ToLower(tag)] = gw
	}
	return r
}

// gatewayFor resolves the gateway for a locale tag.
func (r *LocaleRouter) gatewayFor(tag string) Gateway {
	if gw, ok := r.byTag[strings.ToLower(tag)]; ok {
		return gw
	}
	return r.primary
}

// Translate implements bumblebee.Gateway.
func (r *LocaleRouter) Translate(ctx context.Context, req TranslationRequest) (map[string]string, error) {
	return r.gatewayFor(req.TargetTag).Translate(ctx, req)
}

// CheckCredentials implements bumblebee.CredentialChecker: every routed
// gateway must be ready before a batch starts.
func (r *LocaleRouter) CheckCredentials() error {
	gateways := []Gateway{r.primary}
	for _, gw := range r.byTag {
		gateways = append(gateways, gw)
	}
	for _, gw := range gateways {
		if checker, ok := gw.(bumblebee.CredentialChecker); ok {
			if err := checker.CheckCredentials(); err != nil {
				return err
			}
		}
	}
	return nil
}

var _ Gateway = (*LocaleRouter)(nil)
var _ bumblebee.CredentialChecker = (*LocaleRouter)(nil)
