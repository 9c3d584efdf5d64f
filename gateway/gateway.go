// Package gateway implements translation gateways on LLM chat-completion
// providers, plus routing and caching wrappers.
package gateway

import bumblebee "github.com/arshaad-deriv/bumble-bee"

// Gateway is the translation backend interface. Alias to the root package
// type for convenience.
type Gateway = bumblebee.Gateway

// TranslationRequest is an alias to the root package type.
type TranslationRequest = bumblebee.TranslationRequest
