package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// OpenAIGateway translates records through an OpenAI-compatible
// chat-completion endpoint.
type OpenAIGateway struct {
	client      *openai.Client
	model       string
	temperature float32
	rules       bumblebee.PromptRules
	logger      *slog.Logger
	provider    string // name used in credential errors
}

// OpenAIConfig holds configuration for the gateway.
type OpenAIConfig struct {
	APIKey      string                // required
	Model       string                // default: "gpt-4o-mini"
	Temperature *float32              // default: 0.3; explicit zero is honored
	BaseURL     string                // any OpenAI-compatible endpoint
	Rules       bumblebee.PromptRules // default: bumblebee.DefaultPromptRules()
	Logger      *slog.Logger
	Provider    string // label for logs and errors, default: "openai"
}

// NewOpenAIGateway creates a gateway. Fails with *bumblebee.CredentialError
// when no API key is configured, before any network call is possible.
func NewOpenAIGateway(cfg OpenAIConfig) (*OpenAIGateway, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = "openai"
	}
	if cfg.APIKey == "" {
		return nil, &bumblebee.CredentialError{Provider: provider}
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	temperature := float32(0.3)
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	if temperature == 0 {
		// The client library omits a zero temperature from the request,
		// which would fall back to the API default instead.
		temperature = math.SmallestNonzeroFloat32
	}
	rules := cfg.Rules
	if isZeroRules(rules) {
		rules = bumblebee.DefaultPromptRules()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &OpenAIGateway{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: temperature,
		rules:       rules,
		logger:      logger,
		provider:    provider,
	}, nil
}

func isZeroRules(r bumblebee.PromptRules) bool {
	return r.BrandPrefix == "" && len(r.Products) == 0 && len(r.People) == 0 &&
		len(r.Verbatim) == 0 && len(r.TagOverrides) == 0 &&
		len(r.MirrorPunctuation) == 0 && len(r.Extra) == 0
}

// CheckCredentials implements bumblebee.CredentialChecker.
func (g *OpenAIGateway) CheckCredentials() error {
	if g.client == nil {
		return &bumblebee.CredentialError{Provider: g.provider}
	}
	return nil
}

// Translate implements bumblebee.Gateway. The upstream reply must parse as
// a JSON object whose key set exactly matches req.Fields; any deviation is
// a *bumblebee.ValidationError, never forwarded downstream.
func (g *OpenAIGateway) Translate(ctx context.Context, req TranslationRequest) (map[string]string, error) {
	if len(req.Fields) == 0 {
		return nil, &bumblebee.ValidationError{Message: "no content to translate"}
	}
	if req.TargetTag == "" {
		return nil, &bumblebee.ValidationError{Message: "no target locale specified"}
	}

	systemPrompt := g.buildSystemPrompt(req)
	userMessage, err := buildUserMessage(req)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: g.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &bumblebee.TransportError{
			Op:    g.provider + " chat completion",
			Cause: err,
		}
	}
	if len(resp.Choices) == 0 {
		return nil, &bumblebee.IntegrityError{Message: "empty response from " + g.provider}
	}

	translated, err := parseReply(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if err := validateIsomorphic(req.Fields, translated); err != nil {
		return nil, err
	}

	g.logger.Info("translate-call",
		"provider", g.provider, "model", g.model,
		"locale", req.TargetTag, "fields", len(req.Fields))
	return translated, nil
}

// buildSystemPrompt assembles the instruction prompt: translate only the
// designated text values, keep the structure, keep glossary terms verbatim,
// and apply the configured linguistic policy rules.
func (g *OpenAIGateway) buildSystemPrompt(req TranslationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a professional translator with 20 years of experience.\n")
	fmt.Fprintf(&b, "Translate only the JSON values to %s.\n",
		bumblebee.LanguageName(req.TargetTag))

	if len(req.GlossaryTerms) > 0 {
		b.WriteString("\nDO NOT TRANSLATE the following terms - keep them exactly as they appear:\n")
		for _, term := range req.GlossaryTerms {
			fmt.Fprintf(&b, "- %s\n", term)
		}
	}

	if lines := g.rules.Instructions(req.TargetTag); len(lines) > 0 {
		b.WriteString("\nFollow these additional rules when translating:\n")
		for _, line := range lines {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	b.WriteString("\nKeep all JSON keys and non-text values exactly the same.\n")
	b.WriteString("Return a JSON object with exactly the same keys as the input, no explanations.")
	return b.String()
}

// buildUserMessage serializes the fields in a stable order.
func buildUserMessage(req TranslationRequest) (string, error) {
	rec := bumblebee.TranslatableRecord{Fields: req.Fields, FieldOrder: req.FieldOrder}

	var b strings.Builder
	b.WriteString("Translate this JSON content. Original JSON:\n{")
	for i, name := range rec.FieldNames() {
		if i > 0 {
			b.WriteString(",")
		}
		key, err := json.Marshal(name)
		if err != nil {
			return "", err
		}
		value, err := json.Marshal(req.Fields[name])
		if err != nil {
			return "", err
		}
		b.WriteString("\n  ")
		b.Write(key)
		b.WriteString(": ")
		b.Write(value)
	}
	b.WriteString("\n}")
	return b.String(), nil
}

// parseReply decodes the model's reply as a flat string map.
func parseReply(content string) (map[string]string, error) {
	content = strings.TrimSpace(content)
	// Some models wrap JSON in Markdown fences despite instructions.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, &bumblebee.IntegrityError{
			Message: fmt.Sprintf("reply is not a JSON object: %v", err),
		}
	}

	out := make(map[string]string, len(raw))
	for name, value := range raw {
		s, ok := value.(string)
		if !ok {
			return nil, &bumblebee.IntegrityError{
				Message: fmt.Sprintf("reply value for %q is not a string", name),
			}
		}
		out[name] = s
	}
	return out, nil
}

// validateIsomorphic rejects replies whose key set deviates from the
// request's.
func validateIsomorphic(request, reply map[string]string) error {
	var missing, extra []string
	for name := range request {
		if _, ok := reply[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range reply {
		if _, ok := request[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return &bumblebee.ValidationError{
		Message: "translated reply does not match request fields",
		Missing: missing,
		Extra:   extra,
	}
}

// Verify OpenAIGateway implements Gateway.
var _ Gateway = (*OpenAIGateway)(nil)
var _ bumblebee.CredentialChecker = (*OpenAIGateway)(nil)
