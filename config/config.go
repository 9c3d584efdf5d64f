// Package config loads pipeline configuration: provider credentials,
// per-collection field schemas, the prompt rule table, and the glossary.
// Field schemas and rules are data on purpose: they change without code.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// Config is the full pipeline configuration.
type Config struct {
	Webflow struct {
		SiteID string `yaml:"site_id"`
		Token  string `yaml:"token"`
	} `yaml:"webflow"`

	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
		// Temperature nil means the gateway default; an explicit 0 in the
		// file requests deterministic output.
		Temperature *float32 `yaml:"temperature"`
	} `yaml:"openai"`

	// Regional routes the listed locale tags to a second
	// OpenAI-compatible provider when its credential is configured.
	Regional struct {
		APIKey  string   `yaml:"api_key"`
		BaseURL string   `yaml:"base_url"`
		Model   string   `yaml:"model"`
		Tags    []string `yaml:"tags"`
	} `yaml:"regional"`

	Collections map[string]bumblebee.FieldSchema `yaml:"collections"`
	Rules       bumblebee.PromptRules            `yaml:"rules"`
	Glossary    bumblebee.Glossary               `yaml:"glossary"`

	Workers  int `yaml:"workers"`
	PaceMS   int `yaml:"pace_ms"`
	CacheTTL int `yaml:"cache_ttl"`

	RedisURL string `yaml:"redis_url"`
}

// Load reads a YAML config file and applies defaults and environment
// fallbacks. A missing path returns the defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Webflow.Token == "" {
		c.Webflow.Token = os.Getenv("WEBFLOW_TOKEN")
	}
	if c.Webflow.SiteID == "" {
		c.Webflow.SiteID = os.Getenv("WEBFLOW_SITE_ID")
	}
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Regional.APIKey == "" {
		c.Regional.APIKey = os.Getenv("REGIONAL_API_KEY")
	}
	if len(c.Collections) == 0 {
		c.Collections = DefaultCollections()
	}
	if len(c.Glossary) == 0 {
		c.Glossary = bumblebee.DefaultGlossary()
	}
	if isZeroRules(c.Rules) {
		c.Rules = bumblebee.DefaultPromptRules()
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
}

func isZeroRules(r bumblebee.PromptRules) bool {
	return r.BrandPrefix == "" && len(r.Products) == 0 && len(r.People) == 0 &&
		len(r.Verbatim) == 0 && len(r.TagOverrides) == 0 &&
		len(r.MirrorPunctuation) == 0 && len(r.Extra) == 0
}

// SchemaFor resolves the field schema for a collection by display name.
// Matching is case-insensitive substring, so "Blog Posts" matches the
// "Blog" schema. Returns false when no schema covers the collection.
func (c *Config) SchemaFor(collectionName string) (bumblebee.FieldSchema, bool) {
	lower := strings.ToLower(collectionName)
	for key, schema := range c.Collections {
		if strings.Contains(lower, strings.ToLower(key)) {
			return schema, true
		}
	}
	return bumblebee.FieldSchema{}, false
}

// DefaultCollections is the built-in per-collection-type schema table.
func DefaultCollections() map[string]bumblebee.FieldSchema {
	return map[string]bumblebee.FieldSchema{
		"Blog": {
			Translate: []string{
				"disclaimer-2", "post", "summary", "name",
				"meta-description-2", "page-title",
			},
			Preserve:        []string{"slug", "accumulators-option"},
			IdentifierField: "name",
			DisplayName:     "Blog Post",
		},
		"Support Questions": {
			Translate:       []string{"answer", "name"},
			Preserve:        []string{"slug", "category-3", "order-number"},
			IdentifierField: "question",
			DisplayName:     "Help Center Question",
		},
		"Tncs": {
			Translate:       []string{"name", "content", "meta-description", "page-title"},
			Preserve:        []string{"slug", "order", "category"},
			IdentifierField: "name",
			DisplayName:     "Tncs",
		},
		"Terms and Conditions": {
			Translate: []string{
				"name", "content", "pdf-name-1", "description", "page-title",
			},
			Preserve:        []string{"slug", "order", "category", "pdf-link-1", "link-1"},
			IdentifierField: "name",
			DisplayName:     "Terms and Conditions",
		},
		"Trading Specifications": {
			Translate:       []string{},
			Preserve:        []string{"type"},
			IdentifierField: "name",
			DisplayName:     "Trading Specifications",
		},
		"Help Center Categories": {
			Translate: []string{"name", "page-title", "meta-description"},
			Preserve: []string{
				"slug", "type", "order-number", "main-questions",
			},
			IdentifierField: "name",
			DisplayName:     "Help Center Category",
		},
		"Help Center Questions": {
			Translate:       []string{"name", "answer"},
			Preserve:        []string{"slug", "category", "order-number"},
			IdentifierField: "question",
			DisplayName:     "Help Center Question",
		},
	}
}
