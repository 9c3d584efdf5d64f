package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WEBFLOW_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if len(cfg.Collections) == 0 {
		t.Error("default collections missing")
	}
	if len(cfg.Glossary) == 0 {
		t.Error("default glossary missing")
	}
	if cfg.Rules.BrandPrefix != "Deriv" {
		t.Errorf("default rules missing: %+v", cfg.Rules)
	}
	// Unset temperature stays nil so the gateway applies its own default.
	if cfg.OpenAI.Temperature != nil {
		t.Errorf("temperature: %v", *cfg.OpenAI.Temperature)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
webflow:
  site_id: site-123
  token: wf-token
openai:
  api_key: oa-key
  model: gpt-4o
  temperature: 0.1
regional:
  api_key: rg-key
  base_url: https://regional.example.com/v1
  tags: [zh-CN, zh-TW]
collections:
  News:
    translate: [headline, body]
    preserve: [slug]
    identifier: headline
    display_name: News Article
rules:
  brand_prefix: Acme
  products: [Acme One]
workers: 4
pace_ms: 250
cache_ttl: 3600
redis_url: redis://localhost:6379
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Webflow.SiteID != "site-123" || cfg.Webflow.Token != "wf-token" {
		t.Errorf("webflow: %+v", cfg.Webflow)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.Temperature == nil || *cfg.OpenAI.Temperature != 0.1 {
		t.Errorf("temperature: %v", cfg.OpenAI.Temperature)
	}
	if len(cfg.Regional.Tags) != 2 || cfg.Regional.Tags[0] != "zh-CN" {
		t.Errorf("regional tags: %v", cfg.Regional.Tags)
	}
	if cfg.Workers != 4 || cfg.PaceMS != 250 || cfg.CacheTTL != 3600 {
		t.Errorf("tuning: workers=%d pace=%d ttl=%d", cfg.Workers, cfg.PaceMS, cfg.CacheTTL)
	}
	// Explicit rules replace the defaults wholesale.
	if cfg.Rules.BrandPrefix != "Acme" || len(cfg.Rules.Verbatim) != 0 {
		t.Errorf("rules: %+v", cfg.Rules)
	}
	schema, ok := cfg.Collections["News"]
	if !ok || schema.IdentifierField != "headline" {
		t.Errorf("collections: %+v", cfg.Collections)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("explicit path that does not exist should fail")
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("WEBFLOW_TOKEN", "env-token")
	t.Setenv("WEBFLOW_SITE_ID", "env-site")
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Webflow.Token != "env-token" || cfg.Webflow.SiteID != "env-site" {
		t.Errorf("webflow env fallback: %+v", cfg.Webflow)
	}
	if cfg.OpenAI.APIKey != "env-key" {
		t.Errorf("openai env fallback: %q", cfg.OpenAI.APIKey)
	}
}

func TestSchemaFor(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		collection string
		found      bool
	}{
		{"Blog", true},
		{"Blog Posts", true},
		{"blog posts v2", true}, // case-insensitive substring
		{"Help Center Questions", true},
		{"Product Gallery", false},
	}
	for _, tc := range cases {
		if _, found := cfg.SchemaFor(tc.collection); found != tc.found {
			t.Errorf("SchemaFor(%q) found = %v, want %v", tc.collection, found, tc.found)
		}
	}

	schema, _ := cfg.SchemaFor("Blog Posts")
	if schema.IdentifierField != "name" {
		t.Errorf("blog schema: %+v", schema)
	}
}

func TestDefaultCollectionsShape(t *testing.T) {
	schemas := DefaultCollections()

	blog, ok := schemas["Blog"]
	if !ok {
		t.Fatal("Blog schema missing")
	}
	hasPost := false
	for _, f := range blog.Translate {
		if f == "post" {
			hasPost = true
		}
	}
	if !hasPost {
		t.Errorf("blog translate set: %v", blog.Translate)
	}

	// Trading Specifications is preserve-only: nothing to translate, but
	// the records still flow through for locale copies.
	specs := schemas["Trading Specifications"]
	if len(specs.Translate) != 0 || len(specs.Preserve) == 0 {
		t.Errorf("trading specifications schema: %+v", specs)
	}
}
