// Command bumblebee translates Webflow site content into every configured
// locale through an LLM translation provider.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
	"github.com/arshaad-deriv/bumble-bee/cache"
	"github.com/arshaad-deriv/bumble-bee/config"
	"github.com/arshaad-deriv/bumble-bee/gateway"
	"github.com/arshaad-deriv/bumble-bee/webflow"
)

var (
	flagConfig  string
	flagSite    string
	flagVerbose bool

	flagLocales []string
	flagWorkers int
	flagPaceMS  int
	flagRetries int
	flagRPM     int
	flagDryRun  bool
)

func main() {
	// Credentials usually live in .env during local use; absence is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "bumblebee",
		Short:         bumblebee.Description,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", bumblebee.Version, bumblebee.GitCommit, bumblebee.BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&flagSite, "site", "", "Webflow site ID (default: config / WEBFLOW_SITE_ID)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log API and translation calls")

	root.AddCommand(newLocalesCmd(), newPagesCmd(), newCollectionsCmd(), newComponentsCmd(), newTranslateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env assembles the shared runtime pieces from flags + config.
type env struct {
	cfg    *config.Config
	client *webflow.Client
	logger *slog.Logger
	siteID string
}

func newEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if flagVerbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	siteID := flagSite
	if siteID == "" {
		siteID = cfg.Webflow.SiteID
	}

	client := webflow.NewClient(cfg.Webflow.Token, webflow.WithLogger(logger))
	return &env{cfg: cfg, client: client, logger: logger, siteID: siteID}, nil
}

func (e *env) requireSite() error {
	if e.siteID == "" {
		return fmt.Errorf("site ID required: pass --site, set WEBFLOW_SITE_ID, or configure webflow.site_id")
	}
	return nil
}

// buildGateway assembles the translation gateway stack: OpenAI primary,
// optional regional provider routed per locale tag, optional cache, rate
// limit, and opt-in retries.
func (e *env) buildGateway() (bumblebee.Gateway, error) {
	primary, err := gateway.NewOpenAIGateway(gateway.OpenAIConfig{
		APIKey:      e.cfg.OpenAI.APIKey,
		Model:       e.cfg.OpenAI.Model,
		Temperature: e.cfg.OpenAI.Temperature,
		Rules:       e.cfg.Rules,
		Logger:      e.logger,
	})
	if err != nil {
		return nil, err
	}

	var gw bumblebee.Gateway = primary
	if e.cfg.Regional.APIKey != "" && len(e.cfg.Regional.Tags) > 0 {
		regional, err := gateway.NewOpenAIGateway(gateway.OpenAIConfig{
			APIKey:   e.cfg.Regional.APIKey,
			BaseURL:  e.cfg.Regional.BaseURL,
			Model:    e.cfg.Regional.Model,
			Rules:    e.cfg.Rules,
			Logger:   e.logger,
			Provider: "regional",
		})
		if err != nil {
			return nil, err
		}
		gw = gateway.NewLocaleRouter(primary).Route(regional, e.cfg.Regional.Tags...)
	}

	if e.cfg.CacheTTL > 0 {
		var store cache.TranslationCache
		if e.cfg.RedisURL != "" {
			redisCache, err := cache.NewRedisCache(cache.RedisConfig{
				URL: e.cfg.RedisURL,
				TTL: e.cfg.CacheTTL,
			})
			if err != nil {
				return nil, fmt.Errorf("connecting translation cache: %w", err)
			}
			store = redisCache
		} else {
			store = cache.NewInMemoryCache(e.cfg.CacheTTL)
		}
		gw = gateway.NewCachedGateway(gw, store)
	}

	if flagRPM > 0 {
		gw = bumblebee.NewRateLimitedGateway(gw, bumblebee.RateLimitConfig{RequestsPerMinute: flagRPM})
	}
	if flagRetries > 0 {
		retryCfg := bumblebee.DefaultRetryConfig()
		retryCfg.MaxRetries = flagRetries
		gw = bumblebee.NewRetryGateway(gw, retryCfg)
	}
	return gw, nil
}

func (e *env) orchestratorOptions(total int) []bumblebee.OrchestratorOption {
	workers := flagWorkers
	if workers <= 0 {
		workers = e.cfg.Workers
	}
	pace := time.Duration(flagPaceMS) * time.Millisecond
	if flagPaceMS == 0 {
		pace = time.Duration(e.cfg.PaceMS) * time.Millisecond
	}

	opts := []bumblebee.OrchestratorOption{
		bumblebee.WithGlossary(e.cfg.Glossary.Terms()),
		bumblebee.WithWorkers(workers),
		bumblebee.WithPace(pace),
		bumblebee.WithLogger(e.logger),
	}
	if bar := newProgress(total); bar != nil {
		opts = append(opts, bar)
	}
	return opts
}
