package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
	"github.com/arshaad-deriv/bumble-bee/webflow"
)

func newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate content and publish it per locale",
	}
	cmd.PersistentFlags().StringSliceVarP(&flagLocales, "locales", "l", nil, "target locale tags (default: every non-default locale)")
	cmd.PersistentFlags().IntVarP(&flagWorkers, "workers", "w", 0, "concurrent locale workers (default: config, sequential)")
	cmd.PersistentFlags().IntVar(&flagPaceMS, "pace", 0, "delay between sequential requests, in milliseconds")
	cmd.PersistentFlags().IntVar(&flagRetries, "retries", 0, "retry transient provider failures up to N times")
	cmd.PersistentFlags().IntVar(&flagRPM, "rpm", 0, "cap translation requests per minute")
	cmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "translate but do not write back")

	cmd.AddCommand(newTranslatePageCmd(), newTranslateCollectionCmd(), newTranslateComponentCmd())
	return cmd
}

func newTranslatePageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page <page-id>",
		Short: "Translate a page's DOM content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.requireSite(); err != nil {
				return err
			}

			nodes, err := e.client.PageDOM(cmd.Context(), pageID)
			if err := tolerateIncomplete(err); err != nil {
				return err
			}
			records := webflow.NormalizeNodes(nodes)
			if len(records) == 0 {
				return fmt.Errorf("page %s has no translatable content", pageID)
			}

			locales, err := e.client.SiteLocales(cmd.Context(), e.siteID)
			if err != nil {
				return err
			}

			return e.runBatch(cmd, records, locales, webflow.NewPageWriter(e.client, pageID))
		},
	}
}

func newTranslateCollectionCmd() *cobra.Command {
	var itemSlug string
	cmd := &cobra.Command{
		Use:   "collection <collection-id>",
		Short: "Translate a CMS collection's items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collectionID := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.requireSite(); err != nil {
				return err
			}

			collections, err := e.client.Collections(cmd.Context(), e.siteID)
			if err != nil {
				return err
			}
			var schema bumblebee.FieldSchema
			found := false
			for _, col := range collections {
				if col.ID == collectionID {
					schema, found = e.cfg.SchemaFor(col.DisplayName)
					if !found {
						return fmt.Errorf("collection %q has no configured field schema", col.DisplayName)
					}
					break
				}
			}
			if !found {
				return fmt.Errorf("collection %s not found on site %s", collectionID, e.siteID)
			}

			items, err := e.client.CollectionItems(cmd.Context(), collectionID)
			if err := tolerateIncomplete(err); err != nil {
				return err
			}
			records := webflow.NormalizeItems(items, schema)
			if itemSlug != "" {
				records = filterBySlug(records, itemSlug)
				if len(records) == 0 {
					return fmt.Errorf("no item with slug %q", itemSlug)
				}
			}

			locales, err := e.client.CMSLocales(cmd.Context(), e.siteID)
			if err != nil {
				return err
			}

			return e.runBatch(cmd, records, locales, webflow.NewCollectionItemWriter(e.client, collectionID))
		},
	}
	cmd.Flags().StringVar(&itemSlug, "item", "", "translate only the item with this slug")
	return cmd
}

func newTranslateComponentCmd() *cobra.Command {
	var properties bool
	cmd := &cobra.Command{
		Use:   "component <component-id>",
		Short: "Translate a component's content or default properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			componentID := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.requireSite(); err != nil {
				return err
			}

			var records []bumblebee.TranslatableRecord
			var writer bumblebee.Writer
			if properties {
				props, err := e.client.ComponentProperties(cmd.Context(), e.siteID, componentID)
				if err := tolerateIncomplete(err); err != nil {
					return err
				}
				records = webflow.NormalizeProperties(componentID, props)
				writer = webflow.NewPropertiesWriter(e.client, e.siteID, componentID)
			} else {
				nodes, err := e.client.ComponentDOM(cmd.Context(), e.siteID, componentID)
				if err := tolerateIncomplete(err); err != nil {
					return err
				}
				records = webflow.NormalizeComponentNodes(nodes)
				writer = webflow.NewComponentWriter(e.client, e.siteID, componentID)
			}
			if len(records) == 0 {
				return fmt.Errorf("component %s has no translatable content", componentID)
			}

			locales, err := e.client.SiteLocales(cmd.Context(), e.siteID)
			if err != nil {
				return err
			}

			return e.runBatch(cmd, records, locales, writer)
		},
	}
	cmd.Flags().BoolVar(&properties, "properties", false, "translate default properties instead of DOM content")
	return cmd
}

// runBatch wires the orchestrator and reports per-pair outcomes plus the
// aggregate summary.
func (e *env) runBatch(cmd *cobra.Command, records []bumblebee.TranslatableRecord, locales []bumblebee.LocaleTarget, writer bumblebee.Writer) error {
	locales = selectLocales(locales, flagLocales)
	targets := 0
	for _, loc := range locales {
		if !loc.Default {
			targets++
		}
	}
	if targets == 0 {
		return fmt.Errorf("no target locales selected")
	}

	gw, err := e.buildGateway()
	if err != nil {
		return err
	}
	if flagDryRun {
		writer = discardWriter{}
	}

	runID := uuid.NewString()
	e.logger.Info("batch", "run_id", runID, "records", len(records), "locales", targets)
	fmt.Fprintf(os.Stderr, "run %s: %d records x %d locales\n", runID, len(records), targets)

	orch := bumblebee.NewOrchestrator(gw, writer, e.orchestratorOptions(len(records)*targets)...)

	start := time.Now()
	outcomes, err := orch.Run(cmd.Context(), records, locales)
	if err != nil {
		return err
	}

	for _, out := range outcomes {
		mark := "ok"
		if out.Status != bumblebee.StatusSuccess {
			mark = "FAIL"
		}
		fmt.Printf("[%s] %s -> %s (%s): %s\n", mark, out.Identifier, out.LocaleName, out.LocaleTag, out.Message)
		for _, warn := range out.Warnings {
			fmt.Printf("       warning: %s\n", warn)
		}
	}
	summary := bumblebee.Summarize(outcomes, time.Since(start))
	fmt.Println(summary)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d pairs failed", summary.Failed, summary.Total)
	}
	return nil
}

// newProgress returns a progress option rendering to stderr, or nil when
// not attached to a terminal-friendly stream.
func newProgress(total int) bumblebee.OrchestratorOption {
	if total <= 0 {
		return nil
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("translating"),
		progressbar.OptionClearOnFinish(),
	)
	return bumblebee.WithProgress(func(done, _ int) {
		_ = bar.Set(done)
	})
}

// selectLocales filters to the requested tags; the default locale is kept
// so the orchestrator can skip it explicitly.
func selectLocales(locales []bumblebee.LocaleTarget, tags []string) []bumblebee.LocaleTarget {
	if len(tags) == 0 {
		return locales
	}
	want := make(map[string]bool, len(tags))
	for _, tag := range tags {
		want[strings.ToLower(tag)] = true
	}
	var out []bumblebee.LocaleTarget
	for _, loc := range locales {
		if loc.Default || want[strings.ToLower(loc.Tag)] {
			out = append(out, loc)
		}
	}
	return out
}

func filterBySlug(records []bumblebee.TranslatableRecord, slug string) []bumblebee.TranslatableRecord {
	var out []bumblebee.TranslatableRecord
	for _, rec := range records {
		if rec.Slug == slug {
			out = append(out, rec)
		}
	}
	return out
}

// tolerateIncomplete downgrades a partial fetch to a warning; everything
// else propagates.
func tolerateIncomplete(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bumblebee.ErrIncomplete) {
		fmt.Fprintf(os.Stderr, "warning: %v; continuing with partial content\n", err)
		return nil
	}
	return err
}

// discardWriter satisfies bumblebee.Writer for --dry-run.
type discardWriter struct{}

func (discardWriter) Write(_ context.Context, _ bumblebee.TranslatableRecord, _ bumblebee.LocaleTarget) (*bumblebee.WriteReceipt, error) {
	return &bumblebee.WriteReceipt{}, nil
}
