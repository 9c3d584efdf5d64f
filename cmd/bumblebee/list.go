package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

func newLocalesCmd() *cobra.Command {
	var cms bool
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the site's locales",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.requireSite(); err != nil {
				return err
			}

			var locales []bumblebee.LocaleTarget
			if cms {
				locales, err = e.client.CMSLocales(cmd.Context(), e.siteID)
			} else {
				locales, err = e.client.SiteLocales(cmd.Context(), e.siteID)
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTAG\tID\tDEFAULT")
			for _, loc := range locales {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", loc.DisplayName, loc.Tag, loc.ID, loc.Default)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&cms, "cms", false, "list the cmsLocaleId namespace used for collection items")
	return cmd
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the site's pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.requireSite(); err != nil {
				return err
			}
			pages, err := e.client.Pages(cmd.Context(), e.siteID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tSLUG\tID")
			for _, p := range pages {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Title, p.Slug, p.ID)
			}
			return w.Flush()
		},
	}
}

func newCollectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the site's CMS collections",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSLUG\tID\tSCHEMA")
			for _, col := range collections {
				schema := "-"
				if s, ok := e.cfg.SchemaFor(col.DisplayName); ok {
					schema = s.DisplayName
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", col.DisplayName, col.Slug, col.ID, schema)
			}
			return w.Flush()
		},
	}
}

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the site's components",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			if err := e.requireSite(); err != nil {
				return err
			}
			components, err := e.client.Components(cmd.Context(), e.siteID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tID")
			for _, comp := range components {
				fmt.Fprintf(w, "%s\t%s\n", comp.Name, comp.ID)
			}
			return w.Flush()
		},
	}
}
