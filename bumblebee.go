// Package bumblebee is an AI-powered localization pipeline for Webflow sites.
//
// It fetches page DOM nodes, CMS collection items, and component properties
// through the Webflow Data API, extracts the translatable fields for each
// content type, fans translation requests out across target locales via an
// LLM chat-completion provider, and writes the translated content back per
// locale.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/arshaad-deriv/bumble-bee"
//	    "github.com/arshaad-deriv/bumble-bee/gateway"
//	    "github.com/arshaad-deriv/bumble-bee/webflow"
//	)
//
//	func main() {
//	    wf := webflow.NewClient(os.Getenv("WEBFLOW_TOKEN"))
//	    gw, err := gateway.NewOpenAIGateway(gateway.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ctx := context.Background()
//	    start := time.Now()
//	    nodes, err := wf.PageDOM(ctx, pageID)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    records := webflow.NormalizeNodes(nodes)
//
//	    locales, err := wf.SiteLocales(ctx, siteID)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    orch := bumblebee.NewOrchestrator(gw, webflow.NewPageWriter(wf, pageID),
//	        bumblebee.WithGlossary(bumblebee.DefaultGlossary().Terms()),
//	        bumblebee.WithWorkers(4),
//	    )
//	    outcomes, err := orch.Run(ctx, records, locales)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(bumblebee.Summarize(outcomes, time.Since(start)))
//	}
package bumblebee
