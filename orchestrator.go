package bumblebee

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Orchestrator fans translation work out across (record, locale) pairs and
// publishes successful translations through a Writer. One pair's failure
// never aborts the others.
type Orchestrator struct {
	gateway  Gateway
	writer   Writer
	glossary []string
	workers  int
	pace     time.Duration
	logger   *slog.Logger
	progress func(done, total int)
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithGlossary sets the do-not-translate terms carried on every request.
func WithGlossary(terms []string) OrchestratorOption {
	return func(o *Orchestrator) {
		o.glossary = terms
	}
}

// WithWorkers enables parallel mode with up to n concurrent pairs.
// n <= 1 keeps the orchestrator sequential.
func WithWorkers(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		o.workers = n
	}
}

// WithPace inserts a delay between sequential requests to respect upstream
// rate limits. Ignored in parallel mode.
func WithPace(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.pace = d
	}
}

// WithLogger sets the structured logger for pipeline events.
func WithLogger(l *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// WithProgress registers a callback invoked after each pair completes with
// the running done/total counts. Called from worker goroutines in parallel
// mode; the callback must be safe for concurrent use.
func WithProgress(fn func(done, total int)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.progress = fn
	}
}

// NewOrchestrator creates an Orchestrator for the given gateway and writer.
func NewOrchestrator(gateway Gateway, writer Writer, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		gateway: gateway,
		writer:  writer,
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// pair is one unit of fan-out work.
type pair struct {
	record TranslatableRecord
	locale LocaleTarget
}

// Run translates every record into every non-default locale and writes each
// success back. It returns one BatchOutcome per (record, locale) pair; in
// parallel mode the order of outcomes is not guaranteed. The only error
// returned is a pre-flight failure (missing credential, cancelled context)
// raised before any pair is attempted.
func (o *Orchestrator) Run(ctx context.Context, records []TranslatableRecord, locales []LocaleTarget) ([]BatchOutcome, error) {
	if checker, ok := o.gateway.(CredentialChecker); ok {
		if err := checker.CheckCredentials(); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var pairs []pair
	for _, rec := range records {
		for _, loc := range locales {
			if loc.Default {
				continue
			}
			pairs = append(pairs, pair{record: rec, locale: loc})
		}
	}
	if len(pairs) == 0 {
		return nil, nil
	}

	o.logger.Info("batch start",
		"records", len(records), "pairs", len(pairs), "workers", o.workers)

	if o.workers > 1 {
		return o.runParallel(ctx, pairs), nil
	}
	return o.runSequential(ctx, pairs), nil
}

func (o *Orchestrator) runSequential(ctx context.Context, pairs []pair) []BatchOutcome {
	outcomes := make([]BatchOutcome, 0, len(pairs))
	for i, p := range pairs {
		outcomes = append(outcomes, o.processPair(ctx, p))
		if o.progress != nil {
			o.progress(i+1, len(pairs))
		}
		// Cooperative stop: finish the in-flight pair, submit no more.
		if ctx.Err() != nil && i+1 < len(pairs) {
			for _, rest := range pairs[i+1:] {
				outcomes = append(outcomes, cancelledOutcome(rest))
			}
			break
		}
		if o.pace > 0 && i+1 < len(pairs) {
			select {
			case <-ctx.Done():
			case <-time.After(o.pace):
			}
		}
	}
	return outcomes
}

func (o *Orchestrator) runParallel(ctx context.Context, pairs []pair) []BatchOutcome {
	jobs := make(chan pair)
	results := make(chan BatchOutcome, len(pairs))
	var done atomic.Int64

	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				out := o.processPair(ctx, p)
				results <- out
				if o.progress != nil {
					o.progress(int(done.Add(1)), len(pairs))
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, p := range pairs {
			// Stop submitting new work once the context is cancelled;
			// in-flight pairs run to completion.
			if ctx.Err() != nil {
				results <- cancelledOutcome(p)
				if o.progress != nil {
					o.progress(int(done.Add(1)), len(pairs))
				}
				continue
			}
			jobs <- p
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]BatchOutcome, 0, len(pairs))
	for out := range results {
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// processPair walks one (record, locale) pair through the state machine:
// Pending -> Translating -> {TranslationFailed | Translated} -> Writing ->
// {WriteFailed | Written}. Failures are converted into outcomes, never
// propagated.
func (o *Orchestrator) processPair(ctx context.Context, p pair) BatchOutcome {
	out := BatchOutcome{
		ItemID:     p.record.ID,
		Identifier: p.record.Identifier,
		LocaleName: p.locale.DisplayName,
		LocaleTag:  p.locale.Tag,
		State:      StatePending,
	}

	out.State = StateTranslating
	start := time.Now()
	translated, err := o.gateway.Translate(ctx, TranslationRequest{
		Fields:        p.record.Fields,
		FieldOrder:    p.record.FieldOrder,
		TargetTag:     p.locale.Tag,
		GlossaryTerms: o.glossary,
	})
	o.logger.Info("translate-call",
		"item", p.record.ID, "locale", p.locale.Tag,
		"duration", time.Since(start), "err", err)
	if err != nil {
		out.State = StateTranslationFailed
		out.Status = StatusError
		out.Message = fmt.Sprintf("translation failed: %v", err)
		return out
	}
	out.State = StateTranslated

	if missing := MissingTerms(p.record.Fields, translated, o.glossary); len(missing) > 0 {
		for _, term := range missing {
			out.Warnings = append(out.Warnings, fmt.Sprintf("glossary term not preserved: %q", term))
		}
	}

	localized := p.record.Clone()
	localized.Fields = translated

	out.State = StateWriting
	start = time.Now()
	receipt, err := o.writer.Write(ctx, localized, p.locale)
	o.logger.Info("write-call",
		"item", p.record.ID, "locale", p.locale.Tag,
		"duration", time.Since(start), "err", err)
	if err != nil {
		out.State = StateWriteFailed
		out.Status = StatusError
		out.Message = fmt.Sprintf("write failed: %v", err)
		return out
	}

	out.State = StateWritten
	out.Status = StatusSuccess
	out.Message = "translated and published"
	if receipt != nil && len(receipt.NodeErrors) > 0 {
		warn := &PartialWriteWarning{Nodes: receipt.NodeErrors}
		out.Warnings = append(out.Warnings, warn.Error())
	}
	return out
}

func cancelledOutcome(p pair) BatchOutcome {
	return BatchOutcome{
		ItemID:     p.record.ID,
		Identifier: p.record.Identifier,
		LocaleName: p.locale.DisplayName,
		LocaleTag:  p.locale.Tag,
		Status:     StatusError,
		State:      StateTranslationFailed,
		Message:    "translation failed: " + context.Canceled.Error(),
	}
}
