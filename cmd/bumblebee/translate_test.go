package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

func TestSelectLocales(t *testing.T) {
	locales := []bumblebee.LocaleTarget{
		{ID: "loc-en", Tag: "en", Default: true},
		{ID: "loc-es", Tag: "es"},
		{ID: "loc-ar", Tag: "ar"},
		{ID: "loc-pt", Tag: "pt-BR"},
	}

	// No filter keeps everything.
	if got := selectLocales(locales, nil); len(got) != 4 {
		t.Errorf("unfiltered: %d locales", len(got))
	}

	got := selectLocales(locales, []string{"ES", "pt-br"})
	if len(got) != 3 {
		t.Fatalf("filtered: %d locales", len(got))
	}
	// The default locale survives the filter so the orchestrator can skip
	// it itself.
	if !got[0].Default || got[1].Tag != "es" || got[2].Tag != "pt-BR" {
		t.Errorf("filtered set: %+v", got)
	}
}

func TestFilterBySlug(t *testing.T) {
	records := []bumblebee.TranslatableRecord{
		{ID: "a", Slug: "first-post"},
		{ID: "b", Slug: "second-post"},
	}
	got := filterBySlug(records, "second-post")
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("filtered: %+v", got)
	}
	if got := filterBySlug(records, "absent"); got != nil {
		t.Errorf("absent slug: %+v", got)
	}
}

func TestTolerateIncomplete(t *testing.T) {
	if err := tolerateIncomplete(nil); err != nil {
		t.Errorf("nil: %v", err)
	}
	partial := fmt.Errorf("%w: got 150 of 250 items", bumblebee.ErrIncomplete)
	if err := tolerateIncomplete(partial); err != nil {
		t.Errorf("partial fetch should be tolerated: %v", err)
	}
	fatal := errors.New("boom")
	if err := tolerateIncomplete(fatal); !errors.Is(err, fatal) {
		t.Errorf("other errors must propagate: %v", err)
	}
}

func TestDiscardWriter(t *testing.T) {
	receipt, err := discardWriter{}.Write(context.Background(),
		bumblebee.TranslatableRecord{ID: "n1"}, bumblebee.LocaleTarget{ID: "loc-es"})
	if err != nil || len(receipt.NodeErrors) != 0 {
		t.Errorf("receipt=%+v err=%v", receipt, err)
	}
}
