// Package bumblebee is an AI-powered localization pipeline for Webflow sites.
package bumblebee

import (
	"context"
	"sort"
)

// ContentKind identifies the raw content-unit shape a record came from.
type ContentKind string

const (
	// KindTextNode is a text-typed DOM node: a single implicit text field.
	KindTextNode ContentKind = "text_node"
	// KindNodeOverrides is an override-typed DOM node (component instance):
	// named sub-fields keyed by property identifier.
	KindNodeOverrides ContentKind = "node_overrides"
	// KindComponentProperty is a component's default property set.
	KindComponentProperty ContentKind = "component_property"
	// KindCollectionItem is a CMS collection item.
	KindCollectionItem ContentKind = "collection_item"
)

// TranslatableRecord is one normalized unit of translation work. Fields is
// the mutable translation target; Preserved is copied through untouched for
// every locale (slugs, ordering numbers, flags).
type TranslatableRecord struct {
	ID         string            // stable identifier used by the write endpoint
	Identifier string            // human-readable name for reporting
	Slug       string            // URL slug where the content type has one
	Kind       ContentKind       // raw shape this record was normalized from
	Fields     map[string]string // field name -> translatable text
	FieldOrder []string          // schema order of Fields keys
	Preserved  map[string]any    // field name -> value copied through as-is
}

// Clone returns a deep copy suitable for per-locale mutation.
func (r TranslatableRecord) Clone() TranslatableRecord {
	out := r
	out.Fields = make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	out.FieldOrder = append([]string(nil), r.FieldOrder...)
	out.Preserved = make(map[string]any, len(r.Preserved))
	for k, v := range r.Preserved {
		out.Preserved[k] = v
	}
	return out
}

// FieldNames returns the field names in schema order. Keys added outside the
// recorded order are appended at the end so none are lost.
func (r TranslatableRecord) FieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	seen := make(map[string]bool, len(r.Fields))
	for _, name := range r.FieldOrder {
		if _, ok := r.Fields[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range r.Fields {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// FieldSchema configures normalization for one content type: which fields
// are translated, which are carried through unchanged, and which field names
// the item for display purposes.
type FieldSchema struct {
	Translate       []string `yaml:"translate"`
	Preserve        []string `yaml:"preserve"`
	IdentifierField string   `yaml:"identifier"`
	DisplayName     string   `yaml:"display_name"`
}

// LocaleTarget is a translation destination. ID is the platform identifier
// used by the write endpoint (site localeId or cmsLocaleId depending on the
// content type); Tag is the language code used in translation prompts.
type LocaleTarget struct {
	ID          string
	Tag         string
	DisplayName string
	Default     bool
}

// TranslationRequest carries one record's fields to a Gateway. Immutable;
// built fresh per (record, locale) pair.
type TranslationRequest struct {
	Fields        map[string]string
	FieldOrder    []string
	TargetTag     string
	GlossaryTerms []string
}

// Gateway translates a record's field map into the target language. The
// returned map must have exactly the same key set as req.Fields; gateways
// reject non-isomorphic upstream replies with a *ValidationError.
type Gateway interface {
	Translate(ctx context.Context, req TranslationRequest) (map[string]string, error)
}

// CredentialChecker is implemented by gateways that can verify their
// upstream credential without a network call. The orchestrator uses it to
// fast-fail a batch before any work is submitted.
type CredentialChecker interface {
	CheckCredentials() error
}

// WriteReceipt reports the result of a successful write. NodeErrors carries
// node-level failures the platform returned in-band with a 200 status; the
// write as a whole still succeeded.
type WriteReceipt struct {
	NodeErrors []NodeWriteError
}

// NodeWriteError is one per-node failure from an otherwise successful write.
type NodeWriteError struct {
	NodeID string `json:"nodeId"`
	Error  string `json:"error"`
}

// Writer pushes a translated record back to the platform for one locale.
type Writer interface {
	Write(ctx context.Context, rec TranslatableRecord, locale LocaleTarget) (*WriteReceipt, error)
}

// PairState tracks one (record, locale) pair through the pipeline.
type PairState string

const (
	StatePending           PairState = "pending"
	StateTranslating       PairState = "translating"
	StateTranslationFailed PairState = "translation_failed"
	StateTranslated        PairState = "translated"
	StateWriting           PairState = "writing"
	StateWriteFailed       PairState = "write_failed"
	StateWritten           PairState = "written"
)

// Terminal reports whether the state ends the pair's lifecycle.
func (s PairState) Terminal() bool {
	switch s {
	case StateTranslationFailed, StateWriteFailed, StateWritten:
		return true
	}
	return false
}

// OutcomeStatus is the result classification of one pair.
type OutcomeStatus string

const (
	StatusSuccess OutcomeStatus = "success"
	StatusError   OutcomeStatus = "error"
)

// BatchOutcome is one row per (record, locale) pair. Append-only; never
// mutated after creation.
type BatchOutcome struct {
	ItemID     string
	Identifier string
	LocaleName string
	LocaleTag  string
	Status     OutcomeStatus
	State      PairState
	Message    string
	Warnings   []string
}
