package bumblebee

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete marks a paginated fetch that stopped short of the server's
// reported total. The items fetched so far are still returned alongside it.
var ErrIncomplete = errors.New("collection fetch incomplete")

// TransportError indicates a network or HTTP failure, including timeouts
// and non-2xx statuses.
type TransportError struct {
	Op     string // operation that failed, e.g. "fetch page dom"
	Status int    // HTTP status, 0 for pure network errors
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the failure is worth retrying.
func (e *TransportError) Retryable() bool {
	switch e.Status {
	case 429, 502, 503, 504:
		return true
	}
	return e.Status == 0 // network-level failures and timeouts
}

// IntegrityError indicates the remote response violated its own contract:
// a pagination total that is never reached, or a response shape that does
// not match the expected schema.
type IntegrityError struct {
	Message  string
	Expected int
	Got      int
}

func (e *IntegrityError) Error() string {
	if e.Expected != 0 || e.Got != 0 {
		return fmt.Sprintf("%s: expected %d, got %d", e.Message, e.Expected, e.Got)
	}
	return e.Message
}

// ValidationError indicates a translated reply whose field-name set does not
// match the request's, or a request that cannot be translated at all.
type ValidationError struct {
	Message string
	Missing []string // keys in the request but absent from the reply
	Extra   []string // keys in the reply but absent from the request
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing keys: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&b, "; unexpected keys: %s", strings.Join(e.Extra, ", "))
	}
	return b.String()
}

// CredentialError indicates a missing or invalid API key for a required
// provider. Raised before any network call is attempted.
type CredentialError struct {
	Provider string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("missing or invalid credential for %s", e.Provider)
}

// PartialWriteWarning is attached to an otherwise successful write whose
// 200 response body reported node-level errors. Non-fatal.
type PartialWriteWarning struct {
	Nodes []NodeWriteError
}

func (w *PartialWriteWarning) Error() string {
	parts := make([]string, len(w.Nodes))
	for i, n := range w.Nodes {
		parts[i] = fmt.Sprintf("node %s: %s", n.NodeID, n.Error)
	}
	return "partial write: " + strings.Join(parts, "; ")
}
