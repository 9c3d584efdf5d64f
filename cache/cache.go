// Package cache provides translation caching implementations.
package cache

// TranslationCache stores translated field maps keyed by content hash and
// target locale.
type TranslationCache interface {
	// Get retrieves a cached value. Returns false if absent or expired.
	Get(key string) (string, bool)

	// Set stores a value.
	Set(key string, value string) error
}
