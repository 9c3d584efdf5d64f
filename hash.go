package bumblebee

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashFields computes a SHA-256 digest over a field map in the given order.
// Records with identical content hash the same regardless of map iteration.
func HashFields(fields map[string]string, order []string) string {
	h := sha256.New()
	rec := TranslatableRecord{Fields: fields, FieldOrder: order}
	for _, name := range rec.FieldNames() {
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(fields[name]))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CacheKey builds a translation cache key from a content hash and target
// locale tag.
func CacheKey(hash, targetTag string) string {
	return hash + ":" + targetTag
}
