package bumblebee

import "testing"

func TestHashFieldsDeterministic(t *testing.T) {
	fields := map[string]string{"name": "Hello", "summary": "World"}
	order := []string{"name", "summary"}

	h1 := HashFields(fields, order)
	h2 := HashFields(map[string]string{"summary": "World", "name": "Hello"}, order)
	if h1 != h2 {
		t.Errorf("same content hashed differently: %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
}

func TestHashFieldsContentSensitive(t *testing.T) {
	order := []string{"name"}
	h1 := HashFields(map[string]string{"name": "Hello"}, order)
	h2 := HashFields(map[string]string{"name": "Hello!"}, order)
	if h1 == h2 {
		t.Error("different content produced the same hash")
	}

	// Field names are part of the digest, not just values.
	h3 := HashFields(map[string]string{"title": "Hello"}, []string{"title"})
	if h1 == h3 {
		t.Error("different field names produced the same hash")
	}
}

func TestHashFieldsOrderIsCanonical(t *testing.T) {
	fields := map[string]string{"a": "1", "b": "2"}

	// Keys missing from the recorded order are appended sorted, so the hash
	// stays stable whatever the map iteration yields.
	h1 := HashFields(fields, nil)
	h2 := HashFields(fields, nil)
	if h1 != h2 {
		t.Errorf("unordered fields hashed differently: %s vs %s", h1, h2)
	}
}

func TestCacheKey(t *testing.T) {
	if got := CacheKey("abc123", "es"); got != "abc123:es" {
		t.Errorf("CacheKey = %q", got)
	}
}
