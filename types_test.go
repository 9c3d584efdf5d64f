package bumblebee

import (
	"reflect"
	"testing"
)

func TestRecordClone(t *testing.T) {
	rec := TranslatableRecord{
		ID:         "item-1",
		Fields:     map[string]string{"name": "Hello"},
		FieldOrder: []string{"name"},
		Preserved:  map[string]any{"slug": "hello", "order": 3},
	}

	clone := rec.Clone()
	clone.Fields["name"] = "Hola"
	clone.Preserved["slug"] = "hola"

	if rec.Fields["name"] != "Hello" || rec.Preserved["slug"] != "hello" {
		t.Error("Clone shares state with the original")
	}
}

func TestFieldNamesOrder(t *testing.T) {
	rec := TranslatableRecord{
		Fields: map[string]string{
			"summary": "s", "name": "n", "zeta": "z", "alpha": "a",
		},
		FieldOrder: []string{"name", "summary", "absent"},
	}

	// Schema order first, keys outside the order appended sorted; names in
	// the order but absent from Fields are dropped.
	want := []string{"name", "summary", "alpha", "zeta"}
	if got := rec.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}
