package bumblebee

import "testing"

func TestMissingTerms(t *testing.T) {
	original := map[string]string{
		"title": "Trade with Deriv Bot",
		"body":  "Available on MT5 around the clock",
	}
	translated := map[string]string{
		"title": "Opera con Deriv Bot",
		"body":  "Disponible todo el dia",
	}

	missing := MissingTerms(original, translated, []string{"Deriv Bot", "MT5", "SmartTrader"})
	if len(missing) != 1 || missing[0] != "MT5" {
		t.Errorf("missing = %v, want [MT5]", missing)
	}
}

func TestMissingTermsHTMLSplit(t *testing.T) {
	// The term straddles inline markup in the source but survives intact in
	// the translation; stripping tags before matching avoids a false report.
	original := map[string]string{
		"text": "<p>Use <strong>Deriv</strong> Bot for automation</p>",
	}
	translated := map[string]string{
		"text": "<p>Usa Deriv Bot para automatizar</p>",
	}

	if missing := MissingTerms(original, translated, []string{"Deriv Bot"}); len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestMissingTermsAbsentFromSource(t *testing.T) {
	original := map[string]string{"text": "plain text"}
	translated := map[string]string{"text": "texto plano"}

	// Terms never present in the source are not reported.
	if missing := MissingTerms(original, translated, []string{"MT5"}); len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestMissingTermsNoGlossary(t *testing.T) {
	if missing := MissingTerms(map[string]string{"a": "b"}, nil, nil); missing != nil {
		t.Errorf("missing = %v, want nil", missing)
	}
}
