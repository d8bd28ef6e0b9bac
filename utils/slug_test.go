package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"A Study of Peer Review":            "a-study-of-peer-review",
		"Électrodynamique quantique":        "electrodynamique-quantique",
		"  spaced   out --- title  ":        "spaced-out-title",
		"CRISPR/Cas9: Promise & Peril (v2)": "crispr-cas9-promise-peril-v2",
		"100% reproducible?":                "100-reproducible",
	}

	for input, expected := range tests {
		if got := Slugify(input); got != expected {
			t.Errorf("Slugify(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestSlugifyEmpty(t *testing.T) {
	if got := Slugify("!!!"); got != "" {
		t.Errorf("expected empty slug for punctuation-only input, got %q", got)
	}
}
