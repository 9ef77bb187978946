package metrics

import (
	"strings"
	"testing"
)

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts: %v", snap.counts)
	}
}

func TestRenderIncludesLabeledCounters(t *testing.T) {
	IncOutfitFailure("insufficient_candidates")
	AddDroppedSuggestions("duplicate", 2)
	AddDroppedSuggestions("invalid", 0)

	out := Render()
	for _, want := range []string{
		`outfit_failures_total{kind="insufficient_candidates"}`,
		`outfit_suggestions_dropped_total{reason="duplicate"}`,
		"outfit_generation_duration_ms_bucket{le=\"+Inf\"}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %s\n%s", want, out)
		}
	}
	if strings.Contains(out, `reason="invalid"`) {
		t.Fatalf("zero drops should not create a series")
	}
}
