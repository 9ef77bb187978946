package outfits

// RawSuggestion is one untrusted element of a generation output. A nil value stands
// for an element that was not a JSON object.
type RawSuggestion map[string]any

// Suggestion is a validated recommendation: well-formed, a candidate, and unique.
type Suggestion struct {
	ClothingItemID string `json:"clothingItemId"`
}

// FailureKind classifies why a result carries no recommendations.
type FailureKind string

const (
	FailureNone                   FailureKind = ""
	FailureInsufficientCandidates FailureKind = "insufficient_candidates"
	FailureGenerationFailed       FailureKind = "generation_failed"
	FailureMalformedOutput        FailureKind = "malformed_output"
	FailureInsufficientResults    FailureKind = "insufficient_results"
)

// RecommendationResult holds either 2 to 5 recommendations or none, always with a reason.
type RecommendationResult struct {
	Recommendations []Suggestion `json:"recommendations"`
	Reason          string       `json:"reason,omitempty"`
	Failure         FailureKind  `json:"-"`
}

// OK reports whether the result carries recommendations.
func (r RecommendationResult) OK() bool {
	return r.Failure == FailureNone && len(r.Recommendations) > 0
}

// IDs returns the recommended item ids in order.
func (r RecommendationResult) IDs() []string {
	out := make([]string, 0, len(r.Recommendations))
	for _, s := range r.Recommendations {
		out = append(out, s.ClothingItemID)
	}
	return out
}

// Request is an inbound outfit request.
type Request struct {
	StylePreference string   `json:"stylePreference"`
	CandidateIDs    []string `json:"candidateIds"`
}

// Generation is a parsed but unvalidated generation output.
type Generation struct {
	Recommendations []RawSuggestion
	Reason          string
}

func failed(kind FailureKind, reason string) RecommendationResult {
	return RecommendationResult{
		Recommendations: []Suggestion{},
		Reason:          reason,
		Failure:         kind,
	}
}
