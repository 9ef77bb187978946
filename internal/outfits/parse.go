package outfits

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"boutique-backend/internal/llm"
)

// ErrMalformedGeneration reports generation output without a recommendations array.
var ErrMalformedGeneration = errors.New("malformed generation output")

// ParseGeneration decodes generation output as untyped JSON. It requires a top-level
// object with a recommendations array and keeps every element for the validator to judge.
func ParseGeneration(raw []byte) (Generation, error) {
	text := stripCodeFence(strings.TrimSpace(string(raw)))
	if text == "" {
		return Generation{}, fmt.Errorf("%w: empty output", ErrMalformedGeneration)
	}

	var top any
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return Generation{}, fmt.Errorf("%w: %v", ErrMalformedGeneration, err)
	}
	obj, ok := top.(map[string]any)
	if !ok {
		return Generation{}, fmt.Errorf("%w: top level is not an object", ErrMalformedGeneration)
	}
	value, ok := obj["recommendations"]
	if !ok {
		return Generation{}, fmt.Errorf("%w: recommendations missing", ErrMalformedGeneration)
	}
	elements, ok := value.([]any)
	if !ok {
		return Generation{}, fmt.Errorf("%w: recommendations is not an array", ErrMalformedGeneration)
	}

	gen := Generation{Recommendations: make([]RawSuggestion, 0, len(elements))}
	for _, el := range elements {
		m, _ := el.(map[string]any)
		gen.Recommendations = append(gen.Recommendations, RawSuggestion(m))
	}
	if reason, ok := obj["reason"].(string); ok {
		gen.Reason = reason
	}
	return gen, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ValidateOutput parses stored generation output and validates it against candidates.
// Unparseable output yields a malformed-output failure.
func ValidateOutput(candidates []string, raw []byte) RecommendationResult {
	candidates = normalizeCandidates(candidates)
	if len(candidates) < llm.MinRecommendations {
		return failed(FailureInsufficientCandidates, reasonInsufficientCandidates)
	}
	gen, err := ParseGeneration(raw)
	if err != nil {
		return failed(FailureMalformedOutput, reasonMalformedOutput)
	}
	return Validate(candidates, gen.Recommendations, gen.Reason)
}
