package outfits

import (
	"strings"

	"boutique-backend/internal/llm"
)

type validationStats struct {
	Accepted  int
	Invalid   int
	Duplicate int
	Truncated int
}

// Validate filters untrusted suggestions against the candidate ids. It keeps the first
// occurrence of each candidate in input order, then caps the result at five. Fewer than
// two survivors yield an empty result with an explanatory reason.
func Validate(candidates []string, raw []RawSuggestion, rawReason string) RecommendationResult {
	result, _ := runValidation(candidates, raw, rawReason)
	return result
}

func runValidation(candidates []string, raw []RawSuggestion, rawReason string) (RecommendationResult, validationStats) {
	var stats validationStats
	if len(candidates) < llm.MinRecommendations {
		return failed(FailureInsufficientCandidates, reasonInsufficientCandidates), stats
	}

	members := make(map[string]struct{}, len(candidates))
	for _, id := range candidates {
		members[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(raw))
	accepted := make([]Suggestion, 0, len(raw))
	for _, item := range raw {
		id, ok := suggestionID(item)
		if !ok {
			stats.Invalid++
			continue
		}
		if _, ok := members[id]; !ok {
			stats.Invalid++
			continue
		}
		if _, dup := seen[id]; dup {
			stats.Duplicate++
			continue
		}
		seen[id] = struct{}{}
		accepted = append(accepted, Suggestion{ClothingItemID: id})
	}

	if len(accepted) > llm.MaxRecommendations {
		stats.Truncated = len(accepted) - llm.MaxRecommendations
		accepted = accepted[:llm.MaxRecommendations]
	}
	stats.Accepted = len(accepted)

	if len(accepted) < llm.MinRecommendations {
		return failed(FailureInsufficientResults, insufficientResultsReason(len(raw), stats)), stats
	}

	reason := rawReason
	if reason == "" {
		reason = reasonFallback
	}
	return RecommendationResult{Recommendations: accepted, Reason: reason}, stats
}

func suggestionID(item RawSuggestion) (string, bool) {
	if item == nil {
		return "", false
	}
	id, ok := item["clothingItemId"].(string)
	if !ok || strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}
