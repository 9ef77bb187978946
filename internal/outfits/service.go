package outfits

import (
	"context"
	"strings"
	"time"

	"boutique-backend/internal/catalog"
	"boutique-backend/internal/llm"
	"boutique-backend/internal/shared/metrics"
	"boutique-backend/internal/shared/telemetry"
)

// ItemDescriber looks up catalog details for item ids.
type ItemDescriber interface {
	Describe(ctx context.Context, ids []string) ([]catalog.Item, error)
}

// Service turns an outfit request into a validated recommendation result.
type Service struct {
	LLM           llm.OutfitClient
	Catalog       ItemDescriber
	PromptVersion string

	now func() time.Time
}

// NewService constructs a Service. catalog may be nil.
func NewService(client llm.OutfitClient, catalog ItemDescriber) *Service {
	return &Service{LLM: client, Catalog: catalog, PromptVersion: llm.DefaultPromptVersion}
}

// Recommend runs one generation call and validates its output. Every failure is reported
// through the result; it never returns an error.
func (s *Service) Recommend(ctx context.Context, req Request) RecommendationResult {
	metrics.IncOutfitRequests()
	candidates := normalizeCandidates(req.CandidateIDs)

	var (
		result RecommendationResult
		stats  validationStats
	)
	if len(candidates) < llm.MinRecommendations {
		result = failed(FailureInsufficientCandidates, reasonInsufficientCandidates)
	} else {
		result, stats = s.generate(ctx, req.StylePreference, candidates)
	}
	s.record(candidates, result, stats)
	return result
}

func (s *Service) generate(ctx context.Context, style string, candidates []string) (RecommendationResult, validationStats) {
	if len(candidates) < llm.MinRecommendations {
		return failed(FailureInsufficientCandidates, reasonInsufficientCandidates), validationStats{}
	}

	client := s.LLM
	if client == nil {
		client = llm.PlaceholderClient{}
	}
	input := llm.OutfitInput{
		StylePreference: strings.TrimSpace(style),
		Candidates:      s.describe(ctx, candidates),
		PromptVersion:   s.PromptVersion,
	}

	start := s.clock()
	raw, err := client.GenerateOutfit(ctx, input)
	elapsed := s.clock().Sub(start)
	metrics.ObserveGenerationDurationMs(float64(elapsed.Milliseconds()))
	if err != nil {
		telemetry.Warn("outfit.generation", map[string]any{
			"error":       err.Error(),
			"duration_ms": elapsed.Milliseconds(),
			"candidates":  len(candidates),
		})
		return failed(FailureGenerationFailed, generationFailedReason(err)), validationStats{}
	}

	gen, err := ParseGeneration(raw)
	if err != nil {
		telemetry.Warn("outfit.generation", map[string]any{
			"error":       err.Error(),
			"duration_ms": elapsed.Milliseconds(),
			"raw_bytes":   len(raw),
		})
		return failed(FailureMalformedOutput, reasonMalformedOutput), validationStats{}
	}
	return runValidation(candidates, gen.Recommendations, gen.Reason)
}

func (s *Service) describe(ctx context.Context, candidates []string) []llm.CandidateItem {
	out := make([]llm.CandidateItem, 0, len(candidates))
	known := map[string]catalog.Item{}
	if s.Catalog != nil {
		items, err := s.Catalog.Describe(ctx, candidates)
		if err != nil {
			telemetry.Warn("outfit.describe_failed", map[string]any{"error": err.Error()})
		}
		for _, item := range items {
			known[item.ID] = item
		}
	}
	for _, id := range candidates {
		item, ok := known[id]
		if !ok {
			out = append(out, llm.CandidateItem{ID: id})
			continue
		}
		out = append(out, llm.CandidateItem{
			ID:          id,
			Name:        item.Name,
			Category:    item.Category,
			Color:       item.Color,
			Description: item.Description,
		})
	}
	return out
}

func (s *Service) record(candidates []string, result RecommendationResult, stats validationStats) {
	metrics.AddDroppedSuggestions("invalid", stats.Invalid)
	metrics.AddDroppedSuggestions("duplicate", stats.Duplicate)
	metrics.AddDroppedSuggestions("truncated", stats.Truncated)

	fields := map[string]any{
		"candidates": len(candidates),
		"accepted":   stats.Accepted,
		"invalid":    stats.Invalid,
		"duplicate":  stats.Duplicate,
		"truncated":  stats.Truncated,
	}
	if result.Failure != FailureNone {
		metrics.IncOutfitFailure(string(result.Failure))
		fields["failure"] = string(result.Failure)
		telemetry.Warn("outfit.validation", fields)
		return
	}
	metrics.IncOutfitServed()
	telemetry.Info("outfit.validation", fields)
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// normalizeCandidates trims ids and drops blanks and repeats, keeping first occurrence.
func normalizeCandidates(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
