package llm

import (
	"context"
	"encoding/json"
	"errors"
)

const (
	// MinRecommendations and MaxRecommendations bound the recommendations array the
	// structured-output schema asks the model for.
	MinRecommendations = 2
	MaxRecommendations = 5
)

// OutfitClient abstracts LLM providers for outfit generation. Implementations return the
// model's raw JSON text; callers must treat it as untrusted.
type OutfitClient interface {
	GenerateOutfit(ctx context.Context, input OutfitInput) (json.RawMessage, error)
}

// OutfitInput captures the inputs needed to ask for an outfit.
type OutfitInput struct {
	StylePreference string
	Candidates      []CandidateItem
	PromptVersion   string
}

// CandidateItem describes one eligible clothing item. Only ID is guaranteed.
type CandidateItem struct {
	ID          string
	Name        string
	Category    string
	Color       string
	Description string
}

// CandidateIDs returns the IDs of the candidates in order.
func (in OutfitInput) CandidateIDs() []string {
	out := make([]string, 0, len(in.Candidates))
	for _, c := range in.Candidates {
		out = append(out, c.ID)
	}
	return out
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is used when no provider is configured.
type PlaceholderClient struct{}

// GenerateOutfit returns ErrNotImplemented.
func (PlaceholderClient) GenerateOutfit(ctx context.Context, input OutfitInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
