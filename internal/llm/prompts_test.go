package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRenderPromptIncludesCandidates(t *testing.T) {
	version, prompt := RenderPrompt(OutfitInput{
		StylePreference: "beach wedding",
		Candidates: []CandidateItem{
			{ID: "dress-01", Name: "Linen Dress", Category: "dresses", Color: "white"},
			{ID: "sandal-02"},
		},
	})
	if version != DefaultPromptVersion {
		t.Fatalf("expected version %q, got %q", DefaultPromptVersion, version)
	}
	for _, want := range []string{
		"beach wedding",
		"- clothingItemId: dress-01 | name: Linen Dress | category: dresses | color: white",
		"- clothingItemId: sandal-02",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("prompt has unreplaced placeholders:\n%s", prompt)
	}
}

func TestRenderPromptUnknownVersionFallsBack(t *testing.T) {
	version, prompt := RenderPrompt(OutfitInput{PromptVersion: "v9"})
	if version != DefaultPromptVersion {
		t.Fatalf("expected fallback version, got %q", version)
	}
	if !strings.Contains(prompt, noPreference) {
		t.Fatalf("expected default style preference in prompt")
	}
}

func TestPlaceholderClient(t *testing.T) {
	_, err := PlaceholderClient{}.GenerateOutfit(context.Background(), OutfitInput{})
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}
