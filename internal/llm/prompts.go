package llm

import (
	_ "embed"
	"fmt"
	"strings"
)

// DefaultPromptVersion is used when the caller does not pick one.
const DefaultPromptVersion = "outfit_v1"

const noPreference = "none given, pick a versatile everyday look"

var (
	//go:embed prompts/outfit_v1.txt
	promptOutfitV1 string
)

// PromptTemplate returns the prompt template text and whether the version was recognized.
func PromptTemplate(version string) (string, bool) {
	switch version {
	case "outfit_v1":
		return promptOutfitV1, true
	default:
		return promptOutfitV1, false
	}
}

// RenderPrompt fills the template for input. Unknown versions fall back to the default.
func RenderPrompt(input OutfitInput) (string, string) {
	version := strings.TrimSpace(input.PromptVersion)
	if version == "" {
		version = DefaultPromptVersion
	}
	template, ok := PromptTemplate(version)
	if !ok {
		version = DefaultPromptVersion
	}

	style := strings.TrimSpace(input.StylePreference)
	if style == "" {
		style = noPreference
	}

	replacer := strings.NewReplacer(
		"{{STYLE_PREFERENCE}}", style,
		"{{CANDIDATES}}", formatCandidates(input.Candidates),
	)
	return version, replacer.Replace(template)
}

func formatCandidates(items []CandidateItem) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- clothingItemId: %s", item.ID)
		if item.Name != "" {
			fmt.Fprintf(&b, " | name: %s", item.Name)
		}
		if item.Category != "" {
			fmt.Fprintf(&b, " | category: %s", item.Category)
		}
		if item.Color != "" {
			fmt.Fprintf(&b, " | color: %s", item.Color)
		}
		if item.Description != "" {
			fmt.Fprintf(&b, " | %s", item.Description)
		}
	}
	return b.String()
}
