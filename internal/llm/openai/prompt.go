package openai

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"boutique-backend/internal/llm"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a fashion stylist for an online boutique. Respond with JSON only. Output must match the schema exactly."

// BuildPrompt creates the chat messages for an outfit request and returns the prompt
// version that was used.
func BuildPrompt(input llm.OutfitInput) (string, []Message) {
	version, user := llm.RenderPrompt(input)
	return version, []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user},
	}
}

// outfitSchema is the JSON schema sent as the structured-output constraint.
func outfitSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendations": map[string]any{
				"type":     "array",
				"minItems": llm.MinRecommendations,
				"maxItems": llm.MaxRecommendations,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"clothingItemId": map[string]any{"type": "string"},
					},
					"required":             []string{"clothingItemId"},
					"additionalProperties": false,
				},
			},
			"reason": map[string]any{"type": "string"},
		},
		"required":             []string{"recommendations"},
		"additionalProperties": false,
	}
}

func promptStringFromMessages(messages []Message) string {
	if len(messages) == 0 {
		return ""
	}
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}

func hashPromptString(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
