package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"boutique-backend/internal/llm"
	"boutique-backend/internal/shared/telemetry"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 60 * time.Second
	systemPrompt   = "You are a fashion stylist for an online boutique. Respond with JSON only."
)

// baseURL overrides the Gemini API endpoint when set.
var baseURL string

// Client implements llm.OutfitClient on the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a Gemini client. An empty model falls back to gemini-2.5-flash.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Client{client: client, model: model, timeout: timeout}, nil
}

// GenerateOutfit issues a single schema-constrained generation call.
func (c *Client) GenerateOutfit(ctx context.Context, input llm.OutfitInput) (json.RawMessage, error) {
	version, prompt := llm.RenderPrompt(input)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, generateConfig())
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	fields := map[string]any{
		"provider":       "gemini",
		"model":          c.model,
		"prompt_version": version,
	}
	if resp.UsageMetadata != nil {
		fields["prompt_tokens"] = resp.UsageMetadata.PromptTokenCount
		fields["completion_tokens"] = resp.UsageMetadata.CandidatesTokenCount
		fields["total_tokens"] = resp.UsageMetadata.TotalTokenCount
	}
	telemetry.Info("llm.response", fields)

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini response empty content")
	}
	return json.RawMessage(text), nil
}

func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    outfitSchema(),
	}
}

func outfitSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {
				Type:     genai.TypeArray,
				MinItems: genai.Ptr[int64](llm.MinRecommendations),
				MaxItems: genai.Ptr[int64](llm.MaxRecommendations),
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"clothingItemId": {Type: genai.TypeString},
					},
					Required: []string{"clothingItemId"},
				},
			},
			"reason": {Type: genai.TypeString},
		},
		Required:         []string{"recommendations"},
		PropertyOrdering: []string{"recommendations", "reason"},
	}
}

var _ llm.OutfitClient = (*Client)(nil)
