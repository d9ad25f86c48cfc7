package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	genai "google.golang.org/genai"
)

// GeminiGenerator produces text through the Gemini API via the official
// genai client.
type GeminiGenerator struct {
	cli   *genai.Client
	model string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client init failed: %w", err)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiGenerator{cli: cli, model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, instructions, prompt string, wantJSON bool) (string, error) {
	full := prompt
	if instructions != "" {
		full = instructions + "\n\n" + prompt
	}
	contents := []*genai.Content{{Parts: []*genai.Part{{Text: full}}}}

	var cfg *genai.GenerateContentConfig
	if wantJSON {
		cfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil && ShouldRetry(err) {
		log.Printf("Gemini call failed, retrying once after delay... Error: %v", err)
		time.Sleep(1 * time.Second)
		resp, err = g.cli.Models.GenerateContent(ctx, g.model, contents, cfg)
	}
	if err != nil {
		return "", fmt.Errorf("gemini content generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
