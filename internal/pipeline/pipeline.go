package pipeline

import (
	"context"
	"encoding/json"
	"log"

	"sitesmith/internal/llm"
	"sitesmith/internal/spec"
)

// Builder turns a raw user prompt into a normalized site Spec.
type Builder struct {
	gen llm.TextGenerator // nil when no provider credential is configured
}

func NewBuilder(gen llm.TextGenerator) *Builder {
	return &Builder{gen: gen}
}

// BuildSpec always returns a usable Spec for a non-empty prompt. Model
// output that fails to arrive, parse, or validate falls back to the
// rule-based synthesizer; a parse error never reaches the caller.
func (b *Builder) BuildSpec(ctx context.Context, prompt string) spec.Spec {
	if b.gen == nil {
		log.Println("No text generator configured, building rule-based spec")
		return spec.Normalize(NaiveSpec(prompt))
	}

	out, err := b.gen.GenerateText(ctx, specInstructions, prompt, true)
	if err != nil {
		log.Printf("Spec generation failed, falling back to rule-based spec: %v", err)
		return spec.Normalize(NaiveSpec(prompt))
	}

	cleaned := llm.StripFences(out)
	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		log.Printf("Failed to parse spec JSON, falling back to rule-based spec: %v", err)
		return spec.Normalize(NaiveSpec(prompt))
	}
	return spec.Normalize(raw)
}
