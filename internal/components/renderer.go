package components

import (
	"context"
	"encoding/json"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"

	"sitesmith/internal/llm"
	"sitesmith/internal/spec"
)

// DefaultCacheSize bounds the rendered-body cache when no size is configured.
const DefaultCacheSize = 128

// Renderer produces React source text for section kinds. Bodies from the
// text generator are cached per (kind, tokens) pair; static fallbacks are
// cheap and never cached.
type Renderer struct {
	gen   llm.TextGenerator
	cache *lru.Cache[string, string]
}

// NewRenderer returns a renderer backed by gen. A nil gen is valid and
// serves the static fallback bodies only.
func NewRenderer(gen llm.TextGenerator, cacheSize int) *Renderer {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, _ := lru.New[string, string](cacheSize)
	return &Renderer{gen: gen, cache: cache}
}

// Render returns the source body for one component kind. It never fails:
// generator errors and empty responses degrade to the static fallbacks.
func (r *Renderer) Render(ctx context.Context, kind spec.Kind, tokens spec.DesignTokens) string {
	if r.gen == nil {
		return FallbackComponent(kind)
	}

	key := cacheKey(kind, tokens)
	if body, ok := r.cache.Get(key); ok {
		return body
	}

	body, err := r.generate(ctx, kind, tokens)
	if err != nil {
		log.Printf("Component generation failed for %s, using fallback: %v", kind, err)
		return FallbackComponent(kind)
	}

	r.cache.Add(key, body)
	return body
}

// generate asks the model for a component body, retrying once with the
// simple prompt before giving up.
func (r *Renderer) generate(ctx context.Context, kind spec.Kind, tokens spec.DesignTokens) (string, error) {
	out, err := r.gen.GenerateText(ctx, componentInstructions, componentPrompt(kind, tokens), false)
	if err != nil {
		log.Printf("Retrying %s component with simple prompt: %v", kind, err)
		out, err = r.gen.GenerateText(ctx, componentInstructions, simpleComponentPrompt(kind), false)
		if err != nil {
			return "", err
		}
	}

	body := CleanUnicode(llm.StripFences(out))
	if body == "" {
		return "", llm.ErrEmptyResponse
	}
	return body, nil
}

func cacheKey(kind spec.Kind, tokens spec.DesignTokens) string {
	tokenJSON, _ := json.Marshal(tokens)
	return string(kind) + ":" + string(tokenJSON)
}
