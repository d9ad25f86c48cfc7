package llm

import (
	"context"
	"errors"
	"strings"
)

// TextGenerator is the minimal surface the spec pipeline and the component
// renderer need from a language model provider. Implementations are expected
// to retry transient failures at most once internally.
type TextGenerator interface {
	// GenerateText sends system instructions plus a user prompt and returns
	// the raw model text. wantJSON asks the provider for a JSON-typed
	// response where the backend supports it. instructions may be empty.
	GenerateText(ctx context.Context, instructions, prompt string, wantJSON bool) (string, error)
}

// ErrEmptyResponse is returned when the provider answers with no usable text.
var ErrEmptyResponse = errors.New("llm returned empty response")

// StripFences removes a wrapping markdown code fence from model output. The
// opening fence may carry a language tag (```json, ```jsx); the whole fence
// line is dropped either way.
func StripFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[i+1:]
	} else {
		out = strings.TrimPrefix(out, "```")
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}
