package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith/internal/spec"
)

// stubGenerator returns a canned response or error and counts calls.
type stubGenerator struct {
	out   string
	err   error
	calls int
}

func (s *stubGenerator) GenerateText(ctx context.Context, instructions, prompt string, wantJSON bool) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestBuildSpecParsesFencedJSON(t *testing.T) {
	gen := &stubGenerator{out: "```json\n{\"project\":{\"name\":\"Glow Bakery\"},\"pages\":[{\"route\":\"/\",\"sections\":[{\"type\":\"Hero\"}]}]}\n```"}
	b := NewBuilder(gen)

	s := b.BuildSpec(context.Background(), "a bakery site")

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Glow Bakery", s.Project.Name)

	home := findPage(t, s, "/")
	require.Len(t, home.Sections, 3)
	assert.Equal(t, spec.KindHero, home.Sections[1].Kind)

	// normalization still guarantees the mandatory routes
	for _, route := range spec.MandatoryRoutes {
		findPage(t, s, route)
	}
}

func TestBuildSpecFallsBackOnGarbage(t *testing.T) {
	gen := &stubGenerator{out: "sorry, I cannot produce JSON today"}
	b := NewBuilder(gen)

	s := b.BuildSpec(context.Background(), "a blue bakery with pricing")

	// rule-based spec: keyword-driven tokens prove the fallback ran
	assert.Equal(t, "#1E3A8A", s.DesignTokens.Colors.Primary)
	home := findPage(t, s, "/")
	assert.Contains(t, kindsOf(home), spec.KindPricing)
}

func TestBuildSpecFallsBackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	b := NewBuilder(gen)

	s := b.BuildSpec(context.Background(), "a green studio")

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "#166534", s.DesignTokens.Colors.Primary)
	assert.NotEmpty(t, s.Pages)
}

func TestBuildSpecWithoutGenerator(t *testing.T) {
	b := NewBuilder(nil)

	s := b.BuildSpec(context.Background(), "a purple shop")

	assert.Equal(t, "#6D28D9", s.DesignTokens.Colors.Primary)
	for _, route := range spec.MandatoryRoutes {
		findPage(t, s, route)
	}
	for _, p := range s.Pages {
		require.NotEmpty(t, p.Sections)
		assert.Equal(t, spec.KindHeader, p.Sections[0].Kind)
		assert.Equal(t, spec.KindFooter, p.Sections[len(p.Sections)-1].Kind)
	}
}
