package pipeline

import (
	"strings"

	"sitesmith/internal/spec"
)

// NaiveSpec derives a minimal spec document from keyword matching on the
// raw prompt, with no external call. The result is pre-normalization input:
// section ids, the Header/Footer sandwich and the mandatory page set are
// still the Normalizer's job.
func NaiveSpec(prompt string) map[string]any {
	p := strings.ToLower(prompt)

	wantsProducts := containsAny(p, "product", "store", "catalog", "shop")
	wantsTestimonials := strings.Contains(p, "testimonial")
	wantsFAQ := strings.Contains(p, "faq")
	wantsContact := containsAny(p, "contact", "reach us")
	wantsPricing := containsAny(p, "pricing", "plans")
	wantsAbout := containsAny(p, "about", "company", "who we are")

	ctaHref := "#"
	if wantsContact {
		ctaHref = "/contact"
	}
	homeSections := []any{
		section(spec.KindHero, map[string]any{
			"headline": "Built from your prompt",
			"sub":      "Generated in seconds with consistent styling.",
			"cta":      map[string]any{"label": "Get Started", "href": ctaHref},
		}),
	}
	if wantsProducts {
		homeSections = append(homeSections, section(spec.KindProductGrid, map[string]any{"count": 8}))
	}
	homeSections = append(homeSections, section(spec.KindFeatureGrid, map[string]any{
		"items": []any{"Fast", "Consistent", "Mobile-first"},
	}))
	if wantsPricing {
		homeSections = append(homeSections, section(spec.KindPricing, map[string]any{
			"plans": []any{"Starter", "Pro", "Team"},
		}))
	}
	if wantsTestimonials {
		homeSections = append(homeSections, section(spec.KindTestimonials, map[string]any{}))
	}
	if wantsFAQ {
		homeSections = append(homeSections, section(spec.KindFAQ, map[string]any{}))
	}

	pages := []any{
		map[string]any{
			"route":    "/",
			"seo":      map[string]any{"title": "Home", "description": "Landing"},
			"sections": homeSections,
		},
	}

	if wantsAbout {
		pages = append(pages, map[string]any{
			"route": "/about",
			"sections": []any{
				section(spec.KindRichText, map[string]any{"html": "<p>About us…</p>"}),
			},
		})
	}
	// contact is also synthesized when neither about nor contact was asked for
	if wantsContact || !wantsAbout {
		pages = append(pages, map[string]any{
			"route": "/contact",
			"sections": []any{
				section(spec.KindContactForm, map[string]any{}),
			},
		})
	}

	return map[string]any{
		"designTokens": map[string]any{
			"colors":       map[string]any{"primary": pickColor(p)},
			"font":         pickFont(p),
			"spacingScale": pickSpacing(p),
			"typeScale":    pickTypeScale(p),
		},
		"pages": pages,
	}
}

func section(kind spec.Kind, props map[string]any) map[string]any {
	return map[string]any{"type": string(kind), "props": props}
}

func pickColor(p string) string {
	switch {
	case strings.Contains(p, "blue"):
		return "#1E3A8A"
	case strings.Contains(p, "green"):
		return "#166534"
	case strings.Contains(p, "purple"):
		return "#6D28D9"
	case strings.Contains(p, "black"), strings.Contains(p, "dark"):
		return "#111111"
	case strings.Contains(p, "red"), strings.Contains(p, "maroon"):
		return "#C62828"
	}
	return "#0F766E" // teal default
}

func pickFont(p string) map[string]any {
	switch {
	case strings.Contains(p, "serif"):
		return map[string]any{"heading": "Merriweather", "body": "Merriweather"}
	case strings.Contains(p, "mono"):
		return map[string]any{"heading": "JetBrains Mono", "body": "JetBrains Mono"}
	}
	return map[string]any{"heading": "Inter", "body": "Inter"}
}

func pickSpacing(p string) string {
	switch {
	case containsAny(p, "compact", "tight"):
		return "tight"
	case containsAny(p, "spacious", "airy", "roomy"):
		return "roomy"
	}
	return "normal"
}

func pickTypeScale(p string) string {
	if containsAny(p, "big typography", "bold headings") {
		return "lg"
	}
	return "md"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
