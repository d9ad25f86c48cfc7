package spec

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize repairs a loosely structured document, as decoded from model
// output, into a valid Spec. It is total over map-shaped input: missing
// fields are defaulted, unknown section kinds are coerced, routes are
// repaired, and the mandatory page set and the Header/Footer sandwich are
// enforced on every page.
func Normalize(raw map[string]any) Spec {
	s := Spec{
		Project:      normalizeProject(raw["project"]),
		DesignTokens: normalizeTokens(raw["designTokens"]),
	}

	if pages, ok := raw["pages"].([]any); ok {
		for _, p := range pages {
			if m, ok := p.(map[string]any); ok {
				s.Pages = append(s.Pages, normalizePage(m))
			}
		}
	}

	s.Pages = EnsureMandatoryPages(s.Pages)
	for i := range s.Pages {
		s.Pages[i].Sections = EnsureHeaderFooter(s.Pages[i].Sections)
	}
	return s
}

// EnsureMandatoryPages appends a synthesized page for every mandatory route
// missing from the list. Existing pages are never duplicated.
func EnsureMandatoryPages(pages []Page) []Page {
	have := make(map[string]bool, len(pages))
	for _, p := range pages {
		have[p.Route] = true
	}
	out := pages
	for _, route := range MandatoryRoutes {
		if !have[route] {
			out = append(out, SynthesizePage(route))
		}
	}
	return out
}

// EnsureHeaderFooter rebuilds the section list so that exactly one Header
// comes first and exactly one Footer comes last. Existing Header/Footer
// sections are reused, never duplicated; extras beyond the first of each
// are dropped.
func EnsureHeaderFooter(sections []Section) []Section {
	var header, footer *Section
	middle := make([]Section, 0, len(sections))
	for i := range sections {
		s := sections[i]
		switch {
		case s.Kind == KindHeader && header == nil:
			header = &s
		case s.Kind == KindFooter && footer == nil:
			footer = &s
		case s.Kind == KindHeader || s.Kind == KindFooter:
			// duplicate header/footer, dropped
		default:
			middle = append(middle, s)
		}
	}
	if header == nil {
		header = &Section{ID: uuid.New().String(), Kind: KindHeader, Props: map[string]any{}}
	}
	if footer == nil {
		footer = &Section{ID: uuid.New().String(), Kind: KindFooter, Props: map[string]any{}}
	}

	out := make([]Section, 0, len(middle)+2)
	out = append(out, *header)
	out = append(out, middle...)
	out = append(out, *footer)
	return out
}

// SynthesizePage builds the minimal single-Hero page used for any mandatory
// route the input did not supply.
func SynthesizePage(route string) Page {
	name := PageName(route)
	return Page{
		Route: route,
		SEO:   &SEO{Title: name, Description: name + " page"},
		Sections: []Section{{
			ID:    uuid.New().String(),
			Kind:  KindHero,
			Props: synthesizedHeroProps(route),
		}},
	}
}

func synthesizedHeroProps(route string) map[string]any {
	switch route {
	case "/":
		return map[string]any{"title": "Welcome"}
	case "/about":
		return map[string]any{"title": "About Us", "subtitle": "Learn more"}
	case "/services":
		return map[string]any{"title": "Our Services"}
	case "/contact":
		return map[string]any{"title": "Contact"}
	}
	return map[string]any{"title": PageName(route)}
}

func normalizeProject(v any) Project {
	p := DefaultProject()
	m, ok := v.(map[string]any)
	if !ok {
		return p
	}
	if name := stringField(m, "name"); name != "" {
		p.Name = name
	}
	if stack := stringField(m, "stack"); stack != "" {
		p.Stack = stack
	}
	return p
}

func normalizeTokens(v any) DesignTokens {
	t := DefaultTokens()
	m, ok := v.(map[string]any)
	if !ok {
		return t
	}
	if colors, ok := m["colors"].(map[string]any); ok {
		if c := stringField(colors, "primary"); c != "" {
			t.Colors.Primary = c
		}
		if c := stringField(colors, "background"); c != "" {
			t.Colors.Background = c
		}
		if c := stringField(colors, "foreground"); c != "" {
			t.Colors.Foreground = c
		}
	}
	if font, ok := m["font"].(map[string]any); ok {
		if f := stringField(font, "heading"); f != "" {
			t.Font.Heading = f
		}
		if f := stringField(font, "body"); f != "" {
			t.Font.Body = f
		}
	}
	if r := stringField(m, "radius"); r != "" {
		t.Radius = r
	}
	if sc := stringField(m, "spacingScale"); sc != "" {
		t.SpacingScale = sc
	}
	if ts := stringField(m, "typeScale"); ts != "" {
		t.TypeScale = ts
	}
	return t
}

func normalizePage(m map[string]any) Page {
	name := stringField(m, "name")
	route := cleanRoute(stringField(m, "route"))
	if route == "" {
		route = routeFromName(name)
	}

	p := Page{Route: route}
	if seo, ok := m["seo"].(map[string]any); ok {
		p.SEO = &SEO{
			Title:       stringField(seo, "title"),
			Description: stringField(seo, "description"),
		}
	} else if name != "" {
		p.SEO = &SEO{Title: name, Description: name + " page"}
	}

	if sections, ok := m["sections"].([]any); ok {
		for _, s := range sections {
			if sec, ok := normalizeSection(s); ok {
				p.Sections = append(p.Sections, sec)
			}
		}
	}
	return p
}

func normalizeSection(v any) (Section, bool) {
	switch s := v.(type) {
	case string:
		return Section{
			ID:    uuid.New().String(),
			Kind:  coerceKind(s),
			Props: map[string]any{},
		}, true
	case map[string]any:
		sec := Section{
			ID:   stringField(s, "id"),
			Kind: coerceKind(stringField(s, "type")),
		}
		if sec.ID == "" {
			sec.ID = uuid.New().String()
		}
		if props, ok := s["props"].(map[string]any); ok {
			sec.Props = props
		} else {
			sec.Props = map[string]any{}
		}
		return sec, true
	}
	return Section{}, false
}

// coerceKind maps a raw kind string into the closed set, applying the alias
// table before falling back to RichText. RichText is the fallback because it
// has no required prop structure.
func coerceKind(raw string) Kind {
	k := Kind(strings.TrimSpace(raw))
	if k.Valid() {
		return k
	}
	if alias, ok := kindAliases[k]; ok {
		return alias
	}
	return KindRichText
}

// routeFromName turns a human readable page name into a route:
// "Home" -> "/", "Our Work" -> "/our-work". An empty name means the root.
func routeFromName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "home" {
		return "/"
	}
	return "/" + strings.ReplaceAll(n, " ", "-")
}

// cleanRoute repairs an explicit route value: a leading slash is required
// and trailing slashes are dropped except on the root.
func cleanRoute(route string) string {
	if route == "" {
		return ""
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if route != "/" {
		route = strings.TrimRight(route, "/")
	}
	if route == "" {
		return "/"
	}
	return route
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
