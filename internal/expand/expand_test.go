package expand

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith/internal/spec"
)

// stubRenderer returns a fixed body and counts calls per kind.
type stubRenderer struct {
	body  string
	calls map[spec.Kind]int
}

func (r *stubRenderer) Render(ctx context.Context, kind spec.Kind, tokens spec.DesignTokens) string {
	if r.calls == nil {
		r.calls = map[spec.Kind]int{}
	}
	r.calls[kind]++
	return r.body
}

func section(kind spec.Kind) spec.Section {
	return spec.Section{ID: "s-" + string(kind), Kind: kind, Props: map[string]any{}}
}

func testSpec(pages ...spec.Page) spec.Spec {
	return spec.Spec{
		Project:      spec.DefaultProject(),
		DesignTokens: spec.DefaultTokens(),
		Pages:        pages,
	}
}

func TestExpandNamespacesComponentsPerPage(t *testing.T) {
	s := testSpec(
		spec.Page{Route: "/", Sections: []spec.Section{section(spec.KindHero)}},
		spec.Page{Route: "/about", Sections: []spec.Section{section(spec.KindHero)}},
	)

	files := Expand(context.Background(), s, &stubRenderer{body: "export default function X() {}"})

	for _, name := range []string{"Header", "Footer", "Hero", "AboutHeader", "AboutFooter", "AboutHero"} {
		assert.Contains(t, files, "src/components/"+name+".jsx")
	}

	home := files["src/pages/HomePage.jsx"]
	about := files["src/pages/AboutPage.jsx"]
	assert.Contains(t, home, "import Hero from '../components/Hero';")
	assert.Contains(t, about, "import AboutHero from '../components/AboutHero';")
	assert.NotContains(t, about, "'../components/Hero'")
}

func TestExpandAddsMandatoryPages(t *testing.T) {
	s := testSpec(spec.Page{Route: "/", Sections: []spec.Section{section(spec.KindHero)}})

	files := Expand(context.Background(), s, &stubRenderer{body: "x"})

	for _, name := range []string{"Home", "About", "Services", "Contact"} {
		assert.Contains(t, files, "src/pages/"+name+"Page.jsx")
	}

	app := files["src/App.jsx"]
	for _, route := range spec.MandatoryRoutes {
		assert.Contains(t, app, `path="`+route+`"`)
	}
}

func TestExpandDoesNotDuplicateMandatoryPages(t *testing.T) {
	s := testSpec(
		spec.Page{Route: "/"},
		spec.Page{Route: "/about"},
		spec.Page{Route: "/services"},
		spec.Page{Route: "/contact"},
	)

	files := Expand(context.Background(), s, &stubRenderer{body: "x"})

	var pageFiles int
	for path := range files {
		if strings.HasPrefix(path, "src/pages/") {
			pageFiles++
		}
	}
	assert.Equal(t, 4, pageFiles)
	assert.Equal(t, 4, strings.Count(files["src/App.jsx"], "<Route path="))
}

func TestExpandPlaceholderWhenRendererReturnsNothing(t *testing.T) {
	s := testSpec(spec.Page{Route: "/", Sections: []spec.Section{section(spec.KindPricing)}})

	files := Expand(context.Background(), s, &stubRenderer{body: "   "})

	for path, body := range files {
		if strings.HasPrefix(path, "src/components/") {
			require.NotEmpty(t, strings.TrimSpace(body), "empty body for %s", path)
			assert.Contains(t, body, "export default function", "body for %s", path)
		}
	}
	assert.Contains(t, files["src/components/Pricing.jsx"], "Pricing Section")
}

func TestExpandSandwichOrderInPageSource(t *testing.T) {
	s := testSpec(spec.Page{Route: "/", Sections: []spec.Section{
		section(spec.KindFooter),
		section(spec.KindHero),
		section(spec.KindFeatureGrid),
		section(spec.KindHeader),
	}})

	files := Expand(context.Background(), s, &stubRenderer{body: "x"})
	home := files["src/pages/HomePage.jsx"]

	header := strings.Index(home, "<Header />")
	hero := strings.Index(home, "<Hero />")
	grid := strings.Index(home, "<FeatureGrid />")
	footer := strings.Index(home, "<Footer />")

	require.True(t, header >= 0 && hero >= 0 && grid >= 0 && footer >= 0)
	assert.Less(t, header, hero)
	assert.Less(t, hero, grid)
	assert.Less(t, grid, footer)
}

func TestExpandDedupesComponentGeneration(t *testing.T) {
	r := &stubRenderer{body: "x"}
	s := testSpec(
		spec.Page{Route: "/", Sections: []spec.Section{
			section(spec.KindHero),
			section(spec.KindHero),
		}},
		spec.Page{Route: "/about"},
		spec.Page{Route: "/services"},
		spec.Page{Route: "/contact"},
	)

	files := Expand(context.Background(), s, r)

	home := files["src/pages/HomePage.jsx"]
	assert.Equal(t, 1, strings.Count(home, "import Hero from"))
	assert.Equal(t, 2, strings.Count(home, "<Hero />"))
	assert.Equal(t, 1, r.calls[spec.KindHero])
}

func TestExpandRootArtifacts(t *testing.T) {
	s := testSpec()
	s.Project.Name = "Glow Bakery"
	s.DesignTokens.Colors.Primary = "#C62828"

	files := Expand(context.Background(), s, &stubRenderer{body: "x"})

	assert.Contains(t, files["package.json"], `"name": "glow-bakery"`)
	assert.Contains(t, files["package.json"], `"react-router-dom": "^6.8.0"`)
	assert.Contains(t, files["vite.config.js"], "@vitejs/plugin-react")
	assert.Contains(t, files["tailwind.config.js"], "primary: '#C62828'")
	assert.Contains(t, files["tailwind.config.js"], "DEFAULT: '12px'")
	assert.Contains(t, files["postcss.config.js"], "tailwindcss")
	assert.Contains(t, files["index.html"], "<title>Glow Bakery</title>")
	assert.Contains(t, files["README.md"], "# Glow Bakery")
	assert.Contains(t, files["src/main.jsx"], "ReactDOM.createRoot")
	assert.Contains(t, files["src/index.css"], "@tailwind base;")
	assert.Contains(t, files["src/App.jsx"], "BrowserRouter as Router")
}

func TestExpandUsesRendererBodies(t *testing.T) {
	body := "export default function Custom() { return <div>custom</div>; }"
	s := testSpec(spec.Page{Route: "/", Sections: []spec.Section{section(spec.KindCTA)}})

	files := Expand(context.Background(), s, &stubRenderer{body: body})

	assert.Equal(t, body, files["src/components/CTA.jsx"])
}

func TestExpandDoesNotMutateInput(t *testing.T) {
	pages := []spec.Page{{Route: "/", Sections: []spec.Section{section(spec.KindHero)}}}
	s := testSpec(pages...)

	Expand(context.Background(), s, &stubRenderer{body: "x"})

	require.Len(t, s.Pages, 1)
	require.Len(t, s.Pages[0].Sections, 1)
	assert.Equal(t, spec.KindHero, s.Pages[0].Sections[0].Kind)
}

func TestComponentName(t *testing.T) {
	assert.Equal(t, "Hero", componentName("Home", spec.KindHero))
	assert.Equal(t, "Header", componentName("Home", spec.KindHeader))
	assert.Equal(t, "AboutHeader", componentName("About", spec.KindHeader))
	assert.Equal(t, "ServicesHeader", componentName("Services", spec.KindHeader))
	assert.Equal(t, "AboutUsTeamHero", componentName("AboutUsTeam", spec.KindHero))
}
