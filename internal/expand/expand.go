package expand

import (
	"context"
	"fmt"
	"strings"

	"sitesmith/internal/components"
	"sitesmith/internal/spec"
)

// BodyRenderer yields React source text for one section kind. It must not
// fail; implementations degrade to placeholders internally.
type BodyRenderer interface {
	Render(ctx context.Context, kind spec.Kind, tokens spec.DesignTokens) string
}

// Expand turns a Spec into the complete source tree of a Vite/React site,
// keyed by path relative to the project root. Mandatory routes and the
// Header/Footer sandwich are re-enforced here so the output is well formed
// even for a Spec that skipped normalization.
func Expand(ctx context.Context, s spec.Spec, renderer BodyRenderer) map[string]string {
	effective := spec.EnsureMandatoryPages(s.Pages)
	pages := make([]spec.Page, len(effective))
	copy(pages, effective)
	for i := range pages {
		pages[i].Sections = spec.EnsureHeaderFooter(pages[i].Sections)
	}

	files := make(map[string]string)
	rendered := make(map[string]bool)

	for _, page := range pages {
		pageName := spec.PageName(page.Route)
		var imports []string
		var jsx []string
		imported := make(map[string]bool)

		for _, section := range page.Sections {
			name := componentName(pageName, section.Kind)
			if !imported[name] {
				imported[name] = true
				imports = append(imports, fmt.Sprintf("import %s from '../components/%s';", name, name))
			}
			jsx = append(jsx, fmt.Sprintf("      <%s />", name))

			if rendered[name] {
				continue
			}
			rendered[name] = true

			body := renderer.Render(ctx, section.Kind, s.DesignTokens)
			if strings.TrimSpace(body) == "" {
				body = components.MinimalComponent(section.Kind)
			}
			files["src/components/"+name+".jsx"] = body
		}

		files["src/pages/"+pageName+"Page.jsx"] = pageSource(pageName, imports, jsx)
	}

	slug := spec.Slug(s.Project.Name)
	files["package.json"] = packageJSON(slug)
	files["vite.config.js"] = viteConfig
	files["tailwind.config.js"] = tailwindConfig(s.DesignTokens)
	files["postcss.config.js"] = postcssConfig
	files["index.html"] = indexHTML(s.Project.Name)
	files["README.md"] = readme(s.Project.Name)
	files["src/main.jsx"] = mainJSX
	files["src/index.css"] = indexCSS
	files["src/App.jsx"] = appJSX(pages)

	return files
}

// componentName namespaces a section's component by page. The Home page
// keeps bare kind names; every other page prefixes its own name so that two
// pages never share a component file.
func componentName(pageName string, kind spec.Kind) string {
	if pageName == "Home" {
		return string(kind)
	}
	return pageName + string(kind)
}

func pageSource(pageName string, imports, jsx []string) string {
	return fmt.Sprintf(`import React from 'react';
%s

export default function %sPage() {
  return (
    <div className="min-h-screen">
%s
    </div>
  );
}`, strings.Join(imports, "\n"), pageName, strings.Join(jsx, "\n"))
}
