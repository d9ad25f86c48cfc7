package spec

import (
	"regexp"
	"strings"
)

var (
	nonAlnum    = regexp.MustCompile(`[^0-9a-zA-Z]+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
)

// PageName derives the exported component identifier for a route. The root
// route becomes "Home"; any other route is split on non-alphanumeric runs
// and each segment is title-cased, so "/about-us/team" -> "AboutUsTeam".
// This is the single naming algorithm used everywhere a page name is needed.
func PageName(route string) string {
	if route == "" || route == "/" {
		return "Home"
	}
	var b strings.Builder
	for _, seg := range nonAlnum.Split(strings.Trim(route, "/"), -1) {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		if len(seg) > 1 {
			b.WriteString(strings.ToLower(seg[1:]))
		}
	}
	if b.Len() == 0 {
		return "Home"
	}
	return b.String()
}

// Slug converts a project name into a lowercase file and URL safe form.
// Empty or fully invalid names collapse to "website".
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "website"
	}
	return s
}
