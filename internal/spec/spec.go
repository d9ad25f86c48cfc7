package spec

// Kind tags a section with one of the component archetypes the expander
// knows how to render.
type Kind string

const (
	KindHeader       Kind = "Header"
	KindFooter       Kind = "Footer"
	KindHero         Kind = "Hero"
	KindFeatureGrid  Kind = "FeatureGrid"
	KindProductGrid  Kind = "ProductGrid"
	KindTestimonials Kind = "Testimonials"
	KindPricing      Kind = "Pricing"
	KindFAQ          Kind = "FAQ"
	KindRichText     Kind = "RichText"
	KindContactForm  Kind = "ContactForm"
	KindCTA          Kind = "CTA"
)

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool {
	switch k {
	case KindHeader, KindFooter, KindHero, KindFeatureGrid, KindProductGrid,
		KindTestimonials, KindPricing, KindFAQ, KindRichText, KindContactForm, KindCTA:
		return true
	}
	return false
}

// kindAliases remaps near-miss kinds the model likes to invent before the
// RichText fallback applies.
var kindAliases = map[Kind]Kind{
	"ProjectGrid":      KindProductGrid,
	"FeaturedProjects": KindProductGrid,
}

// Section is one visual block on a page. Props is an open bag of
// presentation hints; unknown keys are carried through untouched.
type Section struct {
	ID    string         `json:"id"`
	Kind  Kind           `json:"type"`
	Props map[string]any `json:"props"`
}

// SEO holds per-page head metadata.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Page is one routed page. Section order is render order, top to bottom.
type Page struct {
	Route    string    `json:"route"`
	SEO      *SEO      `json:"seo,omitempty"`
	Sections []Section `json:"sections"`
}

// Colors maps the semantic color roles used by every generated component.
type Colors struct {
	Primary    string `json:"primary"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Font pairs a heading family with a body family.
type Font struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// DesignTokens are the shared visual parameters of a generated site.
// After normalization every field is populated.
type DesignTokens struct {
	Colors       Colors `json:"colors"`
	Font         Font   `json:"font"`
	Radius       string `json:"radius"`
	SpacingScale string `json:"spacingScale"`
	TypeScale    string `json:"typeScale"`
}

// Project carries display metadata. Stack is informational only.
type Project struct {
	Name  string `json:"name"`
	Stack string `json:"stack"`
}

// Spec is the validated, normalized description of a site.
type Spec struct {
	Project      Project      `json:"project"`
	DesignTokens DesignTokens `json:"designTokens"`
	Pages        []Page       `json:"pages"`
}

// MandatoryRoutes is the minimum route set present in every normalized spec.
var MandatoryRoutes = []string{"/", "/about", "/services", "/contact"}

// DefaultTokens returns the token values used wherever the input supplies none.
func DefaultTokens() DesignTokens {
	return DesignTokens{
		Colors: Colors{
			Primary:    "#C62828",
			Background: "#ffffff",
			Foreground: "#111111",
		},
		Font: Font{
			Heading: "Inter",
			Body:    "Inter",
		},
		Radius:       "12px",
		SpacingScale: "tight",
		TypeScale:    "md",
	}
}

// DefaultProject returns the project metadata used when the input has none.
func DefaultProject() Project {
	return Project{Name: "Generated Site", Stack: "react-vite"}
}
