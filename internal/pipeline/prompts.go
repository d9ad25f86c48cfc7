package pipeline

// specInstructions is the fixed system contract sent with every spec
// generation request. The model is told to answer with bare JSON; fences are
// stripped anyway before parsing because models do not always comply.
const specInstructions = "You are a strict JSON generator for a website scaffold. " +
	"Given a short English prompt, output a Spec JSON with this structure: " +
	"{ project, designTokens, pages[] }. " +
	"Design tokens must include colors {primary, background, foreground}, " +
	"font {heading, body}, radius, spacingScale (tight|normal|roomy), typeScale (sm|md|lg). " +
	"Infer a website archetype (Generic/Company, E-commerce, SaaS, Portfolio, Restaurant, Clinic, Blog). " +
	"Then produce 5-7 sensible pages for that archetype. Always include Home and Contact, usually About. " +
	"Each page must have: route (URL path like '/about'), seo: {title, description}, and sections array. " +
	"Each section must be an object with: type (Hero|FeatureGrid|ProductGrid|Testimonials|Pricing|FAQ|RichText|ContactForm|CTA), " +
	"id (UUID), and props (object). " +
	"Provide basic SEO (title, description) for each page. " +
	"Prefer mobile-first structure. Use concise defaults when information is missing. " +
	"Return ONLY valid JSON, no comments, no markdown fences."
