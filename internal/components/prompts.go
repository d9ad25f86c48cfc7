package components

import (
	"encoding/json"
	"fmt"

	"sitesmith/internal/spec"
)

const componentInstructions = "You are an expert React and Tailwind CSS developer. You write clean, production-ready components and respond with code only."

// specificRequirements refines the component prompt per section kind.
// Header and Footer have no entry; they are generated from the base prompt alone.
var specificRequirements = map[spec.Kind]string{
	spec.KindHero: `- Large hero section with background
- Main headline and subheadline
- Call-to-action button
- Optional hero image or graphic
- Full viewport height
- Centered content`,
	spec.KindFeatureGrid: `- Grid of 3-4 feature cards
- Each card has icon, title, description
- Responsive grid (1 col mobile, 2-3 cols desktop)
- Clean card design with hover effects
- Use placeholder icons (emoji or simple shapes)`,
	spec.KindProductGrid: `- Grid of 6-9 product/project cards
- Each card has image, title, description, price/link
- Responsive grid layout
- Hover effects and transitions
- Professional card styling`,
	spec.KindTestimonials: `- 3 testimonial cards in a row
- Each with quote, author name, author title/company
- Star ratings
- Clean card design
- Responsive layout`,
	spec.KindPricing: `- 2-3 pricing tiers side by side
- Each tier with title, price, features list, CTA button
- Highlight popular/recommended plan
- Responsive stacking on mobile`,
	spec.KindFAQ: `- 6-8 frequently asked questions
- Expandable/collapsible design
- Clean typography
- Proper spacing between items
- Use details/summary or button toggle`,
	spec.KindRichText: `- Well-formatted content section
- Mix of headings, paragraphs, lists
- Professional typography
- Good reading experience
- Proper spacing and hierarchy`,
	spec.KindContactForm: `- Form with name, email, message fields
- Professional styling
- Submit button
- Form validation styling
- Responsive design`,
	spec.KindCTA: `- Call-to-action section
- Compelling headline
- Brief description
- Primary action button
- Eye-catching design
- Centered layout`,
}

// componentPrompt builds the full generation prompt for one section kind.
func componentPrompt(kind spec.Kind, tokens spec.DesignTokens) string {
	tokenJSON, _ := json.MarshalIndent(tokens, "", "  ")
	prompt := fmt.Sprintf(`Create a modern, professional React component for a %[1]s section.
Use ONLY Tailwind CSS classes for styling.
Use these design tokens: %[2]s

Requirements:
- Component name: %[1]s
- Export as default
- Fully responsive design
- Modern UI/UX patterns
- Use design token colors: primary, background, foreground
- Use design token fonts: heading, body
- Professional spacing and layout
- Return ONLY the JSX component code, no explanations or markdown
`, kind, tokenJSON)

	if extra, ok := specificRequirements[kind]; ok {
		prompt += extra + "\n"
	}
	return prompt
}

// simpleComponentPrompt is the stripped-down retry prompt used after the
// detailed prompt fails.
func simpleComponentPrompt(kind spec.Kind) string {
	return fmt.Sprintf(`Create a React component named %[1]s.
Use Tailwind CSS classes for styling and export it as default.
Return ONLY the JSX component code.
`, kind)
}
