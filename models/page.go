// Package models provides the canonical page content model consumed by layout renderers
package models

// PageContent is the fully-normalized representation of one generated page.
// Every field is safe to interpolate into markup: collections are never nil,
// images and descriptions are positionally aligned, and the theme color is a
// validated token. A PageContent is built fresh for each render call and never
// mutated afterwards.
type PageContent struct {
	Title             string   `json:"title"`
	Tagline           string   `json:"tagline"`
	Description       string   `json:"description,omitempty"`
	ThemeColor        string   `json:"themeColor"`
	EventDate         string   `json:"eventDate,omitempty"`
	Images            []string `json:"images"`
	ImageDescriptions []string `json:"imageDescriptions"`
	ContactFields     []string `json:"contactFields"`
	Sections          Sections `json:"sections"`
}

// Sections holds the normalized per-section content for a page. Each section is
// independently optional in the raw input; after normalization every section a
// layout displays is guaranteed non-empty (defaults fill in when input is absent).
type Sections struct {
	About        string         `json:"about"`
	CallToAction string         `json:"callToAction"`
	Features     []string       `json:"features"`
	Services     []Service      `json:"services"`
	Testimonials []Testimonial  `json:"testimonials"`
	FAQ          []FAQItem      `json:"faq"`
	Skills       []SkillGroup   `json:"skills"`
	Schedule     []ScheduleItem `json:"schedule"`
	Metrics      []Metric       `json:"metrics"`
	Partners     []Partner      `json:"partners"`
	Passes       []Pass         `json:"passes"`
	Visibility   Visibility     `json:"visibility"`
}

// Service is one offered service card
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Testimonial is one customer quote. Rating is always within [1,5].
type Testimonial struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

// FAQItem is one question/answer pair
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SkillGroup is a named group of skill items for portfolio layouts
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// ScheduleItem is one agenda entry for event layouts
type ScheduleItem struct {
	Time    string `json:"time"`
	Title   string `json:"title"`
	Speaker string `json:"speaker,omitempty"`
}

// Metric is one headline stat for event layouts (e.g. "Attendees" / "5000+")
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Partner is one sponsor/partner entry for event layouts
type Partner struct {
	Name string `json:"name"`
	Tier string `json:"tier,omitempty"`
}

// Pass is one ticket tier for event layouts
type Pass struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Perks    []string `json:"perks"`
	Featured bool     `json:"featured"`
}

// Visibility carries per-section show/hide flags. Flags default to true; when
// editing stored content each flag is preserved unless an explicit boolean
// override arrives with the edit.
type Visibility struct {
	Features     bool `json:"features"`
	Services     bool `json:"services"`
	Testimonials bool `json:"testimonials"`
	FAQ          bool `json:"faq"`
}

// AllVisible returns the default visibility state with every section shown
func AllVisible() Visibility {
	return Visibility{Features: true, Services: true, Testimonials: true, FAQ: true}
}
