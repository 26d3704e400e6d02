// Package models provides the loose input shape accepted from upstream content sources
package models

// RawPageData is the partially-typed content object handed to the renderer by an
// upstream content generator or loaded from storage for re-rendering. Upstream
// sources are inconsistent about field names and shapes, so alternate spellings
// are decoded side by side and reconciled during normalization; section payloads
// stay as map[string]any until the per-field normalizers type them.
type RawPageData struct {
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	SiteName string `json:"site_name"`

	Description string `json:"description"`
	About       string `json:"about"`

	ThemeColor    string `json:"theme_color"`
	ThemeColorAlt string `json:"themeColor"`

	EventDate    string `json:"event_date"`
	EventDateAlt string `json:"date"`

	Images []string `json:"images"`
	Pics   []string `json:"pics"`

	ImageDescriptions []string `json:"image_descriptions"`

	ContactFields    []any `json:"contact_fields"`
	ContactFieldsAlt []any `json:"contactFields"`

	CallToAction string `json:"call_to_action"`

	Sections map[string]any `json:"sections"`
}

// BestTitle reconciles the title candidates, preferring the explicit title
func (r *RawPageData) BestTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.SiteName
}

// BestThemeColor reconciles the theme color spellings
func (r *RawPageData) BestThemeColor() string {
	if r.ThemeColor != "" {
		return r.ThemeColor
	}
	return r.ThemeColorAlt
}

// BestEventDate reconciles the event date spellings
func (r *RawPageData) BestEventDate() string {
	if r.EventDate != "" {
		return r.EventDate
	}
	return r.EventDateAlt
}

// BestImages reconciles the image list spellings
func (r *RawPageData) BestImages() []string {
	if len(r.Images) > 0 {
		return r.Images
	}
	return r.Pics
}

// BestContactFields reconciles the contact field list spellings
func (r *RawPageData) BestContactFields() []any {
	if len(r.ContactFields) > 0 {
		return r.ContactFields
	}
	return r.ContactFieldsAlt
}

// Section returns one named section payload, or nil when absent
func (r *RawPageData) Section(name string) any {
	if r.Sections == nil {
		return nil
	}
	return r.Sections[name]
}
