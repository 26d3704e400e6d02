// Package content provides the top-level page normalization entry point
package content

import (
	"github.com/AtRiskMedia/pagecraft-go/models"
)

// BuildPageContent normalizes one raw content object into the canonical model
// using the supplied family defaults. The result is always fully renderable:
// every collection a layout touches is non-nil, images and descriptions are
// aligned, the theme token is validated, and the contact form is guaranteed a
// name and email field.
func BuildPageContent(raw *models.RawPageData, defaults Defaults) *models.PageContent {
	if raw == nil {
		raw = &models.RawPageData{}
	}

	images := raw.BestImages()
	if images == nil {
		images = []string{}
	}

	contactFields := EnsureContactEssentials(
		NormalizeContactFields(raw.BestContactFields(), defaults.ContactFields),
	)

	page := &models.PageContent{
		Title:             NormalizeString(raw.BestTitle(), "Welcome"),
		Tagline:           NormalizeString(raw.Tagline, defaults.Tagline),
		Description:       NormalizeString(raw.Description, ""),
		ThemeColor:        SanitizeThemeColor(raw.BestThemeColor()),
		EventDate:         NormalizeString(raw.BestEventDate(), ""),
		Images:            images,
		ImageDescriptions: NormalizeImageDescriptions(images, raw.ImageDescriptions),
		ContactFields:     contactFields,
		Sections: models.Sections{
			About:        NormalizeString(firstNonNil(raw.Section("about"), raw.About), defaults.About),
			CallToAction: NormalizeString(firstNonNil(raw.Section("call_to_action"), raw.CallToAction), defaults.CallToAction),
			Features:     NormalizeStrings(raw.Section("features"), defaults.Features),
			Services:     NormalizeServices(raw.Section("services"), defaults.Services),
			Testimonials: NormalizeTestimonials(raw.Section("testimonials"), defaults.Testimonials),
			FAQ:          NormalizeFAQ(raw.Section("faq"), defaults.FAQ),
			Skills:       NormalizeSkills(raw.Section("skills"), defaults.Skills),
			Schedule:     NormalizeSchedule(raw.Section("schedule"), defaults.Schedule),
			Metrics:      NormalizeMetrics(raw.Section("metrics"), defaults.Metrics),
			Partners:     NormalizePartners(raw.Section("partners"), defaults.Partners),
			Passes:       NormalizePasses(raw.Section("passes"), defaults.Passes),
			Visibility:   NormalizeVisibility(raw.Section("visibility"), models.AllVisible()),
		},
	}

	// Sections a family supplies no defaults for must still be empty slices,
	// never nil, so layouts and JSON round-trips can range freely.
	ensureSections(&page.Sections)

	return page
}

func ensureSections(s *models.Sections) {
	if s.Features == nil {
		s.Features = []string{}
	}
	if s.Services == nil {
		s.Services = []models.Service{}
	}
	if s.Testimonials == nil {
		s.Testimonials = []models.Testimonial{}
	}
	if s.FAQ == nil {
		s.FAQ = []models.FAQItem{}
	}
	if s.Skills == nil {
		s.Skills = []models.SkillGroup{}
	}
	if s.Schedule == nil {
		s.Schedule = []models.ScheduleItem{}
	}
	if s.Metrics == nil {
		s.Metrics = []models.Metric{}
	}
	if s.Partners == nil {
		s.Partners = []models.Partner{}
	}
	if s.Passes == nil {
		s.Passes = []models.Pass{}
	}
}

// firstNonNil returns the first candidate that is present at all; "" and nil
// both mean absent here since scalar sections fall back by value anyway.
func firstNonNil(candidates ...any) any {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if s, ok := c.(string); ok && s == "" {
			continue
		}
		return c
	}
	return nil
}
