// Package content provides the structured section normalizers
package content

import (
	"math"

	"github.com/AtRiskMedia/pagecraft-go/models"
)

// clampRating rounds then clamps a rating into the inclusive range [1,5].
// An absent rating defaults to 5.
func clampRating(v float64, present bool) int {
	if !present {
		return 5
	}
	r := int(math.Round(v))
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

// NormalizeServices normalizes the services section. Entries need a non-empty
// title and description to survive; anything else is dropped and the
// whole-field fallback rule applies.
func NormalizeServices(raw any, fallback []models.Service) []models.Service {
	if typed, ok := raw.([]models.Service); ok {
		return filterServices(typed, fallback)
	}
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]models.Service, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		svc := models.Service{
			Title:       stringAt(m, "title", "name", "service"),
			Description: stringAt(m, "description", "summary", "text", "details"),
			Icon:        stringAt(m, "icon", "emoji"),
		}
		if svc.Title != "" && svc.Description != "" {
			out = append(out, svc)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func filterServices(services []models.Service, fallback []models.Service) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if svc.Title != "" && svc.Description != "" {
			out = append(out, svc)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// NormalizeTestimonials normalizes the testimonials section. Entries need a
// non-empty name and quote; ratings are round-then-clamped into [1,5] with 5
// as the absent default.
func NormalizeTestimonials(raw any, fallback []models.Testimonial) []models.Testimonial {
	if typed, ok := raw.([]models.Testimonial); ok {
		return filterTestimonials(typed, fallback)
	}
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]models.Testimonial, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rating, present := numberAt(m, "rating", "stars", "score")
		t := models.Testimonial{
			Name:   stringAt(m, "name", "author", "customer"),
			Role:   stringAt(m, "role", "title", "position", "company"),
			Quote:  stringAt(m, "quote", "text", "review", "feedback", "message"),
			Rating: clampRating(rating, present),
		}
		if t.Name != "" && t.Quote != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func filterTestimonials(testimonials []models.Testimonial, fallback []models.Testimonial) []models.Testimonial {
	out := make([]models.Testimonial, 0, len(testimonials))
	for _, t := range testimonials {
		t.Rating = clampRating(float64(t.Rating), true)
		if t.Name != "" && t.Quote != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// NormalizeFAQ normalizes the FAQ section; both question and answer are required
func NormalizeFAQ(raw any, fallback []models.FAQItem) []models.FAQItem {
	if typed, ok := raw.([]models.FAQItem); ok {
		return filterFAQ(typed, fallback)
	}
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]models.FAQItem, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entry := models.FAQItem{
			Question: stringAt(m, "question", "q", "title"),
			Answer:   stringAt(m, "answer", "a", "description", "text"),
		}
		if entry.Question != "" && entry.Answer != "" {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func filterFAQ(faq []models.FAQItem, fallback []models.FAQItem) []models.FAQItem {
	out := make([]models.FAQItem, 0, len(faq))
	for _, entry := range faq {
		if entry.Question != "" && entry.Answer != "" {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// NormalizeSkills normalizes the skills section for portfolio layouts. Groups
// with no surviving items are dropped; a group with items but no category
// label is labeled "General".
func NormalizeSkills(raw any, fallback []models.SkillGroup) []models.SkillGroup {
	if typed, ok := raw.([]models.SkillGroup); ok {
		return filterSkills(typed, fallback)
	}
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]models.SkillGroup, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var groupItems []string
		for _, key := range []string{"items", "skills", "list"} {
			if v, ok := m[key]; ok {
				groupItems = NormalizeStrings(v, nil)
				if groupItems != nil {
					break
				}
			}
		}
		if len(groupItems) == 0 {
			continue
		}
		category := stringAt(m, "category", "name", "title", "group")
		if category == "" {
			category = "General"
		}
		out = append(out, models.SkillGroup{Category: category, Items: groupItems})
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func filterSkills(skills []models.SkillGroup, fallback []models.SkillGroup) []models.SkillGroup {
	out := make([]models.SkillGroup, 0, len(skills))
	for _, group := range skills {
		if len(group.Items) == 0 {
			continue
		}
		if group.Category == "" {
			group.Category = "General"
		}
		out = append(out, group)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// NormalizeVisibility applies explicit boolean overrides on top of the prior
// visibility state. Non-boolean values leave the prior flag untouched, so
// editing a stored page preserves its hidden sections.
func NormalizeVisibility(raw any, prior models.Visibility) models.Visibility {
	m, ok := raw.(map[string]any)
	if !ok {
		return prior
	}
	result := prior
	if v, present := boolAt(m, "features"); present {
		result.Features = v
	}
	if v, present := boolAt(m, "services"); present {
		result.Services = v
	}
	if v, present := boolAt(m, "testimonials"); present {
		result.Testimonials = v
	}
	if v, present := boolAt(m, "faq"); present {
		result.FAQ = v
	}
	return result
}
