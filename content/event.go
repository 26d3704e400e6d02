// Package content provides the event-specific section normalizers
package content

import (
	"github.com/AtRiskMedia/pagecraft-go/models"
)

// NormalizeSchedule normalizes the event agenda. Elements may be plain strings
// (treated as session titles) or objects; a recognizable entry missing its
// title gets a synthesized "Session N" label from its 1-based position.
func NormalizeSchedule(raw any, fallback []models.ScheduleItem) []models.ScheduleItem {
	if typed, ok := raw.([]models.ScheduleItem); ok {
		return filterSchedule(typed, fallback)
	}
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]models.ScheduleItem, 0, len(items))
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, models.ScheduleItem{Time: "TBA", Title: s})
			continue
		}
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entry := models.ScheduleItem{
			Time:    stringAt(m, "time", "when", "slot", "hour"),
			Title:   stringAt(m, "title", "name", "session", "activity"),
			Speaker: stringAt(m, "speaker", "host", "presenter", "by"),
		}
		if entry.Time == "" && entry.Title == "" && entry.Speaker == "" {
			continue
		}
		if entry.Title == "" {
			entry.Title = indexedLabel("Session", len(out)+1)
		}
		if entry.Time == "" {
			entry.Time = "TBA"
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func filterSchedule(schedule []models.ScheduleItem, fallback []models.ScheduleItem) []models.ScheduleItem {
	out := make([]models.ScheduleItem, 0, len(schedule))
	for _, entry := range schedule {
		if entry.Time == "" && entry.Title == "" && entry.Speaker == "" {
			continue
		}
		if entry.Title == "" {
			entry.Title = indexedLabel("Session", len(out)+1)
		}
		if entry.Time == "" {
			entry.Time = "TBA"
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// NormalizeMetrics normalizes the headline stats strip. The value is tried
// across value/total/count/number candidates (numbers are coerced to strings);
// entries without a derivable value are dropped. A valued entry missing its
// label gets "Metric N".
func NormalizeMetrics(raw any, fallback []models.Metric) []models.Metric {
	if typed, ok := raw.([]models.Metric); ok {
		return filterMetrics(typed, fallback)
	}
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]models.Metric, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		value := stringAt(m, "value", "total", "count", "number")
		if value == "" {
			continue
		}
		label := stringAt(m, "label", "name", "title", "metric")
		if label == "" {
			label = indexedLabel("Metric", len(out)+1)
		}
		out = append(out, models.Metric{Label: label, Value: value})
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func filterMetrics(metrics []models.Metric, fallback []models.Metric) []models.Metric {
	out := make([]models.Metric, 0, len(metrics))
	for _, entry := range metrics {
		if entry.Value == "" {
			continue
		}
		if entry.Label == "" {
			entry.Label = indexedLabel("Metric", len(out)+1)
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// NormalizePartners normalizes the sponsors strip. Elements may be plain
// strings (partner names) or objects; nameless entries are dropped.
func NormalizePartners(raw any, fallback []models.Partner) []models.Partner {
	if typed, ok := raw.([]models.Partner); ok {
		return filterPartners(typed, fallback)
	}
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]models.Partner, 0, len(items))
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, models.Partner{Name: s})
			continue
		}
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entry := models.Partner{
			Name: stringAt(m, "name", "title", "partner", "company"),
			Tier: stringAt(m, "tier", "level", "type"),
		}
		if entry.Name != "" {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func filterPartners(partners []models.Partner, fallback []models.Partner) []models.Partner {
	out := make([]models.Partner, 0, len(partners))
	for _, entry := range partners {
		if entry.Name != "" {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// NormalizePasses normalizes the ticket tiers. An entry survives when it
// yields a price or a name; a priced entry missing its name gets "Pass N".
func NormalizePasses(raw any, fallback []models.Pass) []models.Pass {
	if typed, ok := raw.([]models.Pass); ok {
		return filterPasses(typed, fallback)
	}
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]models.Pass, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entry := models.Pass{
			Name:  stringAt(m, "name", "title", "type", "tier"),
			Price: stringAt(m, "price", "cost", "amount"),
			Perks: NormalizeStrings(perksValue(m), nil),
		}
		featured, present := boolAt(m, "featured", "popular", "highlighted")
		entry.Featured = present && featured
		if entry.Name == "" && entry.Price == "" {
			continue
		}
		if entry.Name == "" {
			entry.Name = indexedLabel("Pass", len(out)+1)
		}
		if entry.Price == "" {
			entry.Price = "Free"
		}
		if entry.Perks == nil {
			entry.Perks = []string{}
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func perksValue(m map[string]any) any {
	for _, key := range []string{"perks", "features", "benefits", "includes"} {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return nil
}

func filterPasses(passes []models.Pass, fallback []models.Pass) []models.Pass {
	out := make([]models.Pass, 0, len(passes))
	for _, entry := range passes {
		if entry.Name == "" && entry.Price == "" {
			continue
		}
		if entry.Name == "" {
			entry.Name = indexedLabel("Pass", len(out)+1)
		}
		if entry.Price == "" {
			entry.Price = "Free"
		}
		if entry.Perks == nil {
			entry.Perks = []string{}
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
