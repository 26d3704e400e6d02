package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/pagecraft-go/models"
)

func TestNormalizeStringsFallback(t *testing.T) {
	fallback := []string{"one", "two"}

	assert.Equal(t, fallback, NormalizeStrings(nil, fallback))
	assert.Equal(t, fallback, NormalizeStrings([]any{}, fallback))
	assert.Equal(t, fallback, NormalizeStrings("not a list", fallback))
	assert.Equal(t, fallback, NormalizeStrings(map[string]any{"a": 1}, fallback))

	// A list of only whitespace entries is treated as empty
	assert.Equal(t, fallback, NormalizeStrings([]any{" ", ""}, fallback))
	assert.Equal(t, fallback, NormalizeStrings([]any{"\t", "  "}, fallback))
}

func TestNormalizeStringsExtraction(t *testing.T) {
	got := NormalizeStrings([]any{
		"  plain string  ",
		map[string]any{"description": "from description"},
		map[string]any{"title": "from title"},
		map[string]any{"unrelated": "ignored"},
		float64(42),
	}, []string{"fallback"})

	assert.Equal(t, []string{"plain string", "from description", "from title", "42"}, got)
}

func TestNormalizeStringsAllOrNothing(t *testing.T) {
	fallback := []string{"a", "b", "c"}

	// One real entry means no defaults are mixed in
	got := NormalizeStrings([]any{"only real entry"}, fallback)
	assert.Equal(t, []string{"only real entry"}, got)
}

func TestNormalizeStringsIdempotent(t *testing.T) {
	fallback := []string{"fb"}
	once := NormalizeStrings([]any{"x", " y "}, fallback)
	twice := NormalizeStrings(once, fallback)
	assert.Equal(t, once, twice)
}

func TestNormalizeServicesIdempotent(t *testing.T) {
	fallback := []models.Service{{Title: "D", Description: "DD"}}
	once := NormalizeServices([]any{
		map[string]any{"title": "Design", "description": "We design things"},
	}, fallback)
	twice := NormalizeServices(once, fallback)
	assert.Equal(t, once, twice)
}

func TestNormalizeServices(t *testing.T) {
	fallback := []models.Service{{Title: "Default", Description: "Default service"}}

	got := NormalizeServices([]any{
		map[string]any{"title": "Design", "description": "We design things", "icon": "🎨"},
		map[string]any{"name": "Build", "summary": "We build things"},
		map[string]any{"title": "No description"},
		"just a string",
	}, fallback)

	require.Len(t, got, 2)
	assert.Equal(t, models.Service{Title: "Design", Description: "We design things", Icon: "🎨"}, got[0])
	assert.Equal(t, models.Service{Title: "Build", Description: "We build things"}, got[1])

	assert.Equal(t, fallback, NormalizeServices([]any{map[string]any{"title": "only title"}}, fallback))
	assert.Equal(t, fallback, NormalizeServices(nil, fallback))
}

func TestNormalizeTestimonialsRatingClamp(t *testing.T) {
	rated := func(rating any) models.Testimonial {
		got := NormalizeTestimonials([]any{
			map[string]any{"name": "A", "quote": "Q", "rating": rating},
		}, nil)
		require.Len(t, got, 1)
		return got[0]
	}

	assert.Equal(t, 1, rated(float64(0)).Rating)
	assert.Equal(t, 5, rated(float64(9.7)).Rating)
	assert.Equal(t, 3, rated(float64(3.4)).Rating)
	assert.Equal(t, 1, rated(float64(-2)).Rating)
	assert.Equal(t, 4, rated("4").Rating)
}

func TestNormalizeTestimonialsDefaults(t *testing.T) {
	got := NormalizeTestimonials([]any{
		map[string]any{"name": "B", "quote": "Great", "role": "CEO"},
	}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Rating, "absent rating defaults to 5")

	fallback := []models.Testimonial{{Name: "F", Quote: "Q", Rating: 5}}
	assert.Equal(t, fallback, NormalizeTestimonials([]any{
		map[string]any{"name": "no quote"},
		map[string]any{"quote": "no name"},
	}, fallback))
}

func TestNormalizeFAQ(t *testing.T) {
	fallback := []models.FAQItem{{Question: "Q?", Answer: "A."}}

	got := NormalizeFAQ([]any{
		map[string]any{"question": "How?", "answer": "Like this."},
		map[string]any{"q": "Short keys?", "a": "Also fine."},
		map[string]any{"question": "Unanswered?"},
	}, fallback)

	require.Len(t, got, 2)
	assert.Equal(t, "How?", got[0].Question)
	assert.Equal(t, "Also fine.", got[1].Answer)

	assert.Equal(t, fallback, NormalizeFAQ("nope", fallback))
}

func TestNormalizeSkillsCollapse(t *testing.T) {
	got := NormalizeSkills([]any{
		map[string]any{"category": "", "items": []any{}},
		map[string]any{"category": "Tools", "items": []any{"Git"}},
	}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, models.SkillGroup{Category: "Tools", Items: []string{"Git"}}, got[0])
}

func TestNormalizeSkillsGeneralLabel(t *testing.T) {
	got := NormalizeSkills([]any{
		map[string]any{"items": []any{"Go", "SQL"}},
	}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "General", got[0].Category)
	assert.Equal(t, []string{"Go", "SQL"}, got[0].Items)
}

func TestNormalizeScheduleSynthesizedLabels(t *testing.T) {
	got := NormalizeSchedule([]any{
		"Opening Party",
		map[string]any{"time": "10:00"},
		map[string]any{"time": "11:00", "title": "Workshop", "speaker": "Dana"},
		map[string]any{},
	}, nil)

	require.Len(t, got, 3)
	assert.Equal(t, models.ScheduleItem{Time: "TBA", Title: "Opening Party"}, got[0])
	assert.Equal(t, "Session 2", got[1].Title)
	assert.Equal(t, "10:00", got[1].Time)
	assert.Equal(t, "Dana", got[2].Speaker)
}

func TestNormalizeMetricsValueCandidates(t *testing.T) {
	got := NormalizeMetrics([]any{
		map[string]any{"label": "Attendees", "value": "500+"},
		map[string]any{"label": "Speakers", "total": float64(20)},
		map[string]any{"label": "Sessions", "count": float64(12)},
		map[string]any{"value": "99%"},
		map[string]any{"label": "no value"},
	}, nil)

	require.Len(t, got, 4)
	assert.Equal(t, "500+", got[0].Value)
	assert.Equal(t, "20", got[1].Value)
	assert.Equal(t, "12", got[2].Value)
	assert.Equal(t, "Metric 4", got[3].Label)
}

func TestNormalizePartners(t *testing.T) {
	got := NormalizePartners([]any{
		"Acme Corp",
		map[string]any{"name": "Globex", "tier": "Gold"},
		map[string]any{"tier": "nameless"},
	}, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "Acme Corp", got[0].Name)
	assert.Equal(t, "Gold", got[1].Tier)
}

func TestNormalizePasses(t *testing.T) {
	got := NormalizePasses([]any{
		map[string]any{"name": "VIP", "price": "$99", "perks": []any{"Front row"}, "featured": true},
		map[string]any{"price": "$10"},
		map[string]any{"name": "Basic"},
		map[string]any{},
	}, nil)

	require.Len(t, got, 3)
	assert.True(t, got[0].Featured)
	assert.Equal(t, "Pass 2", got[1].Name)
	assert.Equal(t, "Free", got[2].Price)
	assert.NotNil(t, got[2].Perks)
}

func TestNormalizeVisibilityPreservesPrior(t *testing.T) {
	prior := models.Visibility{Features: true, Services: false, Testimonials: true, FAQ: true}

	got := NormalizeVisibility(map[string]any{
		"features": false,
		"faq":      "not a bool",
	}, prior)

	assert.False(t, got.Features, "explicit override applies")
	assert.False(t, got.Services, "prior hidden state preserved")
	assert.True(t, got.FAQ, "non-boolean leaves prior untouched")

	assert.Equal(t, prior, NormalizeVisibility(nil, prior))
}
