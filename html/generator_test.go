package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/pagecraft-go/models"
)

func TestRenderEveryLayoutFromEmptyInput(t *testing.T) {
	g := NewGenerator()

	for _, layout := range Layouts() {
		t.Run(layout, func(t *testing.T) {
			doc := g.Render(layout, &models.RawPageData{})

			require.NotEmpty(t, doc)
			assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"), "document starts with doctype")
			assert.Equal(t, 1, strings.Count(doc, "<html"), "one opening html tag")
			assert.Equal(t, 1, strings.Count(doc, "</html>"), "one closing html tag")
			assert.Contains(t, doc, "</body>")
			assert.Contains(t, doc, "data-contact-form", "contact form is wired")
		})
	}
}

func TestRenderNilInput(t *testing.T) {
	g := NewGenerator()

	for _, layout := range Layouts() {
		doc := g.Render(layout, nil)
		assert.NotEmpty(t, doc, "layout %s renders from nil input", layout)
	}
}

func TestRenderUnknownLayoutFallsBackToBusiness(t *testing.T) {
	g := NewGenerator()
	raw := &models.RawPageData{Title: "Fallback Co"}

	assert.Equal(t, g.Render(LayoutBusiness, raw), g.Render("no-such-layout", raw))
}

func TestRenderPopulatedBusinessPage(t *testing.T) {
	g := NewGenerator()
	doc := g.Render(LayoutBusiness, &models.RawPageData{
		Title:      "Acme Consulting",
		Tagline:    "Strategy that ships",
		ThemeColor: "emerald",
		Images:     []string{"https://example.com/hero.jpg"},
		Sections: map[string]any{
			"services": []any{
				map[string]any{"title": "Audits", "description": "Deep-dive reviews"},
			},
			"testimonials": []any{
				map[string]any{"name": "Jo", "quote": "Superb work", "rating": float64(5)},
			},
			"faq": []any{
				map[string]any{"question": "How long?", "answer": "Two weeks."},
			},
		},
	})

	assert.Contains(t, doc, "Acme Consulting")
	assert.Contains(t, doc, "Strategy that ships")
	assert.Contains(t, doc, "emerald")
	assert.Contains(t, doc, "Audits")
	assert.Contains(t, doc, "Superb work")
	assert.Contains(t, doc, "How long?")
	assert.Contains(t, doc, "https://example.com/hero.jpg")
}

func TestRenderEscapesUserContent(t *testing.T) {
	g := NewGenerator()
	doc := g.Render(LayoutBusiness, &models.RawPageData{
		Title: `<script>alert("x")</script>`,
	})

	assert.NotContains(t, doc, `<script>alert("x")</script>`)
	assert.Contains(t, doc, "&lt;script&gt;")
}

// Event layouts render fully from near-empty input: defaults supply the
// metrics and schedule, and the countdown and form scripts are embedded
// exactly once each.
func TestRenderEventLayoutsFromSparseInput(t *testing.T) {
	g := NewGenerator()
	raw := &models.RawPageData{
		Title:         "Launch Night",
		Tagline:       "One evening, everything changes",
		ThemeColor:    "",
		Pics:          []string{},
		ContactFields: []any{},
		Sections:      map[string]any{},
	}

	for _, layout := range []string{LayoutEventNeon, LayoutEventElegant, LayoutEventCarnival} {
		t.Run(layout, func(t *testing.T) {
			doc := g.Render(layout, raw)

			assert.Contains(t, doc, "Launch Night")
			assert.Contains(t, doc, `id="countdown"`)
			assert.Equal(t, 1, strings.Count(doc, "<form data-contact-form"), "exactly one wired contact form")
			assert.Equal(t, 1, strings.Count(doc, "We are LIVE!"), "exactly one countdown script")
			assert.Equal(t, 1, strings.Count(doc, "siteIdentifier"), "exactly one submission script")
			assert.Contains(t, doc, "Opening Keynote", "default schedule renders")
			assert.Contains(t, doc, "Attendees", "default metrics render")
		})
	}
}

func TestRenderEventDatePropagates(t *testing.T) {
	g := NewGenerator()
	doc := g.Render(LayoutEventNeon, &models.RawPageData{
		Title:     "Summit",
		EventDate: "2026-11-20T18:00:00Z",
	})

	assert.Contains(t, doc, `data-event-date="2026-11-20T18:00:00Z"`)
}

func TestRenderPortfolioLayoutsDiffer(t *testing.T) {
	g := NewGenerator()
	raw := &models.RawPageData{Title: "Jordan Vega"}

	showcase := g.Render(LayoutPortfolioShowcase, raw)
	caseStudy := g.Render(LayoutPortfolioCase, raw)
	masonry := g.Render(LayoutPortfolioMasonry, raw)

	assert.NotEqual(t, showcase, caseStudy)
	assert.NotEqual(t, caseStudy, masonry)
	assert.NotEqual(t, showcase, masonry)

	for _, doc := range []string{showcase, caseStudy, masonry} {
		assert.Contains(t, doc, "Jordan Vega")
	}
}
