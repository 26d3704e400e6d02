package content

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/AtRiskMedia/pagecraft-go/models"
)

// TestNormalizerProperties checks the invariants every normalizer must hold
// for arbitrary input: totality, non-empty output, and alignment.
func TestNormalizerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("string list normalization is total and non-empty", prop.ForAll(
		func(values []string) bool {
			fallback := []string{"fallback"}
			raw := make([]any, len(values))
			for i, v := range values {
				raw[i] = v
			}
			got := NormalizeStrings(raw, fallback)
			return len(got) > 0
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("normalized string lists are trimmed and non-blank", prop.ForAll(
		func(values []string) bool {
			raw := make([]any, len(values))
			for i, v := range values {
				raw[i] = v
			}
			got := NormalizeStrings(raw, []string{"fallback"})
			for _, s := range got {
				if s != strings.TrimSpace(s) || s == "" {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("image descriptions always match image count", prop.ForAll(
		func(imageCount, descCount int) bool {
			images := make([]string, imageCount)
			for i := range images {
				images[i] = "img.jpg"
			}
			descs := make([]string, descCount)
			got := NormalizeImageDescriptions(images, descs)
			return len(got) == len(images)
		},
		gen.IntRange(0, 20),
		gen.IntRange(0, 20),
	))

	properties.Property("ratings always land in [1,5]", prop.ForAll(
		func(rating float64) bool {
			got := NormalizeTestimonials([]any{
				map[string]any{"name": "N", "quote": "Q", "rating": rating},
			}, nil)
			return len(got) == 1 && got[0].Rating >= 1 && got[0].Rating <= 5
		},
		gen.Float64Range(-100, 100),
	))

	properties.Property("contact essentials hold for any field list", prop.ForAll(
		func(fields []string) bool {
			got := EnsureContactEssentials(fields)
			if len(got) > 8 {
				return false
			}
			hasName, hasEmail := false, false
			for _, field := range got {
				lower := strings.ToLower(field)
				if strings.Contains(lower, "name") {
					hasName = true
				}
				if strings.Contains(lower, "mail") {
					hasEmail = true
				}
			}
			return hasName && hasEmail
		},
		gen.SliceOf(gen.RegexMatch(`^[A-Za-z ]{0,12}$`)),
	))

	properties.Property("sanitized theme tokens are lowercase alnum-hyphen", prop.ForAll(
		func(raw string) bool {
			token := SanitizeThemeColor(raw)
			if token == "" {
				return false
			}
			for _, r := range token {
				isValid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
				if !isValid {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("build never yields nil collections", prop.ForAll(
		func(title, tagline string) bool {
			page := BuildPageContent(&models.RawPageData{Title: title, Tagline: tagline}, EventDefaults())
			return page.Images != nil &&
				page.ImageDescriptions != nil &&
				page.ContactFields != nil &&
				page.Sections.Features != nil &&
				page.Sections.Services != nil &&
				page.Sections.Testimonials != nil &&
				page.Sections.FAQ != nil &&
				page.Sections.Skills != nil &&
				page.Sections.Schedule != nil &&
				page.Sections.Metrics != nil &&
				page.Sections.Partners != nil &&
				page.Sections.Passes != nil
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
