package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/pagecraft-go/config"
)

func TestNormalizeContactFields(t *testing.T) {
	fallback := []string{"Name", "Email", "Message"}

	assert.Equal(t, fallback, NormalizeContactFields(nil, fallback))
	assert.Equal(t, fallback, NormalizeContactFields([]any{" ", ""}, fallback))

	got := NormalizeContactFields([]any{
		"Full Name",
		map[string]any{"label": "Work Email"},
		map[string]any{"name": "Phone"},
	}, fallback)
	assert.Equal(t, []string{"Full Name", "Work Email", "Phone"}, got)
}

func TestEnsureContactEssentials(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   []string
	}{
		{
			name:   "both missing inserted at front in canonical order",
			fields: []string{"Phone", "Message"},
			want:   []string{"Name", "Email", "Phone", "Message"},
		},
		{
			name:   "name present only email inserted",
			fields: []string{"Full Name", "Phone"},
			want:   []string{"Email", "Full Name", "Phone"},
		},
		{
			name:   "email present only name inserted",
			fields: []string{"Work Email", "Message"},
			want:   []string{"Name", "Work Email", "Message"},
		},
		{
			name:   "both present unchanged",
			fields: []string{"Name", "Email", "Message"},
			want:   []string{"Name", "Email", "Message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnsureContactEssentials(tt.fields))
		})
	}
}

func TestEnsureContactEssentialsCap(t *testing.T) {
	long := []string{"Phone", "Company", "Role", "Budget", "Timeline", "Referral", "Country", "City", "Notes"}
	got := EnsureContactEssentials(long)

	require.LessOrEqual(t, len(got), 8)

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
	assert.True(t, hasName, "capped list keeps a name field")
	assert.True(t, hasEmail, "capped list keeps an email field")
}

func TestEnsureContactEssentialsCapKeepsLateEssentials(t *testing.T) {
	// The name field sits past the cap boundary once Email is inserted
	long := []string{"Phone", "Company", "Role", "Budget", "Timeline", "Referral", "Country", "City", "Full Name"}
	got := EnsureContactEssentials(long)

	require.Len(t, got, 8)
	assert.Contains(t, got, "Full Name")
	assert.Contains(t, got, "Email")
}

func TestSanitizeThemeColor(t *testing.T) {
	assert.Equal(t, "purple", SanitizeThemeColor("Purple!!"))
	assert.Equal(t, "sky-blue", SanitizeThemeColor("Sky-Blue"))
	assert.Equal(t, "teal", SanitizeThemeColor("  TEAL  "))
	assert.Equal(t, config.DefaultThemeColor, SanitizeThemeColor(""))
	assert.Equal(t, config.DefaultThemeColor, SanitizeThemeColor("!!!"))
	assert.Equal(t, config.DefaultThemeColor, SanitizeThemeColor("---"))
}

func TestNormalizeImageDescriptionsAlignment(t *testing.T) {
	images := []string{"a.jpg", "b.jpg", "c.jpg"}

	// Shorter description list is padded positionally
	got := NormalizeImageDescriptions(images, []string{"First"})
	assert.Equal(t, []string{"First", "Image 2", "Image 3"}, got)

	// Longer description list is truncated to image count
	got = NormalizeImageDescriptions(images, []string{"1", "2", "3", "4", "5"})
	assert.Len(t, got, 3)

	// No images means no descriptions
	assert.Empty(t, NormalizeImageDescriptions(nil, []string{"orphan"}))

	// Whitespace descriptions are replaced
	got = NormalizeImageDescriptions(images, []string{" ", "real", ""})
	assert.Equal(t, []string{"Image 1", "real", "Image 3"}, got)
}
