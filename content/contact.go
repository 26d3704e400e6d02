// Package content provides contact-field and theme-color normalization
package content

import (
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/config"
)

// maxContactFields caps the rendered form length
const maxContactFields = 8

// NormalizeContactFields normalizes the list of form field labels. Elements
// may be plain strings or objects carrying a label-like property; the usual
// whole-field fallback rule applies.
func NormalizeContactFields(raw any, fallback []string) []string {
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		label := asString(item)
		if label == "" {
			if m, ok := item.(map[string]any); ok {
				label = stringAt(m, "label", "name", "field", "title")
			}
		}
		if label != "" {
			out = append(out, label)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// EnsureContactEssentials guarantees the form can identify and reach the
// sender: a name-labeled field at position 0 and a mail-labeled field at
// position 1 are inserted when missing, then the list is capped at 8 entries
// with the essentials never among the dropped.
// Missing essentials always go to the front in that fixed order so the result
// does not depend on the incoming field order.
func EnsureContactEssentials(fields []string) []string {
	hasName := false
	hasEmail := false
	for _, field := range fields {
		lower := strings.ToLower(field)
		if strings.Contains(lower, "name") {
			hasName = true
		}
		if strings.Contains(lower, "mail") {
			hasEmail = true
		}
	}

	out := make([]string, 0, len(fields)+2)
	if !hasName {
		out = append(out, "Name")
	}
	if !hasEmail {
		out = append(out, "Email")
	}
	out = append(out, fields...)

	if len(out) > maxContactFields {
		out = capEssentialFields(out)
	}
	return out
}

// capEssentialFields trims the list to the cap while always retaining the
// first name-labeled and first mail-labeled fields, even when they sit past
// the cap boundary. Remaining slots fill in the original order.
func capEssentialFields(fields []string) []string {
	nameIdx, mailIdx := -1, -1
	for i, field := range fields {
		lower := strings.ToLower(field)
		if nameIdx < 0 && strings.Contains(lower, "name") {
			nameIdx = i
		}
		if mailIdx < 0 && strings.Contains(lower, "mail") {
			mailIdx = i
		}
	}

	keep := make([]bool, len(fields))
	kept := 0
	if nameIdx >= 0 {
		keep[nameIdx] = true
		kept++
	}
	if mailIdx >= 0 && !keep[mailIdx] {
		keep[mailIdx] = true
		kept++
	}
	for i := range fields {
		if kept == maxContactFields {
			break
		}
		if !keep[i] {
			keep[i] = true
			kept++
		}
	}

	capped := make([]string, 0, maxContactFields)
	for i, field := range fields {
		if keep[i] {
			capped = append(capped, field)
		}
	}
	return capped
}

// SanitizeThemeColor reduces a free-form color value to a lowercase
// alphanumeric-and-hyphen token. Disallowed characters are stripped; when
// nothing survives, the configured default token is returned.
func SanitizeThemeColor(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	token := strings.Trim(b.String(), "-")
	if token == "" {
		return config.DefaultThemeColor
	}
	return token
}

// NormalizeImageDescriptions aligns the description list with the image list.
// The result always has exactly one entry per image; positions without a
// usable description get "Image N".
func NormalizeImageDescriptions(images, descriptions []string) []string {
	out := make([]string, len(images))
	for i := range images {
		desc := ""
		if i < len(descriptions) {
			desc = strings.TrimSpace(descriptions[i])
		}
		if desc == "" {
			desc = indexedLabel("Image", i+1)
		}
		out[i] = desc
	}
	return out
}
