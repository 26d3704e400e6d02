// Package templates provides form field markup generation
package templates

import (
	"fmt"
	"strings"
)

// fieldKind classifies a label into the input control it should render as
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldEmail
	fieldPhone
	fieldTextarea
	fieldNumber
)

// classifyField matches the label against substring groups in priority order.
// First match wins, so "Email Message" stays an email input.
func classifyField(label string) fieldKind {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "email"):
		return fieldEmail
	case strings.Contains(lower, "phone"), strings.Contains(lower, "mobile"):
		return fieldPhone
	case strings.Contains(lower, "message"), strings.Contains(lower, "note"),
		strings.Contains(lower, "requirement"), strings.Contains(lower, "query"),
		strings.Contains(lower, "detail"):
		return fieldTextarea
	case strings.Contains(lower, "team"), strings.Contains(lower, "people"),
		strings.Contains(lower, "attendee"), strings.Contains(lower, "count"),
		strings.Contains(lower, "size"):
		return fieldNumber
	}
	return fieldText
}

// FieldName derives the form control name attribute from its label: lowercase,
// non-alphanumeric runs collapsed to single hyphens, edges trimmed. A label
// with no usable characters gets a generic fallback.
func FieldName(label string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(label) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	name := b.String()
	if name == "" {
		return "contact-field"
	}
	return name
}

// RenderFormField renders one labeled, required form control. The variant only
// changes styling classes; control behavior is identical in light and dark.
func RenderFormField(label, theme, variant string) string {
	name := FieldName(label)

	labelClass := "block text-sm font-medium text-gray-700 mb-1"
	controlClass := fmt.Sprintf("w-full px-4 py-3 rounded-lg border border-gray-300 bg-white text-gray-900 placeholder-gray-400 focus:outline-none focus:ring-2 focus:ring-%s-500 focus:border-%s-500", theme, theme)
	if variant == "dark" {
		labelClass = "block text-sm font-medium text-gray-300 mb-1"
		controlClass = fmt.Sprintf("w-full px-4 py-3 rounded-lg border border-white/20 bg-white/10 text-white placeholder-gray-500 focus:outline-none focus:ring-2 focus:ring-%s-400 focus:border-%s-400", theme, theme)
	}

	var control string
	switch classifyField(label) {
	case fieldEmail:
		control = fmt.Sprintf(`<input type="email" id="%s" name="%s" placeholder="%s" class="%s" required>`,
			name, name, esc(label), controlClass)
	case fieldPhone:
		control = fmt.Sprintf(`<input type="tel" id="%s" name="%s" placeholder="%s" class="%s" required>`,
			name, name, esc(label), controlClass)
	case fieldTextarea:
		control = fmt.Sprintf(`<textarea id="%s" name="%s" rows="4" placeholder="%s" class="%s" required></textarea>`,
			name, name, esc(label), controlClass)
	case fieldNumber:
		control = fmt.Sprintf(`<input type="number" id="%s" name="%s" min="0" placeholder="%s" class="%s" required>`,
			name, name, esc(label), controlClass)
	default:
		control = fmt.Sprintf(`<input type="text" id="%s" name="%s" placeholder="%s" class="%s" required>`,
			name, name, esc(label), controlClass)
	}

	return fmt.Sprintf(`<div class="mb-4"><label for="%s" class="%s">%s</label>%s</div>`,
		name, labelClass, esc(label), control)
}
