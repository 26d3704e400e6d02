// Package content normalizes loosely-shaped page data into the canonical model.
//
// Upstream content arrives as freshly-decoded JSON: strings where objects are
// expected, numbers where strings are expected, alternate property names for
// the same logical field, or nothing at all. Every normalizer in this package
// is pure and total: malformed input never fails, it degrades to the caller's
// fallback so a layout always has something renderable. Per field the result
// is all-fallback or all-real, never a mix.
package content

import (
	"math"
	"strconv"
	"strings"
)

// asString coerces a scalar to a trimmed string. JSON numbers arrive as
// float64 and are formatted without a spurious decimal when integral.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	}
	return ""
}

// stringAt tries candidate keys in priority order and returns the first
// non-empty coerced value.
func stringAt(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// numberAt tries candidate keys in priority order and returns the first
// numeric value found, with a flag for whether any key was present.
func numberAt(m map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case float64:
			return val, true
		case int:
			return float64(val), true
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}

// boolAt tries candidate keys and returns the first explicit boolean
func boolAt(m map[string]any, keys ...string) (bool, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			if b, ok := v.(bool); ok {
				return b, true
			}
		}
	}
	return false, false
}

// listItems returns the element list for a list-shaped field. Both
// freshly-decoded JSON ([]any) and already-typed []string inputs are accepted;
// anything else is not a list.
func listItems(raw any) ([]any, bool) {
	switch val := raw.(type) {
	case []any:
		return val, true
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return items, true
	}
	return nil, false
}

// itemText extracts display text from one list element: plain scalars
// directly, objects through the usual descriptive-property candidates.
func itemText(v any) string {
	if s := asString(v); s != "" {
		return s
	}
	if m, ok := v.(map[string]any); ok {
		return stringAt(m, "description", "summary", "title", "text", "name", "label")
	}
	return ""
}

// NormalizeString returns the trimmed raw value, or fallback when the input
// reduces to empty.
func NormalizeString(raw any, fallback string) string {
	if s := itemText(raw); s != "" {
		return s
	}
	return fallback
}

// NormalizeStrings normalizes a list-shaped free-text field (features,
// highlights, perks). Non-list input and lists that filter down to nothing
// both yield the fallback unchanged.
func NormalizeStrings(raw any, fallback []string) []string {
	items, ok := listItems(raw)
	if !ok {
		return fallback
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := itemText(item); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// indexedLabel synthesizes a unique per-render label from a 1-based position,
// e.g. "Session 3".
func indexedLabel(prefix string, position int) string {
	return prefix + " " + strconv.Itoa(position)
}
