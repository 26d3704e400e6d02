// Package templates provides theme token styling support
package templates

// themeHex maps known theme tokens to a base hex value used in inline style
// blocks (gradients, glows) where a utility class cannot reach. Tokens outside
// this table still flow into class names; the hex simply falls back.
var themeHex = map[string]string{
	"purple":  "#9333ea",
	"indigo":  "#4f46e5",
	"blue":    "#2563eb",
	"sky":     "#0284c7",
	"cyan":    "#0891b2",
	"teal":    "#0d9488",
	"emerald": "#059669",
	"green":   "#16a34a",
	"lime":    "#65a30d",
	"amber":   "#d97706",
	"orange":  "#ea580c",
	"red":     "#dc2626",
	"rose":    "#e11d48",
	"pink":    "#db2777",
	"fuchsia": "#c026d3",
	"violet":  "#7c3aed",
	"slate":   "#475569",
}

// themeBaseHex resolves a token to its inline-style hex value
func themeBaseHex(token string) string {
	if hex, ok := themeHex[token]; ok {
		return hex
	}
	return themeHex["purple"]
}
