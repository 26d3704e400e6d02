// Package utils provides image URL resolution and small shared helpers
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/AtRiskMedia/pagecraft-go/config"
)

// curatedImages maps content keywords to stock photo base URLs. The mapping is
// static; resolution never makes a network call.
var curatedImages = map[string]string{
	"business":   "https://images.unsplash.com/photo-1497366216548-37526070297c",
	"office":     "https://images.unsplash.com/photo-1497366811353-6870744d04b2",
	"team":       "https://images.unsplash.com/photo-1522071820081-009f0129c71c",
	"technology": "https://images.unsplash.com/photo-1518770660439-4636190af475",
	"startup":    "https://images.unsplash.com/photo-1559136555-9303baea8ebd",
	"restaurant": "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
	"food":       "https://images.unsplash.com/photo-1504674900247-0877df9cc836",
	"fitness":    "https://images.unsplash.com/photo-1534438327276-14e5300c3a48",
	"fashion":    "https://images.unsplash.com/photo-1445205170230-053b83016050",
	"travel":     "https://images.unsplash.com/photo-1488646953014-85cb44e25828",
	"education":  "https://images.unsplash.com/photo-1523050854058-8df90110c9f1",
	"health":     "https://images.unsplash.com/photo-1505751172876-fa1923c5c528",
	"event":      "https://images.unsplash.com/photo-1492684223066-81342ee5ff30",
	"concert":    "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4",
	"conference": "https://images.unsplash.com/photo-1540575467063-178a50c2df87",
	"portfolio":  "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5",
	"design":     "https://images.unsplash.com/photo-1561070791-2526d30994b5",
	"art":        "https://images.unsplash.com/photo-1513364776144-60967b0f800f",
	"nature":     "https://images.unsplash.com/photo-1441974231531-c6227db76b6e",
	"abstract":   "https://images.unsplash.com/photo-1541701494587-cb58502866ab",
}

// genericImage backs any keyword without a curated entry
const genericImage = "https://images.unsplash.com/photo-1497366216548-37526070297c"

// ImageURL resolves a content keyword to a delivery URL with dimension and
// compression parameters applied.
func ImageURL(keyword string, width, height int) string {
	base, ok := curatedImages[strings.ToLower(strings.TrimSpace(keyword))]
	if !ok {
		base = genericImage
	}
	return fmt.Sprintf("%s?w=%d&h=%d&fit=crop&auto=format&q=80", base, width, height)
}

// PlaceholderImage returns a seeded placeholder URL for an unfilled image slot.
// The slot index seeds the image so adjacent slots stay visually distinct.
func PlaceholderImage(slot, width, height int) string {
	return fmt.Sprintf("%s/pagecraft-%d/%d/%d", config.PlaceholderImageBase, slot+1, width, height)
}

// PickImage returns the image for a slot, cycling through the available list
// and falling back to a placeholder when the list is empty. Layouts use this so
// no image slot is ever left broken.
func PickImage(images []string, slot, width, height int) string {
	if len(images) == 0 {
		return PlaceholderImage(slot, width, height)
	}
	return images[slot%len(images)]
}

// CurrentYear returns the current year for footer copyright lines
func CurrentYear() string {
	return fmt.Sprintf("%d", time.Now().Year())
}
