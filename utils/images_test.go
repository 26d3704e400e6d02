package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	got := ImageURL("business", 1200, 600)

	assert.True(t, strings.HasPrefix(got, "https://images.unsplash.com/"))
	assert.Contains(t, got, "w=1200")
	assert.Contains(t, got, "h=600")
	assert.Contains(t, got, "fit=crop")
}

func TestImageURLKeywordHandling(t *testing.T) {
	// Keyword lookup ignores case and surrounding whitespace
	assert.Equal(t, ImageURL("business", 800, 400), ImageURL("  BUSINESS  ", 800, 400))

	// Unknown keywords resolve to the generic image, never an error
	got := ImageURL("no-such-keyword", 800, 400)
	assert.True(t, strings.HasPrefix(got, "https://images.unsplash.com/"))
}

func TestPlaceholderImageSeededBySlot(t *testing.T) {
	first := PlaceholderImage(0, 400, 300)
	second := PlaceholderImage(1, 400, 300)

	assert.NotEqual(t, first, second, "adjacent slots get distinct seeds")
	assert.Contains(t, first, "/400/300")
}

func TestPickImage(t *testing.T) {
	images := []string{"a.jpg", "b.jpg"}

	assert.Equal(t, "a.jpg", PickImage(images, 0, 400, 300))
	assert.Equal(t, "b.jpg", PickImage(images, 1, 400, 300))
	assert.Equal(t, "a.jpg", PickImage(images, 2, 400, 300), "slots cycle through the list")

	got := PickImage(nil, 0, 400, 300)
	assert.NotEmpty(t, got, "empty list falls back to a placeholder")
	assert.Contains(t, got, "/400/300")
}
