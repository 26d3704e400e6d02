// Package templates provides the page layout renderers and shared document helpers
package templates

import (
	"fmt"
	"html"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/config"
	"github.com/AtRiskMedia/pagecraft-go/models"
	"github.com/AtRiskMedia/pagecraft-go/utils"
)

// esc escapes user-supplied text for safe interpolation into markup
func esc(s string) string {
	return html.EscapeString(s)
}

// documentOpen writes the doctype, head, and opening body tag. Every layout
// shares this shell; the style block and body classes carry the layout's
// visual identity.
func documentOpen(sb *strings.Builder, title, description, styleBlock, bodyClass string) {
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString(`<html lang="en">` + "\n")
	sb.WriteString("<head>\n")
	sb.WriteString(`<meta charset="UTF-8">` + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", esc(title)))
	if description != "" {
		sb.WriteString(fmt.Sprintf(`<meta name="description" content="%s">`+"\n", esc(description)))
	}
	sb.WriteString(fmt.Sprintf(`<script src="%s"></script>`+"\n", config.TailwindCDN))
	sb.WriteString("<style>\n")
	sb.WriteString(styleBlock)
	sb.WriteString("\n</style>\n")
	sb.WriteString("</head>\n")
	if bodyClass != "" {
		sb.WriteString(fmt.Sprintf(`<body class="%s">`+"\n", bodyClass))
	} else {
		sb.WriteString("<body>\n")
	}
}

// documentClose writes the closing body and html tags
func documentClose(sb *strings.Builder) {
	sb.WriteString("</body>\n</html>")
}

// starRating renders a filled/empty star row for a clamped [1,5] rating
func starRating(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// sectionHeading renders a centered section title with a theme-colored accent
func sectionHeading(title, theme string) string {
	return fmt.Sprintf(`<div class="text-center mb-12"><h2 class="text-3xl md:text-4xl font-bold">%s</h2><div class="w-16 h-1 bg-%s-500 mx-auto mt-4 rounded"></div></div>`,
		esc(title), theme)
}

// contactForm renders the inquiry form card: one control per configured field
// label plus a themed submit button. The client-side behavior attaches via the
// data-contact-form marker; the hidden site-identifier field is injected on
// page load by the embedded script.
func contactForm(fields []string, theme, variant string) string {
	var sb strings.Builder

	cardClass := "bg-white rounded-2xl shadow-xl p-8"
	buttonClass := fmt.Sprintf("w-full py-3 px-6 rounded-lg bg-%s-600 hover:bg-%s-700 text-white font-semibold transition-colors", theme, theme)
	noteClass := "text-sm text-gray-500 mt-4 text-center"
	if variant == "dark" {
		cardClass = "bg-white/5 border border-white/10 rounded-2xl p-8 backdrop-blur"
		buttonClass = fmt.Sprintf("w-full py-3 px-6 rounded-lg bg-%s-500 hover:bg-%s-400 text-white font-semibold transition-colors", theme, theme)
		noteClass = "text-sm text-gray-400 mt-4 text-center"
	}

	sb.WriteString(fmt.Sprintf(`<form data-contact-form class="%s">`, cardClass))
	for _, field := range fields {
		sb.WriteString(RenderFormField(field, theme, variant))
	}
	sb.WriteString(fmt.Sprintf(`<button type="submit" class="%s">Send Message</button>`, buttonClass))
	sb.WriteString(fmt.Sprintf(`<p class="%s">We only use your details to get back to you.</p>`, noteClass))
	sb.WriteString(`</form>`)
	return sb.String()
}

// footer renders the shared page footer with the current year
func footer(title, theme, variant string) string {
	wrapClass := "bg-gray-900 text-gray-400"
	if variant == "dark" {
		wrapClass = "border-t border-white/10 text-gray-500"
	}
	return fmt.Sprintf(`<footer class="%s py-8"><div class="max-w-6xl mx-auto px-6 text-center"><p>&copy; %s %s. All rights reserved.</p><p class="text-sm mt-2">Made with <span class="text-%s-500">&hearts;</span></p></div></footer>`,
		wrapClass, utils.CurrentYear(), esc(title), theme)
}

// pageImage resolves the image for a layout slot, cycling through available
// images and falling back to a slot-seeded placeholder so no slot breaks.
func pageImage(page *models.PageContent, slot, width, height int) (src string, alt string) {
	src = utils.PickImage(page.Images, slot, width, height)
	alt = "Image"
	if len(page.ImageDescriptions) > 0 {
		alt = page.ImageDescriptions[slot%len(page.ImageDescriptions)]
	}
	return src, alt
}
