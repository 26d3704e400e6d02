// Package templates provides the portfolio masonry page layout
package templates

import (
	"fmt"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/models"
)

// masonryHeights cycles through image heights so adjacent tiles stagger
var masonryHeights = []string{"h-72", "h-96", "h-60", "h-80", "h-64", "h-96"}

// RenderPortfolioMasonry renders the dark gallery-first portfolio variant: a
// compact header, a staggered masonry wall of work, skills as pill rows, then
// testimonials, FAQ, and contact on the dark surface.
func RenderPortfolioMasonry(page *models.PageContent) string {
	theme := page.ThemeColor
	var sb strings.Builder

	style := fmt.Sprintf(`.masonry { column-gap: 1.5rem; }
@media (min-width: 768px) { .masonry { column-count: 2; } }
@media (min-width: 1024px) { .masonry { column-count: 3; } }
.masonry > * { break-inside: avoid; }
.glow { box-shadow: 0 0 60px %s22; }`, themeBaseHex(theme))

	documentOpen(&sb, page.Title, page.Description, style, "bg-gray-950 text-gray-100 antialiased")

	// Header
	sb.WriteString(`<header class="max-w-6xl mx-auto px-6 pt-20 pb-12 flex flex-col md:flex-row md:items-end md:justify-between gap-6">`)
	sb.WriteString(`<div>`)
	sb.WriteString(fmt.Sprintf(`<h1 class="text-4xl md:text-5xl font-extrabold">%s</h1>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-3 text-xl text-gray-400">%s</p>`, esc(page.Tagline)))
	sb.WriteString(`</div>`)
	sb.WriteString(fmt.Sprintf(`<a href="#contact" class="self-start md:self-end px-6 py-3 rounded-full bg-%s-500 hover:bg-%s-400 text-white font-semibold transition-colors">Hire Me</a>`, theme, theme))
	sb.WriteString(`</header>`)

	// Masonry wall
	sb.WriteString(`<section class="max-w-6xl mx-auto px-6 pb-20"><div class="masonry">`)
	slots := len(page.Images)
	if slots == 0 {
		slots = 6
	}
	for i := 0; i < slots; i++ {
		src, alt := pageImage(page, i, 800, 1000)
		height := masonryHeights[i%len(masonryHeights)]
		sb.WriteString(`<figure class="mb-6 rounded-2xl overflow-hidden glow bg-gray-900">`)
		sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="w-full %s object-cover" loading="lazy">`, esc(src), esc(alt), height))
		sb.WriteString(fmt.Sprintf(`<figcaption class="p-4 text-sm text-gray-400">%s</figcaption>`, esc(alt)))
		sb.WriteString(`</figure>`)
	}
	sb.WriteString(`</div></section>`)

	// About + achievements
	sb.WriteString(`<section class="border-y border-white/10 bg-gray-900/50 py-16"><div class="max-w-4xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<p class="text-lg text-gray-300 leading-relaxed">%s</p>`, esc(page.Sections.About)))
	if page.Sections.Visibility.Features && len(page.Sections.Features) > 0 {
		sb.WriteString(`<div class="mt-8 grid sm:grid-cols-3 gap-4">`)
		for _, achievement := range page.Sections.Features {
			sb.WriteString(fmt.Sprintf(`<div class="rounded-xl border border-%s-500/30 bg-%s-500/10 px-4 py-3 text-sm text-gray-200">%s</div>`, theme, theme, esc(achievement)))
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></section>`)

	// Skills
	sb.WriteString(`<section class="py-20"><div class="max-w-4xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-3xl font-bold text-center mb-12">Toolbox<span class="text-%s-400">_</span></h2>`, theme))
	for _, group := range page.Sections.Skills {
		sb.WriteString(`<div class="mb-8">`)
		sb.WriteString(fmt.Sprintf(`<h3 class="text-sm uppercase tracking-widest text-%s-400 font-bold mb-3">%s</h3>`, theme, esc(group.Category)))
		sb.WriteString(`<div class="flex flex-wrap gap-2">`)
		for _, item := range group.Items {
			sb.WriteString(fmt.Sprintf(`<span class="px-4 py-2 rounded-lg bg-white/5 border border-white/10 text-sm">%s</span>`, esc(item)))
		}
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</div></section>`)

	// Testimonials
	if page.Sections.Visibility.Testimonials {
		sb.WriteString(`<section class="border-t border-white/10 py-20"><div class="max-w-5xl mx-auto px-6 grid md:grid-cols-2 gap-8">`)
		for _, t := range page.Sections.Testimonials {
			sb.WriteString(`<div class="rounded-2xl bg-gray-900 border border-white/10 p-8">`)
			sb.WriteString(fmt.Sprintf(`<div class="text-%s-400" aria-label="rating %d of 5">%s</div>`, theme, t.Rating, starRating(t.Rating)))
			sb.WriteString(fmt.Sprintf(`<p class="mt-4 text-gray-300">&ldquo;%s&rdquo;</p>`, esc(t.Quote)))
			sb.WriteString(fmt.Sprintf(`<div class="mt-6 font-semibold">%s</div><div class="text-sm text-gray-500">%s</div>`, esc(t.Name), esc(t.Role)))
			sb.WriteString(`</div>`)
		}
		sb.WriteString(`</div></section>`)
	}

	// FAQ
	if page.Sections.Visibility.FAQ {
		sb.WriteString(`<section class="py-20 border-t border-white/10"><div class="max-w-3xl mx-auto px-6">`)
		sb.WriteString(`<h2 class="text-3xl font-bold text-center mb-10">FAQ</h2>`)
		for _, item := range page.Sections.FAQ {
			sb.WriteString(fmt.Sprintf(`<details class="rounded-xl bg-gray-900 border border-white/10 mb-4 p-6"><summary class="font-semibold cursor-pointer">%s</summary><p class="mt-3 text-gray-400">%s</p></details>`,
				esc(item.Question), esc(item.Answer)))
		}
		sb.WriteString(`</div></section>`)
	}

	// Contact
	sb.WriteString(`<section id="contact" class="py-20 border-t border-white/10"><div class="max-w-xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-3xl font-bold text-center">Get In Touch</h2><p class="text-center text-gray-400 mt-3 mb-8">%s</p>`, esc(page.Sections.CallToAction)))
	sb.WriteString(contactForm(page.ContactFields, theme, "dark"))
	sb.WriteString(`</div></section>`)

	sb.WriteString(footer(page.Title, theme, "dark"))
	sb.WriteString(ContactFormScript())
	documentClose(&sb)
	return sb.String()
}
