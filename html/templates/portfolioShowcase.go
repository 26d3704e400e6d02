// Package templates provides the portfolio-showcase page layout
package templates

import (
	"fmt"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/models"
)

// RenderPortfolioShowcase renders the grid-forward portfolio variant: a bold
// intro, a skills matrix, an achievements band, a project gallery fed from the
// page images, then testimonials, FAQ, and contact.
func RenderPortfolioShowcase(page *models.PageContent) string {
	theme := page.ThemeColor
	var sb strings.Builder

	style := fmt.Sprintf(`.accent-underline { box-shadow: inset 0 -0.4em 0 0 %s33; }
.project-card img { transition: transform .3s ease; }
.project-card:hover img { transform: scale(1.04); }`, themeBaseHex(theme))

	documentOpen(&sb, page.Title, page.Description, style, "bg-white text-gray-900 antialiased")

	// Intro
	sb.WriteString(`<header class="max-w-5xl mx-auto px-6 pt-24 pb-16">`)
	sb.WriteString(fmt.Sprintf(`<p class="text-sm uppercase tracking-widest text-%s-600 font-semibold">Portfolio</p>`, theme))
	sb.WriteString(fmt.Sprintf(`<h1 class="mt-4 text-5xl md:text-6xl font-extrabold leading-tight"><span class="accent-underline">%s</span></h1>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-6 text-2xl text-gray-600 max-w-2xl">%s</p>`, esc(page.Tagline)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-6 text-gray-600 max-w-2xl">%s</p>`, esc(page.Sections.About)))
	sb.WriteString(fmt.Sprintf(`<a href="#contact" class="mt-8 inline-block px-8 py-3 rounded-full bg-%s-600 hover:bg-%s-700 text-white font-semibold transition-colors">Work With Me</a>`, theme, theme))
	sb.WriteString(`</header>`)

	// Skills matrix
	sb.WriteString(`<section class="bg-gray-50 py-20"><div class="max-w-5xl mx-auto px-6">`)
	sb.WriteString(sectionHeading("Skills & Expertise", theme))
	sb.WriteString(`<div class="grid md:grid-cols-3 gap-8">`)
	for _, group := range page.Sections.Skills {
		sb.WriteString(`<div class="bg-white rounded-2xl shadow p-6">`)
		sb.WriteString(fmt.Sprintf(`<h3 class="font-bold text-lg text-%s-700">%s</h3>`, theme, esc(group.Category)))
		sb.WriteString(`<div class="mt-4 flex flex-wrap gap-2">`)
		for _, item := range group.Items {
			sb.WriteString(fmt.Sprintf(`<span class="px-3 py-1 rounded-full bg-%s-100 text-%s-800 text-sm">%s</span>`, theme, theme, esc(item)))
		}
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</div></div></section>`)

	// Achievements band
	if page.Sections.Visibility.Features && len(page.Sections.Features) > 0 {
		sb.WriteString(`<section class="py-16"><div class="max-w-5xl mx-auto px-6">`)
		sb.WriteString(`<div class="grid sm:grid-cols-3 gap-6">`)
		for _, achievement := range page.Sections.Features {
			sb.WriteString(fmt.Sprintf(`<div class="border-l-4 border-%s-500 pl-4 py-2 text-gray-700 font-medium">%s</div>`, theme, esc(achievement)))
		}
		sb.WriteString(`</div></div></section>`)
	}

	// Project gallery from images
	sb.WriteString(`<section class="py-20 bg-gray-50"><div class="max-w-6xl mx-auto px-6">`)
	sb.WriteString(sectionHeading("Selected Work", theme))
	sb.WriteString(`<div class="grid md:grid-cols-2 lg:grid-cols-3 gap-8">`)
	slots := len(page.Images)
	if slots == 0 {
		slots = 6
	}
	for i := 0; i < slots; i++ {
		src, alt := pageImage(page, i, 800, 600)
		sb.WriteString(`<div class="project-card bg-white rounded-2xl shadow overflow-hidden">`)
		sb.WriteString(fmt.Sprintf(`<div class="overflow-hidden"><img src="%s" alt="%s" class="w-full h-56 object-cover" loading="lazy"></div>`, esc(src), esc(alt)))
		sb.WriteString(fmt.Sprintf(`<div class="p-5"><h3 class="font-semibold">%s</h3></div>`, esc(alt)))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)

	// Testimonials
	if page.Sections.Visibility.Testimonials {
		sb.WriteString(`<section class="py-20"><div class="max-w-4xl mx-auto px-6">`)
		sb.WriteString(sectionHeading("Kind Words", theme))
		for _, t := range page.Sections.Testimonials {
			sb.WriteString(`<blockquote class="bg-gray-50 rounded-2xl p-8 mb-6">`)
			sb.WriteString(fmt.Sprintf(`<div class="text-%s-500" aria-label="rating %d of 5">%s</div>`, theme, t.Rating, starRating(t.Rating)))
			sb.WriteString(fmt.Sprintf(`<p class="mt-3 text-lg text-gray-700">&ldquo;%s&rdquo;</p>`, esc(t.Quote)))
			sb.WriteString(fmt.Sprintf(`<footer class="mt-4 font-semibold">%s<span class="font-normal text-gray-500"> — %s</span></footer>`, esc(t.Name), esc(t.Role)))
			sb.WriteString(`</blockquote>`)
		}
		sb.WriteString(`</div></section>`)
	}

	// FAQ
	if page.Sections.Visibility.FAQ {
		sb.WriteString(`<section class="py-20 bg-gray-50"><div class="max-w-3xl mx-auto px-6">`)
		sb.WriteString(sectionHeading("Questions", theme))
		for _, item := range page.Sections.FAQ {
			sb.WriteString(fmt.Sprintf(`<details class="bg-white rounded-xl shadow mb-4 p-6"><summary class="font-semibold cursor-pointer">%s</summary><p class="mt-3 text-gray-600">%s</p></details>`,
				esc(item.Question), esc(item.Answer)))
		}
		sb.WriteString(`</div></section>`)
	}

	// Contact
	sb.WriteString(`<section id="contact" class="py-20"><div class="max-w-xl mx-auto px-6">`)
	sb.WriteString(sectionHeading("Let's Talk", theme))
	sb.WriteString(fmt.Sprintf(`<p class="text-center text-gray-600 mb-8">%s</p>`, esc(page.Sections.CallToAction)))
	sb.WriteString(contactForm(page.ContactFields, theme, "light"))
	sb.WriteString(`</div></section>`)

	sb.WriteString(footer(page.Title, theme, "light"))
	sb.WriteString(ContactFormScript())
	documentClose(&sb)
	return sb.String()
}
