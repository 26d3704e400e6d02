// Package templates provides the portfolio case-study page layout
package templates

import (
	"fmt"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/models"
)

// RenderPortfolioCaseStudy renders the editorial portfolio variant: a serif
// intro, a numbered project timeline with alternating image rows, skills as a
// compact index, then testimonials, FAQ, and contact.
func RenderPortfolioCaseStudy(page *models.PageContent) string {
	theme := page.ThemeColor
	var sb strings.Builder

	style := fmt.Sprintf(`body { font-family: Georgia, 'Times New Roman', serif; }
.sans { font-family: ui-sans-serif, system-ui, sans-serif; }
.timeline-rule { background: linear-gradient(to bottom, %s, transparent); }`, themeBaseHex(theme))

	documentOpen(&sb, page.Title, page.Description, style, "bg-stone-50 text-stone-900 antialiased")

	// Masthead
	sb.WriteString(`<header class="max-w-3xl mx-auto px-6 pt-24 pb-16 text-center">`)
	sb.WriteString(fmt.Sprintf(`<h1 class="text-5xl md:text-6xl font-bold leading-tight">%s</h1>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="sans mt-6 text-lg uppercase tracking-widest text-%s-700">%s</p>`, theme, esc(page.Tagline)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-8 text-xl leading-relaxed text-stone-600">%s</p>`, esc(page.Sections.About)))
	sb.WriteString(`</header>`)

	// Skills index
	sb.WriteString(`<section class="border-y border-stone-200 bg-white"><div class="max-w-3xl mx-auto px-6 py-10">`)
	for _, group := range page.Sections.Skills {
		sb.WriteString(`<div class="sans flex flex-wrap items-baseline gap-x-4 gap-y-1 py-2">`)
		sb.WriteString(fmt.Sprintf(`<span class="font-bold text-%s-700 w-32">%s</span>`, theme, esc(group.Category)))
		sb.WriteString(fmt.Sprintf(`<span class="text-stone-600 text-sm">%s</span>`, esc(strings.Join(group.Items, " · "))))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></section>`)

	// Achievements
	if page.Sections.Visibility.Features && len(page.Sections.Features) > 0 {
		sb.WriteString(`<section class="max-w-3xl mx-auto px-6 py-16">`)
		sb.WriteString(fmt.Sprintf(`<h2 class="sans text-sm uppercase tracking-widest text-%s-700 font-bold mb-6">Milestones</h2>`, theme))
		sb.WriteString(`<ul class="space-y-4">`)
		for i, achievement := range page.Sections.Features {
			sb.WriteString(fmt.Sprintf(`<li class="flex gap-4"><span class="sans text-%s-600 font-bold">%02d</span><span class="text-stone-700">%s</span></li>`, theme, i+1, esc(achievement)))
		}
		sb.WriteString(`</ul></section>`)
	}

	// Project timeline with alternating rows
	sb.WriteString(`<section class="bg-white border-y border-stone-200 py-20"><div class="max-w-5xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-4xl font-bold text-center mb-16">Case Studies<span class="text-%s-600">.</span></h2>`, theme))
	slots := len(page.Images)
	if slots == 0 {
		slots = 3
	}
	for i := 0; i < slots; i++ {
		src, alt := pageImage(page, i, 1000, 700)
		rowClass := "grid md:grid-cols-2 gap-10 items-center mb-20"
		imageFirst := i%2 == 0
		sb.WriteString(fmt.Sprintf(`<div class="%s">`, rowClass))
		if imageFirst {
			sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="rounded-lg shadow-lg w-full object-cover" loading="lazy">`, esc(src), esc(alt)))
		}
		sb.WriteString(`<div>`)
		sb.WriteString(fmt.Sprintf(`<span class="sans text-sm font-bold text-%s-600 uppercase tracking-widest">Project %02d</span>`, theme, i+1))
		sb.WriteString(fmt.Sprintf(`<h3 class="mt-2 text-2xl font-bold">%s</h3>`, esc(alt)))
		sb.WriteString(fmt.Sprintf(`<p class="mt-4 text-stone-600 leading-relaxed">%s</p>`, esc(page.Tagline)))
		sb.WriteString(`</div>`)
		if !imageFirst {
			sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="rounded-lg shadow-lg w-full object-cover" loading="lazy">`, esc(src), esc(alt)))
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></section>`)

	// Testimonials as pull quotes
	if page.Sections.Visibility.Testimonials {
		sb.WriteString(`<section class="max-w-3xl mx-auto px-6 py-20">`)
		for _, t := range page.Sections.Testimonials {
			sb.WriteString(fmt.Sprintf(`<blockquote class="border-l-4 border-%s-500 pl-6 mb-12">`, theme))
			sb.WriteString(fmt.Sprintf(`<p class="text-2xl leading-relaxed text-stone-700">&ldquo;%s&rdquo;</p>`, esc(t.Quote)))
			sb.WriteString(fmt.Sprintf(`<footer class="sans mt-4 text-sm"><span class="font-bold">%s</span><span class="text-stone-500"> · %s</span><span class="ml-3 text-%s-500">%s</span></footer>`,
				esc(t.Name), esc(t.Role), theme, starRating(t.Rating)))
			sb.WriteString(`</blockquote>`)
		}
		sb.WriteString(`</section>`)
	}

	// FAQ
	if page.Sections.Visibility.FAQ {
		sb.WriteString(`<section class="bg-white border-t border-stone-200 py-20"><div class="max-w-3xl mx-auto px-6">`)
		sb.WriteString(`<h2 class="text-3xl font-bold text-center mb-10">Common Questions</h2>`)
		for _, item := range page.Sections.FAQ {
			sb.WriteString(fmt.Sprintf(`<div class="mb-8"><h3 class="sans font-bold text-%s-700">%s</h3><p class="mt-2 text-stone-600">%s</p></div>`,
				theme, esc(item.Question), esc(item.Answer)))
		}
		sb.WriteString(`</div></section>`)
	}

	// Contact
	sb.WriteString(`<section id="contact" class="py-20"><div class="max-w-xl mx-auto px-6 sans">`)
	sb.WriteString(sectionHeading("Start a Conversation", theme))
	sb.WriteString(fmt.Sprintf(`<p class="text-center text-stone-600 mb-8">%s</p>`, esc(page.Sections.CallToAction)))
	sb.WriteString(contactForm(page.ContactFields, theme, "light"))
	sb.WriteString(`</div></section>`)

	sb.WriteString(footer(page.Title, theme, "light"))
	sb.WriteString(ContactFormScript())
	documentClose(&sb)
	return sb.String()
}
