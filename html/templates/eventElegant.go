// Package templates provides the executive event page layout
package templates

import (
	"fmt"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/config"
	"github.com/AtRiskMedia/pagecraft-go/models"
)

// RenderEventElegant renders the executive event variant: a restrained ivory
// palette with gold-leaning accents, a split hero with countdown card, agenda
// table, metrics, partners by tier, passes, and contact.
func RenderEventElegant(page *models.PageContent) string {
	theme := page.ThemeColor
	var sb strings.Builder

	style := fmt.Sprintf(`body { font-family: 'Georgia', serif; }
.sans { font-family: ui-sans-serif, system-ui, sans-serif; }
.accent-rule { border-color: %s; }
.countdown-card { border: 1px solid %s44; }`, themeBaseHex(theme), themeBaseHex(theme))

	documentOpen(&sb, page.Title, page.Description, style, "bg-[#faf8f5] text-gray-900 antialiased")

	// Hero
	heroImg, heroAlt := pageImage(page, 0, 1400, 900)
	sb.WriteString(`<header class="max-w-6xl mx-auto px-6 pt-20 pb-16 grid md:grid-cols-2 gap-12 items-center">`)
	sb.WriteString(`<div>`)
	sb.WriteString(fmt.Sprintf(`<p class="sans text-sm uppercase tracking-[0.3em] text-%s-700">You are invited</p>`, theme))
	sb.WriteString(fmt.Sprintf(`<h1 class="mt-4 text-5xl md:text-6xl leading-tight">%s</h1>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-6 text-xl text-gray-600 italic">%s</p>`, esc(page.Tagline)))
	sb.WriteString(`<div class="countdown-card mt-10 rounded-lg bg-white px-8 py-6 inline-block">`)
	sb.WriteString(`<p class="sans text-xs uppercase tracking-widest text-gray-500 mb-2">Doors open in</p>`)
	sb.WriteString(countdownAnchor(page.EventDate, fmt.Sprintf("sans text-3xl font-semibold text-%s-700 tabular-nums", theme)))
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="rounded-lg shadow-xl w-full object-cover" loading="lazy">`, esc(heroImg), esc(heroAlt)))
	sb.WriteString(`</header>`)

	// Metrics
	sb.WriteString(`<section class="border-y accent-rule bg-white"><div class="max-w-5xl mx-auto px-6 py-10 grid grid-cols-2 md:grid-cols-4 gap-8 text-center sans">`)
	for _, metric := range page.Sections.Metrics {
		sb.WriteString(fmt.Sprintf(`<div><div class="text-3xl font-bold text-%s-700">%s</div><div class="mt-1 text-xs uppercase tracking-widest text-gray-500">%s</div></div>`,
			theme, esc(metric.Value), esc(metric.Label)))
	}
	sb.WriteString(`</div></section>`)

	// About
	sb.WriteString(`<section class="max-w-3xl mx-auto px-6 py-20 text-center">`)
	sb.WriteString(fmt.Sprintf(`<p class="text-2xl leading-relaxed text-gray-700">%s</p>`, esc(page.Sections.About)))
	sb.WriteString(`</section>`)

	// Agenda
	sb.WriteString(`<section class="bg-white border-y accent-rule py-20"><div class="max-w-3xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-4xl text-center mb-4">Programme</h2><div class="w-12 h-px bg-%s-600 mx-auto mb-12"></div>`, theme))
	for _, item := range page.Sections.Schedule {
		sb.WriteString(`<div class="sans grid grid-cols-[6rem,1fr] gap-6 py-4 border-b border-gray-100">`)
		sb.WriteString(fmt.Sprintf(`<span class="text-%s-700 font-semibold">%s</span>`, theme, esc(item.Time)))
		sb.WriteString(`<div>`)
		sb.WriteString(fmt.Sprintf(`<h3 class="font-semibold">%s</h3>`, esc(item.Title)))
		if item.Speaker != "" {
			sb.WriteString(fmt.Sprintf(`<p class="text-sm text-gray-500 mt-1">%s</p>`, esc(item.Speaker)))
		}
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</div></section>`)

	// Highlights
	if page.Sections.Visibility.Features && len(page.Sections.Features) > 0 {
		sb.WriteString(`<section class="py-20"><div class="max-w-4xl mx-auto px-6">`)
		sb.WriteString(`<h2 class="text-4xl text-center mb-12">What Awaits You</h2>`)
		sb.WriteString(`<div class="sans grid sm:grid-cols-2 gap-x-12 gap-y-6">`)
		for _, feature := range page.Sections.Features {
			sb.WriteString(fmt.Sprintf(`<div class="flex items-start gap-3"><span class="text-%s-600 mt-1">&#10022;</span><span class="text-gray-700">%s</span></div>`, theme, esc(feature)))
		}
		sb.WriteString(`</div></div></section>`)
	}

	// Partners grouped with tiers
	sb.WriteString(`<section class="bg-white border-y accent-rule py-16"><div class="max-w-4xl mx-auto px-6 text-center">`)
	sb.WriteString(`<h2 class="sans text-xs uppercase tracking-[0.3em] text-gray-500 mb-10">In Partnership With</h2>`)
	sb.WriteString(`<div class="sans flex flex-wrap justify-center gap-x-12 gap-y-6">`)
	for _, partner := range page.Sections.Partners {
		sb.WriteString(`<div>`)
		sb.WriteString(fmt.Sprintf(`<div class="text-lg font-semibold text-gray-800">%s</div>`, esc(partner.Name)))
		if partner.Tier != "" {
			sb.WriteString(fmt.Sprintf(`<div class="text-xs uppercase tracking-widest text-%s-600 mt-1">%s</div>`, theme, esc(partner.Tier)))
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)

	// Passes
	sb.WriteString(`<section class="py-20"><div class="max-w-5xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-4xl text-center mb-4">Admission</h2><div class="w-12 h-px bg-%s-600 mx-auto mb-12"></div>`, theme))
	sb.WriteString(`<div class="sans grid md:grid-cols-3 gap-8">`)
	for _, pass := range page.Sections.Passes {
		cardClass := "bg-white rounded-lg border border-gray-200 p-8 flex flex-col"
		if pass.Featured {
			cardClass = fmt.Sprintf("bg-white rounded-lg border-2 border-%s-600 p-8 flex flex-col", theme)
		}
		sb.WriteString(fmt.Sprintf(`<div class="%s">`, cardClass))
		sb.WriteString(fmt.Sprintf(`<h3 class="text-sm uppercase tracking-widest text-gray-500">%s</h3>`, esc(pass.Name)))
		sb.WriteString(fmt.Sprintf(`<div class="mt-3 text-3xl font-bold text-%s-700">%s</div>`, theme, esc(pass.Price)))
		sb.WriteString(`<ul class="mt-6 space-y-2 flex-1 text-gray-600 text-sm">`)
		for _, perk := range pass.Perks {
			sb.WriteString(fmt.Sprintf(`<li class="flex items-start gap-2"><span class="text-%s-600">&#8212;</span>%s</li>`, theme, esc(perk)))
		}
		sb.WriteString(`</ul>`)
		sb.WriteString(fmt.Sprintf(`<a href="#contact" class="mt-8 text-center px-6 py-3 rounded bg-%s-700 hover:bg-%s-800 text-white font-semibold transition-colors">Reserve</a>`, theme, theme))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)

	// Contact
	sb.WriteString(`<section id="contact" class="bg-white border-t accent-rule py-20"><div class="max-w-xl mx-auto px-6 sans">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-3xl text-center font-serif">RSVP</h2><p class="text-center text-gray-600 mt-4 mb-8">%s</p>`, esc(page.Sections.CallToAction)))
	sb.WriteString(contactForm(page.ContactFields, theme, "light"))
	sb.WriteString(`</div></section>`)

	sb.WriteString(footer(page.Title, theme, "light"))
	sb.WriteString(ContactFormScript())
	sb.WriteString(CountdownScript(config.CountdownFallbackDays))
	documentClose(&sb)
	return sb.String()
}
