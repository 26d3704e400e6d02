// Package templates provides the high-energy event page layout
package templates

import (
	"fmt"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/config"
	"github.com/AtRiskMedia/pagecraft-go/models"
)

// countdownAnchor renders the shared countdown target. The deadline travels on
// a data attribute so the embedded script stays content-independent; an empty
// date leaves the attribute off and the script applies its fallback.
func countdownAnchor(eventDate, class string) string {
	if eventDate != "" {
		return fmt.Sprintf(`<div id="countdown" data-event-date="%s" class="%s">--d --h --m</div>`, esc(eventDate), class)
	}
	return fmt.Sprintf(`<div id="countdown" class="%s">--d --h --m</div>`, class)
}

// RenderEventNeon renders the high-energy event variant: neon-on-black hero
// with countdown, metrics strip, schedule, highlights, partners, passes, and
// contact.
func RenderEventNeon(page *models.PageContent) string {
	theme := page.ThemeColor
	hex := themeBaseHex(theme)
	var sb strings.Builder

	style := fmt.Sprintf(`.neon-text { text-shadow: 0 0 10px %s, 0 0 40px %s; }
.neon-border { box-shadow: 0 0 12px %s55, inset 0 0 12px %s22; }
.hero-grid { background-image: linear-gradient(%s22 1px, transparent 1px), linear-gradient(90deg, %s22 1px, transparent 1px); background-size: 48px 48px; }`,
		hex, hex, hex, hex, hex, hex)

	documentOpen(&sb, page.Title, page.Description, style, "bg-black text-white antialiased")

	// Hero with countdown
	sb.WriteString(`<header class="hero-grid min-h-screen flex flex-col">`)
	sb.WriteString(`<nav class="max-w-6xl mx-auto w-full px-6 py-6 flex items-center justify-between">`)
	sb.WriteString(fmt.Sprintf(`<span class="text-lg font-black uppercase tracking-widest">%s</span>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<a href="#passes" class="px-5 py-2 rounded-full bg-%s-500 hover:bg-%s-400 text-sm font-bold uppercase transition-colors">Get Passes</a>`, theme, theme))
	sb.WriteString(`</nav>`)
	sb.WriteString(`<div class="flex-1 flex flex-col items-center justify-center text-center px-6 py-16">`)
	sb.WriteString(fmt.Sprintf(`<h1 class="neon-text text-5xl md:text-7xl font-black uppercase tracking-tight text-%s-400">%s</h1>`, theme, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-6 text-xl md:text-2xl text-gray-300 max-w-2xl">%s</p>`, esc(page.Tagline)))
	sb.WriteString(countdownAnchor(page.EventDate, fmt.Sprintf("mt-10 neon-border rounded-2xl px-10 py-6 text-4xl md:text-5xl font-mono font-bold text-%s-300", theme)))
	sb.WriteString(fmt.Sprintf(`<a href="#contact" class="mt-10 px-10 py-4 rounded-full bg-%s-500 hover:bg-%s-400 font-bold uppercase tracking-wide transition-colors">Count Me In</a>`, theme, theme))
	sb.WriteString(`</div>`)
	sb.WriteString(`</header>`)

	// Metrics
	sb.WriteString(`<section class="border-y border-white/10 bg-gray-950"><div class="max-w-6xl mx-auto px-6 py-12 grid grid-cols-2 md:grid-cols-4 gap-8 text-center">`)
	for _, metric := range page.Sections.Metrics {
		sb.WriteString(fmt.Sprintf(`<div><div class="neon-text text-4xl font-black text-%s-400">%s</div><div class="mt-2 text-xs uppercase tracking-widest text-gray-500">%s</div></div>`,
			theme, esc(metric.Value), esc(metric.Label)))
	}
	sb.WriteString(`</div></section>`)

	// Schedule
	sb.WriteString(`<section class="py-20"><div class="max-w-4xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-4xl font-black uppercase text-center mb-12">Line<span class="text-%s-400">up</span></h2>`, theme))
	for _, item := range page.Sections.Schedule {
		sb.WriteString(`<div class="flex gap-6 items-baseline border-b border-white/10 py-5">`)
		sb.WriteString(fmt.Sprintf(`<span class="font-mono text-%s-400 w-20 shrink-0">%s</span>`, theme, esc(item.Time)))
		sb.WriteString(`<div>`)
		sb.WriteString(fmt.Sprintf(`<h3 class="font-bold text-lg">%s</h3>`, esc(item.Title)))
		if item.Speaker != "" {
			sb.WriteString(fmt.Sprintf(`<p class="text-sm text-gray-500">%s</p>`, esc(item.Speaker)))
		}
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</div></section>`)

	// Highlights
	if page.Sections.Visibility.Features && len(page.Sections.Features) > 0 {
		sb.WriteString(`<section class="py-20 bg-gray-950 border-y border-white/10"><div class="max-w-5xl mx-auto px-6">`)
		sb.WriteString(fmt.Sprintf(`<h2 class="text-4xl font-black uppercase text-center mb-12">Why <span class="text-%s-400">Come</span></h2>`, theme))
		sb.WriteString(`<div class="grid md:grid-cols-2 gap-6">`)
		for _, feature := range page.Sections.Features {
			sb.WriteString(fmt.Sprintf(`<div class="neon-border rounded-xl bg-black px-6 py-5 font-semibold">%s</div>`, esc(feature)))
		}
		sb.WriteString(`</div></div></section>`)
	}

	// Gallery strip
	if len(page.Images) > 0 {
		sb.WriteString(`<section class="py-12"><div class="max-w-6xl mx-auto px-6 grid grid-cols-2 md:grid-cols-4 gap-4">`)
		for i := 0; i < 4; i++ {
			src, alt := pageImage(page, i, 600, 600)
			sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="rounded-xl h-40 w-full object-cover" loading="lazy">`, esc(src), esc(alt)))
		}
		sb.WriteString(`</div></section>`)
	}

	// Partners
	sb.WriteString(`<section class="py-16 border-t border-white/10"><div class="max-w-5xl mx-auto px-6 text-center">`)
	sb.WriteString(`<h2 class="text-sm uppercase tracking-widest text-gray-500 font-bold mb-8">Powered By</h2>`)
	sb.WriteString(`<div class="flex flex-wrap justify-center gap-4">`)
	for _, partner := range page.Sections.Partners {
		label := partner.Name
		if partner.Tier != "" {
			label = fmt.Sprintf("%s · %s", partner.Name, partner.Tier)
		}
		sb.WriteString(fmt.Sprintf(`<span class="px-6 py-3 rounded-full border border-white/20 text-gray-300">%s</span>`, esc(label)))
	}
	sb.WriteString(`</div></div></section>`)

	// Passes
	sb.WriteString(`<section id="passes" class="py-20 bg-gray-950 border-y border-white/10"><div class="max-w-6xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-4xl font-black uppercase text-center mb-12">Pass<span class="text-%s-400">es</span></h2>`, theme))
	sb.WriteString(`<div class="grid md:grid-cols-3 gap-8">`)
	for _, pass := range page.Sections.Passes {
		cardClass := "rounded-2xl border border-white/15 bg-black p-8 flex flex-col"
		if pass.Featured {
			cardClass = "neon-border rounded-2xl bg-black p-8 flex flex-col"
		}
		sb.WriteString(fmt.Sprintf(`<div class="%s">`, cardClass))
		sb.WriteString(fmt.Sprintf(`<h3 class="font-black uppercase tracking-wide">%s</h3>`, esc(pass.Name)))
		sb.WriteString(fmt.Sprintf(`<div class="mt-2 text-4xl font-black text-%s-400">%s</div>`, theme, esc(pass.Price)))
		sb.WriteString(`<ul class="mt-6 space-y-2 flex-1 text-gray-400 text-sm">`)
		for _, perk := range pass.Perks {
			sb.WriteString(fmt.Sprintf(`<li>&#9656; %s</li>`, esc(perk)))
		}
		sb.WriteString(`</ul>`)
		sb.WriteString(fmt.Sprintf(`<a href="#contact" class="mt-8 text-center px-6 py-3 rounded-full bg-%s-500 hover:bg-%s-400 font-bold uppercase text-sm transition-colors">Grab %s</a>`, theme, theme, esc(pass.Name)))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)

	// Contact
	sb.WriteString(`<section id="contact" class="py-20"><div class="max-w-xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-4xl font-black uppercase text-center">Get <span class="text-%s-400">Updates</span></h2>`, theme))
	sb.WriteString(fmt.Sprintf(`<p class="text-center text-gray-400 mt-4 mb-8">%s</p>`, esc(page.Sections.CallToAction)))
	sb.WriteString(contactForm(page.ContactFields, theme, "dark"))
	sb.WriteString(`</div></section>`)

	sb.WriteString(footer(page.Title, theme, "dark"))
	sb.WriteString(ContactFormScript())
	sb.WriteString(CountdownScript(config.CountdownFallbackDays))
	documentClose(&sb)
	return sb.String()
}
