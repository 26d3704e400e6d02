// Package templates provides the campus-carnival event page layout
package templates

import (
	"fmt"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/config"
	"github.com/AtRiskMedia/pagecraft-go/models"
)

// RenderEventCarnival renders the playful campus-carnival event variant:
// confetti-bright hero with a ticker tagline and countdown, chunky metric
// tiles, a zig-zag schedule, highlight stickers, partner marquee, passes as
// ticket stubs, and contact.
func RenderEventCarnival(page *models.PageContent) string {
	theme := page.ThemeColor
	hex := themeBaseHex(theme)
	var sb strings.Builder

	style := fmt.Sprintf(`.tilt-l { transform: rotate(-2deg); }
.tilt-r { transform: rotate(2deg); }
.sticker { border: 3px solid #111; box-shadow: 4px 4px 0 #111; }
.ticket { border: 3px dashed %s; }
.marquee { white-space: nowrap; overflow: hidden; }
.dots-bg { background-image: radial-gradient(%s33 2px, transparent 2px); background-size: 24px 24px; }`, hex, hex)

	documentOpen(&sb, page.Title, page.Description, style, "bg-yellow-50 text-gray-900 antialiased")

	// Hero
	sb.WriteString(`<header class="dots-bg">`)
	sb.WriteString(`<div class="max-w-5xl mx-auto px-6 pt-20 pb-16 text-center">`)
	sb.WriteString(fmt.Sprintf(`<span class="sticker inline-block bg-%s-400 px-6 py-2 rounded-full font-black uppercase tracking-wide tilt-l">It's happening!</span>`, theme))
	sb.WriteString(fmt.Sprintf(`<h1 class="mt-8 text-5xl md:text-7xl font-black">%s</h1>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-4 text-2xl font-semibold text-%s-700">%s</p>`, theme, esc(page.Tagline)))
	sb.WriteString(`<div class="mt-10 inline-block sticker bg-white rounded-2xl px-10 py-6 tilt-r">`)
	sb.WriteString(`<p class="text-xs font-black uppercase tracking-widest mb-1">Kicks off in</p>`)
	sb.WriteString(countdownAnchor(page.EventDate, fmt.Sprintf("text-4xl font-black text-%s-600 tabular-nums", theme)))
	sb.WriteString(`</div>`)
	sb.WriteString(fmt.Sprintf(`<div class="mt-10"><a href="#passes" class="sticker inline-block bg-%s-500 text-white px-10 py-4 rounded-full font-black uppercase text-lg hover:bg-%s-600 transition-colors">Grab a Ticket</a></div>`, theme, theme))
	sb.WriteString(`</div>`)
	sb.WriteString(`</header>`)

	// Metric tiles
	sb.WriteString(`<section class="py-16"><div class="max-w-5xl mx-auto px-6 grid grid-cols-2 md:grid-cols-4 gap-6">`)
	tilts := []string{"tilt-l", "tilt-r"}
	for i, metric := range page.Sections.Metrics {
		sb.WriteString(fmt.Sprintf(`<div class="sticker bg-white rounded-2xl p-6 text-center %s"><div class="text-3xl font-black text-%s-600">%s</div><div class="mt-1 text-xs font-bold uppercase tracking-wide">%s</div></div>`,
			tilts[i%2], theme, esc(metric.Value), esc(metric.Label)))
	}
	sb.WriteString(`</div></section>`)

	// Schedule zig-zag
	sb.WriteString(fmt.Sprintf(`<section class="bg-%s-500 py-20"><div class="max-w-3xl mx-auto px-6">`, theme))
	sb.WriteString(`<h2 class="text-4xl font-black text-white text-center mb-12">The Rundown</h2>`)
	for i, item := range page.Sections.Schedule {
		tilt := tilts[i%2]
		sb.WriteString(fmt.Sprintf(`<div class="sticker bg-white rounded-xl p-5 mb-6 %s flex gap-4 items-baseline">`, tilt))
		sb.WriteString(fmt.Sprintf(`<span class="font-black text-%s-600 w-20 shrink-0">%s</span>`, theme, esc(item.Time)))
		sb.WriteString(`<div>`)
		sb.WriteString(fmt.Sprintf(`<h3 class="font-black">%s</h3>`, esc(item.Title)))
		if item.Speaker != "" {
			sb.WriteString(fmt.Sprintf(`<p class="text-sm text-gray-600">with %s</p>`, esc(item.Speaker)))
		}
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</div></section>`)

	// Highlights stickers
	if page.Sections.Visibility.Features && len(page.Sections.Features) > 0 {
		sb.WriteString(`<section class="py-20 dots-bg"><div class="max-w-4xl mx-auto px-6 text-center">`)
		sb.WriteString(`<h2 class="text-4xl font-black mb-12">Don't Miss</h2>`)
		sb.WriteString(`<div class="flex flex-wrap justify-center gap-4">`)
		stickerColors := []string{"bg-white", fmt.Sprintf("bg-%s-100", theme), "bg-yellow-100", "bg-white"}
		for i, feature := range page.Sections.Features {
			sb.WriteString(fmt.Sprintf(`<span class="sticker %s %s rounded-full px-6 py-3 font-bold">%s</span>`,
				stickerColors[i%len(stickerColors)], tilts[i%2], esc(feature)))
		}
		sb.WriteString(`</div></div></section>`)
	}

	// Photo strip
	if len(page.Images) > 0 {
		sb.WriteString(`<section class="pb-16"><div class="max-w-5xl mx-auto px-6 grid grid-cols-3 gap-4">`)
		for i := 0; i < 3; i++ {
			src, alt := pageImage(page, i, 700, 500)
			sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="sticker rounded-xl h-40 w-full object-cover %s" loading="lazy">`, esc(src), esc(alt), tilts[i%2]))
		}
		sb.WriteString(`</div></section>`)
	}

	// Partner marquee
	sb.WriteString(`<section class="border-y-4 border-gray-900 bg-white py-6"><div class="marquee max-w-full px-6 text-center">`)
	var names []string
	for _, partner := range page.Sections.Partners {
		names = append(names, esc(partner.Name))
	}
	sb.WriteString(fmt.Sprintf(`<span class="font-black uppercase tracking-widest text-gray-700">%s</span>`, strings.Join(names, `&nbsp;&nbsp;&#9733;&nbsp;&nbsp;`)))
	sb.WriteString(`</div></section>`)

	// Passes as ticket stubs
	sb.WriteString(`<section id="passes" class="py-20"><div class="max-w-5xl mx-auto px-6">`)
	sb.WriteString(`<h2 class="text-4xl font-black text-center mb-12">Tickets</h2>`)
	sb.WriteString(`<div class="grid md:grid-cols-3 gap-8">`)
	for _, pass := range page.Sections.Passes {
		cardClass := "ticket bg-white rounded-2xl p-8 flex flex-col"
		if pass.Featured {
			cardClass = fmt.Sprintf("ticket bg-%s-50 rounded-2xl p-8 flex flex-col tilt-l", theme)
		}
		sb.WriteString(fmt.Sprintf(`<div class="%s">`, cardClass))
		if pass.Featured {
			sb.WriteString(fmt.Sprintf(`<span class="self-start sticker bg-%s-400 text-xs font-black uppercase px-3 py-1 rounded-full mb-4">Crowd Favorite</span>`, theme))
		}
		sb.WriteString(fmt.Sprintf(`<h3 class="font-black text-xl">%s</h3>`, esc(pass.Name)))
		sb.WriteString(fmt.Sprintf(`<div class="mt-2 text-4xl font-black text-%s-600">%s</div>`, theme, esc(pass.Price)))
		sb.WriteString(`<ul class="mt-6 space-y-2 flex-1 text-gray-700">`)
		for _, perk := range pass.Perks {
			sb.WriteString(fmt.Sprintf(`<li class="font-semibold">&#127903; %s</li>`, esc(perk)))
		}
		sb.WriteString(`</ul>`)
		sb.WriteString(fmt.Sprintf(`<a href="#contact" class="mt-8 text-center sticker bg-%s-500 text-white px-6 py-3 rounded-full font-black uppercase hover:bg-%s-600 transition-colors">Snag It</a>`, theme, theme))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)

	// Contact
	sb.WriteString(`<section id="contact" class="dots-bg py-20"><div class="max-w-xl mx-auto px-6">`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-4xl font-black text-center">Say Hi!</h2><p class="text-center text-gray-700 mt-4 mb-8 font-semibold">%s</p>`, esc(page.Sections.CallToAction)))
	sb.WriteString(contactForm(page.ContactFields, theme, "light"))
	sb.WriteString(`</div></section>`)

	sb.WriteString(footer(page.Title, theme, "light"))
	sb.WriteString(ContactFormScript())
	sb.WriteString(CountdownScript(config.CountdownFallbackDays))
	documentClose(&sb)
	return sb.String()
}
