// Package templates provides the general-business page layout
package templates

import (
	"fmt"
	"strings"

	"github.com/AtRiskMedia/pagecraft-go/models"
)

// RenderBusiness renders the general-business layout: hero, stats strip,
// services, testimonials, pricing, FAQ, contact, and a newsletter band.
func RenderBusiness(page *models.PageContent) string {
	theme := page.ThemeColor
	var sb strings.Builder

	documentOpen(&sb, page.Title, page.Description, businessStyle(theme), "bg-gray-50 text-gray-900 antialiased")

	businessHero(&sb, page, theme)
	businessStats(&sb, page, theme)
	if page.Sections.Visibility.Services {
		businessServices(&sb, page, theme)
	}
	if page.Sections.Visibility.Features {
		businessAbout(&sb, page, theme)
	}
	if page.Sections.Visibility.Testimonials {
		businessTestimonials(&sb, page, theme)
	}
	businessPricing(&sb, page, theme)
	if page.Sections.Visibility.FAQ {
		businessFAQ(&sb, page, theme)
	}
	businessContact(&sb, page, theme)
	businessNewsletter(&sb, page, theme)
	sb.WriteString(footer(page.Title, theme, "light"))

	sb.WriteString(ContactFormScript())
	documentClose(&sb)
	return sb.String()
}

func businessStyle(theme string) string {
	hex := themeBaseHex(theme)
	return fmt.Sprintf(`.hero-gradient { background: linear-gradient(135deg, %s 0%%, #111827 100%%); }
.card-lift { transition: transform .2s ease, box-shadow .2s ease; }
.card-lift:hover { transform: translateY(-4px); box-shadow: 0 20px 40px rgba(0,0,0,.12); }
details summary::-webkit-details-marker { display: none; }`, hex)
}

func businessHero(sb *strings.Builder, page *models.PageContent, theme string) {
	heroImg, heroAlt := pageImage(page, 0, 1600, 900)

	sb.WriteString(`<header class="hero-gradient text-white">`)
	sb.WriteString(`<nav class="max-w-6xl mx-auto px-6 py-6 flex items-center justify-between">`)
	sb.WriteString(fmt.Sprintf(`<span class="text-xl font-bold">%s</span>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<a href="#contact" class="px-5 py-2 rounded-full bg-%s-500 hover:bg-%s-400 text-sm font-semibold transition-colors">Contact Us</a>`, theme, theme))
	sb.WriteString(`</nav>`)
	sb.WriteString(`<div class="max-w-6xl mx-auto px-6 py-20 grid md:grid-cols-2 gap-12 items-center">`)
	sb.WriteString(`<div>`)
	sb.WriteString(fmt.Sprintf(`<h1 class="text-4xl md:text-5xl font-extrabold leading-tight">%s</h1>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-4 text-xl text-gray-200">%s</p>`, esc(page.Tagline)))
	sb.WriteString(fmt.Sprintf(`<div class="mt-8 flex flex-wrap gap-4"><a href="#contact" class="px-8 py-3 rounded-lg bg-%s-500 hover:bg-%s-400 font-semibold transition-colors">Get Started</a><a href="#services" class="px-8 py-3 rounded-lg border border-white/40 hover:bg-white/10 font-semibold transition-colors">Our Services</a></div>`, theme, theme))
	sb.WriteString(`</div>`)
	sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="rounded-2xl shadow-2xl w-full object-cover" loading="lazy">`, esc(heroImg), esc(heroAlt)))
	sb.WriteString(`</div>`)
	sb.WriteString(`</header>`)
}

func businessStats(sb *strings.Builder, page *models.PageContent, theme string) {
	if len(page.Sections.Metrics) == 0 {
		return
	}
	sb.WriteString(`<section class="bg-white border-b border-gray-100"><div class="max-w-6xl mx-auto px-6 py-12 grid grid-cols-2 md:grid-cols-4 gap-8 text-center">`)
	for _, metric := range page.Sections.Metrics {
		sb.WriteString(fmt.Sprintf(`<div><div class="text-3xl md:text-4xl font-extrabold text-%s-600">%s</div><div class="mt-1 text-sm uppercase tracking-wide text-gray-500">%s</div></div>`,
			theme, esc(metric.Value), esc(metric.Label)))
	}
	sb.WriteString(`</div></section>`)
}

func businessServices(sb *strings.Builder, page *models.PageContent, theme string) {
	sb.WriteString(`<section id="services" class="py-20"><div class="max-w-6xl mx-auto px-6">`)
	sb.WriteString(sectionHeading("What We Offer", theme))
	sb.WriteString(`<div class="grid md:grid-cols-3 gap-8">`)
	for _, svc := range page.Sections.Services {
		icon := svc.Icon
		if icon == "" {
			icon = "✦"
		}
		sb.WriteString(fmt.Sprintf(`<div class="card-lift bg-white rounded-2xl shadow p-8"><div class="text-4xl">%s</div><h3 class="mt-4 text-xl font-bold">%s</h3><p class="mt-2 text-gray-600">%s</p></div>`,
			esc(icon), esc(svc.Title), esc(svc.Description)))
	}
	sb.WriteString(`</div></div></section>`)
}

func businessAbout(sb *strings.Builder, page *models.PageContent, theme string) {
	aboutImg, aboutAlt := pageImage(page, 1, 1000, 800)

	sb.WriteString(`<section class="py-20 bg-white"><div class="max-w-6xl mx-auto px-6 grid md:grid-cols-2 gap-12 items-center">`)
	sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" class="rounded-2xl shadow-lg w-full object-cover" loading="lazy">`, esc(aboutImg), esc(aboutAlt)))
	sb.WriteString(`<div>`)
	sb.WriteString(fmt.Sprintf(`<h2 class="text-3xl font-bold">Why Choose %s</h2>`, esc(page.Title)))
	sb.WriteString(fmt.Sprintf(`<p class="mt-4 text-gray-600">%s</p>`, esc(page.Sections.About)))
	sb.WriteString(`<ul class="mt-6 space-y-3">`)
	for _, feature := range page.Sections.Features {
		sb.WriteString(fmt.Sprintf(`<li class="flex items-start gap-3"><span class="mt-1 text-%s-600">&#10003;</span><span>%s</span></li>`, theme, esc(feature)))
	}
	sb.WriteString(`</ul>`)
	sb.WriteString(`</div></div></section>`)
}

func businessTestimonials(sb *strings.Builder, page *models.PageContent, theme string) {
	sb.WriteString(`<section class="py-20"><div class="max-w-6xl mx-auto px-6">`)
	sb.WriteString(sectionHeading("What Our Clients Say", theme))
	sb.WriteString(`<div class="grid md:grid-cols-2 gap-8">`)
	for _, t := range page.Sections.Testimonials {
		sb.WriteString(`<div class="bg-white rounded-2xl shadow p-8">`)
		sb.WriteString(fmt.Sprintf(`<div class="text-%s-500 text-lg" aria-label="rating %d of 5">%s</div>`, theme, t.Rating, starRating(t.Rating)))
		sb.WriteString(fmt.Sprintf(`<p class="mt-4 text-gray-700 italic">&ldquo;%s&rdquo;</p>`, esc(t.Quote)))
		sb.WriteString(fmt.Sprintf(`<div class="mt-6 font-semibold">%s</div>`, esc(t.Name)))
		if t.Role != "" {
			sb.WriteString(fmt.Sprintf(`<div class="text-sm text-gray-500">%s</div>`, esc(t.Role)))
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)
}

func businessPricing(sb *strings.Builder, page *models.PageContent, theme string) {
	if len(page.Sections.Passes) == 0 {
		return
	}
	sb.WriteString(`<section class="py-20 bg-white"><div class="max-w-6xl mx-auto px-6">`)
	sb.WriteString(sectionHeading("Plans & Pricing", theme))
	sb.WriteString(`<div class="grid md:grid-cols-3 gap-8">`)
	for _, pass := range page.Sections.Passes {
		cardClass := "card-lift rounded-2xl border border-gray-200 p-8 flex flex-col"
		badge := ""
		if pass.Featured {
			cardClass = fmt.Sprintf("card-lift rounded-2xl border-2 border-%s-500 p-8 flex flex-col relative", theme)
			badge = fmt.Sprintf(`<span class="absolute -top-3 left-1/2 -translate-x-1/2 px-4 py-1 rounded-full bg-%s-500 text-white text-xs font-bold uppercase tracking-wide">Popular</span>`, theme)
		}
		sb.WriteString(fmt.Sprintf(`<div class="%s">%s`, cardClass, badge))
		sb.WriteString(fmt.Sprintf(`<h3 class="text-xl font-bold">%s</h3>`, esc(pass.Name)))
		sb.WriteString(fmt.Sprintf(`<div class="mt-2 text-3xl font-extrabold text-%s-600">%s</div>`, theme, esc(pass.Price)))
		sb.WriteString(`<ul class="mt-6 space-y-2 flex-1">`)
		for _, perk := range pass.Perks {
			sb.WriteString(fmt.Sprintf(`<li class="flex items-start gap-2 text-gray-600"><span class="text-%s-500">&#10003;</span>%s</li>`, theme, esc(perk)))
		}
		sb.WriteString(`</ul>`)
		sb.WriteString(fmt.Sprintf(`<a href="#contact" class="mt-8 text-center px-6 py-3 rounded-lg bg-%s-600 hover:bg-%s-700 text-white font-semibold transition-colors">Choose %s</a>`, theme, theme, esc(pass.Name)))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></div></section>`)
}

func businessFAQ(sb *strings.Builder, page *models.PageContent, theme string) {
	sb.WriteString(`<section class="py-20"><div class="max-w-3xl mx-auto px-6">`)
	sb.WriteString(sectionHeading("Frequently Asked Questions", theme))
	for _, item := range page.Sections.FAQ {
		sb.WriteString(`<details class="bg-white rounded-xl shadow mb-4 p-6">`)
		sb.WriteString(fmt.Sprintf(`<summary class="font-semibold cursor-pointer flex justify-between items-center">%s<span class="text-%s-500 ml-4">+</span></summary>`, esc(item.Question), theme))
		sb.WriteString(fmt.Sprintf(`<p class="mt-4 text-gray-600">%s</p>`, esc(item.Answer)))
		sb.WriteString(`</details>`)
	}
	sb.WriteString(`</div></section>`)
}

func businessContact(sb *strings.Builder, page *models.PageContent, theme string) {
	sb.WriteString(`<section id="contact" class="py-20 bg-white"><div class="max-w-xl mx-auto px-6">`)
	sb.WriteString(sectionHeading("Get In Touch", theme))
	sb.WriteString(fmt.Sprintf(`<p class="text-center text-gray-600 mb-8">%s</p>`, esc(page.Sections.CallToAction)))
	sb.WriteString(contactForm(page.ContactFields, theme, "light"))
	sb.WriteString(`</div></section>`)
}

func businessNewsletter(sb *strings.Builder, page *models.PageContent, theme string) {
	sb.WriteString(fmt.Sprintf(`<section class="bg-%s-600 text-white"><div class="max-w-4xl mx-auto px-6 py-16 text-center">`, theme))
	sb.WriteString(`<h2 class="text-2xl md:text-3xl font-bold">Stay in the loop</h2>`)
	sb.WriteString(`<p class="mt-2 text-white/80">Occasional updates, no spam. Unsubscribe anytime.</p>`)
	sb.WriteString(`<form data-contact-form class="mt-8 flex flex-col sm:flex-row gap-3 justify-center">`)
	sb.WriteString(fmt.Sprintf(`<input type="email" id="newsletter-email" name="newsletter-email" placeholder="Your email address" class="px-5 py-3 rounded-lg text-gray-900 w-full sm:w-80 focus:outline-none focus:ring-2 focus:ring-%s-300" required>`, theme))
	sb.WriteString(`<button type="submit" class="px-8 py-3 rounded-lg bg-gray-900 hover:bg-gray-800 font-semibold transition-colors">Subscribe</button>`)
	sb.WriteString(`</form>`)
	sb.WriteString(`</div></section>`)
}
