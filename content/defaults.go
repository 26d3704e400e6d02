// Package content provides the per-layout-family fallback content tables
package content

import (
	"github.com/AtRiskMedia/pagecraft-go/models"
)

// Defaults carries the fallback content one layout family supplies to the
// shared normalizers. Each family gets its own table so normalization logic
// stays shared while the voice of the default copy fits the page type. The
// constructor functions return fresh values so a render pass can never bleed
// into another.
type Defaults struct {
	Tagline       string
	About         string
	CallToAction  string
	Features      []string
	Services      []models.Service
	Testimonials  []models.Testimonial
	FAQ           []models.FAQItem
	Skills        []models.SkillGroup
	Schedule      []models.ScheduleItem
	Metrics       []models.Metric
	Partners      []models.Partner
	Passes        []models.Pass
	ContactFields []string
}

// BusinessDefaults returns the fallback table for general-business pages
func BusinessDefaults() Defaults {
	return Defaults{
		Tagline:      "Quality you can count on",
		About:        "We are a dedicated team committed to delivering outstanding results for every client. Our experience and attention to detail set us apart.",
		CallToAction: "Get in touch today and let's build something great together.",
		Features: []string{
			"Trusted by hundreds of happy customers",
			"Fast turnaround on every project",
			"Transparent pricing with no surprises",
			"Friendly support when you need it",
		},
		Services: []models.Service{
			{Title: "Consultation", Description: "A free first conversation to understand your goals and map out the right approach.", Icon: "💬"},
			{Title: "Implementation", Description: "Hands-on delivery by an experienced team that keeps you informed at every step.", Icon: "🛠️"},
			{Title: "Ongoing Support", Description: "We stay available after launch so small issues never become big ones.", Icon: "🤝"},
		},
		Testimonials: []models.Testimonial{
			{Name: "Alex Morgan", Role: "Small Business Owner", Quote: "Professional, responsive, and the results speak for themselves.", Rating: 5},
			{Name: "Priya Shah", Role: "Operations Manager", Quote: "They delivered ahead of schedule and the quality was excellent.", Rating: 5},
		},
		FAQ: []models.FAQItem{
			{Question: "How do I get started?", Answer: "Reach out through the contact form and we will get back to you within one business day."},
			{Question: "What areas do you serve?", Answer: "We work with clients locally and remotely, wherever the project takes us."},
			{Question: "Do you offer free estimates?", Answer: "Yes, every engagement starts with a free, no-obligation estimate."},
		},
		Metrics: []models.Metric{
			{Label: "Years in Business", Value: "10+"},
			{Label: "Projects Completed", Value: "500+"},
			{Label: "Happy Clients", Value: "350+"},
			{Label: "Satisfaction", Value: "99%"},
		},
		Passes: []models.Pass{
			{Name: "Starter", Price: "$29/mo", Perks: []string{"Core features", "Email support", "Monthly check-in"}},
			{Name: "Growth", Price: "$79/mo", Perks: []string{"Everything in Starter", "Priority support", "Quarterly strategy review"}, Featured: true},
			{Name: "Premium", Price: "$199/mo", Perks: []string{"Everything in Growth", "Dedicated account manager", "Custom integrations"}},
		},
		ContactFields: []string{"Name", "Email", "Phone", "Message"},
	}
}

// PortfolioDefaults returns the fallback table for portfolio pages
func PortfolioDefaults() Defaults {
	return Defaults{
		Tagline:      "Design. Build. Deliver.",
		About:        "I'm a multidisciplinary creator who turns ambitious ideas into polished, working products. Every project gets the same obsessive attention to craft.",
		CallToAction: "Have a project in mind? Let's talk.",
		Features: []string{
			"50+ shipped projects across web and mobile",
			"Featured in three industry showcases",
			"Clients in 12 countries",
		},
		Skills: []models.SkillGroup{
			{Category: "Design", Items: []string{"UI/UX", "Prototyping", "Brand Identity"}},
			{Category: "Development", Items: []string{"Frontend", "APIs", "Performance"}},
			{Category: "Strategy", Items: []string{"Research", "Roadmapping", "Analytics"}},
		},
		Testimonials: []models.Testimonial{
			{Name: "Jordan Lee", Role: "Founder, Bright Labs", Quote: "Rare combination of creative vision and technical depth. Would hire again in a heartbeat.", Rating: 5},
			{Name: "Sam Rivera", Role: "Product Lead", Quote: "Took our vague brief and returned something better than we imagined.", Rating: 5},
		},
		FAQ: []models.FAQItem{
			{Question: "Are you available for freelance work?", Answer: "Yes, I take on a limited number of projects each quarter."},
			{Question: "What does your process look like?", Answer: "Discovery, a focused design sprint, iterative builds, and a polished handoff."},
		},
		ContactFields: []string{"Name", "Email", "Project Details"},
	}
}

// EventDefaults returns the fallback table for event pages
func EventDefaults() Defaults {
	return Defaults{
		Tagline:      "An experience you won't forget",
		About:        "Join us for a day of inspiring sessions, hands-on workshops, and great company. Whether you're a first-timer or a regular, there's something here for you.",
		CallToAction: "Seats are limited. Reserve yours now.",
		Features: []string{
			"Keynotes from industry leaders",
			"Hands-on workshops all afternoon",
			"Networking lounge and live demos",
			"After-party with live music",
		},
		Schedule: []models.ScheduleItem{
			{Time: "09:00", Title: "Doors Open & Registration"},
			{Time: "10:00", Title: "Opening Keynote", Speaker: "To be announced"},
			{Time: "12:30", Title: "Lunch & Networking"},
			{Time: "14:00", Title: "Workshops & Breakout Sessions"},
			{Time: "18:00", Title: "Closing Celebration"},
		},
		Metrics: []models.Metric{
			{Label: "Attendees", Value: "1000+"},
			{Label: "Speakers", Value: "20"},
			{Label: "Workshops", Value: "12"},
			{Label: "Hours of Fun", Value: "10"},
		},
		Partners: []models.Partner{
			{Name: "Community Partner", Tier: "Gold"},
			{Name: "Media Partner", Tier: "Silver"},
		},
		Passes: []models.Pass{
			{Name: "General", Price: "Free", Perks: []string{"Main stage access", "Networking lounge"}},
			{Name: "Pro", Price: "$49", Perks: []string{"Everything in General", "Workshop seats", "Event swag"}, Featured: true},
			{Name: "VIP", Price: "$129", Perks: []string{"Everything in Pro", "Front-row seating", "Speaker dinner invite"}},
		},
		ContactFields: []string{"Name", "Email", "Phone", "Organization", "Team Size", "Message"},
	}
}
