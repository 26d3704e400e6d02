// Package html provides the page generation entry point
package html

import (
	"github.com/AtRiskMedia/pagecraft-go/content"
	"github.com/AtRiskMedia/pagecraft-go/html/templates"
	"github.com/AtRiskMedia/pagecraft-go/models"
)

// Layout names accepted by the generator
const (
	LayoutBusiness          = "business"
	LayoutPortfolioShowcase = "portfolio-showcase"
	LayoutPortfolioCase     = "portfolio-case-study"
	LayoutPortfolioMasonry  = "portfolio-masonry"
	LayoutEventNeon         = "event-neon"
	LayoutEventElegant      = "event-elegant"
	LayoutEventCarnival     = "event-carnival"
)

// Generator renders complete HTML documents from raw page data. It holds no
// state; concurrent renders need no coordination.
type Generator struct{}

// NewGenerator creates a new page generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Layouts returns the supported layout names
func Layouts() []string {
	return []string{
		LayoutBusiness,
		LayoutPortfolioShowcase,
		LayoutPortfolioCase,
		LayoutPortfolioMasonry,
		LayoutEventNeon,
		LayoutEventElegant,
		LayoutEventCarnival,
	}
}

// Render normalizes the raw content against the layout family's defaults and
// produces one complete HTML document. An unknown layout name renders the
// business layout rather than failing; raw may be nil.
func (g *Generator) Render(layout string, raw *models.RawPageData) string {
	switch layout {
	case LayoutPortfolioShowcase:
		return templates.RenderPortfolioShowcase(content.BuildPageContent(raw, content.PortfolioDefaults()))
	case LayoutPortfolioCase:
		return templates.RenderPortfolioCaseStudy(content.BuildPageContent(raw, content.PortfolioDefaults()))
	case LayoutPortfolioMasonry:
		return templates.RenderPortfolioMasonry(content.BuildPageContent(raw, content.PortfolioDefaults()))
	case LayoutEventNeon:
		return templates.RenderEventNeon(content.BuildPageContent(raw, content.EventDefaults()))
	case LayoutEventElegant:
		return templates.RenderEventElegant(content.BuildPageContent(raw, content.EventDefaults()))
	case LayoutEventCarnival:
		return templates.RenderEventCarnival(content.BuildPageContent(raw, content.EventDefaults()))
	default:
		return templates.RenderBusiness(content.BuildPageContent(raw, content.BusinessDefaults()))
	}
}
