// Package api provides the page rendering endpoints
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/pagecraft-go/html"
	"github.com/AtRiskMedia/pagecraft-go/models"
)

// renderRequest is the render endpoint payload: a layout name plus the raw
// content object. Content is accepted as-is; normalization makes it safe.
type renderRequest struct {
	Layout string             `json:"layout"`
	Data   models.RawPageData `json:"data"`
}

// RenderPageHandler handles POST /api/v1/pages/render: raw content in, one
// complete HTML document out.
func RenderPageHandler(generator *html.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req renderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		document := generator.Render(req.Layout, &req.Data)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
	}
}

// HealthHandler handles GET /api/v1/health
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"layouts": html.Layouts(),
		})
	}
}
