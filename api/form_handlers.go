// Package api provides the form submission ingestion endpoint
package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/pagecraft-go/config"
	"github.com/AtRiskMedia/pagecraft-go/email"
	"github.com/AtRiskMedia/pagecraft-go/storage"
)

// submitRequest matches the payload the embedded contact-form script posts
type submitRequest struct {
	SiteIdentifier string            `json:"siteIdentifier"`
	FormData       map[string]string `json:"formData"`
}

// SubmitFormHandler handles POST /api/v1/forms/submit. The submission is
// stored; the owner notification is best-effort and never fails the request.
func SubmitFormHandler(db *storage.Database, mailer *email.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.SiteIdentifier == "" || len(req.FormData) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "siteIdentifier and formData are required"})
			return
		}

		id, err := db.SaveSubmission(req.SiteIdentifier, req.FormData)
		if err != nil {
			log.Printf("ERROR: failed to save submission for site %s: %v", req.SiteIdentifier, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store submission"})
			return
		}

		if mailer != nil && config.NotifyEmailTo != "" {
			if err := mailer.SendSubmissionNotification(req.SiteIdentifier, config.NotifyEmailTo, req.FormData); err != nil {
				log.Printf("WARN: submission %s stored but notification failed: %v", id, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Thanks! Your message has been received."})
	}
}

// ListSubmissionsHandler handles GET /api/v1/forms/submissions/:siteId
func ListSubmissionsHandler(db *storage.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		siteID := c.Param("siteId")
		submissions, err := db.ListSubmissions(siteID, 50)
		if err != nil {
			log.Printf("ERROR: failed to list submissions for site %s: %v", siteID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load submissions"})
			return
		}

		count, err := db.CountSubmissions(siteID)
		if err != nil {
			count = len(submissions)
		}

		c.JSON(http.StatusOK, gin.H{
			"siteId":      siteID,
			"total":       count,
			"submissions": submissions,
		})
	}
}
