// Package email provides email client functionality
package email

import (
	"fmt"
	"os"

	"github.com/resendlabs/resend-go"

	"github.com/AtRiskMedia/pagecraft-go/email/templates"
)

type Client struct {
	resend    *resend.Client
	fromEmail string
	fromName  string
}

// NewClient creates a resend-backed email client. Returns an error when the
// API key is not configured; callers treat email as optional.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := os.Getenv("EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@yourdomain.com"
	}

	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "PageCraft"
	}

	return &Client{
		resend:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// SendSubmissionNotification emails the site owner about a new form submission
func (c *Client) SendSubmissionNotification(siteID, to string, formData map[string]string) error {
	content := templates.GetSubmissionNotificationContent(templates.NotificationProps{
		SiteID:   siteID,
		FormData: formData,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Content: content,
	})

	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: fmt.Sprintf("New submission for %s", siteID),
		Html:    htmlContent,
	}

	_, err := c.resend.Emails.Send(request)
	if err != nil {
		return fmt.Errorf("failed to send submission notification: %w", err)
	}

	return nil
}
