// Package templates provides email notification markup
package templates

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// NotificationProps carries the data for a form-submission notification email
type NotificationProps struct {
	SiteID   string
	FormData map[string]string
}

// GetSubmissionNotificationContent renders the notification body rows
func GetSubmissionNotificationContent(props NotificationProps) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<p style="font-family: Helvetica, sans-serif; font-size: 16px; margin: 0 0 16px;">New contact form submission for site <strong>%s</strong>:</p>`,
		html.EscapeString(props.SiteID)))

	// Stable row order so repeated notifications read the same
	keys := make([]string, 0, len(props.FormData))
	for key := range props.FormData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sb.WriteString(`<table style="border-collapse: collapse; width: 100%; font-family: Helvetica, sans-serif; font-size: 14px;">`)
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(
			`<tr><td style="border: 1px solid #e5e7eb; padding: 8px 12px; font-weight: bold; background: #f9fafb;">%s</td><td style="border: 1px solid #e5e7eb; padding: 8px 12px;">%s</td></tr>`,
			html.EscapeString(key), html.EscapeString(props.FormData[key])))
	}
	sb.WriteString(`</table>`)
	return sb.String()
}

// EmailLayoutProps carries the content for the shared email shell
type EmailLayoutProps struct {
	Content string
}

// GetEmailLayout wraps content in the shared email shell
func GetEmailLayout(props EmailLayoutProps) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 0; background-color: #f4f5f7;">
  <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%%" style="background-color: #f4f5f7;">
    <tr>
      <td align="center" style="padding: 24px;">
        <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="600" style="background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 32px;">
              %s
            </td>
          </tr>
        </table>
        <p style="font-family: Helvetica, sans-serif; font-size: 12px; color: #9ca3af; margin-top: 16px;">Sent by PageCraft</p>
      </td>
    </tr>
  </table>
</body>
</html>`, props.Content)
}
