package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AtRiskMedia/pagecraft-go/config"
)

func TestContactFormScript(t *testing.T) {
	got := ContactFormScript()

	assert.True(t, strings.HasPrefix(got, "<script>"))
	assert.True(t, strings.HasSuffix(got, "</script>"))

	assert.Contains(t, got, "fetch('"+config.SubmissionEndpoint+"'")
	assert.NotContains(t, got, "{{ENDPOINT}}", "placeholder is substituted")

	// Submit interception and the site-id injector are both present
	assert.Contains(t, got, "event.preventDefault()")
	assert.Contains(t, got, `form[data-contact-form]`)
	assert.Contains(t, got, `input[name="site-id"]`)
	assert.Contains(t, got, "siteIdentifier")
}

func TestContactFormScriptIsStable(t *testing.T) {
	assert.Equal(t, ContactFormScript(), ContactFormScript())
}

func TestCountdownScript(t *testing.T) {
	got := CountdownScript(14)

	assert.True(t, strings.HasPrefix(got, "<script>"))
	assert.True(t, strings.HasSuffix(got, "</script>"))

	assert.Contains(t, got, "deadline.getDate() + 14")
	assert.NotContains(t, got, "{{FALLBACK_DAYS}}", "placeholder is substituted")

	assert.Contains(t, got, "getElementById('countdown')")
	assert.Contains(t, got, "data-event-date")
	assert.Contains(t, got, "We are LIVE!")
	assert.Contains(t, got, "setInterval(tick, 60000)")
}
