package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Team Size", "team-size"},
		{"Your Message!", "your-message"},
		{"Email", "email"},
		{"  Phone -- Number  ", "phone-number"},
		{"!!!", "contact-field"},
		{"", "contact-field"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FieldName(tt.label), "label %q", tt.label)
	}
}

func TestRenderFormFieldControlTypes(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Email", `<input type="email"`},
		{"Work Email Address", `<input type="email"`},
		{"Phone", `<input type="tel"`},
		{"Mobile Number", `<input type="tel"`},
		{"Message", "<textarea"},
		{"Project Details", "<textarea"},
		{"Your Requirements", "<textarea"},
		{"Team Size", `<input type="number"`},
		{"Attendee Count", `<input type="number"`},
		{"Name", `<input type="text"`},
		{"Company", `<input type="text"`},
	}

	for _, tt := range tests {
		got := RenderFormField(tt.label, "blue", "light")
		assert.Contains(t, got, tt.want, "label %q", tt.label)
	}
}

func TestRenderFormFieldMarkup(t *testing.T) {
	got := RenderFormField("Team Size", "blue", "light")

	assert.Contains(t, got, `name="team-size"`)
	assert.Contains(t, got, `id="team-size"`)
	assert.Contains(t, got, `for="team-size"`)
	assert.Contains(t, got, `min="0"`)
	assert.Contains(t, got, "required")
	assert.Contains(t, got, ">Team Size</label>")
}

func TestRenderFormFieldTextareaRows(t *testing.T) {
	got := RenderFormField("Your Message!", "blue", "light")

	assert.Contains(t, got, `<textarea id="your-message" name="your-message" rows="4"`)
}

func TestRenderFormFieldEmailWinsOverTextarea(t *testing.T) {
	// "Email Message" matches both groups; email is checked first
	got := RenderFormField("Email Message", "blue", "light")
	assert.Contains(t, got, `<input type="email"`)
}

func TestRenderFormFieldVariants(t *testing.T) {
	light := RenderFormField("Name", "rose", "light")
	dark := RenderFormField("Name", "rose", "dark")

	assert.Contains(t, light, "bg-white")
	assert.Contains(t, dark, "bg-white/10")
	assert.Contains(t, light, "ring-rose-500")
	assert.Contains(t, dark, "ring-rose-400")
}

func TestRenderFormFieldEscapesLabel(t *testing.T) {
	got := RenderFormField(`<b>Name</b>`, "blue", "light")

	assert.NotContains(t, got, "<b>Name</b>")
	assert.Contains(t, got, "&lt;b&gt;Name&lt;/b&gt;")
}
