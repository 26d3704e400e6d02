// Package config provides centralized default values for PageCraft
package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile loads the optional .env file exactly once, before any default is
// evaluated. Values already present in the environment win.
func loadEnvFile() {
	envLoaded.Do(func() {
		_ = godotenv.Load()
	})
}

// getEnvInt reads environment variable with fallback to default
func getEnvInt(key string, defaultValue int) int {
	loadEnvFile()
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvString reads environment variable with string fallback
func getEnvString(key string, defaultValue string) string {
	loadEnvFile()
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// Server Configuration
var (
	Port = getEnvString("PORT", "8080")
)

// Rendering Configuration
var (
	// DefaultThemeColor is the token used when a page supplies no usable color
	DefaultThemeColor = getEnvString("DEFAULT_THEME_COLOR", "purple")

	// TailwindCDN is the utility-CSS framework reference embedded in every document head
	TailwindCDN = getEnvString("TAILWIND_CDN", "https://cdn.tailwindcss.com")

	// SubmissionEndpoint is the relative path the generated contact-form script posts to
	SubmissionEndpoint = getEnvString("FORM_SUBMISSION_ENDPOINT", "/api/v1/forms/submit")

	// PlaceholderImageBase serves seeded placeholder images for unfilled slots
	PlaceholderImageBase = getEnvString("PLACEHOLDER_IMAGE_BASE", "https://picsum.photos/seed")

	// CountdownFallbackDays is how far out the countdown deadline defaults when
	// an event page carries no parsable date
	CountdownFallbackDays = getEnvInt("COUNTDOWN_FALLBACK_DAYS", 30)
)

// Storage Configuration
var (
	SQLitePath    = getEnvString("SQLITE_PATH", "./data/pagecraft.db")
	TursoDatabase = getEnvString("TURSO_DATABASE_URL", "")
	TursoToken    = getEnvString("TURSO_AUTH_TOKEN", "")
)

// Email Configuration
var (
	NotifyEmailTo = getEnvString("FORM_NOTIFY_EMAIL", "")
)
