// Package storage provides form submission persistence
package storage

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Submission is one stored contact form submission
type Submission struct {
	ID        string            `json:"id"`
	SiteID    string            `json:"siteId"`
	FormData  map[string]string `json:"formData"`
	CreatedAt time.Time         `json:"createdAt"`
}

// SaveSubmission stores one form submission and returns its generated ID
func (db *Database) SaveSubmission(siteID string, formData map[string]string) (string, error) {
	encoded, err := json.Marshal(formData)
	if err != nil {
		return "", fmt.Errorf("failed to encode form data: %w", err)
	}

	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()

	_, err = db.Conn.Exec(
		`INSERT INTO form_submissions (id, site_id, form_data) VALUES (?, ?, ?)`,
		id, siteID, string(encoded),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save submission: %w", err)
	}
	return id, nil
}

// ListSubmissions returns the most recent submissions for one site
func (db *Database) ListSubmissions(siteID string, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Conn.Query(
		`SELECT id, site_id, form_data, created_at FROM form_submissions
		 WHERE site_id = ? ORDER BY created_at DESC LIMIT ?`,
		siteID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []Submission
	for rows.Next() {
		var sub Submission
		var encoded string
		if err := rows.Scan(&sub.ID, &sub.SiteID, &encoded, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &sub.FormData); err != nil {
			sub.FormData = map[string]string{}
		}
		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}

// CountSubmissions returns the total submission count for one site
func (db *Database) CountSubmissions(siteID string) (int, error) {
	var count int
	err := db.Conn.QueryRow(
		`SELECT COUNT(*) FROM form_submissions WHERE site_id = ?`, siteID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}
