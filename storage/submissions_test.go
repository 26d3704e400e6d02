package storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDatabase(t *testing.T) *Database {
	t.Helper()

	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	db := &Database{Conn: conn}
	require.NoError(t, db.migrate())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndListSubmissions(t *testing.T) {
	db := openTestDatabase(t)

	formData := map[string]string{"Name": "Jo", "Email": "jo@example.com"}
	id, err := db.SaveSubmission("site-a", formData)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = db.SaveSubmission("site-b", map[string]string{"Name": "Other"})
	require.NoError(t, err)

	submissions, err := db.ListSubmissions("site-a", 10)
	require.NoError(t, err)
	require.Len(t, submissions, 1, "listing is scoped to one site")
	assert.Equal(t, id, submissions[0].ID)
	assert.Equal(t, "site-a", submissions[0].SiteID)
	assert.Equal(t, formData, submissions[0].FormData)
}

func TestCountSubmissions(t *testing.T) {
	db := openTestDatabase(t)

	for i := 0; i < 3; i++ {
		_, err := db.SaveSubmission("site-a", map[string]string{"Name": "N"})
		require.NoError(t, err)
	}

	count, err := db.CountSubmissions("site-a")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = db.CountSubmissions("site-missing")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestListSubmissionsDefaultLimit(t *testing.T) {
	db := openTestDatabase(t)

	_, err := db.SaveSubmission("site-a", map[string]string{"Name": "N"})
	require.NoError(t, err)

	submissions, err := db.ListSubmissions("site-a", 0)
	require.NoError(t, err)
	assert.Len(t, submissions, 1)
}
