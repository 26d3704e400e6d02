// Package storage provides the form submission store
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"                      // SQLite driver
	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver

	"github.com/AtRiskMedia/pagecraft-go/config"
)

// Database wraps the submission store connection
type Database struct {
	Conn     *sql.DB
	UseTurso bool
}

// NewDatabase opens the submission store. Turso is tried first when
// credentials are configured; otherwise a local SQLite file is used.
func NewDatabase() (*Database, error) {
	var conn *sql.DB
	var err error
	var useTurso bool

	if config.TursoDatabase != "" && config.TursoToken != "" {
		connStr := config.TursoDatabase + "?authToken=" + config.TursoToken
		conn, err = sql.Open("libsql", connStr)
		if err == nil {
			if pingErr := conn.Ping(); pingErr == nil {
				useTurso = true
			} else {
				conn.Close()
				conn = nil
			}
		}
	}

	if conn == nil {
		dbDir := filepath.Dir(config.SQLitePath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}

		conn, err = sql.Open("sqlite3", config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}

		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("SQLite database ping failed: %w", err)
		}
		useTurso = false
	}

	db := &Database{Conn: conn, UseTurso: useTurso}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *Database) migrate() error {
	schema := `CREATE TABLE IF NOT EXISTS form_submissions (
		id TEXT PRIMARY KEY,
		site_id TEXT NOT NULL,
		form_data TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_form_submissions_site ON form_submissions(site_id);`

	if _, err := db.Conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate submission schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *Database) Close() error {
	if db.Conn != nil {
		return db.Conn.Close()
	}
	return nil
}

// GetConnectionInfo returns a string describing the database connection
func (db *Database) GetConnectionInfo() string {
	if db.UseTurso {
		return "Turso"
	}
	return fmt.Sprintf("SQLite (%s)", config.SQLitePath)
}
