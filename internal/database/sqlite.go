package database

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"

	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path     string
	ReadOnly bool
}

// dsn builds a modernc URI filename. Read-only handles also set query_only
// so a misrouted write fails instead of touching the file.
func (cfg Config) dsn() string {
	if !cfg.ReadOnly {
		return cfg.Path
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Add("_pragma", "query_only(1)")
	return "file:" + cfg.Path + "?" + q.Encode()
}

// Open opens a SQLite database and verifies the connection.
func Open(cfg Config) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	db, err := sql.Open("sqlite", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Path, err)
	}

	log.Printf("[Database] Opened %s (read-only=%t)", cfg.Path, cfg.ReadOnly)
	return db, nil
}
