// Package cache keeps successful Web API GET responses in SQLite so repeated
// CLI lookups can be answered without a network round trip.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages cached responses using SQLite
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Entry represents a cached response
type Entry struct {
	URL         string
	Status      int
	ContentType string
	Body        []byte
	StoredAt    time.Time
	ExpiresAt   time.Time
}

// Stats summarizes the cache contents
type Stats struct {
	Total   int
	Expired int
}

// NewStore creates a new response cache backed by SQLite
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS responses (
			url TEXT PRIMARY KEY,
			status INTEGER NOT NULL,
			content_type TEXT,
			body BLOB NOT NULL,
			stored_at INTEGER NOT NULL,
			expires_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_expires_at ON responses(expires_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the fresh entry for url, or nil when there is none
func (s *Store) Get(ctx context.Context, url string) (*Entry, error) {
	query := `
		SELECT url, status, COALESCE(content_type, ''), body, stored_at, expires_at
		FROM responses
		WHERE url = ? AND expires_at > ?
	`

	var e Entry
	var storedUnix, expiresUnix int64
	err := s.db.QueryRowContext(ctx, query, url, s.now().Unix()).Scan(
		&e.URL,
		&e.Status,
		&e.ContentType,
		&e.Body,
		&storedUnix,
		&expiresUnix,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached response: %w", err)
	}

	e.StoredAt = time.Unix(storedUnix, 0)
	e.ExpiresAt = time.Unix(expiresUnix, 0)
	return &e, nil
}

// Put stores a response for url, replacing any previous entry
func (s *Store) Put(ctx context.Context, url string, status int, contentType string, body []byte, ttl time.Duration) error {
	now := s.now()

	query := `
		INSERT INTO responses (url, status, content_type, body, stored_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			status = excluded.status,
			content_type = excluded.content_type,
			body = excluded.body,
			stored_at = excluded.stored_at,
			expires_at = excluded.expires_at
	`

	_, err := s.db.ExecContext(ctx, query,
		url,
		status,
		contentType,
		body,
		now.Unix(),
		now.Add(ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store response: %w", err)
	}

	return nil
}

// Prune removes expired entries and returns how many were deleted
func (s *Store) Prune(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM responses WHERE expires_at <= ?", s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune responses: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// Clear removes every entry and returns how many were deleted
func (s *Store) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM responses")
	if err != nil {
		return 0, fmt.Errorf("failed to clear responses: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// Stats counts total and expired entries
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN expires_at <= ? THEN 1 ELSE 0 END), 0)
		FROM responses
	`

	var st Stats
	if err := s.db.QueryRowContext(ctx, query, s.now().Unix()).Scan(&st.Total, &st.Expired); err != nil {
		return Stats{}, fmt.Errorf("failed to count responses: %w", err)
	}

	return st, nil
}
