// Package storage records relayed game events in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hexring/internal/events"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// EventRecord is one persisted relay event.
type EventRecord struct {
	ID        int64
	SessionID string
	Namespace string
	Tag       string
	Data      string // event JSON, as sent to observers
	CreatedAt time.Time
}

// Name returns "namespace.tag".
func (r EventRecord) Name() string {
	return r.Namespace + "." + r.Tag
}

// SessionSummary aggregates the recorded events of one session.
type SessionSummary struct {
	SessionID string
	Events    int
	First     time.Time
	Last      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			namespace TEXT NOT NULL,
			tag TEXT NOT NULL,
			data TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordEvent stores ev under the given session.
// Returns the ID of the inserted record.
func (s *Store) RecordEvent(sessionID string, ev events.Event) (int64, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode %s: %w", ev.Name(), err)
	}

	result, err := s.db.Exec(
		"INSERT INTO events (session_id, namespace, tag, data, created_at) VALUES (?, ?, ?, ?, ?)",
		sessionID, ev.Namespace, ev.Tag, string(data), ev.Time.UTC().Format(events.ISO8601),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SessionEvents returns the events of one session in recording order.
func (s *Store) SessionEvents(sessionID string) ([]EventRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, namespace, tag, data, created_at
		 FROM events
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var records []EventRecord
	for rows.Next() {
		var r EventRecord
		var createdAt string
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Namespace, &r.Tag, &r.Data, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt, _ = time.Parse(events.ISO8601, createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Sessions returns the most recently active sessions, newest first.
func (s *Store) Sessions(limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT session_id, COUNT(*), MIN(created_at), MAX(created_at)
		 FROM events
		 GROUP BY session_id
		 ORDER BY MAX(id) DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var first, last string
		if err := rows.Scan(&sum.SessionID, &sum.Events, &first, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.First, _ = time.Parse(events.ISO8601, first)
		sum.Last, _ = time.Parse(events.ISO8601, last)
		sessions = append(sessions, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}
