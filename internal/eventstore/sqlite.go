package eventstore

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore creates a new SQLite-based journal.
// Use ":memory:" for an in-memory database, or a file path for persistence.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS mutations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id TEXT NOT NULL,
		op TEXT NOT NULL,
		section_id TEXT,
		block_id TEXT,
		condition TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_project_id ON mutations(project_id);
	CREATE INDEX IF NOT EXISTS idx_timestamp ON mutations(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append adds a new entry to the journal.
func (s *SQLiteStore) Append(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO mutations (project_id, op, section_id, block_id, condition, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
		e.ProjectID, e.Op, e.SectionID, e.BlockID, e.Condition, ts.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert mutation: %w", err)
	}
	return nil
}

// GetByProject retrieves all entries for a project in append order.
func (s *SQLiteStore) GetByProject(ctx context.Context, projectID string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, project_id, op, section_id, block_id, condition, timestamp FROM mutations WHERE project_id = ? ORDER BY id",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query mutations: %w", err)
	}
	defer rows.Close()

	return s.scanEntries(rows)
}

// GetRange retrieves entries within a time range.
func (s *SQLiteStore) GetRange(ctx context.Context, start, end time.Time) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, project_id, op, section_id, block_id, condition, timestamp FROM mutations WHERE timestamp >= ? AND timestamp <= ? ORDER BY id",
		start.Unix(), end.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("query mutations: %w", err)
	}
	defer rows.Close()

	return s.scanEntries(rows)
}

func (s *SQLiteStore) scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Op, &e.SectionID, &e.BlockID, &e.Condition, &ts); err != nil {
			return nil, fmt.Errorf("scan mutation: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return entries, nil
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
