// Package eventstore persists the mutation journal: every document mutation
// applied during an editing session, keyed by project. The journal is append
// only and exists for diagnostics and session replay, not as a CMS.
package eventstore

import (
	"context"
	"time"
)

// Entry is one journaled mutation.
type Entry struct {
	ID        int64
	ProjectID string
	Op        string
	SectionID string
	BlockID   string
	Condition string
	Timestamp time.Time
}

// Store defines the interface for persisting and retrieving journal entries.
type Store interface {
	// Append adds a new entry to the journal.
	Append(ctx context.Context, e Entry) error

	// GetByProject retrieves all entries for a project in append order.
	GetByProject(ctx context.Context, projectID string) ([]Entry, error)

	// GetRange retrieves entries within a time range.
	GetRange(ctx context.Context, start, end time.Time) ([]Entry, error)

	// Close closes the store and releases resources.
	Close() error
}
