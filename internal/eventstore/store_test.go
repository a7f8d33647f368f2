package eventstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAndGetByProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, Entry{ProjectID: "p1", Op: "add_section", SectionID: "s1", Condition: "applied"}))
	require.NoError(t, s.Append(ctx, Entry{ProjectID: "p1", Op: "update_section", SectionID: "s1", Condition: "applied"}))
	require.NoError(t, s.Append(ctx, Entry{ProjectID: "p2", Op: "add_section", SectionID: "x1", Condition: "applied"}))

	entries, err := s.GetByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "add_section", entries[0].Op)
	assert.Equal(t, "update_section", entries[1].Op)
	assert.True(t, entries[0].ID < entries[1].ID, "append order preserved")
}

func TestGetByProjectEmpty(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.GetByProject(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	require.NoError(t, s.Append(ctx, Entry{ProjectID: "p1", Op: "add_section", Condition: "applied", Timestamp: base}))
	require.NoError(t, s.Append(ctx, Entry{ProjectID: "p1", Op: "delete_section", Condition: "applied", Timestamp: base.Add(30 * time.Minute)}))

	entries, err := s.GetRange(ctx, base.Add(-time.Minute), base.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "add_section", entries[0].Op)
}

func TestPersistentFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Append(context.Background(), Entry{ProjectID: "p1", Op: "add_section", Condition: "applied"}))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	entries, err := reopened.GetByProject(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
