package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

// NewTestDB creates a fresh in-memory SQLite database with the schema applied.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	return newTestDB(t, MemoryPath)
}

// NewFileTestDB creates a file-backed database in a temp dir. Unlike
// NewTestDB it keeps a multi-connection pool, as a deployment does.
func NewFileTestDB(t testing.TB) *sql.DB {
	t.Helper()
	return newTestDB(t, filepath.Join(t.TempDir(), "items.db"))
}

func newTestDB(t testing.TB, path string) *sql.DB {
	t.Helper()

	db, err := Open(path)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := Migrate(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("creating test database schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
