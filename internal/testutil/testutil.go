// Package testutil provides shared test helpers for setting up
// temporary note stores.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/kindledhq/kindled/internal/store"
)

// TestStore creates a temporary SQLite store that is automatically
// cleaned up. The text index is built best-effort; tests that depend
// on FTS should check the returned flag.
func TestStore(t *testing.T) (*store.DB, bool) {
	t.Helper()
	dbFile, err := os.CreateTemp("", "kindled-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	fts := db.EnsureTextIndex(context.Background()) == nil
	return db, fts
}
