// Package sqlitetest provides an in-memory SQLite store for tests.
package sqlitetest

import (
	"context"
	"testing"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
)

// New opens an in-memory store with all migrations applied. It is closed
// when the test completes.
func New(t testing.TB) *sqlite.Store {
	t.Helper()

	s, err := sqlite.Open(context.Background(), &config.DatabaseConfig{Path: sqlite.MemoryPath}, nil)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
