package database

import (
	"testing"

	"debt-portal/internal/config"
)

// SetupTestDB returns a migrated private in-memory sqlite database that is
// closed when the test finishes.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.FallbackConfig{
		Driver: config.FallbackDriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return db
}
