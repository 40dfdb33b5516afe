package testutils

import (
	"testing"

	"blog-api/config"
	"blog-api/repositories"

	"gorm.io/gorm"
)

// SetupTestDB opens a migrated in-memory sqlite database with foreign keys
// enforced. The database lives as long as the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase(&config.Config{
		DBDriver:   config.DriverSQLite,
		DBDSN:      "file::memory:?_pragma=foreign_keys(1)",
		DBLogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = config.CloseDatabase(db)
	})

	return db
}
