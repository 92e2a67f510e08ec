// Package testutil opens throwaway databases and inserts fixtures for tests.
package testutil

import (
	"testing"

	"travel_backend/internal/config"
	"travel_backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	TestJWTSecret = "test-secret-do-not-use-in-production"
	MemoryDSN     = ":memory:?_pragma=foreign_keys(1)"
)

// Config returns a test configuration backed by an in-memory sqlite database.
func Config() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = MemoryDSN
	cfg.JWT.Secret = TestJWTSecret
	cfg.CORS.AllowedOrigins = nil
	return cfg
}

// NewDB opens a fresh, migrated in-memory database that is closed with the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(Config())
	require.NoError(t, err, "open sqlite test database")
	require.NoError(t, database.AutoMigrate(db), "migrate test database")

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
