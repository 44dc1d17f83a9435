// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"coursehub/config"
	"coursehub/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var seq atomic.Int64

// New returns a migrated database private to the calling test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.Default()
	cfg.DBDriver = "sqlite"
	cfg.DatabaseURL = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))
	// a single connection keeps the shared in-memory database alive and serializes writers
	cfg.DBMaxOpenConns = 1
	cfg.DBMaxIdleConns = 1

	db, err := database.Open(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Use installs db as the global instance for handlers and restores the previous one afterwards.
func Use(t testing.TB, db *gorm.DB) *database.Monitor {
	t.Helper()

	prev := database.Database
	monitor := database.NewMonitor(db)
	monitor.Check()
	database.Database = database.DbInstance{Db: db, Monitor: monitor}
	t.Cleanup(func() { database.Database = prev })
	return monitor
}
