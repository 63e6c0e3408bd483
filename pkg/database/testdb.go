package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// NewTestDB opens a fresh in-memory SQLite database with the full schema
// migrated. Each call returns an isolated database, so tests never share
// state. The shared-cache DSN keeps the schema visible across the
// connections gorm pools.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)

	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// Keep one connection alive for the lifetime of the test so the
	// in-memory database is not dropped between queries.
	sqlDB, err := d.DB()
	if err != nil {
		t.Fatalf("get test database handle: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := migrate(d); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return d
}
