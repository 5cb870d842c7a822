package health

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteChecker checks SQLite database connectivity.
type SQLiteChecker struct {
	db *sql.DB
}

// NewSQLiteChecker creates a new SQLite health checker.
func NewSQLiteChecker(db *sql.DB) *SQLiteChecker {
	return &SQLiteChecker{db: db}
}

// Name returns the checker name.
func (c *SQLiteChecker) Name() string {
	return "sqlite"
}

// Check verifies the SQLite database is accessible.
func (c *SQLiteChecker) Check(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("database not initialized")
	}
	return c.db.PingContext(ctx)
}

// StoreChecker reports whether the entity store finished hydrating
// from the durable key-value layer.
type StoreChecker struct {
	isLoaded func() bool
}

// NewStoreChecker creates a new store health checker.
func NewStoreChecker(isLoaded func() bool) *StoreChecker {
	return &StoreChecker{isLoaded: isLoaded}
}

// Name returns the checker name.
func (c *StoreChecker) Name() string {
	return "store"
}

// Check verifies the store has been loaded.
func (c *StoreChecker) Check(ctx context.Context) error {
	if c.isLoaded == nil || !c.isLoaded() {
		return fmt.Errorf("store not loaded")
	}
	return nil
}
