package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"pricefeed/internal/db/migrations"
	"pricefeed/internal/util"
	"testing"

	_ "github.com/lib/pq"
)

const testDbUrlEnv = "PRICEFEED_TEST_DB_URL"

// New opens the shared pool used by the query API.
func New(cfg util.DatabaseConfig) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", cfg.Url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return dbConn, nil
}

// NewIsolated opens a single-connection handle that is not shared with any
// other pool. The caller must Close it.
func NewIsolated(ctx context.Context, cfg util.DatabaseConfig) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", cfg.Url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	dbConn.SetMaxOpenConns(1)
	dbConn.SetMaxIdleConns(1)

	if err := dbConn.PingContext(ctx); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// SetupTestDb returns a migrated transaction on the database named by
// PRICEFEED_TEST_DB_URL, rolled back when the test ends. The test is
// skipped when the variable is unset.
func SetupTestDb(t *testing.T) *sql.Tx {
	url := os.Getenv(testDbUrlEnv)
	if url == "" {
		t.Skipf("%s not set", testDbUrlEnv)
	}

	dbConn, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		dbConn.Close()
	})

	if err := migrations.Up(dbConn); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tx, err := dbConn.Begin()
	if err != nil {
		t.Fatalf("failed to begin test transaction: %v", err)
	}
	RollbackAfterTest(t, tx)

	return tx
}

func RollbackAfterTest(t *testing.T, tx *sql.Tx) {
	t.Cleanup(func() {
		err := tx.Rollback()
		if err != nil {
			panic(err)
		}
	})
}
