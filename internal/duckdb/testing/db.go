package duckdbtesting

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"lbquery/internal/duckdb"
	"lbquery/internal/testutil"
)

const (
	defaultTimeout = 5 * time.Second
)

// Open opens an in-memory DuckDB connection closed at test cleanup.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	db, err := duckdb.Open(ctx, duckdb.MemoryDSN)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// LoadDir loads a results directory into db and fails the test on error.
func LoadDir(t testing.TB, db *sqlx.DB, dir string) duckdb.LoadReport {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	report, err := duckdb.LoadResultsDir(ctx, db, dir)
	if err != nil {
		t.Fatalf("load results dir: %v", err)
	}
	return report
}
