package duckdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"
)

// MemoryDSN opens a non-persistent database.
const MemoryDSN = ":memory:"

// Open opens a DuckDB connection and verifies it responds.
//
// The pool is pinned to a single connection so that every statement sees the
// same in-memory catalog.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	if ctx == nil {
		return nil, errors.New("duckdb: context is nil")
	}
	if strings.TrimSpace(dsn) == "" {
		dsn = MemoryDSN
	}
	db, err := sqlx.Open("duckdb", driverDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	return db, nil
}

// driverDSN maps the conventional ":memory:" spelling to the driver's empty
// DSN.
func driverDSN(dsn string) string {
	if dsn == MemoryDSN {
		return ""
	}
	return dsn
}

// quoteLiteral escapes a string for SQL literal use.
func quoteLiteral(value string) string {
	escaped := strings.ReplaceAll(value, "'", "''")
	return "'" + escaped + "'"
}
