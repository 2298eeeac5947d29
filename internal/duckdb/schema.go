package duckdb

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TableName is the table every load path populates.
const TableName = "results"

// fallbackDDL holds the placeholder results table definition.
//
//go:embed fallback_schema.sql
var fallbackDDL string

// FallbackSchemaDDL returns the DDL used when a results directory holds no
// JSON files.
func FallbackSchemaDDL() string {
	return fallbackDDL
}

// EnsureFallbackSchema creates the placeholder results table.
func EnsureFallbackSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if _, err := db.ExecContext(ctx, fallbackDDL); err != nil {
		return fmt.Errorf("create fallback table: %w", err)
	}
	return nil
}

// dropResults removes any previously loaded results table.
func dropResults(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+TableName); err != nil {
		return fmt.Errorf("drop %s: %w", TableName, err)
	}
	return nil
}
