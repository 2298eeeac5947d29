package duckdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Result holds a fully materialized result set.
type Result struct {
	Columns []string
	Rows    [][]interface{}
}

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// Query executes text and collects every row.
func Query(ctx context.Context, db *sqlx.DB, text string) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("duckdb: context is nil")
	}
	if db == nil {
		return nil, errors.New("duckdb: db is nil")
	}
	rows, err := db.QueryxContext(ctx, text)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	out := &Result{Columns: columns, Rows: make([][]interface{}, 0)}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out.Rows = append(out.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// countRows returns the number of rows in the results table.
func countRows(ctx context.Context, db *sqlx.DB) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+TableName); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}
