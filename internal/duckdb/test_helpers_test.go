package duckdb_test

import (
	"context"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"lbquery/internal/duckdb"
	"lbquery/internal/duckdb/testing"
	"lbquery/internal/testutil"
)

const (
	testTimeout = 5 * time.Second
)

// openTestDB opens an in-memory DuckDB instance.
func openTestDB(t *testing.T) (*sqlx.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	return duckdbtesting.Open(t), ctx
}

// mustQuery runs a query and fails the test on error.
func mustQuery(t *testing.T, ctx context.Context, db *sqlx.DB, query string) *duckdb.Result {
	t.Helper()
	res, err := duckdb.Query(ctx, db, query)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return res
}

// column returns the index of name in res or fails the test.
func column(t *testing.T, res *duckdb.Result, name string) int {
	t.Helper()
	for i, col := range res.Columns {
		if col == name {
			return i
		}
	}
	t.Fatalf("column %q not found in %v", name, res.Columns)
	return -1
}

// asFloat converts a numeric scan value to float64.
func asFloat(t *testing.T, value interface{}) float64 {
	t.Helper()
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case *big.Int:
		f, _ := new(big.Float).SetInt(v).Float64()
		return f
	default:
		t.Fatalf("unexpected numeric type %T", value)
		return 0
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
