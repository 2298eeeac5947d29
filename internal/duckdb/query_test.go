package duckdb_test

import (
	"testing"

	"lbquery/internal/catalog"
	"lbquery/internal/duckdb"
	"lbquery/internal/testutil"
)

// TestQueryInvalidSQL verifies SQL errors are returned, not raised.
func TestQueryInvalidSQL(t *testing.T) {
	db, ctx := openTestDB(t)
	if _, err := duckdb.Query(ctx, db, "SELEC nonsense"); err == nil {
		t.Fatalf("expected syntax error")
	}
	if _, err := duckdb.Query(ctx, db, "SELECT missing_column FROM range(1)"); err == nil {
		t.Fatalf("expected binder error")
	}
}

// TestQueryCollectsColumns verifies column names and rows are materialized.
func TestQueryCollectsColumns(t *testing.T) {
	db, ctx := openTestDB(t)
	res := mustQuery(t, ctx, db, `SELECT 1 AS a, 'x' AS "B c" UNION ALL SELECT 2, 'y' ORDER BY a`)
	if len(res.Columns) != 2 || res.Columns[1] != "B c" {
		t.Fatalf("unexpected columns: %v", res.Columns)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	if res.Empty() {
		t.Fatalf("expected non-empty result")
	}
}

// TestCatalogOnFallbackIsEmpty verifies every catalog query binds against
// the fallback schema and returns no rows.
func TestCatalogOnFallbackIsEmpty(t *testing.T) {
	db, ctx := openTestDB(t)
	if _, err := duckdb.LoadResultsDir(ctx, db, testutil.ResultsDir(t)); err != nil {
		t.Fatalf("load fallback: %v", err)
	}
	for _, entry := range catalog.MustDefault().Entries() {
		res, err := duckdb.Query(ctx, db, entry.SQL)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", entry.Name, err)
		}
		if !res.Empty() {
			t.Fatalf("%s: expected no rows, got %d", entry.Name, len(res.Rows))
		}
	}
}

// TestOverallPerformanceSingleAgent verifies values pass through rounding.
func TestOverallPerformanceSingleAgent(t *testing.T) {
	db, ctx := openTestDB(t)
	path := testutil.WriteRecord(t, t.TempDir(), "sample.json", "agentA", testutil.Run(80.0, 12.3))
	if _, err := duckdb.LoadSampleFile(ctx, db, path); err != nil {
		t.Fatalf("load sample: %v", err)
	}
	entry, _ := catalog.MustDefault().Lookup(catalog.OverallPerformance)
	res := mustQuery(t, ctx, db, entry.SQL)
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	row := res.Rows[0]
	if id := row[column(t, res, "id")]; id != "agentA" {
		t.Fatalf("unexpected id %v", id)
	}
	if got := asFloat(t, row[column(t, res, "Pass Rate (%)")]); !approxEqual(got, 80.0) {
		t.Fatalf("expected pass rate 80.0, got %v", got)
	}
	if got := asFloat(t, row[column(t, res, "Time (s)")]); !approxEqual(got, 12.3) {
		t.Fatalf("expected time 12.3, got %v", got)
	}
	if got := asFloat(t, row[column(t, res, "Total Tasks")]); got != 2 {
		t.Fatalf("expected 2 total tasks, got %v", got)
	}
}

// TestOverallPerformanceKeepsBestRow verifies one row per agent, highest pass
// rate first and lower time breaking ties.
func TestOverallPerformanceKeepsBestRow(t *testing.T) {
	db, ctx := openTestDB(t)
	dir := testutil.ResultsDir(t)
	testutil.WriteRecord(t, dir, "x.json", "X", testutil.Run(70, 5), testutil.Run(90, 8))
	testutil.WriteRecord(t, dir, "y.json", "Y", testutil.Run(60, 9), testutil.Run(60, 4))
	if _, err := duckdb.LoadResultsDir(ctx, db, dir); err != nil {
		t.Fatalf("load: %v", err)
	}
	entry, _ := catalog.MustDefault().Lookup(catalog.OverallPerformance)
	res := mustQuery(t, ctx, db, entry.SQL)
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	idCol := column(t, res, "id")
	rateCol := column(t, res, "Pass Rate (%)")
	timeCol := column(t, res, "Time (s)")

	first := res.Rows[0]
	if first[idCol] != "X" {
		t.Fatalf("expected X first, got %v", first[idCol])
	}
	if !approxEqual(asFloat(t, first[rateCol]), 90) || !approxEqual(asFloat(t, first[timeCol]), 8) {
		t.Fatalf("expected X best row 90/8, got %v/%v", first[rateCol], first[timeCol])
	}
	second := res.Rows[1]
	if !approxEqual(asFloat(t, second[timeCol]), 4) {
		t.Fatalf("expected tie broken by lower time, got %v", second[timeCol])
	}
}

// TestSplitAndPassAtKQueries verifies the remaining catalog queries run on
// loaded data.
func TestSplitAndPassAtKQueries(t *testing.T) {
	db, ctx := openTestDB(t)
	dir := testutil.ResultsDir(t)
	testutil.WriteRecord(t, dir, "a.json", "agentA", testutil.Run(80, 10), testutil.Run(60, 20))
	if _, err := duckdb.LoadResultsDir(ctx, db, dir); err != nil {
		t.Fatalf("load: %v", err)
	}
	c := catalog.MustDefault()

	entry, _ := c.Lookup(catalog.PerformanceBySplit)
	res := mustQuery(t, ctx, db, entry.SQL)
	if len(res.Rows) != 3 {
		t.Fatalf("expected one row per split, got %d", len(res.Rows))
	}
	splitCol := column(t, res, "split")
	if res.Rows[0][splitCol] != "base" || res.Rows[2][splitCol] != "hallucination" {
		t.Fatalf("unexpected split order: %v", res.Rows)
	}
	if got := asFloat(t, res.Rows[0][column(t, res, "Avg Pass Rate (%)")]); !approxEqual(got, 70) {
		t.Fatalf("expected avg 70, got %v", got)
	}

	entry, _ = c.Lookup(catalog.TaskSuccessRates)
	res = mustQuery(t, ctx, db, entry.SQL)
	if len(res.Rows) != 6 {
		t.Fatalf("expected 2 tasks x 3 splits, got %d", len(res.Rows))
	}
	if got := asFloat(t, res.Rows[0][column(t, res, "Attempts")]); got != 2 {
		t.Fatalf("expected 2 attempts, got %v", got)
	}

	entry, _ = c.Lookup(catalog.PassAtK)
	res = mustQuery(t, ctx, db, entry.SQL)
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	if got := asFloat(t, res.Rows[0][column(t, res, "Pass@1")]); !approxEqual(got, 70) {
		t.Fatalf("expected Pass@1 70, got %v", got)
	}
}
