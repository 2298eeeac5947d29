package harness

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"lbquery/internal/catalog"
	"lbquery/internal/duckdb"
	"lbquery/internal/render"
)

// Console messages shared by the batch and interactive paths.
const (
	noResultsText       = "No results found."
	inlineNoResultsText = "No results."
)

// Harness runs queries against the loaded results table and prints them.
type Harness struct {
	db      *sqlx.DB
	catalog *catalog.Catalog
	printer *render.Printer
	logger  *slog.Logger
	prompt  string
}

// Options configure a Harness.
type Options struct {
	Catalog *catalog.Catalog
	Printer *render.Printer
	Logger  *slog.Logger
	Prompt  string
}

// New creates a harness bound to db.
func New(db *sqlx.DB, opts Options) (*Harness, error) {
	if db == nil {
		return nil, errors.New("harness: db is nil")
	}
	if opts.Catalog == nil {
		return nil, errors.New("harness: catalog is nil")
	}
	if opts.Printer == nil {
		return nil, errors.New("harness: printer is nil")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "duckdb> "
	}
	return &Harness{
		db:      db,
		catalog: opts.Catalog,
		printer: opts.Printer,
		logger:  logger,
		prompt:  prompt,
	}, nil
}

// Catalog returns the harness query catalog.
func (h *Harness) Catalog() *catalog.Catalog {
	return h.catalog
}

// Load builds the results table from dir and reports what was loaded.
func (h *Harness) Load(ctx context.Context, dir string) (duckdb.LoadReport, error) {
	started := time.Now()
	report, err := duckdb.LoadResultsDir(ctx, h.db, dir)
	if err != nil {
		return duckdb.LoadReport{}, err
	}
	h.logger.Debug("results loaded", "dir", dir, "files", len(report.Files), "fallback", report.Fallback, "elapsed", time.Since(started))
	if report.Fallback {
		h.printer.Warnf("Warning: No JSON files found in '%s'", dir)
		h.printer.Println("Creating temporary table with empty structure...")
		return report, nil
	}
	h.printer.Printf("Loaded %d result file(s) from %s\n", len(report.Files), dir)
	return report, nil
}

// LoadSample replaces the results table with one file and prints its shape.
func (h *Harness) LoadSample(ctx context.Context, path string) (duckdb.SampleReport, error) {
	report, err := duckdb.LoadSampleFile(ctx, h.db, path)
	if err != nil {
		return duckdb.SampleReport{}, err
	}
	h.logger.Debug("sample loaded", "path", path, "rows", report.Rows, "columns", len(report.Columns))

	h.printer.Printf("Loaded sample data from %s\n", path)
	h.printer.Println()
	h.printer.Println("Results structure:")
	h.printer.Grid(report.Schema.Columns, report.Schema.Rows)
	h.printer.Println()
	h.printer.Println("Sample data (first row):")
	if len(report.FirstRow.Rows) > 0 {
		h.printer.Grid(report.FirstRow.Columns, report.FirstRow.Rows)
	} else {
		h.printer.Println(inlineNoResultsText)
	}
	h.printer.Printf("Columns: %s\n", strings.Join(report.Columns, ", "))
	h.printer.Printf("Shape: (%d, %d)\n", report.Rows, len(report.Columns))
	return report, nil
}

// RunQuery executes text, printing a banner with label followed by the
// result table. SQL errors are printed and reported as a nil result.
func (h *Harness) RunQuery(ctx context.Context, text, label string) *duckdb.Result {
	h.printer.Banner(label)
	res, err := h.execute(ctx, text, label)
	if err != nil {
		h.printer.Errorf("Error running query: %v", err)
		return nil
	}
	h.printer.Table(res.Columns, res.Rows, noResultsText)
	return res
}

// RunNamed runs one catalog entry.
func (h *Harness) RunNamed(ctx context.Context, name string) (*duckdb.Result, error) {
	entry, err := h.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	return h.RunQuery(ctx, entry.SQL, entry.Name), nil
}

// RunCatalog runs every catalog entry in order, continuing past failures. It
// returns the number of entries that failed. Cancelling ctx stops the run
// before the next entry; the entry already executing completes.
func (h *Harness) RunCatalog(ctx context.Context) (int, error) {
	failed := 0
	for _, entry := range h.catalog.Entries() {
		if err := ctx.Err(); err != nil {
			h.logger.Debug("catalog run interrupted", "next", entry.Name)
			return failed, err
		}
		if res := h.RunQuery(ctx, entry.SQL, entry.Name); res == nil {
			failed++
		}
	}
	return failed, nil
}

// PrintCatalog writes every catalog entry name and SQL without needing a
// database.
func PrintCatalog(p *render.Printer, c *catalog.Catalog) {
	p.Println("Available example queries:")
	for _, entry := range c.Entries() {
		p.Println()
		p.Printf("%s:\n", entry.Name)
		p.Println(strings.TrimSpace(entry.SQL))
	}
}

// execute runs a query detached from cancellation; an in-flight query always
// runs to completion.
func (h *Harness) execute(ctx context.Context, text, label string) (*duckdb.Result, error) {
	started := time.Now()
	res, err := duckdb.Query(context.WithoutCancel(ctx), h.db, text)
	if err != nil {
		h.logger.Debug("query failed", "label", label, "error", err, "elapsed", time.Since(started))
		return nil, err
	}
	h.logger.Debug("query finished", "label", label, "rows", len(res.Rows), "elapsed", time.Since(started))
	return res, nil
}
