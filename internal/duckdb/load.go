package duckdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrResultsDirNotFound is returned when the results directory is missing.
	ErrResultsDirNotFound = errors.New("results directory not found")
	// ErrNotDirectory is returned when the results path is a regular file.
	ErrNotDirectory = errors.New("results path is not a directory")
	// ErrInvalidJSON is returned when a sample file does not parse as JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// LoadReport describes a completed directory load.
type LoadReport struct {
	Dir      string
	Files    []string
	Fallback bool
}

// SampleReport describes a loaded sample file.
type SampleReport struct {
	Path     string
	Schema   *Result
	FirstRow *Result
	Rows     int
	Columns  []string
}

// ResultFiles lists the *.json files directly under dir, sorted by name.
// Only the file name is matched, so glob characters in dir are literal.
func ResultFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrResultsDirNotFound, dir)
		}
		return nil, fmt.Errorf("stat results directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list results in %s: %w", dir, err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if ok, _ := filepath.Match("*.json", entry.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadResultsDir builds the results table from every JSON file in dir. When
// dir holds no JSON files the fallback schema is created instead.
func LoadResultsDir(ctx context.Context, db *sqlx.DB, dir string) (LoadReport, error) {
	if db == nil {
		return LoadReport{}, errors.New("duckdb: db is nil")
	}
	files, err := ResultFiles(dir)
	if err != nil {
		return LoadReport{}, err
	}
	if err := dropResults(ctx, db); err != nil {
		return LoadReport{}, err
	}
	report := LoadReport{Dir: dir, Files: files}
	if len(files) == 0 {
		if err := EnsureFallbackSchema(ctx, db); err != nil {
			return LoadReport{}, err
		}
		report.Fallback = true
		return report, nil
	}
	if err := createFromJSON(ctx, db, files); err != nil {
		return LoadReport{}, fmt.Errorf("load results from %s: %w", dir, err)
	}
	return report, nil
}

// LoadSampleFile replaces the results table with the contents of one file
// and describes its inferred shape.
func LoadSampleFile(ctx context.Context, db *sqlx.DB, path string) (SampleReport, error) {
	if db == nil {
		return SampleReport{}, errors.New("duckdb: db is nil")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SampleReport{}, fmt.Errorf("read sample: %w", err)
	}
	if !json.Valid(data) {
		return SampleReport{}, fmt.Errorf("%w: %s", ErrInvalidJSON, path)
	}
	if err := dropResults(ctx, db); err != nil {
		return SampleReport{}, err
	}
	if err := createFromJSON(ctx, db, []string{path}); err != nil {
		return SampleReport{}, fmt.Errorf("load sample %s: %w", path, err)
	}

	schema, err := Query(ctx, db, "DESCRIBE "+TableName)
	if err != nil {
		return SampleReport{}, fmt.Errorf("describe %s: %w", TableName, err)
	}
	first, err := Query(ctx, db, "SELECT * FROM "+TableName+" LIMIT 1")
	if err != nil {
		return SampleReport{}, fmt.Errorf("sample row: %w", err)
	}
	n, err := countRows(ctx, db)
	if err != nil {
		return SampleReport{}, err
	}
	return SampleReport{
		Path:     path,
		Schema:   schema,
		FirstRow: first,
		Rows:     n,
		Columns:  first.Columns,
	}, nil
}

// globChars are expanded by DuckDB in any path handed to read_json_auto.
const globChars = "*?["

// createFromJSON creates the results table from an explicit file list.
func createFromJSON(ctx context.Context, db *sqlx.DB, files []string) error {
	sources, cleanup, err := literalSources(files)
	if err != nil {
		return err
	}
	defer cleanup()
	quoted := make([]string, len(sources))
	for i, source := range sources {
		quoted[i] = quoteLiteral(source)
	}
	query := fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM read_json_auto([%s])", TableName, strings.Join(quoted, ", "))
	_, err = db.ExecContext(ctx, query)
	return err
}

// literalSources returns paths DuckDB reads as written. Files whose path
// contains glob characters are copied under plain names into a temporary
// directory that cleanup removes.
func literalSources(files []string) ([]string, func(), error) {
	noop := func() {}
	if !slices.ContainsFunc(files, hasGlob) {
		return files, noop, nil
	}
	tmp, err := os.MkdirTemp("", "lbquery-load-")
	if err != nil {
		return nil, noop, fmt.Errorf("stage results: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(tmp) }
	out := make([]string, len(files))
	for i, file := range files {
		if !hasGlob(file) {
			out[i] = file
			continue
		}
		data, err := os.ReadFile(file)
		if err != nil {
			cleanup()
			return nil, noop, fmt.Errorf("stage results: %w", err)
		}
		out[i] = filepath.Join(tmp, fmt.Sprintf("%04d.json", i))
		if err := os.WriteFile(out[i], data, 0o600); err != nil {
			cleanup()
			return nil, noop, fmt.Errorf("stage results: %w", err)
		}
	}
	return out, cleanup, nil
}

func hasGlob(path string) bool {
	return strings.ContainsAny(path, globChars)
}
