package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"lbquery/internal/catalog"
	"lbquery/internal/config"
	"lbquery/internal/duckdb"
	"lbquery/internal/harness"
	"lbquery/internal/render"
)

// options holds parsed command-line flags.
type options struct {
	resultsDir  string
	resultsSet  bool
	sample      string
	query       string
	file        string
	interactive bool
	listQueries bool
	configPath  string
	color       string
	colorSet    bool
	debug       bool
}

// runHarness executes one invocation: list or load, then the requested
// queries. Without --query, --file or --interactive the whole catalog runs.
func runHarness(ctx context.Context, opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, opts.debug)

	queries, err := catalog.Default()
	if err != nil {
		return fatal(err)
	}

	if opts.listQueries {
		mode, err := render.ParseColorMode(opts.color)
		if err != nil {
			return usageError(err)
		}
		harness.PrintCatalog(render.NewPrinter(stdout, stderr, render.Options{Color: mode}), queries)
		return nil
	}

	cfg, cfgPath, err := config.Resolve(opts.configPath)
	if err != nil {
		return usageError(fmt.Errorf("load config: %w", err))
	}
	if cfgPath != "" {
		logger.Debug("config loaded", "path", cfgPath)
	}
	if err := applyFlags(&cfg, opts); err != nil {
		return usageError(err)
	}
	printer := render.NewPrinter(stdout, stderr, render.Options{
		Color:        render.ColorMode(cfg.Color),
		MaxCellWidth: cfg.Width(),
	})

	if opts.query != "" {
		if _, err := queries.Lookup(opts.query); err != nil {
			return usageError(err)
		}
	}

	db, err := duckdb.Open(ctx, duckdb.MemoryDSN)
	if err != nil {
		return fatal(err)
	}
	defer db.Close()

	h, err := harness.New(db, harness.Options{
		Catalog: queries,
		Printer: printer,
		Logger:  logger,
		Prompt:  cfg.Prompt,
	})
	if err != nil {
		return fatal(err)
	}

	if opts.sample != "" {
		if _, err := h.LoadSample(ctx, opts.sample); err != nil {
			return fatal(fmt.Errorf("loading sample data: %w", err))
		}
	} else if _, err := h.Load(ctx, cfg.ResultsDir); err != nil {
		return fatal(describeLoadError(cfg.ResultsDir, err))
	}

	if err := interrupted(ctx); err != nil {
		return err
	}

	if opts.query != "" {
		if _, err := h.RunNamed(ctx, opts.query); err != nil {
			return usageError(err)
		}
		if err := interrupted(ctx); err != nil {
			return err
		}
	}
	if opts.file != "" {
		text, err := os.ReadFile(opts.file)
		if err != nil {
			return fatal(fmt.Errorf("read query file: %w", err))
		}
		h.RunQuery(ctx, string(text), "Query from "+opts.file)
		if err := interrupted(ctx); err != nil {
			return err
		}
	}
	if opts.interactive {
		if err := h.Interactive(ctx, stdin); err != nil {
			return fatal(err)
		}
	}
	if opts.query == "" && opts.file == "" && !opts.interactive {
		printer.Println()
		printer.Println("Running all example queries...")
		if _, err := h.RunCatalog(ctx); err != nil {
			return fatal(errInterrupted)
		}
	}
	return nil
}

// errInterrupted reports a batch run stopped by SIGINT or SIGTERM.
var errInterrupted = errors.New("interrupted")

// interrupted returns a fatal error once ctx is cancelled. Only batch paths
// check it; the interactive loop exits cleanly on cancellation.
func interrupted(ctx context.Context) error {
	if ctx.Err() != nil {
		return fatal(errInterrupted)
	}
	return nil
}

// applyFlags overlays explicitly set flags onto the loaded config.
func applyFlags(cfg *config.Config, opts *options) error {
	if opts.resultsSet {
		cfg.ResultsDir = opts.resultsDir
	}
	if opts.colorSet {
		cfg.Color = opts.color
	}
	return config.Validate(cfg)
}

// describeLoadError phrases load failures the way the console reports them.
func describeLoadError(dir string, err error) error {
	switch {
	case errors.Is(err, duckdb.ErrResultsDirNotFound):
		return fmt.Errorf("results directory '%s' not found", dir)
	case errors.Is(err, duckdb.ErrNotDirectory):
		return fmt.Errorf("results path '%s' is not a directory", dir)
	default:
		return fmt.Errorf("loading results: %w", err)
	}
}

// newLogger returns a text logger on stderr; debug enables verbose records.
func newLogger(stderr io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}
