package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func fatal(err error) error {
	return &exitError{code: ExitError, err: err}
}

func usageError(err error) error {
	return &exitError{code: ExitUsage, err: err}
}

// Run executes the command line and returns the process exit code.
// SIGINT and SIGTERM end the interactive loop cleanly.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunContext(ctx, args, stdin, stdout, stderr)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", exitErr.err)
		}
		if exitErr.code == ExitUsage {
			fmt.Fprintln(stderr)
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return exitErr.code
	}
	// Anything else comes from cobra's own flag and argument parsing.
	fmt.Fprintf(stderr, "Error: %v\n\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return ExitUsage
}

// newRootCommand wires flags to the query harness.
func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "lbquery",
		Short: "Test DuckDB queries against leaderboard results",
		Long: `lbquery loads benchmark result JSON files into an in-memory DuckDB
database and runs the leaderboard example queries, a query from a file, or
an interactive SQL loop against them.`,
		Example: `  # Run every example query against results/
  lbquery --results results/

  # Inspect the inferred schema of one results file
  lbquery --sample ../output/results.json

  # Run one example query
  lbquery --results results/ --query overall_performance

  # Run a query from a file
  lbquery --results results/ --file my_query.sql

  # Interactive mode
  lbquery --results results/ --interactive`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.resultsSet = cmd.Flags().Changed("results")
			opts.colorSet = cmd.Flags().Changed("color")
			return runHarness(cmd.Context(), opts, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.resultsDir, "results", "results", "Path to results directory")
	flags.StringVar(&opts.sample, "sample", "", "Path to sample results.json file")
	flags.StringVar(&opts.query, "query", "", "Run example query (see --list-queries)")
	flags.StringVar(&opts.file, "file", "", "Run query from SQL file")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Interactive query mode")
	flags.BoolVar(&opts.listQueries, "list-queries", false, "List available example queries")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: search for .lbquery.yml)")
	flags.StringVar(&opts.color, "color", "", "Color output: auto|always|never")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	return cmd
}
