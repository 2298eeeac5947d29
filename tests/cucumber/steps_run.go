package cucumber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"lbquery/internal/cli"
	"lbquery/internal/results"
)

func (s *featureState) anEmptyResultsDirectory(name string) error {
	if err := os.MkdirAll(filepath.Join(s.workDir, name), 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	return nil
}

// aResultsFileForAgent writes results/<agent>.json with one run per table row.
func (s *featureState) aResultsFileForAgent(agent string, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header row and at least one run")
	}
	header := table.Rows[0].Cells
	index := map[string]int{}
	for i, cell := range header {
		index[strings.TrimSpace(cell.Value)] = i
	}
	record := results.Record{Participants: results.Participants{Agent: agent}}
	for _, row := range table.Rows[1:] {
		values := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			values = append(values, cell.Value)
		}
		passRate, err := floatCell(values, index, "pass_rate")
		if err != nil {
			return err
		}
		timeUsed, err := floatCell(values, index, "time_used")
		if err != nil {
			return err
		}
		record.Results = append(record.Results, results.NewRun(passRate, timeUsed, []results.TaskOutcome{
			{TaskID: "task_001", Reward: 1},
		}))
	}
	path := filepath.Join(s.workDir, "results", agent+".json")
	return results.WriteFile(path, record)
}

func floatCell(values []string, index map[string]int, column string) (float64, error) {
	i, ok := index[column]
	if !ok || i >= len(values) {
		return 0, fmt.Errorf("missing column %q", column)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(values[i]), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", column, err)
	}
	return value, nil
}

func (s *featureState) aQueryFileContaining(name, contents string) error {
	if err := os.WriteFile(filepath.Join(s.workDir, name), []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write query file: %w", err)
	}
	return nil
}

func (s *featureState) theInteractiveInput(doc *godog.DocString) error {
	s.stdin = doc.Content + "\n"
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}
	if args[0] != "lbquery" {
		return fmt.Errorf("unsupported command %q", args[0])
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.RunContext(context.Background(), args[1:], strings.NewReader(s.stdin), &s.stdout, &s.stderr)
	return nil
}
