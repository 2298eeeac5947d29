package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"lbquery/internal/results"
)

// ResultsDir creates and returns an empty temporary results directory.
func ResultsDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "results")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create results dir: %v", err)
	}
	return dir
}

// WriteRecord writes a results file for agent with one run per entry in runs
// and returns its path.
func WriteRecord(t testing.TB, dir, name, agent string, runs ...results.Run) string {
	t.Helper()
	path := filepath.Join(dir, name)
	record := results.Record{
		Participants: results.Participants{Agent: agent},
		Results:      runs,
	}
	if err := results.WriteFile(path, record); err != nil {
		t.Fatalf("write results fixture: %v", err)
	}
	return path
}

// Run builds a run with two tasks, one passed and one failed.
func Run(passRate, timeUsed float64) results.Run {
	return results.NewRun(passRate, timeUsed, []results.TaskOutcome{
		{TaskID: "task_001", Reward: 1},
		{TaskID: "task_002", Reward: 0},
	})
}
