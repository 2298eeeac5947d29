package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes a record as pretty JSON, creating parent directories.
func WriteFile(path string, record Record) error {
	if path == "" {
		return fmt.Errorf("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// NewRun builds a run with every split populated so that split-level queries
// bind against the inferred schema. passRate is a percentage.
func NewRun(passRate, timeUsed float64, tasks []TaskOutcome) Run {
	detailed := make(map[string][]TaskOutcome, len(Splits))
	bySplit := make(map[string]PassAtK, len(Splits))
	pass1 := Float(passRate / 100)
	for _, split := range Splits {
		outcomes := make([]TaskOutcome, len(tasks))
		copy(outcomes, tasks)
		detailed[split] = outcomes
		bySplit[split] = PassAtK{Pass1: pass1, Pass2: pass1}
	}
	return Run{
		PassRate:               Float(passRate),
		TimeUsed:               Float(timeUsed),
		MaxScore:               len(tasks),
		DetailedResultsBySplit: detailed,
		PassAtKScores:          PassAtK{Pass1: pass1, Pass2: pass1},
		PassAtKScoresBySplit:   bySplit,
	}
}
