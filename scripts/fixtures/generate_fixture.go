package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"lbquery/internal/results"
)

// fixtureConfig defines the JSON config for generating a results directory.
type fixtureConfig struct {
	Name   string   `json:"name"`
	Agents []string `json:"agents"`
	Runs   int      `json:"runs"`
	Tasks  int      `json:"tasks"`
	Seed   int64    `json:"seed"`
}

// fixtureNamespace scopes deterministic task IDs.
var fixtureNamespace = uuid.MustParse("6f1c7c0e-3a57-4d8e-9c55-7c0f0c1d8b21")

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outDir := flag.String("out", "", "output results directory")
	flag.Parse()
	if *configPath == "" || *outDir == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <results dir>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := generateFixture(*outDir, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if len(cfg.Agents) == 0 {
		return fixtureConfig{}, fmt.Errorf("at least one agent is required")
	}
	if cfg.Runs <= 0 {
		cfg.Runs = 1
	}
	if cfg.Tasks <= 0 {
		cfg.Tasks = 10
	}
	return cfg, nil
}

// generateFixture writes one results file per agent with pseudo-random but
// reproducible outcomes.
func generateFixture(outDir string, cfg fixtureConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, agent := range cfg.Agents {
		record := results.Record{Participants: results.Participants{Agent: agent}}
		for i := 0; i < cfg.Runs; i++ {
			record.Results = append(record.Results, buildRun(rng, cfg))
		}
		path := filepath.Join(outDir, fmt.Sprintf("%s-%s.json", cfg.Name, agent))
		if err := results.WriteFile(path, record); err != nil {
			return err
		}
	}
	return nil
}

func buildRun(rng *rand.Rand, cfg fixtureConfig) results.Run {
	out := results.Run{
		MaxScore:               cfg.Tasks * len(results.Splits),
		DetailedResultsBySplit: map[string][]results.TaskOutcome{},
		PassAtKScoresBySplit:   map[string]results.PassAtK{},
	}
	passed := 0
	for _, split := range results.Splits {
		splitPassed := 0
		outcomes := make([]results.TaskOutcome, 0, cfg.Tasks)
		for i := 0; i < cfg.Tasks; i++ {
			reward := 0.0
			if rng.Float64() < 0.6 {
				reward = 1
				splitPassed++
			}
			outcomes = append(outcomes, results.TaskOutcome{
				TaskID: taskID(split, i),
				Reward: results.Float(reward),
			})
		}
		passed += splitPassed
		pass1 := float64(splitPassed) / float64(cfg.Tasks)
		out.DetailedResultsBySplit[split] = outcomes
		out.PassAtKScoresBySplit[split] = results.PassAtK{
			Pass1: results.Float(pass1),
			Pass2: results.Float(pass1 + (1-pass1)*0.5),
		}
	}
	overall := float64(passed) / float64(out.MaxScore)
	out.PassRate = results.Float(overall * 100)
	out.TimeUsed = results.Float(30 + rng.Float64()*120)
	out.PassAtKScores = results.PassAtK{
		Pass1: results.Float(overall),
		Pass2: results.Float(overall + (1-overall)*0.5),
	}
	return out
}

// taskID derives a stable task identifier from the split and index.
func taskID(split string, index int) string {
	id := uuid.NewSHA1(fixtureNamespace, []byte(fmt.Sprintf("%s/%d", split, index)))
	return fmt.Sprintf("%s_%03d_%s", split, index, id.String()[:8])
}
