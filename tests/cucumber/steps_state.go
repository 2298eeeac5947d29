package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"
)

type featureState struct {
	workDir    string
	previousWD string
	stdin      string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario registers the harness steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an empty results directory "([^"]+)"$`, state.anEmptyResultsDirectory)
	ctx.Step(`^a results file for agent "([^"]+)" with runs:$`, state.aResultsFileForAgent)
	ctx.Step(`^a query file "([^"]+)" containing "([^"]*)"$`, state.aQueryFileContaining)
	ctx.Step(`^the interactive input:$`, state.theInteractiveInput)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output lists these queries:$`, state.theOutputListsQueries)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the output contains "([^"]+)" (\d+) times$`, state.theOutputContainsTimes)
	ctx.Step(`^the error output mentions "([^"]+)"$`, state.theErrorOutputMentions)
}

// reset creates a fresh working directory for the scenario.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.stdin = ""
	s.exitCode = 0
	dir, err := os.MkdirTemp("", "lbquery-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}
