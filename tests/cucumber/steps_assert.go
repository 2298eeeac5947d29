package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputListsQueries asserts every listed query name is printed.
func (s *featureState) theOutputListsQueries(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			name := strings.TrimSpace(cell.Value)
			if name == "" {
				continue
			}
			if !strings.Contains(output, name+":") {
				return fmt.Errorf("expected query %q in output", name)
			}
		}
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputContainsTimes(text string, times int) error {
	if got := strings.Count(s.stdout.String(), text); got != times {
		return fmt.Errorf("expected %q %d times, got %d", text, times, got)
	}
	return nil
}

func (s *featureState) theErrorOutputMentions(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}
