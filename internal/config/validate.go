package config

import (
	"fmt"
	"strings"

	"lbquery/internal/render"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a merged config and normalizes the color mode.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if strings.TrimSpace(cfg.ResultsDir) == "" {
		add("results_dir", "is required")
	}
	if mode, err := render.ParseColorMode(cfg.Color); err != nil {
		add("color", err.Error())
	} else {
		cfg.Color = string(mode)
	}
	if cfg.MaxCellWidth != nil && *cfg.MaxCellWidth < 0 {
		add("max_cell_width", "must be >= 0")
	}
	if strings.ContainsAny(cfg.Prompt, "\r\n") {
		add("prompt", "must be a single line")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
