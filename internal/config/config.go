package config

import "lbquery/internal/render"

// Config holds user defaults for the query harness.
type Config struct {
	ResultsDir   string `yaml:"results_dir"`
	Color        string `yaml:"color"`
	MaxCellWidth *int   `yaml:"max_cell_width"`
	Prompt       string `yaml:"prompt"`
}

// Defaults used when neither a config file nor a flag sets a value.
const (
	DefaultResultsDir = "results"
	DefaultPrompt     = "duckdb> "
)

// Default returns the built-in configuration.
func Default() Config {
	width := render.DefaultMaxCellWidth
	return Config{
		ResultsDir:   DefaultResultsDir,
		Color:        string(render.ColorAuto),
		MaxCellWidth: &width,
		Prompt:       DefaultPrompt,
	}
}

// Width returns the configured cell width or the default.
func (c Config) Width() int {
	if c.MaxCellWidth == nil {
		return render.DefaultMaxCellWidth
	}
	return *c.MaxCellWidth
}
