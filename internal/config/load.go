package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a single YAML document, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	cfg := Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads, parses, merges onto defaults and validates a config file.
// Relative results_dir values resolve against the config file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	if dir := strings.TrimSpace(parsed.ResultsDir); dir != "" && !filepath.IsAbs(dir) {
		parsed.ResultsDir = filepath.Join(filepath.Dir(path), dir)
	}
	cfg := Merge(Default(), parsed)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the explicit config path when set, otherwise the discovered
// one, otherwise the defaults. The returned path is empty when no file was
// read.
func Resolve(explicit string) (Config, string, error) {
	path := strings.TrimSpace(explicit)
	if path == "" {
		found, err := FindConfigPath("")
		if err != nil {
			return Config{}, "", err
		}
		path = found
	}
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// Merge overlays non-zero fields of override onto base.
func Merge(base, override Config) Config {
	out := base
	if strings.TrimSpace(override.ResultsDir) != "" {
		out.ResultsDir = override.ResultsDir
	}
	if strings.TrimSpace(override.Color) != "" {
		out.Color = override.Color
	}
	if override.MaxCellWidth != nil {
		width := *override.MaxCellWidth
		out.MaxCellWidth = &width
	}
	if override.Prompt != "" {
		out.Prompt = override.Prompt
	}
	return out
}
