package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	stserrors "github.com/alexisbeaulieu97/styledtext/pkg/errors"
)

// Config holds the CLI defaults that can be set from a YAML file.
type Config struct {
	// Theme is the chroma style used for highlighting.
	Theme string `yaml:"theme" validate:"omitempty,theme"`
	// Backend selects the default render target.
	Backend string `yaml:"backend" validate:"omitempty,backend"`
	// Color controls ANSI output: auto (TTY detection), always or never.
	Color string `yaml:"color" validate:"omitempty,oneof=auto always never"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Theme:   "monokai",
		Backend: "ansi",
		Color:   "auto",
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns
// the resulting model. Unset fields fall back to the defaults.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stserrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, stserrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
