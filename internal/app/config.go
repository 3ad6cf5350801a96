package app

import (
	"errors"
	"fmt"
	"slices"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkspacePath string   // .hcl file or directory
	Tasks         []string // task selectors run after evaluation, in order
	Describe      bool     // print the effective configuration

	LogFormat string
	LogLevel  string
}

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkspacePath == "" {
		return nil, errors.New("WorkspacePath is a required configuration field and cannot be empty")
	}
	if cfg.LogFormat != "" && !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel != "" && !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	for _, task := range cfg.Tasks {
		if task == "" {
			return nil, errors.New("task selectors cannot be empty")
		}
	}
	return &cfg, nil
}
