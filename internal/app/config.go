package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScriptPath string // experiment script file, or a directory of scripts
	Format     string // force a script format; empty selects by extension

	LogFormat string
	LogLevel  string
	Workers   int
	DryRun    bool
	FailFast  bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}
