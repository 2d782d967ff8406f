package app

import "errors"

// DefaultBuildFile is read when no build file is given.
const DefaultBuildFile = "myMakefile"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BuildFile string // rule file, .hcl file or directory, or .yaml file
	Target    string // empty selects the first declared target
	Dir       string // working directory for file checks, commands and BuildFile

	LogFormat string
	LogLevel  string

	DryRun       bool
	StrictCycles bool
	Watch        bool
	PrintDOT     bool
	Lint         bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildFile == "" {
		cfg.BuildFile = DefaultBuildFile
	}
	if cfg.PrintDOT && cfg.Lint {
		return nil, errors.New("-dot and -lint cannot be combined")
	}
	if cfg.Watch && (cfg.PrintDOT || cfg.Lint) {
		return nil, errors.New("-watch cannot be combined with -dot or -lint")
	}
	if cfg.Watch && cfg.DryRun {
		return nil, errors.New("-watch cannot be combined with -n")
	}
	return &cfg, nil
}
