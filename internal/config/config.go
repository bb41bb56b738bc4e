// Package config loads the YAML-backed solver configuration of §6: a
// dictionary keyed by solver_name, executable_path, solver-native
// options, and driver-native solve_keywords (e.g. timelimit).
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Omar0902/SDOM/internal/errs"

	"gopkg.in/yaml.v3"
)

var (
	errNilConfig         = errors.New("config is nil")
	errMissingSolverName = errors.New("solver.solver_name is required")
)

// Config is the on-disk solver configuration shape.
type Config struct {
	// SolverFile optionally points at a separate YAML carrying Solver;
	// explicit Solver fields in this file override it, field by field.
	SolverFile string       `yaml:"solver_file"`
	Solver     SolverConfig `yaml:"solver"`
}

// SolverConfig is the dictionary of §6's "Solver configuration".
type SolverConfig struct {
	SolverName     string            `yaml:"solver_name"`
	ExecutablePath string            `yaml:"executable_path"`
	Options        map[string]string `yaml:"options"`
	SolveKeywords  map[string]any    `yaml:"solve_keywords"`
}

// TimeLimitSeconds reads the driver-native "timelimit" solve keyword, if
// present, defaulting to 0 (no limit) otherwise.
func (s SolverConfig) TimeLimitSeconds() float64 {
	v, ok := s.SolveKeywords["timelimit"]
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	default:
		return 0
	}
}

// Load reads and validates a solver configuration file, merging in
// SolverFile if set, a file-plus-inline-overrides pattern.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config without validating it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewConfigError("load_config", err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, errs.NewConfigError("load_config", err)
	}
	if c.SolverFile != "" {
		solverPath := c.SolverFile
		if !filepath.IsAbs(solverPath) {
			cand := filepath.Join(filepath.Dir(path), solverPath)
			if _, err := os.Stat(cand); err == nil {
				solverPath = cand
			}
		}
		loaded, err := loadSolverFile(solverPath)
		if err != nil {
			return nil, err
		}
		c.Solver = MergeSolver(loaded, c.Solver)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errs.NewConfigError("validate_config", errNilConfig)
	}
	if c.Solver.SolverName == "" {
		return errs.NewConfigError("validate_config", errMissingSolverName)
	}
	return nil
}

type solverFileWrapper struct {
	Solver SolverConfig `yaml:"solver"`
}

func loadSolverFile(path string) (SolverConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SolverConfig{}, errs.NewConfigError("load_solver_file", err)
	}
	var w solverFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return SolverConfig{}, errs.NewConfigError("load_solver_file", err)
	}
	return w.Solver, nil
}

// MergeSolver overlays non-zero fields from override onto base.
func MergeSolver(base, override SolverConfig) SolverConfig {
	out := base
	if override.SolverName != "" {
		out.SolverName = override.SolverName
	}
	if override.ExecutablePath != "" {
		out.ExecutablePath = override.ExecutablePath
	}
	if len(override.Options) > 0 {
		if out.Options == nil {
			out.Options = make(map[string]string, len(override.Options))
		}
		for k, v := range override.Options {
			out.Options[k] = v
		}
	}
	if len(override.SolveKeywords) > 0 {
		if out.SolveKeywords == nil {
			out.SolveKeywords = make(map[string]any, len(override.SolveKeywords))
		}
		for k, v := range override.SolveKeywords {
			out.SolveKeywords[k] = v
		}
	}
	return out
}
