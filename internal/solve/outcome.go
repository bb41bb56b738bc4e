package solve

import (
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// Outcome is what the orchestrator hands to C7. For a single-stage solve
// only Final is populated; for a two-stage resilience solve, StageA is
// also populated so that a caller can report the design-stage storage
// sizing alongside the year-long operation result.
type Outcome struct {
	Input *model.InputBundle

	StageA *StageResult // nil unless resilience was enabled
	Final  *StageResult
}

// StageResult pairs one solved model with the registry that declared it,
// so C7 can look columns up by name against the right RunResult.
type StageResult struct {
	Registry *registry.Registry
	Run      *RunResult
}

// Value returns the primal value of a declared column, or 0 if the
// column was never declared under this stage (e.g. a trade column absent
// under Trade Disabled).
func (s *StageResult) Value(name string) float64 {
	h, ok := s.Registry.Col(name)
	if !ok {
		return 0
	}
	if h.Col >= len(s.Run.ColumnValues) {
		return 0
	}
	return s.Run.ColumnValues[h.Col]
}
