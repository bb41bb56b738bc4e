package solve

import (
	"fmt"
	"time"

	highs "github.com/bartolsthoorn/gohighs"
	"github.com/google/uuid"

	"github.com/Omar0902/SDOM/internal/build"
	"github.com/Omar0902/SDOM/internal/config"
	"github.com/Omar0902/SDOM/internal/errs"
)

// problemStats mirrors the "problem statistics from the solver" C7
// needs (constraint, variable, binary-variable counts).
type problemStats struct {
	NumRows   int
	NumCols   int
	NumBinary int
}

// RunResult is what one HiGHS invocation returns to the orchestrator:
// the raw primal column values (nil unless status is optimal), the
// reported objective value, and the statistics C7 packages verbatim.
type RunResult struct {
	RunID          string
	Status         string
	ColumnValues   []float64
	ObjectiveValue float64
	Stats          problemStats
}

// Solve translates m into a gohighs.Model, applies the options derived
// from cfg, runs the solver, and maps its termination condition onto the
// five error kinds of §7. stage labels the Prometheus series ("single",
// "stage_a", "stage_b").
func Solve(m *build.Model, cfg config.SolverConfig, stage string) (*RunResult, error) {
	runID := uuid.NewString()

	hm := &highs.Model{
		Maximize: m.Maximize,
		Offset:   m.Offset,
		ColCosts: append([]float64(nil), m.ColCosts...),
		ColLower: append([]float64(nil), m.ColLower...),
		ColUpper: append([]float64(nil), m.ColUpper...),
		RowLower: append([]float64(nil), m.RowLower...),
		RowUpper: append([]float64(nil), m.RowUpper...),
	}
	hm.VarTypes = make([]highs.VariableType, len(m.VarKinds))
	numBinary := 0
	for i, k := range m.VarKinds {
		switch k {
		case build.Binary:
			hm.VarTypes[i] = highs.VariableTypeInteger
			numBinary++
		case build.Integer:
			hm.VarTypes[i] = highs.VariableTypeInteger
		default:
			hm.VarTypes[i] = highs.VariableTypeContinuous
		}
	}
	hm.ConstMatrix = make([]highs.Nonzero, len(m.ConstMatrix))
	for i, nz := range m.ConstMatrix {
		hm.ConstMatrix[i] = highs.Nonzero{Row: nz.Row, Col: nz.Col, Val: nz.Val}
	}

	opts := solveOptions(cfg)

	start := time.Now()
	sol, err := hm.Solve(opts...)
	elapsed := time.Since(start)

	stats := problemStats{NumRows: m.NumRows(), NumCols: m.NumCols(), NumBinary: numBinary}
	recordProblemStats(stage, &stats)

	if err != nil {
		solveDurationSeconds.WithLabelValues(stage, "solver_error").Observe(elapsed.Seconds())
		return nil, errs.NewSolverError("solve", err)
	}

	status := fmt.Sprintf("%v", sol.Status)
	solveDurationSeconds.WithLabelValues(stage, status).Observe(elapsed.Seconds())

	switch sol.Status {
	case highs.ModelStatusOptimal:
		return &RunResult{
			RunID:          runID,
			Status:         status,
			ColumnValues:   sol.ColumnValues,
			ObjectiveValue: sol.ObjectiveValue,
			Stats:          stats,
		}, nil
	case highs.ModelStatusInfeasible, highs.ModelStatusUnbounded:
		return nil, &errs.InfeasibilityError{Stage: stage, Status: status}
	case highs.ModelStatusTimeLimit:
		return nil, &errs.TimeoutError{Stage: stage, HasIncumbent: sol.ColumnValues != nil, IncumbentValue: sol.ObjectiveValue}
	default:
		return nil, errs.NewSolverError("solve", fmt.Errorf("unexpected termination status %v", sol.Status))
	}
}

func solveOptions(cfg config.SolverConfig) []highs.SolveOption {
	var opts []highs.SolveOption
	if tl := cfg.TimeLimitSeconds(); tl > 0 {
		opts = append(opts, highs.WithTimeLimit(tl))
	}
	for name, value := range cfg.Options {
		opts = append(opts, highs.WithStringOption(name, value))
	}
	return opts
}
