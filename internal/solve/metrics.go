package solve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "sdom_solve_duration_seconds",
		Help: "Wall-clock duration of a single solver invocation.",
	}, []string{"stage", "status"})

	solveProblemRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sdom_solve_problem_rows",
		Help: "Number of constraint rows in the most recently solved model.",
	}, []string{"stage"})

	solveProblemCols = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sdom_solve_problem_cols",
		Help: "Number of decision variable columns in the most recently solved model.",
	}, []string{"stage"})

	solveProblemBinaries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sdom_solve_problem_binary_cols",
		Help: "Number of binary decision variable columns in the most recently solved model.",
	}, []string{"stage"})
)

func recordProblemStats(stage string, m *problemStats) {
	solveProblemRows.WithLabelValues(stage).Set(float64(m.NumRows))
	solveProblemCols.WithLabelValues(stage).Set(float64(m.NumCols))
	solveProblemBinaries.WithLabelValues(stage).Set(float64(m.NumBinary))
}
