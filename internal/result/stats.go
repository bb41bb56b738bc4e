package result

import (
	"math"
	"sort"

	"github.com/Omar0902/SDOM/internal/model"
)

// DemandStatistics summarizes the residual-demand distribution an
// InputBundle presents to the solver, with the same percentile
// treatment one would apply to any hourly price or load series.
type DemandStatistics struct {
	Count              int
	MinMW, MaxMW       float64
	MeanMW             float64
	P05MW, P95MW       float64
	PeakResidualLoadMW float64
}

// ComputeDemandStatistics summarizes in.Demand net of the fixed-clean
// activation series, the same residual load peakResidualDemand (in
// solve/build.go) sizes single-stage balancing capacity against.
func ComputeDemandStatistics(in *model.InputBundle) DemandStatistics {
	s := DemandStatistics{Count: in.NHours}
	if in.NHours == 0 {
		return s
	}

	vals := make([]float64, in.NHours)
	sum := 0.0
	minv, maxv := math.Inf(1), math.Inf(-1)
	for i, h := range in.Hours() {
		residual := model.At(in.Demand, h) -
			in.Scalars.AlphaNuclear*model.At(in.Nuclear, h) -
			in.Scalars.AlphaHydro*model.At(in.HydroRef, h) -
			in.Scalars.AlphaOtherRenewables*model.At(in.OtherRenewables, h)
		vals[i] = residual
		sum += residual
		if residual < minv {
			minv = residual
		}
		if residual > maxv {
			maxv = residual
		}
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	s.MinMW = minv
	s.MaxMW = maxv
	s.MeanMW = sum / float64(len(vals))
	s.P05MW = percentileSorted(sorted, 0.05)
	s.P95MW = percentileSorted(sorted, 0.95)
	s.PeakResidualLoadMW = maxv
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
