package result

import (
	"math"
	"testing"

	"github.com/Omar0902/SDOM/internal/model"
)

func TestPercentileSorted(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{1, 50},
		{0.5, 30},
		{0.25, 20},
		{0.1, 14},
	}
	for _, c := range cases {
		if got := percentileSorted(sorted, c.q); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("percentileSorted(%v, %v) = %v, want %v", sorted, c.q, got, c.want)
		}
	}
}

func TestPercentileSortedEmpty(t *testing.T) {
	if got := percentileSorted(nil, 0.5); got != 0 {
		t.Errorf("percentileSorted(nil, 0.5) = %v, want 0", got)
	}
}

func TestComputeDemandStatistics(t *testing.T) {
	in := &model.InputBundle{
		NHours:          4,
		Demand:          []float64{100, 80, 120, 100},
		Nuclear:         []float64{0, 0, 0, 0},
		HydroRef:        []float64{10, 10, 10, 10},
		OtherRenewables: []float64{0, 0, 0, 0},
		Scalars:         model.Scalars{AlphaHydro: 1},
	}
	stats := ComputeDemandStatistics(in)

	if stats.Count != 4 {
		t.Errorf("Count = %d, want 4", stats.Count)
	}
	if stats.MinMW != 70 {
		t.Errorf("MinMW = %v, want 70 (80 - 10 hydro)", stats.MinMW)
	}
	if stats.MaxMW != 110 {
		t.Errorf("MaxMW = %v, want 110 (120 - 10 hydro)", stats.MaxMW)
	}
	if stats.PeakResidualLoadMW != stats.MaxMW {
		t.Errorf("PeakResidualLoadMW = %v, want MaxMW %v", stats.PeakResidualLoadMW, stats.MaxMW)
	}
	wantMean := (90.0 + 70.0 + 110.0 + 90.0) / 4
	if math.Abs(stats.MeanMW-wantMean) > 1e-9 {
		t.Errorf("MeanMW = %v, want %v", stats.MeanMW, wantMean)
	}
}

func TestComputeDemandStatisticsEmptyHorizon(t *testing.T) {
	in := &model.InputBundle{NHours: 0}
	stats := ComputeDemandStatistics(in)
	if stats.Count != 0 {
		t.Errorf("Count = %d, want 0", stats.Count)
	}
}
