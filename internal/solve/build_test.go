package solve

import (
	"testing"

	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

func flatSeries(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// trivialBundle is a 24-hour, constant-100-MW-demand case with one
// zero-capacity-factor PV plant and one balancing unit, and no
// clean-energy mandate.
func trivialBundle() *model.InputBundle {
	const n = 24
	in := &model.InputBundle{
		NHours:          n,
		Demand:          flatSeries(n, 100),
		Nuclear:         flatSeries(n, 0),
		HydroRef:        flatSeries(n, 0),
		OtherRenewables: flatSeries(n, 0),
		Scalars:         model.Scalars{DiscountRate: 0.05, GenMixTarget: 0},
		Formulations:    model.FormulationSelection{Hydro: "RunOfRiver"},

		PVPlants:       []model.PlantID{"pv_1"},
		PVCapFactor:    map[model.PlantID][]float64{"pv_1": flatSeries(n, 0)},
		PVAttrs:        map[model.PlantID]model.VREPlant{"pv_1": {ID: "pv_1", CapacityMW: 50, CapexPerKW: 900, FOMPerKWYr: 15}},
		WindCapFactor:  map[model.PlantID][]float64{},
		WindAttrs:      map[model.PlantID]model.VREPlant{},
		Storage:        map[model.TechID]model.StorageTech{},
		CoupledStorage: map[model.TechID]bool{},

		BalancingUnits: []model.UnitID{"gas_1"},
		Balancing: map[model.UnitID]model.BalancingUnit{
			"gas_1": {ID: "gas_1", MinCapacityMW: 0, MaxCapacityMW: 200, LifetimeYears: 25,
				CapexPerKW: 800, HeatRate: 1, FuelCostPerMWh: 10, VOMPerMWh: 0, FOMPerKWYr: 12},
		},
	}
	in.DeriveCRFs(20.0)
	return in
}

func TestBuildModelProducesWellFormedProblem(t *testing.T) {
	in := trivialBundle()
	assembly, err := BuildModel(in, false)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}

	if assembly.Model.NumCols() == 0 {
		t.Fatal("NumCols() = 0, want at least the core PV/balancing columns")
	}
	if assembly.Model.NumRows() == 0 {
		t.Fatal("NumRows() = 0, want at least the per-hour demand balance rows")
	}
	if len(assembly.Model.ColCosts) != assembly.Model.NumCols() {
		t.Fatalf("len(ColCosts) = %d, want %d", len(assembly.Model.ColCosts), assembly.Model.NumCols())
	}
	for i := range assembly.Model.ColLower {
		if assembly.Model.ColLower[i] > assembly.Model.ColUpper[i] {
			t.Fatalf("col %d: lower bound %v exceeds upper bound %v", i, assembly.Model.ColLower[i], assembly.Model.ColUpper[i])
		}
	}

	if _, ok := assembly.Registry.Col(registry.Name("F_pv", model.PlantID("pv_1"))); !ok {
		t.Error("expected F_pv[pv_1] to be declared")
	}
	if _, ok := assembly.Registry.Col(registry.Name("P_bal", model.UnitID("gas_1"))); !ok {
		t.Error("expected P_bal[gas_1] to be declared")
	}
}

func TestBuildModelRejectsUnknownHydroFormulation(t *testing.T) {
	in := trivialBundle()
	in.Formulations.Hydro = "NotARealFormulation"
	if _, err := BuildModel(in, false); err == nil {
		t.Fatal("BuildModel() = nil error, want a config error for the unknown hydro formulation")
	}
}

func TestBuildModelRejectsUnknownTradeFormulation(t *testing.T) {
	in := trivialBundle()
	in.Formulations.Imports = "SomethingElse"
	if _, err := BuildModel(in, false); err == nil {
		t.Fatal("BuildModel() = nil error, want a config error for the unknown trade formulation")
	}
}

func TestBuildModelResilienceAxisAddsOutageReserveRows(t *testing.T) {
	in := trivialBundle()
	withoutResilience, err := BuildModel(in, false)
	if err != nil {
		t.Fatalf("BuildModel(false) error = %v", err)
	}

	in.Scalars.CriticalPeakLoad = 50
	in.Scalars.MaxBackupPowerDur = 4
	in.Scalars.OutageStartHour = 1
	withResilience, err := BuildModel(in, true)
	if err != nil {
		t.Fatalf("BuildModel(true) error = %v", err)
	}

	// ResilienceEnabled declares no new columns (it only constrains
	// existing storage/VRE columns), but adds one outage-reserve row for
	// every hour outside the outage window.
	if withResilience.Model.NumCols() != withoutResilience.Model.NumCols() {
		t.Errorf("resilience-enabled build has %d columns, want %d (resilience adds no new columns)",
			withResilience.Model.NumCols(), withoutResilience.Model.NumCols())
	}
	wantRows := withoutResilience.Model.NumRows() + in.NHours - in.Scalars.MaxBackupPowerDur
	if withResilience.Model.NumRows() != wantRows {
		t.Errorf("resilience-enabled build has %d rows, want %d (one outage_reserve row per hour outside the outage window)",
			withResilience.Model.NumRows(), wantRows)
	}

	inWindow := map[model.Hour]bool{1: true, 2: true, 3: true, 4: true}
	for _, name := range withResilience.Model.RowNames {
		for h := range inWindow {
			if name == registry.Name("outage_reserve", h) {
				t.Errorf("found outage_reserve row for hour %d, which is inside the outage window", h)
			}
		}
	}
	if _, ok := findRow(withResilience.Model.RowNames, registry.Name("outage_reserve", model.Hour(5))); !ok {
		t.Error("expected an outage_reserve row for hour 5, which is outside the outage window")
	}
}

func findRow(names []string, want string) (int, bool) {
	for i, name := range names {
		if name == want {
			return i, true
		}
	}
	return 0, false
}

func TestBuildModelWithPriceNetLoadTradeEnabled(t *testing.T) {
	in := trivialBundle()
	in.Formulations.Imports = "PriceNetLoad"
	in.Formulations.Exports = "PriceNetLoad"
	in.ImportCap = flatSeries(in.NHours, 50)
	in.ImportPrice = flatSeries(in.NHours, 40)
	in.ExportCap = flatSeries(in.NHours, 50)
	in.ExportPrice = flatSeries(in.NHours, 20)

	assembly, err := BuildModel(in, false)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}
	if _, ok := assembly.Registry.Col(registry.Name("M", model.Hour(1))); !ok {
		t.Error("expected M[1] (import column) to be declared under PriceNetLoad")
	}
	if _, ok := assembly.Registry.Col(registry.Name("X", model.Hour(1))); !ok {
		t.Error("expected X[1] (export column) to be declared under PriceNetLoad")
	}
	if !in.TradeEnabled() {
		t.Error("TradeEnabled() = false, want true once either axis selects PriceNetLoad")
	}
}

func TestBuildModelNetLoadIndicatorFoldsDemandConstant(t *testing.T) {
	in := trivialBundle()
	in.Formulations.Imports = "PriceNetLoad"
	in.Formulations.Exports = "PriceNetLoad"
	in.ImportCap = flatSeries(in.NHours, 50)
	in.ImportPrice = flatSeries(in.NHours, 40)
	in.ExportCap = flatSeries(in.NHours, 50)
	in.ExportPrice = flatSeries(in.NHours, 20)

	assembly, err := BuildModel(in, false)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}

	// Demand is flat 100, PV capacity factor is flat 0, and hydro/nuclear/
	// other renewables are all zero, so Lambda_1's constant part is
	// exactly the 100 MW of demand and bigM resolves to peak demand (100).
	const wantConst = 100.0
	const wantBigM = 100.0

	posRow, negRow := -1, -1
	wantPos := registry.Name("netload_ind_pos", model.Hour(1))
	wantNeg := registry.Name("netload_ind_neg", model.Hour(1))
	for i, name := range assembly.Model.RowNames {
		switch name {
		case wantPos:
			posRow = i
		case wantNeg:
			negRow = i
		}
	}
	if posRow < 0 || negRow < 0 {
		t.Fatalf("expected both %q and %q rows to be emitted", wantPos, wantNeg)
	}
	if got := assembly.Model.RowUpper[posRow]; got != -wantConst {
		t.Errorf("netload_ind_pos[1] upper bound = %v, want %v (demand constant folded into the RHS)", got, -wantConst)
	}
	wantNegUpper := wantBigM - 1e-6 + wantConst
	if got := assembly.Model.RowUpper[negRow]; got != wantNegUpper {
		t.Errorf("netload_ind_neg[1] upper bound = %v, want %v", got, wantNegUpper)
	}
}

func TestBuildModelWithMonthlyBudgetHydro(t *testing.T) {
	in := trivialBundle()
	in.Formulations.Hydro = "MonthlyBudget"
	in.HydroRef = flatSeries(in.NHours, 5)
	in.HydroMin = flatSeries(in.NHours, 0)
	in.HydroMax = flatSeries(in.NHours, 10)
	in.Scalars.AlphaHydro = 1
	in.HydroPeriods = []model.HydroPeriod{{Index: 1, Hours: in.Hours(), Budget: 5 * float64(in.NHours)}}

	assembly, err := BuildModel(in, false)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}
	foundBudgetRow := false
	for _, name := range assembly.Model.RowNames {
		if name == registry.Name("hydro_budget", 1) {
			foundBudgetRow = true
		}
	}
	if !foundBudgetRow {
		t.Error("expected a hydro_budget[1] row under MonthlyBudget")
	}
}

func TestBoundBalancingCapacityAddsPeakDemandRow(t *testing.T) {
	in := trivialBundle()
	assembly, err := BuildModel(in, false)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}
	before := assembly.Model.NumRows()
	BoundBalancingCapacity(assembly, in)
	if assembly.Model.NumRows() != before+1 {
		t.Fatalf("NumRows() = %d, want %d after BoundBalancingCapacity", assembly.Model.NumRows(), before+1)
	}
	last := assembly.Model.RowUpper[assembly.Model.NumRows()-1]
	if last != 100 {
		t.Errorf("peak residual demand row upper bound = %v, want 100 (flat 100 MW demand, no must-take generation)", last)
	}
}
