package result

import (
	"math"
	"testing"

	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
	"github.com/Omar0902/SDOM/internal/solve"
)

// fakeStageResult declares one column per entry of values (named as
// solve.BuildModel names them) and assigns it that fixed primal value, so
// Extract can be exercised without running HiGHS; a column not listed
// reads back as 0.
func fakeStageResult(in *model.InputBundle, values map[string]float64) *solve.StageResult {
	reg := registry.New()
	for name := range values {
		reg.NewVar(name, 0, math.Inf(1), registry.Continuous)
	}
	// NewVar assigns columns in declaration order, which follows map
	// iteration order here; read values back out by name rather than
	// relying on that order directly.
	ordered := make([]float64, len(reg.Vars()))
	for _, h := range reg.Vars() {
		ordered[h.Col] = values[h.Name]
	}
	return &solve.StageResult{
		Registry: reg,
		Run:      &solve.RunResult{ColumnValues: ordered, ObjectiveValue: 0},
	}
}

func twoHourBundle() *model.InputBundle {
	in := &model.InputBundle{
		NHours:          2,
		Demand:          []float64{100, 100},
		Nuclear:         []float64{0, 0},
		HydroRef:        []float64{0, 0},
		OtherRenewables: []float64{0, 0},
		Scalars:         model.Scalars{DiscountRate: 0.05},
		PVPlants:        []model.PlantID{"pv_1"},
		PVAttrs:         map[model.PlantID]model.VREPlant{"pv_1": {ID: "pv_1", CapacityMW: 50, CapexPerKW: 900, FOMPerKWYr: 15}},
		BalancingUnits:  []model.UnitID{"gas_1"},
		Balancing: map[model.UnitID]model.BalancingUnit{
			"gas_1": {ID: "gas_1", MaxCapacityMW: 200, LifetimeYears: 25, CapexPerKW: 800,
				HeatRate: 1, FuelCostPerMWh: 10, VOMPerMWh: 0, FOMPerKWYr: 12},
		},
	}
	in.DeriveCRFs(20.0)
	return in
}

func TestExtractInstalledCapacities(t *testing.T) {
	in := twoHourBundle()
	values := map[string]float64{
		registry.Name("F_pv", model.PlantID("pv_1")): 0.5,
		registry.Name("P_bal", model.UnitID("gas_1")): 120,
		registry.Name("G_pv", model.PlantID("pv_1"), model.Hour(1)): 0,
		registry.Name("C_pv", model.PlantID("pv_1"), model.Hour(1)): 0,
		registry.Name("G_pv", model.PlantID("pv_1"), model.Hour(2)): 0,
		registry.Name("C_pv", model.PlantID("pv_1"), model.Hour(2)): 0,
		registry.Name("G_bal", model.UnitID("gas_1"), model.Hour(1)): 100,
		registry.Name("G_bal", model.UnitID("gas_1"), model.Hour(2)): 100,
	}
	outcome := &solve.Outcome{Input: in, Final: fakeStageResult(in, values)}

	r := Extract(outcome)

	if got := r.Scalars.InstalledPVMW["pv_1"]; got != 25 {
		t.Errorf("InstalledPVMW[pv_1] = %v, want 25 (0.5 * 50MW)", got)
	}
	if got := r.Scalars.InstalledBalancingMW["gas_1"]; got != 120 {
		t.Errorf("InstalledBalancingMW[gas_1] = %v, want 120", got)
	}
	if len(r.Dispatch) != 2 {
		t.Fatalf("len(Dispatch) = %d, want 2", len(r.Dispatch))
	}
	if r.Dispatch[0].BalancingMWh != 100 {
		t.Errorf("Dispatch[0].BalancingMWh = %v, want 100", r.Dispatch[0].BalancingMWh)
	}
}

func TestExtractCostDecompositionMatchesExpectedTerms(t *testing.T) {
	in := twoHourBundle()
	values := map[string]float64{
		registry.Name("F_pv", model.PlantID("pv_1")): 1.0,
		registry.Name("P_bal", model.UnitID("gas_1")): 100,
		registry.Name("G_bal", model.UnitID("gas_1"), model.Hour(1)): 100,
		registry.Name("G_bal", model.UnitID("gas_1"), model.Hour(2)): 100,
	}
	outcome := &solve.Outcome{Input: in, Final: fakeStageResult(in, values)}
	r := Extract(outcome)

	pv := in.PVAttrs["pv_1"]
	wantPVCapex := in.CRFVRE * pv.CapacityMW * 1000 * pv.CapexPerKW
	if math.Abs(r.CostByItem["pv_capex"]-wantPVCapex) > 1e-6 {
		t.Errorf("pv_capex = %v, want %v", r.CostByItem["pv_capex"], wantPVCapex)
	}
	wantPVFOM := pv.CapacityMW * 1000 * pv.FOMPerKWYr
	if math.Abs(r.CostByItem["pv_fom"]-wantPVFOM) > 1e-6 {
		t.Errorf("pv_fom = %v, want %v", r.CostByItem["pv_fom"], wantPVFOM)
	}

	bal := in.Balancing["gas_1"]
	wantBalCapex := in.CRFBal["gas_1"] * 1000 * bal.CapexPerKW * 100
	if math.Abs(r.CostByItem["balancing_capex"]-wantBalCapex) > 1e-6 {
		t.Errorf("balancing_capex = %v, want %v", r.CostByItem["balancing_capex"], wantBalCapex)
	}
	wantFuelVOM := 200 * (bal.HeatRate*bal.FuelCostPerMWh + bal.VOMPerMWh)
	if math.Abs(r.CostByItem["balancing_fuel_vom"]-wantFuelVOM) > 1e-6 {
		t.Errorf("balancing_fuel_vom = %v, want %v", r.CostByItem["balancing_fuel_vom"], wantFuelVOM)
	}

	if _, ok := r.CostByItem["import_cost"]; ok {
		t.Error("import_cost should be absent when trade is disabled")
	}
}
