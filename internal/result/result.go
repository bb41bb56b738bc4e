// Package result implements the result extractor (C7): reading primal
// column values from a solved model, disaggregating cost terms to match
// the objective structure, and packaging everything into tabular views
// ready for internal/export.
package result

import (
	"math"

	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
	"github.com/Omar0902/SDOM/internal/solve"
)

// Result is the full C7 product of one solved Outcome.
type Result struct {
	Scalars      ScalarAggregates
	Dispatch     []DispatchRow
	Storage      []StorageRow
	Thermal      []ThermalRow
	Installed    []InstalledRow
	CostByItem   map[string]float64
	ProblemStats solve.RunResult
	Demand       DemandStatistics
}

// ScalarAggregates holds per-technology installed capacity and total
// generation, plus the solver-reported total cost.
type ScalarAggregates struct {
	TotalCost float64

	InstalledPVMW             map[model.PlantID]float64
	InstalledWindMW           map[model.PlantID]float64
	InstalledBalancingMW      map[model.UnitID]float64
	InstalledStoragePowerMW   map[model.TechID]float64
	InstalledStorageEnergyMWh map[model.TechID]float64

	TotalGenerationMWh map[string]float64 // keyed by "pv","wind","hydro","nuclear","other","balancing","storage_discharge"
}

// DispatchRow is one row of the per-hour dispatch table.
type DispatchRow struct {
	Hour                     model.Hour
	PVMWh, WindMWh           float64
	CurtailPVMWh             float64
	CurtailWindMWh           float64
	HydroMWh, NuclearMWh     float64
	OtherRenewablesMWh       float64
	BalancingMWh             float64
	ImportMWh, ExportMWh     float64
	StorageChargeMWh         float64
	StorageDischargeMWh      float64
}

// StorageRow is one row of the per-(hour, technology) storage table.
type StorageRow struct {
	Hour      model.Hour
	Tech      model.TechID
	ChargeMWh float64
	DischargeMWh float64
	SOCMWh    float64
}

// ThermalRow is one row of the per-(hour, balancing unit) table.
type ThermalRow struct {
	Hour model.Hour
	Unit model.UnitID
	MWh  float64
}

// InstalledRow is one row of the per-plant build-decision table.
type InstalledRow struct {
	ID            string
	Kind          string // "pv", "wind", "balancing", "storage"
	BuiltFraction float64
	CapacityMW    float64
	EnergyMWh     float64 // storage only
}

// Extract reads every primal value out of outcome.Final (and, for the
// scalar/installed tables, outcome.StageA's storage sizings are already
// folded into Final's lower bounds -- the final solve's own values are
// authoritative) and builds the full Result.
func Extract(outcome *solve.Outcome) *Result {
	in := outcome.Input
	final := outcome.Final

	r := &Result{
		CostByItem: make(map[string]float64),
	}
	r.ProblemStats = *final.Run
	r.Scalars.TotalCost = final.Run.ObjectiveValue
	r.Demand = ComputeDemandStatistics(in)

	extractInstalled(in, final, r)
	extractDispatch(in, final, r)
	extractStorage(in, final, r)
	extractThermal(in, final, r)
	extractCostDecomposition(in, final, r)
	return r
}

func extractInstalled(in *model.InputBundle, s *solve.StageResult, r *Result) {
	r.Scalars.InstalledPVMW = map[model.PlantID]float64{}
	for _, p := range in.PVPlants {
		frac := s.Value(registry.Name("F_pv", p))
		mw := frac * in.PVAttrs[p].CapacityMW
		r.Scalars.InstalledPVMW[p] = mw
		r.Installed = append(r.Installed, InstalledRow{ID: string(p), Kind: "pv", BuiltFraction: frac, CapacityMW: mw})
	}

	r.Scalars.InstalledWindMW = map[model.PlantID]float64{}
	for _, w := range in.WindPlants {
		frac := s.Value(registry.Name("F_wind", w))
		mw := frac * in.WindAttrs[w].CapacityMW
		r.Scalars.InstalledWindMW[w] = mw
		r.Installed = append(r.Installed, InstalledRow{ID: string(w), Kind: "wind", BuiltFraction: frac, CapacityMW: mw})
	}

	r.Scalars.InstalledBalancingMW = map[model.UnitID]float64{}
	for _, k := range in.BalancingUnits {
		mw := s.Value(registry.Name("P_bal", k))
		r.Scalars.InstalledBalancingMW[k] = mw
		r.Installed = append(r.Installed, InstalledRow{ID: string(k), Kind: "balancing", BuiltFraction: 1, CapacityMW: mw})
	}

	r.Scalars.InstalledStoragePowerMW = map[model.TechID]float64{}
	r.Scalars.InstalledStorageEnergyMWh = map[model.TechID]float64{}
	for _, j := range in.StorageTechs {
		pDis := s.Value(registry.Name("P_dis", j))
		pCh := s.Value(registry.Name("P_ch", j))
		e := s.Value(registry.Name("E", j))
		power := math.Max(pDis, pCh)
		r.Scalars.InstalledStoragePowerMW[j] = power
		r.Scalars.InstalledStorageEnergyMWh[j] = e
		r.Installed = append(r.Installed, InstalledRow{ID: string(j), Kind: "storage", BuiltFraction: 1, CapacityMW: power, EnergyMWh: e})
	}
}

func extractDispatch(in *model.InputBundle, s *solve.StageResult, r *Result) {
	gen := map[string]float64{}
	for _, h := range in.Hours() {
		row := DispatchRow{Hour: h}
		for _, p := range in.PVPlants {
			row.PVMWh += s.Value(registry.Name("G_pv", p, h))
			row.CurtailPVMWh += s.Value(registry.Name("C_pv", p, h))
		}
		for _, w := range in.WindPlants {
			row.WindMWh += s.Value(registry.Name("G_wind", w, h))
			row.CurtailWindMWh += s.Value(registry.Name("C_wind", w, h))
		}
		for _, k := range in.BalancingUnits {
			row.BalancingMWh += s.Value(registry.Name("G_bal", k, h))
		}
		for _, j := range in.StorageTechs {
			row.StorageChargeMWh += s.Value(registry.Name("D_ch", j, h))
			row.StorageDischargeMWh += s.Value(registry.Name("D_dis", j, h))
		}
		row.HydroMWh = s.Value(registry.Name("G_hyd", h))
		row.NuclearMWh = in.Scalars.AlphaNuclear * model.At(in.Nuclear, h)
		row.OtherRenewablesMWh = in.Scalars.AlphaOtherRenewables * model.At(in.OtherRenewables, h)
		row.ImportMWh = s.Value(registry.Name("M", h))
		row.ExportMWh = s.Value(registry.Name("X", h))

		gen["pv"] += row.PVMWh
		gen["wind"] += row.WindMWh
		gen["hydro"] += row.HydroMWh
		gen["nuclear"] += row.NuclearMWh
		gen["other"] += row.OtherRenewablesMWh
		gen["balancing"] += row.BalancingMWh
		gen["storage_discharge"] += row.StorageDischargeMWh

		r.Dispatch = append(r.Dispatch, row)
	}
	r.Scalars.TotalGenerationMWh = gen
}

func extractStorage(in *model.InputBundle, s *solve.StageResult, r *Result) {
	for _, j := range in.StorageTechs {
		for _, h := range in.Hours() {
			r.Storage = append(r.Storage, StorageRow{
				Hour:         h,
				Tech:         j,
				ChargeMWh:    s.Value(registry.Name("D_ch", j, h)),
				DischargeMWh: s.Value(registry.Name("D_dis", j, h)),
				SOCMWh:       s.Value(registry.Name("S", j, h)),
			})
		}
	}
}

func extractThermal(in *model.InputBundle, s *solve.StageResult, r *Result) {
	for _, k := range in.BalancingUnits {
		for _, h := range in.Hours() {
			r.Thermal = append(r.Thermal, ThermalRow{Hour: h, Unit: k, MWh: s.Value(registry.Name("G_bal", k, h))})
		}
	}
}

// extractCostDecomposition disaggregates CostByItem following exactly
// the objective structure of §4.4, so that summing its entries reproduces
// the solver's reported total cost to within tolerance (§8 invariant 8).
func extractCostDecomposition(in *model.InputBundle, s *solve.StageResult, r *Result) {
	const kwPerMW = 1000.0

	var pvCapex, pvFOM float64
	for _, p := range in.PVPlants {
		a := in.PVAttrs[p]
		frac := s.Value(registry.Name("F_pv", p))
		capKW := a.CapacityMW * kwPerMW
		pvCapex += frac * in.CRFVRE * (capKW*a.CapexPerKW + a.TransmissionCapex)
		pvFOM += frac * capKW * a.FOMPerKWYr
	}
	r.CostByItem["pv_capex"] = pvCapex
	r.CostByItem["pv_fom"] = pvFOM

	var windCapex, windFOM float64
	for _, w := range in.WindPlants {
		a := in.WindAttrs[w]
		frac := s.Value(registry.Name("F_wind", w))
		capKW := a.CapacityMW * kwPerMW
		windCapex += frac * in.CRFVRE * (capKW*a.CapexPerKW + a.TransmissionCapex)
		windFOM += frac * capKW * a.FOMPerKWYr
	}
	r.CostByItem["wind_capex"] = windCapex
	r.CostByItem["wind_fom"] = windFOM

	var balCapex, balFOM, balFuelVOM float64
	for _, k := range in.BalancingUnits {
		u := in.Balancing[k]
		pBal := s.Value(registry.Name("P_bal", k))
		balCapex += in.CRFBal[k] * kwPerMW * u.CapexPerKW * pBal
		balFOM += kwPerMW * u.FOMPerKWYr * pBal
		for _, h := range in.Hours() {
			g := s.Value(registry.Name("G_bal", k, h))
			balFuelVOM += g * (u.HeatRate*u.FuelCostPerMWh + u.VOMPerMWh)
		}
	}
	r.CostByItem["balancing_capex"] = balCapex
	r.CostByItem["balancing_fom"] = balFOM
	r.CostByItem["balancing_fuel_vom"] = balFuelVOM

	var storPowerCapex, storEnergyCapex, storFOM, storVOM float64
	for _, j := range in.StorageTechs {
		t := in.Storage[j]
		pCh := s.Value(registry.Name("P_ch", j))
		pDis := s.Value(registry.Name("P_dis", j))
		e := s.Value(registry.Name("E", j))

		powerCapexPerMW := kwPerMW * t.PCapexPerKW
		powerFOMPerMW := kwPerMW * t.FOMPerKWYr
		energyCapexPerMWh := kwPerMW * t.ECapexPerKW

		storPowerCapex += in.CRFStorage[j] * (t.CostRatio*pCh + (1-t.CostRatio)*pDis) * powerCapexPerMW
		storFOM += (t.CostRatio*pCh + (1-t.CostRatio)*pDis) * powerFOMPerMW
		storEnergyCapex += in.CRFStorage[j] * e * energyCapexPerMWh
		for _, h := range in.Hours() {
			storVOM += s.Value(registry.Name("D_dis", j, h)) * t.VOMPerMWh
		}
	}
	r.CostByItem["storage_power_capex"] = storPowerCapex
	r.CostByItem["storage_energy_capex"] = storEnergyCapex
	r.CostByItem["storage_fom"] = storFOM
	r.CostByItem["storage_vom"] = storVOM

	if in.TradeEnabled() {
		var importCost, exportRevenue float64
		for _, h := range in.Hours() {
			importCost += s.Value(registry.Name("M", h)) * model.At(in.ImportPrice, h)
			exportRevenue += s.Value(registry.Name("X", h)) * model.At(in.ExportPrice, h)
		}
		r.CostByItem["import_cost"] = importCost
		r.CostByItem["export_revenue"] = -exportRevenue
	}
}
