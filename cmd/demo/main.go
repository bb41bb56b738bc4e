package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Omar0902/SDOM/internal/config"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/result"
	"github.com/Omar0902/SDOM/internal/solve"
)

// Demo:
//   - Build the trivial scenario in memory: 24 hours, constant 100 MW demand,
//     one PV plant with zero capacity factor, one balancing unit with no
//     fuel-free capacity, no clean-energy mandate.
//   - Run the single-stage solve and print the dispatch and cost it
//     produces, with no case directory and no solver config file
//     required -- the same "zero-setup illustrative run" shape as a
//     demo that runs a fixed schedule against a bundled sample dataset
//     with no config file required.
func main() {
	solverPath := flag.String("solver", "", "Optional path to a solver config YAML; defaults to HiGHS with no options")
	flag.Parse()

	in := scenario1()

	cfg := config.SolverConfig{SolverName: "highs"}
	if *solverPath != "" {
		loaded, err := config.Load(*solverPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded.Solver
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	orch := solve.New(cfg, log)

	outcome, err := orch.Solve(in, false)
	if err != nil {
		panic(err)
	}

	res := result.Extract(outcome)

	fmt.Printf("Scenario 1: %d hours, constant demand 100 MW, one balancing unit\n\n", in.NHours)
	fmt.Printf("Total cost: $%.2f\n", res.Scalars.TotalCost)
	for item, v := range res.CostByItem {
		fmt.Printf("  %-22s $%.2f\n", item, v)
	}
	fmt.Println()
	for i := 0; i < 6 && i < len(res.Dispatch); i++ {
		d := res.Dispatch[i]
		fmt.Printf("hour %2d  balancing=%.1f MW  pv=%.1f MW  curtail=%.1f MW\n", d.Hour, d.BalancingMWh, d.PVMWh, d.CurtailPVMWh)
	}
}

func scenario1() *model.InputBundle {
	const n = 24
	flat := func(v float64) []float64 {
		s := make([]float64, n)
		for i := range s {
			s[i] = v
		}
		return s
	}

	in := &model.InputBundle{
		NHours:          n,
		Demand:          flat(100),
		Nuclear:         flat(0),
		HydroRef:        flat(0),
		OtherRenewables: flat(0),
		Scalars: model.Scalars{
			DiscountRate: 0.05,
			GenMixTarget: 0,
		},
		Formulations: model.FormulationSelection{Hydro: "RunOfRiver"},

		PVPlants:      []model.PlantID{"pv_1"},
		PVCapFactor:   map[model.PlantID][]float64{"pv_1": flat(0)},
		PVAttrs:       map[model.PlantID]model.VREPlant{"pv_1": {ID: "pv_1", CapacityMW: 50, CapexPerKW: 900, FOMPerKWYr: 15}},
		WindPlants:    nil,
		WindCapFactor: map[model.PlantID][]float64{},
		WindAttrs:     map[model.PlantID]model.VREPlant{},

		StorageTechs:   nil,
		Storage:        map[model.TechID]model.StorageTech{},
		CoupledStorage: map[model.TechID]bool{},
		CRFStorage:     map[model.TechID]float64{},

		BalancingUnits: []model.UnitID{"gas_1"},
		Balancing: map[model.UnitID]model.BalancingUnit{
			"gas_1": {
				ID: "gas_1", MinCapacityMW: 0, MaxCapacityMW: 200, LifetimeYears: 25,
				CapexPerKW: 800, HeatRate: 1, FuelCostPerMWh: 10, VOMPerMWh: 0, FOMPerKWYr: 12,
			},
		},
	}
	in.DeriveCRFs(20.0)
	return in
}
