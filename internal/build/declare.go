package build

import (
	"math"

	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// DeclareCoreVars declares every set/parameter-independent decision
// variable of §3 that exists regardless of which sub-formulation is
// selected per axis: VRE investment fractions, balancing capacities,
// storage power/energy, and the per-hour dispatch columns they drive.
// Hydro, trade, and resilience columns are declared by their respective
// Formulation.DeclareVars (C3) after this runs.
func DeclareCoreVars(reg *registry.Registry, in *model.InputBundle) error {
	for _, p := range in.PVPlants {
		reg.NewVar(registry.Name("F_pv", p), 0, 1, registry.Continuous)
	}
	for _, w := range in.WindPlants {
		reg.NewVar(registry.Name("F_wind", w), 0, 1, registry.Continuous)
	}
	for _, k := range in.BalancingUnits {
		u := in.Balancing[k]
		reg.NewVar(registry.Name("P_bal", k), u.MinCapacityMW, u.MaxCapacityMW, registry.Continuous)
	}
	for _, j := range in.StorageTechs {
		s := in.Storage[j]
		reg.NewVar(registry.Name("P_ch", j), 0, s.MaxPowerMW, registry.Continuous)
		reg.NewVar(registry.Name("P_dis", j), 0, s.MaxPowerMW, registry.Continuous)
		reg.NewVar(registry.Name("E", j), 0, math.Inf(1), registry.Continuous)
	}

	for _, h := range in.Hours() {
		for _, p := range in.PVPlants {
			reg.NewVar(registry.Name("G_pv", p, h), 0, math.Inf(1), registry.Continuous)
			reg.NewVar(registry.Name("C_pv", p, h), 0, math.Inf(1), registry.Continuous)
		}
		for _, w := range in.WindPlants {
			reg.NewVar(registry.Name("G_wind", w, h), 0, math.Inf(1), registry.Continuous)
			reg.NewVar(registry.Name("C_wind", w, h), 0, math.Inf(1), registry.Continuous)
		}
		for _, k := range in.BalancingUnits {
			reg.NewVar(registry.Name("G_bal", k, h), 0, math.Inf(1), registry.Continuous)
		}
		for _, j := range in.StorageTechs {
			s := in.Storage[j]
			reg.NewVar(registry.Name("D_ch", j, h), 0, s.MaxPowerMW, registry.Continuous)
			reg.NewVar(registry.Name("D_dis", j, h), 0, s.MaxPowerMW, registry.Continuous)
			reg.NewVar(registry.Name("S", j, h), 0, math.Inf(1), registry.Continuous)
			reg.NewVar(registry.Name("U", j, h), 0, 1, registry.Binary)
		}
	}
	return nil
}
