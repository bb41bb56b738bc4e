package formulation

import (
	"math"

	"github.com/Omar0902/SDOM/internal/build"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// ResilienceDisabled is the single-stage mode: no extra variables,
// constraints, or objective terms. The orchestrator invokes the solver
// once against the core + hydro + trade model.
type ResilienceDisabled struct{}

func (ResilienceDisabled) Name() string { return "Disabled" }
func (ResilienceDisabled) DeclareVars(*registry.Registry, *model.InputBundle) error {
	return nil
}
func (ResilienceDisabled) EmitConstraints(*registry.Registry, *model.InputBundle, *build.ConstraintBuilder) error {
	return nil
}
func (ResilienceDisabled) Contribute(*registry.Registry, *model.InputBundle, *build.Objective) error {
	return nil
}

// ResilienceEnabled contributes only the stage-B "outage SOC reserve"
// constraint of §4.6: outside the designated outage window, stored
// energy must cover a rolling T_backup-hour worst-case residual load.
// Stage A's bespoke model (constant critical load, balancing disabled,
// fixed-clean sources disabled, forced zero VRE investment) and the
// stage A -> stage B bound transition are built directly by
// internal/solve.Orchestrator, since they replace rather than extend the
// core model -- no single Formulation method can express "solve a
// different model first, then reuse its solution as bounds here."
type ResilienceEnabled struct{}

func (ResilienceEnabled) Name() string { return "Enabled" }

func (ResilienceEnabled) DeclareVars(*registry.Registry, *model.InputBundle) error {
	return nil
}

// EmitConstraints adds, for every hour h outside the outage window H1,
// sum_j sqrt(eta_j) S_{j,h} >= sum_{h'=h}^{h+T_backup-1} (d_{h'} -
// available PV - available wind), the rolling reserve of §4.6. Hours
// inside H1 are excluded: the orchestrator's stage A/B transition already
// zeroes balancing dispatch there and sizes storage against the outage
// itself, so holding the rolling reserve during the outage too would
// double-constrain those hours. Available VRE output is G+C per plant
// and hour (generation plus curtailment), so both terms are subtracted,
// not only the dispatched share G.
func (ResilienceEnabled) EmitConstraints(reg *registry.Registry, in *model.InputBundle, cb *build.ConstraintBuilder) error {
	backup := in.Scalars.MaxBackupPowerDur
	if backup <= 0 {
		return nil
	}
	inWindow := make(map[model.Hour]bool)
	for _, h := range in.OutageWindow() {
		inWindow[h] = true
	}
	for _, h := range in.Hours() {
		if inWindow[h] {
			continue
		}
		var terms []build.Term
		for _, j := range in.StorageTechs {
			sqrtEta := math.Sqrt(in.Storage[j].Eff)
			terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("S", j, h)).Col, Coeff: sqrtEta})
		}

		var rhs float64
		cursor := h
		for n := 0; n < backup; n++ {
			for _, p := range in.PVPlants {
				terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("G_pv", p, cursor)).Col, Coeff: -1})
				terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("C_pv", p, cursor)).Col, Coeff: -1})
			}
			for _, w := range in.WindPlants {
				terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("G_wind", w, cursor)).Col, Coeff: -1})
				terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("C_wind", w, cursor)).Col, Coeff: -1})
			}
			rhs += model.At(in.Demand, cursor)
			cursor = cursor.Next(in.NHours)
		}
		cb.AddGe(registry.Name("outage_reserve", h), terms, rhs)
	}
	return nil
}

func (ResilienceEnabled) Contribute(*registry.Registry, *model.InputBundle, *build.Objective) error {
	return nil
}
