// Package solve implements the solve orchestrator (C6): composing the
// registry, core constraint/objective assembly, and the three selected
// sub-formulations into a build.Model, driving the single-shot or
// two-stage resilience solve, and mapping solver termination conditions
// onto the five error kinds of §7.
package solve

import (
	"fmt"

	"github.com/Omar0902/SDOM/internal/build"
	"github.com/Omar0902/SDOM/internal/errs"
	"github.com/Omar0902/SDOM/internal/formulation"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// Assembly is the product of C2-C5: the symbol registry and the built
// model, plus the resolved formulation set so the orchestrator can refer
// back to them during a two-stage transition.
type Assembly struct {
	Registry     *registry.Registry
	Model        *build.Model
	Hydro        formulation.Formulation
	Trade        formulation.Formulation
	Resilience   formulation.Formulation
}

// BuildModel runs C2 through C5: declares every set/parameter/variable,
// composes the three selected sub-formulations, and emits the full
// constraint list and objective. resilienceEnabled selects the
// resilience axis; hydro and trade are read from the InputBundle's own
// Formulations selection.
func BuildModel(in *model.InputBundle, resilienceEnabled bool) (*Assembly, error) {
	hydro, ok := formulation.HydroByName(in.Formulations.Hydro)
	if !ok {
		return nil, errs.NewConfigError("build_model", fmt.Errorf("unknown hydro formulation %q", in.Formulations.Hydro))
	}
	trade, ok := formulation.TradeByName(in.Formulations.Imports, in.Formulations.Exports)
	if !ok {
		return nil, errs.NewConfigError("build_model", fmt.Errorf("unknown trade formulation (imports=%q exports=%q)", in.Formulations.Imports, in.Formulations.Exports))
	}
	resilience := formulation.ResilienceByName(resilienceEnabled)

	reg := registry.New()
	if err := build.DeclareCoreVars(reg, in); err != nil {
		return nil, errs.NewConfigError("build_model", err)
	}
	for _, f := range []formulation.Formulation{hydro, trade, resilience} {
		if err := f.DeclareVars(reg, in); err != nil {
			return nil, errs.NewConfigError("build_model", fmt.Errorf("%s: %w", f.Name(), err))
		}
	}

	m := build.NewModel(reg.NumVars())
	for _, v := range reg.Vars() {
		m.ColLower[v.Col] = v.Lower
		m.ColUpper[v.Col] = v.Upper
		switch v.Kind {
		case registry.Binary:
			m.VarKinds[v.Col] = build.Binary
		case registry.Integer:
			m.VarKinds[v.Col] = build.Integer
		default:
			m.VarKinds[v.Col] = build.Continuous
		}
	}

	cb := build.NewConstraintBuilder(m)
	if err := build.EmitCoreConstraints(reg, in, cb); err != nil {
		return nil, errs.NewConfigError("build_model", err)
	}
	for _, f := range []formulation.Formulation{hydro, trade, resilience} {
		if err := f.EmitConstraints(reg, in, cb); err != nil {
			return nil, errs.NewConfigError("build_model", fmt.Errorf("%s: %w", f.Name(), err))
		}
	}

	obj := build.NewObjective()
	build.ContributeCoreObjective(reg, in, obj)
	for _, f := range []formulation.Formulation{hydro, trade, resilience} {
		if err := f.Contribute(reg, in, obj); err != nil {
			return nil, errs.NewConfigError("build_model", fmt.Errorf("%s: %w", f.Name(), err))
		}
	}
	obj.Apply(m)

	return &Assembly{Registry: reg, Model: m, Hydro: hydro, Trade: trade, Resilience: resilience}, nil
}

// BoundBalancingCapacity adds the single-stage mode's constraint (§4.6):
// sum_k P_bal_k <= peak residual demand.
func BoundBalancingCapacity(a *Assembly, in *model.InputBundle) {
	cb := build.NewConstraintBuilder(a.Model)
	var terms []build.Term
	for _, k := range in.BalancingUnits {
		terms = append(terms, build.Term{Col: a.Registry.MustCol(registry.Name("P_bal", k)).Col, Coeff: 1})
	}
	if len(terms) == 0 {
		return
	}
	peak := peakResidualDemand(in)
	cb.AddLe("balancing_capacity_cap", terms, peak)
}

func peakResidualDemand(in *model.InputBundle) float64 {
	peak := 0.0
	for _, h := range in.Hours() {
		residual := model.At(in.Demand, h) -
			in.Scalars.AlphaNuclear*model.At(in.Nuclear, h) -
			in.Scalars.AlphaHydro*model.At(in.HydroRef, h) -
			in.Scalars.AlphaOtherRenewables*model.At(in.OtherRenewables, h)
		if residual > peak {
			peak = residual
		}
	}
	return peak
}
