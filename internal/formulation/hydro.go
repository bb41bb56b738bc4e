package formulation

import (
	"math"

	"github.com/Omar0902/SDOM/internal/build"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// RunOfRiver binds G^hyd_h := alpha^hyd * rho_h as a fixed-bound column
// rather than eliding it, so that the core hourly balance can always
// reference "G_hyd[h]" uniformly regardless of which hydro variant is
// selected -- the column exists, it simply has no freedom (§4.3: "a
// parameter, not a variable" is represented here by collapsing the
// column's lower and upper bound to the same value).
type RunOfRiver struct{}

func (RunOfRiver) Name() string { return "RunOfRiver" }

func (RunOfRiver) DeclareVars(reg *registry.Registry, in *model.InputBundle) error {
	for _, h := range in.Hours() {
		v := in.Scalars.AlphaHydro * model.At(in.HydroRef, h)
		reg.NewVar(registry.Name("G_hyd", h), v, v, registry.Continuous)
	}
	return nil
}

func (RunOfRiver) EmitConstraints(*registry.Registry, *model.InputBundle, *build.ConstraintBuilder) error {
	return nil
}

func (RunOfRiver) Contribute(*registry.Registry, *model.InputBundle, *build.Objective) error {
	return nil
}

// BudgetHydro implements both MonthlyBudget and DailyBudget: they differ
// only in how InputBundle.HydroPeriods partitions the horizon (computed
// by the loader per the selected Variant), not in the constraint shape.
type BudgetHydro struct {
	Variant string
}

func (b BudgetHydro) Name() string { return b.Variant }

func (BudgetHydro) DeclareVars(reg *registry.Registry, in *model.InputBundle) error {
	alpha := in.Scalars.AlphaHydro
	for _, h := range in.Hours() {
		lower := alpha * math.Min(model.At(in.HydroMin, h), model.At(in.HydroMax, h))
		upper := alpha * model.At(in.HydroMax, h)
		reg.NewVar(registry.Name("G_hyd", h), lower, upper, registry.Continuous)
	}
	return nil
}

func (BudgetHydro) EmitConstraints(reg *registry.Registry, in *model.InputBundle, cb *build.ConstraintBuilder) error {
	for _, period := range in.HydroPeriods {
		var terms []build.Term
		for _, h := range period.Hours {
			terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("G_hyd", h)).Col, Coeff: 1})
		}
		cb.AddEq(registry.Name("hydro_budget", period.Index), terms, period.Budget)
	}
	return nil
}

func (BudgetHydro) Contribute(*registry.Registry, *model.InputBundle, *build.Objective) error {
	return nil
}
