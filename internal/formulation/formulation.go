// Package formulation implements the pluggable sub-formulations of §4.3:
// variant-specific blocks of variables, constraints, and objective terms
// for the hydro, trade, and resilience axes. Each variant is a value
// satisfying the Formulation interface; the solve orchestrator (C6)
// selects one per axis by name and composes their contributions, a
// pick-by-name-then-compose idiom.
package formulation

import (
	"github.com/Omar0902/SDOM/internal/build"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// Formulation is one pluggable variant of one axis (hydro, trade, or
// resilience). DeclareVars must run, for every selected Formulation,
// before any EmitConstraints call -- core and formulation constraints
// alike may reference columns any Formulation declares.
type Formulation interface {
	Name() string
	DeclareVars(reg *registry.Registry, in *model.InputBundle) error
	EmitConstraints(reg *registry.Registry, in *model.InputBundle, cb *build.ConstraintBuilder) error
	Contribute(reg *registry.Registry, in *model.InputBundle, obj *build.Objective) error
}

// HydroByName resolves the hydro-axis Formulation selected in an
// InputBundle's Formulations table.
func HydroByName(name string) (Formulation, bool) {
	switch name {
	case "RunOfRiver":
		return RunOfRiver{}, true
	case "MonthlyBudget":
		return BudgetHydro{Variant: "MonthlyBudget"}, true
	case "DailyBudget":
		return BudgetHydro{Variant: "DailyBudget"}, true
	default:
		return nil, false
	}
}

// TradeByName resolves the trade-axis Formulation. Imports and Exports
// are selected independently in the input schema but share one formulation
// name in practice (§4.3 lists a single "PriceNetLoad" trade axis); SDOM
// treats the axis as enabled iff either column selects PriceNetLoad,
// matching InputBundle.TradeEnabled.
func TradeByName(importsName, exportsName string) (Formulation, bool) {
	if importsName == "PriceNetLoad" || exportsName == "PriceNetLoad" {
		return PriceNetLoad{}, true
	}
	if importsName == "" && exportsName == "" {
		return TradeDisabled{}, true
	}
	if importsName == "Disabled" && exportsName == "Disabled" {
		return TradeDisabled{}, true
	}
	return nil, false
}

// ResilienceByName resolves the resilience axis from the caller-supplied
// flag (§4.3: "Resilience is not selected here; it is a caller-supplied
// flag to the BuildModel entry point").
func ResilienceByName(enabled bool) Formulation {
	if enabled {
		return ResilienceEnabled{}
	}
	return ResilienceDisabled{}
}
