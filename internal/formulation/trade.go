package formulation

import (
	"github.com/Omar0902/SDOM/internal/build"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// netLoadIndicatorEpsilon is the small positive offset (§4.6) that
// breaks sign-degeneracy at Lambda_h = 0.
const netLoadIndicatorEpsilon = 1e-6

// TradeDisabled implements M_h ≡ X_h ≡ 0 by declaring no columns at all
// -- the core balance's optional lookups (registry.Col("M[h]")) simply
// miss and contribute no term, which is the axis's entire semantics.
type TradeDisabled struct{}

func (TradeDisabled) Name() string { return "Disabled" }
func (TradeDisabled) DeclareVars(*registry.Registry, *model.InputBundle) error {
	return nil
}
func (TradeDisabled) EmitConstraints(*registry.Registry, *model.InputBundle, *build.ConstraintBuilder) error {
	return nil
}
func (TradeDisabled) Contribute(*registry.Registry, *model.InputBundle, *build.Objective) error {
	return nil
}

// PriceNetLoad declares M_h, X_h, and the net-load sign indicator V_h,
// and ties them together with the big-M indicator constraints of §4.6.
type PriceNetLoad struct{}

func (PriceNetLoad) Name() string { return "PriceNetLoad" }

func (PriceNetLoad) DeclareVars(reg *registry.Registry, in *model.InputBundle) error {
	for _, h := range in.Hours() {
		reg.NewVar(registry.Name("M", h), 0, model.At(in.ImportCap, h), registry.Continuous)
		reg.NewVar(registry.Name("X", h), 0, model.At(in.ExportCap, h), registry.Continuous)
		reg.NewVar(registry.Name("V", h), 0, 1, registry.Binary)
	}
	reg.SetParam("trade_big_m", bigM(in))
	return nil
}

// bigM is the greater of peak demand and peak VRE availability, per
// §4.6's "M is the greater of peak demand and peak VRE availability."
func bigM(in *model.InputBundle) float64 {
	peak := 0.0
	for _, h := range in.Hours() {
		if d := model.At(in.Demand, h); d > peak {
			peak = d
		}
	}
	for _, p := range in.PVPlants {
		a := in.PVAttrs[p]
		for _, h := range in.Hours() {
			avail := a.CapacityMW * model.At(in.PVCapFactor[p], h)
			if avail > peak {
				peak = avail
			}
		}
	}
	for _, w := range in.WindPlants {
		a := in.WindAttrs[w]
		for _, h := range in.Hours() {
			avail := a.CapacityMW * model.At(in.WindCapFactor[w], h)
			if avail > peak {
				peak = avail
			}
		}
	}
	return peak
}

func (PriceNetLoad) EmitConstraints(reg *registry.Registry, in *model.InputBundle, cb *build.ConstraintBuilder) error {
	mParam, _ := reg.Param("trade_big_m")
	bigM := mParam.(float64)

	for _, h := range in.Hours() {
		lambdaTerms := netLoadTerms(reg, in, h)
		lambdaConst := netLoadConstant(in, h)
		v := reg.MustCol(registry.Name("V", h)).Col
		m := reg.MustCol(registry.Name("M", h)).Col
		x := reg.MustCol(registry.Name("X", h)).Col

		// Lambda_h <= M * V_h, with Lambda_h = lambdaConst + lambdaTerms:
		// lambdaTerms - M*V_h <= -lambdaConst
		upper := append(append([]build.Term{}, lambdaTerms...), build.Term{Col: v, Coeff: -bigM})
		cb.AddLe(registry.Name("netload_ind_pos", h), upper, -lambdaConst)

		// -Lambda_h + eps <= M * (1 - V_h):
		// -lambdaTerms + M*V_h <= M - eps + lambdaConst
		lower := negateTerms(lambdaTerms)
		lower = append(lower, build.Term{Col: v, Coeff: bigM})
		cb.AddLe(registry.Name("netload_ind_neg", h), lower, bigM-netLoadIndicatorEpsilon+lambdaConst)

		// M_h <= d_h * V_h
		cb.AddLe(registry.Name("import_gate", h), []build.Term{{Col: m, Coeff: 1}, {Col: v, Coeff: -model.At(in.Demand, h)}}, 0)

		// X_h <= xi_max * (1 - V_h)
		xiMax := model.At(in.ExportCap, h)
		cb.AddLe(registry.Name("export_gate", h), []build.Term{{Col: x, Coeff: 1}, {Col: v, Coeff: xiMax}}, xiMax)
	}
	return nil
}

// netLoadTerms builds the variable part of Lambda_h = d_h - PV
// availability - wind availability - alpha_nuc*nuclear - alpha_oth*other
// - hydro: the demand that must be met by dispatchable resources once
// must-run generation is netted out. PV/wind availability is G+C per
// plant (generation plus curtailment equals the capacity-factor-scaled
// availability the core balance ties them to); hydro generation is
// G_hyd where the hydro axis declares it. Dispatched balancing and
// storage are decisions made *in response to* net load, not inputs to
// it, so neither appears here.
func netLoadTerms(reg *registry.Registry, in *model.InputBundle, h model.Hour) []build.Term {
	var terms []build.Term
	for _, p := range in.PVPlants {
		terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("G_pv", p, h)).Col, Coeff: -1})
		terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("C_pv", p, h)).Col, Coeff: -1})
	}
	for _, w := range in.WindPlants {
		terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("G_wind", w, h)).Col, Coeff: -1})
		terms = append(terms, build.Term{Col: reg.MustCol(registry.Name("C_wind", w, h)).Col, Coeff: -1})
	}
	if col, ok := reg.Col(registry.Name("G_hyd", h)); ok {
		terms = append(terms, build.Term{Col: col.Col, Coeff: -1})
	}
	return terms
}

// netLoadConstant is the fixed part of Lambda_h: demand minus must-take
// nuclear and other-renewables generation, both read straight from the
// input series rather than decided by the solve.
func netLoadConstant(in *model.InputBundle, h model.Hour) float64 {
	return model.At(in.Demand, h) -
		in.Scalars.AlphaNuclear*model.At(in.Nuclear, h) -
		in.Scalars.AlphaOtherRenewables*model.At(in.OtherRenewables, h)
}

func negateTerms(terms []build.Term) []build.Term {
	out := make([]build.Term, len(terms))
	for i, t := range terms {
		out[i] = build.Term{Col: t.Col, Coeff: -t.Coeff}
	}
	return out
}

func (PriceNetLoad) Contribute(reg *registry.Registry, in *model.InputBundle, obj *build.Objective) error {
	for _, h := range in.Hours() {
		m := reg.MustCol(registry.Name("M", h)).Col
		x := reg.MustCol(registry.Name("X", h)).Col
		obj.Add(m, model.At(in.ImportPrice, h))
		obj.Add(x, -model.At(in.ExportPrice, h))
	}
	return nil
}
