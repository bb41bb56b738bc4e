package build

import (
	"math"

	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// EmitCoreConstraints emits every equation of §4.5 that holds regardless
// of which sub-formulation is selected per axis. It must run after
// DeclareCoreVars and every selected Formulation.DeclareVars, since it
// looks up hydro and trade columns (G_hyd, M, X) that a Formulation owns.
// Columns that a disabled axis never declares (M_h, X_h under Trade
// Disabled) are simply absent from the sums they would have joined --
// the axis's own "Disabled" semantics, not special-cased here.
func EmitCoreConstraints(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) error {
	emitHourlyBalance(reg, in, cb)
	emitVREBalance(reg, in, cb)
	emitBalancingDispatchLimit(reg, in, cb)
	emitStorageDispatchLimits(reg, in, cb)
	emitCoupledStorage(reg, in, cb)
	emitChargeXorDischarge(reg, in, cb)
	emitCyclicSOC(reg, in, cb)
	emitDurationBound(reg, in, cb)
	emitCycleCap(reg, in, cb)
	emitCleanEnergyCap(reg, in, cb)
	return nil
}

// optionalCol looks up a column that may not exist under the selected
// formulation (the trade columns M and X are absent when trade is
// disabled; G_hyd is looked up the same way); a miss simply contributes
// no term.
func optionalCol(reg *registry.Registry, name string) (int, bool) {
	h, ok := reg.Col(name)
	if !ok {
		return 0, false
	}
	return h.Col, true
}

func emitHourlyBalance(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, h := range in.Hours() {
		var terms []Term
		for _, p := range in.PVPlants {
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("G_pv", p, h)).Col, Coeff: 1})
		}
		for _, w := range in.WindPlants {
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("G_wind", w, h)).Col, Coeff: 1})
		}
		for _, k := range in.BalancingUnits {
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("G_bal", k, h)).Col, Coeff: 1})
		}
		if col, ok := optionalCol(reg, registry.Name("G_hyd", h)); ok {
			terms = append(terms, Term{Col: col, Coeff: 1})
		}
		for _, j := range in.StorageTechs {
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("D_dis", j, h)).Col, Coeff: 1})
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("D_ch", j, h)).Col, Coeff: -1})
		}
		if col, ok := optionalCol(reg, registry.Name("M", h)); ok {
			terms = append(terms, Term{Col: col, Coeff: 1})
		}
		if col, ok := optionalCol(reg, registry.Name("X", h)); ok {
			terms = append(terms, Term{Col: col, Coeff: -1})
		}

		rhs := model.At(in.Demand, h) -
			in.Scalars.AlphaNuclear*model.At(in.Nuclear, h) -
			in.Scalars.AlphaOtherRenewables*model.At(in.OtherRenewables, h)
		cb.AddEq(registry.Name("balance", h), terms, rhs)
	}
}

func emitVREBalance(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, h := range in.Hours() {
		for _, p := range in.PVPlants {
			attrs := in.PVAttrs[p]
			avail := attrs.CapacityMW * model.At(in.PVCapFactor[p], h)
			terms := []Term{
				{Col: reg.MustCol(registry.Name("G_pv", p, h)).Col, Coeff: 1},
				{Col: reg.MustCol(registry.Name("C_pv", p, h)).Col, Coeff: 1},
				{Col: reg.MustCol(registry.Name("F_pv", p)).Col, Coeff: -avail},
			}
			cb.AddEq(registry.Name("vre_pv", p, h), terms, 0)
		}
		for _, w := range in.WindPlants {
			attrs := in.WindAttrs[w]
			avail := attrs.CapacityMW * model.At(in.WindCapFactor[w], h)
			terms := []Term{
				{Col: reg.MustCol(registry.Name("G_wind", w, h)).Col, Coeff: 1},
				{Col: reg.MustCol(registry.Name("C_wind", w, h)).Col, Coeff: 1},
				{Col: reg.MustCol(registry.Name("F_wind", w)).Col, Coeff: -avail},
			}
			cb.AddEq(registry.Name("vre_wind", w, h), terms, 0)
		}
	}
}

func emitBalancingDispatchLimit(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, k := range in.BalancingUnits {
		pBal := reg.MustCol(registry.Name("P_bal", k)).Col
		for _, h := range in.Hours() {
			gBal := reg.MustCol(registry.Name("G_bal", k, h)).Col
			cb.AddLe(registry.Name("bal_limit", k, h), []Term{{Col: gBal, Coeff: 1}, {Col: pBal, Coeff: -1}}, 0)
		}
	}
}

func emitStorageDispatchLimits(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, j := range in.StorageTechs {
		pCh := reg.MustCol(registry.Name("P_ch", j)).Col
		pDis := reg.MustCol(registry.Name("P_dis", j)).Col
		for _, h := range in.Hours() {
			dCh := reg.MustCol(registry.Name("D_ch", j, h)).Col
			dDis := reg.MustCol(registry.Name("D_dis", j, h)).Col
			s := reg.MustCol(registry.Name("S", j, h)).Col
			e := reg.MustCol(registry.Name("E", j)).Col

			cb.AddLe(registry.Name("stor_ch_limit", j, h), []Term{{Col: dCh, Coeff: 1}, {Col: pCh, Coeff: -1}}, 0)
			cb.AddLe(registry.Name("stor_dis_limit", j, h), []Term{{Col: dDis, Coeff: 1}, {Col: pDis, Coeff: -1}}, 0)
			cb.AddLe(registry.Name("stor_soc_cap", j, h), []Term{{Col: s, Coeff: 1}, {Col: e, Coeff: -1}}, 0)
		}
	}
}

func emitCoupledStorage(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, j := range in.StorageTechs {
		if !in.CoupledStorage[j] {
			continue
		}
		pCh := reg.MustCol(registry.Name("P_ch", j)).Col
		pDis := reg.MustCol(registry.Name("P_dis", j)).Col
		cb.AddEq(registry.Name("stor_coupled", j), []Term{{Col: pCh, Coeff: 1}, {Col: pDis, Coeff: -1}}, 0)
	}
}

func emitChargeXorDischarge(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, j := range in.StorageTechs {
		bigM := in.Storage[j].MaxPowerMW
		for _, h := range in.Hours() {
			dCh := reg.MustCol(registry.Name("D_ch", j, h)).Col
			dDis := reg.MustCol(registry.Name("D_dis", j, h)).Col
			u := reg.MustCol(registry.Name("U", j, h)).Col

			cb.AddLe(registry.Name("xor_ch", j, h), []Term{{Col: dCh, Coeff: 1}, {Col: u, Coeff: -bigM}}, 0)
			cb.AddLe(registry.Name("xor_dis", j, h), []Term{{Col: dDis, Coeff: 1}, {Col: u, Coeff: bigM}}, bigM)
		}
	}
}

// emitCyclicSOC emits S_{j,h} = S_{j,h-1} + sqrt(eta_j) D^ch_{j,h} -
// D^dis_{j,h}/sqrt(eta_j), with h-1 taken cyclically via Hour.Prev so that
// no special case exists for h=1 anywhere in this function, per §9.
func emitCyclicSOC(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, j := range in.StorageTechs {
		sqrtEta := math.Sqrt(in.Storage[j].Eff)
		for _, h := range in.Hours() {
			prev := h.Prev(in.NHours)
			sNow := reg.MustCol(registry.Name("S", j, h)).Col
			sPrev := reg.MustCol(registry.Name("S", j, prev)).Col
			dCh := reg.MustCol(registry.Name("D_ch", j, h)).Col
			dDis := reg.MustCol(registry.Name("D_dis", j, h)).Col

			terms := []Term{
				{Col: sNow, Coeff: 1},
				{Col: sPrev, Coeff: -1},
				{Col: dCh, Coeff: -sqrtEta},
				{Col: dDis, Coeff: 1 / sqrtEta},
			}
			cb.AddEq(registry.Name("soc_cycle", j, h), terms, 0)
		}
	}
}

func emitDurationBound(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, j := range in.StorageTechs {
		s := in.Storage[j]
		sqrtEta := math.Sqrt(s.Eff)
		e := reg.MustCol(registry.Name("E", j)).Col
		pDis := reg.MustCol(registry.Name("P_dis", j)).Col

		cb.AddGe(registry.Name("duration_min", j), []Term{{Col: e, Coeff: 1}, {Col: pDis, Coeff: -s.MinDuration / sqrtEta}}, 0)
		cb.AddLe(registry.Name("duration_max", j), []Term{{Col: e, Coeff: 1}, {Col: pDis, Coeff: -s.MaxDuration / sqrtEta}}, 0)
	}
}

func emitCycleCap(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	for _, j := range in.StorageTechs {
		s := in.Storage[j]
		if s.MaxCycles <= 0 {
			continue
		}
		e := reg.MustCol(registry.Name("E", j)).Col
		terms := []Term{{Col: e, Coeff: -s.MaxCycles / s.LifetimeYears}}
		for _, h := range in.Hours() {
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("D_dis", j, h)).Col, Coeff: 1})
		}
		cb.AddLe(registry.Name("cycle_cap", j), terms, 0)
	}
}

// emitCleanEnergyCap emits the single aggregate constraint capping total
// balancing-unit energy at (1-tau) of the net-load-adjusted demand total.
func emitCleanEnergyCap(reg *registry.Registry, in *model.InputBundle, cb *ConstraintBuilder) {
	tau := in.Scalars.GenMixTarget
	var terms []Term
	var demandTotal float64
	for _, h := range in.Hours() {
		for _, k := range in.BalancingUnits {
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("G_bal", k, h)).Col, Coeff: 1})
		}
		for _, j := range in.StorageTechs {
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("D_ch", j, h)).Col, Coeff: -(1 - tau)})
			terms = append(terms, Term{Col: reg.MustCol(registry.Name("D_dis", j, h)).Col, Coeff: 1 - tau})
		}
		demandTotal += model.At(in.Demand, h)
	}
	cb.AddLe("clean_energy_cap", terms, (1-tau)*demandTotal)
}
