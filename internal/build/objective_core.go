package build

import (
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// kwPerMW converts a MW quantity to kW, matching the input tables'
// per-kW cost conventions (§6 "Units": "the model multiplies by 1000
// where appropriate to operate in MW/MWh internally").
const kwPerMW = 1000.0

// ContributeCoreObjective adds Z^pv + Z^wind + Z^bal + Z^stor to obj
// (§4.4). Z^trade is contributed by the trade Formulation, since it does
// not exist at all under Trade Disabled.
func ContributeCoreObjective(reg *registry.Registry, in *model.InputBundle, obj *Objective) {
	contributeVRE(reg, in, obj, in.PVPlants, in.PVAttrs, "F_pv")
	contributeVRE(reg, in, obj, in.WindPlants, in.WindAttrs, "F_wind")
	contributeBalancing(reg, in, obj)
	contributeStorage(reg, in, obj)
}

// contributeVRE handles Z^pv and Z^wind identically: continuous
// investment fraction times annualized (CAPEX + transmission CAPEX)
// under the shared VRE CRF, plus non-annualized FOM (§4.4 note 1).
func contributeVRE(reg *registry.Registry, in *model.InputBundle, obj *Objective, plants []model.PlantID, attrs map[model.PlantID]model.VREPlant, varBase string) {
	for _, p := range plants {
		a := attrs[p]
		col := reg.MustCol(registry.Name(varBase, p)).Col
		capKW := a.CapacityMW * kwPerMW
		annualized := in.CRFVRE * (capKW*a.CapexPerKW + a.TransmissionCapex)
		fom := capKW * a.FOMPerKWYr
		obj.Add(col, annualized+fom)
	}
}

// contributeBalancing adds annualized CAPEX + FOM on each unit's
// capacity investment column, plus fuel and VOM on every hourly
// dispatch column.
func contributeBalancing(reg *registry.Registry, in *model.InputBundle, obj *Objective) {
	for _, k := range in.BalancingUnits {
		u := in.Balancing[k]
		pBal := reg.MustCol(registry.Name("P_bal", k)).Col
		annualizedPerMW := in.CRFBal[k] * kwPerMW * u.CapexPerKW
		fomPerMW := kwPerMW * u.FOMPerKWYr
		obj.Add(pBal, annualizedPerMW+fomPerMW)

		dispatchCostPerMWh := u.HeatRate*u.FuelCostPerMWh + u.VOMPerMWh
		for _, h := range in.Hours() {
			gBal := reg.MustCol(registry.Name("G_bal", k, h)).Col
			obj.Add(gBal, dispatchCostPerMWh)
		}
	}
}

// contributeStorage splits power CAPEX/FOM by alpha_j across the charge
// and discharge columns (§4.4 note 2), annualizes power and energy CAPEX
// by the storage CRF, and charges VOM on discharge only (§4.4 note 3).
func contributeStorage(reg *registry.Registry, in *model.InputBundle, obj *Objective) {
	for _, j := range in.StorageTechs {
		s := in.Storage[j]
		pCh := reg.MustCol(registry.Name("P_ch", j)).Col
		pDis := reg.MustCol(registry.Name("P_dis", j)).Col
		e := reg.MustCol(registry.Name("E", j)).Col

		powerCapexPerMW := kwPerMW * s.PCapexPerKW
		powerFOMPerMW := kwPerMW * s.FOMPerKWYr
		energyCapexPerMWh := kwPerMW * s.ECapexPerKW

		obj.Add(pCh, in.CRFStorage[j]*s.CostRatio*powerCapexPerMW+s.CostRatio*powerFOMPerMW)
		obj.Add(pDis, in.CRFStorage[j]*(1-s.CostRatio)*powerCapexPerMW+(1-s.CostRatio)*powerFOMPerMW)
		obj.Add(e, in.CRFStorage[j]*energyCapexPerMWh)

		for _, h := range in.Hours() {
			dDis := reg.MustCol(registry.Name("D_dis", j, h)).Col
			obj.Add(dDis, s.VOMPerMWh)
		}
	}
}
