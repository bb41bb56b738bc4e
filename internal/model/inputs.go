package model

// Scalars holds the single-valued parameters of the Scalars input file.
type Scalars struct {
	DiscountRate         float64 // r
	GenMixTarget         float64 // tau
	AlphaNuclear         float64
	AlphaHydro           float64
	AlphaOtherRenewables float64

	// Resilience-only scalars; zero-valued and unused unless the
	// resilience axis is enabled.
	CriticalLoadFrac  float64
	MaxBackupPowerDur int // T_backup, hours
	OutageStartHour   int
	SOCRestoreHours   int
	CriticalPeakLoad  float64
}

// FormulationSelection is the component -> formulation-name map read
// from the Formulations file (§6). Resilience is not selected here; it
// is a caller-supplied flag to the BuildModel entry point.
type FormulationSelection struct {
	Hydro   string
	Imports string
	Exports string
}

// InputBundle is the immutable, validated product of C1. Nothing
// downstream of C1 mutates it; the constraint builder and
// sub-formulations only read from it and from the Registry built atop
// it (model-as-data).
type InputBundle struct {
	NHours int

	Scalars      Scalars
	Formulations FormulationSelection

	// Hourly series, 1-indexed (index 0 of the backing slice is hour 1).
	Demand          []float64 // d_h, MW
	Nuclear         []float64 // nu_h, MW
	HydroRef        []float64 // rho_h, MW (lahy_hourly)
	OtherRenewables []float64 // omega_h, MW
	HydroMax        []float64 // overline g^hyd_h, MW (budget variants only)
	HydroMin        []float64 // underline g^hyd_h, MW (budget variants only)
	ImportCap       []float64 // overline iota_h, MW (trade only)
	ImportPrice     []float64 // c^imp_h, $/MWh (trade only)
	ExportCap       []float64 // overline xi_h, MW (trade only)
	ExportPrice     []float64 // c^exp_h, $/MWh (trade only)

	PVPlants   []PlantID
	WindPlants []PlantID

	PVCapFactor   map[PlantID][]float64 // sigma_{p,h}
	WindCapFactor map[PlantID][]float64 // zeta_{w,h}
	PVAttrs       map[PlantID]VREPlant
	WindAttrs     map[PlantID]VREPlant

	StorageTechs   []TechID
	Storage        map[TechID]StorageTech
	CoupledStorage map[TechID]bool

	BalancingUnits []UnitID
	Balancing      map[UnitID]BalancingUnit

	HydroPeriods []HydroPeriod

	// Derived scalars (C1 scalar derivation).
	CRFVRE     float64            // CRF(l^vre)
	CRFBal     map[UnitID]float64 // CRF(l^bal_k)
	CRFStorage map[TechID]float64 // CRF(l^stor_j)
}

// Hours returns the ordered 1..NHours sequence.
func (b *InputBundle) Hours() []Hour {
	out := make([]Hour, b.NHours)
	for i := 0; i < b.NHours; i++ {
		out[i] = Hour(i + 1)
	}
	return out
}

// At returns series[h-1], the value for 1-indexed hour h.
func At(series []float64, h Hour) float64 {
	return series[int(h)-1]
}

// TradeEnabled reports whether the trade axis resolved to PriceNetLoad.
func (b *InputBundle) TradeEnabled() bool {
	return b.Formulations.Imports == "PriceNetLoad" || b.Formulations.Exports == "PriceNetLoad"
}

// OutageWindow returns H1: the MaxBackupPowerDur contiguous hours starting
// at OutageStartHour, wrapping cyclically if the window crosses the
// horizon boundary. Both the stage A/B transition and the stage-B rolling
// reserve constraint key off this same set of hours.
func (b *InputBundle) OutageWindow() []Hour {
	n := b.Scalars.MaxBackupPowerDur
	if n <= 0 {
		return nil
	}
	out := make([]Hour, n)
	h := Hour(b.Scalars.OutageStartHour)
	if h < 1 {
		h = 1
	}
	for i := 0; i < n; i++ {
		out[i] = h
		h = h.Next(b.NHours)
	}
	return out
}
