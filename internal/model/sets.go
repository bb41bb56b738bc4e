package model

// PlantID identifies a single PV or wind plant row in the capacity tables.
type PlantID string

// UnitID identifies a dispatchable balancing unit.
type UnitID string

// TechID identifies a storage technology.
type TechID string

// Hour is a 1-indexed hour in the planning horizon, wrapping cyclically:
// hour NHours precedes hour 1.
type Hour int

// Prev returns the cyclic predecessor of h within a horizon of n hours.
func (h Hour) Prev(n int) Hour {
	if h <= 1 {
		return Hour(n)
	}
	return h - 1
}

// Next returns the cyclic successor of h within a horizon of n hours.
func (h Hour) Next(n int) Hour {
	if int(h) >= n {
		return 1
	}
	return h + 1
}

// HydroPeriod is one contiguous, non-overlapping subset of the horizon
// (a calendar month or calendar day, depending on the hydro sub-formulation)
// over which a budget-hydro energy total is enforced.
type HydroPeriod struct {
	// Index is the period's position (1-indexed) among Periods.
	Index int
	// Hours lists the hours belonging to this period, in order.
	Hours []Hour
	// Budget is epsilon_b, the required total hydro generation for this period.
	Budget float64
}

// VREPlant carries the per-plant capacity and cost attributes shared by
// PV and wind tables (CapSolar / CapWind).
type VREPlant struct {
	ID                 PlantID
	CapacityMW         float64
	CapexPerKW         float64
	FOMPerKWYr         float64
	TransmissionCapex  float64
	Latitude           float64
	Longitude          float64
}

// StorageTech carries one row of the StorageData table.
type StorageTech struct {
	ID             TechID
	PCapexPerKW    float64
	ECapexPerKW    float64
	Eff            float64 // round-trip-derived single-leg efficiency, eta_j
	MinDuration    float64
	MaxDuration    float64
	MaxPowerMW     float64
	Coupled        bool
	FOMPerKWYr     float64
	VOMPerMWh      float64
	LifetimeYears  float64
	CostRatio      float64 // alpha_j, charge-side share of power CAPEX/FOM
	MaxCycles      float64 // kappa^cyc_j
}

// BalancingUnit carries one row of the Data_BalancingUnits table.
type BalancingUnit struct {
	ID            UnitID
	MinCapacityMW float64
	MaxCapacityMW float64
	LifetimeYears float64
	CapexPerKW    float64
	HeatRate      float64
	FuelCostPerMWh float64
	VOMPerMWh     float64
	FOMPerKWYr    float64
}
