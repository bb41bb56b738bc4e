package model

import "math"

// CRF computes the capital recovery factor for a lifetime l (years) and
// discount rate r: r(1+r)^l / ((1+r)^l - 1).
func CRF(lifetimeYears, rate float64) float64 {
	if lifetimeYears <= 0 {
		return 0
	}
	growth := math.Pow(1+rate, lifetimeYears)
	return rate * growth / (growth - 1)
}

// DeriveCRFs populates CRFVRE, CRFBal, and CRFStorage from the already
// validated Scalars, BalancingUnits, and Storage tables. Lifetimes are
// not range-checked by Validate; CRF itself returns 0 for a lifetime of
// zero or less.
func (b *InputBundle) DeriveCRFs(vreLifetimeYears float64) {
	r := b.Scalars.DiscountRate
	b.CRFVRE = CRF(vreLifetimeYears, r)

	b.CRFBal = make(map[UnitID]float64, len(b.BalancingUnits))
	for _, id := range b.BalancingUnits {
		b.CRFBal[id] = CRF(b.Balancing[id].LifetimeYears, r)
	}

	b.CRFStorage = make(map[TechID]float64, len(b.StorageTechs))
	for _, id := range b.StorageTechs {
		b.CRFStorage[id] = CRF(b.Storage[id].LifetimeYears, r)
	}
}
