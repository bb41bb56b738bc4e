package model

import (
	"math"
	"testing"
)

func TestCRF(t *testing.T) {
	cases := []struct {
		name     string
		lifetime float64
		rate     float64
		want     float64
	}{
		{"zero lifetime", 0, 0.05, 0},
		{"negative lifetime", -1, 0.05, 0},
		{"twenty years at five percent", 20, 0.05, 0.08024259},
		{"one year", 1, 0.05, 1.05},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CRF(c.lifetime, c.rate)
			if math.Abs(got-c.want) > 1e-6 {
				t.Fatalf("CRF(%v, %v) = %v, want %v", c.lifetime, c.rate, got, c.want)
			}
		})
	}
}

func TestDeriveCRFs(t *testing.T) {
	b := &InputBundle{
		Scalars:        Scalars{DiscountRate: 0.05},
		BalancingUnits: []UnitID{"gas_1"},
		Balancing:      map[UnitID]BalancingUnit{"gas_1": {LifetimeYears: 25}},
		StorageTechs:   []TechID{"battery_1"},
		Storage:        map[TechID]StorageTech{"battery_1": {LifetimeYears: 15}},
	}
	b.DeriveCRFs(20.0)

	wantVRE := CRF(20.0, 0.05)
	if math.Abs(b.CRFVRE-wantVRE) > 1e-9 {
		t.Errorf("CRFVRE = %v, want %v", b.CRFVRE, wantVRE)
	}
	if got, want := b.CRFBal["gas_1"], CRF(25, 0.05); math.Abs(got-want) > 1e-9 {
		t.Errorf("CRFBal[gas_1] = %v, want %v", got, want)
	}
	if got, want := b.CRFStorage["battery_1"], CRF(15, 0.05); math.Abs(got-want) > 1e-9 {
		t.Errorf("CRFStorage[battery_1] = %v, want %v", got, want)
	}
}

func TestHourCycling(t *testing.T) {
	const n = 24
	if got := Hour(1).Prev(n); got != Hour(n) {
		t.Errorf("Hour(1).Prev(%d) = %v, want %v", n, got, n)
	}
	if got := Hour(n).Next(n); got != Hour(1) {
		t.Errorf("Hour(%d).Next(%d) = %v, want 1", n, n, got)
	}
	if got := Hour(5).Prev(n); got != Hour(4) {
		t.Errorf("Hour(5).Prev(%d) = %v, want 4", n, got)
	}
	if got := Hour(5).Next(n); got != Hour(6) {
		t.Errorf("Hour(5).Next(%d) = %v, want 6", n, got)
	}
}
