package model

import (
	"io"
	"log/slog"
	"testing"
)

func validBundle() *InputBundle {
	return &InputBundle{
		NHours:       4,
		Scalars:      Scalars{DiscountRate: 0.05, GenMixTarget: 0.5},
		Formulations: FormulationSelection{Hydro: "RunOfRiver"},
		PVPlants:     []PlantID{"pv_1"},
		PVCapFactor:  map[PlantID][]float64{"pv_1": {0, 0.2, 0.8, 1}},
		PVAttrs:      map[PlantID]VREPlant{"pv_1": {ID: "pv_1", CapacityMW: 10}},
		StorageTechs: []TechID{"battery_1"},
		Storage: map[TechID]StorageTech{
			"battery_1": {
				ID: "battery_1", Eff: 0.9, MinDuration: 1, MaxDuration: 4,
				CostRatio: 0.5, PCapexPerKW: 300, ECapexPerKW: 200, FOMPerKWYr: 5, VOMPerMWh: 2,
			},
		},
	}
}

func TestValidateAcceptsWellFormedBundle(t *testing.T) {
	b := validBundle()
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsOutOfRangeCapacityFactor(t *testing.T) {
	b := validBundle()
	b.PVCapFactor["pv_1"][2] = 1.5
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for out-of-range capacity factor")
	}
}

func TestValidateRejectsBadStorageEfficiency(t *testing.T) {
	b := validBundle()
	s := b.Storage["battery_1"]
	s.Eff = 0
	b.Storage["battery_1"] = s
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for zero storage efficiency")
	}
}

func TestValidateRejectsInvertedDurationBounds(t *testing.T) {
	b := validBundle()
	s := b.Storage["battery_1"]
	s.MinDuration, s.MaxDuration = 5, 1
	b.Storage["battery_1"] = s
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for inverted duration bounds")
	}
}

func TestValidateRejectsNonPositiveDiscountRate(t *testing.T) {
	b := validBundle()
	b.Scalars.DiscountRate = 0
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for zero discount rate")
	}
}

func TestValidateRejectsZeroHorizon(t *testing.T) {
	b := validBundle()
	b.NHours = 0
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for zero-hour horizon")
	}
}

func TestValidateRejectsHydroBudgetOutsideFeasibleRange(t *testing.T) {
	b := validBundle()
	b.Formulations.Hydro = "DailyBudget"
	b.HydroMin = []float64{0, 0, 0, 0}
	b.HydroMax = []float64{10, 10, 10, 10}
	b.HydroPeriods = []HydroPeriod{{Index: 1, Hours: []Hour{1, 2, 3, 4}, Budget: 1000}}
	if err := b.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for infeasible hydro budget")
	}
}

func TestDropMisalignedRemovesIncompletePlants(t *testing.T) {
	b := &InputBundle{
		PVPlants:    []PlantID{"pv_1", "pv_2"},
		PVCapFactor: map[PlantID][]float64{"pv_1": {0.5}, "pv_2": {0.5}},
		PVAttrs:     map[PlantID]VREPlant{"pv_1": {ID: "pv_1"}},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	b.DropMisaligned(log)

	if len(b.PVPlants) != 1 || b.PVPlants[0] != "pv_1" {
		t.Fatalf("PVPlants = %v, want only pv_1 to survive", b.PVPlants)
	}
	if _, ok := b.PVCapFactor["pv_2"]; ok {
		t.Error("pv_2 capacity factor should have been dropped")
	}
}
