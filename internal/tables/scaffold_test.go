package tables

import (
	"io"
	"log/slog"
	"testing"
)

func TestScaffoldCaseProducesLoadableCase(t *testing.T) {
	dir := t.TempDir()
	const hours = 24

	if err := ScaffoldCase(dir, hours); err != nil {
		t.Fatalf("ScaffoldCase() error = %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	in, err := LoadCase(dir, hours, false, log)
	if err != nil {
		t.Fatalf("LoadCase() error = %v", err)
	}

	if in.NHours != hours {
		t.Errorf("NHours = %d, want %d", in.NHours, hours)
	}
	if len(in.PVPlants) != 1 {
		t.Errorf("len(PVPlants) = %d, want 1", len(in.PVPlants))
	}
	if len(in.WindPlants) != 1 {
		t.Errorf("len(WindPlants) = %d, want 1", len(in.WindPlants))
	}
	if len(in.StorageTechs) != 1 {
		t.Errorf("len(StorageTechs) = %d, want 1", len(in.StorageTechs))
	}
	if len(in.BalancingUnits) != 1 {
		t.Errorf("len(BalancingUnits) = %d, want 1", len(in.BalancingUnits))
	}
	if in.Formulations.Hydro != "RunOfRiver" {
		t.Errorf("Formulations.Hydro = %q, want RunOfRiver", in.Formulations.Hydro)
	}
	if in.TradeEnabled() {
		t.Error("TradeEnabled() = true, want false for a scaffolded case")
	}
	if err := in.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for a freshly scaffolded case", err)
	}
}

func TestScaffoldCaseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	if err := ScaffoldCase(dir, 8); err != nil {
		t.Fatalf("first ScaffoldCase() error = %v", err)
	}
	if err := ScaffoldCase(dir, 8); err != nil {
		t.Fatalf("second ScaffoldCase() error = %v", err)
	}
}
