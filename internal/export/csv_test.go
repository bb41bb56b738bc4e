package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/result"
)

func sampleResult() *result.Result {
	return &result.Result{
		Scalars: result.ScalarAggregates{
			TotalCost:          123456.789,
			InstalledPVMW:      map[model.PlantID]float64{"pv_1": 25},
			InstalledWindMW:    map[model.PlantID]float64{},
			TotalGenerationMWh: map[string]float64{"pv": 1000},
		},
		Dispatch: []result.DispatchRow{
			{Hour: 1, PVMWh: 10, BalancingMWh: 90},
			{Hour: 2, PVMWh: 20, BalancingMWh: 80},
		},
		Storage: []result.StorageRow{
			{Hour: 1, Tech: "battery_1", ChargeMWh: 5, DischargeMWh: 0, SOCMWh: 50},
		},
		Thermal: []result.ThermalRow{
			{Hour: 1, Unit: "gas_1", MWh: 90},
		},
		Installed: []result.InstalledRow{
			{ID: "pv_1", Kind: "pv", BuiltFraction: 0.5, CapacityMW: 25},
		},
		CostByItem: map[string]float64{"pv_capex": 1000},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return recs
}

func TestWriteAllProducesFiveNamedFiles(t *testing.T) {
	dir := t.TempDir()
	r := sampleResult()

	if err := WriteAll(dir, "mycase", r); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	want := []string{
		"OutputGeneration_mycase.csv",
		"OutputStorage_mycase.csv",
		"OutputSummary_mycase.csv",
		"OutputThermalGeneration_mycase.csv",
		"OutputInstalledPowerPlants_mycase.csv",
	}
	for _, name := range want {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}
}

func TestWriteGenerationRowCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.csv")
	r := sampleResult()

	if err := WriteGeneration(path, r); err != nil {
		t.Fatalf("WriteGeneration() error = %v", err)
	}

	recs := readCSV(t, path)
	if len(recs) != 1+len(r.Dispatch) {
		t.Fatalf("got %d records, want %d (1 header + %d rows)", len(recs), 1+len(r.Dispatch), len(r.Dispatch))
	}
	if recs[0][0] != "hour" {
		t.Errorf("header[0] = %q, want %q", recs[0][0], "hour")
	}
	if recs[1][0] != "1" || recs[1][1] != "10.000000" {
		t.Errorf("row 1 = %v, want hour=1 pv_mwh=10.000000", recs[1])
	}
}

func TestWriteSummaryIncludesTotalCostAndProblemStats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.csv")
	r := sampleResult()

	if err := WriteSummary(path, r); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	recs := readCSV(t, path)
	var sawTotalCost, sawProblemStats bool
	for _, rec := range recs[1:] {
		switch rec[0] {
		case "total_cost":
			sawTotalCost = true
			if rec[2] != "123456.789000" {
				t.Errorf("total_cost value = %q, want %q", rec[2], "123456.789000")
			}
		case "problem_stats":
			sawProblemStats = true
		}
	}
	if !sawTotalCost {
		t.Error("summary is missing a total_cost row")
	}
	if !sawProblemStats {
		t.Error("summary is missing problem_stats rows")
	}
}
