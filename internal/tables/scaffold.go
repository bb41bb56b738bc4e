package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ScaffoldCase writes a minimal but complete case directory at dir: one
// plant/tech/unit per table, nHours of flat hourly series, RunOfRiver
// hydro and Disabled trade by default so the produced case loads with
// tables.LoadCase without any further edits.
func ScaffoldCase(dir string, nHours int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scaffold: %w", err)
	}

	writers := []func(string, int) error{
		writeScalars,
		writeFormulations,
		func(d string, n int) error { return writeFlatHourSeries(d, "Load_hourly.csv", n, 100) },
		func(d string, n int) error { return writeFlatHourSeries(d, "Nucl_hourly.csv", n, 0) },
		func(d string, n int) error { return writeFlatHourSeries(d, "lahy_hourly.csv", n, 0) },
		func(d string, n int) error { return writeFlatHourSeries(d, "otre_hourly.csv", n, 0) },
		func(d string, n int) error { return writeCapFactorMatrix(d, "CFSolar.csv", n, "pv_1") },
		func(d string, n int) error { return writeCapFactorMatrix(d, "CFWind.csv", n, "wind_1") },
		func(d string, n int) error { return writeVRETable(d, "CapSolar.csv", "pv_1") },
		func(d string, n int) error { return writeVRETable(d, "CapWind.csv", "wind_1") },
		writeStorageData,
		writeBalancingUnits,
	}
	for _, w := range writers {
		if err := w(dir, nHours); err != nil {
			return err
		}
	}
	return nil
}

func create(dir, name string) (*csv.Writer, *os.File, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, nil, fmt.Errorf("scaffold: %w", err)
	}
	return csv.NewWriter(f), f, nil
}

func writeScalars(dir string, _ int) error {
	w, f, err := create(dir, "Scalars.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	defer w.Flush()

	rows := [][]string{
		{"name", "value"},
		{"r", "0.05"},
		{"GenMix_Target", "0.8"},
		{"alpha_Nuclear", "1"},
		{"alpha_Hydro", "1"},
		{"alpha_OtherRenewables", "1"},
		{"CriticalLoadFrac", "0"},
		{"max_backup_power_dur", "0"},
		{"outage_start_hour", "1"},
		{"SOC_restore_hours", "0"},
		{"critical_peak_load", "0"},
	}
	return writeRows(w, rows)
}

func writeFormulations(dir string, _ int) error {
	w, f, err := create(dir, "Formulations.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	defer w.Flush()

	rows := [][]string{
		{"component", "formulation"},
		{"hydro", "RunOfRiver"},
		{"Imports", "Disabled"},
		{"Exports", "Disabled"},
	}
	return writeRows(w, rows)
}

func writeFlatHourSeries(dir, name string, nHours int, value float64) error {
	w, f, err := create(dir, name)
	if err != nil {
		return err
	}
	defer f.Close()
	defer w.Flush()

	rows := [][]string{{"hour", "value"}}
	for h := 1; h <= nHours; h++ {
		rows = append(rows, []string{strconv.Itoa(h), strconv.FormatFloat(value, 'f', 2, 64)})
	}
	return writeRows(w, rows)
}

func writeCapFactorMatrix(dir, name string, nHours int, plantID string) error {
	w, f, err := create(dir, name)
	if err != nil {
		return err
	}
	defer f.Close()
	defer w.Flush()

	rows := [][]string{{"hour", plantID}}
	for h := 1; h <= nHours; h++ {
		rows = append(rows, []string{strconv.Itoa(h), "0.30"})
	}
	return writeRows(w, rows)
}

func writeVRETable(dir, name, plantID string) error {
	w, f, err := create(dir, name)
	if err != nil {
		return err
	}
	defer f.Close()
	defer w.Flush()

	rows := [][]string{
		vrePlantColumns,
		{plantID, "100", "900", "15", "0", "0", "0"},
	}
	return writeRows(w, rows)
}

func writeStorageData(dir string, _ int) error {
	w, f, err := create(dir, "StorageData.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	defer w.Flush()

	rows := [][]string{
		{"parameter", "battery_1"},
		{"P_Capex", "300"},
		{"E_Capex", "200"},
		{"Eff", "0.92"},
		{"Min_Duration", "1"},
		{"Max_Duration", "10"},
		{"Max_P", "100"},
		{"Coupled", "1"},
		{"FOM", "5"},
		{"VOM", "2"},
		{"Lifetime", "15"},
		{"CostRatio", "0.5"},
		{"MaxCycles", "0"},
	}
	return writeRows(w, rows)
}

func writeBalancingUnits(dir string, _ int) error {
	w, f, err := create(dir, "Data_BalancingUnits.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	defer w.Flush()

	rows := [][]string{
		{"parameter", "gas_1"},
		{"MinCapacity", "0"},
		{"MaxCapacity", "150"},
		{"Lifetime", "25"},
		{"Capex", "800"},
		{"HeatRate", "7.5"},
		{"FuelCost", "3.5"},
		{"VOM", "3"},
		{"FOM", "12"},
	}
	return writeRows(w, rows)
}

func writeRows(w *csv.Writer, rows [][]string) error {
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("scaffold: %w", err)
		}
	}
	return w.Error()
}
