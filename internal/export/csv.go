// Package export writes a result.Result out as the five output CSVs of
// §6: one csv.Writer per file, an explicit header row, and a shared
// fmtFloat convention for every numeric column.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Omar0902/SDOM/internal/result"
)

// WriteAll writes all five output files into dir, named by caseName per
// §6's "OutputX_<case>.csv" convention.
func WriteAll(dir, caseName string, r *result.Result) error {
	if err := WriteGeneration(filepath.Join(dir, fmt.Sprintf("OutputGeneration_%s.csv", caseName)), r); err != nil {
		return err
	}
	if err := WriteStorage(filepath.Join(dir, fmt.Sprintf("OutputStorage_%s.csv", caseName)), r); err != nil {
		return err
	}
	if err := WriteSummary(filepath.Join(dir, fmt.Sprintf("OutputSummary_%s.csv", caseName)), r); err != nil {
		return err
	}
	if err := WriteThermalGeneration(filepath.Join(dir, fmt.Sprintf("OutputThermalGeneration_%s.csv", caseName)), r); err != nil {
		return err
	}
	if err := WriteInstalledPowerPlants(filepath.Join(dir, fmt.Sprintf("OutputInstalledPowerPlants_%s.csv", caseName)), r); err != nil {
		return err
	}
	return nil
}

// WriteGeneration writes the per-hour dispatch table.
func WriteGeneration(path string, r *result.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour", "pv_mwh", "wind_mwh", "curtail_pv_mwh", "curtail_wind_mwh",
		"hydro_mwh", "nuclear_mwh", "other_renewables_mwh", "balancing_mwh",
		"import_mwh", "export_mwh", "storage_charge_mwh", "storage_discharge_mwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range r.Dispatch {
		rec := []string{
			strconv.Itoa(int(row.Hour)),
			fmtFloat(row.PVMWh),
			fmtFloat(row.WindMWh),
			fmtFloat(row.CurtailPVMWh),
			fmtFloat(row.CurtailWindMWh),
			fmtFloat(row.HydroMWh),
			fmtFloat(row.NuclearMWh),
			fmtFloat(row.OtherRenewablesMWh),
			fmtFloat(row.BalancingMWh),
			fmtFloat(row.ImportMWh),
			fmtFloat(row.ExportMWh),
			fmtFloat(row.StorageChargeMWh),
			fmtFloat(row.StorageDischargeMWh),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteStorage writes the per-(hour, technology) storage table.
func WriteStorage(path string, r *result.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"hour", "technology", "charge_mwh", "discharge_mwh", "soc_mwh"}); err != nil {
		return err
	}

	for _, row := range r.Storage {
		rec := []string{
			strconv.Itoa(int(row.Hour)),
			string(row.Tech),
			fmtFloat(row.ChargeMWh),
			fmtFloat(row.DischargeMWh),
			fmtFloat(row.SOCMWh),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteSummary writes the scalar-aggregate metric/technology/value/unit
// table: total cost, the cost decomposition, installed capacities, and
// total generation by technology.
func WriteSummary(path string, r *result.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"metric", "technology", "value", "unit"}); err != nil {
		return err
	}

	rows := [][]string{
		{"total_cost", "", fmtFloat(r.Scalars.TotalCost), "usd"},
	}
	for item, value := range r.CostByItem {
		rows = append(rows, []string{"cost_component", item, fmtFloat(value), "usd"})
	}
	for tech, mw := range r.Scalars.InstalledPVMW {
		rows = append(rows, []string{"installed_capacity", "pv:" + string(tech), fmtFloat(mw), "mw"})
	}
	for tech, mw := range r.Scalars.InstalledWindMW {
		rows = append(rows, []string{"installed_capacity", "wind:" + string(tech), fmtFloat(mw), "mw"})
	}
	for unit, mw := range r.Scalars.InstalledBalancingMW {
		rows = append(rows, []string{"installed_capacity", "balancing:" + string(unit), fmtFloat(mw), "mw"})
	}
	for tech, mw := range r.Scalars.InstalledStoragePowerMW {
		rows = append(rows, []string{"installed_capacity", "storage_power:" + string(tech), fmtFloat(mw), "mw"})
	}
	for tech, mwh := range r.Scalars.InstalledStorageEnergyMWh {
		rows = append(rows, []string{"installed_capacity", "storage_energy:" + string(tech), fmtFloat(mwh), "mwh"})
	}
	for tech, mwh := range r.Scalars.TotalGenerationMWh {
		rows = append(rows, []string{"total_generation", tech, fmtFloat(mwh), "mwh"})
	}
	rows = append(rows,
		[]string{"problem_stats", "rows", strconv.Itoa(r.ProblemStats.Stats.NumRows), "count"},
		[]string{"problem_stats", "cols", strconv.Itoa(r.ProblemStats.Stats.NumCols), "count"},
		[]string{"problem_stats", "binary_cols", strconv.Itoa(r.ProblemStats.Stats.NumBinary), "count"},
	)

	for _, rec := range rows {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteThermalGeneration writes the per-(hour, balancing unit) table.
func WriteThermalGeneration(path string, r *result.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"hour", "unit", "mwh"}); err != nil {
		return err
	}

	for _, row := range r.Thermal {
		rec := []string{strconv.Itoa(int(row.Hour)), string(row.Unit), fmtFloat(row.MWh)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteInstalledPowerPlants writes the per-plant build-decision table.
func WriteInstalledPowerPlants(path string, r *result.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"id", "kind", "built_fraction", "capacity_mw", "energy_mwh"}); err != nil {
		return err
	}

	for _, row := range r.Installed {
		rec := []string{
			row.ID,
			row.Kind,
			fmtFloat(row.BuiltFraction),
			fmtFloat(row.CapacityMW),
			fmtFloat(row.EnergyMWh),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
