package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Omar0902/SDOM/internal/errs"
	"github.com/Omar0902/SDOM/internal/model"
)

// openReader opens path and returns a csv.Reader tolerant of either
// comma or semicolon delimiters, sniffed from the header line.
func openReader(path string) (*csv.Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errs.NewConfigError("open_table", err)
	}
	delim, err := sniffDelimiter(f)
	if err != nil {
		f.Close()
		return nil, nil, errs.NewConfigError("open_table", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, nil, errs.NewConfigError("open_table", err)
	}
	r := csv.NewReader(f)
	r.Comma = delim
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	return r, f, nil
}

func sniffDelimiter(f *os.File) (rune, error) {
	buf := make([]byte, 4096)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return ',', err
	}
	line := string(buf[:n])
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';', nil
	}
	return ',', nil
}

func parseFloat(op, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errs.NewDataError(op, fmt.Errorf("invalid numeric value %q: %w", raw, err))
	}
	return v, nil
}

// ScalarsFile parses a two-column (name, value) file into a map, keyed
// by the exact (trimmed) text of each row's first column.
func ScalarsFile(path string) (map[string]float64, error) {
	r, f, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]float64)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errs.NewConfigError("parse_scalars", err)
	}
	for i, row := range rows {
		if i == 0 && looksLikeHeader(row) {
			continue
		}
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		v, err := parseFloat("parse_scalars", row[1])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// FormulationsFile parses the (component, formulation) rows.
func FormulationsFile(path string) (map[string]string, error) {
	r, f, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]string)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errs.NewConfigError("parse_formulations", err)
	}
	for i, row := range rows {
		if i == 0 && looksLikeHeader(row) {
			continue
		}
		if len(row) < 2 {
			continue
		}
		component := strings.TrimSpace(row[0])
		formulation := strings.TrimSpace(row[1])
		if component == "" {
			continue
		}
		out[component] = formulation
	}
	return out, nil
}

// HourSeriesFile parses a 1-indexed (hour, value) file into a dense,
// gap-checked []float64 of length nHours.
func HourSeriesFile(path string, nHours int) ([]float64, error) {
	r, f, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errs.NewConfigError("parse_hour_series", err)
	}

	out := make([]float64, nHours)
	seen := make([]bool, nHours)
	for i, row := range rows {
		if i == 0 && looksLikeHeader(row) {
			continue
		}
		if len(row) < 2 {
			continue
		}
		hr, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, errs.NewDataError("parse_hour_series", fmt.Errorf("invalid hour %q: %w", row[0], err))
		}
		if hr < 1 || hr > nHours {
			return nil, errs.NewDataError("parse_hour_series", fmt.Errorf("hour %d out of range [1,%d]", hr, nHours))
		}
		v, err := parseFloat("parse_hour_series", row[1])
		if err != nil {
			return nil, err
		}
		out[hr-1] = v
		seen[hr-1] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, errs.NewDataError("parse_hour_series", fmt.Errorf("hour %d missing from %s", i+1, path))
		}
	}
	return out, nil
}

// CapFactorMatrix parses an hour x plant capacity-factor matrix: the
// header row lists plant IDs, each subsequent row is (hour, cf...).
func CapFactorMatrix(path string, nHours int) (map[model.PlantID][]float64, error) {
	r, f, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errs.NewConfigError("parse_cf_matrix", err)
	}
	if len(rows) == 0 {
		return nil, errs.NewConfigError("parse_cf_matrix", fmt.Errorf("%s is empty", path))
	}

	header := rows[0]
	plants := make([]model.PlantID, len(header)-1)
	for i := 1; i < len(header); i++ {
		plants[i-1] = model.PlantID(strings.TrimSpace(header[i]))
	}

	out := make(map[model.PlantID][]float64, len(plants))
	for _, p := range plants {
		out[p] = make([]float64, nHours)
	}
	seen := make([]bool, nHours)

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		hr, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, errs.NewDataError("parse_cf_matrix", fmt.Errorf("invalid hour %q: %w", row[0], err))
		}
		if hr < 1 || hr > nHours {
			return nil, errs.NewDataError("parse_cf_matrix", fmt.Errorf("hour %d out of range [1,%d]", hr, nHours))
		}
		for i, p := range plants {
			col := i + 1
			if col >= len(row) {
				continue
			}
			v, err := parseFloat("parse_cf_matrix", row[col])
			if err != nil {
				return nil, err
			}
			out[p][hr-1] = v
		}
		seen[hr-1] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, errs.NewDataError("parse_cf_matrix", fmt.Errorf("hour %d missing from %s", i+1, path))
		}
	}
	return out, nil
}

// vrePlantColumns is the column order of CapSolar/CapWind.
var vrePlantColumns = []string{"id", "capacity_mw", "capex_per_kw", "fom_per_kw_yr", "transmission_capex", "latitude", "longitude"}

// VREPlantTable parses CapSolar/CapWind's per-plant attribute rows.
func VREPlantTable(path string) (map[model.PlantID]model.VREPlant, error) {
	r, f, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errs.NewConfigError("parse_vre_table", err)
	}
	if len(rows) == 0 {
		return nil, errs.NewConfigError("parse_vre_table", fmt.Errorf("%s is empty", path))
	}

	idx := columnIndex(rows[0], vrePlantColumns)
	out := make(map[model.PlantID]model.VREPlant)
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		id := model.PlantID(strings.TrimSpace(field(row, idx["id"])))
		attrs := model.VREPlant{ID: id}
		attrs.CapacityMW, err = parseFloat("parse_vre_table", field(row, idx["capacity_mw"]))
		if err != nil {
			return nil, err
		}
		attrs.CapexPerKW, err = parseFloat("parse_vre_table", field(row, idx["capex_per_kw"]))
		if err != nil {
			return nil, err
		}
		attrs.FOMPerKWYr, err = parseFloat("parse_vre_table", field(row, idx["fom_per_kw_yr"]))
		if err != nil {
			return nil, err
		}
		attrs.TransmissionCapex, err = parseFloat("parse_vre_table", field(row, idx["transmission_capex"]))
		if err != nil {
			return nil, err
		}
		attrs.Latitude, err = parseFloat("parse_vre_table", field(row, idx["latitude"]))
		if err != nil {
			return nil, err
		}
		attrs.Longitude, err = parseFloat("parse_vre_table", field(row, idx["longitude"]))
		if err != nil {
			return nil, err
		}
		out[id] = attrs
	}
	return out, nil
}

// StorageDataTable parses the parameter x technology table: rows are
// parameters, columns (after the first) are technology IDs.
func StorageDataTable(path string) (map[model.TechID]model.StorageTech, []model.TechID, error) {
	r, f, err := openReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, errs.NewConfigError("parse_storage", err)
	}
	if len(rows) == 0 {
		return nil, nil, errs.NewConfigError("parse_storage", fmt.Errorf("%s is empty", path))
	}

	header := rows[0]
	techs := make([]model.TechID, len(header)-1)
	for i := 1; i < len(header); i++ {
		techs[i-1] = model.TechID(strings.TrimSpace(header[i]))
	}

	byParam := make(map[string][]string, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		byParam[strings.TrimSpace(row[0])] = row[1:]
	}

	out := make(map[model.TechID]model.StorageTech, len(techs))
	for i, id := range techs {
		get := func(param string) (string, bool) {
			vals, ok := byParam[param]
			if !ok || i >= len(vals) {
				return "", false
			}
			return vals[i], true
		}
		num := func(param string) (float64, error) {
			s, ok := get(param)
			if !ok {
				return 0, errs.NewConfigError("parse_storage", fmt.Errorf("missing parameter %q for tech %s", param, id))
			}
			return parseFloat("parse_storage", s)
		}

		s := model.StorageTech{ID: id}
		if s.PCapexPerKW, err = num("P_Capex"); err != nil {
			return nil, nil, err
		}
		if s.ECapexPerKW, err = num("E_Capex"); err != nil {
			return nil, nil, err
		}
		if s.Eff, err = num("Eff"); err != nil {
			return nil, nil, err
		}
		if s.MinDuration, err = num("Min_Duration"); err != nil {
			return nil, nil, err
		}
		if s.MaxDuration, err = num("Max_Duration"); err != nil {
			return nil, nil, err
		}
		if s.MaxPowerMW, err = num("Max_P"); err != nil {
			return nil, nil, err
		}
		coupled, err := num("Coupled")
		if err != nil {
			return nil, nil, err
		}
		s.Coupled = coupled != 0
		if s.FOMPerKWYr, err = num("FOM"); err != nil {
			return nil, nil, err
		}
		if s.VOMPerMWh, err = num("VOM"); err != nil {
			return nil, nil, err
		}
		if s.LifetimeYears, err = num("Lifetime"); err != nil {
			return nil, nil, err
		}
		if s.CostRatio, err = num("CostRatio"); err != nil {
			return nil, nil, err
		}
		if s.MaxCycles, err = num("MaxCycles"); err != nil {
			return nil, nil, err
		}
		out[id] = s
	}
	return out, techs, nil
}

// BalancingUnitsTable parses the parameter x unit table of Data_BalancingUnits.
func BalancingUnitsTable(path string) (map[model.UnitID]model.BalancingUnit, []model.UnitID, error) {
	r, f, err := openReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, errs.NewConfigError("parse_balancing", err)
	}
	if len(rows) == 0 {
		return nil, nil, errs.NewConfigError("parse_balancing", fmt.Errorf("%s is empty", path))
	}

	header := rows[0]
	units := make([]model.UnitID, len(header)-1)
	for i := 1; i < len(header); i++ {
		units[i-1] = model.UnitID(strings.TrimSpace(header[i]))
	}

	byParam := make(map[string][]string, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		byParam[strings.TrimSpace(row[0])] = row[1:]
	}

	out := make(map[model.UnitID]model.BalancingUnit, len(units))
	for i, id := range units {
		get := func(param string) (string, bool) {
			vals, ok := byParam[param]
			if !ok || i >= len(vals) {
				return "", false
			}
			return vals[i], true
		}
		num := func(param string) (float64, error) {
			s, ok := get(param)
			if !ok {
				return 0, errs.NewConfigError("parse_balancing", fmt.Errorf("missing parameter %q for unit %s", param, id))
			}
			return parseFloat("parse_balancing", s)
		}

		u := model.BalancingUnit{ID: id}
		if u.MinCapacityMW, err = num("MinCapacity"); err != nil {
			return nil, nil, err
		}
		if u.MaxCapacityMW, err = num("MaxCapacity"); err != nil {
			return nil, nil, err
		}
		if u.LifetimeYears, err = num("Lifetime"); err != nil {
			return nil, nil, err
		}
		if u.CapexPerKW, err = num("Capex"); err != nil {
			return nil, nil, err
		}
		if u.HeatRate, err = num("HeatRate"); err != nil {
			return nil, nil, err
		}
		if u.FuelCostPerMWh, err = num("FuelCost"); err != nil {
			return nil, nil, err
		}
		if u.VOMPerMWh, err = num("VOM"); err != nil {
			return nil, nil, err
		}
		if u.FOMPerKWYr, err = num("FOM"); err != nil {
			return nil, nil, err
		}
		out[id] = u
	}
	return out, units, nil
}

func columnIndex(header []string, want []string) map[string]int {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = normalize(h)
	}
	idx := make(map[string]int, len(want))
	for _, w := range want {
		wn := normalize(w)
		for i, h := range norm {
			if h == wn {
				idx[w] = i
				break
			}
		}
		if _, ok := idx[w]; !ok {
			// Fall back to positional match by declared order, tolerant
			// of header text that doesn't match our canonical names.
			idx[w] = len(idx)
		}
	}
	return idx
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func looksLikeHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	return err != nil
}
