// Package tables discovers and parses the tabular input files that make
// up an SDOM case directory (§6). File-name
// matching is case- and separator-insensitive: "CapSolar",
// "cap-solar.csv", and "cap_solar.CSV" all resolve to the same logical
// file.
package tables

import "strings"

// LogicalFile identifies one of the fixed input files of §6.
type LogicalFile string

const (
	FileScalars            LogicalFile = "Scalars"
	FileFormulations       LogicalFile = "Formulations"
	FileLoadHourly         LogicalFile = "Load_hourly"
	FileNuclHourly         LogicalFile = "Nucl_hourly"
	FileLahyHourly         LogicalFile = "lahy_hourly"
	FileOtreHourly         LogicalFile = "otre_hourly"
	FileLahyMaxHourly      LogicalFile = "lahy_max_hourly"
	FileLahyMinHourly      LogicalFile = "lahy_min_hourly"
	FileCFSolar            LogicalFile = "CFSolar"
	FileCFWind             LogicalFile = "CFWind"
	FileCapSolar           LogicalFile = "CapSolar"
	FileCapWind            LogicalFile = "CapWind"
	FileStorageData        LogicalFile = "StorageData"
	FileDataBalancingUnits LogicalFile = "Data_BalancingUnits"
	FileImportCap          LogicalFile = "Import_Cap"
	FileImportPrices       LogicalFile = "Import_Prices"
	FileExportCap          LogicalFile = "Export_Cap"
	FileExportPrices       LogicalFile = "Export_Prices"
)

// AllLogicalFiles is every file name the schema recognizes.
var AllLogicalFiles = []LogicalFile{
	FileScalars, FileFormulations, FileLoadHourly, FileNuclHourly,
	FileLahyHourly, FileOtreHourly, FileLahyMaxHourly, FileLahyMinHourly,
	FileCFSolar, FileCFWind, FileCapSolar, FileCapWind, FileStorageData,
	FileDataBalancingUnits, FileImportCap, FileImportPrices, FileExportCap,
	FileExportPrices,
}

// requiredAlways are the files loaded regardless of formulation choice.
var requiredAlways = map[LogicalFile]bool{
	FileScalars:      true,
	FileFormulations: true,
	FileLoadHourly:   true,
	FileNuclHourly:   true,
	FileLahyHourly:   true,
	FileOtreHourly:   true,
	FileCapSolar:     true,
	FileCapWind:      true,
	FileCFSolar:      true,
	FileCFWind:       true,
	FileStorageData:  true,
}

// requiredForHydroBudget are additionally required when the hydro axis
// is MonthlyBudget or DailyBudget.
var requiredForHydroBudget = map[LogicalFile]bool{
	FileLahyMaxHourly: true,
	FileLahyMinHourly: true,
}

// requiredForTrade are additionally required when the trade axis is
// PriceNetLoad.
var requiredForTrade = map[LogicalFile]bool{
	FileImportCap:    true,
	FileImportPrices: true,
	FileExportCap:    true,
	FileExportPrices: true,
}

// requiredForBalancing is always required; Data_BalancingUnits has its
// own constant because it is often absent from minimal toy cases that
// the loader should still fail clearly on.
var requiredForBalancing = map[LogicalFile]bool{
	FileDataBalancingUnits: true,
}

// normalize lowercases a name and strips spaces, hyphens, underscores,
// and any file extension, so that name matching is insensitive to all
// of those.
func normalize(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	name = strings.ToLower(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		default:
			return r
		}
	}, name)
	return name
}

var canonicalByNormalized = func() map[string]LogicalFile {
	m := make(map[string]LogicalFile, len(AllLogicalFiles))
	for _, f := range AllLogicalFiles {
		m[normalize(string(f))] = f
	}
	return m
}()

// Match resolves a file's base name to a LogicalFile, if recognized.
func Match(baseName string) (LogicalFile, bool) {
	f, ok := canonicalByNormalized[normalize(baseName)]
	return f, ok
}
