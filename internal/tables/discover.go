package tables

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Omar0902/SDOM/internal/errs"
)

// Discovery is the result of scanning a case directory: the path found
// for each recognized logical file.
type Discovery map[LogicalFile]string

// DiscoverCase walks dir (non-recursively -- case directories are flat)
// and resolves every entry to a LogicalFile via Match. Unrecognized
// files are ignored; a directory entry that matches the same logical
// file twice is a ConfigError (ambiguous case directory).
func DiscoverCase(dir string) (Discovery, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.NewConfigError("discover_case", err)
	}

	out := make(Discovery)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lf, ok := Match(e.Name())
		if !ok {
			continue
		}
		if existing, dup := out[lf]; dup {
			return nil, errs.NewConfigError("discover_case",
				fmt.Errorf("ambiguous case directory: both %q and %q resolve to %q", existing, e.Name(), lf))
		}
		out[lf] = filepath.Join(dir, e.Name())
	}
	return out, nil
}

// RequireHydroBudget checks for the files only required by the
// MonthlyBudget/DailyBudget hydro sub-formulation.
func (d Discovery) RequireHydroBudget() error {
	return d.requireSet(requiredForHydroBudget)
}

// RequireTrade checks for the files only required by the PriceNetLoad
// trade sub-formulation.
func (d Discovery) RequireTrade() error {
	return d.requireSet(requiredForTrade)
}

// RequireAlways checks for the files required regardless of
// formulation selection.
func (d Discovery) RequireAlways() error {
	if err := d.requireSet(requiredAlways); err != nil {
		return err
	}
	return d.requireSet(requiredForBalancing)
}

func (d Discovery) requireSet(set map[LogicalFile]bool) error {
	for lf := range set {
		if _, ok := d[lf]; !ok {
			return errs.NewConfigError("discover_case", fmt.Errorf("missing required file: %s", lf))
		}
	}
	return nil
}
