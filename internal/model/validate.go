package model

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Omar0902/SDOM/internal/errs"
)

// Validate enforces the six loader invariants of the data model
// (the seventh -- plant/time-series alignment -- is handled by the
// loader itself via DropMisaligned, since it is a recovery, not a
// failure). It assumes hourly series have already been length-checked
// against NHours.
func (b *InputBundle) Validate() error {
	if err := b.validateCapacityFactors(); err != nil {
		return err
	}
	if err := b.validateStorage(); err != nil {
		return err
	}
	if err := b.validateScalars(); err != nil {
		return err
	}
	if err := b.validateHydroBudgets(); err != nil {
		return err
	}
	if b.NHours <= 0 {
		return errs.NewDataError("validate", fmt.Errorf("NHours must be > 0"))
	}
	return nil
}

func (b *InputBundle) validateCapacityFactors() error {
	for _, p := range b.PVPlants {
		for h, v := range b.PVCapFactor[p] {
			if v < 0 || v > 1 || math.IsNaN(v) {
				return errs.NewDataError("validate_pv_cf",
					fmt.Errorf("plant %s hour %d: capacity factor %v out of [0,1]", p, h+1, v))
			}
		}
	}
	for _, w := range b.WindPlants {
		for h, v := range b.WindCapFactor[w] {
			if v < 0 || v > 1 || math.IsNaN(v) {
				return errs.NewDataError("validate_wind_cf",
					fmt.Errorf("plant %s hour %d: capacity factor %v out of [0,1]", w, h+1, v))
			}
		}
	}
	return nil
}

func (b *InputBundle) validateStorage() error {
	for _, id := range b.StorageTechs {
		s := b.Storage[id]
		if s.Eff <= 0 || s.Eff > 1 {
			return errs.NewDataError("validate_storage",
				fmt.Errorf("tech %s: efficiency %v not in (0,1]", id, s.Eff))
		}
		if s.MinDuration < 0 || s.MinDuration > s.MaxDuration {
			return errs.NewDataError("validate_storage",
				fmt.Errorf("tech %s: duration bounds [%v,%v] invalid", id, s.MinDuration, s.MaxDuration))
		}
		if s.CostRatio < 0 || s.CostRatio > 1 {
			return errs.NewDataError("validate_storage",
				fmt.Errorf("tech %s: cost ratio %v not in [0,1]", id, s.CostRatio))
		}
		if s.PCapexPerKW < 0 || s.ECapexPerKW < 0 || s.FOMPerKWYr < 0 || s.VOMPerMWh < 0 {
			return errs.NewDataError("validate_storage",
				fmt.Errorf("tech %s: monetary parameters must be non-negative", id))
		}
	}
	return nil
}

func (b *InputBundle) validateScalars() error {
	if b.Scalars.DiscountRate <= 0 {
		return errs.NewDataError("validate_scalars", fmt.Errorf("r must be > 0, got %v", b.Scalars.DiscountRate))
	}
	if b.Scalars.GenMixTarget < 0 || b.Scalars.GenMixTarget > 1 {
		return errs.NewDataError("validate_scalars", fmt.Errorf("GenMix_Target must be in [0,1], got %v", b.Scalars.GenMixTarget))
	}
	return nil
}

func (b *InputBundle) validateHydroBudgets() error {
	if b.Formulations.Hydro == "RunOfRiver" {
		return nil
	}
	for _, p := range b.HydroPeriods {
		var minSum, maxSum float64
		for _, h := range p.Hours {
			minSum += At(b.HydroMin, h)
			maxSum += At(b.HydroMax, h)
		}
		if p.Budget < minSum-1e-6 || p.Budget > maxSum+1e-6 {
			return errs.NewDataError("validate_hydro_budget",
				fmt.Errorf("period %d: budget %v outside feasible range [%v,%v]", p.Index, p.Budget, minSum, maxSum))
		}
	}
	return nil
}

// DropMisaligned removes plants present in a capacity-factor matrix but
// absent from the corresponding attribute table, or vice versa. This is
// recovery, not failure (§7): each drop is logged and the plant simply
// does not appear in the resulting sets.
func (b *InputBundle) DropMisaligned(log *slog.Logger) {
	b.PVPlants = dropMisaligned(log, "pv", b.PVPlants, b.PVCapFactor, b.PVAttrs)
	b.WindPlants = dropMisaligned(log, "wind", b.WindPlants, b.WindCapFactor, b.WindAttrs)
}

func dropMisaligned(log *slog.Logger, kind string, plants []PlantID, cf map[PlantID][]float64, attrs map[PlantID]VREPlant) []PlantID {
	out := make([]PlantID, 0, len(plants))
	for _, p := range plants {
		_, hasCF := cf[p]
		_, hasAttrs := attrs[p]
		if hasCF && hasAttrs {
			out = append(out, p)
			continue
		}
		log.Warn("dropping plant with incomplete data", "kind", kind, "plant", string(p), "has_cf", hasCF, "has_attrs", hasAttrs)
		delete(cf, p)
		delete(attrs, p)
	}
	return out
}
