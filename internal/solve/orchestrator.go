package solve

import (
	"log/slog"
	"math"

	"github.com/Omar0902/SDOM/internal/build"
	"github.com/Omar0902/SDOM/internal/config"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/registry"
)

// Orchestrator drives the single-shot or two-stage resilience solve
// (C6): one or two composed Formulation sets are built and solved
// against a fixed InputBundle, in the same run-then-report shape as a
// backtest engine driving one strategy over a fixed interval series.
type Orchestrator struct {
	Config config.SolverConfig
	Log    *slog.Logger
}

// New returns an Orchestrator ready to solve against cfg.
func New(cfg config.SolverConfig, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{Config: cfg, Log: log}
}

// Solve runs the model described by in: single-stage when
// resilienceEnabled is false, two-stage when it is true.
func (o *Orchestrator) Solve(in *model.InputBundle, resilienceEnabled bool) (*Outcome, error) {
	if !resilienceEnabled {
		return o.solveSingleStage(in)
	}
	return o.solveTwoStage(in)
}

func (o *Orchestrator) solveSingleStage(in *model.InputBundle) (*Outcome, error) {
	assembly, err := BuildModel(in, false)
	if err != nil {
		return nil, err
	}
	BoundBalancingCapacity(assembly, in)

	run, err := Solve(assembly.Model, o.Config, "single")
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Input: in,
		Final: &StageResult{Registry: assembly.Registry, Run: run},
	}, nil
}

func (o *Orchestrator) solveTwoStage(in *model.InputBundle) (*Outcome, error) {
	window := in.OutageWindow()
	lcrit := in.Scalars.CriticalPeakLoad
	tbackup := in.Scalars.MaxBackupPowerDur

	stageAIn := stageADesignInput(in, window, lcrit)
	stageAAssembly, err := BuildModel(stageAIn, false)
	if err != nil {
		return nil, err
	}
	addStageAConstraints(stageAAssembly, stageAIn, window, lcrit, tbackup)

	runA, err := Solve(stageAAssembly.Model, o.Config, "stage_a")
	if err != nil {
		return nil, err
	}
	stageA := &StageResult{Registry: stageAAssembly.Registry, Run: runA}

	stageBAssembly, err := BuildModel(in, true)
	if err != nil {
		return nil, err
	}
	applyStageATransition(stageBAssembly, stageA, in, window)

	runB, err := Solve(stageBAssembly.Model, o.Config, "stage_b")
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Input:  in,
		StageA: stageA,
		Final:  &StageResult{Registry: stageBAssembly.Registry, Run: runB},
	}, nil
}

// stageADesignInput builds the bespoke stage-A bundle: a horizon
// restricted to the outage window, constant critical-peak demand, no
// VRE plants and no balancing units declared at all (the InputBundle
// level encoding of "force F_pv=F_wind=0" and "disable balancing
// generation" -- a plant/unit that is never declared cannot be built or
// dispatched, so no post-hoc bound-fixing is needed), and every
// fixed-clean activation scalar zeroed.
func stageADesignInput(in *model.InputBundle, window []model.Hour, lcrit float64) *model.InputBundle {
	n := len(window)
	demand := make([]float64, n)
	zeros := make([]float64, n)
	for i := range demand {
		demand[i] = lcrit
	}

	out := &model.InputBundle{
		NHours:          n,
		Demand:          demand,
		Nuclear:         zeros,
		HydroRef:        zeros,
		OtherRenewables: zeros,
		Scalars: model.Scalars{
			DiscountRate: in.Scalars.DiscountRate,
			GenMixTarget: 0,
		},
		Formulations: model.FormulationSelection{Hydro: "RunOfRiver"},

		StorageTechs:   in.StorageTechs,
		Storage:        in.Storage,
		CoupledStorage: in.CoupledStorage,
		CRFStorage:     in.CRFStorage,

		BalancingUnits: nil,
		Balancing:      map[model.UnitID]model.BalancingUnit{},
		PVPlants:       nil,
		WindPlants:     nil,
		PVCapFactor:    map[model.PlantID][]float64{},
		WindCapFactor:  map[model.PlantID][]float64{},
		PVAttrs:        map[model.PlantID]model.VREPlant{},
		WindAttrs:      map[model.PlantID]model.VREPlant{},
	}
	return out
}

// addStageAConstraints adds the backup-energy constraints of §4.6's
// stage A contract directly onto the assembled model, since they have no
// counterpart in the ordinary per-hour constraint set.
func addStageAConstraints(a *Assembly, in *model.InputBundle, window []model.Hour, lcrit float64, tbackup int) {
	cb := build.NewConstraintBuilder(a.Model)

	var pDisTerms, eTerms []build.Term
	for _, j := range in.StorageTechs {
		sqrtEta := math.Sqrt(in.Storage[j].Eff)
		pDisTerms = append(pDisTerms, build.Term{Col: a.Registry.MustCol(registry.Name("P_dis", j)).Col, Coeff: 1})
		eTerms = append(eTerms, build.Term{Col: a.Registry.MustCol(registry.Name("E", j)).Col, Coeff: sqrtEta})
	}
	cb.AddGe("stage_a_power_floor", pDisTerms, lcrit)
	cb.AddGe("stage_a_energy_floor", eTerms, float64(tbackup)*lcrit)

	for idx := range window {
		// Stage A's horizon is the outage window renumbered from hour 1.
		h := model.Hour(idx + 1)
		var terms []build.Term
		for _, j := range in.StorageTechs {
			sqrtEta := math.Sqrt(in.Storage[j].Eff)
			terms = append(terms, build.Term{Col: a.Registry.MustCol(registry.Name("S", j, h)).Col, Coeff: sqrtEta})
		}
		remaining := float64(len(window)-idx) * lcrit
		cb.AddGe(registry.Name("stage_a_backup_reserve", h), terms, remaining)
	}
}

// applyStageATransition carries stage A's storage sizings into stage B
// as lower bounds (never recreating a variable, per §3's ownership and
// lifecycle rule) and forbids balancing generation during the outage
// window, per §4.6's stage A -> B transition.
func applyStageATransition(b *Assembly, stageA *StageResult, in *model.InputBundle, window []model.Hour) {
	for _, j := range in.StorageTechs {
		pCh := b.Registry.MustCol(registry.Name("P_ch", j))
		pDis := b.Registry.MustCol(registry.Name("P_dis", j))
		e := b.Registry.MustCol(registry.Name("E", j))

		b.Model.FixLowerBound(pCh.Col, stageA.Value(registry.Name("P_ch", j)))
		b.Model.FixLowerBound(pDis.Col, stageA.Value(registry.Name("P_dis", j)))
		b.Model.FixLowerBound(e.Col, stageA.Value(registry.Name("E", j)))
	}
	for _, h := range window {
		for _, k := range in.BalancingUnits {
			col := b.Registry.MustCol(registry.Name("G_bal", k, h))
			b.Model.FixValue(col.Col, 0)
		}
	}
}
