package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/Omar0902/SDOM/internal/api/models"
	"github.com/Omar0902/SDOM/internal/config"
	"github.com/Omar0902/SDOM/internal/errs"
	"github.com/Omar0902/SDOM/internal/export"
	"github.com/Omar0902/SDOM/internal/model"
	"github.com/Omar0902/SDOM/internal/result"
	"github.com/Omar0902/SDOM/internal/solve"
	"github.com/Omar0902/SDOM/internal/tables"

	"github.com/gin-gonic/gin"
)

// ModelHandler owns the in-memory model store: each POST /api/v1/models
// call loads one case into an entry keyed by a generated ID, and
// subsequent solve/export calls address that entry by ID. This is the
// REST counterpart of what cmd/cli's "build", "solve", "export"
// subcommands do against a single in-process bundle.
type ModelHandler struct {
	mu      sync.RWMutex
	entries map[string]*modelEntry

	defaultSolver config.SolverConfig
	log           *slog.Logger
}

type modelEntry struct {
	in      *model.InputBundle
	req     models.CreateModelRequest
	outcome *solve.Outcome
	result  *result.Result
}

// NewModelHandler creates a model handler backed by the server's default
// solver configuration.
func NewModelHandler(defaultSolver config.SolverConfig, log *slog.Logger) *ModelHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ModelHandler{
		entries:       make(map[string]*modelEntry),
		defaultSolver: defaultSolver,
		log:           log,
	}
}

// CreateModel handles POST /api/v1/models.
func (h *ModelHandler) CreateModel(c *gin.Context) {
	var req models.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	in, err := tables.LoadCase(req.CaseDir, req.NHours, req.ResilienceEnabled, h.log)
	if err != nil {
		writeTypedError(c, err)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.entries[id] = &modelEntry{in: in, req: req}
	h.mu.Unlock()

	c.JSON(http.StatusCreated, models.ModelResponse{
		ID:                id,
		CaseDir:           req.CaseDir,
		NHours:            req.NHours,
		ResilienceEnabled: req.ResilienceEnabled,
		Status:            "loaded",
	})
}

// SolveModel handles POST /api/v1/models/:id/solve.
func (h *ModelHandler) SolveModel(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.getEntry(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "no such model: "+id)
		return
	}

	var req models.SolveModelRequest
	_ = c.ShouldBindJSON(&req)

	cfg := h.defaultSolver
	if req.SolverFile != "" {
		loaded, err := config.Load(req.SolverFile)
		if err != nil {
			writeTypedError(c, err)
			return
		}
		cfg = loaded.Solver
	}

	orch := solve.New(cfg, h.log)
	outcome, err := orch.Solve(entry.in, entry.req.ResilienceEnabled)
	if err != nil {
		writeTypedError(c, err)
		return
	}

	res := result.Extract(outcome)

	h.mu.Lock()
	entry.outcome = outcome
	entry.result = res
	h.mu.Unlock()

	c.JSON(http.StatusOK, toSolveResponse(id, res))
}

// ExportModel handles POST /api/v1/models/:id/export.
func (h *ModelHandler) ExportModel(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.getEntry(id)
	if !ok {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "no such model: "+id)
		return
	}
	if entry.result == nil {
		writeError(c, http.StatusConflict, "NOT_SOLVED", "model has not been solved yet")
		return
	}

	var req models.ExportModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := export.WriteAll(req.OutputDir, req.CaseName, entry.result); err != nil {
		writeError(c, http.StatusInternalServerError, "EXPORT_ERROR", err.Error())
		return
	}

	files := []string{
		"OutputGeneration_" + req.CaseName + ".csv",
		"OutputStorage_" + req.CaseName + ".csv",
		"OutputSummary_" + req.CaseName + ".csv",
		"OutputThermalGeneration_" + req.CaseName + ".csv",
		"OutputInstalledPowerPlants_" + req.CaseName + ".csv",
	}
	c.JSON(http.StatusOK, models.ExportResponse{ID: id, Files: files})
}

func (h *ModelHandler) getEntry(id string) (*modelEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.entries[id]
	return e, ok
}

func toSolveResponse(id string, res *result.Result) models.SolveResponse {
	installedMW := map[string]float64{}
	for k, v := range res.Scalars.InstalledPVMW {
		installedMW["pv:"+string(k)] = v
	}
	for k, v := range res.Scalars.InstalledWindMW {
		installedMW["wind:"+string(k)] = v
	}
	for k, v := range res.Scalars.InstalledBalancingMW {
		installedMW["balancing:"+string(k)] = v
	}
	for k, v := range res.Scalars.InstalledStoragePowerMW {
		installedMW["storage:"+string(k)] = v
	}
	installedMWh := map[string]float64{}
	for k, v := range res.Scalars.InstalledStorageEnergyMWh {
		installedMWh["storage:"+string(k)] = v
	}

	return models.SolveResponse{
		ID:            id,
		Status:        res.ProblemStats.Status,
		TotalCost:     res.Scalars.TotalCost,
		CostByItem:    res.CostByItem,
		InstalledMW:   installedMW,
		InstalledMWh:  installedMWh,
		GenerationMWh: res.Scalars.TotalGenerationMWh,
		ProblemStats: models.ProblemStatsInfo{
			Rows:       res.ProblemStats.Stats.NumRows,
			Cols:       res.ProblemStats.Stats.NumCols,
			BinaryCols: res.ProblemStats.Stats.NumBinary,
		},
		DemandStats: models.DemandStatsInfo{
			MinMW:              res.Demand.MinMW,
			MaxMW:              res.Demand.MaxMW,
			MeanMW:             res.Demand.MeanMW,
			P05MW:              res.Demand.P05MW,
			P95MW:              res.Demand.P95MW,
			PeakResidualLoadMW: res.Demand.PeakResidualLoadMW,
		},
	}
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: models.ErrorDetail{Code: code, Message: message}})
}

// writeTypedError maps the five §7 error kinds to an HTTP status and
// the error's own Code(), falling back to a generic 500 for anything else.
func writeTypedError(c *gin.Context, err error) {
	var cfgErr *errs.ConfigError
	var dataErr *errs.DataError
	var infErr *errs.InfeasibilityError
	var toErr *errs.TimeoutError
	var solverErr *errs.SolverError

	switch {
	case errors.As(err, &cfgErr):
		writeError(c, http.StatusBadRequest, cfgErr.Code(), err.Error())
	case errors.As(err, &dataErr):
		writeError(c, http.StatusBadRequest, dataErr.Code(), err.Error())
	case errors.As(err, &infErr):
		writeError(c, http.StatusUnprocessableEntity, infErr.Code(), err.Error())
	case errors.As(err, &toErr):
		writeError(c, http.StatusGatewayTimeout, toErr.Code(), err.Error())
	case errors.As(err, &solverErr):
		writeError(c, http.StatusInternalServerError, solverErr.Code(), err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
