package models

// ModelResponse describes a registered model instance.
type ModelResponse struct {
	ID                string `json:"id"`
	CaseDir           string `json:"case_dir"`
	NHours            int    `json:"n_hours"`
	ResilienceEnabled bool   `json:"resilience_enabled"`
	Status            string `json:"status"` // "loaded", "solved"
}

// SolveResponse summarizes a completed solve.
type SolveResponse struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"` // "optimal"
	TotalCost     float64           `json:"total_cost"`
	CostByItem    map[string]float64 `json:"cost_by_item"`
	InstalledMW   map[string]float64 `json:"installed_mw"`
	InstalledMWh  map[string]float64 `json:"installed_mwh"`
	GenerationMWh map[string]float64 `json:"generation_mwh"`
	StageA        bool              `json:"stage_a_ran"`
	ProblemStats  ProblemStatsInfo  `json:"problem_stats"`
	DemandStats   DemandStatsInfo   `json:"demand_stats"`
}

// ProblemStatsInfo mirrors solve.problemStats for the wire.
type ProblemStatsInfo struct {
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
	BinaryCols int `json:"binary_cols"`
}

// DemandStatsInfo mirrors result.DemandStatistics for the wire.
type DemandStatsInfo struct {
	MinMW              float64 `json:"min_mw"`
	MaxMW              float64 `json:"max_mw"`
	MeanMW             float64 `json:"mean_mw"`
	P05MW              float64 `json:"p05_mw"`
	P95MW              float64 `json:"p95_mw"`
	PeakResidualLoadMW float64 `json:"peak_residual_load_mw"`
}

// ExportResponse lists the files written by an export request.
type ExportResponse struct {
	ID    string   `json:"id"`
	Files []string `json:"files"`
}

// FormulationInfo describes one selectable formulation.
type FormulationInfo struct {
	Axis string   `json:"axis"` // "hydro", "trade", "resilience"
	Name string   `json:"name"`
}

// FormulationsResponse lists every formulation available for selection.
type FormulationsResponse struct {
	Formulations []FormulationInfo `json:"formulations"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
