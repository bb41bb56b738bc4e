package models

// CreateModelRequest is the request body for POST /api/v1/models: point
// the server at a case directory (§6's file schema) and declare the
// axes that need a caller decision rather than a file lookup.
type CreateModelRequest struct {
	CaseDir           string `json:"case_dir" binding:"required"`
	NHours            int    `json:"n_hours" binding:"required"`
	ResilienceEnabled bool   `json:"resilience_enabled,omitempty"`
}

// SolveModelRequest is the request body for POST /api/v1/models/:id/solve.
// SolverFile overrides the server's default solver config for this run only.
type SolveModelRequest struct {
	SolverFile string `json:"solver_file,omitempty"`
}

// ExportModelRequest is the request body for POST /api/v1/models/:id/export.
type ExportModelRequest struct {
	OutputDir string `json:"output_dir" binding:"required"`
	CaseName  string `json:"case_name" binding:"required"`
}
