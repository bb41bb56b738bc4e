// Package errs defines the typed error kinds SDOM surfaces to callers:
// configuration, input data, infeasibility, solver timeout, and
// generic solver failure.
package errs

import "fmt"

// ConfigError reports a missing file, unknown formulation, or other
// schema-level problem discovered before the model is built.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("config: %s: %v", e.Op, e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }
func (e *ConfigError) Code() string  { return "CONFIG_ERROR" }

func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// DataError reports an invariant violation in the input tables (§3).
type DataError struct {
	Op  string
	Err error
}

func (e *DataError) Error() string { return fmt.Sprintf("data: %s: %v", e.Op, e.Err) }
func (e *DataError) Unwrap() error { return e.Err }
func (e *DataError) Code() string  { return "DATA_ERROR" }

func NewDataError(op string, err error) *DataError {
	return &DataError{Op: op, Err: err}
}

// InfeasibilityError reports a solver termination of infeasible or
// unbounded. No primal extraction is attempted.
type InfeasibilityError struct {
	Stage  string
	Status string
}

func (e *InfeasibilityError) Error() string {
	return fmt.Sprintf("infeasible: stage=%s status=%s", e.Stage, e.Status)
}
func (e *InfeasibilityError) Code() string { return "INFEASIBLE" }

// TimeoutError reports a solver termination of time-limit. The current
// incumbent, if any, is flagged rather than discarded.
type TimeoutError struct {
	Stage          string
	HasIncumbent   bool
	IncumbentValue float64
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: stage=%s has_incumbent=%v", e.Stage, e.HasIncumbent)
}
func (e *TimeoutError) Code() string { return "TIMEOUT" }

// SolverError reports a missing solver binary, a crash, or any other
// failure of the solver abstraction itself (not of the model).
type SolverError struct {
	Op  string
	Err error
}

func (e *SolverError) Error() string { return fmt.Sprintf("solver: %s: %v", e.Op, e.Err) }
func (e *SolverError) Unwrap() error { return e.Err }
func (e *SolverError) Code() string  { return "SOLVER_ERROR" }

func NewSolverError(op string, err error) *SolverError {
	return &SolverError{Op: op, Err: err}
}
