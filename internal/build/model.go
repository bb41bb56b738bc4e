// Package build assembles the objective and constraint list of a model
// instance (C4/C5) from a registry.Registry and a model.InputBundle. It
// never mutates either: it only reads declared variables and input
// parameters and appends to its own accumulators (§9 "Model as data").
package build

import "math"

// VarKind mirrors registry.VarKind in the shape the eventual solver
// adapter expects a column type in.
type VarKind int

const (
	Continuous VarKind = iota
	Binary
	Integer
)

// Nonzero is one (row, col, value) entry of the sparse constraint matrix,
// the same shape the HiGHS binding's Model.ConstMatrix expects.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// Model is the fully assembled LP/MILP, in the same column-bounds +
// sparse-row shape the solver adapter (internal/solve) translates into a
// gohighs.Model: dense ColLower/ColUpper/ColCosts/VarKinds, dense
// RowLower/RowUpper, sparse ConstMatrix.
type Model struct {
	Maximize bool
	Offset   float64

	ColCosts []float64
	ColLower []float64
	ColUpper []float64
	VarKinds []VarKind

	RowLower []float64
	RowUpper []float64
	RowNames []string

	ConstMatrix []Nonzero
}

// NewModel allocates a Model sized for numCols columns; rows grow as
// constraints are added.
func NewModel(numCols int) *Model {
	return &Model{
		ColCosts: make([]float64, numCols),
		ColLower: make([]float64, numCols),
		ColUpper: make([]float64, numCols),
		VarKinds: make([]VarKind, numCols),
	}
}

// NumCols reports the declared column count.
func (m *Model) NumCols() int { return len(m.ColCosts) }

// NumRows reports the constraint row count.
func (m *Model) NumRows() int { return len(m.RowLower) }

// ConstraintBuilder accumulates rows against a fixed-size Model. Its
// AddEq/AddLe/AddGe helpers mirror the HiGHS binding's own
// AddEqRow/AddLeRow/AddGeRow idiom so the eventual translation to a
// gohighs.Model is mechanical.
type ConstraintBuilder struct {
	model *Model
}

// NewConstraintBuilder wraps m for row accumulation.
func NewConstraintBuilder(m *Model) *ConstraintBuilder {
	return &ConstraintBuilder{model: m}
}

// Term is one (variable, coefficient) pair in a sparse row.
type Term struct {
	Col   int
	Coeff float64
}

func (cb *ConstraintBuilder) addRow(name string, lower float64, terms []Term, upper float64) int {
	row := len(cb.model.RowLower)
	cb.model.RowLower = append(cb.model.RowLower, lower)
	cb.model.RowUpper = append(cb.model.RowUpper, upper)
	cb.model.RowNames = append(cb.model.RowNames, name)
	for _, t := range terms {
		if t.Coeff == 0 {
			continue
		}
		cb.model.ConstMatrix = append(cb.model.ConstMatrix, Nonzero{Row: row, Col: t.Col, Val: t.Coeff})
	}
	return row
}

// AddEq adds sum(terms) = rhs.
func (cb *ConstraintBuilder) AddEq(name string, terms []Term, rhs float64) int {
	return cb.addRow(name, rhs, terms, rhs)
}

// AddLe adds sum(terms) <= rhs.
func (cb *ConstraintBuilder) AddLe(name string, terms []Term, rhs float64) int {
	return cb.addRow(name, math.Inf(-1), terms, rhs)
}

// AddGe adds sum(terms) >= rhs.
func (cb *ConstraintBuilder) AddGe(name string, terms []Term, rhs float64) int {
	return cb.addRow(name, rhs, terms, math.Inf(1))
}

// AddRange adds lower <= sum(terms) <= upper.
func (cb *ConstraintBuilder) AddRange(name string, lower float64, terms []Term, upper float64) int {
	return cb.addRow(name, lower, terms, upper)
}

// FixLowerBound raises a column's lower bound in place -- the mechanism
// the two-stage resilience solve (C6) uses to carry stage A's sizings
// into stage B without recreating any variable (§3 "ownership &
// lifecycle").
func (m *Model) FixLowerBound(col int, lower float64) {
	if lower > m.ColLower[col] {
		m.ColLower[col] = lower
	}
}

// FixValue pins a column to an exact value by collapsing both bounds --
// used to zero out balancing dispatch during the outage window and to
// force VRE investment to zero in stage A.
func (m *Model) FixValue(col int, value float64) {
	m.ColLower[col] = value
	m.ColUpper[col] = value
}
