// Package registry implements the symbol table of the model: every set,
// parameter, and decision variable declared during C1-C3 is registered
// here by name, and the constraint/objective builders (C4-C5) read from
// it exclusively -- they never see the raw InputBundle maps directly.
// This keeps the builder pure: it appends to its own accumulators and
// never mutates a parameter table (§9 "Model as data").
package registry

import "fmt"

// VarKind distinguishes continuous from binary/integer columns, mirroring
// the column-type vector HiGHS expects.
type VarKind int

const (
	Continuous VarKind = iota
	Binary
	Integer
)

// VarHandle is the opaque reference a Formulation or constraint builder
// holds to a declared variable; Col is the dense column index assigned
// to it in the eventual LP/MILP matrix.
type VarHandle struct {
	Name  string
	Col   int
	Kind  VarKind
	Lower float64
	Upper float64
}

// Registry is the append-only symbol table backing one model build. It
// is not safe for concurrent writes; each build.Model owns exactly one
// Registry for the duration of C2-C5.
type Registry struct {
	vars    []VarHandle
	byName  map[string]int // name -> index into vars
	params  map[string]interface{}
}

// New returns an empty registry ready to receive variable declarations.
func New() *Registry {
	return &Registry{
		byName: make(map[string]int),
		params: make(map[string]interface{}),
	}
}

// NewVar declares a new column. name must be unique within the registry
// (typically an indexed symbolic name like "G_pv[plantA,17]"); declaring
// the same name twice is a programmer error and panics, since it can
// only happen from a bug in a Formulation's DeclareVars.
func (r *Registry) NewVar(name string, lower, upper float64, kind VarKind) VarHandle {
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("registry: duplicate variable declaration %q", name))
	}
	h := VarHandle{Name: name, Col: len(r.vars), Kind: kind, Lower: lower, Upper: upper}
	r.vars = append(r.vars, h)
	r.byName[name] = h.Col
	return h
}

// Col looks up a previously declared variable by name.
func (r *Registry) Col(name string) (VarHandle, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return VarHandle{}, false
	}
	return r.vars[idx], true
}

// MustCol is Col, panicking on a missing name -- used by constraint code
// that only ever references variables it declared itself a few lines
// earlier, so a miss is a bug, not a runtime condition to handle.
func (r *Registry) MustCol(name string) VarHandle {
	h, ok := r.Col(name)
	if !ok {
		panic(fmt.Sprintf("registry: undeclared variable %q", name))
	}
	return h
}

// NumVars returns the number of declared columns.
func (r *Registry) NumVars() int { return len(r.vars) }

// Vars returns every declared variable in declaration order, the order
// the eventual column vectors are built in.
func (r *Registry) Vars() []VarHandle { return r.vars }

// SetParam stashes an arbitrary derived value (e.g. a per-axis net-load
// big-M) under a name so that a later component (objective, a different
// formulation's constraints) can read it without recomputing it or
// reaching back into the InputBundle.
func (r *Registry) SetParam(name string, value interface{}) { r.params[name] = value }

// Param retrieves a value stashed with SetParam.
func (r *Registry) Param(name string) (interface{}, bool) {
	v, ok := r.params[name]
	return v, ok
}
