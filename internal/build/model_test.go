package build

import (
	"math"
	"testing"
)

func TestConstraintBuilderAddEq(t *testing.T) {
	m := NewModel(2)
	cb := NewConstraintBuilder(m)

	row := cb.AddEq("balance", []Term{{Col: 0, Coeff: 1}, {Col: 1, Coeff: -1}}, 5)

	if row != 0 {
		t.Fatalf("row = %d, want 0", row)
	}
	if m.RowLower[row] != 5 || m.RowUpper[row] != 5 {
		t.Fatalf("row bounds = [%v,%v], want [5,5]", m.RowLower[row], m.RowUpper[row])
	}
	if m.RowNames[row] != "balance" {
		t.Errorf("row name = %q, want %q", m.RowNames[row], "balance")
	}
	if len(m.ConstMatrix) != 2 {
		t.Fatalf("ConstMatrix has %d entries, want 2", len(m.ConstMatrix))
	}
}

func TestConstraintBuilderSkipsZeroCoefficients(t *testing.T) {
	m := NewModel(2)
	cb := NewConstraintBuilder(m)
	cb.AddLe("cap", []Term{{Col: 0, Coeff: 1}, {Col: 1, Coeff: 0}}, 10)

	if len(m.ConstMatrix) != 1 {
		t.Fatalf("ConstMatrix has %d entries, want 1 (zero coefficient skipped)", len(m.ConstMatrix))
	}
}

func TestConstraintBuilderBoundDirections(t *testing.T) {
	m := NewModel(1)
	cb := NewConstraintBuilder(m)

	le := cb.AddLe("le", []Term{{Col: 0, Coeff: 1}}, 10)
	if !math.IsInf(m.RowLower[le], -1) || m.RowUpper[le] != 10 {
		t.Errorf("AddLe row bounds = [%v,%v], want [-Inf,10]", m.RowLower[le], m.RowUpper[le])
	}

	ge := cb.AddGe("ge", []Term{{Col: 0, Coeff: 1}}, 3)
	if m.RowLower[ge] != 3 || !math.IsInf(m.RowUpper[ge], 1) {
		t.Errorf("AddGe row bounds = [%v,%v], want [3,+Inf]", m.RowLower[ge], m.RowUpper[ge])
	}

	rng := cb.AddRange("range", 1, []Term{{Col: 0, Coeff: 1}}, 9)
	if m.RowLower[rng] != 1 || m.RowUpper[rng] != 9 {
		t.Errorf("AddRange row bounds = [%v,%v], want [1,9]", m.RowLower[rng], m.RowUpper[rng])
	}
}

func TestFixLowerBoundOnlyRaises(t *testing.T) {
	m := NewModel(1)
	m.ColLower[0] = 5
	m.ColUpper[0] = 100

	m.FixLowerBound(0, 2)
	if m.ColLower[0] != 5 {
		t.Errorf("FixLowerBound lowered the bound: ColLower = %v, want 5 unchanged", m.ColLower[0])
	}

	m.FixLowerBound(0, 20)
	if m.ColLower[0] != 20 {
		t.Errorf("ColLower = %v, want 20", m.ColLower[0])
	}
}

func TestFixValueCollapsesBothBounds(t *testing.T) {
	m := NewModel(1)
	m.ColLower[0] = 0
	m.ColUpper[0] = 100

	m.FixValue(0, 42)
	if m.ColLower[0] != 42 || m.ColUpper[0] != 42 {
		t.Errorf("ColLower/ColUpper = %v/%v, want both 42", m.ColLower[0], m.ColUpper[0])
	}
}

func TestNumColsAndNumRows(t *testing.T) {
	m := NewModel(3)
	if m.NumCols() != 3 {
		t.Fatalf("NumCols() = %d, want 3", m.NumCols())
	}
	cb := NewConstraintBuilder(m)
	cb.AddEq("a", []Term{{Col: 0, Coeff: 1}}, 1)
	cb.AddEq("b", []Term{{Col: 1, Coeff: 1}}, 1)
	if m.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", m.NumRows())
	}
}
