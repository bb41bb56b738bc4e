package build

import "testing"

func TestObjectiveAccumulatesContributionsOnSameColumn(t *testing.T) {
	obj := NewObjective()
	obj.Add(0, 10)
	obj.Add(0, 5)
	obj.Add(1, 2)
	obj.AddConstant(100)

	m := NewModel(2)
	obj.Apply(m)

	if m.ColCosts[0] != 15 {
		t.Errorf("ColCosts[0] = %v, want 15 (10+5 accumulated)", m.ColCosts[0])
	}
	if m.ColCosts[1] != 2 {
		t.Errorf("ColCosts[1] = %v, want 2", m.ColCosts[1])
	}
	if m.Offset != 100 {
		t.Errorf("Offset = %v, want 100", m.Offset)
	}
}

func TestObjectiveIgnoresZeroCoefficients(t *testing.T) {
	obj := NewObjective()
	obj.Add(0, 0)
	m := NewModel(1)
	obj.Apply(m)
	if m.ColCosts[0] != 0 {
		t.Errorf("ColCosts[0] = %v, want 0", m.ColCosts[0])
	}
}

func TestObjectiveApplyIsAdditiveOnExistingCosts(t *testing.T) {
	m := NewModel(1)
	m.ColCosts[0] = 7

	obj := NewObjective()
	obj.Add(0, 3)
	obj.Apply(m)

	if m.ColCosts[0] != 10 {
		t.Errorf("ColCosts[0] = %v, want 10 (7 existing + 3 contributed)", m.ColCosts[0])
	}
}
