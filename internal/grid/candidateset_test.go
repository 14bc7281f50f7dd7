package grid

import "testing"

func TestCandidateSet_Basic(t *testing.T) {
	var c CandidateSet
	if !c.IsEmpty() {
		t.Error("new CandidateSet should be empty")
	}

	c = c.Set(1).Set(5).Set(9)
	if !c.Has(1) || !c.Has(5) || !c.Has(9) {
		t.Error("should have digits 1, 5 and 9")
	}
	if c.Has(2) {
		t.Error("should not have digit 2")
	}
	if c.Count() != 3 {
		t.Errorf("expected count 3, got %d", c.Count())
	}

	c = c.Clear(5)
	if c.Has(5) {
		t.Error("should not have digit 5 after clearing")
	}
	if c.Count() != 2 {
		t.Errorf("expected count 2 after clearing, got %d", c.Count())
	}
}

func TestCandidateSet_Full(t *testing.T) {
	full9 := FullCandidates(9)
	if full9.Count() != 9 {
		t.Errorf("expected 9 candidates, got %d", full9.Count())
	}
	for v := 1; v <= 9; v++ {
		if !full9.Has(v) {
			t.Errorf("full set should have %d", v)
		}
	}
	if full9.Has(0) {
		t.Error("bit 0 must never be set")
	}

	full6 := FullCandidates(6)
	if full6.Count() != 6 {
		t.Errorf("expected 6 candidates, got %d", full6.Count())
	}
	if full6.Has(7) {
		t.Error("6x6 full set should not have 7")
	}
}

func TestCandidateSet_Only(t *testing.T) {
	var c CandidateSet
	if _, ok := c.Only(); ok {
		t.Error("empty set should not report a single candidate")
	}

	c = c.Set(7)
	if v, ok := c.Only(); !ok || v != 7 {
		t.Errorf("expected (7, true), got (%d, %v)", v, ok)
	}

	c = c.Set(3)
	if _, ok := c.Only(); ok {
		t.Error("two-candidate set should not report a single candidate")
	}
}

func TestCandidateSet_Digits(t *testing.T) {
	c := NewCandidates([]int{9, 1, 3, 7})
	digits := c.Digits()
	expected := []int{1, 3, 7, 9}

	if len(digits) != len(expected) {
		t.Fatalf("expected %d digits, got %d", len(expected), len(digits))
	}
	for i, v := range expected {
		if digits[i] != v {
			t.Errorf("digit %d: expected %d, got %d", i, v, digits[i])
		}
	}
}

func TestCandidateSet_Algebra(t *testing.T) {
	a := NewCandidates([]int{1, 2, 3})
	b := NewCandidates([]int{2, 3, 4})

	if got := a.Intersect(b); got != NewCandidates([]int{2, 3}) {
		t.Errorf("intersect: got %v", got)
	}
	if got := a.Union(b); got != NewCandidates([]int{1, 2, 3, 4}) {
		t.Errorf("union: got %v", got)
	}
	if got := a.Subtract(b); got != NewCandidates([]int{1}) {
		t.Errorf("subtract: got %v", got)
	}
	if got := a.Xor(b); got != NewCandidates([]int{1, 4}) {
		t.Errorf("xor: got %v", got)
	}
}

func TestCandidateSet_Complement(t *testing.T) {
	c := NewCandidates([]int{1, 2, 3})
	complement := c.Complement(9)
	if complement != NewCandidates([]int{4, 5, 6, 7, 8, 9}) {
		t.Errorf("complement: got %v", complement)
	}
	if complement.Has(0) {
		t.Error("complement must not set bit 0")
	}
	if c.Complement(6) != NewCandidates([]int{4, 5, 6}) {
		t.Errorf("6x6 complement: got %v", c.Complement(6))
	}
}

func TestCandidateSet_Filter(t *testing.T) {
	c := FullCandidates(9).Filter(func(v int) bool { return v%2 == 0 })
	if c != NewCandidates([]int{2, 4, 6, 8}) {
		t.Errorf("filter: got %v", c)
	}
}
