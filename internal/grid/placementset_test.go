package grid

import "testing"

func TestPlacementSet_Basic(t *testing.T) {
	p := NewPlacementSet(9)
	if !p.IsEmpty() {
		t.Error("new PlacementSet should be empty")
	}

	p.Add(Placement{Cell: 0, Value: 1})
	p.Add(Placement{Cell: 80, Value: 9})
	if p.Count() != 2 {
		t.Errorf("expected count 2, got %d", p.Count())
	}
	if !p.Contains(Placement{Cell: 0, Value: 1}) {
		t.Error("missing (0, 1)")
	}
	if !p.Contains(Placement{Cell: 80, Value: 9}) {
		t.Error("missing (80, 9)")
	}
	if p.Contains(Placement{Cell: 0, Value: 2}) {
		t.Error("should not contain (0, 2)")
	}

	p.Remove(Placement{Cell: 0, Value: 1})
	if p.Contains(Placement{Cell: 0, Value: 1}) {
		t.Error("should not contain (0, 1) after removal")
	}
}

func TestPlacementSet_Iteration(t *testing.T) {
	p := PlacementSetOf(9,
		Placement{Cell: 5, Value: 3},
		Placement{Cell: 2, Value: 7},
		Placement{Cell: 5, Value: 1},
	)

	placements := p.Placements()
	expected := []Placement{{Cell: 2, Value: 7}, {Cell: 5, Value: 1}, {Cell: 5, Value: 3}}
	if len(placements) != len(expected) {
		t.Fatalf("expected %d placements, got %d", len(expected), len(placements))
	}
	for i, pl := range expected {
		if placements[i] != pl {
			t.Errorf("placement %d: expected %v, got %v", i, pl, placements[i])
		}
	}

	if first, ok := p.First(); !ok || first != expected[0] {
		t.Errorf("first: got %v, %v", first, ok)
	}
}

func TestPlacementSet_Complement(t *testing.T) {
	// The full set for a 9x9 grid has exactly 9^3 placements.
	full := FullPlacementSet(9)
	if full.Count() != 729 {
		t.Errorf("expected 729 placements, got %d", full.Count())
	}

	p := PlacementSetOf(9, Placement{Cell: 40, Value: 5})
	complement := p.Complement()
	if complement.Count() != 728 {
		t.Errorf("expected 728 placements, got %d", complement.Count())
	}
	if complement.Contains(Placement{Cell: 40, Value: 5}) {
		t.Error("complement should not contain the original placement")
	}
}

func TestPlacementSet_Algebra(t *testing.T) {
	a := PlacementSetOf(9, Placement{Cell: 1, Value: 1}, Placement{Cell: 2, Value: 2})
	b := PlacementSetOf(9, Placement{Cell: 2, Value: 2}, Placement{Cell: 3, Value: 3})

	intersection := a.Intersect(b)
	if intersection.Count() != 1 || !intersection.Contains(Placement{Cell: 2, Value: 2}) {
		t.Errorf("intersect: got %v", intersection.Placements())
	}

	union := a.Union(b)
	if union.Count() != 3 {
		t.Errorf("union: expected 3 placements, got %d", union.Count())
	}

	if !union.ContainsAll(a) || !union.ContainsAll(b) {
		t.Error("union should contain both operands")
	}
	if a.ContainsAll(b) {
		t.Error("a should not contain b")
	}
}

func TestPlacementSet_IntersectionOfPlacements(t *testing.T) {
	sets := []*PlacementSet{
		PlacementSetOf(9, Placement{Cell: 1, Value: 4}, Placement{Cell: 2, Value: 5}),
		PlacementSetOf(9, Placement{Cell: 1, Value: 4}, Placement{Cell: 3, Value: 6}),
	}
	common := IntersectionOfPlacements(sets, 9)
	if common.Count() != 1 || !common.Contains(Placement{Cell: 1, Value: 4}) {
		t.Errorf("expected only (1, 4), got %v", common.Placements())
	}
}

func TestPlacementSet_Filter(t *testing.T) {
	p := PlacementSetOf(9,
		Placement{Cell: 1, Value: 1},
		Placement{Cell: 2, Value: 2},
		Placement{Cell: 3, Value: 3},
	)
	filtered := p.Filter(func(pl Placement) bool { return pl.Value > 1 })
	if filtered.Count() != 2 || filtered.Contains(Placement{Cell: 1, Value: 1}) {
		t.Errorf("filter: got %v", filtered.Placements())
	}
}
