package chaining

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestValueNodes_EmptyGrid(t *testing.T) {
	g := grid.EmptyClassic()
	nodes := ValueNodes(g)
	if len(nodes) != 81*9 {
		t.Errorf("expected 729 value nodes, got %d", len(nodes))
	}
}

func TestGroupNodes_EmptyGrid(t *testing.T) {
	g := grid.EmptyClassic()

	// Every row and column meets three blocks in three cells each, for
	// every candidate: (9 rows + 9 columns) * 3 blocks * 9 values.
	nodes := GroupNodes(g)
	if len(nodes) != 486 {
		t.Errorf("expected 486 group nodes, got %d", len(nodes))
	}

	single := GroupNodesForCandidate(g, 5)
	if len(single) != 54 {
		t.Errorf("expected 54 group nodes for one candidate, got %d", len(single))
	}
}

func TestWeakLink_SameValueNeighbours(t *testing.T) {
	g := grid.EmptyClassic()
	linker := AicLinker{}

	a := Node{Kind: ValueNode, Cell: 0, Value: 5}
	b := Node{Kind: ValueNode, Cell: 8, Value: 5}
	c := Node{Kind: ValueNode, Cell: 80, Value: 5}

	if !linker.OnToOff(g, a, b) {
		t.Error("same-row same-value nodes should be weakly linked")
	}
	if linker.OnToOff(g, a, c) {
		t.Error("unrelated cells should not be weakly linked")
	}
	if linker.OnToOff(g, a, Node{Kind: ValueNode, Cell: 8, Value: 6}) {
		t.Error("different values should not be weakly linked")
	}
}

func TestStrongLink_ConjugatePair(t *testing.T) {
	g := grid.EmptyClassic()
	linker := AicLinker{}

	a := Node{Kind: ValueNode, Cell: 0, Value: 5}
	b := Node{Kind: ValueNode, Cell: 5, Value: 5}

	// On a full grid the row holds many 5s - no strong link.
	if linker.OffToOn(g, a, b) {
		t.Error("no conjugate link while the row holds other 5s")
	}

	// Remove 5 from the rest of row 1: cells 0 and 5 become conjugates.
	for _, cell := range []int{1, 2, 3, 4, 6, 7, 8} {
		g.EliminateCandidate(cell, 5)
	}
	if !linker.OffToOn(g, a, b) {
		t.Error("expected a conjugate strong link in row 1")
	}
}

func TestStrongLink_BivalueCell(t *testing.T) {
	g := grid.EmptyClassic()
	linker := AicLinker{}

	a := Node{Kind: ValueNode, Cell: 40, Value: 1}
	b := Node{Kind: ValueNode, Cell: 40, Value: 9}

	if linker.OffToOn(g, a, b) {
		t.Error("no bivalue link while the cell holds nine candidates")
	}

	for v := 2; v <= 8; v++ {
		g.EliminateCandidate(40, v)
	}
	if !linker.OffToOn(g, a, b) {
		t.Error("expected a bivalue strong link")
	}
	if !linker.OffToOn(g, b, a) {
		t.Error("the bivalue link should be symmetric")
	}
}

func TestGroupLink_ValueSeesGroup(t *testing.T) {
	g := grid.EmptyClassic()
	linker := AicLinker{}

	// The group of 5s in row 1 / block 2: cells r1c4-r1c6.
	group := Node{
		Kind:  GroupNode,
		Value: 5,
		Line:  g.Rows()[0],
		Block: g.ExtraRegions()[1],
		Cells: grid.NewCellSet(3, 4, 5),
	}
	value := Node{Kind: ValueNode, Cell: 0, Value: 5}

	// Cell 0 sees all group cells through row 1.
	if !linker.OnToOff(g, value, group) {
		t.Error("a row cell should weakly link to the row group")
	}

	// A cell sharing no line or block with the group sees none of it.
	other := Node{Kind: ValueNode, Cell: 9, Value: 5}
	if linker.OnToOff(g, other, group) {
		t.Error("r2c1 does not see the whole row-1 group")
	}
}

func TestAffectedCandidates_ValueNode(t *testing.T) {
	g := grid.EmptyClassic()
	node := Node{Kind: ValueNode, Cell: 0, Value: 1}

	affected := AffectedCandidates(g, node)

	// 20 visible instances of 1, plus the cell's 8 other candidates.
	if len(affected) != 28 {
		t.Errorf("expected 28 affected candidates, got %d", len(affected))
	}
	if !affected[grid.Placement{Cell: 1, Value: 1}] {
		t.Error("expected the row neighbour's 1 to be affected")
	}
	if !affected[grid.Placement{Cell: 0, Value: 9}] {
		t.Error("expected the cell's own 9 to be affected")
	}
}

func TestAlsNodes_SmallCase(t *testing.T) {
	g := grid.EmptyClassic()

	// Restrict two cells of row 1 to three values between them - a
	// textbook ALS of degree 2.
	restrict := func(cell int, values ...int) {
		keep := grid.NewCandidates(values)
		for v := 1; v <= 9; v++ {
			if !keep.Has(v) {
				g.EliminateCandidate(cell, v)
			}
		}
	}
	restrict(0, 1, 2)
	restrict(1, 2, 3)

	nodes := AlsNodes(g)
	count := 0
	for _, node := range nodes {
		if node.Kind == AlsNode && node.Cells == grid.NewCellSet(0, 1) {
			count++
			if node.CellsWithValue.IsEmpty() {
				t.Error("ALS node must track the cells holding its value")
			}
		}
	}
	// One node per value of the ALS: 1, 2 and 3.
	if count != 3 {
		t.Errorf("expected 3 ALS nodes over cells {0,1}, got %d", count)
	}
}
