package grid

import (
	"errors"
	"strings"
	"testing"
)

func TestEmptyClassic_Topology(t *testing.T) {
	g := EmptyClassic()

	if got := len(g.AllRegions()); got != 27 {
		t.Errorf("expected 27 regions, got %d", got)
	}

	// Every cell of a classic grid has 8 row + 8 column + 4 further block
	// neighbours.
	for cell := 0; cell < g.NumCells(); cell++ {
		if got := g.Neighbours(cell).Count(); got != 20 {
			t.Errorf("cell %d: expected 20 neighbours, got %d", cell, got)
		}
		if g.Neighbours(cell).Contains(cell) {
			t.Errorf("cell %d must not be its own neighbour", cell)
		}
	}

	// An empty grid has full candidates everywhere.
	for cell := 0; cell < g.NumCells(); cell++ {
		if g.Candidates(cell) != FullCandidates(9) {
			t.Errorf("cell %d: expected full candidates", cell)
		}
	}
}

func TestPlaceValue_Propagation(t *testing.T) {
	g := EmptyClassic()
	if err := g.PlaceValue(0, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Value(0) != 5 {
		t.Errorf("expected value 5 at cell 0, got %d", g.Value(0))
	}
	if !g.Candidates(0).IsEmpty() {
		t.Error("placed cell should have no candidates")
	}
	for _, neighbour := range g.Neighbours(0).Cells() {
		if g.HasCandidate(neighbour, 5) {
			t.Errorf("neighbour %d should have lost candidate 5", neighbour)
		}
	}
	// A non-neighbour keeps the candidate.
	if !g.HasCandidate(40, 5) {
		t.Error("cell 40 should still have candidate 5")
	}
}

func TestPlaceValue_Contradiction(t *testing.T) {
	g := EmptyClassic()
	if err := g.PlaceValue(0, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Placing the same value in a neighbour must fail.
	err := g.PlaceValue(1, 5)
	var contradiction *ContradictionError
	if !errors.As(err, &contradiction) {
		t.Fatalf("expected ContradictionError, got %v", err)
	}
	if contradiction.Cell != 1 {
		t.Errorf("expected cell 1, got %d", contradiction.Cell)
	}

	// Re-placing the same value in the same cell is a no-op.
	if err := g.PlaceValue(0, 5); err != nil {
		t.Errorf("re-placing the same value should not fail: %v", err)
	}
}

func TestEliminateCandidate_Idempotent(t *testing.T) {
	g := EmptyClassic()
	g.EliminateCandidate(10, 3)
	before := g.Candidates(10)
	g.EliminateCandidate(10, 3)
	if g.Candidates(10) != before {
		t.Error("second elimination changed the grid")
	}
}

func TestFromString_Errors(t *testing.T) {
	if _, err := ClassicFromString("123"); !errors.Is(err, ErrBadLength) {
		t.Errorf("expected ErrBadLength, got %v", err)
	}

	// Two 5s in the first row: the second clue contradicts the first.
	input := "5" + "5" + strings.Repeat(".", 79)
	_, err := ClassicFromString(input)
	var contradiction *ContradictionError
	if !errors.As(err, &contradiction) {
		t.Fatalf("expected ContradictionError, got %v", err)
	}
	if contradiction.Cell != 1 {
		t.Errorf("expected the second clue at index 1, got %d", contradiction.Cell)
	}
}

func TestPuzzleString_RoundTrip(t *testing.T) {
	input := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	g, err := ClassicFromString(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ClassicFromString(g.PuzzleString())
	if err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if parsed.PuzzleString() != g.PuzzleString() {
		t.Errorf("round trip mismatch:\n%s\n%s", g.PuzzleString(), parsed.PuzzleString())
	}
}

func TestClone_Independence(t *testing.T) {
	g := EmptyClassic()
	clone := g.Clone()

	if err := clone.PlaceValue(0, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Value(0) != 0 {
		t.Error("placing on the clone changed the original")
	}
	if !g.HasCandidate(1, 5) {
		t.Error("clone propagation leaked into the original")
	}
}

func TestRegionQueries(t *testing.T) {
	g := EmptyClassic()
	if err := g.PlaceValue(0, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row0 := g.Rows()[0]
	if !g.ValuePlacedInRegion(5, row0) {
		t.Error("5 should be placed in row 1")
	}
	if g.CandidateInRegion(5, row0) {
		t.Error("no cell of row 1 should still admit 5")
	}
	if missing := g.ValuesMissingFromRegion(row0); missing != FullCandidates(9).Clear(5) {
		t.Errorf("expected all but 5 missing, got %v", missing)
	}
	if empty := g.EmptyCellsInRegion(row0); empty.Count() != 8 {
		t.Errorf("expected 8 empty cells, got %d", empty.Count())
	}
}

func TestCommonNeighbours(t *testing.T) {
	g := EmptyClassic()

	// Cells 0 and 1 share the rest of row 1 and the rest of their block.
	common := g.CommonNeighbours(NewCellSet(0, 1))
	expected := NewCellSet(2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 18, 19, 20)
	if common != expected {
		t.Errorf("expected %v, got %v", expected, common)
	}
}

func TestGroupCellsBy(t *testing.T) {
	g := EmptyClassic()
	cells := NewCellSet(0, 1, 9, 40)

	byRow := g.GroupCellsBy(cells, Row)
	if len(byRow) != 3 {
		t.Fatalf("expected 3 row groups, got %d", len(byRow))
	}
	if byRow[0] != NewCellSet(0, 1) {
		t.Errorf("first row group: got %v", byRow[0])
	}

	byColumn := g.GroupCellsBy(cells, Column)
	if len(byColumn) != 3 {
		t.Fatalf("expected 3 column groups, got %d", len(byColumn))
	}
	if byColumn[0] != NewCellSet(0, 9) {
		t.Errorf("first column group: got %v", byColumn[0])
	}
}

func TestNames(t *testing.T) {
	g := EmptyClassic()
	if name := g.CellName(0); name != "r1c1" {
		t.Errorf("expected r1c1, got %s", name)
	}
	if name := g.CellName(80); name != "r9c9" {
		t.Errorf("expected r9c9, got %s", name)
	}
	if name := g.RegionName(g.Rows()[3]); name != "Row 4" {
		t.Errorf("expected Row 4, got %s", name)
	}
	if name := g.RegionName(g.Columns()[0]); name != "Column 1" {
		t.Errorf("expected Column 1, got %s", name)
	}
	if name := g.RegionName(g.ExtraRegions()[8]); name != "Block 9" {
		t.Errorf("expected Block 9, got %s", name)
	}
}
