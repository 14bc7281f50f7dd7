package strategies

import (
	"strings"
	"testing"

	"sudoku-engine/internal/grid"
)

func collectSteps(t *testing.T, g *grid.Grid, s Strategy) []Step {
	t.Helper()
	var steps []Step
	for step := range s.Find(g) {
		steps = append(steps, step)
	}
	return steps
}

func TestFullHouse_LastCellInRow(t *testing.T) {
	clues := make([]int, 81)
	for i := 0; i < 8; i++ {
		clues[i] = i + 1
	}
	g, err := grid.ClassicFromClues(clues)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := collectSteps(t, g, Strategy{Kind: KindFullHouse})
	if len(steps) == 0 {
		t.Fatal("expected a full house step")
	}

	step, ok := steps[0].(FullHouse)
	if !ok {
		t.Fatalf("expected FullHouse, got %T", steps[0])
	}
	if step.Cell != 8 || step.Value != 9 {
		t.Errorf("expected 9 at cell 8, got %d at cell %d", step.Value, step.Cell)
	}

	deductions := step.Deductions(g)
	if len(deductions) != 1 || deductions[0] != Place(8, 9) {
		t.Errorf("expected a single placement of 9 at cell 8, got %v", deductions)
	}

	if !strings.Contains(step.Description(g), "Full House") {
		t.Errorf("unexpected description: %s", step.Description(g))
	}
}

func TestHiddenSingle_OnlyPlaceInRow(t *testing.T) {
	g := grid.EmptyClassic()
	// Remove 5 from every row-1 cell except r1c1.
	for cell := 1; cell <= 8; cell++ {
		g.EliminateCandidate(cell, 5)
	}

	steps := collectSteps(t, g, Strategy{Kind: KindHiddenSingle})
	if len(steps) == 0 {
		t.Fatal("expected a hidden single step")
	}

	step, ok := steps[0].(HiddenSingle)
	if !ok {
		t.Fatalf("expected HiddenSingle, got %T", steps[0])
	}
	if step.Cell != 0 || step.Value != 5 {
		t.Errorf("expected 5 at cell 0, got %d at cell %d", step.Value, step.Cell)
	}
}

func TestNakedSingle_OneCandidateLeft(t *testing.T) {
	g := grid.EmptyClassic()
	for v := 1; v <= 8; v++ {
		g.EliminateCandidate(40, v)
	}

	steps := collectSteps(t, g, Strategy{Kind: KindNakedSingle})
	if len(steps) != 1 {
		t.Fatalf("expected exactly one step, got %d", len(steps))
	}

	step, ok := steps[0].(NakedSingle)
	if !ok {
		t.Fatalf("expected NakedSingle, got %T", steps[0])
	}
	if step.Cell != 40 || step.Value != 9 {
		t.Errorf("expected 9 at cell 40, got %d at cell %d", step.Value, step.Cell)
	}
}

func TestNakedSingle_NoCandidates(t *testing.T) {
	g := grid.EmptyClassic()
	for v := 1; v <= 9; v++ {
		g.EliminateCandidate(40, v)
	}

	steps := collectSteps(t, g, Strategy{Kind: KindNakedSingle})
	if len(steps) != 1 {
		t.Fatalf("expected exactly one step, got %d", len(steps))
	}

	step, ok := steps[0].(NoCandidatesForCell)
	if !ok {
		t.Fatalf("expected NoCandidatesForCell, got %T", steps[0])
	}
	if step.Cell != 40 {
		t.Errorf("expected cell 40, got %d", step.Cell)
	}
	if deductions := step.Deductions(g); len(deductions) != 0 {
		t.Errorf("contradiction step must carry no deductions, got %v", deductions)
	}
}

func TestBoxLine_PointingPair(t *testing.T) {
	g := grid.EmptyClassic()
	// Confine 5 within block 1 to row 1: remove it from the block's other
	// rows.
	for _, cell := range []int{9, 10, 11, 18, 19, 20} {
		g.EliminateCandidate(cell, 5)
	}

	steps := collectSteps(t, g, Strategy{Kind: KindBoxLine})
	found := false
	for _, step := range steps {
		for _, d := range step.Deductions(g) {
			if d == Eliminate(3, 5) {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected 5 to be eliminated from r1c4 via the pointing block")
	}
}
