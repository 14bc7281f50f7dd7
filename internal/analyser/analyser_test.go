package analyser

import (
	"testing"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/solver"
	"sudoku-engine/internal/strategies"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func singles() []strategies.Strategy {
	return []strategies.Strategy{
		{Kind: strategies.KindFullHouse},
		{Kind: strategies.KindHiddenSingle},
		{Kind: strategies.KindNakedSingle},
	}
}

func TestStepsToSolve(t *testing.T) {
	g, err := grid.ClassicFromString(easyPuzzle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	groups := [][]strategies.Strategy{
		singles(),
		{
			{Kind: strategies.KindBoxLine},
			{Kind: strategies.KindNakedSubset, Degree: 2},
			{Kind: strategies.KindHiddenSubset, Degree: 2},
		},
	}

	counts, ok := StepsToSolve(g, groups)
	if !ok {
		t.Fatal("expected the puzzle to be solvable with the given groups")
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 counts, got %d", len(counts))
	}
	if counts[0] == 0 {
		t.Error("expected at least one singles step")
	}

	// The analysed grid is a clone; the input must be untouched.
	if g.IsSolved() {
		t.Error("StepsToSolve must not mutate its input grid")
	}
}

func TestStepsToSolve_Unsolvable(t *testing.T) {
	g := grid.EmptyClassic()
	if _, ok := StepsToSolve(g, [][]strategies.Strategy{singles()}); ok {
		t.Error("an empty grid must not be solvable by singles")
	}
}

func TestMeetsCriteria(t *testing.T) {
	g, err := grid.ClassicFromString(easyPuzzle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := solver.WithAllStrategies()
	if !MeetsCriteria(g, SolvableWith(all)) {
		t.Error("the easy puzzle should meet the solvable criterion")
	}
	if MeetsCriteria(g, NotSolvableWith(all)) {
		t.Error("the easy puzzle should fail the not-solvable criterion")
	}

	// Criteria work on a clone; the grid stays unsolved.
	if g.IsSolved() {
		t.Error("MeetsCriteria must not mutate its input grid")
	}

	empty := grid.EmptyClassic()
	if !MeetsCriteria(empty, NotSolvableWith(solver.WithStrategies(singles()))) {
		t.Error("an empty grid should meet the not-solvable criterion")
	}
}
