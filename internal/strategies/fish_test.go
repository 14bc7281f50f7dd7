package strategies

import (
	"testing"

	"sudoku-engine/internal/grid"
)

func TestFish_XWing(t *testing.T) {
	g := grid.EmptyClassic()

	// Restrict 5 in rows 1 and 4 to columns 3 and 7.
	for _, row := range []int{0, 3} {
		for col := 0; col < 9; col++ {
			if col != 2 && col != 6 {
				g.EliminateCandidate(row*9+col, 5)
			}
		}
	}

	steps := collectSteps(t, g, Strategy{Kind: KindFish, Degree: 2})
	if len(steps) == 0 {
		t.Fatal("expected an X-Wing step")
	}

	var fish *Fish
	for _, step := range steps {
		s, ok := step.(Fish)
		if ok && s.Value == 5 && s.BaseType == grid.Row {
			fish = &s
			break
		}
	}
	if fish == nil {
		t.Fatal("expected a row-based X-Wing on value 5")
	}

	if fish.Base != grid.NewCellSet(2, 6, 29, 33) {
		t.Errorf("unexpected base: %v", fish.Base)
	}

	// 5 dies in the other cells of columns 3 and 7.
	deductions := fish.Deductions(g)
	expectElimination(t, deductions, 11, 5)
	expectElimination(t, deductions, 15, 5)
	expectElimination(t, deductions, 74, 5)
	for _, d := range deductions {
		if d.Cell == 2 || d.Cell == 6 || d.Cell == 29 || d.Cell == 33 {
			t.Errorf("base cells must not be eliminated: %v", d)
		}
		if col := d.Cell % 9; col != 2 && col != 6 {
			t.Errorf("eliminations must stay in the cover columns: %v", d)
		}
	}
}

func TestFinnedFish_FinnedXWing(t *testing.T) {
	g := grid.EmptyClassic()

	// Row 1 holds 5 only in columns 3 and 7; row 4 holds it in columns 3,
	// 7 and 8 - the cell at r4c8 is the fin.
	for col := 0; col < 9; col++ {
		if col != 2 && col != 6 {
			g.EliminateCandidate(col, 5)
		}
		if col != 2 && col != 6 && col != 7 {
			g.EliminateCandidate(27+col, 5)
		}
	}
	// Thin out the remaining rows of columns 3 and 7 so the base grouping
	// stays a two-row pattern plus fin.
	for _, row := range []int{1, 2, 4, 5, 6, 7, 8} {
		g.EliminateCandidate(row*9+2, 5)
	}
	for _, row := range []int{1, 2, 6, 7, 8} {
		g.EliminateCandidate(row*9+6, 5)
	}

	steps := collectSteps(t, g, Strategy{Kind: KindFinnedFish, Degree: 2})

	// The fin at r4c8 shares block 6 with the cover cells of column 7 in
	// rows 4-6; only those survive as eliminations.
	found := false
	for _, step := range steps {
		s, ok := step.(FinnedFish)
		if !ok || s.Value != 5 {
			continue
		}
		for _, d := range s.Deductions(g) {
			if d == Eliminate(42, 5) {
				found = true
			}
			if d.Cell == 33 || (s.BaseType == grid.Row && d.Cell == 34) {
				t.Errorf("base or fin cells must not be eliminated: %v", d)
			}
		}
	}
	if !found {
		t.Error("expected the finned X-Wing to eliminate 5 from r5c7")
	}
}
