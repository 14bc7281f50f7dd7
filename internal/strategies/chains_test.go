package strategies

import (
	"strings"
	"testing"

	"sudoku-engine/internal/grid"
)

func TestXYChain_RemoteElimination(t *testing.T) {
	g := grid.EmptyClassic()
	// Three bivalue cells forming the chain 1-2, 2-3, 3-1:
	// r1c1 {1,2}, r1c5 {2,3}, r3c5 {1,3}. Whatever holds, one of r1c1 and
	// r3c5 contains a 1, so 1 dies in their common sight (r3c1).
	restrictCandidates(g, 0, 1, 2)
	restrictCandidates(g, 4, 2, 3)
	restrictCandidates(g, 22, 1, 3)

	steps := collectSteps(t, g, Strategy{Kind: KindXYChain})
	if len(steps) == 0 {
		t.Fatal("expected at least one XY-Chain step")
	}

	found := false
	for _, step := range steps {
		for _, d := range step.Deductions(g) {
			if d == Eliminate(18, 1) {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected an XY-Chain eliminating 1 from r3c1")
	}
}

func TestXChain_TwoStringKite(t *testing.T) {
	g := grid.EmptyClassic()

	// Value 5: conjugate pair in row 1 (r1c2, r1c9) and in column 1
	// (r2c1, r9c1). The near ends r1c2 and r2c1 share block 1, so one of
	// the far ends r1c9 and r9c1 must hold 5, killing it at r9c9.
	for col := 0; col < 9; col++ {
		if col != 1 && col != 8 {
			g.EliminateCandidate(col, 5)
		}
	}
	for row := 1; row < 9; row++ {
		if row != 1 && row != 8 {
			g.EliminateCandidate(row*9, 5)
		}
	}

	steps := collectSteps(t, g, Strategy{Kind: KindXChain})
	if len(steps) == 0 {
		t.Fatal("expected at least one X-Chain step")
	}

	found := false
	for _, step := range steps {
		for _, d := range step.Deductions(g) {
			if d == Eliminate(80, 5) {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected an X-Chain eliminating 5 from r9c9")
	}
}

func TestAic_FindsBivalueChains(t *testing.T) {
	g := grid.EmptyClassic()
	restrictCandidates(g, 0, 1, 2)
	restrictCandidates(g, 4, 2, 3)
	restrictCandidates(g, 22, 1, 3)

	// The general AIC engine must find at least the XY-Chain elimination.
	steps := collectSteps(t, g, Strategy{Kind: KindAic})
	found := false
	for _, step := range steps {
		for _, d := range step.Deductions(g) {
			if d == Eliminate(18, 1) {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected the AIC engine to reproduce the XY-Chain elimination")
	}
}

func TestForcingChain_RegionPremises(t *testing.T) {
	g := grid.EmptyClassic()
	// Confine 5 within row 1 to the three block-1 cells. Whichever of them
	// holds the 5, every other 5 in block 1 dies.
	for cell := 3; cell <= 8; cell++ {
		g.EliminateCandidate(cell, 5)
	}

	found := false
	for step := range (Strategy{Kind: KindForcingChain}).Find(g) {
		for _, d := range step.Deductions(g) {
			if d == Eliminate(10, 5) {
				found = true
			}
		}
		if found {
			break
		}
	}
	if !found {
		t.Error("expected a forcing chain eliminating 5 from r2c2")
	}
}

func TestChainDescriptions(t *testing.T) {
	g := grid.EmptyClassic()
	restrictCandidates(g, 0, 1, 2)
	restrictCandidates(g, 4, 2, 3)
	restrictCandidates(g, 22, 1, 3)

	steps := collectSteps(t, g, Strategy{Kind: KindXYChain})
	if len(steps) == 0 {
		t.Fatal("expected XY-Chain steps")
	}
	description := steps[0].Description(g)
	if description == "" {
		t.Fatal("empty description")
	}
	// Chains render as alternating signed nodes.
	if !strings.Contains(description, "-->") || !strings.Contains(description, "+") {
		t.Errorf("unexpected chain description: %s", description)
	}
}
