// Package strategies implements the catalogue of logical solving
// techniques. Every strategy exposes a lazy sequence of steps; each step
// can rederive its deductions from the grid and describe itself.
//
// Steps are only emitted when applying their deductions would change the
// grid, with one deliberate exception: NoCandidatesForCell carries no
// deductions and signals a contradiction to the solver.
package strategies

import (
	"fmt"
	"iter"

	"sudoku-engine/internal/grid"
)

// StrategyKind identifies a technique kernel.
type StrategyKind int

const (
	KindFullHouse StrategyKind = iota
	KindHiddenSingle
	KindNakedSingle
	KindBoxLine
	KindCellInteraction
	KindNakedSubset
	KindHiddenSubset
	KindFish
	KindFinnedFish
	KindXYWing
	KindXYZWing
	KindWWing
	KindWXYZWing
	KindXChain
	KindXYChain
	KindMsls
	KindAic
	KindForcingChain
)

// Strategy is a technique tag; parameterised kernels carry their degree.
type Strategy struct {
	Kind   StrategyKind
	Degree int
}

// Find returns the lazy step sequence of this strategy on the given grid.
func (s Strategy) Find(g *grid.Grid) iter.Seq[Step] {
	switch s.Kind {
	case KindFullHouse:
		return findFullHouse(g)
	case KindHiddenSingle:
		return findHiddenSingle(g)
	case KindNakedSingle:
		return findNakedSingle(g)
	case KindBoxLine:
		return findBoxLine(g)
	case KindCellInteraction:
		return findCellInteraction(g)
	case KindNakedSubset:
		return findNakedSubset(g, s.Degree)
	case KindHiddenSubset:
		return findHiddenSubset(g, s.Degree)
	case KindFish:
		return findFish(g, s.Degree)
	case KindFinnedFish:
		return findFinnedFish(g, s.Degree)
	case KindXYWing:
		return findXYWing(g)
	case KindXYZWing:
		return findXYZWing(g)
	case KindWWing:
		return findWWing(g)
	case KindWXYZWing:
		return findWXYZWing(g)
	case KindXChain:
		return findXChain(g)
	case KindXYChain:
		return findXYChain(g)
	case KindMsls:
		return findMsls(g)
	case KindAic:
		return findAic(g)
	case KindForcingChain:
		return findForcingChain(g)
	default:
		return func(func(Step) bool) {}
	}
}

// Name returns the display name of the strategy.
func (s Strategy) Name() string {
	switch s.Kind {
	case KindFullHouse:
		return "Full House"
	case KindHiddenSingle:
		return "Hidden Single"
	case KindNakedSingle:
		return "Naked Single"
	case KindBoxLine:
		return "Box-Line"
	case KindCellInteraction:
		return "Cell Interaction"
	case KindNakedSubset:
		return fmt.Sprintf("Naked Subset (%d)", s.Degree)
	case KindHiddenSubset:
		return fmt.Sprintf("Hidden Subset (%d)", s.Degree)
	case KindFish:
		return fmt.Sprintf("Fish (%d)", s.Degree)
	case KindFinnedFish:
		return fmt.Sprintf("Finned Fish (%d)", s.Degree)
	case KindXYWing:
		return "XY-Wing"
	case KindXYZWing:
		return "XYZ-Wing"
	case KindWWing:
		return "W-Wing"
	case KindWXYZWing:
		return "WXYZ-Wing"
	case KindXChain:
		return "X-Chain"
	case KindXYChain:
		return "XY-Chain"
	case KindMsls:
		return "MSLS"
	case KindAic:
		return "AIC"
	case KindForcingChain:
		return "Forcing Chain"
	default:
		return "Unknown"
	}
}

// AllStrategies returns the default pipeline, cheapest techniques first.
func AllStrategies() []Strategy {
	return []Strategy{
		{Kind: KindFullHouse},
		{Kind: KindHiddenSingle},
		{Kind: KindNakedSingle},
		{Kind: KindBoxLine},
		{Kind: KindCellInteraction},
		{Kind: KindNakedSubset, Degree: 2},
		{Kind: KindHiddenSubset, Degree: 2},
		{Kind: KindNakedSubset, Degree: 3},
		{Kind: KindHiddenSubset, Degree: 3},
		{Kind: KindNakedSubset, Degree: 4},
		{Kind: KindHiddenSubset, Degree: 4},
		{Kind: KindFish, Degree: 2},
		{Kind: KindFish, Degree: 3},
		{Kind: KindFinnedFish, Degree: 2},
		{Kind: KindFinnedFish, Degree: 3},
		{Kind: KindFish, Degree: 4},
		{Kind: KindFinnedFish, Degree: 4},
		{Kind: KindXYWing},
		{Kind: KindXYZWing},
		{Kind: KindWWing},
		{Kind: KindWXYZWing},
		{Kind: KindXChain},
		{Kind: KindXYChain},
		{Kind: KindMsls},
		{Kind: KindAic},
		{Kind: KindForcingChain},
	}
}
