package strategies

import (
	"iter"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/strategies/chaining"
)

// ============================================================================
// Chain Strategies - X-Chain, XY-Chain, AIC, Forcing Chain
// ============================================================================
//
// All four share the chaining engines; they differ only in which nodes are
// admitted to the graph and which link predicates apply.
//
// ============================================================================

// aicEliminations derives the eliminations proved by an alternating chain:
// its two endpoints cannot both be false, so candidates both would kill are
// dead.
func aicEliminations(g *grid.Grid, chain chaining.Chain) []Deduction {
	first := chain[0].Node
	last := chain[len(chain)-1].Node

	var deductions []Deduction
	for _, placement := range chaining.CommonAffected(g, first, last) {
		if g.HasCandidate(placement.Cell, placement.Value) {
			deductions = append(deductions, Eliminate(placement.Cell, placement.Value))
		}
	}
	return deductions
}

// XChain is an alternating chain confined to a single candidate value.
type XChain struct {
	Chain chaining.Chain
}

func (s XChain) Deductions(g *grid.Grid) []Deduction { return aicEliminations(g, s.Chain) }

func (s XChain) Description(g *grid.Grid) string {
	return "X-Chain - " + s.Chain.Description(g)
}

func findXChain(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, candidate := range g.Values() {
			nodes := chaining.ValueNodesForCandidate(g, candidate)
			nodes = append(nodes, chaining.GroupNodesForCandidate(g, candidate)...)
			for _, chain := range chaining.FindAics(g, nodes, chaining.XChainLinker{}) {
				if !yield(XChain{Chain: chain}) {
					return
				}
			}
		}
	}
}

// XYChain is an alternating chain through bivalue cells.
type XYChain struct {
	Chain chaining.Chain
}

func (s XYChain) Deductions(g *grid.Grid) []Deduction { return aicEliminations(g, s.Chain) }

func (s XYChain) Description(g *grid.Grid) string {
	return "XY-Chain - " + s.Chain.Description(g)
}

func findXYChain(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		nodes := chaining.BivalueValueNodes(g)
		for _, chain := range chaining.FindAics(g, nodes, chaining.XYChainLinker{}) {
			if !yield(XYChain{Chain: chain}) {
				return
			}
		}
	}
}

// Aic is a general alternating inference chain over value, group and
// almost-locked-set nodes.
type Aic struct {
	Chain chaining.Chain
}

func (s Aic) Deductions(g *grid.Grid) []Deduction { return aicEliminations(g, s.Chain) }

func (s Aic) Description(g *grid.Grid) string {
	return "AIC - " + s.Chain.Description(g)
}

func aicNodes(g *grid.Grid) []chaining.Node {
	nodes := chaining.ValueNodes(g)
	nodes = append(nodes, chaining.GroupNodes(g)...)
	return append(nodes, chaining.AlsNodes(g)...)
}

func findAic(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, chain := range chaining.FindAics(g, aicNodes(g), chaining.AicLinker{}) {
			if !yield(Aic{Chain: chain}) {
				return
			}
		}
	}
}

// ForcingChain is a family of chains from mutually exclusive premises that
// converge on a common consequence.
type ForcingChain struct {
	Chains chaining.ForcingChain
}

func (s ForcingChain) Deductions(g *grid.Grid) []Deduction {
	consequence := s.Chains[0][len(s.Chains[0])-1]
	node := consequence.Node

	switch {
	case node.Kind == chaining.ValueNode && consequence.Negated:
		if !g.HasCandidate(node.Cell, node.Value) {
			return nil
		}
		return []Deduction{Eliminate(node.Cell, node.Value)}
	case node.Kind == chaining.ValueNode:
		return []Deduction{Place(node.Cell, node.Value)}
	case consequence.Negated:
		// A group or ALS that is OFF loses the value in all its cells.
		return eliminationsFor(g, node.ValueCells(), node.Value)
	default:
		// A group or ALS that is ON kills the value in its common sight.
		region := g.CommonNeighbours(node.ValueCells())
		return eliminationsFor(g, g.CellsWithCandidateInRegion(node.Value, region), node.Value)
	}
}

func (s ForcingChain) Description(g *grid.Grid) string {
	description := "Forcing Chain -"
	for _, chain := range s.Chains {
		description += "\n        " + chain.Description(g)
	}
	return description
}

func findForcingChain(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, chains := range chaining.FindForcingChains(g, aicNodes(g), chaining.AicLinker{}) {
			step := ForcingChain{Chains: chains}
			if len(step.Deductions(g)) == 0 {
				continue
			}
			if !yield(step) {
				return
			}
		}
	}
}
