package chaining

// ============================================================================
// Chain Search Engines
// ============================================================================
//
// Both engines work on the same implicit graph: every node contributes two
// vertices, one for its ON state (even index) and one for its OFF state
// (odd index). Weak links connect ON to OFF, strong links connect OFF to
// ON, so any walk through the graph alternates polarities.
//
// The adjacency lists are built per invocation and released on return; no
// chain state outlives a search.
//
// ============================================================================

import (
	"sort"

	"sudoku-engine/internal/grid"
)

// buildAdjacency constructs the adjacency lists of the 2n-vertex graph.
func buildAdjacency(g *grid.Grid, nodes []Node, linker Linker) [][]int {
	adjacencies := make([][]int, 2*len(nodes))
	for startIdx, startNode := range nodes {
		for endIdx, endNode := range nodes {
			if startIdx == endIdx {
				continue
			}
			if linker.OnToOff(g, startNode, endNode) {
				adjacencies[2*startIdx] = append(adjacencies[2*startIdx], 2*endIdx+1)
			}
			if linker.OffToOn(g, startNode, endNode) {
				adjacencies[2*startIdx+1] = append(adjacencies[2*startIdx+1], 2*endIdx)
			}
		}
	}
	return adjacencies
}

// AffectedCandidates returns the placements that must be false whenever the
// node is ON: every instance of the value visible from all of the node's
// value cells, plus, for single-cell nodes, the cell's other candidates.
func AffectedCandidates(g *grid.Grid, node Node) map[grid.Placement]bool {
	affected := make(map[grid.Placement]bool)

	valueCells := node.ValueCells()
	common := g.CommonNeighbours(valueCells)
	for _, cell := range g.CellsWithCandidateInRegion(node.Value, common).Cells() {
		affected[grid.Placement{Cell: cell, Value: node.Value}] = true
	}

	if valueCells.Count() == 1 {
		cell := valueCells.First()
		for _, other := range g.Candidates(cell).Digits() {
			if other != node.Value {
				affected[grid.Placement{Cell: cell, Value: other}] = true
			}
		}
	}

	return affected
}

// CommonAffected returns the affected candidates shared by two nodes.
func CommonAffected(g *grid.Grid, first, second Node) []grid.Placement {
	firstAffected := AffectedCandidates(g, first)
	var common []grid.Placement
	for placement := range AffectedCandidates(g, second) {
		if firstAffected[placement] {
			common = append(common, placement)
		}
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].Cell != common[j].Cell {
			return common[i].Cell < common[j].Cell
		}
		return common[i].Value < common[j].Value
	})
	return common
}

// FindAics searches for alternating inference chains over the given nodes.
// A chain runs from the OFF state of one node to the ON state of another;
// since one of the two endpoints must be true, any candidate both endpoints
// would eliminate is dead. Shortest chains are returned first.
func FindAics(g *grid.Grid, nodes []Node, linker Linker) []Chain {
	adjacencies := buildAdjacency(g, nodes, linker)

	affected := make([]map[grid.Placement]bool, len(nodes))
	for idx, node := range nodes {
		affected[idx] = AffectedCandidates(g, node)
	}

	var chains []Chain
	for startIdx := range nodes {
		chains = append(chains, searchFromOff(nodes, adjacencies, affected, startIdx)...)
	}

	sort.SliceStable(chains, func(i, j int) bool { return len(chains[i]) < len(chains[j]) })
	return chains
}

// searchFromOff performs a breadth-first search from the OFF vertex of the
// given node, collecting chains to every reachable ON vertex whose affected
// candidates overlap the start's.
func searchFromOff(nodes []Node, adjacencies [][]int, affected []map[grid.Placement]bool, startIdx int) []Chain {
	queue := []int{2*startIdx + 1}
	visited := make([]bool, len(adjacencies))
	parents := make([]int, len(adjacencies))
	visited[2*startIdx+1] = true

	var chains []Chain
	for len(queue) > 0 {
		currentIdx := queue[0]
		queue = queue[1:]

		if currentIdx%2 == 0 && overlaps(affected[currentIdx/2], affected[startIdx]) {
			chains = append(chains, reconstructChain(nodes, parents, 2*startIdx+1, currentIdx))
		}

		for _, nextIdx := range adjacencies[currentIdx] {
			if !visited[nextIdx] {
				visited[nextIdx] = true
				parents[nextIdx] = currentIdx
				queue = append(queue, nextIdx)
			}
		}
	}

	return chains
}

func overlaps(a, b map[grid.Placement]bool) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for placement := range a {
		if b[placement] {
			return true
		}
	}
	return false
}

// reconstructChain walks the BFS parent links back from the end vertex to
// the start vertex and emits the chain in forward order.
func reconstructChain(nodes []Node, parents []int, startVertex, endVertex int) Chain {
	var chain Chain
	negated := endVertex%2 == 1
	currentIdx := endVertex
	for currentIdx != startVertex {
		chain = append(chain, Inference{Node: nodes[currentIdx/2], Negated: negated})
		negated = !negated
		currentIdx = parents[currentIdx]
	}
	chain = append(chain, Inference{Node: nodes[currentIdx/2], Negated: negated})

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// ============================================================================
// Forcing Chains
// ============================================================================

// ForcingChain is a family of chains, one per premise, all proving the same
// consequence (the final inference of each chain).
type ForcingChain []Chain

// searchResults records everything a forward BFS learned: which vertices
// are reachable from the premise, and how they were reached.
type searchResults struct {
	visited []bool
	parents []int
}

// FindForcingChains searches for forcing chains: premise sets are the
// candidates of cells with at least three candidates, and the placements of
// a value within a region when at least three are possible. Consequences
// reachable from every premise in a set yield a ForcingChain. Results are
// sorted by total inference count, then by the longest single chain.
func FindForcingChains(g *grid.Grid, nodes []Node, linker Linker) []ForcingChain {
	adjacencies := buildAdjacency(g, nodes, linker)

	// Index the single-candidate nodes so premises can be looked up.
	nodeByPlacement := make(map[grid.Placement]int)
	for idx, node := range nodes {
		if node.Kind == ValueNode {
			nodeByPlacement[grid.Placement{Cell: node.Cell, Value: node.Value}] = idx
		}
	}

	// Run a forward search from the ON vertex of every single-candidate node.
	searches := make([]*searchResults, len(nodes))
	for idx, node := range nodes {
		if node.Kind == ValueNode {
			searches[idx] = searchFromOn(adjacencies, idx)
		}
	}

	var chains []ForcingChain

	// Premises from the candidates of a single cell.
	for _, cell := range g.EmptyCells().Cells() {
		if g.NumCandidates(cell) < 3 {
			continue
		}
		var premises []int
		for _, value := range g.Candidates(cell).Digits() {
			premises = append(premises, nodeByPlacement[grid.Placement{Cell: cell, Value: value}])
		}
		chains = append(chains, commonConsequences(nodes, adjacencies, searches, premises)...)
	}

	// Premises from the placements of a value within a region.
	for _, region := range g.AllRegions() {
		for _, candidate := range g.ValuesMissingFromRegion(region).Digits() {
			cells := g.CellsWithCandidateInRegion(candidate, region)
			if cells.Count() < 3 {
				continue
			}
			var premises []int
			for _, cell := range cells.Cells() {
				premises = append(premises, nodeByPlacement[grid.Placement{Cell: cell, Value: candidate}])
			}
			chains = append(chains, commonConsequences(nodes, adjacencies, searches, premises)...)
		}
	}

	sort.SliceStable(chains, func(i, j int) bool {
		ti, mi := chainLengths(chains[i])
		tj, mj := chainLengths(chains[j])
		if ti != tj {
			return ti < tj
		}
		return mi < mj
	})
	return chains
}

func chainLengths(fc ForcingChain) (total, longest int) {
	for _, chain := range fc {
		total += len(chain)
		if len(chain) > longest {
			longest = len(chain)
		}
	}
	return total, longest
}

// searchFromOn performs a breadth-first search from the ON vertex of the
// given node, recording reachability and parents.
func searchFromOn(adjacencies [][]int, startIdx int) *searchResults {
	queue := []int{2 * startIdx}
	results := &searchResults{
		visited: make([]bool, len(adjacencies)),
		parents: make([]int, len(adjacencies)),
	}
	results.visited[2*startIdx] = true

	for len(queue) > 0 {
		currentIdx := queue[0]
		queue = queue[1:]
		for _, nextIdx := range adjacencies[currentIdx] {
			if !results.visited[nextIdx] {
				results.visited[nextIdx] = true
				results.parents[nextIdx] = currentIdx
				queue = append(queue, nextIdx)
			}
		}
	}

	return results
}

// commonConsequences finds the vertices reachable from every premise and
// builds a chain per premise for each of them.
func commonConsequences(nodes []Node, adjacencies [][]int, searches []*searchResults, premises []int) []ForcingChain {
	var chains []ForcingChain
	for vertex := 0; vertex < len(adjacencies); vertex++ {
		reachable := true
		for _, premise := range premises {
			if !searches[premise].visited[vertex] {
				reachable = false
				break
			}
		}
		if !reachable {
			continue
		}

		forcing := make(ForcingChain, 0, len(premises))
		for _, premise := range premises {
			forcing = append(forcing, reconstructChain(nodes, searches[premise].parents, 2*premise, vertex))
		}
		chains = append(chains, forcing)
	}
	return chains
}
