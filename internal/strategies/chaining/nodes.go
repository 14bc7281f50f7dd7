package chaining

// ============================================================================
// Chain Nodes
// ============================================================================
//
// A chain node is a statement about the grid that can be switched ON (some
// instance of its value is placed) or OFF (no instance is). Three shapes of
// node exist:
//
//   - Value: a single candidate in a single cell.
//   - Group: the candidates of one value inside a line/block intersection.
//   - Als:   an almost-locked set with one of its candidate values chosen.
//
// The link predicates below decide whether the truth of one node forces the
// falsity of another (weak link, ON->OFF) or whether the falsity of one
// forces the truth of another (strong link, OFF->ON). All predicates are
// pure functions of the grid's current candidate state.
//
// ============================================================================

import (
	"fmt"

	"sudoku-engine/internal/grid"
)

// NodeKind discriminates the three node shapes.
type NodeKind int

const (
	ValueNode NodeKind = iota
	GroupNode
	AlsNode
)

// Node is a chain node. Only the fields of the active kind are meaningful:
// Cell for Value nodes; Line, Block and Cells for Group nodes; Cells and
// CellsWithValue for Als nodes. Value is set for every kind.
type Node struct {
	Kind           NodeKind
	Value          int
	Cell           int
	Line           grid.CellSet
	Block          grid.CellSet
	Cells          grid.CellSet
	CellsWithValue grid.CellSet
}

// ValueCells returns the cells in which the node's value might be placed
// when the node is ON.
func (n Node) ValueCells() grid.CellSet {
	switch n.Kind {
	case ValueNode:
		return grid.NewCellSet(n.Cell)
	case GroupNode:
		return n.Cells
	default:
		return n.CellsWithValue
	}
}

// Description renders the node for chain descriptions, e.g. "5r3c7".
func (n Node) Description(g *grid.Grid) string {
	if n.Kind == ValueNode {
		return fmt.Sprintf("%d%s", n.Value, g.CellName(n.Cell))
	}
	return fmt.Sprintf("%d%s", n.Value, g.RegionName(n.Cells))
}

// Inference is a node together with its polarity within a chain.
type Inference struct {
	Node    Node
	Negated bool
}

// Description renders the inference, e.g. "-5r3c7".
func (i Inference) Description(g *grid.Grid) string {
	if i.Negated {
		return "-" + i.Node.Description(g)
	}
	return "+" + i.Node.Description(g)
}

// Chain is an ordered list of alternating inferences.
type Chain []Inference

// Description renders the chain as "+a --> -b --> ...".
func (c Chain) Description(g *grid.Grid) string {
	description := c[0].Description(g)
	for _, inference := range c[1:] {
		description += " --> " + inference.Description(g)
	}
	return description
}

// ============================================================================
// Node Collection
// ============================================================================

// ValueNodesForCandidate returns a Value node for every cell admitting the
// candidate.
func ValueNodesForCandidate(g *grid.Grid, candidate int) []Node {
	var nodes []Node
	for _, cell := range g.CellsWithCandidate(candidate).Cells() {
		nodes = append(nodes, Node{Kind: ValueNode, Cell: cell, Value: candidate})
	}
	return nodes
}

// ValueNodes returns a Value node for every candidate of every empty cell.
func ValueNodes(g *grid.Grid) []Node {
	var nodes []Node
	for _, cell := range g.EmptyCells().Cells() {
		for _, candidate := range g.Candidates(cell).Digits() {
			nodes = append(nodes, Node{Kind: ValueNode, Cell: cell, Value: candidate})
		}
	}
	return nodes
}

// BivalueValueNodes returns the Value nodes of bivalue cells only.
func BivalueValueNodes(g *grid.Grid) []Node {
	var nodes []Node
	for _, cell := range g.CellsWithNCandidates(2).Cells() {
		for _, candidate := range g.Candidates(cell).Digits() {
			nodes = append(nodes, Node{Kind: ValueNode, Cell: cell, Value: candidate})
		}
	}
	return nodes
}

// groupNodesForLines collects the Group nodes arising from intersections of
// the given lines with the grid's extra regions.
func groupNodesForLines(g *grid.Grid, lines []grid.CellSet, candidates []int) []Node {
	var nodes []Node
	for _, line := range lines {
		for _, block := range g.ExtraRegions() {
			intersection := line.Intersect(block)
			if intersection.IsEmpty() {
				continue
			}
			for _, candidate := range candidates {
				cells := g.CellsWithCandidateInRegion(candidate, intersection)
				if cells.Count() > 1 {
					nodes = append(nodes, Node{
						Kind:  GroupNode,
						Value: candidate,
						Line:  line,
						Block: block,
						Cells: cells,
					})
				}
			}
		}
	}
	return nodes
}

// GroupNodesForCandidate returns the Group nodes of a single candidate.
func GroupNodesForCandidate(g *grid.Grid, candidate int) []Node {
	candidates := []int{candidate}
	nodes := groupNodesForLines(g, g.Rows(), candidates)
	return append(nodes, groupNodesForLines(g, g.Columns(), candidates)...)
}

// GroupNodes returns the Group nodes of every candidate.
func GroupNodes(g *grid.Grid) []Node {
	candidates := g.Values()
	nodes := groupNodesForLines(g, g.Rows(), candidates)
	return append(nodes, groupNodesForLines(g, g.Columns(), candidates)...)
}

// alsNodesInRegion collects Als nodes from one region. Block-shaped regions
// skip cell sets that already live in a single row or column, since those
// are found by the line passes.
func alsNodesInRegion(g *grid.Grid, region grid.CellSet, skipLineSets bool) []Node {
	var nodes []Node
	empty := g.EmptyCellsInRegion(region)
	emptyCells := empty.Cells()
	for degree := 2; degree < len(emptyCells); degree++ {
		for _, combo := range combinations(emptyCells, degree) {
			cells := grid.NewCellSet(combo...)
			if skipLineSets {
				if _, ok := g.RowContaining(cells); ok {
					continue
				}
				if _, ok := g.ColumnContaining(cells); ok {
					continue
				}
			}
			candidates := g.AllCandidatesFromRegion(cells)
			if candidates.Count() != degree+1 {
				continue
			}
			for _, value := range candidates.Digits() {
				nodes = append(nodes, Node{
					Kind:           AlsNode,
					Value:          value,
					Cells:          cells,
					CellsWithValue: g.CellsWithCandidateInRegion(value, cells),
				})
			}
		}
	}
	return nodes
}

// AlsNodes returns the Als nodes of the grid: almost-locked sets within
// rows, columns, and blocks (excluding block sets already within a line).
func AlsNodes(g *grid.Grid) []Node {
	var nodes []Node
	for _, row := range g.Rows() {
		nodes = append(nodes, alsNodesInRegion(g, row, false)...)
	}
	for _, column := range g.Columns() {
		nodes = append(nodes, alsNodesInRegion(g, column, false)...)
	}
	for _, block := range g.ExtraRegions() {
		nodes = append(nodes, alsNodesInRegion(g, block, true)...)
	}
	return nodes
}

// ============================================================================
// Link Predicates - full node set
// ============================================================================

// Linker decides whether two nodes are linked in each direction. The AIC
// engine is generic over this so that the X-Chain and XY-Chain
// specialisations can restrict the edge set while sharing the search.
type Linker interface {
	OnToOff(g *grid.Grid, start, end Node) bool
	OffToOn(g *grid.Grid, start, end Node) bool
}

// AicLinker links the full Value/Group/Als node set.
type AicLinker struct{}

func (AicLinker) OnToOff(g *grid.Grid, start, end Node) bool {
	if start.Value != end.Value {
		return false
	}
	switch {
	case start.Kind == ValueNode && end.Kind == ValueNode:
		return g.Neighbours(start.Cell).Contains(end.Cell)
	case start.Kind == ValueNode:
		// Value -> Group / Als: every opposing instance is a neighbour.
		return g.Neighbours(start.Cell).ContainsAll(end.ValueCells())
	case end.Kind == ValueNode:
		return g.Neighbours(end.Cell).ContainsAll(start.ValueCells())
	case start.Kind == GroupNode:
		// Group -> Group / Als: disjoint, and the target lives inside the
		// group's line-or-block envelope.
		return start.Cells.Intersect(end.ValueCells()).IsEmpty() &&
			start.Line.Union(start.Block).ContainsAll(end.ValueCells())
	case end.Kind == GroupNode:
		// Als -> Group: symmetric envelope test.
		return start.CellsWithValue.Intersect(end.Cells).IsEmpty() &&
			end.Line.Union(end.Block).ContainsAll(start.CellsWithValue)
	default:
		// Als -> Als: every instance of the start sees every instance of
		// the end.
		return g.CommonNeighbours(start.CellsWithValue).ContainsAll(end.CellsWithValue)
	}
}

func (AicLinker) OffToOn(g *grid.Grid, start, end Node) bool {
	switch {
	case start.Kind == ValueNode && end.Kind == ValueNode:
		if start.Value == end.Value {
			return linkedConjugateCells(g, start.Cell, end.Cell, start.Value)
		}
		return start.Cell == end.Cell && g.NumCandidates(start.Cell) == 2
	case start.Kind == ValueNode && end.Kind == GroupNode:
		return start.Value == end.Value && linkedCellGroup(g, start.Cell, end)
	case start.Kind == GroupNode && end.Kind == ValueNode:
		return start.Value == end.Value && linkedCellGroup(g, end.Cell, start)
	case start.Kind == GroupNode && end.Kind == GroupNode:
		return start.Value == end.Value && linkedConjugateGroups(g, start, end)
	case start.Kind == AlsNode && end.Kind == AlsNode:
		// Within one ALS, exactly one of its candidate values can be
		// missing, so switching one value off forces every other on.
		return start.Cells == end.Cells && start.Value != end.Value
	default:
		return false
	}
}

// linkedConjugateCells reports whether two same-value cells form a strong
// link: they see each other and no further instance of the value lies in
// their shared regions.
func linkedConjugateCells(g *grid.Grid, offCell, onCell, value int) bool {
	if !g.Neighbours(offCell).Contains(onCell) {
		return false
	}
	shared := g.Neighbours(offCell).Intersect(g.Neighbours(onCell))
	return !g.CandidateInRegion(value, shared)
}

// linkedCellGroup reports whether a cell and a group form a strong link:
// within the group's line or block, the value's candidate cells are exactly
// the group plus that cell.
func linkedCellGroup(g *grid.Grid, cell int, group Node) bool {
	if group.Cells.Contains(cell) {
		return false
	}
	peers := g.CellsWithCandidateInRegion(group.Value, g.Neighbours(cell))
	if group.Line.Contains(cell) && group.Cells.ContainsAll(peers.Intersect(group.Line)) {
		return true
	}
	return group.Block.Contains(cell) && group.Cells.ContainsAll(peers.Intersect(group.Block))
}

// linkedConjugateGroups reports whether two groups form a strong link: one
// group's line or block holds the value in exactly the two groups' cells.
func linkedConjugateGroups(g *grid.Grid, off, on Node) bool {
	both := off.Cells.Union(on.Cells)
	if off.Line.ContainsAll(on.Cells) &&
		g.CellsWithCandidateInRegion(off.Value, off.Line) == both {
		return true
	}
	return off.Block.ContainsAll(on.Cells) &&
		g.CellsWithCandidateInRegion(off.Value, off.Block) == both
}

// ============================================================================
// Restricted Linkers
// ============================================================================

// XChainLinker restricts links to a single candidate value: the same-cell
// bivalue strong link is excluded, everything else matches AicLinker over
// Value and Group nodes.
type XChainLinker struct{}

func (XChainLinker) OnToOff(g *grid.Grid, start, end Node) bool {
	return AicLinker{}.OnToOff(g, start, end)
}

func (XChainLinker) OffToOn(g *grid.Grid, start, end Node) bool {
	if start.Kind == ValueNode && end.Kind == ValueNode && start.Cell == end.Cell {
		return false
	}
	return AicLinker{}.OffToOn(g, start, end)
}

// XYChainLinker restricts links to Value nodes of bivalue cells: weak links
// between same-value neighbours, strong links only within a bivalue cell.
type XYChainLinker struct{}

func (XYChainLinker) OnToOff(g *grid.Grid, start, end Node) bool {
	return start.Value == end.Value && g.Neighbours(start.Cell).Contains(end.Cell)
}

func (XYChainLinker) OffToOn(g *grid.Grid, start, end Node) bool {
	return start.Cell == end.Cell && start.Value != end.Value &&
		g.NumCandidates(start.Cell) == 2
}
