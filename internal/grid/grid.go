package grid

// ============================================================================
// Grid - Variant-Aware Puzzle State
// ============================================================================
//
// Grid holds the mutable cell state (placed values and candidate masks) on
// top of an immutable topology: the region list (rows, columns and any extra
// regions supplied by the variant), the per-cell neighbour sets derived from
// those regions, and the per-(cell, value) additional forbidden placements
// that encode variant constraints such as nonconsecutive adjacency.
//
// The topology is built once by a variant constructor (see variants.go) and
// shared between clones, so hypothetical solving only pays for the cell
// state copy.
//
// ============================================================================

import (
	"fmt"
	"strings"
)

// RowOrColumn selects a line orientation for queries that work on either.
type RowOrColumn int

const (
	Row RowOrColumn = iota
	Column
)

// Cell is the state of a single cell: a placed value (0 when empty) and the
// candidate mask. A placed cell always has an empty candidate mask.
type Cell struct {
	value      int
	candidates CandidateSet
}

// topology holds everything about a grid that is immutable after
// construction and can therefore be shared between clones.
type topology struct {
	size            int
	numCells        int
	rows            []CellSet
	columns         []CellSet
	extraRegions    []CellSet
	allRegions      []CellSet
	neighbours      []CellSet
	extraNeighbours [][]*PlacementSet // [cell][value-1]
}

// Grid is a variant-aware Sudoku grid.
type Grid struct {
	topo  *topology
	cells []Cell
}

// Empty builds a grid with no placed values and full candidates everywhere.
// Rows and columns are derived from the size; extraRegions supplies the
// variant's further mutually-exclusive regions (blocks, for the built-in
// variants). extraNeighbours lists, for each cell and value, the placements
// that become forbidden when that value is placed in that cell.
func Empty(size int, extraRegions []CellSet, extraNeighbours [][]*PlacementSet) *Grid {
	numCells := size * size

	topo := &topology{
		size:            size,
		numCells:        numCells,
		extraRegions:    extraRegions,
		extraNeighbours: extraNeighbours,
	}

	for i := 0; i < size; i++ {
		var row, column CellSet
		for j := 0; j < size; j++ {
			row = row.Set(i*size + j)
			column = column.Set(j*size + i)
		}
		topo.rows = append(topo.rows, row)
		topo.columns = append(topo.columns, column)
	}

	topo.allRegions = append(topo.allRegions, topo.rows...)
	topo.allRegions = append(topo.allRegions, topo.columns...)
	topo.allRegions = append(topo.allRegions, topo.extraRegions...)

	topo.neighbours = make([]CellSet, numCells)
	for cell := 0; cell < numCells; cell++ {
		var neighbours CellSet
		for _, region := range topo.allRegions {
			if region.Contains(cell) {
				neighbours = neighbours.Union(region.Clear(cell))
			}
		}
		topo.neighbours[cell] = neighbours
	}

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i] = Cell{candidates: FullCandidates(size)}
	}

	return &Grid{topo: topo, cells: cells}
}

// Clone returns an independent copy of the grid. The topology is shared:
// only the cell state is duplicated.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{topo: g.topo, cells: cells}
}

// ============================================================================
// Mutation
// ============================================================================

// PlaceValue places a value in a cell and removes it from the candidates of
// every neighbour, and removes the variant-forbidden placements from the
// grid. Placing a value the cell no longer admits returns a
// ContradictionError; re-placing an already placed value is a no-op.
// Cascading forced singles are not followed here - that is strategy work.
func (g *Grid) PlaceValue(cell, value int) error {
	if !g.HasCandidate(cell, value) {
		if g.cells[cell].value == value {
			return nil
		}
		return &ContradictionError{Cell: cell}
	}

	g.cells[cell].value = value
	g.cells[cell].candidates = 0

	for _, neighbour := range g.topo.neighbours[cell].Cells() {
		g.cells[neighbour].candidates = g.cells[neighbour].candidates.Clear(value)
	}
	for _, pl := range g.topo.extraNeighbours[cell][value-1].Placements() {
		g.cells[pl.Cell].candidates = g.cells[pl.Cell].candidates.Clear(pl.Value)
	}

	return nil
}

// EliminateCandidate removes a value from a cell's candidates.
func (g *Grid) EliminateCandidate(cell, value int) {
	g.cells[cell].candidates = g.cells[cell].candidates.Clear(value)
}

// ============================================================================
// Cell Queries
// ============================================================================

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.topo.size }

// NumCells returns the number of cells, N^2.
func (g *Grid) NumCells() int { return g.topo.numCells }

// Values returns every value 1..N in ascending order.
func (g *Grid) Values() []int {
	values := make([]int, g.topo.size)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

// Value returns the value placed in the cell, or 0 if it is empty.
func (g *Grid) Value(cell int) int { return g.cells[cell].value }

// IsEmptyCell returns true if no value is placed in the cell.
func (g *Grid) IsEmptyCell(cell int) bool { return g.cells[cell].value == 0 }

// Candidates returns the candidate mask of the cell.
func (g *Grid) Candidates(cell int) CandidateSet { return g.cells[cell].candidates }

// NumCandidates returns the number of candidates of the cell.
func (g *Grid) NumCandidates(cell int) int { return g.cells[cell].candidates.Count() }

// HasCandidate returns true if the value is a candidate of the cell.
func (g *Grid) HasCandidate(cell, value int) bool { return g.cells[cell].candidates.Has(value) }

// FirstCandidate returns the smallest candidate of the cell, or 0.
func (g *Grid) FirstCandidate(cell int) int { return g.cells[cell].candidates.First() }

// IsSolved returns true if every cell has a placed value.
func (g *Grid) IsSolved() bool {
	for i := range g.cells {
		if g.cells[i].value == 0 {
			return false
		}
	}
	return true
}

// RowIdx returns the row index of a cell.
func (g *Grid) RowIdx(cell int) int { return cell / g.topo.size }

// ColIdx returns the column index of a cell.
func (g *Grid) ColIdx(cell int) int { return cell % g.topo.size }

// ============================================================================
// Set Queries
// ============================================================================

// EmptyCells returns the cells without a placed value.
func (g *Grid) EmptyCells() CellSet {
	var result CellSet
	for cell := 0; cell < g.topo.numCells; cell++ {
		if g.cells[cell].value == 0 {
			result = result.Set(cell)
		}
	}
	return result
}

// EmptyCellsInRegion returns the cells of the region without a placed value.
func (g *Grid) EmptyCellsInRegion(region CellSet) CellSet {
	return region.Filter(func(cell int) bool { return g.cells[cell].value == 0 })
}

// CellsWithCandidate returns the cells which admit the value.
func (g *Grid) CellsWithCandidate(value int) CellSet {
	var result CellSet
	for cell := 0; cell < g.topo.numCells; cell++ {
		if g.cells[cell].candidates.Has(value) {
			result = result.Set(cell)
		}
	}
	return result
}

// CellsWithCandidateInRegion returns the cells of the region which admit the
// value.
func (g *Grid) CellsWithCandidateInRegion(value int, region CellSet) CellSet {
	return region.Filter(func(cell int) bool { return g.cells[cell].candidates.Has(value) })
}

// CellsWithNCandidates returns the cells with exactly n candidates.
func (g *Grid) CellsWithNCandidates(n int) CellSet {
	var result CellSet
	for cell := 0; cell < g.topo.numCells; cell++ {
		if g.cells[cell].candidates.Count() == n {
			result = result.Set(cell)
		}
	}
	return result
}

// CellsWithNCandidatesInRegion returns the cells of the region with exactly
// n candidates.
func (g *Grid) CellsWithNCandidatesInRegion(n int, region CellSet) CellSet {
	return region.Filter(func(cell int) bool { return g.cells[cell].candidates.Count() == n })
}

// CellsWithExactCandidatesInRegion returns the cells of the region whose
// candidate mask equals the given set.
func (g *Grid) CellsWithExactCandidatesInRegion(candidates CandidateSet, region CellSet) CellSet {
	return region.Filter(func(cell int) bool { return g.cells[cell].candidates == candidates })
}

// AllCandidatesFromRegion returns the union of the candidates of the cells.
func (g *Grid) AllCandidatesFromRegion(region CellSet) CandidateSet {
	var result CandidateSet
	for _, cell := range region.Cells() {
		result = result.Union(g.cells[cell].candidates)
	}
	return result
}

// ValuesMissingFromRegion returns the values not yet placed in the region.
func (g *Grid) ValuesMissingFromRegion(region CellSet) CandidateSet {
	missing := FullCandidates(g.topo.size)
	for _, cell := range region.Cells() {
		if g.cells[cell].value != 0 {
			missing = missing.Clear(g.cells[cell].value)
		}
	}
	return missing
}

// ValuePlacedInRegion returns true if the value is placed in some cell of
// the region.
func (g *Grid) ValuePlacedInRegion(value int, region CellSet) bool {
	for _, cell := range region.Cells() {
		if g.cells[cell].value == value {
			return true
		}
	}
	return false
}

// CandidateInRegion returns true if some cell of the region admits the value.
func (g *Grid) CandidateInRegion(value int, region CellSet) bool {
	for _, cell := range region.Cells() {
		if g.cells[cell].candidates.Has(value) {
			return true
		}
	}
	return false
}

// ============================================================================
// Topology Queries
// ============================================================================

// Neighbours returns the cells sharing at least one region with the cell,
// excluding the cell itself.
func (g *Grid) Neighbours(cell int) CellSet { return g.topo.neighbours[cell] }

// ExtraNeighbours returns the placements forbidden when the value is placed
// in the cell. The returned set is shared and must not be mutated.
func (g *Grid) ExtraNeighbours(cell, value int) *PlacementSet {
	return g.topo.extraNeighbours[cell][value-1]
}

// CommonNeighbours returns the intersection of the neighbour sets of every
// cell in the set.
func (g *Grid) CommonNeighbours(cells CellSet) CellSet {
	result := FullCellSet(g.topo.numCells)
	for _, cell := range cells.Cells() {
		result = result.Intersect(g.topo.neighbours[cell])
	}
	return result
}

// Rows returns the row regions in index order.
func (g *Grid) Rows() []CellSet { return g.topo.rows }

// Columns returns the column regions in index order.
func (g *Grid) Columns() []CellSet { return g.topo.columns }

// ExtraRegions returns the variant's extra regions (blocks, for the built-in
// variants).
func (g *Grid) ExtraRegions() []CellSet { return g.topo.extraRegions }

// AllRegions returns rows, columns and extra regions, in that order.
func (g *Grid) AllRegions() []CellSet { return g.topo.allRegions }

// RowContaining returns the row holding every cell of the set, if one exists.
func (g *Grid) RowContaining(cells CellSet) (CellSet, bool) {
	for _, row := range g.topo.rows {
		if row.ContainsAll(cells) {
			return row, true
		}
	}
	return CellSet{}, false
}

// ColumnContaining returns the column holding every cell of the set, if one
// exists.
func (g *Grid) ColumnContaining(cells CellSet) (CellSet, bool) {
	for _, column := range g.topo.columns {
		if column.ContainsAll(cells) {
			return column, true
		}
	}
	return CellSet{}, false
}

// AllRegionsContaining returns every region holding all cells of the set.
func (g *Grid) AllRegionsContaining(cells CellSet) []CellSet {
	var result []CellSet
	for _, region := range g.topo.allRegions {
		if region.ContainsAll(cells) {
			result = append(result, region)
		}
	}
	return result
}

// IntersectingRows returns the rows which meet the given cells.
func (g *Grid) IntersectingRows(cells CellSet) []CellSet {
	var result []CellSet
	for _, row := range g.topo.rows {
		if !row.Intersect(cells).IsEmpty() {
			result = append(result, row)
		}
	}
	return result
}

// IntersectingColumns returns the columns which meet the given cells.
func (g *Grid) IntersectingColumns(cells CellSet) []CellSet {
	var result []CellSet
	for _, column := range g.topo.columns {
		if !column.Intersect(cells).IsEmpty() {
			result = append(result, column)
		}
	}
	return result
}

// GroupCellsBy splits the cells into their non-empty intersections with the
// rows or columns.
func (g *Grid) GroupCellsBy(cells CellSet, variety RowOrColumn) []CellSet {
	lines := g.topo.rows
	if variety == Column {
		lines = g.topo.columns
	}
	var result []CellSet
	for _, line := range lines {
		intersection := line.Intersect(cells)
		if !intersection.IsEmpty() {
			result = append(result, intersection)
		}
	}
	return result
}

// ============================================================================
// Naming and Rendering
// ============================================================================

// CellName returns the human name of a cell, e.g. "r4c7".
func (g *Grid) CellName(cell int) string {
	return fmt.Sprintf("r%dc%d", g.RowIdx(cell)+1, g.ColIdx(cell)+1)
}

// RegionName returns the human name of a region, falling back to a cell list
// for ad-hoc cell sets.
func (g *Grid) RegionName(region CellSet) string {
	for idx, row := range g.topo.rows {
		if region == row {
			return fmt.Sprintf("Row %d", idx+1)
		}
	}
	for idx, column := range g.topo.columns {
		if region == column {
			return fmt.Sprintf("Column %d", idx+1)
		}
	}
	for idx, extra := range g.topo.extraRegions {
		if region == extra {
			return fmt.Sprintf("Block %d", idx+1)
		}
	}

	names := make([]string, 0, region.Count())
	for _, cell := range region.Cells() {
		names = append(names, g.CellName(cell))
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// PuzzleString returns the grid as N^2 characters in row-major order, with
// '.' for empty cells. It is the inverse of the FromString parsers.
func (g *Grid) PuzzleString() string {
	var sb strings.Builder
	for cell := 0; cell < g.topo.numCells; cell++ {
		if g.cells[cell].value == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(byte('0' + g.cells[cell].value))
		}
	}
	return sb.String()
}

// blockDims derives the block shape from the extra region containing cell 0.
// Returns ok=false when the variant carries no block-like extra regions.
func (g *Grid) blockDims() (height, width int, ok bool) {
	for _, region := range g.topo.extraRegions {
		if !region.Contains(0) {
			continue
		}
		rows := map[int]bool{}
		cols := map[int]bool{}
		for _, cell := range region.Cells() {
			rows[g.RowIdx(cell)] = true
			cols[g.ColIdx(cell)] = true
		}
		return len(rows), len(cols), true
	}
	return 0, 0, false
}

// String renders the grid with block borders, empty cells as dots.
func (g *Grid) String() string {
	size := g.topo.size
	blockHeight, blockWidth, ok := g.blockDims()
	if !ok {
		blockHeight, blockWidth = size, size
	}

	var sep string
	if ok {
		segment := strings.Repeat("-", 2*blockWidth-1)
		sep = strings.Repeat("+"+segment, size/blockWidth) + "+"
	}

	var sb strings.Builder
	if ok {
		sb.WriteString(sep)
	}
	for row := 0; row < size; row++ {
		sb.WriteByte('\n')
		if ok {
			sb.WriteByte('|')
		}
		for col := 0; col < size; col++ {
			cell := row*size + col
			if g.cells[cell].value == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + g.cells[cell].value))
			}
			if col == size-1 {
				break
			}
			if ok && (col+1)%blockWidth == 0 {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		if ok {
			sb.WriteByte('|')
			if (row+1)%blockHeight == 0 {
				sb.WriteByte('\n')
				sb.WriteString(sep)
			}
		}
	}
	return sb.String()
}
