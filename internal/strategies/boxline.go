package strategies

import (
	"fmt"
	"iter"

	"sudoku-engine/internal/grid"
)

// BoxLine records a set of eliminations arising from all occurrences of a
// value within one region sharing further common neighbours.
type BoxLine struct {
	Region     grid.CellSet
	Neighbours grid.CellSet
	Value      int
}

func (s BoxLine) Deductions(g *grid.Grid) []Deduction {
	return eliminationsFor(g, s.Neighbours, s.Value)
}

func (s BoxLine) Description(g *grid.Grid) string {
	return fmt.Sprintf("Box-line interaction - the %ds in %s eliminate further %ds from common neighbours",
		s.Value, g.RegionName(s.Region), s.Value)
}

// findBoxLine scans each region and value for common-neighbour eliminations.
// This subsumes both pointing and claiming on classic grids, and extends to
// any variant region.
func findBoxLine(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, region := range g.AllRegions() {
			for _, value := range g.ValuesMissingFromRegion(region).Digits() {
				cells := g.CellsWithCandidateInRegion(value, region)
				if cells.IsEmpty() {
					continue
				}
				common := g.CommonNeighbours(cells)
				eliminations := g.CellsWithCandidateInRegion(value, common)
				if eliminations.IsEmpty() {
					continue
				}
				if !yield(BoxLine{Region: region, Neighbours: eliminations, Value: value}) {
					return
				}
			}
		}
	}
}
