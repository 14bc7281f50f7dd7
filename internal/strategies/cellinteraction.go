package strategies

import (
	"fmt"
	"iter"

	"sudoku-engine/internal/grid"
)

// CellInteraction records eliminations common to every candidate of one
// cell via the variant's additional-neighbour tables. On classic grids the
// tables are empty and this strategy never fires.
type CellInteraction struct {
	Cell         int
	Eliminations *grid.PlacementSet
}

func (s CellInteraction) Deductions(g *grid.Grid) []Deduction {
	var deductions []Deduction
	for _, pl := range s.Eliminations.Placements() {
		if g.HasCandidate(pl.Cell, pl.Value) {
			deductions = append(deductions, Eliminate(pl.Cell, pl.Value))
		}
	}
	return deductions
}

func (s CellInteraction) Description(g *grid.Grid) string {
	return fmt.Sprintf("Cell interaction - the candidates in %s lead to a common elimination",
		g.CellName(s.Cell))
}

// findCellInteraction intersects the forbidden-placement sets of every
// candidate of each empty cell. Whatever survives the intersection is
// forbidden no matter which candidate turns out true.
func findCellInteraction(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, cell := range g.EmptyCells().Cells() {
			candidates := g.Candidates(cell)
			if candidates.IsEmpty() {
				continue
			}

			sets := make([]*grid.PlacementSet, 0, candidates.Count())
			for _, value := range candidates.Digits() {
				sets = append(sets, g.ExtraNeighbours(cell, value))
			}

			common := grid.IntersectionOfPlacements(sets, g.Size())
			eliminations := common.Filter(func(pl grid.Placement) bool {
				return g.HasCandidate(pl.Cell, pl.Value)
			})
			if eliminations.IsEmpty() {
				continue
			}
			if !yield(CellInteraction{Cell: cell, Eliminations: eliminations}) {
				return
			}
		}
	}
}
