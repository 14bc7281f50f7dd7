package strategies

import (
	"fmt"
	"iter"

	"sudoku-engine/internal/grid"
)

// ============================================================================
// Naked and Hidden Subsets
// ============================================================================

func subsetName(size int) string {
	switch size {
	case 2:
		return "Pair"
	case 3:
		return "Triple"
	case 4:
		return "Quad"
	default:
		return "Subset"
	}
}

// NakedSubset records k cells of a region which can only hold k values
// between them, locking those values out of their common neighbours.
type NakedSubset struct {
	Region grid.CellSet
	Cells  grid.CellSet
	Values grid.CandidateSet
}

func (s NakedSubset) Deductions(g *grid.Grid) []Deduction {
	var deductions []Deduction
	for _, cell := range g.CommonNeighbours(s.Cells).Cells() {
		for _, value := range s.Values.Digits() {
			if g.HasCandidate(cell, value) {
				deductions = append(deductions, Eliminate(cell, value))
			}
		}
	}
	return deductions
}

func (s NakedSubset) Description(g *grid.Grid) string {
	return fmt.Sprintf("Naked %s - %v in %s %s",
		subsetName(s.Cells.Count()), s.Values, g.RegionName(s.Region), g.RegionName(s.Cells))
}

// findNakedSubset enumerates k-combinations of empty cells per region.
func findNakedSubset(g *grid.Grid, degree int) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, region := range g.AllRegions() {
			emptyCells := g.EmptyCellsInRegion(region).Cells()
			for _, combo := range combinations(emptyCells, degree) {
				cells := grid.NewCellSet(combo...)
				candidates := g.AllCandidatesFromRegion(cells)
				if candidates.Count() != degree {
					continue
				}

				// Only worth reporting if a common neighbour still carries
				// one of the locked values.
				hasElimination := false
				for _, cell := range g.CommonNeighbours(cells).Cells() {
					if !g.Candidates(cell).Intersect(candidates).IsEmpty() {
						hasElimination = true
						break
					}
				}
				if !hasElimination {
					continue
				}

				if !yield(NakedSubset{Region: region, Cells: cells, Values: candidates}) {
					return
				}
			}
		}
	}
}

// HiddenSubset records k values of a region confined to k cells, clearing
// every other candidate from those cells.
type HiddenSubset struct {
	Region grid.CellSet
	Cells  grid.CellSet
	Values grid.CandidateSet
}

func (s HiddenSubset) Deductions(g *grid.Grid) []Deduction {
	var deductions []Deduction
	for _, cell := range s.Cells.Cells() {
		for _, value := range g.Candidates(cell).Subtract(s.Values).Digits() {
			deductions = append(deductions, Eliminate(cell, value))
		}
	}
	return deductions
}

func (s HiddenSubset) Description(g *grid.Grid) string {
	return fmt.Sprintf("Hidden %s - %v of %s confined to %s",
		subsetName(s.Cells.Count()), s.Values, g.RegionName(s.Region), g.RegionName(s.Cells))
}

// findHiddenSubset enumerates k-combinations of the values missing from
// each region.
func findHiddenSubset(g *grid.Grid, degree int) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, region := range g.AllRegions() {
			missing := g.ValuesMissingFromRegion(region).Digits()
			for _, tuple := range combinations(missing, degree) {
				var cells grid.CellSet
				for _, value := range tuple {
					cells = cells.Union(g.CellsWithCandidateInRegion(value, region))
				}
				if cells.Count() != degree {
					continue
				}

				values := grid.NewCandidates(tuple)
				hasElimination := false
				for _, cell := range cells.Cells() {
					if !g.Candidates(cell).Subtract(values).IsEmpty() {
						hasElimination = true
						break
					}
				}
				if !hasElimination {
					continue
				}

				if !yield(HiddenSubset{Region: region, Cells: cells, Values: values}) {
					return
				}
			}
		}
	}
}
