package strategies

import (
	"fmt"
	"iter"

	"sudoku-engine/internal/grid"
)

// ============================================================================
// Singles - Full House, Hidden Single, Naked Single
// ============================================================================

// FullHouse records the last empty cell of a region and its forced value.
type FullHouse struct {
	Region grid.CellSet
	Cell   int
	Value  int
}

func (s FullHouse) Deductions(*grid.Grid) []Deduction {
	return []Deduction{Place(s.Cell, s.Value)}
}

func (s FullHouse) Description(g *grid.Grid) string {
	return fmt.Sprintf("Full House - %s is the last cell in %s, and must contain %d",
		g.CellName(s.Cell), g.RegionName(s.Region), s.Value)
}

// findFullHouse scans each region for a single remaining empty cell.
func findFullHouse(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, region := range g.AllRegions() {
			emptyCells := g.EmptyCellsInRegion(region)
			if emptyCells.Count() != 1 {
				continue
			}
			cell := emptyCells.First()

			// An invalid puzzle can leave the last cell with no candidates.
			if g.NumCandidates(cell) == 0 {
				if !yield(NoCandidatesForCell{Cell: cell}) {
					return
				}
				continue
			}

			if !yield(FullHouse{Region: region, Cell: cell, Value: g.FirstCandidate(cell)}) {
				return
			}
		}
	}
}

// HiddenSingle records the only cell of a region that can hold a value.
type HiddenSingle struct {
	Region grid.CellSet
	Cell   int
	Value  int
}

func (s HiddenSingle) Deductions(*grid.Grid) []Deduction {
	return []Deduction{Place(s.Cell, s.Value)}
}

func (s HiddenSingle) Description(g *grid.Grid) string {
	return fmt.Sprintf("Hidden Single - %s is the only place for %d in %s",
		g.CellName(s.Cell), s.Value, g.RegionName(s.Region))
}

// findHiddenSingle scans each region for a value with a single home.
func findHiddenSingle(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, region := range g.AllRegions() {
			for _, value := range g.ValuesMissingFromRegion(region).Digits() {
				cells := g.CellsWithCandidateInRegion(value, region)
				if cells.Count() != 1 {
					continue
				}
				if !yield(HiddenSingle{Region: region, Cell: cells.First(), Value: value}) {
					return
				}
			}
		}
	}
}

// NakedSingle records a cell whose candidates have collapsed to one value.
type NakedSingle struct {
	Cell  int
	Value int
}

func (s NakedSingle) Deductions(*grid.Grid) []Deduction {
	return []Deduction{Place(s.Cell, s.Value)}
}

func (s NakedSingle) Description(g *grid.Grid) string {
	return fmt.Sprintf("Naked Single - %s can only contain %d", g.CellName(s.Cell), s.Value)
}

// findNakedSingle scans every cell, also flagging empty cells with no
// candidates left.
func findNakedSingle(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for cell := 0; cell < g.NumCells(); cell++ {
			if g.NumCandidates(cell) == 0 && g.IsEmptyCell(cell) {
				if !yield(NoCandidatesForCell{Cell: cell}) {
					return
				}
			}
			if g.NumCandidates(cell) == 1 {
				if !yield(NakedSingle{Cell: cell, Value: g.FirstCandidate(cell)}) {
					return
				}
			}
		}
	}
}
