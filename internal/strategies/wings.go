package strategies

import (
	"fmt"
	"iter"
	"strings"

	"sudoku-engine/internal/grid"
)

// ============================================================================
// Wings - XY, XYZ, W, WXYZ
// ============================================================================

// XYWing records a bivalue pivot with two bivalue pincers whose shared
// candidate dies in the pincers' common sight.
type XYWing struct {
	Pivot   int
	Pincer1 int
	Pincer2 int
	Value   int
}

func (s XYWing) Deductions(g *grid.Grid) []Deduction {
	region := g.Neighbours(s.Pincer1).Intersect(g.Neighbours(s.Pincer2))
	return eliminationsFor(g, g.CellsWithCandidateInRegion(s.Value, region), s.Value)
}

func (s XYWing) Description(g *grid.Grid) string {
	return fmt.Sprintf("XY-Wing - pivot %s and pincers (%s, %s) eliminate %d from common neighbours",
		g.CellName(s.Pivot), g.CellName(s.Pincer1), g.CellName(s.Pincer2), s.Value)
}

func findXYWing(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, pivot := range g.CellsWithNCandidates(2).Cells() {
			pivotCands := g.Candidates(pivot)

			// Pincer candidates: bivalue neighbours sharing exactly one
			// candidate with the pivot.
			pincers := g.CellsWithNCandidatesInRegion(2, g.Neighbours(pivot)).Filter(func(cell int) bool {
				return g.Candidates(cell).Intersect(pivotCands).Count() == 1
			})

			for _, pincer1 := range pincers.Cells() {
				target := g.Candidates(pincer1).Xor(pivotCands)
				for _, pincer2 := range g.CellsWithExactCandidatesInRegion(target, g.Neighbours(pivot)).Cells() {
					value := g.Candidates(pincer1).Intersect(g.Candidates(pincer2)).First()
					region := g.Neighbours(pincer1).Intersect(g.Neighbours(pincer2))
					if g.CellsWithCandidateInRegion(value, region).IsEmpty() {
						continue
					}
					if !yield(XYWing{Pivot: pivot, Pincer1: pincer1, Pincer2: pincer2, Value: value}) {
						return
					}
				}
			}
		}
	}
}

// XYZWing records a trivalue pivot with two bivalue pincers inside it; the
// shared candidate dies wherever all three cells are seen.
type XYZWing struct {
	Pivot   int
	Pincer1 int
	Pincer2 int
	Value   int
}

func (s XYZWing) Deductions(g *grid.Grid) []Deduction {
	region := g.Neighbours(s.Pivot).
		Intersect(g.Neighbours(s.Pincer1)).
		Intersect(g.Neighbours(s.Pincer2))
	return eliminationsFor(g, g.CellsWithCandidateInRegion(s.Value, region), s.Value)
}

func (s XYZWing) Description(g *grid.Grid) string {
	return fmt.Sprintf("XYZ-Wing - pivot %s and pincers (%s, %s) eliminate %d from cells seeing all three",
		g.CellName(s.Pivot), g.CellName(s.Pincer1), g.CellName(s.Pincer2), s.Value)
}

func findXYZWing(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, pivot := range g.CellsWithNCandidates(3).Cells() {
			pivotCands := g.Candidates(pivot)

			pincer1Candidates := g.CellsWithNCandidatesInRegion(2, g.Neighbours(pivot)).Filter(func(cell int) bool {
				return g.Candidates(cell).Intersect(pivotCands) == g.Candidates(cell)
			})

			for _, pincer1 := range pincer1Candidates.Cells() {
				// The second pincer is taken only from pivot neighbours
				// which do not see the first.
				rest := g.Neighbours(pivot).Subtract(g.Neighbours(pincer1))
				pincer2Candidates := g.CellsWithNCandidatesInRegion(2, rest).Filter(func(cell int) bool {
					return g.Candidates(cell) != g.Candidates(pincer1) &&
						g.Candidates(cell).Intersect(pivotCands) == g.Candidates(cell)
				})

				for _, pincer2 := range pincer2Candidates.Cells() {
					value := g.Candidates(pincer1).Intersect(g.Candidates(pincer2)).First()
					region := g.Neighbours(pivot).
						Intersect(g.Neighbours(pincer1)).
						Intersect(g.Neighbours(pincer2))
					if g.CellsWithCandidateInRegion(value, region).IsEmpty() {
						continue
					}
					if !yield(XYZWing{Pivot: pivot, Pincer1: pincer1, Pincer2: pincer2, Value: value}) {
						return
					}
				}
			}
		}
	}
}

// WWing records two identical bivalue cells tied together by a region where
// one of their candidates has no other home.
type WWing struct {
	Cell1  int
	Cell2  int
	Region grid.CellSet
	Value  int // the candidate eliminated from common neighbours
}

func (s WWing) Deductions(g *grid.Grid) []Deduction {
	region := g.Neighbours(s.Cell1).Intersect(g.Neighbours(s.Cell2))
	return eliminationsFor(g, g.CellsWithCandidateInRegion(s.Value, region), s.Value)
}

func (s WWing) Description(g *grid.Grid) string {
	return fmt.Sprintf("W-Wing - %s and %s linked through %s eliminate %d from common neighbours",
		g.CellName(s.Cell1), g.CellName(s.Cell2), g.RegionName(s.Region), s.Value)
}

func findWWing(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		bivalues := g.CellsWithNCandidates(2).Cells()
		for _, pair := range combinations(bivalues, 2) {
			cell1, cell2 := pair[0], pair[1]
			if g.Candidates(cell1) != g.Candidates(cell2) {
				continue
			}
			if g.Neighbours(cell1).Contains(cell2) {
				continue
			}

			digits := g.Candidates(cell1).Digits()
			candidate1, candidate2 := digits[0], digits[1]

			for _, region := range g.AllRegions() {
				if region.Contains(cell1) || region.Contains(cell2) {
					continue
				}
				unseen := region.Subtract(g.Neighbours(cell1).Union(g.Neighbours(cell2)))

				// If every occurrence of one candidate in the region is seen
				// by the pair, one of the two cells holds the other value.
				if !g.ValuePlacedInRegion(candidate1, unseen) && !g.CandidateInRegion(candidate1, unseen) {
					if ok := yieldWWing(g, cell1, cell2, region, candidate2, yield); !ok {
						return
					}
				}
				if !g.ValuePlacedInRegion(candidate2, unseen) && !g.CandidateInRegion(candidate2, unseen) {
					if ok := yieldWWing(g, cell1, cell2, region, candidate1, yield); !ok {
						return
					}
				}
			}
		}
	}
}

func yieldWWing(g *grid.Grid, cell1, cell2 int, region grid.CellSet, value int, yield func(Step) bool) bool {
	common := g.Neighbours(cell1).Intersect(g.Neighbours(cell2))
	if g.CellsWithCandidateInRegion(value, common).IsEmpty() {
		return true
	}
	return yield(WWing{Cell1: cell1, Cell2: cell2, Region: region, Value: value})
}

// WXYZWing records four cells holding four candidates between them, with at
// most one candidate unrestricted.
type WXYZWing struct {
	Cells grid.CellSet
	Value int
}

func (s WXYZWing) Deductions(g *grid.Grid) []Deduction {
	return eliminationsFor(g, wxyzEliminationCells(g, s.Cells, s.Value), s.Value)
}

func (s WXYZWing) Description(g *grid.Grid) string {
	names := make([]string, 0, 4)
	for _, cell := range s.Cells.Cells() {
		names = append(names, g.CellName(cell))
	}
	return fmt.Sprintf("WXYZ-Wing - cells (%s) eliminate %d from common neighbours",
		strings.Join(names, ", "), s.Value)
}

func findWXYZWing(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		emptyCells := g.EmptyCells()

		for _, first := range emptyCells.Cells() {
			for _, second := range wxyzContinuations(g, emptyCells, []int{first}).Cells() {
				for _, third := range wxyzContinuations(g, emptyCells, []int{first, second}).Cells() {
					for _, fourth := range wxyzContinuations(g, emptyCells, []int{first, second, third}).Cells() {
						cells := grid.NewCellSet(first, second, third, fourth)
						for _, candidate := range wxyzNecessaryDigits(g, cells).Digits() {
							if wxyzEliminationCells(g, cells, candidate).IsEmpty() {
								continue
							}
							if !yield(WXYZWing{Cells: cells, Value: candidate}) {
								return
							}
						}
					}
				}
			}
		}
	}
}

// wxyzContinuations returns cells beyond the current ones which keep the
// combined candidate count within four.
func wxyzContinuations(g *grid.Grid, emptyCells grid.CellSet, current []int) grid.CellSet {
	var soFar grid.CandidateSet
	last := -1
	for _, cell := range current {
		soFar = soFar.Union(g.Candidates(cell))
		if cell > last {
			last = cell
		}
	}
	return emptyCells.Filter(func(cell int) bool {
		return cell > last && soFar.Union(g.Candidates(cell)).Count() <= 4
	})
}

// wxyzNecessaryDigits returns the candidates of the wing that yield
// eliminations: all of them when every candidate is restricted common, or
// the single unrestricted candidate.
func wxyzNecessaryDigits(g *grid.Grid, cells grid.CellSet) grid.CandidateSet {
	allCandidates := g.AllCandidatesFromRegion(cells)

	var restricted grid.CandidateSet
	for _, candidate := range allCandidates.Digits() {
		withCandidate := g.CellsWithCandidateInRegion(candidate, cells)
		if len(g.AllRegionsContaining(withCandidate)) > 0 {
			restricted = restricted.Set(candidate)
		}
	}

	unrestricted := allCandidates.Subtract(restricted)
	switch unrestricted.Count() {
	case 0:
		return allCandidates
	case 1:
		return unrestricted
	default:
		return 0
	}
}

// wxyzEliminationCells returns the cells seeing every instance of the
// candidate within the wing that still carry it.
func wxyzEliminationCells(g *grid.Grid, cells grid.CellSet, candidate int) grid.CellSet {
	withCandidate := g.CellsWithCandidateInRegion(candidate, cells)
	if withCandidate.IsEmpty() {
		return grid.CellSet{}
	}
	return g.CellsWithCandidate(candidate).Intersect(g.CommonNeighbours(withCandidate))
}
