package strategies

import (
	"fmt"
	"iter"
	"strings"

	"sudoku-engine/internal/grid"
)

// ============================================================================
// Multi-Sector Locked Sets
// ============================================================================
//
// An MSLS counts, over a set of base rows (or columns) and a set of digits,
// how many placements of those digits the bases still require, and bounds
// how many the crossing cover lines can actually accept. When the two
// counts meet, the pattern is locked: the saturated base/cover cells carry
// only the chosen digits, and the cover lines lose the locked digits
// outside the base.
//
// ============================================================================

// CoverDigit pairs a cover line with one locked digit in it.
type CoverDigit struct {
	Line  grid.CellSet
	Digit int
}

// Msls records a locked multi-sector pattern.
type Msls struct {
	Base        []grid.CellSet
	Digits      grid.CandidateSet
	SingleCells grid.CellSet
	Cover       []CoverDigit
}

func (s Msls) Deductions(g *grid.Grid) []Deduction {
	baseUnion := grid.UnionOf(s.Base)

	var deductions []Deduction
	for _, cell := range s.SingleCells.Cells() {
		for _, value := range g.Candidates(cell).Subtract(s.Digits).Digits() {
			deductions = append(deductions, Eliminate(cell, value))
		}
	}
	for _, cover := range s.Cover {
		for _, cell := range cover.Line.Subtract(baseUnion).Cells() {
			if g.HasCandidate(cell, cover.Digit) {
				deductions = append(deductions, Eliminate(cell, cover.Digit))
			}
		}
	}
	return deductions
}

func (s Msls) Description(g *grid.Grid) string {
	names := make([]string, 0, len(s.Base))
	for _, base := range s.Base {
		names = append(names, g.RegionName(base))
	}
	return fmt.Sprintf("MSLS - on values %v with base (%s)", s.Digits, strings.Join(names, ", "))
}

func findMsls(g *grid.Grid) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		size := g.Size()
		for baseDegree := 2; baseDegree <= size; baseDegree++ {
			for digitDegree := 2; digitDegree < size; digitDegree++ {
				for _, baseType := range []grid.RowOrColumn{grid.Row, grid.Column} {
					if !yieldMsls(g, baseDegree, digitDegree, baseType, yield) {
						return
					}
				}
			}
		}
	}
}

func yieldMsls(g *grid.Grid, baseDegree, digitDegree int, baseType grid.RowOrColumn, yield func(Step) bool) bool {
	allBases := g.Rows()
	allCovers := g.Columns()
	if baseType == grid.Column {
		allBases, allCovers = allCovers, allBases
	}

	for _, baseSets := range combinations(allBases, baseDegree) {
		baseUnion := grid.UnionOf(baseSets)

		for _, baseDigits := range combinations(g.Values(), digitDegree) {
			digitSet := grid.NewCandidates(baseDigits)

			// How many of these digits still need placing in the bases.
			missingCount := 0
			for _, base := range baseSets {
				missingCount += digitSet.Filter(func(d int) bool {
					return !g.ValuePlacedInRegion(d, base)
				}).Count()
			}

			// Bound how many the cover lines can accept.
			var singleCells grid.CellSet
			var cover []CoverDigit
			placementCount := 0

			for _, coverLine := range allCovers {
				baseIntersection := coverLine.Intersect(baseUnion)
				digitsToPlace := digitSet.Filter(func(d int) bool {
					return g.CandidateInRegion(d, baseIntersection)
				})
				availableCells := baseIntersection.Filter(func(cell int) bool {
					return !g.Candidates(cell).Intersect(digitSet).IsEmpty()
				})

				switch {
				case digitsToPlace.Count() > availableCells.Count():
					singleCells = singleCells.Union(availableCells)
					placementCount += availableCells.Count()
				case digitsToPlace.Count() == availableCells.Count():
					singleCells = singleCells.Union(availableCells)
					for _, digit := range digitsToPlace.Digits() {
						cover = append(cover, CoverDigit{Line: coverLine, Digit: digit})
					}
					placementCount += availableCells.Count()
				default:
					for _, digit := range digitsToPlace.Digits() {
						cover = append(cover, CoverDigit{Line: coverLine, Digit: digit})
					}
					placementCount += digitsToPlace.Count()
				}
			}

			if missingCount != placementCount {
				continue
			}

			step := Msls{Base: baseSets, Digits: digitSet, SingleCells: singleCells, Cover: cover}
			if len(step.Deductions(g)) == 0 {
				continue
			}
			if !yield(step) {
				return false
			}
		}
	}
	return true
}
