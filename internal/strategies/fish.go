package strategies

import (
	"fmt"
	"iter"
	"strings"

	"sudoku-engine/internal/grid"
)

// ============================================================================
// Fish and Finned Fish
// ============================================================================
//
// A fish of degree k is k base lines whose occurrences of one value are
// covered by k crossing lines; the value dies everywhere else in the cover.
// A finned fish tolerates one or two extra crossing lines; the base cells in
// them (the fins) stay uncovered, at the price of restricting the
// eliminations to cells which see every fin.
//
// ============================================================================

func fishName(degree int) string {
	switch degree {
	case 2:
		return "X-Wing"
	case 3:
		return "Swordfish"
	case 4:
		return "Jellyfish"
	default:
		return "Fish"
	}
}

func baseTypeName(baseType grid.RowOrColumn) string {
	if baseType == grid.Row {
		return "rows"
	}
	return "columns"
}

func lineNames(g *grid.Grid, baseType grid.RowOrColumn, union grid.CellSet) string {
	var lines []grid.CellSet
	if baseType == grid.Row {
		lines = g.IntersectingRows(union)
	} else {
		lines = g.IntersectingColumns(union)
	}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, g.RegionName(line))
	}
	return strings.Join(names, ", ")
}

// Fish records a standard fish: base and cover unions restricted to the
// cells carrying the value.
type Fish struct {
	Degree   int
	BaseType grid.RowOrColumn
	Base     grid.CellSet
	Cover    grid.CellSet
	Value    int
}

func (s Fish) Deductions(g *grid.Grid) []Deduction {
	return eliminationsFor(g, s.Cover.Subtract(s.Base), s.Value)
}

func (s Fish) Description(g *grid.Grid) string {
	return fmt.Sprintf("%s - on value %d with base %s (%s)",
		fishName(s.Degree), s.Value, baseTypeName(s.BaseType), lineNames(g, s.BaseType, s.Base))
}

// findFish searches for standard fish of the given degree in both
// orientations.
func findFish(g *grid.Grid, degree int) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, value := range g.Values() {
			for _, baseType := range []grid.RowOrColumn{grid.Row, grid.Column} {
				if !yieldStandardFish(g, degree, value, baseType, yield) {
					return
				}
			}
		}
	}
}

func yieldStandardFish(g *grid.Grid, degree, value int, baseType grid.RowOrColumn, yield func(Step) bool) bool {
	positions := g.CellsWithCandidate(value)
	baseSets := g.GroupCellsBy(positions, baseType)

	for _, bases := range combinations(baseSets, degree) {
		baseUnion := grid.UnionOf(bases)

		coverSets := coverLines(g, baseType, baseUnion)
		if len(coverSets) != degree {
			continue
		}

		coverUnion := grid.UnionOf(coverSets).Intersect(positions)
		eliminations := coverUnion.Subtract(baseUnion)
		if eliminations.IsEmpty() {
			continue
		}

		step := Fish{Degree: degree, BaseType: baseType, Base: baseUnion, Cover: coverUnion, Value: value}
		if !yield(step) {
			return false
		}
	}
	return true
}

// coverLines returns the lines crossing the base union: columns for
// row-based fish, rows for column-based fish.
func coverLines(g *grid.Grid, baseType grid.RowOrColumn, baseUnion grid.CellSet) []grid.CellSet {
	if baseType == grid.Row {
		return g.IntersectingColumns(baseUnion)
	}
	return g.IntersectingRows(baseUnion)
}

// FinnedFish records a finned fish: the cover excludes the dropped lines,
// and only cells seeing every fin are eliminated.
type FinnedFish struct {
	Degree   int
	BaseType grid.RowOrColumn
	Base     grid.CellSet
	Cover    grid.CellSet
	Fins     grid.CellSet
	Value    int
}

func (s FinnedFish) Deductions(g *grid.Grid) []Deduction {
	cells := g.CommonNeighbours(s.Fins).Intersect(s.Cover).Subtract(s.Base)
	return eliminationsFor(g, cells, s.Value)
}

func (s FinnedFish) Description(g *grid.Grid) string {
	finNames := make([]string, 0, s.Fins.Count())
	for _, cell := range s.Fins.Cells() {
		finNames = append(finNames, g.CellName(cell))
	}
	return fmt.Sprintf("Finned %s - on value %d with base %s (%s) and fins (%s)",
		fishName(s.Degree), s.Value, baseTypeName(s.BaseType),
		lineNames(g, s.BaseType, s.Base), strings.Join(finNames, ", "))
}

// findFinnedFish searches for finned fish of the given degree in both
// orientations, allowing one or two extra crossing lines for the fins.
func findFinnedFish(g *grid.Grid, degree int) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, value := range g.Values() {
			for _, baseType := range []grid.RowOrColumn{grid.Row, grid.Column} {
				if !yieldFinnedFish(g, degree, value, baseType, yield) {
					return
				}
			}
		}
	}
}

func yieldFinnedFish(g *grid.Grid, degree, value int, baseType grid.RowOrColumn, yield func(Step) bool) bool {
	positions := g.CellsWithCandidate(value)
	baseSets := g.GroupCellsBy(positions, baseType)

	for _, bases := range combinations(baseSets, degree) {
		baseUnion := grid.UnionOf(bases)

		coverSets := coverLines(g, baseType, baseUnion)
		numFins := len(coverSets) - degree
		if numFins != 1 && numFins != 2 {
			continue
		}

		fullCover := grid.UnionOf(coverSets).Intersect(positions)
		for _, exCovers := range combinations(coverSets, numFins) {
			uncovered := grid.UnionOf(exCovers)
			coverUnion := fullCover.Subtract(uncovered)
			fins := baseUnion.Intersect(uncovered)

			eliminations := g.CommonNeighbours(fins).Intersect(coverUnion).Subtract(baseUnion)
			if eliminations.IsEmpty() {
				continue
			}

			step := FinnedFish{
				Degree:   degree,
				BaseType: baseType,
				Base:     baseUnion,
				Cover:    coverUnion,
				Fins:     fins,
				Value:    value,
			}
			if !yield(step) {
				return false
			}
		}
	}
	return true
}
