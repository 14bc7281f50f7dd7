package grid

// ============================================================================
// Variant Constructors
// ============================================================================
//
// Each variant is a builder producing an empty Grid with the right regions
// and additional-neighbour tables. Variant rules beyond rows/columns/blocks
// are encoded purely as forbidden (cell, value) placements, so the solver
// and the strategies need no knowledge of individual variants.
//
// ============================================================================

// Inequality is a less-than constraint between two cells: the value placed
// in Small must be less than the value placed in Big.
type Inequality struct {
	Small int
	Big   int
}

// classicBlocks returns the 3x3 block regions of a 9x9 grid.
func classicBlocks() []CellSet {
	blocks := make([]CellSet, 9)
	for idx := 0; idx < 9; idx++ {
		base := 27*(idx/3) + 3*(idx%3)
		blocks[idx] = NewCellSet(
			base, base+1, base+2,
			base+9, base+10, base+11,
			base+18, base+19, base+20,
		)
	}
	return blocks
}

// emptyExtraNeighbours returns an all-empty additional-neighbour table.
func emptyExtraNeighbours(size int) [][]*PlacementSet {
	table := make([][]*PlacementSet, size*size)
	for cell := range table {
		table[cell] = make([]*PlacementSet, size)
		for value := range table[cell] {
			table[cell][value] = NewPlacementSet(size)
		}
	}
	return table
}

// EmptyClassic returns an empty classic 9x9 grid.
func EmptyClassic() *Grid {
	return Empty(9, classicBlocks(), emptyExtraNeighbours(9))
}

// EmptyClassic6 returns an empty 6x6 grid with 2x3 blocks.
func EmptyClassic6() *Grid {
	blocks := make([]CellSet, 6)
	for idx := 0; idx < 6; idx++ {
		base := 12*(idx/2) + 3*(idx%2)
		blocks[idx] = NewCellSet(base, base+1, base+2, base+6, base+7, base+8)
	}
	return Empty(6, blocks, emptyExtraNeighbours(6))
}

// addConsecutiveConstraints forbids consecutive values between cell and
// other in both directions of the value relation.
func addConsecutiveConstraints(table [][]*PlacementSet, size, cell, other int) {
	for value := 1; value <= size; value++ {
		if value > 1 {
			table[cell][value-1].Add(Placement{Cell: other, Value: value - 1})
		}
		if value < size {
			table[cell][value-1].Add(Placement{Cell: other, Value: value + 1})
		}
	}
}

// EmptyNonconsecutive returns an empty 9x9 grid where orthogonally adjacent
// cells may not hold consecutive values.
func EmptyNonconsecutive() *Grid {
	table := emptyExtraNeighbours(9)
	for cell := 0; cell < 81; cell++ {
		if cell%9 != 8 {
			addConsecutiveConstraints(table, 9, cell, cell+1)
		}
		if cell%9 != 0 {
			addConsecutiveConstraints(table, 9, cell, cell-1)
		}
		if cell/9 != 0 {
			addConsecutiveConstraints(table, 9, cell, cell-9)
		}
		if cell/9 != 8 {
			addConsecutiveConstraints(table, 9, cell, cell+9)
		}
	}
	return Empty(9, classicBlocks(), table)
}

// EmptyDiagonalNonconsecutive returns an empty 9x9 grid where diagonally
// adjacent cells may not hold consecutive values.
func EmptyDiagonalNonconsecutive() *Grid {
	table := emptyExtraNeighbours(9)
	for cell := 0; cell < 81; cell++ {
		if cell%9 != 8 && cell/9 != 0 {
			addConsecutiveConstraints(table, 9, cell, cell-8)
		}
		if cell%9 != 8 && cell/9 != 8 {
			addConsecutiveConstraints(table, 9, cell, cell+10)
		}
		if cell%9 != 0 && cell/9 != 0 {
			addConsecutiveConstraints(table, 9, cell, cell-10)
		}
		if cell%9 != 0 && cell/9 != 8 {
			addConsecutiveConstraints(table, 9, cell, cell+8)
		}
	}
	return Empty(9, classicBlocks(), table)
}

// EmptyLessThan returns an empty 9x9 grid constrained by the given
// inequalities: for each of them, the small cell's value must be less than
// the big cell's value.
func EmptyLessThan(inequalities []Inequality) *Grid {
	table := emptyExtraNeighbours(9)
	for _, ineq := range inequalities {
		for smallVal := 1; smallVal <= 9; smallVal++ {
			for bigVal := smallVal; bigVal <= 9; bigVal++ {
				// Placing bigVal in the small cell forbids smallVal in the
				// big cell, and vice versa.
				table[ineq.Small][bigVal-1].Add(Placement{Cell: ineq.Big, Value: smallVal})
				table[ineq.Big][smallVal-1].Add(Placement{Cell: ineq.Small, Value: bigVal})
			}
		}
	}
	return Empty(9, classicBlocks(), table)
}

// ============================================================================
// Parsing
// ============================================================================

// FromClues places the given clues (0 for empty) onto a copy of the empty
// grid, verifying each clue is still a candidate when it is placed.
func FromClues(empty *Grid, clues []int) (*Grid, error) {
	if len(clues) != empty.NumCells() {
		return nil, ErrBadLength
	}

	g := empty.Clone()
	for idx, clue := range clues {
		if clue == 0 {
			continue
		}
		if !g.HasCandidate(idx, clue) {
			return nil, &ContradictionError{Cell: idx}
		}
		if err := g.PlaceValue(idx, clue); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FromString parses a puzzle string of N^2 characters in row-major order.
// ASCII digits '1'..N are clues; any other character is an empty cell.
func FromString(empty *Grid, input string) (*Grid, error) {
	if len(input) != empty.NumCells() {
		return nil, ErrBadLength
	}

	clues := make([]int, len(input))
	for idx := 0; idx < len(input); idx++ {
		ch := input[idx]
		if ch >= '1' && ch <= byte('0'+empty.Size()) {
			clues[idx] = int(ch - '0')
		}
	}
	return FromClues(empty, clues)
}

// ClassicFromString parses a classic 9x9 puzzle.
func ClassicFromString(input string) (*Grid, error) {
	return FromString(EmptyClassic(), input)
}

// ClassicFromClues builds a classic 9x9 puzzle from a clue slice.
func ClassicFromClues(clues []int) (*Grid, error) {
	return FromClues(EmptyClassic(), clues)
}

// NonconsecutiveFromString parses a nonconsecutive puzzle.
func NonconsecutiveFromString(input string) (*Grid, error) {
	return FromString(EmptyNonconsecutive(), input)
}

// NonconsecutiveFromClues builds a nonconsecutive puzzle from a clue slice.
func NonconsecutiveFromClues(clues []int) (*Grid, error) {
	return FromClues(EmptyNonconsecutive(), clues)
}

// DiagonalNonconsecutiveFromString parses a diagonal-nonconsecutive puzzle.
func DiagonalNonconsecutiveFromString(input string) (*Grid, error) {
	return FromString(EmptyDiagonalNonconsecutive(), input)
}

// DiagonalNonconsecutiveFromClues builds a diagonal-nonconsecutive puzzle
// from a clue slice.
func DiagonalNonconsecutiveFromClues(clues []int) (*Grid, error) {
	return FromClues(EmptyDiagonalNonconsecutive(), clues)
}

// LessThanFromString parses a less-than puzzle with the given inequalities.
func LessThanFromString(input string, inequalities []Inequality) (*Grid, error) {
	return FromString(EmptyLessThan(inequalities), input)
}

// LessThanFromClues builds a less-than puzzle from a clue slice.
func LessThanFromClues(clues []int, inequalities []Inequality) (*Grid, error) {
	return FromClues(EmptyLessThan(inequalities), clues)
}
