package generator

import (
	"math/rand"

	"sudoku-engine/internal/grid"
)

// ============================================================================
// Pattern-Constrained Generation
// ============================================================================
//
// PatternIterator walks the space of unique-solution puzzles whose clues
// occupy a fixed pattern of cells. Starting from a random seed, it explores
// the vicinity of each puzzle by clearing two pattern cells at a time and
// trying every compatible pair of replacement clues, deduplicating via
// minlex canonicalization.
//
// ============================================================================

// PatternIterator produces an endless stream of distinct puzzles with a
// fixed clue pattern.
type PatternIterator struct {
	template       *grid.Grid
	seedStack      [][]int
	iterationQueue [][]int
	seen           map[string]bool
	pattern        []int
	rng            *rand.Rand
}

// NewPatternIterator builds an iterator over puzzles whose clues occupy the
// given cells of the template's topology.
func NewPatternIterator(template *grid.Grid, pattern []int, rng *rand.Rand) *PatternIterator {
	it := &PatternIterator{
		template: template,
		seen:     make(map[string]bool),
		pattern:  pattern,
		rng:      rng,
	}
	it.seedStack = append(it.seedStack, it.randomSeed())
	return it
}

// randomSeed fills the pattern with random compatible clues, retrying until
// every pattern cell could be filled. The result need not have a unique
// solution; it only seeds the vicinity search.
func (it *PatternIterator) randomSeed() []int {
	for {
		puzzle := make([]int, it.template.NumCells())
		ok := true
		for _, cell := range it.pattern {
			valid := it.validClues(puzzle, cell)
			if len(valid) == 0 {
				ok = false
				break
			}
			puzzle[cell] = valid[it.rng.Intn(len(valid))]
		}
		if ok {
			return puzzle
		}
	}
}

// validClues returns the clues placeable at the cell given the current
// puzzle state, respecting the template's neighbour topology.
func (it *PatternIterator) validClues(puzzle []int, cell int) []int {
	valid := make([]bool, it.template.Size()+1)
	for v := 1; v <= it.template.Size(); v++ {
		valid[v] = true
	}
	for _, neighbour := range it.template.Neighbours(cell).Cells() {
		if puzzle[neighbour] != 0 {
			valid[puzzle[neighbour]] = false
		}
	}
	var clues []int
	for v := 1; v <= it.template.Size(); v++ {
		if valid[v] {
			clues = append(clues, v)
		}
	}
	return clues
}

// Next returns the next unique-solution puzzle with the pattern.
func (it *PatternIterator) Next() []int {
	if len(it.iterationQueue) > 0 {
		puzzle := it.iterationQueue[len(it.iterationQueue)-1]
		it.iterationQueue = it.iterationQueue[:len(it.iterationQueue)-1]
		it.seedStack = append(it.seedStack, puzzle)
		return puzzle
	}

	for {
		if len(it.seedStack) == 0 {
			it.seedStack = append(it.seedStack, it.randomSeed())
		}

		current := it.seedStack[len(it.seedStack)-1]
		it.seedStack = it.seedStack[:len(it.seedStack)-1]

		// Vicinity search: clear each pair of pattern cells and try every
		// compatible replacement pair.
		var nextPuzzles [][]int
		for _, pair := range patternPairs(it.pattern) {
			clue1, clue2 := pair[0], pair[1]
			puzzle := append([]int(nil), current...)
			puzzle[clue1], puzzle[clue2] = 0, 0

			poss1 := it.validClues(puzzle, clue1)
			poss2 := it.validClues(puzzle, clue2)

			for _, c1 := range poss1 {
				puzzle[clue1] = c1
				for _, c2 := range poss2 {
					puzzle[clue2] = c2

					canonical := Minlex(puzzle, it.template.Size())
					key := puzzleKey(canonical)
					if it.seen[key] {
						continue
					}
					if !HasUniqueSolution(it.template, canonical) {
						continue
					}
					it.seen[key] = true
					nextPuzzles = append(nextPuzzles, canonical)
				}
			}
		}

		// Shuffle so the search does not keep reworking the same clues.
		it.rng.Shuffle(len(nextPuzzles), func(i, j int) {
			nextPuzzles[i], nextPuzzles[j] = nextPuzzles[j], nextPuzzles[i]
		})
		it.iterationQueue = append(it.iterationQueue, nextPuzzles...)

		if len(it.iterationQueue) > 0 {
			puzzle := it.iterationQueue[len(it.iterationQueue)-1]
			it.iterationQueue = it.iterationQueue[:len(it.iterationQueue)-1]
			return puzzle
		}
	}
}

func patternPairs(pattern []int) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(pattern); i++ {
		for j := i + 1; j < len(pattern); j++ {
			pairs = append(pairs, [2]int{pattern[i], pattern[j]})
		}
	}
	return pairs
}

func puzzleKey(puzzle []int) string {
	key := make([]byte, len(puzzle))
	for i, clue := range puzzle {
		key[i] = byte('0' + clue)
	}
	return string(key)
}
