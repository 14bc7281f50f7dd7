// Package generator produces puzzles with unique solutions, using a
// brute-force solver as its oracle.
package generator

import (
	"math/rand"

	"sudoku-engine/internal/grid"
)

// GeneratePuzzle produces a puzzle with a unique solution on the template's
// topology: a random completed grid reduced clue by clue in random order,
// keeping only removals that preserve uniqueness.
func GeneratePuzzle(template *grid.Grid, rng *rand.Rand) []int {
	empty := make([]int, template.NumCells())
	solution, _ := RandomSolution(template, empty, rng)
	reduce(template, solution, rng)
	return solution
}

func reduce(template *grid.Grid, cells []int, rng *rand.Rand) {
	order := rng.Perm(len(cells))
	for _, cell := range order {
		clue := cells[cell]
		cells[cell] = 0
		if !HasUniqueSolution(template, cells) {
			cells[cell] = clue
		}
	}
}
