package generator

// Minlex returns the minlex variant of the puzzle: the relabelling of its
// digits under which the clue sequence is lexicographically minimal. Clues
// are renumbered in order of first appearance.
func Minlex(puzzle []int, size int) []int {
	reverseLookup := make([]int, size+1)
	seen := make([]bool, size+1)
	count := 0
	for _, clue := range puzzle {
		if clue != 0 && !seen[clue] {
			seen[clue] = true
			count++
			reverseLookup[clue] = count
		}
	}

	relabelled := make([]int, len(puzzle))
	for idx, clue := range puzzle {
		relabelled[idx] = reverseLookup[clue]
	}
	return relabelled
}
