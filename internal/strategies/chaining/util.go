package chaining

// combinations returns every k-element subset of items, preserving order.
func combinations(items []int, k int) [][]int {
	if k < 0 || k > len(items) {
		return nil
	}
	var result [][]int
	combo := make([]int, k)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			result = append(result, append([]int(nil), combo...))
			return
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			combo[depth] = items[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
	return result
}
