package permute

// AssignRanks maps each value to a small integer rank such that equal values
// share a rank and new values receive 0, 1, 2, … in order of first appearance.
// The input is neither reordered nor mutated; ranks[i] belongs to values[i].
//
// Example:
//
//	AssignRanks([]string{"b", "a", "b", "c"}) // [0 1 0 2]
//
// Complexity: O(n) expected time, O(k) extra space for k distinct values.
func AssignRanks[T comparable](values []T) []int {
	ranks := make([]int, len(values))
	seen := make(map[T]int, len(values))

	for i, v := range values {
		r, ok := seen[v]
		if !ok {
			r = len(seen)
			seen[v] = r
		}
		ranks[i] = r
	}

	return ranks
}

// AssignRanksFunc is AssignRanks for element types that only offer an
// equality function. eq must be an equivalence relation.
//
// Complexity: O(n·k) time where k is the number of distinct values
// (O(n²) worst case), O(k) extra space.
func AssignRanksFunc[T any](values []T, eq func(a, b T) bool) []int {
	ranks := make([]int, len(values))
	// reps[r] is the index of the first value that received rank r.
	var reps []int

	var (
		i, r int
		v    T
	)
	for i, v = range values {
		r = len(reps)
		for k, idx := range reps {
			if eq(values[idx], v) {
				r = k
				break
			}
		}
		if r == len(reps) {
			reps = append(reps, i)
		}
		ranks[i] = r
	}

	return ranks
}

// Multiplicities returns how often each rank occurs. ranks normally come from
// AssignRanks or AssignRanksFunc, i.e. use every rank in 0..k-1; negative
// ranks are ignored.
//
// Complexity: O(n + k).
func Multiplicities(ranks []int) []int {
	var counts []int
	for _, r := range ranks {
		if r < 0 {
			continue
		}
		for r >= len(counts) {
			counts = append(counts, 0)
		}
		counts[r]++
	}
	return counts
}
