// Package permute enumerates the distinct permutations of a multiset, lazily
// and in place.
//
// 🚀 What does it do?
//
//	Given a sequence that may contain duplicates, such as
//	  [a, a, b]
//	permute produces every distinct arrangement exactly once:
//	  [a a b], [a b a], [b a a]
//	without ever holding more than one arrangement in memory.
//
// ✨ Key features:
//   - equality-only element types: values are mapped to integer ranks by
//     first appearance, so T needs no ordering (comparable, or any T with
//     an explicit equality function via NewFunc)
//   - lexicographic stepping over the rank sequence: each Advance is O(n)
//   - O(n) memory for any number of arrangements (up to n!)
//   - defensive snapshots: Current never aliases the working array
//   - Go 1.23 iterators: ranging over All() streams arrangements
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/thinker/permute"
//
//	p, err := permute.New([]string{"a", "b", "a"}, nil)
//	if err != nil {
//	  // only ErrEmptyInput (with Options.RejectEmpty) or ErrBadOption
//	}
//	for arr := range p.All() {
//	  fmt.Println(arr)
//	}
//
// Start order:
//
//	By default (SortedStart) the working array is bucketed by rank before
//	the first arrangement, so the full n!/Π(mᵢ!) set is visited. InputOrder
//	keeps the caller's order as the first arrangement and only visits the
//	arrangements that are lexicographically larger than it.
//
// Lifecycle:
//
//	A Permutations value is a one-shot resource. There is no rewind; build
//	a fresh engine from the original input to traverse again. An engine
//	must not be shared between goroutines.
//
// Performance:
//
//   - New:     O(n) time & memory (O(n·k) for NewFunc, k = distinct values)
//   - Advance: O(n) time, O(1) extra memory
//   - Current: O(n) (copy)
package permute
