// Package thinker is a grab-bag of small, dependable Go helpers built around
// one piece of real combinatorics: lazy enumeration of the distinct
// permutations of a multiset.
//
// 🚀 What is in here?
//
//	• permute/  — distinct permutations of sequences with duplicates, one
//	              arrangement at a time, O(n) memory, equality-only elements
//	• geometry/ — normalised angles, points, line/segment intersection, rects
//	• colour/   — mixing and legible inversion of image/color values
//	• counter/  — map increments and an insertion-ordered Counter
//	• imaging/  — bicubic bitmap resizing
//	• random/   — seeded coin tosses, characters and shuffles
//	• strs/     — capitalisation, camel-case splitting, rune-aware trimming
//	• numeric/  — primes, means, range checks, rounding
//	• seqs/     — iter.Seq adapters (Batch, AdjacentPairs, Enumerate)
//
// ✨ Conventions
//
//   - No logging and no panics on user input; every package reports failures
//     through sentinel errors matched with errors.Is.
//   - Deterministic by default: randomness is always explicitly seeded.
//   - Nothing is shared: values returned to callers are never aliased by
//     later calls.
//
// Quick example:
//
//	p, _ := permute.New([]rune("noon"), nil)
//	for arr := range p.All() {
//	    fmt.Println(string(arr)) // nnoo, nono, noon, onno, onon, oonn
//	}
//
//	go get github.com/katalvlaran/thinker
package thinker
