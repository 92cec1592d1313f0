// Package seqs contains adapters for iter.Seq.
package seqs

import "iter"

// Batch groups seq into slices of size elements. The last batch may be
// shorter. size < 1 yields nothing. Each batch is a fresh slice.
func Batch[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size < 1 {
			return
		}
		batch := make([]T, 0, size)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// AdjacentPairs yields fn(prev, cur) for every pair of neighbouring elements:
// n elements produce n-1 results.
func AdjacentPairs[T, R any](seq iter.Seq[T], fn func(prev, cur T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		var (
			prev  T
			first = true
		)
		for v := range seq {
			if first {
				prev, first = v, false
				continue
			}
			if !yield(fn(prev, v)) {
				return
			}
			prev = v
		}
	}
}

// Enumerate pairs every element of seq with its zero-based position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
