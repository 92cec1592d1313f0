package permute

import "iter"

// Next returns the next arrangement that has not been handed out yet: the
// current arrangement on the first call, then one Advance per call.
// ok is false once the engine is exhausted.
//
// Calling Advance directly between Next calls moves the engine on; the
// arrangement reached that way is what the following Next returns.
func (p *Permutations[T]) Next() (arr []T, ok bool) {
	if p.exhausted {
		return nil, false
	}
	if p.yielded && !p.Advance() {
		return nil, false
	}
	p.yielded = true

	return p.Current(), true
}

// All returns a forward-only sequence of the remaining arrangements. Each
// element is a fresh slice owned by the caller.
//
// The sequence is not restartable: ranging over All a second time, or over a
// second call to All, continues from where the previous range stopped.
//
// Example:
//
//	p, _ := permute.New([]int{1, 1, 2}, nil)
//	for arr := range p.All() {
//	  fmt.Println(arr) // [1 1 2], [1 2 1], [2 1 1]
//	}
func (p *Permutations[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			arr, ok := p.Next()
			if !ok || !yield(arr) {
				return
			}
		}
	}
}

// Collect returns every distinct permutation of input, in lexicographic
// order of first-appearance ranks. Empty input yields a single empty
// arrangement.
//
// Collect materialises n!/Π(mᵢ!) slices; prefer New + All for large inputs.
func Collect[T comparable](input []T) [][]T {
	// Default options never fail.
	p, _ := New(input, nil)

	var out [][]T
	for arr := range p.All() {
		out = append(out, arr)
	}
	return out
}
