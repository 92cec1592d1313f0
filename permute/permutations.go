package permute

// Permutations is a single-pass state machine over the distinct arrangements
// of a multiset.
//
// It owns two parallel working arrays: values (the caller's elements) and
// ranks (their first-appearance ranks). Every step applies the same swaps to
// both, so ranks[i] is always the rank of values[i]. Once Advance reports
// false the engine is exhausted for good.
//
// A Permutations must not be copied after first use or shared between
// goroutines: every Advance mutates the working arrays in place.
type Permutations[T any] struct {
	values    []T
	ranks     []int
	exhausted bool
	// yielded reports whether Next/All already emitted the current arrangement.
	yielded bool
}

// New builds an engine over input using hash-based rank assignment.
// The input slice is copied and never touched afterwards.
// A nil opts means DefaultOptions().
//
// Errors:
//   - ErrBadOption  — opts.Start is not a known StartOrder.
//   - ErrEmptyInput — input is empty and opts.RejectEmpty is set.
//
// Complexity: O(n) time and memory.
func New[T comparable](input []T, opts *Options) (*Permutations[T], error) {
	o, err := resolveOptions(opts, len(input))
	if err != nil {
		return nil, err
	}

	return newPermutations(input, AssignRanks(input), o), nil
}

// NewFunc is New for element types without a usable == (slices, maps,
// structs holding them) or with a custom notion of equality.
//
// Errors: ErrNilEqual in addition to those of New.
//
// Complexity: O(n·k) time for k distinct values, O(n) memory.
func NewFunc[T any](input []T, eq func(a, b T) bool, opts *Options) (*Permutations[T], error) {
	if eq == nil {
		return nil, ErrNilEqual
	}
	o, err := resolveOptions(opts, len(input))
	if err != nil {
		return nil, err
	}

	return newPermutations(input, AssignRanksFunc(input, eq), o), nil
}

func resolveOptions(opts *Options, n int) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return o, err
	}
	if n == 0 && o.RejectEmpty {
		return o, ErrEmptyInput
	}
	return o, nil
}

func newPermutations[T any](input []T, ranks []int, o Options) *Permutations[T] {
	p := &Permutations[T]{
		values: make([]T, len(input)),
		ranks:  ranks,
	}
	copy(p.values, input)

	if o.Start == SortedStart {
		p.sortByRank()
	}
	return p
}

// sortByRank stably buckets both arrays by rank (counting sort), producing
// the lexicographically smallest arrangement.
//
// Complexity: O(n + k) time, O(n + k) space.
func (p *Permutations[T]) sortByRank() {
	counts := Multiplicities(p.ranks)

	// next[r] is the slot the next value of rank r goes to.
	next := make([]int, len(counts))
	var sum int
	for r, c := range counts {
		next[r] = sum
		sum += c
	}

	values := make([]T, len(p.values))
	ranks := make([]int, len(p.ranks))
	for i, r := range p.ranks {
		values[next[r]] = p.values[i]
		ranks[next[r]] = r
		next[r]++
	}
	p.values, p.ranks = values, ranks
}

// Len returns the number of elements in each arrangement.
func (p *Permutations[T]) Len() int {
	return len(p.values)
}

// Exhausted reports whether the engine has reached its terminal state.
func (p *Permutations[T]) Exhausted() bool {
	return p.exhausted
}

// Current returns a copy of the current arrangement. The engine rewrites its
// working array on every Advance; the returned slice is never affected.
//
// Complexity: O(n).
func (p *Permutations[T]) Current() []T {
	out := make([]T, len(p.values))
	copy(out, p.values)
	return out
}

// Ranks returns a copy of the rank sequence of the current arrangement.
func (p *Permutations[T]) Ranks() []int {
	out := make([]int, len(p.ranks))
	copy(out, p.ranks)
	return out
}

// Advance steps to the lexicographically next rank arrangement.
//
// Algorithm:
//  1. Find the pivot: the largest i with ranks[i] < ranks[i+1].
//     None ⇒ the current arrangement is the last one; mark exhausted.
//  2. Find the largest j > i with ranks[j] > ranks[i].
//  3. Swap i and j in both arrays.
//  4. Reverse the suffix i+1..n-1 in both arrays. The suffix was
//     non-increasing, so this yields the smallest arrangement after the swap.
//
// Returns false (without mutating anything) once exhausted.
//
// Complexity: O(n) time, O(1) space.
func (p *Permutations[T]) Advance() bool {
	if p.exhausted {
		return false
	}

	var (
		n = len(p.ranks)
		i = n - 2
		j = n - 1
	)
	for i >= 0 && p.ranks[i] >= p.ranks[i+1] {
		i--
	}
	if i < 0 {
		p.exhausted = true
		return false
	}

	// The pivot guarantees ranks[i+1] > ranks[i], so j stops at i+1 at worst.
	for p.ranks[j] <= p.ranks[i] {
		j--
	}

	p.swap(i, j)
	p.reverseFrom(i + 1)
	p.yielded = false

	return true
}

// swap exchanges positions i and j in both working arrays.
func (p *Permutations[T]) swap(i, j int) {
	p.values[i], p.values[j] = p.values[j], p.values[i]
	p.ranks[i], p.ranks[j] = p.ranks[j], p.ranks[i]
}

// reverseFrom reverses both working arrays in place on [from, n).
func (p *Permutations[T]) reverseFrom(from int) {
	for l, r := from, len(p.ranks)-1; l < r; l, r = l+1, r-1 {
		p.swap(l, r)
	}
}
