package permute

import (
	"math"
	"math/big"

	"gonum.org/v1/gonum/stat/combin"
)

// logMaxInt bounds the log-magnitude of any intermediate value combin.Binomial
// may produce before the exact big.Int path takes over.
var (
	logMaxInt = math.Log(float64(math.MaxInt))
	bigMaxInt = big.NewInt(math.MaxInt)
)

// Count returns the number of distinct permutations of values, i.e. the
// multinomial coefficient n! / (m₀!·m₁!·…) over the multiplicities mᵢ.
// Empty input counts as one (empty) permutation.
//
// It is the exact number of arrangements an engine built with SortedStart
// will produce.
//
// Errors: ErrOverflow if the result does not fit in an int.
//
// Complexity: O(n) time.
func Count[T comparable](values []T) (int, error) {
	return multinomial(Multiplicities(AssignRanks(values)))
}

// CountFunc is Count for values compared with eq.
func CountFunc[T any](values []T, eq func(a, b T) bool) (int, error) {
	if eq == nil {
		return 0, ErrNilEqual
	}
	return multinomial(Multiplicities(AssignRanksFunc(values, eq)))
}

// multinomial computes (Σmᵢ)! / Π(mᵢ!) as Π C(remaining, mᵢ), which keeps
// every intermediate product no larger than the final result.
func multinomial(counts []int) (int, error) {
	var remaining int
	for _, m := range counts {
		remaining += m
	}

	total := 1
	for _, m := range counts {
		b, ok := binomial(remaining, m)
		if !ok || total > math.MaxInt/b {
			return 0, ErrOverflow
		}
		total *= b
		remaining -= m
	}

	return total, nil
}

// binomial returns C(n, k) and false if it does not fit in an int.
//
// combin.Binomial works on k' = min(k, n-k) and its running product peaks
// below C(n, k')·k'. Inputs where that could overflow are recomputed exactly.
func binomial(n, k int) (int, bool) {
	kk := min(k, n-k)
	if combin.LogGeneralizedBinomial(float64(n), float64(kk))+math.Log(float64(kk+1)) < logMaxInt {
		return combin.Binomial(n, k), true
	}

	exact := new(big.Int).Binomial(int64(n), int64(k))
	if exact.Cmp(bigMaxInt) > 0 {
		return 0, false
	}
	return int(exact.Int64()), true
}
