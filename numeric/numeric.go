// Package numeric provides generic helpers for small numeric questions:
// primality, means, inclusive/exclusive range checks and decimal rounding.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsPrime reports whether v is a prime number. Values below 2 are not prime.
//
// Complexity: O(√v) trial divisions.
func IsPrime[I constraints.Integer](v I) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 || v%3 == 0 {
		return false
	}
	// Every prime above 3 is 6k±1. i*i is kept below v via i <= v/i.
	for i := I(5); i <= v/i; i += 6 {
		if v%i == 0 || v%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Mean returns the arithmetic mean of a and b as float64, without
// overflowing the operand type.
func Mean[N Number](a, b N) float64 {
	return (float64(a) + float64(b)) / 2
}

// IsBetween reports whether v lies in the closed interval bounded by a and b,
// given in either order.
func IsBetween[O constraints.Ordered](v, a, b O) bool {
	if a > b {
		a, b = b, a
	}
	return a <= v && v <= b
}

// IsBetweenExclusive is IsBetween for the open interval.
func IsBetweenExclusive[O constraints.Ordered](v, a, b O) bool {
	if a > b {
		a, b = b, a
	}
	return a < v && v < b
}

// Round rounds v half away from zero to the given number of decimal places.
// Negative places round to tens, hundreds, ….
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Max3 returns the largest of three values.
func Max3[O constraints.Ordered](a, b, c O) O {
	return max(a, b, c)
}
