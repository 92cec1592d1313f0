package geometry

import "gonum.org/v1/gonum/floats/scalar"

const (
	// MachineEpsilon is 2⁻⁵², the gap between 1 and the next float64.
	MachineEpsilon = 0x1p-52

	// Tolerance is the default absolute tolerance for coordinate comparisons
	// that follow arithmetic (intersections, bounding-box tests).
	Tolerance = 1e-9
)

// IsClose reports whether a and b differ by at most tol. Infinities are
// close only to themselves; NaN is close to nothing.
func IsClose(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// IsZero reports whether v is within MachineEpsilon of zero.
func IsZero(v float64) bool {
	return IsClose(v, 0, MachineEpsilon)
}

// lessOrClose reports a < b or a ≈ b within Tolerance.
func lessOrClose(a, b float64) bool {
	return a < b || IsClose(a, b, Tolerance)
}
