package geometry

import (
	"fmt"
	"math"
)

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String formats p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// DistanceSquared returns the squared Euclidean distance between p and o.
// It orders points by distance without a square root.
func (p Point) DistanceSquared(o Point) float64 {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Polar returns the point dist away from p in direction a, measured from the
// positive x axis towards positive y.
//
// Example:
//
//	Pt(1, 1).Polar(FromDegrees(90), 2) // (1, 3)
func (p Point) Polar(a Angle, dist float64) Point {
	sin, cos := math.Sincos(a.Radians())
	return Point{X: p.X + dist*cos, Y: p.Y + dist*sin}
}

// Within reports whether p lies inside the axis-aligned bounding box spanned
// by a and b, edges included (up to Tolerance).
func (p Point) Within(a, b Point) bool {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	return lessOrClose(minX, p.X) && lessOrClose(p.X, maxX) &&
		lessOrClose(minY, p.Y) && lessOrClose(p.Y, maxY)
}
