package geometry

import "fmt"

// Line is the line through Start and End, stored in the implicit form
// A·x + B·y = C. Methods named *Segment restrict it to [Start, End].
type Line struct {
	Start, End Point
	A, B, C    float64
}

// NewLine returns the line through start and end.
func NewLine(start, end Point) Line {
	a := end.Y - start.Y
	b := start.X - end.X
	return Line{
		Start: start,
		End:   end,
		A:     a,
		B:     b,
		C:     a*start.X + b*start.Y,
	}
}

// Intersect returns the crossing point of the two infinite lines.
// ok is false for parallel (or coincident) lines.
func (l Line) Intersect(o Line) (pt Point, ok bool) {
	det := l.A*o.B - o.A*l.B
	if IsZero(det) {
		return Point{}, false
	}

	// Cramer's rule.
	return Point{
		X: (o.B*l.C - l.B*o.C) / det,
		Y: (l.A*o.C - o.A*l.C) / det,
	}, true
}

// IntersectSegment returns where the infinite line l crosses the segment o.
func (l Line) IntersectSegment(o Line) (Point, bool) {
	pt, ok := l.Intersect(o)
	if !ok || !pt.Within(o.Start, o.End) {
		return Point{}, false
	}
	return pt, true
}

// IntersectSegments returns where segment l crosses segment o.
func (l Line) IntersectSegments(o Line) (Point, bool) {
	pt, ok := l.IntersectSegment(o)
	if !ok || !pt.Within(l.Start, l.End) {
		return Point{}, false
	}
	return pt, true
}

// String formats the segment as "[start, end]".
func (l Line) String() string {
	return fmt.Sprintf("[%v, %v]", l.Start, l.End)
}
