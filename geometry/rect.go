package geometry

// Rect is an axis-aligned rectangle with its origin at the top-left corner
// (y grows downwards).
type Rect struct {
	X, Y float64
	W, H float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CenterLeft returns the midpoint of the left edge.
func (r Rect) CenterLeft() Point { return Point{X: r.Left(), Y: r.Y + r.H/2} }

// CenterRight returns the midpoint of the right edge.
func (r Rect) CenterRight() Point { return Point{X: r.Right(), Y: r.Y + r.H/2} }

// CenterTop returns the midpoint of the top edge.
func (r Rect) CenterTop() Point { return Point{X: r.X + r.W/2, Y: r.Top()} }

// CenterBottom returns the midpoint of the bottom edge.
func (r Rect) CenterBottom() Point { return Point{X: r.X + r.W/2, Y: r.Bottom()} }

// Edges returns the four sides in counter-clockwise screen order starting
// with the left edge: left, bottom, right, top.
func (r Rect) Edges() [4]Line {
	tl := Pt(r.Left(), r.Top())
	bl := Pt(r.Left(), r.Bottom())
	br := Pt(r.Right(), r.Bottom())
	tr := Pt(r.Right(), r.Top())
	return [4]Line{
		NewLine(tl, bl),
		NewLine(bl, br),
		NewLine(br, tr),
		NewLine(tr, tl),
	}
}
