// Package geometry holds small planar helpers: normalised integer angles,
// degree/radian conversion, points, infinite lines and segments built from
// two points, axis-aligned rectangles and tolerance-aware float comparison.
//
// Coordinates are float64 and the y axis points down (screen space) for the
// Rect helpers; everything else is orientation-agnostic.
package geometry
