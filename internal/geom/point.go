package geom

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Rect returns a zero-size rectangle located at the point.
// Cursor-anchored overlays use it in place of a target element.
func (p Point) Rect() Rect {
	return Rect{X: p.X, Y: p.Y}
}
