package geom

// Boundary is the visible window rectangle an overlay must stay inside.
type Boundary struct {
	Top, Left, Right, Bottom float64
}

// Viewport returns the boundary of a width x height window shrunk by
// padding on every side. It is recomputed on every positioning pass.
func Viewport(width, height, padding float64) Boundary {
	return Boundary{
		Top:    padding,
		Left:   padding,
		Right:  width - padding,
		Bottom: height - padding,
	}
}

// Width returns the horizontal extent of the boundary.
func (b Boundary) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the boundary.
func (b Boundary) Height() float64 {
	return b.Bottom - b.Top
}

// Fits reports whether all four edges of r lie within the boundary.
// Bounds are non-strict: an edge touching the boundary still fits.
func (b Boundary) Fits(r Rect) bool {
	return r.Top() >= b.Top && r.Top() <= b.Bottom &&
		r.Bottom() <= b.Bottom && r.Bottom() >= b.Top &&
		r.Left() >= b.Left && r.Left() <= b.Right &&
		r.Right() <= b.Right && r.Right() >= b.Left
}
