package placement

import "github.com/grindlemire/go-overlay/internal/geom"

// Candidate is one placement tried during a pass.
type Candidate struct {
	Placement Placement
	X, Y      float64
	Fits      bool
}

// Result is the outcome of one evaluation pass.
type Result struct {
	Placement Placement
	X, Y      float64
	// Overflow is set when no placement fitted and the default was forced.
	Overflow bool
	// Tried lists every candidate in the order it was evaluated.
	Tried []Candidate
}

// Rect returns the source rectangle at the chosen coordinates.
func (r Result) Rect(source geom.Size) geom.Rect {
	return geom.NewRect(r.X, r.Y, source.Width, source.Height)
}

// Coordinates returns the top-left corner of source when placed at p
// around target with the given gap. ok is false for unknown placements.
//
// Right-* placements put the source on the target's left side and left-*
// placements on its right side: the name is the side of the source the
// target sits on.
func Coordinates(p Placement, target geom.Rect, source geom.Size, padding float64) (x, y float64, ok bool) {
	t, s := target, source

	centerX := t.Left() + t.Width/2 - s.Width/2
	centerY := t.Top() + t.Height/2 - s.Height/2
	below := t.Top() + t.Height + padding
	above := t.Top() - s.Height - padding
	leftOf := t.Left() - (s.Width + padding)
	rightOf := t.Left() + (t.Width + padding)
	alignRight := t.Left() + t.Width - s.Width
	alignBottom := t.Top() + t.Height - s.Height

	switch p {
	case BottomCenter:
		return centerX, below, true
	case BottomLeft:
		return t.Left(), below, true
	case BottomRight:
		return alignRight, below, true
	case TopCenter:
		return centerX, above, true
	case TopLeft:
		return t.Left(), above, true
	case TopRight:
		return alignRight, above, true
	case RightTop:
		return leftOf, t.Top(), true
	case RightCenter:
		return leftOf, centerY, true
	case RightBottom:
		return leftOf, alignBottom, true
	case LeftTop:
		return rightOf, t.Top(), true
	case LeftCenter:
		return rightOf, centerY, true
	case LeftBottom:
		return rightOf, alignBottom, true
	default:
		return 0, 0, false
	}
}

// Evaluate picks the placement for source around target inside a window of
// the given size.
//
// The default placement wins whenever it fits, even if later entries of the
// flip order would also fit. Otherwise the first fitting flip entry wins. If
// nothing fits, the default placement is returned with Overflow set.
func Evaluate(m Modifiers, source, target geom.Rect, window geom.Size) Result {
	def := m.DefaultPlacement
	if !def.Valid() {
		def = BottomCenter
	}
	order := m.FlipOrder
	if order == nil {
		order = DefaultFlipOrder
	}
	if m.OnCursor && m.Cursor != nil {
		target = m.Cursor.Rect()
	}

	padding := m.ResolvePadding()
	bounds := geom.Viewport(window.Width, window.Height, m.ViewportPadding)
	size := source.Size()

	var res Result
	try := func(p Placement) Candidate {
		c := Candidate{Placement: p}
		x, y, ok := Coordinates(p, target, size, padding)
		if ok {
			c.X, c.Y = x, y
			c.Fits = bounds.Fits(geom.NewRect(x, y, size.Width, size.Height))
		}
		res.Tried = append(res.Tried, c)
		return c
	}

	first := try(def)
	if first.Fits {
		res.Placement, res.X, res.Y = first.Placement, first.X, first.Y
		return res
	}
	for _, p := range order {
		if c := try(p); c.Fits {
			res.Placement, res.X, res.Y = c.Placement, c.X, c.Y
			return res
		}
	}

	res.Placement, res.X, res.Y = first.Placement, first.X, first.Y
	res.Overflow = true
	return res
}
