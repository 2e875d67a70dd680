package placement

import "github.com/grindlemire/go-overlay/internal/geom"

// DefaultViewportPadding is the margin kept between an overlay and the window
// edges when no other value is configured.
const DefaultViewportPadding = 5

// Modifiers configures a single positioning pass.
type Modifiers struct {
	// OnCursor anchors the source at Cursor instead of the target element.
	OnCursor bool
	// FlipOrder is tried in sequence when the default placement overflows.
	// A nil slice means DefaultFlipOrder; an empty slice disables flipping.
	FlipOrder []Placement
	// DefaultPlacement is tried first and forced when nothing fits.
	DefaultPlacement Placement
	// Cursor is the pointer position used when OnCursor is set.
	Cursor *geom.Point
	// Padding is the gap between target and source.
	Padding float64
	// PaddingFunc, when set, wins over Padding and is called once per pass.
	PaddingFunc func() float64
	// ViewportPadding shrinks the window on every side.
	ViewportPadding float64
	// ScrollToFit clips the source height to the visible area below it.
	ScrollToFit bool
}

// Option overrides one field of the default Modifiers.
type Option func(*Modifiers)

// Defaults returns the modifiers every pass starts from.
func Defaults() Modifiers {
	return Modifiers{
		FlipOrder:        DefaultFlipOrder,
		DefaultPlacement: BottomCenter,
		ViewportPadding:  DefaultViewportPadding,
	}
}

// New returns Defaults with opts applied in order.
func New(opts ...Option) Modifiers {
	m := Defaults()
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// With returns a copy of m with opts applied.
func (m Modifiers) With(opts ...Option) Modifiers {
	if m.FlipOrder != nil {
		m.FlipOrder = append([]Placement(nil), m.FlipOrder...)
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ResolvePadding returns the effective padding for this pass.
func (m Modifiers) ResolvePadding() float64 {
	if m.PaddingFunc != nil {
		return m.PaddingFunc()
	}
	return m.Padding
}

// WithOnCursor anchors the overlay at the cursor.
func WithOnCursor(on bool) Option {
	return func(m *Modifiers) {
		m.OnCursor = on
	}
}

// WithFlipOrder sets the fallback sequence.
func WithFlipOrder(order ...Placement) Option {
	return func(m *Modifiers) {
		m.FlipOrder = append([]Placement{}, order...)
	}
}

// WithDefaultPlacement sets the placement tried first.
func WithDefaultPlacement(p Placement) Option {
	return func(m *Modifiers) {
		m.DefaultPlacement = p
	}
}

// WithCursor sets the cursor position used in cursor mode.
func WithCursor(x, y float64) Option {
	return func(m *Modifiers) {
		m.Cursor = &geom.Point{X: x, Y: y}
	}
}

// WithPadding sets a fixed gap between target and source.
func WithPadding(p float64) Option {
	return func(m *Modifiers) {
		m.Padding = p
		m.PaddingFunc = nil
	}
}

// WithPaddingFunc sets a padding producer evaluated on every pass.
func WithPaddingFunc(fn func() float64) Option {
	return func(m *Modifiers) {
		m.PaddingFunc = fn
	}
}

// WithViewportPadding sets the window margin.
func WithViewportPadding(p float64) Option {
	return func(m *Modifiers) {
		m.ViewportPadding = p
	}
}

// WithScrollToFit enables height clipping with internal scrolling.
func WithScrollToFit(on bool) Option {
	return func(m *Modifiers) {
		m.ScrollToFit = on
	}
}
