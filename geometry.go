// geometry.go re-exports geometry and placement types from internal packages.
// Any changes to internal/geom or internal/placement types must be mirrored here.
package overlay

import (
	"github.com/grindlemire/go-overlay/internal/geom"
	"github.com/grindlemire/go-overlay/internal/placement"
)

// Rect represents an axis-aligned rectangle in viewport coordinates.
type Rect = geom.Rect

// Point represents an x/y coordinate.
type Point = geom.Point

// Size represents a width/height pair.
type Size = geom.Size

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// Boundary is the visible window rectangle reduced by a padding.
type Boundary = geom.Boundary

// Placement is one of the twelve positions around a target.
type Placement = placement.Placement

const (
	PlacementNone = placement.None

	BottomCenter = placement.BottomCenter
	BottomLeft   = placement.BottomLeft
	BottomRight  = placement.BottomRight
	TopCenter    = placement.TopCenter
	TopLeft      = placement.TopLeft
	TopRight     = placement.TopRight
	LeftCenter   = placement.LeftCenter
	LeftTop      = placement.LeftTop
	LeftBottom   = placement.LeftBottom
	RightCenter  = placement.RightCenter
	RightTop     = placement.RightTop
	RightBottom  = placement.RightBottom
)

// ErrUnknownPlacement is returned when a placement name cannot be parsed.
var ErrUnknownPlacement = placement.ErrUnknownPlacement

// Modifiers configures one positioning pass.
type Modifiers = placement.Modifiers

// ModifierOption overrides one field of the default Modifiers.
type ModifierOption = placement.Option

// PlacementResult is the outcome of one evaluation pass.
type PlacementResult = placement.Result

// Candidate is one placement tried during an evaluation pass.
type Candidate = placement.Candidate

// DefaultFlipOrder returns a copy of the canonical 12-entry fallback order.
func DefaultFlipOrder() []Placement {
	return append([]Placement(nil), placement.DefaultFlipOrder...)
}

// TooltipFlipOrder returns a copy of the 8-entry edge-aligned fallback order.
func TooltipFlipOrder() []Placement {
	return append([]Placement(nil), placement.TooltipFlipOrder...)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// ViewportBoundary returns the window rectangle shrunk by padding on each side.
func ViewportBoundary(width, height, padding float64) Boundary {
	return geom.Viewport(width, height, padding)
}

// ParsePlacement parses a placement name such as "bottom-center" or "leftTop".
func ParsePlacement(s string) (Placement, error) {
	return placement.Parse(s)
}

// ParsePlacements parses a list of placement names.
func ParsePlacements(list []string) ([]Placement, error) {
	return placement.ParseList(list)
}

// NewModifiers returns the default modifiers with opts applied.
func NewModifiers(opts ...ModifierOption) Modifiers {
	return placement.New(opts...)
}

// Evaluate picks a placement for source around target inside a window of
// the given size. It never fails: when nothing fits, the default placement
// is returned with Overflow set.
func Evaluate(m Modifiers, source, target Rect, window Size) PlacementResult {
	return placement.Evaluate(m, source, target, window)
}

// DefaultViewportPadding is the window margin used when none is configured.
const DefaultViewportPadding = placement.DefaultViewportPadding

// Modifier options, re-exported for callers building Modifiers.
var (
	OnCursor         = placement.WithOnCursor
	FlipOrder        = placement.WithFlipOrder
	DefaultPlacement = placement.WithDefaultPlacement
	CursorAt         = placement.WithCursor
	Padding          = placement.WithPadding
	PaddingFunc      = placement.WithPaddingFunc
	ViewportPadding  = placement.WithViewportPadding
	ScrollToFit      = placement.WithScrollToFit
)
