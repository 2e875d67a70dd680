package placement

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlacement is returned by Parse for names that are not one of the
// twelve placements.
var ErrUnknownPlacement = errors.New("unknown placement")

// Placement is one of the twelve positions a source can take around its
// target. The first word names the side, the second the alignment.
type Placement int

const (
	// None is the zero value. It means "not evaluated yet".
	None Placement = iota

	BottomCenter
	BottomLeft
	BottomRight

	TopCenter
	TopLeft
	TopRight

	LeftCenter
	LeftTop
	LeftBottom

	RightCenter
	RightTop
	RightBottom
)

// DefaultFlipOrder is the canonical fallback sequence.
var DefaultFlipOrder = []Placement{
	BottomCenter,
	BottomLeft,
	BottomRight,
	TopCenter,
	TopLeft,
	TopRight,
	LeftCenter,
	LeftTop,
	LeftBottom,
	RightCenter,
	RightTop,
	RightBottom,
}

// TooltipFlipOrder skips the centred placements.
var TooltipFlipOrder = []Placement{
	BottomLeft,
	BottomRight,
	TopLeft,
	TopRight,
	LeftTop,
	LeftBottom,
	RightTop,
	RightBottom,
}

var names = map[Placement]string{
	BottomCenter: "bottom-center",
	BottomLeft:   "bottom-left",
	BottomRight:  "bottom-right",
	TopCenter:    "top-center",
	TopLeft:      "top-left",
	TopRight:     "top-right",
	LeftCenter:   "left-center",
	LeftTop:      "left-top",
	LeftBottom:   "left-bottom",
	RightCenter:  "right-center",
	RightTop:     "right-top",
	RightBottom:  "right-bottom",
}

// String returns the kebab-case name, e.g. "bottom-center".
func (p Placement) String() string {
	if name, ok := names[p]; ok {
		return name
	}
	if p == None {
		return "none"
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// Valid reports whether p is one of the twelve placements.
func (p Placement) Valid() bool {
	_, ok := names[p]
	return ok
}

// Side returns the first word of the placement ("bottom", "top", ...).
func (p Placement) Side() string {
	side, _, _ := strings.Cut(p.String(), "-")
	return side
}

// ClassName returns the modifier class for the placement, e.g.
// ClassName("popover") == "popover--bottom-center".
func (p Placement) ClassName(base string) string {
	if !p.Valid() {
		return ""
	}
	return base + "--" + p.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlacement, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Parse accepts kebab-case ("bottom-center"), camel-case ("bottomCenter")
// and snake/upper-case ("BOTTOM_CENTER") names.
func Parse(s string) (Placement, error) {
	key := normalize(s)
	for p, name := range names {
		if strings.ReplaceAll(name, "-", "") == key {
			return p, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
}

// ParseList parses every name in order.
func ParseList(list []string) ([]Placement, error) {
	out := make([]Placement, 0, len(list))
	for _, s := range list {
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
