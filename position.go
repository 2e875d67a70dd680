package overlay

import "strconv"

const (
	// remBase is the root font size used to express offsets in rem.
	remBase = 16
	// scrollFitBottomPadding is kept free below a clipped source.
	scrollFitBottomPadding = 10
)

// Rem formats a pixel value as a rem length.
func Rem(px float64) string {
	return strconv.FormatFloat(px/remBase, 'f', -1, 64) + "rem"
}

// applyPlacement writes the chosen coordinates onto the source style and,
// when asked, clips its height to the space left below it.
func applyPlacement(source *Node, res PlacementResult, m Modifiers, window Size) {
	source.SetStyle("top", Rem(res.Y))
	source.SetStyle("left", Rem(res.X))
	if m.ScrollToFit {
		scrollToFit(source, res.Y, window)
	}
}

func scrollToFit(source *Node, top float64, window Size) {
	source.SetStyle("height", "auto")
	source.RemoveStyle("bottom")

	visible := window.Height - top - scrollFitBottomPadding
	if source.BoundingRect().Height < visible {
		source.RemoveStyle("overflow-y")
		return
	}
	source.SetStyle("overflow-y", "auto")
	source.SetStyle("bottom", Rem(scrollFitBottomPadding))
	source.SetStyle("height", Rem(visible))
}

// IsPositioned reports whether n is attached to a tree and carries a
// top offset, the state an open overlay source is left in.
func IsPositioned(n *Node) bool {
	return n != nil && n.Parent() != nil && n.Style("top") != ""
}
