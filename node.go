package overlay

import (
	"slices"
	"sort"
	"strings"
)

// Node is an element of the headless document tree overlays operate on.
// Hosts mirror their real tree into Nodes and keep BoundingRect current.
type Node struct {
	eventTarget

	// Tree structure (single source of truth)
	children []*Node
	parent   *Node

	tag     string
	classes []string
	style   map[string]string

	// Shadow tree children; geometry prefers them over the host rectangle.
	shadow []*Node

	// Last committed layout, in viewport coordinates.
	bounds Rect
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// WithClass adds CSS classes to the node.
func WithClass(names ...string) NodeOption {
	return func(n *Node) {
		n.AddClass(names...)
	}
}

// WithBounds sets the node's bounding rectangle.
func WithBounds(r Rect) NodeOption {
	return func(n *Node) {
		n.bounds = r
	}
}

// WithStyle sets one inline style property.
func WithStyle(property, value string) NodeOption {
	return func(n *Node) {
		n.SetStyle(property, value)
	}
}

// WithShadow attaches shadow tree children to the node.
func WithShadow(children ...*Node) NodeOption {
	return func(n *Node) {
		n.shadow = append(n.shadow, children...)
	}
}

// WithChildren appends children to the node.
func WithChildren(children ...*Node) NodeOption {
	return func(n *Node) {
		n.AppendChild(children...)
	}
}

// NewNode creates a detached node with the given tag name.
func NewNode(tag string, opts ...NodeOption) *Node {
	n := &Node{
		tag:   strings.ToLower(tag),
		style: make(map[string]string),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Tag returns the lower-case tag name.
func (n *Node) Tag() string {
	return n.tag
}

// --- Class list ---

// AddClass adds each name that is not already present.
func (n *Node) AddClass(names ...string) {
	for _, name := range names {
		if name == "" || slices.Contains(n.classes, name) {
			continue
		}
		n.classes = append(n.classes, name)
	}
}

// RemoveClass removes each name if present.
func (n *Node) RemoveClass(names ...string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

// RemoveClassFunc removes every class for which match returns true.
func (n *Node) RemoveClassFunc(match func(string) bool) {
	n.classes = slices.DeleteFunc(n.classes, match)
}

// HasClass reports whether the class list contains name.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.classes, name)
}

// Classes returns a copy of the class list in insertion order.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// ClassName returns the class list joined by spaces.
func (n *Node) ClassName() string {
	return strings.Join(n.classes, " ")
}

// --- Inline style ---

// SetStyle sets an inline style property. An empty value removes it.
func (n *Node) SetStyle(property, value string) {
	if value == "" {
		delete(n.style, property)
		return
	}
	n.style[property] = value
}

// Style returns the inline value of property, or "" when unset.
func (n *Node) Style(property string) string {
	return n.style[property]
}

// RemoveStyle removes inline properties.
func (n *Node) RemoveStyle(properties ...string) {
	for _, p := range properties {
		delete(n.style, p)
	}
}

// ClearStyle removes the whole inline style attribute.
func (n *Node) ClearStyle() {
	clear(n.style)
}

// StyleMap returns a copy of the inline style.
func (n *Node) StyleMap() map[string]string {
	out := make(map[string]string, len(n.style))
	for k, v := range n.style {
		out[k] = v
	}
	return out
}

// StyleString renders the inline style as "k: v; k: v" in key order.
func (n *Node) StyleString() string {
	keys := make([]string, 0, len(n.style))
	for k := range n.style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + n.style[k]
	}
	return strings.Join(parts, "; ")
}

// --- Geometry ---

// SetBounds records the node's committed layout rectangle.
func (n *Node) SetBounds(r Rect) {
	n.bounds = r
}

// BoundingRect returns the node's rectangle. When the node has a shadow
// tree, the first shadow child that is not a <style> element is measured
// instead of the host.
func (n *Node) BoundingRect() Rect {
	for _, child := range n.shadow {
		if child.tag != "style" {
			return child.BoundingRect()
		}
	}
	return n.bounds
}

// ShadowChildren returns the shadow tree children.
func (n *Node) ShadowChildren() []*Node {
	return n.shadow
}
