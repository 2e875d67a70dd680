package overlay

import "slices"

// AppendChild appends children to this node. A child that already has a
// parent is moved, not copied. Nodes that contain n are skipped.
func (n *Node) AppendChild(children ...*Node) {
	for _, child := range children {
		if child == nil || child.Contains(n) {
			continue
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// RemoveChild removes a child from this node, keeping sibling order.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// Remove detaches the node from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil if this is a root or detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Root returns the top-most ancestor (the node itself when detached).
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// ancestry returns the node followed by its ancestors up to the root.
func (n *Node) ancestry() []*Node {
	var path []*Node
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	return path
}
