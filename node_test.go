package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNode_AppendChildMoves(t *testing.T) {
	a := NewNode("div")
	b := NewNode("div")
	child := NewNode("span")

	a.AppendChild(child)
	b.AppendChild(child)

	if len(a.Children()) != 0 {
		t.Errorf("old parent still has %d children", len(a.Children()))
	}
	if child.Parent() != b {
		t.Error("child parent not updated")
	}
}

func TestNode_RemoveChildKeepsOrder(t *testing.T) {
	root := NewNode("div")
	c1, c2, c3 := NewNode("a"), NewNode("b"), NewNode("i")
	root.AppendChild(c1, c2, c3)

	if !root.RemoveChild(c2) {
		t.Fatal("RemoveChild() = false")
	}
	if root.RemoveChild(c2) {
		t.Error("removing twice should report false")
	}

	var tags []string
	for _, c := range root.Children() {
		tags = append(tags, c.Tag())
	}
	if diff := cmp.Diff([]string{"a", "i"}, tags); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if c2.Parent() != nil {
		t.Error("removed child still has a parent")
	}
}

func TestNode_AppendSelfIgnored(t *testing.T) {
	n := NewNode("div")
	n.AppendChild(n, nil)
	if len(n.Children()) != 0 {
		t.Error("node appended itself")
	}
}

func TestNode_AppendAncestorIgnored(t *testing.T) {
	root := NewNode("div")
	mid := NewNode("div")
	leaf := NewNode("span")
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	leaf.AppendChild(root)

	if len(leaf.Children()) != 0 {
		t.Error("ancestor appended under its descendant")
	}
	if root.Parent() != nil || leaf.Root() != root {
		t.Error("tree changed after a rejected append")
	}
}

func TestNode_Contains(t *testing.T) {
	root := NewNode("div")
	mid := NewNode("div")
	leaf := NewNode("span")
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	if !root.Contains(leaf) || !root.Contains(root) {
		t.Error("root should contain itself and the leaf")
	}
	if leaf.Contains(root) {
		t.Error("leaf should not contain root")
	}
	if leaf.Root() != root {
		t.Error("Root() did not reach the top")
	}
}

func TestNode_ClassList(t *testing.T) {
	n := NewNode("div", WithClass("a", "b"))
	n.AddClass("b", "c", "")
	n.RemoveClass("a")

	if diff := cmp.Diff([]string{"b", "c"}, n.Classes()); diff != "" {
		t.Errorf("classes mismatch (-want +got):\n%s", diff)
	}
	if got := n.ClassName(); got != "b c" {
		t.Errorf("ClassName() = %q", got)
	}
	if !n.HasClass("c") || n.HasClass("a") {
		t.Error("HasClass reported wrong membership")
	}
}

func TestNode_Style(t *testing.T) {
	n := NewNode("div", WithStyle("display", "none"))
	n.SetStyle("top", "1rem")
	n.SetStyle("left", "")

	if got := n.StyleString(); got != "display: none; top: 1rem" {
		t.Errorf("StyleString() = %q", got)
	}
	n.RemoveStyle("display")
	if n.Style("display") != "" {
		t.Error("display not removed")
	}
	n.ClearStyle()
	if len(n.StyleMap()) != 0 {
		t.Error("ClearStyle left properties behind")
	}
}

func TestNode_BoundingRect(t *testing.T) {
	type tc struct {
		node *Node
		want Rect
	}

	hostRect := NewRect(1, 2, 3, 4)
	first := NewRect(10, 10, 40, 20)
	second := NewRect(50, 50, 10, 10)

	tests := map[string]tc{
		"plain node": {
			node: NewNode("div", WithBounds(hostRect)),
			want: hostRect,
		},
		"shadow child wins": {
			node: NewNode("x-popover", WithBounds(hostRect), WithShadow(
				NewNode("div", WithBounds(first)),
			)),
			want: first,
		},
		"style elements skipped": {
			node: NewNode("x-popover", WithBounds(hostRect), WithShadow(
				NewNode("style"),
				NewNode("div", WithBounds(first)),
				NewNode("div", WithBounds(second)),
			)),
			want: first,
		},
		"only style in shadow": {
			node: NewNode("x-popover", WithBounds(hostRect), WithShadow(NewNode("STYLE"))),
			want: hostRect,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.node.BoundingRect()); diff != "" {
				t.Errorf("rect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
