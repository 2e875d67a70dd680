package overlay

import "testing"

func TestCenterController_OpenClose(t *testing.T) {
	doc := NewDocument(800, 600)
	c := NewCenterController(doc)
	el := NewNode("div")

	c.Open(el)

	center := el.Parent()
	if center == nil || !center.HasClass(BackdropCenterClass) {
		t.Fatal("element not inside a centering layer")
	}
	show := center.Parent()
	if show == nil || !show.HasClass(BackdropShowClass) {
		t.Fatal("centering layer not inside a backdrop layer")
	}
	container, ok := doc.Containers().Lookup(BackdropContainer)
	if !ok || show.Parent() != container || container.Parent() != doc.Body() {
		t.Fatal("backdrop layer not in the backdrop container under body")
	}
	if !c.IsOpen(el) {
		t.Error("IsOpen() = false after open")
	}

	c.Close(el)

	if el.Parent() != nil {
		t.Error("element still attached after close")
	}
	if _, ok := doc.Containers().Lookup(BackdropContainer); ok {
		t.Error("empty backdrop container kept")
	}
	if c.IsOpen(el) {
		t.Error("IsOpen() = true after close")
	}
}

func TestCenterController_StackedModals(t *testing.T) {
	doc := NewDocument(800, 600)
	c := NewCenterController(doc)
	first, second := NewNode("div"), NewNode("div")

	c.Open(first)
	c.Open(second)
	c.Close(second)

	container, ok := doc.Containers().Lookup(BackdropContainer)
	if !ok {
		t.Fatal("backdrop container removed while a modal is still open")
	}
	if len(container.Children()) != 1 {
		t.Errorf("backdrop layers = %d, want 1", len(container.Children()))
	}
	if !c.IsOpen(first) {
		t.Error("first modal closed by closing the second")
	}
}

func TestCenterController_CloseOutsideBackdropIsNoop(t *testing.T) {
	doc := NewDocument(800, 600)
	c := NewCenterController(doc)
	parent := NewNode("div")
	el := NewNode("div")
	parent.AppendChild(el)
	doc.Body().AppendChild(parent)

	c.Close(el)
	c.Close(nil)
	c.Open(nil)

	if el.Parent() != parent || parent.Parent() != doc.Body() {
		t.Error("close outside a backdrop changed the tree")
	}
}
