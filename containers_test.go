package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type namedHost string

func (namedHost) Close() {}

func TestContainers_LazyCreateAndRelease(t *testing.T) {
	doc := NewDocument(100, 100)
	reg := doc.Containers()
	n := NewNode("div")

	if _, ok := reg.Lookup(PopoverContainer); ok {
		t.Fatal("container exists before use")
	}

	container, err := reg.Attach(PopoverContainer, n, nil)
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	outer, ok := reg.Lookup(OverlayContainer)
	if !ok {
		t.Fatal("parent container not created")
	}
	if container.Parent() != outer || outer.Parent() != doc.Body() {
		t.Error("containers not nested under body")
	}
	if !container.HasClass(PopoverContainer) {
		t.Errorf("container classes = %v", container.Classes())
	}
	if id, ok := reg.ContainerOf(n); !ok || id != PopoverContainer {
		t.Errorf("ContainerOf() = %q, %v", id, ok)
	}

	if !reg.Detach(n) {
		t.Fatal("Detach() = false")
	}
	if _, ok := reg.Lookup(PopoverContainer); ok {
		t.Error("empty popover container kept")
	}
	if _, ok := reg.Lookup(OverlayContainer); ok {
		t.Error("emptied parent container kept")
	}
	if len(doc.Body().Children()) != 0 {
		t.Errorf("body has %d children, want 0", len(doc.Body().Children()))
	}
	if reg.Detach(n) {
		t.Error("second Detach() = true")
	}
}

func TestContainers_ParentKeptWhileOtherChildren(t *testing.T) {
	doc := NewDocument(100, 100)
	reg := doc.Containers()
	direct := NewNode("div")
	nested := NewNode("div")

	reg.Attach(OverlayContainer, direct, nil)
	reg.Attach(PopoverContainer, nested, nil)
	reg.Detach(nested)

	if _, ok := reg.Lookup(OverlayContainer); !ok {
		t.Error("overlay container removed while it still holds a child")
	}
	if _, ok := reg.Lookup(PopoverContainer); ok {
		t.Error("popover container kept after last child left")
	}
}

func TestContainers_Owners(t *testing.T) {
	doc := NewDocument(100, 100)
	reg := doc.Containers()
	a, b, c := NewNode("a"), NewNode("b"), NewNode("i")

	reg.Attach(OverlayContainer, a, namedHost("a"))
	reg.Attach(OverlayContainer, b, nil)
	reg.Attach(OverlayContainer, c, namedHost("c"))

	want := []Host{namedHost("a"), namedHost("c")}
	if diff := cmp.Diff(want, reg.Owners(OverlayContainer)); diff != "" {
		t.Errorf("owners mismatch (-want +got):\n%s", diff)
	}
	if got := reg.Owners("missing"); got != nil {
		t.Errorf("Owners(missing) = %v", got)
	}
}

func TestContainers_AttachMovesBetweenContainers(t *testing.T) {
	doc := NewDocument(100, 100)
	reg := doc.Containers()
	n := NewNode("div")

	reg.Attach(BackdropContainer, n, nil)
	reg.Attach(OverlayContainer, n, nil)

	if _, ok := reg.Lookup(BackdropContainer); ok {
		t.Error("backdrop container kept after its only child moved")
	}
	if id, _ := reg.ContainerOf(n); id != OverlayContainer {
		t.Errorf("ContainerOf() = %q", id)
	}
}

func TestContainers_Errors(t *testing.T) {
	type tc struct {
		setup func(r *Containers)
		id    string
		node  *Node
	}

	tests := map[string]tc{
		"nil node": {
			id: OverlayContainer,
		},
		"parent cycle": {
			setup: func(r *Containers) {
				r.Define("a", "b")
				r.Define("b", "a")
			},
			id:   "a",
			node: NewNode("div"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reg := NewDocument(100, 100).Containers()
			if tt.setup != nil {
				tt.setup(reg)
			}
			if _, err := reg.Attach(tt.id, tt.node, nil); err == nil {
				t.Error("Attach() error = nil")
			}
		})
	}
}

func TestContainers_UndefinedIDUnderBody(t *testing.T) {
	doc := NewDocument(100, 100)
	reg := doc.Containers()
	n := NewNode("div")

	container, err := reg.Attach("custom", n, nil)
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if container.Parent() != doc.Body() {
		t.Error("undefined container not created under body")
	}
}
