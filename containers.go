package overlay

import (
	"fmt"

	"github.com/grindlemire/go-overlay/internal/debug"
)

// Host is the component that owns an overlay source. Sibling overlays in
// the same container are closed through their host. Implementations must
// be comparable (typically a pointer).
type Host interface {
	Close()
}

// Containers is the registry of shared overlay containers. A container
// is created on first use, appended to its parent container (or the
// body), and removed again once its last child leaves.
type Containers struct {
	doc *Document

	parents map[string]string
	nodes   map[string]*Node
	owners  map[*Node]Host
	members map[*Node]string
}

func newContainers(doc *Document) *Containers {
	c := &Containers{
		doc:     doc,
		parents: make(map[string]string),
		nodes:   make(map[string]*Node),
		owners:  make(map[*Node]Host),
		members: make(map[*Node]string),
	}
	c.Define(OverlayContainer, "")
	c.Define(PopoverContainer, OverlayContainer)
	c.Define(BackdropContainer, "")
	return c
}

// Define declares a container nested in parent. An empty parent means the
// document body. Redefining an existing id changes where it is created
// next time.
func (c *Containers) Define(id, parent string) {
	c.parents[id] = parent
}

// Lookup returns the live node for a container id.
func (c *Containers) Lookup(id string) (*Node, bool) {
	n, ok := c.nodes[id]
	return n, ok
}

// Attach moves n into container id, creating the container chain on
// demand, and records owner as the host responsible for n.
func (c *Containers) Attach(id string, n *Node, owner Host) (*Node, error) {
	if n == nil {
		return nil, fmt.Errorf("attach to %q: nil node", id)
	}
	if cur, ok := c.members[n]; ok {
		if cur == id {
			c.owners[n] = owner
			return c.nodes[id], nil
		}
		c.Detach(n)
	}
	container, err := c.ensure(id, 0)
	if err != nil {
		return nil, fmt.Errorf("attach to %q: %w", id, err)
	}
	container.AppendChild(n)
	c.members[n] = id
	if owner != nil {
		c.owners[n] = owner
	}
	return container, nil
}

// Detach removes n from the container it was attached to. Containers left
// empty are removed, walking up through parent containers.
func (c *Containers) Detach(n *Node) bool {
	id, ok := c.members[n]
	if !ok {
		return false
	}
	delete(c.members, n)
	delete(c.owners, n)
	if container := c.nodes[id]; container != nil {
		container.RemoveChild(n)
	}
	c.release(id)
	return true
}

// ContainerOf returns the container id n is attached to.
func (c *Containers) ContainerOf(n *Node) (string, bool) {
	id, ok := c.members[n]
	return id, ok
}

// Owners returns the hosts of the nodes currently attached to container id,
// in child order.
func (c *Containers) Owners(id string) []Host {
	container, ok := c.nodes[id]
	if !ok {
		return nil
	}
	var out []Host
	for _, child := range container.Children() {
		if h, ok := c.owners[child]; ok && h != nil {
			out = append(out, h)
		}
	}
	return out
}

func (c *Containers) ensure(id string, depth int) (*Node, error) {
	if n, ok := c.nodes[id]; ok {
		return n, nil
	}
	if depth > len(c.parents) {
		return nil, fmt.Errorf("container %q: parent cycle", id)
	}
	parentID, ok := c.parents[id]
	if !ok {
		c.parents[id] = ""
	}

	parent := c.doc.Body()
	if parentID != "" {
		p, err := c.ensure(parentID, depth+1)
		if err != nil {
			return nil, err
		}
		parent = p
	}

	n := NewNode("div", WithClass(id))
	parent.AppendChild(n)
	c.nodes[id] = n
	debug.Log("containers: created %s", id)
	return n, nil
}

// release removes the container if it has no children left, then repeats
// for its parent container.
func (c *Containers) release(id string) {
	for id != "" {
		n, ok := c.nodes[id]
		if !ok || len(n.Children()) > 0 {
			return
		}
		n.Remove()
		delete(c.nodes, id)
		debug.Log("containers: removed %s", id)
		id = c.parents[id]
	}
}
