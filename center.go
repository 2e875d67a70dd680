package overlay

import "github.com/grindlemire/go-overlay/internal/debug"

// CenterController shows elements centered over a backdrop. It does no
// positioning and binds no events; callers handle escape themselves.
type CenterController struct {
	containers *Containers
}

// NewCenterController creates a controller using the document's container
// registry.
func NewCenterController(doc *Document) *CenterController {
	return &CenterController{containers: doc.Containers()}
}

// NewCenterControllerWith creates a controller over an explicit registry.
func NewCenterControllerWith(r *Containers) *CenterController {
	return &CenterController{containers: r}
}

// Open moves el into a fresh backdrop layer inside the backdrop container.
func (c *CenterController) Open(el *Node) {
	if el == nil {
		return
	}
	show := NewNode("div", WithClass(BackdropShowClass))
	center := NewNode("div", WithClass(BackdropCenterClass))
	show.AppendChild(center)
	if _, err := c.containers.Attach(BackdropContainer, show, nil); err != nil {
		debug.Log("center: attach backdrop: %v", err)
		return
	}
	center.AppendChild(el)
}

// Close removes el and the wrapper layers up to its backdrop layer, then
// the backdrop container if it is left empty. Elements that are not inside
// a backdrop layer are left alone.
func (c *CenterController) Close(el *Node) {
	show := backdropOf(el)
	if show == nil {
		return
	}
	for n := el; n != show; {
		p := n.Parent()
		p.RemoveChild(n)
		n = p
	}
	if !c.containers.Detach(show) {
		show.Remove()
	}
}

// IsOpen reports whether el currently sits inside a backdrop layer.
func (c *CenterController) IsOpen(el *Node) bool {
	return backdropOf(el) != nil
}

func backdropOf(el *Node) *Node {
	if el == nil {
		return nil
	}
	for n := el.Parent(); n != nil; n = n.Parent() {
		if n.HasClass(BackdropShowClass) {
			return n
		}
	}
	return nil
}
