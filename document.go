package overlay

import (
	"sync"

	"github.com/grindlemire/go-overlay/internal/debug"
)

// Window is the viewport. It receives resize events and the capture and
// bubble phases of every connected event.
type Window struct {
	eventTarget

	doc    *Document
	width  float64
	height float64
}

// Size returns the viewport dimensions.
func (w *Window) Size() Size {
	return Size{Width: w.width, Height: w.height}
}

// InnerWidth returns the viewport width.
func (w *Window) InnerWidth() float64 { return w.width }

// InnerHeight returns the viewport height.
func (w *Window) InnerHeight() float64 { return w.height }

// Document owns the node tree, the window, the overlay container registry
// and the update queue every overlay mutation runs on.
type Document struct {
	eventTarget

	root   *Node
	body   *Node
	window *Window

	containers *Containers
	scheduler  Scheduler

	// Event loop
	queue    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithQueueSize sets the buffer size of the update queue.
func WithQueueSize(size int) DocumentOption {
	return func(d *Document) {
		if size > 0 {
			d.queue = make(chan func(), size)
		}
	}
}

// WithDocumentScheduler replaces the timer source used by controllers
// created against this document.
func WithDocumentScheduler(s Scheduler) DocumentOption {
	return func(d *Document) {
		d.scheduler = s
	}
}

// NewDocument creates an empty document with an <html> root, a <body>
// and a viewport of the given size.
func NewDocument(width, height float64, opts ...DocumentOption) *Document {
	d := &Document{
		root:   NewNode("html"),
		body:   NewNode("body", WithBounds(NewRect(0, 0, width, height))),
		queue:  make(chan func(), 256),
		stopCh: make(chan struct{}),
	}
	d.root.AppendChild(d.body)
	d.window = &Window{doc: d, width: width, height: height}
	d.containers = newContainers(d)
	for _, opt := range opts {
		opt(d)
	}
	if d.scheduler == nil {
		d.scheduler = newLoopScheduler(d)
	}
	debug.Log("document: created %vx%v", width, height)
	return d
}

// Root returns the <html> node.
func (d *Document) Root() *Node { return d.root }

// Body returns the <body> node.
func (d *Document) Body() *Node { return d.body }

// Window returns the viewport.
func (d *Document) Window() *Window { return d.window }

// Containers returns the overlay container registry.
func (d *Document) Containers() *Containers { return d.containers }

// Scheduler returns the timer source for this document.
func (d *Document) Scheduler() Scheduler { return d.scheduler }

// Contains reports whether n is connected to this document.
func (d *Document) Contains(n *Node) bool {
	return n != nil && n.Root() == d.root
}

// --- Input helpers ---

// Click dispatches a click on n.
func (d *Document) Click(n *Node) *Event {
	return d.pointer(EventClick, n)
}

// MouseDown dispatches a mousedown on n.
func (d *Document) MouseDown(n *Node) *Event {
	return d.pointer(EventMouseDown, n)
}

// MouseOver dispatches a mouseover on n.
func (d *Document) MouseOver(n *Node) *Event {
	return d.pointer(EventMouseOver, n)
}

// MouseOut dispatches a mouseout on n.
func (d *Document) MouseOut(n *Node) *Event {
	return d.pointer(EventMouseOut, n)
}

func (d *Document) pointer(typ EventType, n *Node) *Event {
	ev := NewEvent(typ, n)
	if n != nil {
		r := n.BoundingRect()
		ev.ClientX = r.X + r.Width/2
		ev.ClientY = r.Y + r.Height/2
	}
	d.Dispatch(ev)
	return ev
}

// KeyDown dispatches a keydown at the body.
func (d *Document) KeyDown(key Key) *Event {
	ev := NewEvent(EventKeyDown, d.body)
	ev.Key = key
	d.Dispatch(ev)
	return ev
}

// Scroll dispatches a scroll on n, or on the body when n is nil.
func (d *Document) Scroll(n *Node) *Event {
	if n == nil {
		n = d.body
	}
	ev := NewEvent(EventScroll, n)
	d.Dispatch(ev)
	return ev
}

// Resize changes the viewport size and dispatches a resize on the window.
func (d *Document) Resize(width, height float64) *Event {
	d.window.width = width
	d.window.height = height
	d.body.SetBounds(NewRect(0, 0, width, height))
	ev := NewEvent(EventResize, nil)
	d.Dispatch(ev)
	return ev
}
