package overlay

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/grindlemire/go-overlay/internal/debug"
)

var (
	defaultLoggerOnce sync.Once
	defaultLogger     *log.Logger
)

// DefaultLogger returns the logger controllers use when none is given.
func DefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "overlay",
		})
	})
	return defaultLogger
}

// Controller manages one floating overlay: its open state, trigger
// bindings, container placement, sibling closing and repositioning.
//
// A Controller built without a document, parent, target, source or state
// callback is inert: every operation is a no-op.
type Controller struct {
	id  string
	doc *Document
	cfg controllerConfig

	host          Host
	parent        *Node
	target        *Node
	source        *Node
	onStateChange func(open bool)

	active bool

	hoverIn  Timer
	hoverOut Timer

	// Listeners bound for the controller's lifetime.
	bindings []ListenerHandle
	// Document listeners bound while open.
	openBindings []ListenerHandle

	position  PlacementResult
	evaluated bool
}

// NewController creates and initializes a controller for source, which is
// positioned around target and returned to parent when closed.
// onStateChange receives every open intent; the host is expected to call
// OpenWithPosition when it receives true and treat a false result as closed.
func NewController(doc *Document, host Host, parent, target, source *Node, onStateChange func(open bool), opts ...Option) *Controller {
	c := &Controller{
		id:            uuid.NewString(),
		doc:           doc,
		cfg:           defaultControllerConfig(),
		host:          host,
		parent:        parent,
		target:        target,
		source:        source,
		onStateChange: onStateChange,
	}
	for _, opt := range opts {
		opt(&c.cfg)
	}
	c.Create()
	return c
}

// Create binds the trigger, source and viewport listeners. It is called by
// NewController and is a no-op when already active or when a required
// element or callback is missing.
func (c *Controller) Create() {
	if c.active {
		return
	}
	if c.doc == nil || c.parent == nil || c.target == nil || c.source == nil || c.onStateChange == nil {
		debug.Log("controller %s: missing element or callback, inert", c.id)
		return
	}
	if c.cfg.scheduler == nil {
		c.cfg.scheduler = c.doc.Scheduler()
	}
	if c.cfg.containers == nil {
		c.cfg.containers = c.doc.Containers()
	}
	if c.cfg.logger == nil {
		c.cfg.logger = DefaultLogger()
	}

	c.active = true
	c.bindTarget()
	c.bindSource()
	c.bindViewport()
	debug.Log("controller %s: created (trigger=%s)", c.id, c.cfg.trigger)
}

// ID returns the controller's unique id.
func (c *Controller) ID() string {
	return c.id
}

// Active reports whether the controller was initialized and not disposed.
func (c *Controller) Active() bool {
	return c.active
}

// Source returns the floating element.
func (c *Controller) Source() *Node {
	return c.source
}

// Target returns the trigger element.
func (c *Controller) Target() *Node {
	return c.target
}

// IsOpen reports whether the source is attached and positioned.
func (c *Controller) IsOpen() bool {
	return IsPositioned(c.source)
}

// Open requests opening. It closes overlays in the configured sibling
// containers, then reports true to the state callback. Returns false when
// vetoed or already open.
func (c *Controller) Open(ev *Event) bool {
	if !c.active {
		return false
	}
	if c.cfg.shouldOpen != nil && !c.cfg.shouldOpen() {
		return false
	}
	if c.IsOpen() {
		return false
	}
	if ev != nil {
		ev.StopPropagation()
	}
	for _, id := range c.cfg.overlaysToClose {
		c.closeSiblings(id)
	}
	debug.Log("controller %s: open", c.id)
	c.onStateChange(true)
	return true
}

// OpenWithPosition moves the source into the overlay container, clears
// leftover inline styles, positions it and starts listening for escape
// and outside clicks. When the source cannot be positioned it is returned
// to its parent and OpenWithPosition reports false.
func (c *Controller) OpenWithPosition() bool {
	if !c.active {
		return false
	}
	if !c.attached() {
		if _, err := c.cfg.containers.Attach(c.cfg.container, c.source, c.host); err != nil {
			c.cfg.logger.Error("attach overlay", "controller", c.id, "container", c.cfg.container, "err", err)
			return false
		}
		c.source.ClearStyle()
		if !c.render() {
			c.restore()
			return false
		}
	}
	c.bindOpenListeners()
	return true
}

// Close returns the source to its parent, hides it and reports false to the
// state callback. Returns false when vetoed, when a child overlay is open,
// or when already closed.
func (c *Controller) Close() bool {
	if !c.active {
		return false
	}
	if c.cfg.shouldClose != nil && !c.cfg.shouldClose() {
		return false
	}
	if c.cfg.childOverlayOpen != nil && c.cfg.childOverlayOpen() {
		return false
	}
	if !c.IsOpen() && !c.attached() {
		return false
	}
	c.cancelHover()
	c.restore()
	c.unbindOpenListeners()
	debug.Log("controller %s: close", c.id)
	c.onStateChange(false)
	return true
}

// UpdatePosition opens the overlay if needed and re-evaluates placement.
// Placement needs the source in its container, so a host that defers
// OpenWithPosition past the state callback gets false here and should call
// UpdatePosition again once it has attached the source.
func (c *Controller) UpdatePosition() bool {
	if !c.active {
		return false
	}
	if !c.attached() {
		c.Open(nil)
		if !c.attached() {
			return false
		}
	}
	return c.render()
}

// Position returns the last placement applied, if any.
func (c *Controller) Position() (PlacementResult, bool) {
	return c.position, c.evaluated
}

// PositionClass returns base--<placement> for the last placement, or ""
// before the first evaluation.
func (c *Controller) PositionClass(base string) string {
	if !c.evaluated {
		return ""
	}
	return c.position.Placement.ClassName(base)
}

// Dispose cancels pending timers, removes every listener and returns the
// source to its parent without notifying the state callback. The
// controller is inert afterwards.
func (c *Controller) Dispose() {
	if !c.active {
		return
	}
	c.cancelHover()
	c.unbindOpenListeners()
	for _, h := range c.bindings {
		h.Remove()
	}
	c.bindings = nil
	if c.attached() {
		c.restore()
	}
	c.active = false
	debug.Log("controller %s: disposed", c.id)
}

// attached reports whether the source sits in the configured container.
func (c *Controller) attached() bool {
	id, ok := c.cfg.containers.ContainerOf(c.source)
	return ok && id == c.cfg.container
}

// restore detaches the source from its container, hides it and returns it
// to the original parent.
func (c *Controller) restore() {
	c.cfg.containers.Detach(c.source)
	c.source.ClearStyle()
	c.source.SetStyle("display", "none")
	c.parent.AppendChild(c.source)
}

func (c *Controller) closeSiblings(id string) {
	for _, owner := range c.cfg.containers.Owners(id) {
		if c.host != nil && owner == c.host {
			continue
		}
		owner.Close()
	}
}

// render evaluates placement against the current geometry and applies it.
// Returns false when the target is not in the document.
func (c *Controller) render() bool {
	if !c.doc.Contains(c.target) {
		debug.Log("controller %s: target detached, skip positioning", c.id)
		return false
	}
	m := c.cfg.modifiers
	if m.OnCursor && c.cfg.cursor != nil {
		if p, ok := c.cfg.cursor(); ok {
			m.Cursor = &p
		}
	}
	window := c.doc.Window().Size()
	res := Evaluate(m, c.source.BoundingRect(), c.target.BoundingRect(), window)
	if res.Overflow {
		c.cfg.logger.Warn("not enough space",
			"controller", c.id,
			"placement", res.Placement,
			"window", window,
		)
	}
	applyPlacement(c.source, res, m, window)
	c.position = res
	c.evaluated = true
	if c.cfg.onPosition != nil {
		c.cfg.onPosition(res)
	}
	return true
}
