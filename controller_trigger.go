package overlay

import "slices"

func (c *Controller) track(h ListenerHandle) {
	c.bindings = append(c.bindings, h)
}

func (c *Controller) listenerTarget() *Node {
	if c.cfg.target.ListenerTarget != nil {
		return c.cfg.target.ListenerTarget
	}
	return c.target
}

// pressEventType picks the press event to listen for; click wins.
func pressEventType(types []EventType) (EventType, bool) {
	switch {
	case slices.Contains(types, EventClick):
		return EventClick, true
	case slices.Contains(types, EventMouseDown):
		return EventMouseDown, true
	}
	return "", false
}

func (c *Controller) bindTarget() {
	lt := c.listenerTarget()
	switch c.cfg.trigger {
	case TriggerPress:
		if typ, ok := pressEventType(c.cfg.target.EventTypes); ok {
			c.track(lt.AddEventListener(typ, func(ev *Event) {
				c.Open(ev)
			}))
		}
	case TriggerHover:
		c.bindHover(lt)
	}
	c.target.AddClass(c.cfg.target.ClassNames...)
	for typ, fn := range c.cfg.target.Events {
		c.track(lt.AddEventListener(typ, fn))
	}
}

func (c *Controller) bindSource() {
	c.source.AddClass(c.cfg.source.MarkerClass)
	c.source.AddClass(c.cfg.source.ClassNames...)
	c.source.SetStyle("display", "none")
	if c.cfg.trigger == TriggerHover {
		c.bindHover(c.source)
	}
}

func (c *Controller) bindHover(n *Node) {
	c.track(n.AddEventListener(EventMouseOver, func(*Event) {
		c.onHoverIn()
	}))
	c.track(n.AddEventListener(EventMouseOut, func(*Event) {
		c.onHoverOut()
	}))
}

func (c *Controller) bindViewport() {
	w := c.doc.Window()
	c.track(w.AddCaptureListener(EventScroll, func(*Event) {
		c.onViewportChange()
	}))
	c.track(w.AddEventListener(EventResize, func(*Event) {
		c.onViewportChange()
	}))
}

func (c *Controller) onViewportChange() {
	if c.IsOpen() {
		c.UpdatePosition()
	}
}

func (c *Controller) onHoverIn() {
	c.stopHoverOut()
	c.stopHoverIn()
	c.hoverIn = c.cfg.scheduler.AfterFunc(c.cfg.hoverInTimeout, func() {
		c.hoverIn = nil
		c.Open(nil)
	})
}

func (c *Controller) onHoverOut() {
	c.stopHoverIn()
	c.stopHoverOut()
	c.hoverOut = c.cfg.scheduler.AfterFunc(HoverOutTimeout, func() {
		c.hoverOut = nil
		c.Close()
	})
}

func (c *Controller) stopHoverIn() {
	if c.hoverIn != nil {
		c.hoverIn.Stop()
		c.hoverIn = nil
	}
}

func (c *Controller) stopHoverOut() {
	if c.hoverOut != nil {
		c.hoverOut.Stop()
		c.hoverOut = nil
	}
}

func (c *Controller) cancelHover() {
	c.stopHoverIn()
	c.stopHoverOut()
}
