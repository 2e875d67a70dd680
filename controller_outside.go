package overlay

import "strings"

func (c *Controller) bindOpenListeners() {
	if len(c.openBindings) > 0 {
		return
	}
	c.openBindings = append(c.openBindings,
		c.doc.AddEventListener(EventKeyDown, c.onKeyDown),
		c.doc.AddEventListener(EventMouseDown, c.onMouseDown),
	)
}

func (c *Controller) unbindOpenListeners() {
	for _, h := range c.openBindings {
		h.Remove()
	}
	c.openBindings = nil
}

func (c *Controller) onKeyDown(ev *Event) {
	if ev.Key == KeyEscape {
		c.Close()
	}
}

func (c *Controller) onMouseDown(ev *Event) {
	if c.IsOutside(ev) {
		c.Close()
	}
}

// IsOutside reports whether ev happened outside the overlay, using the
// configured predicate when one was given.
func (c *Controller) IsOutside(ev *Event) bool {
	if c.cfg.isOutside != nil {
		return c.cfg.isOutside(ev)
	}
	return c.DefaultIsOutside(ev)
}

// DefaultIsOutside reports true when no node on the event path carries a
// class containing the source marker or one of the excluded container
// classes.
func (c *Controller) DefaultIsOutside(ev *Event) bool {
	markers := append([]string{c.cfg.source.MarkerClass}, c.cfg.excluded...)
	return isOutside(ev, markers)
}

func isOutside(ev *Event, markers []string) bool {
	if ev == nil {
		return true
	}
	for _, n := range ev.ComposedPath() {
		classes := n.ClassName()
		if classes == "" {
			continue
		}
		for _, m := range markers {
			if m != "" && strings.Contains(classes, m) {
				return false
			}
		}
	}
	return true
}
