package overlay

type phase int

const (
	phaseCapture phase = iota
	phaseTarget
	phaseBubble
)

// fire invokes the listeners matching the phase. The listener list is
// snapshotted so handlers may add or remove listeners safely.
func (t *eventTarget) fire(ev *Event, p phase) {
	entries := t.listeners[ev.Type]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		switch {
		case p == phaseCapture && !e.capture:
			continue
		case p == phaseBubble && e.capture:
			continue
		}
		if !t.has(ev.Type, e.id) {
			continue
		}
		e.fn(ev)
	}
}

func (t *eventTarget) has(typ EventType, id uint64) bool {
	for _, e := range t.listeners[typ] {
		if e.id == id {
			return true
		}
	}
	return false
}

// Dispatch delivers ev through capture, target and bubble phases.
//
// A connected target sees window and document capture listeners first,
// then each ancestor from the root down, then the target itself. Bubbling
// events walk back up through the document and window. An event with no
// target is delivered to the window only.
func (d *Document) Dispatch(ev *Event) {
	if ev == nil {
		return
	}
	if ev.Target == nil {
		d.window.fire(ev, phaseTarget)
		return
	}

	path := ev.Target.ancestry()
	ev.path = path
	connected := path[len(path)-1] == d.root

	if connected {
		if d.window.fire(ev, phaseCapture); ev.stopped {
			return
		}
		if d.fire(ev, phaseCapture); ev.stopped {
			return
		}
	}
	for i := len(path) - 1; i > 0; i-- {
		if path[i].fire(ev, phaseCapture); ev.stopped {
			return
		}
	}

	if ev.Target.fire(ev, phaseTarget); ev.stopped || !ev.bubbles {
		return
	}

	for i := 1; i < len(path); i++ {
		if path[i].fire(ev, phaseBubble); ev.stopped {
			return
		}
	}
	if connected {
		if d.fire(ev, phaseBubble); ev.stopped {
			return
		}
		d.window.fire(ev, phaseBubble)
	}
}
