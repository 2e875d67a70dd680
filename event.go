package overlay

import "slices"

// EventType names a document event.
type EventType string

const (
	EventClick     EventType = "click"
	EventMouseDown EventType = "mousedown"
	EventMouseOver EventType = "mouseover"
	EventMouseOut  EventType = "mouseout"
	EventKeyDown   EventType = "keydown"
	EventScroll    EventType = "scroll"
	EventResize    EventType = "resize"
)

// Bubbles reports whether events of this type bubble by default.
func (t EventType) Bubbles() bool {
	switch t {
	case EventScroll, EventResize:
		return false
	}
	return true
}

// Event is a dispatched user interaction or viewport change.
type Event struct {
	Type   EventType
	Target *Node

	// Key and Rune are set for keyboard events.
	Key  Key
	Rune rune

	// ClientX and ClientY are set for mouse events.
	ClientX float64
	ClientY float64

	bubbles bool
	stopped bool
	path    []*Node
}

// NewEvent creates an event of the given type aimed at target.
// A nil target addresses the window.
func NewEvent(typ EventType, target *Node) *Event {
	return &Event{
		Type:    typ,
		Target:  target,
		bubbles: typ.Bubbles(),
	}
}

// Bubbles reports whether the event takes part in the bubble phase.
func (e *Event) Bubbles() bool {
	return e.bubbles
}

// StopPropagation prevents the event from reaching further targets.
// Listeners on the current target still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}

// ComposedPath returns the nodes the event travels through, from the
// target up to the root.
func (e *Event) ComposedPath() []*Node {
	if e.path == nil && e.Target != nil {
		e.path = e.Target.ancestry()
	}
	return slices.Clone(e.path)
}

// Listener handles a dispatched event.
type Listener func(*Event)

// ListenerHandle identifies a registered listener so it can be removed.
type ListenerHandle struct {
	target *eventTarget
	typ    EventType
	id     uint64
}

// Remove unregisters the listener. Removing twice is a no-op.
func (h ListenerHandle) Remove() {
	if h.target == nil {
		return
	}
	h.target.remove(h.typ, h.id)
}

type listenerEntry struct {
	id      uint64
	fn      Listener
	capture bool
}

// eventTarget is the listener registry shared by nodes, the document and
// the window.
type eventTarget struct {
	nextID    uint64
	listeners map[EventType][]listenerEntry
}

// AddEventListener registers fn for the bubble and target phases.
func (t *eventTarget) AddEventListener(typ EventType, fn Listener) ListenerHandle {
	return t.add(typ, fn, false)
}

// AddCaptureListener registers fn for the capture and target phases.
func (t *eventTarget) AddCaptureListener(typ EventType, fn Listener) ListenerHandle {
	return t.add(typ, fn, true)
}

// ListenerCount returns the number of listeners registered for typ.
func (t *eventTarget) ListenerCount(typ EventType) int {
	return len(t.listeners[typ])
}

func (t *eventTarget) add(typ EventType, fn Listener, capture bool) ListenerHandle {
	if fn == nil {
		return ListenerHandle{}
	}
	if t.listeners == nil {
		t.listeners = make(map[EventType][]listenerEntry)
	}
	t.nextID++
	t.listeners[typ] = append(t.listeners[typ], listenerEntry{id: t.nextID, fn: fn, capture: capture})
	return ListenerHandle{target: t, typ: typ, id: t.nextID}
}

func (t *eventTarget) remove(typ EventType, id uint64) {
	entries := t.listeners[typ]
	i := slices.IndexFunc(entries, func(e listenerEntry) bool { return e.id == id })
	if i < 0 {
		return
	}
	t.listeners[typ] = slices.Delete(slices.Clone(entries), i, i+1)
}
