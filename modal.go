package overlay

// Modal shows an element centered over a backdrop and closes on escape.
type Modal struct {
	doc     *Document
	parent  *Node
	element *Node
	center  *CenterController

	escape ListenerHandle
	open   bool

	Opened *Events[*Modal]
	Closed *Events[*Modal]
}

// NewModal mounts a modal whose element lives under parent while closed.
func NewModal(doc *Document, parent, element *Node) *Modal {
	m := &Modal{
		doc:     doc,
		parent:  parent,
		element: element,
		center:  NewCenterController(doc),
		Opened:  NewEvents[*Modal](),
		Closed:  NewEvents[*Modal](),
	}
	if element != nil {
		element.AddClass(ModalClass)
	}
	return m
}

// IsOpen reports whether the modal is shown.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Open shows the modal. It is a no-op when already open.
func (m *Modal) Open() {
	if m.open || m.element == nil {
		return
	}
	m.center.Open(m.element)
	m.escape = m.doc.AddEventListener(EventKeyDown, func(ev *Event) {
		if ev.Key == KeyEscape {
			m.Close()
		}
	})
	m.open = true
	m.Opened.Emit(m)
}

// Close hides the modal and returns its element to the parent.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.center.Close(m.element)
	if m.parent != nil {
		m.parent.AppendChild(m.element)
	}
	m.escape.Remove()
	m.escape = ListenerHandle{}
	m.open = false
	m.Closed.Emit(m)
}

// Unmount closes the modal if it is open.
func (m *Modal) Unmount() {
	m.Close()
}
