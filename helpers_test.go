package overlay

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

// fixture is a document with a host element holding a target button and a
// hidden source panel.
type fixture struct {
	t      *testing.T
	doc    *Document
	sched  *MockScheduler
	parent *Node
	target *Node
	source *Node
	logs   *bytes.Buffer
	logger *log.Logger
	states []bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sched := NewMockScheduler()
	doc := NewDocument(800, 600, WithDocumentScheduler(sched))
	parent := NewNode("div", WithClass("host"))
	target := NewNode("button", WithBounds(NewRect(100, 100, 50, 20)))
	source := NewNode("div", WithBounds(NewRect(0, 0, 30, 10)))
	parent.AppendChild(target, source)
	doc.Body().AppendChild(parent)

	logs := &bytes.Buffer{}
	return &fixture{
		t:      t,
		doc:    doc,
		sched:  sched,
		parent: parent,
		target: target,
		source: source,
		logs:   logs,
		logger: log.NewWithOptions(logs, log.Options{Level: log.DebugLevel}),
	}
}

// controller builds a controller whose state callback records every
// transition and positions the source on open, the way hosts do.
func (f *fixture) controller(opts ...Option) *Controller {
	f.t.Helper()
	var c *Controller
	opts = append([]Option{WithLogger(f.logger)}, opts...)
	c = NewController(f.doc, nil, f.parent, f.target, f.source, func(open bool) {
		f.states = append(f.states, open)
		if open {
			c.OpenWithPosition()
		}
	}, opts...)
	return c
}

// stackHost is a Host that records close calls into a shared journal.
type stackHost struct {
	name    string
	journal *[]string
	ctrl    *Controller
}

func (h *stackHost) Close() {
	*h.journal = append(*h.journal, h.name+":close")
	h.ctrl.Close()
}

func newStackHost(f *fixture, name string, bounds Rect, journal *[]string, opts ...Option) (*stackHost, *Node) {
	h := &stackHost{name: name, journal: journal}
	target := NewNode("button", WithBounds(bounds))
	source := NewNode("div", WithBounds(NewRect(0, 0, 40, 20)))
	f.parent.AppendChild(target, source)
	opts = append([]Option{WithLogger(f.logger)}, opts...)
	h.ctrl = NewController(f.doc, h, f.parent, target, source, func(open bool) {
		if open {
			*journal = append(*journal, name+":open")
			h.ctrl.OpenWithPosition()
			return
		}
		*journal = append(*journal, name+":closed")
	}, opts...)
	return h, target
}
