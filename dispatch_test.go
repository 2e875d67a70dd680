package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func recordAll(d *Document, typ EventType, journal *[]string, nodes map[string]*Node) {
	rec := func(label string) Listener {
		return func(*Event) { *journal = append(*journal, label) }
	}
	d.Window().AddCaptureListener(typ, rec("window:capture"))
	d.Window().AddEventListener(typ, rec("window:bubble"))
	d.AddCaptureListener(typ, rec("document:capture"))
	d.AddEventListener(typ, rec("document:bubble"))
	for name, n := range nodes {
		n.AddCaptureListener(typ, rec(name+":capture"))
		n.AddEventListener(typ, rec(name+":bubble"))
	}
}

func TestDispatch_Phases(t *testing.T) {
	type tc struct {
		typ      EventType
		stopAt   string
		detached bool
		want     []string
	}

	tests := map[string]tc{
		"bubbling event": {
			typ: EventMouseDown,
			want: []string{
				"window:capture", "document:capture", "outer:capture",
				"inner:capture", "inner:bubble",
				"outer:bubble", "document:bubble", "window:bubble",
			},
		},
		"non bubbling event": {
			typ: EventScroll,
			want: []string{
				"window:capture", "document:capture", "outer:capture",
				"inner:capture", "inner:bubble",
			},
		},
		"stop at target runs remaining target listeners": {
			typ:    EventClick,
			stopAt: "inner",
			want: []string{
				"window:capture", "document:capture", "outer:capture",
				"inner:capture", "inner:bubble",
			},
		},
		"stop during capture": {
			typ:    EventKeyDown,
			stopAt: "outer",
			want:   []string{"window:capture", "document:capture", "outer:capture"},
		},
		"detached target skips document and window": {
			typ:      EventClick,
			detached: true,
			want: []string{
				"outer:capture", "inner:capture", "inner:bubble", "outer:bubble",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := NewDocument(100, 100)
			outer := NewNode("div")
			inner := NewNode("span")
			outer.AppendChild(inner)
			if !tt.detached {
				doc.Body().AppendChild(outer)
			}

			var journal []string
			recordAll(doc, tt.typ, &journal, map[string]*Node{"outer": outer, "inner": inner})
			if tt.stopAt != "" {
				stopper := map[string]*Node{"outer": outer, "inner": inner}[tt.stopAt]
				stopper.AddCaptureListener(tt.typ, func(ev *Event) { ev.StopPropagation() })
			}

			doc.Dispatch(NewEvent(tt.typ, inner))

			if diff := cmp.Diff(tt.want, journal); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDispatch_ResizeTargetsWindow(t *testing.T) {
	doc := NewDocument(100, 100)
	var got []Size
	doc.Window().AddEventListener(EventResize, func(*Event) {
		got = append(got, doc.Window().Size())
	})
	doc.AddEventListener(EventResize, func(*Event) {
		t.Error("document should not see resize")
	})

	doc.Resize(200, 50)

	if diff := cmp.Diff([]Size{{Width: 200, Height: 50}}, got); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
	if doc.Window().InnerHeight() != 50 {
		t.Errorf("InnerHeight() = %v", doc.Window().InnerHeight())
	}
}

func TestDispatch_ListenerRemoval(t *testing.T) {
	doc := NewDocument(100, 100)
	n := NewNode("div")
	doc.Body().AppendChild(n)

	var calls int
	var second ListenerHandle
	n.AddEventListener(EventClick, func(*Event) {
		calls++
		second.Remove()
	})
	second = n.AddEventListener(EventClick, func(*Event) {
		t.Error("listener removed during dispatch still ran")
	})

	doc.Click(n)
	second.Remove()
	doc.Click(n)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if got := n.ListenerCount(EventClick); got != 1 {
		t.Errorf("ListenerCount() = %d, want 1", got)
	}
}

func TestDispatch_AddedDuringDispatchDoesNotRun(t *testing.T) {
	doc := NewDocument(100, 100)
	n := NewNode("div")
	doc.Body().AppendChild(n)

	var late int
	n.AddEventListener(EventClick, func(*Event) {
		n.AddEventListener(EventClick, func(*Event) { late++ })
	})

	doc.Click(n)
	if late != 0 {
		t.Errorf("listener added on the same target ran %d times", late)
	}
}

func TestEvent_ComposedPath(t *testing.T) {
	doc := NewDocument(100, 100)
	leaf := NewNode("span")
	doc.Body().AppendChild(leaf)

	ev := doc.MouseDown(leaf)

	path := ev.ComposedPath()
	if len(path) != 3 || path[0] != leaf || path[1] != doc.Body() || path[2] != doc.Root() {
		t.Errorf("ComposedPath() = %v", path)
	}
}

func TestDocument_KeyDownCarriesKey(t *testing.T) {
	doc := NewDocument(100, 100)
	var got Key
	doc.AddEventListener(EventKeyDown, func(ev *Event) { got = ev.Key })

	doc.KeyDown(KeyEscape)

	if got != KeyEscape {
		t.Errorf("key = %v, want escape", got)
	}
}
