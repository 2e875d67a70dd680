package overlay

import (
	"sync/atomic"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer before it fired.
	Stop() bool
}

// Scheduler runs callbacks after a delay. Implementations must deliver
// callbacks on the document loop so they never race with event handlers.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// loopScheduler fires real timers and hands their callbacks to the
// document's update queue.
type loopScheduler struct {
	doc *Document
}

func newLoopScheduler(doc *Document) *loopScheduler {
	return &loopScheduler{doc: doc}
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (s *loopScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		s.doc.QueueUpdate(func() {
			// Stop may have won the race after the timer fired.
			if t.stopped.Load() {
				return
			}
			t.stopped.Store(true)
			fn()
		})
	})
	return t
}

func (t *loopTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	t.timer.Stop()
	return true
}
