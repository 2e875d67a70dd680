package overlay

import (
	"sort"
	"sync"
	"time"
)

// MockScheduler is a manually advanced Scheduler for tests. Callbacks run
// synchronously inside Advance, in due-time order.
type MockScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*mockTimer
}

type mockTimer struct {
	s    *MockScheduler
	at   time.Duration
	seq  int
	fn   func()
	done bool
}

// NewMockScheduler creates a scheduler whose clock starts at zero.
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (m *MockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &mockTimer{s: m, at: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that
// became due, including ones scheduled by earlier callbacks.
func (m *MockScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		next.done = true
		m.now = next.at
		m.mu.Unlock()
		next.fn()
		m.mu.Lock()
	}
	m.now = target
	m.prune()
	m.mu.Unlock()
}

// Now returns the elapsed mock time.
func (m *MockScheduler) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of callbacks that have not fired or been stopped.
func (m *MockScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (m *MockScheduler) nextDue(target time.Duration) *mockTimer {
	var due []*mockTimer
	for _, t := range m.timers {
		if !t.done && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (m *MockScheduler) prune() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	m.timers = live
}

func (t *mockTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}
