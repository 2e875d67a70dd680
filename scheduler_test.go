package overlay

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestMockScheduler_Order(t *testing.T) {
	s := NewMockScheduler()
	var fired []string

	s.AfterFunc(20*time.Millisecond, func() { fired = append(fired, "b") })
	s.AfterFunc(10*time.Millisecond, func() {
		fired = append(fired, "a")
		s.AfterFunc(5*time.Millisecond, func() { fired = append(fired, "nested") })
	})
	s.AfterFunc(20*time.Millisecond, func() { fired = append(fired, "c") })
	stopped := s.AfterFunc(15*time.Millisecond, func() { fired = append(fired, "stopped") })
	if !stopped.Stop() {
		t.Error("Stop() = false on pending timer")
	}

	s.Advance(20 * time.Millisecond)

	if diff := cmp.Diff([]string{"a", "nested", "b", "c"}, fired); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if s.Now() != 20*time.Millisecond {
		t.Errorf("Now() = %v", s.Now())
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d", s.Pending())
	}
	if stopped.Stop() {
		t.Error("Stop() = true on stopped timer")
	}
}

func TestMockScheduler_NotDueYet(t *testing.T) {
	s := NewMockScheduler()
	var fired bool
	s.AfterFunc(time.Second, func() { fired = true })

	s.Advance(999 * time.Millisecond)
	if fired {
		t.Fatal("timer fired early")
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
	s.Advance(time.Millisecond)
	if !fired {
		t.Error("timer did not fire when due")
	}
}

func TestLoopScheduler_RunsOnDocumentLoop(t *testing.T) {
	doc := NewDocument(100, 100)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan struct{})
	doc.Scheduler().AfterFunc(time.Millisecond, func() {
		close(done)
		doc.Stop()
	})

	if err := doc.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	select {
	case <-done:
	default:
		t.Error("callback did not run")
	}
}

func TestLoopScheduler_StopPreventsCallback(t *testing.T) {
	doc := NewDocument(100, 100)
	timer := doc.Scheduler().AfterFunc(time.Millisecond, func() {
		t.Error("stopped timer ran")
	})
	if !timer.Stop() {
		t.Error("Stop() = false")
	}
	if timer.Stop() {
		t.Error("second Stop() = true")
	}

	time.Sleep(10 * time.Millisecond)
	doc.Drain()
}

func TestDocument_QueueUpdateAndDrain(t *testing.T) {
	doc := NewDocument(100, 100)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		doc.QueueUpdate(func() { order = append(order, i) })
	}

	if n := doc.Drain(); n != 3 {
		t.Errorf("Drain() = %d, want 3", n)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_RunStopsOnContextCancel(t *testing.T) {
	doc := NewDocument(100, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := doc.Run(ctx); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	doc.Stop()
	doc.Stop()
}

func TestDocument_QueueUpdateDropsWhenFull(t *testing.T) {
	type tc struct {
		stop bool
		want []bool
	}

	tests := map[string]tc{
		"full queue drops from the loop goroutine": {
			want: []bool{true, false},
		},
		"stopped document drops everything": {
			stop: true,
			want: []bool{false, false},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := NewDocument(100, 100, WithQueueSize(1))
			var got []bool
			var ran int
			nested := func() {
				got = append(got, doc.QueueUpdate(func() { ran++ }))
				got = append(got, doc.QueueUpdate(func() { ran++ }))
			}
			if tt.stop {
				doc.Stop()
				nested()
			} else {
				if !doc.QueueUpdate(nested) {
					t.Fatal("QueueUpdate() = false on an empty queue")
				}
				doc.Drain()
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("QueueUpdate results mismatch (-want +got):\n%s", diff)
			}
			wantRan := 0
			for _, ok := range tt.want {
				if ok {
					wantRan++
				}
			}
			if ran != wantRan {
				t.Errorf("ran %d updates, want %d", ran, wantRan)
			}
		})
	}
}

func TestDocument_ConcurrentStop(t *testing.T) {
	doc := NewDocument(100, 100, WithQueueSize(1))
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			doc.Stop()
		}()
		go func() {
			defer wg.Done()
			doc.QueueUpdate(func() {})
		}()
	}
	wg.Wait()

	if doc.QueueUpdate(func() {}) {
		t.Error("QueueUpdate() = true after Stop")
	}
	if err := doc.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v after Stop", err)
	}
}
