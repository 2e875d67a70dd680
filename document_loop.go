package overlay

import (
	"context"

	"github.com/grindlemire/go-overlay/internal/debug"
)

// Run drains the update queue until ctx is cancelled or Stop is called.
// Every queued update, timer callback included, runs on this goroutine.
func (d *Document) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-d.queue:
			fn()
		case <-d.stopCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Drain runs every update currently queued without blocking.
// It returns the number of updates run.
func (d *Document) Drain() int {
	n := 0
	for {
		select {
		case fn := <-d.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Stop signals Run to exit. Stop is idempotent.
func (d *Document) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)
	})
}

// QueueUpdate enqueues a function to run on the document loop.
// Safe to call from any goroutine. Returns false when the update was
// dropped because the document is stopping or the queue is full.
func (d *Document) QueueUpdate(fn func()) bool {
	select {
	case <-d.stopCh:
		return false
	default:
	}
	select {
	case d.queue <- fn:
		return true
	default:
		debug.Log("document: update queue full, dropping update")
		return false
	}
}
