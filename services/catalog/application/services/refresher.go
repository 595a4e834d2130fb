package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultRefreshDebounce is the quiet window applied to item-change signals
// before a circle's catalog is recomputed.
const DefaultRefreshDebounce = 200 * time.Millisecond

// Refresher coalesces bursts of item-change signals into a single catalog
// recompute per circle. Each Signal restarts the circle's quiet window; the
// refresh function runs once the window elapses with no further signals.
//
// Safe for concurrent use. After Stop, further signals are ignored.
type Refresher struct {
	delay   time.Duration
	refresh func(circleID uuid.UUID)

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
	closed bool
	wg     sync.WaitGroup
}

// NewRefresher returns a Refresher that calls refresh after signals for a
// circle have been quiet for delay. A non-positive delay falls back to
// DefaultRefreshDebounce.
func NewRefresher(delay time.Duration, refresh func(circleID uuid.UUID)) *Refresher {
	if delay <= 0 {
		delay = DefaultRefreshDebounce
	}
	return &Refresher{
		delay:   delay,
		refresh: refresh,
		timers:  make(map[uuid.UUID]*time.Timer),
	}
}

// Signal notes an item change in the circle and restarts its quiet window.
// Each signal replaces any pending timer for the circle, so only the last
// one in a burst fires.
func (r *Refresher) Signal(circleID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	if old, ok := r.timers[circleID]; ok {
		if old.Stop() {
			// Cancelled before firing; its callback never runs.
			r.wg.Done()
		}
	}

	r.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(r.delay, func() {
		defer r.wg.Done()

		r.mu.Lock()
		// A timer that lost the race to a newer Signal must not refresh;
		// the replacement timer owns the recompute now.
		owned := r.timers[circleID] == t
		if owned {
			delete(r.timers, circleID)
		}
		closed := r.closed
		r.mu.Unlock()

		if owned && !closed {
			r.refresh(circleID)
		}
	})
	r.timers[circleID] = t
}

// Pending reports how many circles currently have an open quiet window.
func (r *Refresher) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Stop cancels pending windows and waits for in-flight refreshes to finish.
func (r *Refresher) Stop() {
	r.mu.Lock()
	r.closed = true
	for circleID, t := range r.timers {
		if t.Stop() {
			r.wg.Done()
		}
		delete(r.timers, circleID)
	}
	r.mu.Unlock()

	r.wg.Wait()
}
