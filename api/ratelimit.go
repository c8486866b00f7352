package api

import (
	"sync"
	"time"
)

const RATE_QUOTA = 49                     // Max admissions inside any trailing window.
const RATE_PERIOD = 30000 * time.Millisecond // Window length.

// Admission gate shared by every request issued through one client instance.
//
// The limiter tracks one expiry timestamp per admitted request, in admission
// order. A new caller is admitted immediately while fewer than quota slots
// are live; otherwise it must wait until the oldest still-counted slot in the
// trailing window vacates. Bursts are smoothed into delays, never rejected,
// and waiters proceed in the order they called Acquire.
//
// Expired slots are swept on each admission against a monotonic clock rather
// than by timer callbacks, which keeps the limiter fully deterministic under
// an injected clock.
type RateLimiter struct {
	mu     sync.Mutex
	quota  int
	period time.Duration
	slots  []time.Time // expiry timestamps, ascending

	now   func() time.Time
	sleep func(time.Duration)
}

func NewRateLimiter(quota int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		quota:  quota,
		period: period,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Blocks the caller until it may proceed under the quota. A zero wait means
// the window had room; a rate-limit wait is a transparent delay, not an error.
func (rl *RateLimiter) Acquire() {
	if wait := rl.reserve(); wait > 0 {
		rl.sleep(wait)
	}
}

// Sweeps expired slots, computes this caller's wait and books its slot.
// Must stay a single critical section so admission order follows call order.
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	var wait time.Duration
	if len(rl.slots) >= rl.quota {
		// The slot quota positions back from the newest is the one whose
		// vacating frees room inside the trailing window.
		wait = rl.slots[len(rl.slots)-rl.quota].Sub(now)
	}

	rl.slots = append(rl.slots, now.Add(wait+rl.period))
	return wait
}

// Drops every slot whose expiry has passed. Caller must hold the mutex.
func (rl *RateLimiter) sweep(now time.Time) {
	i := 0
	for i < len(rl.slots) && !rl.slots[i].After(now) {
		i++
	}

	if i > 0 {
		rl.slots = append(rl.slots[:0], rl.slots[i:]...)
	}
}

// Number of live (unexpired) slots. Mostly useful in tests and diagnostics.
func (rl *RateLimiter) Tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(rl.now())
	return len(rl.slots)
}
