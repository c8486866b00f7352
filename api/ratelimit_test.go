package api

import (
	"testing"
	"time"
)

// A limiter driven by a fake clock. Sleeps advance the clock instead of
// blocking, and every requested sleep is recorded.
func newTestLimiter(quota int, period time.Duration) (*RateLimiter, *time.Time, *[]time.Duration) {
	now := time.Unix(1_700_000_000, 0)
	slept := []time.Duration{}

	rl := NewRateLimiter(quota, period)
	rl.now = func() time.Time { return now }
	rl.sleep = func(d time.Duration) {
		slept = append(slept, d)
		now = now.Add(d)
	}

	return rl, &now, &slept
}

func TestAcquireUnderQuota(t *testing.T) {
	rl, _, slept := newTestLimiter(RATE_QUOTA, RATE_PERIOD)

	for i := 0; i < RATE_QUOTA; i++ {
		rl.Acquire()
	}

	if len(*slept) != 0 {
		t.Errorf("Expected no sleeps under quota but got '%v'", *slept)
	}
	if tracked := rl.Tracked(); tracked != RATE_QUOTA {
		t.Errorf("Expected '%d' tracked slots but got '%d'", RATE_QUOTA, tracked)
	}
}

func TestAcquireOverQuotaWaits(t *testing.T) {
	rl, _, slept := newTestLimiter(RATE_QUOTA, RATE_PERIOD)

	for i := 0; i < RATE_QUOTA; i++ {
		rl.Acquire()
	}

	// The quota-plus-first call must wait out the full period, since every
	// admission above happened on the same fake instant.
	rl.Acquire()

	if len(*slept) != 1 {
		t.Fatalf("Expected exactly one sleep but got '%d'", len(*slept))
	}
	if (*slept)[0] != RATE_PERIOD {
		t.Errorf("Expected a sleep of '%s' but got '%s'", RATE_PERIOD, (*slept)[0])
	}
}

func TestAcquireAfterWindowExpiry(t *testing.T) {
	rl, now, slept := newTestLimiter(RATE_QUOTA, RATE_PERIOD)

	for i := 0; i < RATE_QUOTA; i++ {
		rl.Acquire()
	}

	// Step past the window; every slot expires and the count drains to zero.
	*now = now.Add(RATE_PERIOD + time.Millisecond)

	if tracked := rl.Tracked(); tracked != 0 {
		t.Errorf("Expected '0' tracked slots after expiry but got '%d'", tracked)
	}

	rl.Acquire()
	if len(*slept) != 0 {
		t.Errorf("Expected no sleeps after window expiry but got '%v'", *slept)
	}
}

func TestWaitersAdmitInOrder(t *testing.T) {
	rl, _, _ := newTestLimiter(2, RATE_PERIOD)

	rl.Acquire()
	rl.Acquire()

	// Third and fourth callers stack behind the first and second slot
	// respectively, so the fourth's wait must not be shorter than the third's.
	thirdWait := rl.reserve()
	fourthWait := rl.reserve()

	if thirdWait <= 0 || fourthWait <= 0 {
		t.Fatalf("Expected positive waits but got '%s' and '%s'", thirdWait, fourthWait)
	}
	if fourthWait < thirdWait {
		t.Errorf("Expected FIFO admission but got waits '%s' then '%s'", thirdWait, fourthWait)
	}
}
