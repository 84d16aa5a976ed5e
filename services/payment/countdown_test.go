package payment

import (
	"sync"
	"testing"
	"time"
)

// settableClock is a clock that tests can advance while the countdown
// goroutine reads it.
type settableClock struct {
	mu  sync.Mutex
	now time.Time
}

func (s *settableClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *settableClock) Set(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = t
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00 : 00 : 00"},
		{59 * time.Second, "00 : 00 : 59"},
		{15 * time.Minute, "00 : 15 : 00"},
		{23*time.Hour + 59*time.Minute + 59*time.Second, "23 : 59 : 59"},
		{24 * time.Hour, "24 : 00 : 00"},
	}
	for _, tc := range tests {
		if got := FormatRemaining(tc.d); got != tc.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestCountdownRemainingNeverNegative(t *testing.T) {
	deadline := time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC)
	c := NewCountdown(deadline)
	c.clock = func() time.Time { return deadline.Add(time.Hour) }

	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining past deadline = %v, want 0", got)
	}
}

func TestCountdownTickContents(t *testing.T) {
	deadline := time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC)

	c := NewCountdown(deadline)
	c.clock = func() time.Time { return deadline.Add(-2 * time.Hour) }
	c.emit()

	tick := <-c.Ticks()
	if tick.Remaining != 2*time.Hour {
		t.Errorf("remaining = %v, want 2h", tick.Remaining)
	}
	if tick.Display != "02 : 00 : 00" {
		t.Errorf("display = %q, want 02 : 00 : 00", tick.Display)
	}
	if tick.Urgent {
		t.Error("two hours out must not be urgent")
	}
	if tick.Expired {
		t.Error("two hours out must not be expired")
	}
}

func TestCountdownUrgentUnderFifteenMinutes(t *testing.T) {
	deadline := time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC)

	c := NewCountdown(deadline)
	c.clock = func() time.Time { return deadline.Add(-14 * time.Minute) }
	c.emit()

	tick := <-c.Ticks()
	if !tick.Urgent {
		t.Error("under fifteen minutes must be urgent")
	}
	if tick.Expired {
		t.Error("not yet expired")
	}

	c2 := NewCountdown(deadline)
	c2.clock = func() time.Time { return deadline.Add(-UrgentThreshold) }
	c2.emit()
	if tick := <-c2.Ticks(); tick.Urgent {
		t.Error("exactly fifteen minutes out is not yet urgent")
	}
}

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	deadline := time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC)

	c := NewCountdown(deadline)
	c.clock = func() time.Time { return deadline }

	if terminal := c.emit(); !terminal {
		t.Fatal("emit at the deadline must be terminal")
	}
	tick := <-c.Ticks()
	if !tick.Expired {
		t.Fatal("expected the expired tick")
	}
	if !c.Expired() {
		t.Error("countdown must report expired")
	}

	// A second emit is suppressed and Start is a no-op once done.
	if terminal := c.emit(); !terminal {
		t.Error("emit after expiry must stay terminal")
	}
	select {
	case extra := <-c.Ticks():
		t.Errorf("unexpected extra tick after expiry: %+v", extra)
	default:
	}

	c.Start()
	c.mu.Lock()
	running := c.running
	c.mu.Unlock()
	if running {
		t.Error("Start after expiry must not run")
	}
}

func TestCountdownStopStartNoDrift(t *testing.T) {
	deadline := time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC)
	clock := &settableClock{now: deadline.Add(-1 * time.Hour)}

	c := NewCountdown(deadline)
	c.interval = time.Millisecond
	c.clock = clock.Now

	c.Start()
	first := <-c.Ticks()
	c.Stop()

	// Time passes while stopped; remaining must reflect the wall clock,
	// not the tick count.
	clock.Set(deadline.Add(-10 * time.Minute))
	c.Start()

	var resumed Tick
	for resumed = range c.Ticks() {
		if resumed.Remaining <= 10*time.Minute {
			break
		}
	}
	c.Stop()

	if first.Remaining != time.Hour {
		t.Errorf("first tick remaining = %v, want 1h", first.Remaining)
	}
	if resumed.Remaining != 10*time.Minute {
		t.Errorf("resumed tick remaining = %v, want 10m", resumed.Remaining)
	}
	if !resumed.Urgent {
		t.Error("ten minutes out must be urgent")
	}
}

func TestCountdownRunToExpiry(t *testing.T) {
	deadline := time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC)
	clock := &settableClock{now: deadline.Add(-2 * time.Second)}

	c := NewCountdown(deadline)
	c.interval = time.Millisecond
	c.clock = clock.Now

	c.Start()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case tick := <-c.Ticks():
			if tick.Expired {
				if tick.Remaining != 0 {
					t.Errorf("terminal tick remaining = %v, want 0", tick.Remaining)
				}
				if tick.Display != "00 : 00 : 00" {
					t.Errorf("terminal display = %q", tick.Display)
				}
				return
			}
			// Advance the clock toward the deadline.
			clock.Set(clock.Now().Add(time.Second))
		case <-timeout:
			t.Fatal("countdown never expired")
		}
	}
}
