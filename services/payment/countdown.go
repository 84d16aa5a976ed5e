package payment

import (
	"fmt"
	"sync"
	"time"
)

// UrgentThreshold is the remaining time under which a tick is flagged
// urgent so the consumer can escalate its presentation.
const UrgentThreshold = 15 * time.Minute

// Tick is a single countdown observation.
type Tick struct {
	Remaining time.Duration
	Display   string // "HH : MM : SS", zero padded
	Urgent    bool
	Expired   bool // terminal; emitted exactly once
}

// Countdown tracks a payment deadline and emits one Tick per second.
// Remaining time is always derived from the absolute deadline against
// the wall clock, so stopping and restarting around visibility changes
// never drifts. After the terminal expired tick the countdown is done:
// further Start calls are no-ops.
type Countdown struct {
	deadline time.Time
	interval time.Duration
	clock    func() time.Time

	ticks chan Tick

	mu      sync.Mutex
	stop    chan struct{}
	running bool
	done    bool
}

// NewCountdown creates a countdown toward the given deadline, ticking
// once per second.
func NewCountdown(deadline time.Time) *Countdown {
	return &Countdown{
		deadline: deadline,
		interval: time.Second,
		clock:    time.Now,
		ticks:    make(chan Tick, 1),
	}
}

// Ticks delivers countdown observations while the countdown runs.
func (c *Countdown) Ticks() <-chan Tick {
	return c.ticks
}

// Remaining computes the time left until the deadline. Never negative.
func (c *Countdown) Remaining() time.Duration {
	rem := c.deadline.Sub(c.clock())
	if rem < 0 {
		return 0
	}
	return rem
}

// Expired reports whether the terminal tick has been emitted.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Start begins (or resumes) ticking. Starting a running or already
// expired countdown does nothing.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running || c.done {
		return
	}
	c.stop = make(chan struct{})
	c.running = true
	go c.run(c.stop)
}

// Stop suspends ticking. The countdown can be resumed with Start; since
// remaining time depends only on the deadline, no elapsed time is lost.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	close(c.stop)
	c.running = false
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	if c.emit() {
		return
	}
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if c.emit() {
				return
			}
		}
	}
}

// emit publishes the current observation, returning true on the
// terminal expired tick. A slow consumer only ever misses intermediate
// ticks; the terminal one replaces whatever is buffered.
func (c *Countdown) emit() bool {
	rem := c.Remaining()
	tick := Tick{
		Remaining: rem,
		Display:   FormatRemaining(rem),
		Urgent:    rem < UrgentThreshold,
		Expired:   rem == 0,
	}

	if tick.Expired {
		c.mu.Lock()
		if c.done {
			c.mu.Unlock()
			return true
		}
		c.done = true
		c.running = false
		c.mu.Unlock()
	}

	select {
	case c.ticks <- tick:
	default:
		select {
		case <-c.ticks:
		default:
		}
		c.ticks <- tick
	}
	return tick.Expired
}

// FormatRemaining renders a duration as "HH : MM : SS".
func FormatRemaining(d time.Duration) string {
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d : %02d : %02d", hours, minutes, seconds)
}
