package aspen

import "time"

// Clock supplies the engine's notion of time. Production code uses
// SystemClock; tests and hosts that step time themselves use a ManualClock.
// Timestamps handed to the engine must never decrease between calls.
type Clock interface {
	Now() time.Time
}

// SystemClock returns a Clock backed by time.Now, including its monotonic
// reading.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that moves only when told to. It gives tests and
// deterministic hosts exact control over long-press deadlines and
// deceleration ticks.
//
// No locking; aspen is single-threaded and the clock must be driven from the
// same goroutine as the engine.
type ManualClock struct {
	current time.Time
}

// NewManualClock returns a ManualClock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time { return c.current }

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) { c.current = t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.current = c.current.Add(d) }
