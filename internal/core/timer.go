package core

import "time"

// DefaultTickInterval is used whenever a caller supplies a non-positive
// interval.
const DefaultTickInterval = 50 * time.Millisecond

// FixedStep helps deliver simulation ticks at a steady fixed interval.
// It accumulates wall-clock time between calls and reports when at least
// one full interval has elapsed, so generations are never committed
// closer together than the configured cadence.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing at the given interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	f.step = interval
}

// Interval returns the configured tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a tick is due. The first call after
// construction fires immediately so a freshly started simulation does not
// sit idle for a full interval. On firing the accumulator drops any
// remainder rather than carrying it over: consecutive ticks must be at
// least one full interval apart, even after a long frame gap.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}
