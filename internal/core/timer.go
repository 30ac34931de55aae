package core

import "time"

// DefaultStepInterval is the real-time spacing between generations.
const DefaultStepInterval = 150 * time.Millisecond

// FixedStep helps run simulation updates at a steady real-time interval,
// independent of how often the frontend polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step spacing. Non-positive values select
// DefaultStepInterval.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	f.step = interval
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval reports the current step spacing.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetClock replaces the time source. It is intended for tests.
func (f *FixedStep) SetClock(now func() time.Time) {
	f.now = now
	f.last = time.Time{}
}

// Restart forgets accumulated time so the next step is a full interval away.
// Unpausing calls this so that time spent paused is not replayed.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick is reported per call and any backlog beyond it is dropped.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
