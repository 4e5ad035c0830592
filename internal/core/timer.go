package core

import "time"

// maxBacklogTicks bounds how many ticks can queue up after a stall so the
// loop catches up gradually instead of bursting.
const maxBacklogTicks = 4

// FixedStep paces simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step    time.Duration
	backlog time.Duration
	last    time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first ShouldStep call after construction fires immediately.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{}
	f.SetTPS(tps)
	f.backlog = f.step
	return f
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.backlog += now.Sub(f.last)
	f.last = now

	if limit := time.Duration(maxBacklogTicks) * f.step; f.backlog > limit {
		f.backlog = limit
	}
	if f.backlog < f.step {
		return false
	}
	f.backlog -= f.step
	return true
}
