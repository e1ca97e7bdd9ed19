package core

import "time"

// FixedStep converts irregular frame deltas into a whole number of
// fixed-size simulation ticks. The caller supplies elapsed time; the
// controller never consults the wall clock itself.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	maxTicks    int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS,
// emitting at most maxTicks ticks per Advance call.
func NewFixedStep(tps, maxTicks int) *FixedStep {
	if maxTicks <= 0 {
		maxTicks = 1
	}
	fs := &FixedStep{maxTicks: maxTicks}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance accumulates delta and returns how many ticks the simulation
// should run, capped at maxTicks. Excess accumulated time is carried to
// the next call, never dropped.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta < 0 {
		delta = 0
	}
	f.accumulator += delta
	ticks := 0
	for f.accumulator >= f.step && ticks < f.maxTicks {
		f.accumulator -= f.step
		ticks++
	}
	return ticks
}

// Reset discards any accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }
