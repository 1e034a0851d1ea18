package core

import (
	"math"
	"time"
)

// RateAccumulator banks elapsed time scaled by a rate and fires once for every
// whole unit crossed. Slow frames fire several times, fast frames may fire
// none, so event frequency is independent of frame pacing.
type RateAccumulator struct {
	Charge float64
	Rate   float64
}

// NewRateAccumulator returns an empty accumulator firing rate times per second.
func NewRateAccumulator(rate float64) RateAccumulator {
	return RateAccumulator{Rate: rate}
}

// Tick adds dt seconds of charge and returns how many triggers it produced.
func (a *RateAccumulator) Tick(dt float64) int {
	if dt <= 0 || !(a.Rate > 0) || math.IsInf(a.Rate, 0) {
		return 0
	}
	a.Charge += dt * a.Rate
	whole := math.Floor(a.Charge)
	a.Charge -= whole
	return int(whole)
}

// Reset drops any banked charge.
func (a *RateAccumulator) Reset() { a.Charge = 0 }

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the fixed tick length in seconds.
func (f *FixedStep) Step() float64 { return f.step.Seconds() }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.shouldStepAt(time.Now())
}

func (f *FixedStep) shouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
