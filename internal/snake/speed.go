package snake

import (
	"time"

	"github.com/vovakirdan/term-snake/internal/config"
)

// SpeedRamp shortens the tick delay by a fixed step every interval of real time.
type SpeedRamp struct {
	delay    time.Duration
	step     time.Duration
	floor    time.Duration
	interval time.Duration
	last     time.Time
	level    int
}

// NewSpeedRamp creates a ramp whose first interval starts at start.
func NewSpeedRamp(cfg config.SpeedConfig, start time.Time) *SpeedRamp {
	return &SpeedRamp{
		delay:    cfg.InitialDelay(),
		step:     cfg.Step(),
		floor:    cfg.MinDelay(),
		interval: cfg.Interval(),
		last:     start,
	}
}

// Delay returns the current tick delay.
func (r *SpeedRamp) Delay() time.Duration {
	return r.delay
}

// Level returns how many times the delay has been shortened.
func (r *SpeedRamp) Level() int {
	return r.level
}

// MaybeIncrease shortens the delay if a full interval has passed since the
// last change. The delay never drops below the floor; the interval restarts
// either way. Returns true if the delay changed.
func (r *SpeedRamp) MaybeIncrease(now time.Time) bool {
	if now.Sub(r.last) < r.interval {
		return false
	}
	r.last = now

	next := max(r.delay-r.step, r.floor)
	if next == r.delay {
		return false
	}
	r.delay = next
	r.level++
	return true
}
