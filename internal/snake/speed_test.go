package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/term-snake/internal/config"
)

func TestSpeedRampSteps(t *testing.T) {
	r := NewSpeedRamp(config.DefaultSnakeConfig().Speed, epoch)

	tests := []struct {
		at      time.Duration
		changed bool
		delay   time.Duration
	}{
		{0, false, 100 * time.Millisecond},
		{14 * time.Second, false, 100 * time.Millisecond},
		{15 * time.Second, true, 90 * time.Millisecond},
		{29 * time.Second, false, 90 * time.Millisecond}, // interval restarted at 15s
		{30 * time.Second, true, 80 * time.Millisecond},
		{31 * time.Second, false, 80 * time.Millisecond},
	}

	for _, tc := range tests {
		changed := r.MaybeIncrease(epoch.Add(tc.at))
		if changed != tc.changed {
			t.Errorf("at %v: MaybeIncrease() = %v, expected %v", tc.at, changed, tc.changed)
		}
		if r.Delay() != tc.delay {
			t.Errorf("at %v: Delay() = %v, expected %v", tc.at, r.Delay(), tc.delay)
		}
	}
	if r.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", r.Level())
	}
}

func TestSpeedRampClampsAtFloor(t *testing.T) {
	r := NewSpeedRamp(config.DefaultSnakeConfig().Speed, epoch)

	now := epoch
	for rep := 0; rep < 20; rep++ {
		now = now.Add(15 * time.Second)
		r.MaybeIncrease(now)
	}

	if r.Delay() != 20*time.Millisecond {
		t.Errorf("Delay() = %v, expected floor of 20ms", r.Delay())
	}
	if r.Level() != 8 {
		t.Errorf("Level() = %d, expected 8 effective increases", r.Level())
	}
	if r.MaybeIncrease(now.Add(time.Minute)) {
		t.Error("MaybeIncrease() at the floor should report no change")
	}
}

func TestSpeedRampUnevenStep(t *testing.T) {
	speed := config.DefaultSnakeConfig().Speed
	speed.InitialDelayMS = 25
	speed.StepMS = 10
	r := NewSpeedRamp(speed, epoch)

	r.MaybeIncrease(epoch.Add(15 * time.Second))
	if r.Delay() != 20*time.Millisecond {
		t.Errorf("Delay() = %v, expected clamp to 20ms instead of 15ms", r.Delay())
	}
}

func TestGameSpeedRampScenario(t *testing.T) {
	// 100ms start, 15 simulated seconds, no food eaten: exactly one 10ms decrease
	g := newTestGame(t, config.DefaultSnakeConfig(), 1)

	for s := 1; s <= 15; s++ {
		g.MaybeIncreaseSpeed(epoch.Add(time.Duration(s) * time.Second))
	}

	if g.Delay() != 90*time.Millisecond {
		t.Errorf("Delay() = %v, expected 90ms", g.Delay())
	}
	if g.SpeedLevel() != 1 {
		t.Errorf("SpeedLevel() = %d, expected 1", g.SpeedLevel())
	}
}
