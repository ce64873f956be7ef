package classic

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	ts, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() failed: %v", err)
	}
	sim.SetSize(20, 10)
	t.Cleanup(ts.Close)
	return ts, sim
}

func TestScreenDrawCell(t *testing.T) {
	ts, sim := newSimScreen(t)

	ts.DrawCell(2, 3, '@', core.ColorRed)
	ts.Present()

	r, _, style, _ := sim.GetContent(2, 3)
	if r != '@' {
		t.Errorf("cell = %q, expected '@'", r)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.ColorMaroon {
		t.Errorf("foreground = %v, expected maroon", fg)
	}
}

func TestScreenOfferKeepsMostRecentKey(t *testing.T) {
	ts := &Screen{keys: make(chan Key, 1)}

	ts.offer(Key{Code: KeyLeft})
	ts.offer(key('q'))

	k, ok := ts.PollKey()
	if !ok || k != key('q') {
		t.Errorf("PollKey() = %+v, %v, expected the later 'q'", k, ok)
	}
	if _, ok := ts.PollKey(); ok {
		t.Error("older key should have been dropped")
	}
}

func TestScreenReadsInjectedKey(t *testing.T) {
	ts, sim := newSimScreen(t)

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	k, err := ts.WaitKey(ctx)
	if err != nil {
		t.Fatalf("WaitKey() failed: %v", err)
	}
	if k.Code != KeyRight {
		t.Errorf("WaitKey() = %+v, expected right arrow", k)
	}
}

func TestScreenWaitKeyCanceled(t *testing.T) {
	ts, _ := newSimScreen(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ts.WaitKey(ctx); err == nil {
		t.Error("WaitKey() should fail on a canceled context")
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Key{Code: KeyUp}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Key{Code: KeyEnter}},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Key{Code: KeyBackspace}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Key{Code: KeyInterrupt}},
		{tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), key('5')},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), Key{}},
	}
	for _, tc := range tests {
		if got := convertKey(tc.ev); got != tc.want {
			t.Errorf("convertKey(%v) = %+v, expected %+v", tc.ev.Name(), got, tc.want)
		}
	}
}
