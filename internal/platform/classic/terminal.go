package classic

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/core"
)

// tcellColors maps core.Color to the terminal palette.
var tcellColors = map[core.Color]tcell.Color{
	core.ColorDefault:     tcell.ColorDefault,
	core.ColorRed:         tcell.ColorMaroon,
	core.ColorGreen:       tcell.ColorGreen,
	core.ColorYellow:      tcell.ColorOlive,
	core.ColorCyan:        tcell.ColorTeal,
	core.ColorBrightGreen: tcell.ColorLime,
	core.ColorBrightWhite: tcell.ColorWhite,
	core.ColorGray:        tcell.ColorGray,
}

// Screen is a Terminal backed by tcell.
// Key events are read on a separate goroutine and kept in a one-slot buffer
// that always holds the most recent key, like a terminal read without delay.
type Screen struct {
	s      tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	keys   chan Key
}

// NewScreen takes over the terminal. Call Close to restore it.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return newScreen(s)
}

// newScreen initializes s and starts reading its events.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()

	ts := &Screen{
		s:      s,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
		keys:   make(chan Key, 1),
	}
	go s.ChannelEvents(ts.events, ts.quit)
	go ts.pump()
	return ts, nil
}

// pump converts tcell events to keys until the event channel closes.
func (ts *Screen) pump() {
	for ev := range ts.events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if k := convertKey(ev); k.Code != KeyNone {
				ts.offer(k)
			}
		case *tcell.EventResize:
			ts.s.Sync()
		}
	}
}

// offer stores k, replacing an unread older key.
func (ts *Screen) offer(k Key) {
	select {
	case ts.keys <- k:
		return
	default:
	}
	select {
	case <-ts.keys:
	default:
	}
	select {
	case ts.keys <- k:
	default:
	}
}

func convertKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return Key{Code: KeyUp}
	case tcell.KeyDown:
		return Key{Code: KeyDown}
	case tcell.KeyLeft:
		return Key{Code: KeyLeft}
	case tcell.KeyRight:
		return Key{Code: KeyRight}
	case tcell.KeyEnter:
		return Key{Code: KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Code: KeyBackspace}
	case tcell.KeyEscape:
		return Key{Code: KeyEscape}
	case tcell.KeyCtrlC:
		return Key{Code: KeyInterrupt}
	case tcell.KeyRune:
		return Key{Code: KeyRune, Rune: ev.Rune()}
	}
	return Key{}
}

// PollKey returns the pending key, if any.
func (ts *Screen) PollKey() (Key, bool) {
	select {
	case k := <-ts.keys:
		return k, true
	default:
		return Key{}, false
	}
}

// WaitKey blocks until a key arrives.
func (ts *Screen) WaitKey(ctx context.Context) (Key, error) {
	select {
	case k := <-ts.keys:
		return k, nil
	case <-ctx.Done():
		return Key{}, ctx.Err()
	}
}

// DrawCell sets one cell of the back buffer.
func (ts *Screen) DrawCell(x, y int, r rune, c core.Color) {
	fg, ok := tcellColors[c]
	if !ok {
		fg = tcell.ColorDefault
	}
	ts.s.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg))
}

// Present shows the back buffer.
func (ts *Screen) Present() {
	ts.s.Show()
}

// Close stops reading events and restores the terminal.
func (ts *Screen) Close() {
	close(ts.quit)
	ts.s.Fini()
}
