package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, now time.Time) Model {
	t.Helper()
	rc := core.RuntimeConfig{Seed: 42, Now: func() time.Time { return epoch }}
	game, err := snake.New(config.DefaultSnakeConfig(), rc)
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	return NewModel(game, Options{
		StudentID: "20231234",
		Hold:      time.Millisecond,
		Clock:     func() time.Time { return now },
		Logger:    log.New(io.Discard),
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTickMovesNorth(t *testing.T) {
	m := newTestModel(t, epoch)
	head := m.Game().Head()

	m, cmd := update(t, m, TickMsg(epoch))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.Game().Head() != head-config.BoardWidth {
		t.Errorf("head = %d, expected %d", m.Game().Head(), head-config.BoardWidth)
	}
}

func TestModelIgnoresBufferedReverse(t *testing.T) {
	m := newTestModel(t, epoch)
	head := m.Game().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Game().Head() != head {
		t.Fatal("a key must not move the snake before the tick")
	}

	m, _ = update(t, m, TickMsg(epoch))
	if m.Game().Direction() != snake.North {
		t.Errorf("direction = %v, expected north after a reverse request", m.Game().Direction())
	}
	if m.Game().Head() != head-config.BoardWidth {
		t.Error("snake should keep moving north")
	}
}

func TestModelMostRecentKeyWins(t *testing.T) {
	m := newTestModel(t, epoch)
	head := m.Game().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, TickMsg(epoch))

	if m.Game().Direction() != snake.East {
		t.Errorf("direction = %v, expected east", m.Game().Direction())
	}
	if m.Game().Head() != head+1 {
		t.Errorf("head = %d, expected %d", m.Game().Head(), head+1)
	}
}

func TestModelSpeedRamp(t *testing.T) {
	m := newTestModel(t, epoch.Add(15*time.Second))

	m, _ = update(t, m, TickMsg(epoch))
	if m.Game().Delay() != 90*time.Millisecond {
		t.Errorf("Delay() = %v, expected 90ms", m.Game().Delay())
	}
}

func TestModelQuitShowsGameOver(t *testing.T) {
	m := newTestModel(t, epoch)

	m, cmd := update(t, m, runes("q"))
	if cmd != nil {
		t.Error("q should be buffered until the tick")
	}

	m, cmd = update(t, m, TickMsg(epoch))
	if cmd == nil {
		t.Fatal("game over should start the hold timer")
	}
	if m.Game().Status() != snake.Over {
		t.Errorf("Status() = %v, expected over", m.Game().Status())
	}
	if !strings.Contains(m.View(), "Game Over! Score = 0") {
		t.Error("View() should show the final score")
	}

	// Keys during the hold are ignored
	m, cmd = update(t, m, runes("x"))
	if cmd != nil {
		t.Error("keys during the hold should be ignored")
	}

	m, _ = update(t, m, holdDoneMsg{})
	if !strings.Contains(m.View(), core.ExitPrompt) {
		t.Error("View() should ask for a key after the hold")
	}

	_, cmd = update(t, m, runes("x"))
	if !isQuit(cmd) {
		t.Error("any key after the hold should quit")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(t, epoch)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelTicksStopAfterGameOver(t *testing.T) {
	m := newTestModel(t, epoch)
	m, _ = update(t, m, runes("q"))
	m, _ = update(t, m, TickMsg(epoch))

	_, cmd := update(t, m, TickMsg(epoch))
	if cmd != nil {
		t.Error("no tick should be scheduled after game over")
	}
}

func TestModelViewHUD(t *testing.T) {
	m := newTestModel(t, epoch)
	view := m.View()

	for _, want := range []string{"20231234", "Score", "100ms", "end game"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n"); lines < config.BoardHeight {
		t.Errorf("View() has %d lines, expected at least %d", lines, config.BoardHeight)
	}
}
