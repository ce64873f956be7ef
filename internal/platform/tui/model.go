package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

// phase is where the model is in a single game session.
type phase int

const (
	phasePlaying  phase = iota
	phaseGameOver       // Final score held on screen
	phaseExit           // Waiting for any key
)

// Options configures the game model.
type Options struct {
	StudentID string
	Hold      time.Duration    // How long the game over message stays up
	Clock     func() time.Time // Wall clock for the speed ramp; nil means time.Now
	Logger    *log.Logger
}

// Model is the Bubble Tea model running one snake game.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	theme     Theme
	logger    *log.Logger
	clock     func() time.Time
	input     core.InputFrame
	studentID string
	hold      time.Duration
	phase     phase
	width     int
	quitting  bool
}

// NewModel creates a model for an already started game.
func NewModel(game *snake.Game, opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	grid := game.Grid()
	return Model{
		game:      game,
		screen:    core.NewScreen(grid.Width(), grid.Height()),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     DefaultTheme(),
		logger:    logger,
		clock:     clock,
		input:     core.NewInputFrame(),
		studentID: opts.StudentID,
		hold:      opts.Hold,
		width:     grid.Width(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.Delay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case holdDoneMsg:
		m.phase = phaseExit
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Steering keys are only buffered here;
// they take effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phasePlaying:
		if a := m.keys.Action(msg); a != core.ActionNone {
			m.input.Set(a)
		}
	case phaseExit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick runs one simulation tick: apply input, step, ramp the speed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, nil
	}

	m.applyInput()
	m.input.Clear()

	if m.game.Status() == snake.Playing {
		outcome := m.game.Step()
		if outcome == snake.Grew {
			m.logger.Debug("food eaten", "score", m.game.Score(), "length", m.game.Length())
		}
	}

	if m.game.MaybeIncreaseSpeed(m.clock()) {
		m.logger.Info("speed increased", "delay", m.game.Delay(), "level", m.game.SpeedLevel())
	}

	if m.game.Status() != snake.Playing {
		m.phase = phaseGameOver
		m.logger.Info("game over", m.game.Snapshot().LogValues()...)
		return m, holdCmd(m.hold)
	}

	return m, tickCmd(m.game.Delay())
}

// applyInput hands the buffered frame to the game.
func (m *Model) applyInput() {
	if m.input.Has(core.ActionQuit) {
		m.game.Quit()
		m.logger.Info("player quit", "score", m.game.Score())
		return
	}
	if d, ok := snake.DirectionFor(m.input.Last()); ok {
		m.game.SetDirection(d)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == phaseExit {
		m.screen.Clear()
		m.screen.DrawText(0, 0, core.ExitPrompt)
		return RenderScreen(m.screen)
	}

	m.screen.Clear()
	m.game.Draw(m.screen, 0, 0)
	if m.phase == phaseGameOver {
		m.screen.DrawPanel(core.GameOverLines(m.game.State()), core.ColorYellow)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.hudView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// hudView renders the status line under the board.
func (m Model) hudView() string {
	sep := m.theme.HUDSeparator.Render("  │  ")
	field := func(label, value string) string {
		return m.theme.HUDLabel.Render(label+" ") + m.theme.HUDValue.Render(value)
	}

	parts := []string{
		field("Score", fmt.Sprintf("%d", m.game.Score())),
		field("Length", fmt.Sprintf("%d", m.game.Length())),
		field("Delay", m.game.Delay().String()),
	}
	if m.studentID != "" {
		parts = append([]string{field("ID", m.studentID)}, parts...)
	}
	return strings.Join(parts, sep)
}

// Game returns the game driven by the model.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game *snake.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
