package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/core"
)

// ErrAborted is returned by RunPrompt when the player leaves without an ID.
var ErrAborted = errors.New("aborted by user")

// PromptModel asks for the student ID before the game starts.
type PromptModel struct {
	field    *core.IDField
	keys     PromptKeyMap
	help     help.Model
	theme    Theme
	err      error
	id       string
	width    int
	height   int
	quitting bool
}

// NewPromptModel creates an empty ID prompt.
func NewPromptModel(width, height int) PromptModel {
	return PromptModel{
		field:  core.NewIDField(),
		keys:   DefaultPromptKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m PromptModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m PromptModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		id, err := m.field.Submit()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.id = id
		return m, tea.Quit
	case key.Matches(msg, m.keys.Delete):
		m.field.Backspace()
	case key.Matches(msg, m.keys.Left):
		m.field.Left()
	case key.Matches(msg, m.keys.Right):
		m.field.Right()
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			m.field.Insert(r)
		}
	}
	return m, nil
}

// View renders the prompt.
func (m PromptModel) View() string {
	if m.quitting || m.id != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.PromptTitle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Welcome! Please enter your Student ID: "+m.renderField(), m.width))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(centerText(m.theme.PromptError.Render("Error: "+errorText(m.err)+". Try again."), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// renderField draws the digits padded to IDLength with the cursor highlighted.
func (m PromptModel) renderField() string {
	value := []rune(m.field.Value())
	var b strings.Builder
	for i := 0; i < core.IDLength; i++ {
		ch := "_"
		if i < len(value) {
			ch = string(value[i])
		}
		if i == m.field.Cursor() {
			b.WriteString(m.theme.PromptCursor.Render(ch))
			continue
		}
		b.WriteString(m.theme.PromptInput.Render(ch))
	}
	return b.String()
}

// ID returns the accepted ID, or "" if none was submitted.
func (m PromptModel) ID() string {
	return m.id
}

// IsQuitting returns true if the player aborted.
func (m PromptModel) IsQuitting() bool {
	return m.quitting
}

// errorText capitalizes an error message for display.
func errorText(err error) string {
	s := err.Error()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// centerText centers text within given width, measuring visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPrompt runs the ID prompt and returns the accepted ID.
func RunPrompt(cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewPromptModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(PromptModel)
	if !ok || m.IsQuitting() || m.ID() == "" {
		return "", ErrAborted
	}
	return m.ID(), nil
}
