package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/core"
)

func updatePrompt(t *testing.T, m PromptModel, msg tea.Msg) (PromptModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PromptModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected PromptModel", next)
	}
	return pm, cmd
}

func TestPromptAcceptsEightDigits(t *testing.T) {
	m := NewPromptModel(80, 24)

	m, _ = updatePrompt(t, m, runes("1234a5678"))
	m, cmd := updatePrompt(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.ID() != "12345678" {
		t.Errorf("ID() = %q, expected 12345678", m.ID())
	}
	if !isQuit(cmd) {
		t.Error("a valid ID should end the prompt")
	}
}

func TestPromptRejectsShortID(t *testing.T) {
	m := NewPromptModel(80, 24)

	m, _ = updatePrompt(t, m, runes("123"))
	m, cmd := updatePrompt(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("an invalid ID must keep the prompt open")
	}
	if !errors.Is(m.err, core.ErrInvalidID) {
		t.Errorf("err = %v, expected ErrInvalidID", m.err)
	}
	if m.field.Value() != "" {
		t.Errorf("field = %q, expected it cleared", m.field.Value())
	}
	if !strings.Contains(m.View(), "Student ID must be exactly 8 digits") {
		t.Error("View() should show the validation error")
	}
}

func TestPromptCursorEditing(t *testing.T) {
	m := NewPromptModel(80, 24)

	m, _ = updatePrompt(t, m, runes("1235"))
	m, _ = updatePrompt(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = updatePrompt(t, m, runes("4"))
	m, _ = updatePrompt(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = updatePrompt(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	if m.field.Value() != "1234" {
		t.Errorf("field = %q, expected 1234", m.field.Value())
	}
}

func TestPromptAbort(t *testing.T) {
	m := NewPromptModel(80, 24)

	m, cmd := updatePrompt(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("esc should abort the prompt")
	}
	if m.ID() != "" {
		t.Error("an aborted prompt has no ID")
	}
}
