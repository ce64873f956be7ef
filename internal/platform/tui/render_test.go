package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/term-snake/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, ".....")
	s.SetColored(1, 1, '#', core.ColorGreen)
	s.SetColored(2, 1, '@', core.ColorRed)

	got := RenderScreen(s)
	if got != ".....\n #@  " {
		t.Errorf("RenderScreen() = %q", got)
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "###", core.ColorGreen)
	s.SetColored(3, 0, '@', core.ColorRed)

	got := RenderScreen(s)
	if !strings.Contains(got, "###") {
		t.Errorf("same-colored cells should share one run: %q", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI styling with a color profile: %q", got)
	}
}
