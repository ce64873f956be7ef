package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of the HUD, overlays and the ID prompt.
type Theme struct {
	// HUD styles
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style

	// Overlay styles
	OverlayBox   lipgloss.Style
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style

	// Prompt styles
	PromptTitle  lipgloss.Style
	PromptInput  lipgloss.Style
	PromptCursor lipgloss.Style
	PromptError  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		OverlayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(1, 3),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		PromptTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		PromptInput:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		PromptCursor: lipgloss.NewStyle().Reverse(true),
		PromptError:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
