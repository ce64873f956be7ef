package core

import "fmt"

// ExitPrompt is shown after the game over hold, before the program exits.
const ExitPrompt = "Press any key to exit..."

// GameOverLines returns the text of the game over panel.
func GameOverLines(state GameState) []string {
	lines := []string{fmt.Sprintf("Game Over! Score = %d", state.Score)}
	if state.Won {
		lines = append(lines, "The board is full!")
	}
	return lines
}
