package classic

import (
	"context"

	"github.com/vovakirdan/term-snake/internal/core"
)

const promptText = "Welcome! Please enter your Student ID: "

// PromptID asks for the student ID until a valid one is entered.
// Escape or ctrl+c returns ErrInterrupted.
func PromptID(ctx context.Context, term Terminal, width, height int) (string, error) {
	field := core.NewIDField()
	screen := core.NewScreen(width, height)
	invalid := false

	for {
		screen.Clear()
		screen.DrawText(0, 0, promptText)
		value := []rune(field.Value())
		for i := 0; i < core.IDLength; i++ {
			r := '_'
			if i < len(value) {
				r = value[i]
			}
			color := core.ColorBrightWhite
			if i == field.Cursor() {
				color = core.ColorCyan
			}
			screen.SetColored(len(promptText)+i, 0, r, color)
		}
		if invalid {
			screen.DrawTextColored(0, 1, "Error: Student ID must be exactly 8 digits. Try again.", core.ColorRed)
		}
		flush(term, screen)

		k, err := term.WaitKey(ctx)
		if err != nil {
			return "", err
		}

		switch k.Code {
		case KeyInterrupt, KeyEscape:
			return "", ErrInterrupted
		case KeyEnter:
			if id, err := field.Submit(); err == nil {
				return id, nil
			}
			invalid = true
		case KeyBackspace:
			field.Backspace()
		case KeyLeft:
			field.Left()
		case KeyRight:
			field.Right()
		case KeyRune:
			field.Insert(k.Rune)
		}
	}
}
