package snake

import (
	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
)

// Glyphs maps cell kinds to display runes.
type Glyphs struct {
	Border rune
	Food   rune
	Body   rune
	Empty  rune
}

// DefaultGlyphs returns the classic look: dotted walls, @ food, # body.
func DefaultGlyphs() Glyphs {
	return Glyphs{Border: '.', Food: '@', Body: '#', Empty: ' '}
}

// GlyphsFrom builds glyphs from config, keeping defaults for unusable values.
func GlyphsFrom(cfg config.GlyphConfig) Glyphs {
	d := DefaultGlyphs()
	return Glyphs{
		Border: config.Rune(cfg.Border, d.Border),
		Food:   config.Rune(cfg.Food, d.Food),
		Body:   config.Rune(cfg.Body, d.Body),
		Empty:  config.Rune(cfg.Empty, d.Empty),
	}
}

// Symbol returns the rune and color used for a cell.
func (gl Glyphs) Symbol(c Cell) (rune, core.Color) {
	switch {
	case c.IsBody():
		return gl.Body, core.ColorGreen
	case c == Food:
		return gl.Food, core.ColorRed
	case c == Border:
		return gl.Border, core.ColorGray
	default:
		return gl.Empty, core.ColorDefault
	}
}

// Glyph is one drawable grid cell.
type Glyph struct {
	Row    int
	Col    int
	Symbol rune
	Color  core.Color
}

// Render projects every grid cell to a glyph, row-major. It does not modify the grid.
func Render(g *Grid, gl Glyphs) []Glyph {
	out := make([]Glyph, g.Len())
	for i, n := 0, g.Len(); i < n; i++ {
		row, col := g.RowCol(i)
		sym, color := gl.Symbol(g.At(i))
		out[i] = Glyph{Row: row, Col: col, Symbol: sym, Color: color}
	}
	return out
}

// Render projects the game's grid using its configured glyphs.
// The head is highlighted with a brighter color.
func (g *Game) Render() []Glyph {
	out := Render(g.grid, g.glyphs)
	out[g.head].Color = core.ColorBrightGreen
	return out
}

// Draw writes the board into dst with its top-left corner at (x0, y0).
func (g *Game) Draw(dst *core.Screen, x0, y0 int) {
	for _, gl := range g.Render() {
		dst.SetColored(x0+gl.Col, y0+gl.Row, gl.Symbol, gl.Color)
	}
}
