package snake

// Cell is the content of one grid square.
// Non-negative values are fixed kinds; a negative value is a body segment
// whose magnitude counts the ticks left before it turns back into Empty.
type Cell int

const (
	Empty  Cell = 0
	Food   Cell = 1
	Border Cell = 2
)

// IsBody reports whether the cell holds a snake segment.
func (c Cell) IsBody() bool {
	return c < 0
}

func (c Cell) String() string {
	switch {
	case c == Empty:
		return "empty"
	case c == Food:
		return "food"
	case c == Border:
		return "border"
	case c.IsBody():
		return "body"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size board stored row-major.
// It tracks how many cells are Empty so food placement knows when the board is full.
type Grid struct {
	width  int
	height int
	cells  []Cell
	empty  int
}

// NewGrid creates a board with the outer ring stamped as Border.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		empty:  width * height,
	}
	for col := 0; col < width; col++ {
		g.Set(g.Index(0, col), Border)
		g.Set(g.Index(height-1, col), Border)
	}
	for row := 1; row < height-1; row++ {
		g.Set(g.Index(row, 0), Border)
		g.Set(g.Index(row, width-1), Border)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index converts a (row, col) pair to a cell index.
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// RowCol converts a cell index to (row, col).
func (g *Grid) RowCol(i int) (row, col int) {
	return i / g.width, i % g.width
}

// At returns the cell at index i.
func (g *Grid) At(i int) Cell {
	return g.cells[i]
}

// Set stores c at index i and keeps the empty count current.
func (g *Grid) Set(i int, c Cell) {
	old := g.cells[i]
	if old == c {
		return
	}
	if old == Empty {
		g.empty--
	}
	if c == Empty {
		g.empty++
	}
	g.cells[i] = c
}

// EmptyCount returns how many cells are Empty.
func (g *Grid) EmptyCount() int {
	return g.empty
}

// Count returns how many cells satisfy match.
func (g *Grid) Count(match func(Cell) bool) int {
	n := 0
	for _, c := range g.cells {
		if match(c) {
			n++
		}
	}
	return n
}

// OnRing reports whether index i lies on the outer ring.
func (g *Grid) OnRing(i int) bool {
	row, col := g.RowCol(i)
	return row == 0 || row == g.height-1 || col == 0 || col == g.width-1
}
