package snake

import "time"

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	Score     int
	Length    int
	HeadRow   int
	HeadCol   int
	HeadValue int // Negated target length; the body catches up to it
	Dir       Direction
	FoodCount int
	Delay     time.Duration
	Status    Status
	Outcome   Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	row, col := g.grid.RowCol(g.head)
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Length:    g.body.Len(),
		HeadRow:   row,
		HeadCol:   col,
		HeadValue: int(g.grid.At(g.head)),
		Dir:       g.dir,
		FoodCount: g.grid.Count(func(c Cell) bool { return c == Food }),
		Delay:     g.ramp.Delay(),
		Status:    g.status,
		Outcome:   g.last,
	}
}

// LogValues returns the snapshot as alternating keys and values for structured loggers.
func (s Snapshot) LogValues() []any {
	return []any{
		"tick", s.Tick,
		"score", s.Score,
		"length", s.Length,
		"head", [2]int{s.HeadRow, s.HeadCol},
		"dir", s.Dir.String(),
		"delay", s.Delay,
		"status", s.Status.String(),
	}
}
