package snake

import "errors"

// ErrBoardFull is returned by Plant when no Empty cell is left.
var ErrBoardFull = errors.New("snake: board full")

// maxDrawsPerCell bounds rejection sampling before falling back to a scan.
const maxDrawsPerCell = 4

// Plant puts one food item on a uniformly chosen Empty cell.
//
// It draws random indices until one is Empty. On a crowded board that can take
// long, so after maxDrawsPerCell*len draws it picks the k-th Empty cell with k
// uniform over the remaining count instead. Either way every Empty cell is
// equally likely.
func (g *Game) Plant() error {
	empty := g.grid.EmptyCount()
	if empty == 0 {
		return ErrBoardFull
	}

	n := g.grid.Len()
	for draws, limit := 0, maxDrawsPerCell*n; draws < limit; draws++ {
		i := g.rng.Intn(n)
		if g.grid.At(i) == Empty {
			g.grid.Set(i, Food)
			return nil
		}
	}

	k := g.rng.Intn(empty)
	for i := 0; i < n; i++ {
		if g.grid.At(i) != Empty {
			continue
		}
		if k == 0 {
			g.grid.Set(i, Food)
			return nil
		}
		k--
	}
	return ErrBoardFull
}
