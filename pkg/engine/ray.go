package engine

import "iter"

// Direction is a step in rows and columns. North points away from the local
// back rank.
type Direction struct {
	Rows, Cols int
}

var (
	North     = Direction{1, 0}
	South     = Direction{-1, 0}
	East      = Direction{0, 1}
	West      = Direction{0, -1}
	NorthEast = Direction{1, 1}
	NorthWest = Direction{1, -1}
	SouthEast = Direction{-1, 1}
	SouthWest = Direction{-1, -1}
)

var (
	orthogonals   = []Direction{North, South, East, West}
	diagonals     = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	allDirections = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
)

var knightOffsets = [8][2]int{
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
}

func (d Direction) Diagonal() bool {
	return d.Rows != 0 && d.Cols != 0
}

// Ray yields the cells met walking from origin (excluded) towards d. The walk
// ends at the board edge, after limit steps when limit > 0, or after the
// first occupied cell, which is yielded.
func (b *Board) Ray(origin int, d Direction, limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row, col := rowOf(origin), colOf(origin)
		for step := 1; limit <= 0 || step <= limit; step++ {
			row, col = row+d.Rows, col+d.Cols
			cell, ok := cellAt(row, col)
			if !ok {
				return
			}
			if !yield(cell) {
				return
			}
			if !b.cells[cell].Empty() {
				return
			}
		}
	}
}

// knightCells lists the on-board knight jumps from origin.
func knightCells(origin int) []int {
	row, col := rowOf(origin), colOf(origin)
	cells := make([]int, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		if c, ok := cellAt(row+off[0], col+off[1]); ok {
			cells = append(cells, c)
		}
	}
	return cells
}
