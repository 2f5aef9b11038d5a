package engine

// LegalMoves returns the cells the piece on origin may move to. Every
// destination has already been checked not to leave the mover's king
// attacked; castling is only offered to the local king.
func (b *Board) LegalMoves(origin int) []int {
	if origin < 0 || origin >= numOfSquaresInBoard {
		return nil
	}
	switch b.cells[origin].Kind.Role() {
	case Pawn:
		return b.pawnMoves(origin)
	case Knight:
		return b.knightMoves(origin)
	case Bishop:
		return b.slide(origin, diagonals, 0)
	case Rook:
		return b.slide(origin, orthogonals, 0)
	case Queen:
		return b.slide(origin, allDirections, 0)
	case King:
		return append(b.slide(origin, allDirections, 1), b.castles(origin)...)
	}
	return nil
}

// keep appends to to moves when the cell is empty or holds an enemy and the
// move does not expose the king.
func (b *Board) keep(moves []int, from, to int) []int {
	if !b.cells[to].Empty() && !b.enemyOf(from, to) {
		return moves
	}
	if b.exposes(from, to) {
		return moves
	}
	return append(moves, to)
}

func (b *Board) slide(origin int, dirs []Direction, limit int) []int {
	var moves []int
	for _, d := range dirs {
		for c := range b.Ray(origin, d, limit) {
			moves = b.keep(moves, origin, c)
		}
	}
	return moves
}

func (b *Board) knightMoves(origin int) []int {
	var moves []int
	for _, c := range knightCells(origin) {
		moves = b.keep(moves, origin, c)
	}
	return moves
}

func (b *Board) pawnMoves(origin int) []int {
	side := b.cells[origin].Kind.White()
	f := b.forward(side)
	limit := 1
	if rowOf(origin) == b.pawnRow(side) {
		limit = 2
	}

	var moves []int
	for c := range b.Ray(origin, Direction{f, 0}, limit) {
		if !b.cells[c].Empty() {
			break
		}
		moves = b.keep(moves, origin, c)
	}
	for _, dc := range [2]int{-1, 1} {
		c, ok := cellAt(rowOf(origin)+f, colOf(origin)+dc)
		if ok && b.enemyOf(origin, c) {
			moves = b.keep(moves, origin, c)
		}
	}
	return moves
}

// castles returns the two-file king destinations allowed from origin.
func (b *Board) castles(origin int) []int {
	side := b.cells[origin].Kind.White()
	if !b.castling || !b.own(side) || origin != b.ownKing || origin != b.ownKingHome() {
		return nil
	}
	if b.IsAttacked(origin, !side) {
		return nil
	}

	var moves []int
	for _, d := range [2]Direction{East, West} {
		rook := -1
		for c := range b.Ray(origin, d, 0) {
			if !b.cells[c].Empty() {
				rook = c
			}
		}
		if rook < 0 || b.cells[rook].Kind != KindOf(Rook, side) {
			continue
		}
		if col := colOf(rook); col != 0 && col != numcols-1 {
			continue
		}
		if b.rookMoved(rook) {
			continue
		}
		pass, dest := origin+d.Cols, origin+2*d.Cols
		if b.IsAttacked(pass, !side) || b.IsAttacked(dest, !side) {
			continue
		}
		moves = append(moves, dest)
	}
	return moves
}

// hasMoves reports whether any piece of the given side can move.
func (b *Board) hasMoves(white bool) bool {
	for c, cell := range b.cells {
		if cell.Empty() || cell.Kind.White() != white {
			continue
		}
		if len(b.LegalMoves(c)) > 0 {
			return true
		}
	}
	return false
}
