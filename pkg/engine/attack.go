package engine

// IsAttacked reports whether a piece of the attacking side threatens cell.
func (b *Board) IsAttacked(cell int, byWhite bool) bool {
	if cell < 0 || cell >= numOfSquaresInBoard {
		return false
	}
	knight := KindOf(Knight, byWhite)
	for _, c := range knightCells(cell) {
		if b.cells[c].Kind == knight {
			return true
		}
	}

	for _, d := range allDirections {
		dist := 0
		for c := range b.Ray(cell, d, 0) {
			dist++
			k := b.cells[c].Kind
			if k.IsEmpty() || k.White() != byWhite {
				continue
			}
			switch k.Role() {
			case Queen:
				return true
			case Rook:
				if !d.Diagonal() {
					return true
				}
			case Bishop:
				if d.Diagonal() {
					return true
				}
			case King:
				if dist == 1 {
					return true
				}
			case Pawn:
				// the pawn stands one row behind the cell it captures on
				if dist == 1 && d.Diagonal() && d.Rows == -b.forward(byWhite) {
					return true
				}
			}
		}
	}
	return false
}
