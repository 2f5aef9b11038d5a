package engine

import (
	"fmt"

	"github.com/notnil/chess"
)

// FEN writes the position in Forsyth-Edwards notation. Castling rights and en
// passant are not tracked per side, so both fields are always "-".
func (b *Board) FEN() string {
	pieces := make(map[chess.Square]chess.Piece)
	for c, cell := range b.cells {
		if !cell.Empty() {
			pieces[Square(c, b.whites)] = cell.Kind.Piece()
		}
	}
	turn := "w"
	if !b.sideToMove {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", chess.NewBoard(pieces).String(), turn, len(b.history)/2+1)
}
