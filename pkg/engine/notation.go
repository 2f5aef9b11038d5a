package engine

import (
	"fmt"

	"github.com/notnil/chess"
)

// Castle tokens travel instead of coordinates.
const (
	KingSideCastle  = "0-0"
	QueenSideCastle = "0-0-0"
)

// Square maps a local cell to the absolute board square. Black's frame is
// the white frame turned half a circle.
func Square(cell int, whites bool) chess.Square {
	if whites {
		return chess.Square(cell)
	}
	return chess.Square(numOfSquaresInBoard - 1 - cell)
}

// CellOf is the inverse of Square.
func CellOf(sq chess.Square, whites bool) int {
	if whites {
		return int(sq)
	}
	return numOfSquaresInBoard - 1 - int(sq)
}

// SquareName gives the coordinate of a local cell, e.g. "e2".
func SquareName(cell int, whites bool) string {
	return Square(cell, whites).String()
}

// ParseSquare reads a coordinate such as "e2" into a local cell.
func ParseSquare(s string, whites bool) (int, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("%w: square %q", ErrBadNotation, s)
	}
	sq := chess.Square(int(s[1]-'1')*numcols + int(s[0]-'a'))
	return CellOf(sq, whites), nil
}

// EncodeMove writes a move as four coordinate characters.
func EncodeMove(from, to int, whites bool) string {
	return SquareName(from, whites) + SquareName(to, whites)
}

// DecodeMove is the inverse of EncodeMove.
func DecodeMove(n string, whites bool) (from, to int, err error) {
	if len(n) != 4 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNotation, n)
	}
	if from, err = ParseSquare(n[:2], whites); err != nil {
		return 0, 0, err
	}
	if to, err = ParseSquare(n[2:], whites); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func castleToken(c Castle) string {
	if c == KingSide {
		return KingSideCastle
	}
	return QueenSideCastle
}

// encode names a move made on this board.
func (b *Board) encode(from, to int, castle Castle) string {
	if castle != NoCastle {
		return castleToken(castle)
	}
	return EncodeMove(from, to, b.whites)
}

// Decode turns notation sent by the opponent into local cells. Castle tokens
// resolve to the opponent king's home square.
func (b *Board) Decode(n string) (from, to int, err error) {
	switch n {
	case KingSideCastle, QueenSideCastle:
		// the opponent's back rank
		home, rook := chess.E8, chess.H8
		if n == QueenSideCastle {
			rook = chess.A8
		}
		if !b.whites {
			home, rook = chess.E1, chess.H1
			if n == QueenSideCastle {
				rook = chess.A1
			}
		}
		from, corner := CellOf(home, b.whites), CellOf(rook, b.whites)
		step := 1
		if corner < from {
			step = -1
		}
		return from, from + 2*step, nil
	}
	if from, to, err = DecodeMove(n, b.whites); err == nil && from == to {
		return 0, 0, fmt.Errorf("%w: %q does not move", ErrBadNotation, n)
	}
	return from, to, err
}
