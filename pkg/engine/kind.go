package engine

import "github.com/notnil/chess"

// Kind identifies what occupies a cell. The ordering follows the packed
// cell layout used on the wire to renderers.
type Kind uint8

const (
	Empty Kind = iota
	BlackRook
	BlackKnight
	BlackBishop
	BlackQueen
	BlackKing
	BlackPawn
	WhitePawn
	WhiteRook
	WhiteKnight
	WhiteBishop
	WhiteQueen
	WhiteKing
)

// Role is the colourless piece type.
type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (r Role) String() string {
	switch r {
	case Pawn:
		return "PAWN"
	case Knight:
		return "KNIGHT"
	case Bishop:
		return "BISHOP"
	case Rook:
		return "ROOK"
	case Queen:
		return "QUEEN"
	case King:
		return "KING"
	default:
		return "VOID"
	}
}

func (k Kind) Valid() bool {
	return k <= WhiteKing
}

func (k Kind) IsEmpty() bool {
	return k == Empty
}

func (k Kind) White() bool {
	return k >= WhitePawn && k <= WhiteKing
}

// Side reports the colour of the piece (true for white). Meaningless for Empty.
func (k Kind) Side() bool {
	return k.White()
}

func (k Kind) Role() Role {
	switch k {
	case WhitePawn, BlackPawn:
		return Pawn
	case WhiteKnight, BlackKnight:
		return Knight
	case WhiteBishop, BlackBishop:
		return Bishop
	case WhiteRook, BlackRook:
		return Rook
	case WhiteQueen, BlackQueen:
		return Queen
	case WhiteKing, BlackKing:
		return King
	default:
		return NoRole
	}
}

func (k Kind) String() string {
	return k.Role().String()
}

// KindOf builds the Kind for a role and colour.
func KindOf(r Role, white bool) Kind {
	if white {
		switch r {
		case Pawn:
			return WhitePawn
		case Knight:
			return WhiteKnight
		case Bishop:
			return WhiteBishop
		case Rook:
			return WhiteRook
		case Queen:
			return WhiteQueen
		case King:
			return WhiteKing
		}
		return Empty
	}
	switch r {
	case Pawn:
		return BlackPawn
	case Knight:
		return BlackKnight
	case Bishop:
		return BlackBishop
	case Rook:
		return BlackRook
	case Queen:
		return BlackQueen
	case King:
		return BlackKing
	}
	return Empty
}

var chessPieces = map[Kind]chess.Piece{
	Empty:       chess.NoPiece,
	WhitePawn:   chess.WhitePawn,
	WhiteKnight: chess.WhiteKnight,
	WhiteBishop: chess.WhiteBishop,
	WhiteRook:   chess.WhiteRook,
	WhiteQueen:  chess.WhiteQueen,
	WhiteKing:   chess.WhiteKing,
	BlackPawn:   chess.BlackPawn,
	BlackKnight: chess.BlackKnight,
	BlackBishop: chess.BlackBishop,
	BlackRook:   chess.BlackRook,
	BlackQueen:  chess.BlackQueen,
	BlackKing:   chess.BlackKing,
}

// Piece converts to the chess library's piece, used for glyphs and FEN.
func (k Kind) Piece() chess.Piece {
	return chessPieces[k]
}

// Cell is one board position. Selected, Available and InCheck are display
// flags; only the engine writes them.
type Cell struct {
	Kind      Kind
	Selected  bool
	Available bool
	InCheck   bool
}

func (c Cell) Empty() bool {
	return c.Kind == Empty
}
