package engine

import (
	"strings"

	"github.com/notnil/chess"
)

const (
	numrows             = 8
	numcols             = 8
	numOfSquaresInBoard = numrows * numcols
)

// Castle tells which castle, if any, a move performed.
type Castle int

const (
	NoCastle Castle = iota
	KingSide
	QueenSide
)

// MoveRecord is one entry of the move history.
type MoveRecord struct {
	Kind     Kind
	Notation string
}

// startLayout is indexed by absolute square, a1 first.
var startLayout = [numOfSquaresInBoard]Kind{
	WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook,
	WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn,
	Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty,
	Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty,
	Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty,
	Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty,
	BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn,
	BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook,
}

// Board is the state of one game as seen by one peer. Row 0 is always the
// local side's back rank and local pawns advance towards row 7.
type Board struct {
	cells      [numOfSquaresInBoard]Cell
	whites     bool
	sideToMove bool
	wait       bool
	ownKing    int
	enemyKing  int
	ownCheck   bool
	enemyCheck bool
	castling   bool
	history    []MoveRecord
}

// NewBoard sets up the standard starting position from the point of view of
// the given side.
func NewBoard(whites bool) *Board {
	b := &Board{
		whites:     whites,
		sideToMove: true,
		wait:       !whites,
		castling:   true,
	}
	for c := range b.cells {
		b.cells[c].Kind = startLayout[Square(c, whites)]
	}
	if whites {
		b.ownKing, b.enemyKing = CellOf(chess.E1, whites), CellOf(chess.E8, whites)
	} else {
		b.ownKing, b.enemyKing = CellOf(chess.E8, whites), CellOf(chess.E1, whites)
	}
	return b
}

// emptyBoard is a board with no pieces at all; kings must be placed with put.
func emptyBoard(whites bool) *Board {
	return &Board{whites: whites, sideToMove: true, wait: !whites, castling: true, ownKing: -1, enemyKing: -1}
}

// put places a piece, tracking kings.
func (b *Board) put(cell int, k Kind) {
	if !k.Valid() {
		k = Empty
	}
	b.cells[cell] = Cell{Kind: k}
	if k.Role() == King {
		if k.Side() == b.whites {
			b.ownKing = cell
		} else {
			b.enemyKing = cell
		}
	}
}

func (b *Board) At(cell int) Cell {
	return b.cells[cell]
}

func (b *Board) Whites() bool {
	return b.whites
}

func rowOf(cell int) int {
	return cell / numcols
}

func colOf(cell int) int {
	return cell % numcols
}

// Coords splits a cell index into its column and row in the local frame.
func Coords(cell int) (col, row int) {
	return colOf(cell), rowOf(cell)
}

// cellAt returns the index for (row, col) and whether it lies on the board.
func cellAt(row, col int) (int, bool) {
	if row < 0 || row >= numrows || col < 0 || col >= numcols {
		return 0, false
	}
	return row*numcols + col, true
}

// own reports whether a piece of the given colour belongs to this peer.
func (b *Board) own(white bool) bool {
	return white == b.whites
}

// forward is the row step of a pawn of the given colour.
func (b *Board) forward(white bool) int {
	if b.own(white) {
		return 1
	}
	return -1
}

func (b *Board) pawnRow(white bool) int {
	if b.own(white) {
		return 1
	}
	return numrows - 2
}

func (b *Board) kingCell(white bool) int {
	if b.own(white) {
		return b.ownKing
	}
	return b.enemyKing
}

// ownKingHome is where the local king starts.
func (b *Board) ownKingHome() int {
	if b.whites {
		return CellOf(chess.E1, true)
	}
	return CellOf(chess.E8, false)
}

func (b *Board) enemyOf(from, to int) bool {
	t := b.cells[to].Kind
	return !t.IsEmpty() && t.White() != b.cells[from].Kind.White()
}

// castleSide names the castle whose rook starts on the given corner.
func (b *Board) castleSide(rook int) Castle {
	if Square(rook, b.whites).File() == chess.FileH {
		return KingSide
	}
	return QueenSide
}

// apply moves a piece that has already been validated. It captures whatever
// stands on the destination, relocates the rook when a king steps two files,
// and strips every display flag from the cells it touches. A castle by either
// side disables castling for the rest of the game.
func (b *Board) apply(from, to int) Castle {
	moving := b.cells[from].Kind
	castle := NoCastle
	if moving.Role() == King && rowOf(from) == rowOf(to) && abs(colOf(to)-colOf(from)) == 2 {
		row := rowOf(from)
		rookFrom, rookTo := row*numcols, to+1
		if to > from {
			rookFrom, rookTo = row*numcols+numcols-1, to-1
		}
		b.cells[rookTo] = Cell{Kind: b.cells[rookFrom].Kind}
		b.cells[rookFrom] = Cell{}
		castle = b.castleSide(rookFrom)
		b.castling = false
	}
	b.cells[to] = Cell{Kind: moving}
	b.cells[from] = Cell{}
	if moving.Role() == King {
		if b.own(moving.White()) {
			b.ownKing = to
		} else {
			b.enemyKing = to
		}
	}
	return castle
}

// exposes tentatively plays from→to and reports whether the mover's king
// would be attacked afterwards. The board is restored before returning.
func (b *Board) exposes(from, to int) bool {
	moving, captured := b.cells[from], b.cells[to]
	side := moving.Kind.White()
	king := b.kingCell(side)
	if from == king {
		king = to
	}
	b.cells[to] = Cell{Kind: moving.Kind}
	b.cells[from] = Cell{}
	attacked := king >= 0 && b.IsAttacked(king, !side)
	b.cells[from], b.cells[to] = moving, captured
	return attacked
}

// updateChecks recomputes both check flags and mirrors them onto the king cells.
func (b *Board) updateChecks() {
	for c := range b.cells {
		b.cells[c].InCheck = false
	}
	b.ownCheck = b.IsAttacked(b.ownKing, !b.whites)
	b.enemyCheck = b.IsAttacked(b.enemyKing, b.whites)
	if b.ownKing >= 0 {
		b.cells[b.ownKing].InCheck = b.ownCheck
	}
	if b.enemyKing >= 0 {
		b.cells[b.enemyKing].InCheck = b.enemyCheck
	}
}

// rookMoved scans the history for a move starting on the rook's home square.
func (b *Board) rookMoved(rook int) bool {
	home := SquareName(rook, b.whites)
	for _, m := range b.history {
		if strings.HasPrefix(m.Notation, home) {
			return true
		}
	}
	return false
}

func (b *Board) clearMarks() {
	for c := range b.cells {
		b.cells[c].Selected = false
		b.cells[c].Available = false
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
