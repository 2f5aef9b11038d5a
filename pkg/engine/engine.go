package engine

import (
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/qnkhuat/peerchess/pkg/logging"
)

// Listener receives what the engine has to tell its host. The host may swap
// it at any time with SetListener.
type Listener interface {
	// MoveDone is called after a local move with its notation, ready to be
	// forwarded to the opponent.
	MoveDone(notation string)
	// OpponentMove is called after a remote move was applied.
	OpponentMove(from, to int)
}

type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "In progress"
	}
}

// Snapshot is a read-only copy of the board for renderers.
type Snapshot struct {
	Cells        [numOfSquaresInBoard]Cell
	Whites       bool
	SideToMove   bool
	Wait         bool
	InCheck      bool
	EnemyInCheck bool
	// LastFrom and LastTo locate the opponent's last move, -1 before any.
	LastFrom int
	LastTo   int
	Outcome  Outcome
}

type Option func(*Engine)

// Strict makes the engine re-validate moves received from the opponent.
func Strict() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// Engine owns one Board for the lifetime of a game and runs the two-phase
// selection: the first chosen cell is the origin, the second the destination.
// All methods are safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	board     *Board
	choosing  bool
	origin    int
	available []int
	lastFrom  int
	lastTo    int
	listener  Listener
	strict    bool
}

func New(whites bool, l Listener, opts ...Option) *Engine {
	e := &Engine{listener: l}
	for _, opt := range opts {
		opt(e)
	}
	e.Init(whites)
	return e
}

// Init starts a fresh game playing the given side, dropping the previous one.
func (e *Engine) Init(whites bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.board = NewBoard(whites)
	e.reset()
	e.lastFrom, e.lastTo = -1, -1
}

// Clear tears the game down. The engine must be Init'ed before further use.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.board = NewBoard(true)
	e.board.wait = true
	e.reset()
	e.lastFrom, e.lastTo = -1, -1
}

func (e *Engine) SetListener(l Listener) {
	e.mu.Lock()
	e.listener = l
	e.mu.Unlock()
}

func (e *Engine) reset() {
	e.choosing = false
	e.origin = 0
	e.available = nil
}

func (e *Engine) Whites() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.whites
}

// Wait reports whether the engine is waiting for the opponent.
func (e *Engine) Wait() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.wait
}

func (e *Engine) History() []MoveRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.board.history)
}

func (e *Engine) FEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.FEN()
}

// LegalMoves lists the destinations of the piece on cell without touching
// the selection.
func (e *Engine) LegalMoves(cell int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.LegalMoves(cell)
}

// Available returns the current available-move set; empty unless an origin
// has been chosen.
func (e *Engine) Available() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.available)
}

func (e *Engine) Outcome() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outcome()
}

func (e *Engine) outcome() Outcome {
	b := e.board
	if b.hasMoves(b.sideToMove) {
		return InProgress
	}
	if b.IsAttacked(b.kingCell(b.sideToMove), !b.sideToMove) {
		return Checkmate
	}
	return Stalemate
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	b := e.board
	return Snapshot{
		Cells:        b.cells,
		Whites:       b.whites,
		SideToMove:   b.sideToMove,
		Wait:         b.wait,
		InCheck:      b.ownCheck,
		EnemyInCheck: b.enemyCheck,
		LastFrom:     e.lastFrom,
		LastTo:       e.lastTo,
		Outcome:      e.outcome(),
	}
}

// SelectCell handles one click on (col, row), both in 0..7 and in the local
// frame. Clicks are ignored while waiting for the opponent.
func (e *Engine) SelectCell(col, row int) {
	e.mu.Lock()
	cell, ok := cellAt(row, col)
	if !ok || e.board.wait {
		e.mu.Unlock()
		return
	}

	if !e.choosing {
		e.chooseOrigin(cell)
		e.mu.Unlock()
		return
	}

	notation, moved := e.chooseDestination(cell)
	l := e.listener
	e.mu.Unlock()
	if moved && l != nil {
		l.MoveDone(notation)
	}
}

func (e *Engine) chooseOrigin(cell int) {
	b := e.board
	k := b.cells[cell].Kind
	if k.IsEmpty() || k.White() != b.sideToMove || !b.own(k.White()) {
		return
	}
	moves := b.LegalMoves(cell)
	if len(moves) == 0 {
		return
	}
	b.cells[cell].Selected = true
	for _, c := range moves {
		b.cells[c].Available = true
	}
	e.origin = cell
	e.available = moves
	e.choosing = true
	logging.Debugf("selected %s, %d moves", SquareName(cell, b.whites), len(moves))
}

func (e *Engine) chooseDestination(cell int) (string, bool) {
	b := e.board
	b.clearMarks()
	defer e.reset()
	if !slices.Contains(e.available, cell) {
		return "", false
	}

	from := e.origin
	kind := b.cells[from].Kind
	castle := b.apply(from, cell)
	if kind.Role() == King {
		b.castling = false
	}
	notation := b.encode(from, cell, castle)
	b.history = append(b.history, MoveRecord{Kind: kind, Notation: notation})
	b.updateChecks()
	b.sideToMove = !b.sideToMove
	b.wait = true
	log.Printf("%s:\t%s", kind, notation)
	logging.Debugf("fen %s", b.FEN())
	return notation, true
}

// ApplyRemote plays a move received from the opponent. The move is trusted
// unless the engine was built with Strict. A notation that cannot be decoded
// leaves the board untouched.
func (e *Engine) ApplyRemote(notation string) error {
	e.mu.Lock()
	b := e.board
	from, to, err := b.Decode(notation)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	if e.strict {
		if err := b.validateRemote(from, to, notation); err != nil {
			e.mu.Unlock()
			return err
		}
	}
	if !b.wait {
		log.Printf("Opponent moved out of turn: %s", notation)
	}
	if e.choosing {
		b.clearMarks()
		e.reset()
	}

	kind := b.cells[from].Kind
	b.apply(from, to)
	b.history = append(b.history, MoveRecord{Kind: kind, Notation: notation})
	b.updateChecks()
	b.sideToMove = !b.sideToMove
	b.wait = false
	e.lastFrom, e.lastTo = from, to
	l := e.listener
	e.mu.Unlock()

	log.Printf("Opponent: \t%s:\t%s", kind, notation)
	logging.Debugf("fen %s", e.FEN())
	if l != nil {
		l.OpponentMove(from, to)
	}
	return nil
}

// validateRemote checks a decoded remote move against the rules.
func (b *Board) validateRemote(from, to int, notation string) error {
	k := b.cells[from].Kind
	if k.IsEmpty() || b.own(k.White()) {
		return fmt.Errorf("%w: %s: no opponent piece on %s", ErrIllegalRemoteMove, notation, SquareName(from, b.whites))
	}
	if notation == KingSideCastle || notation == QueenSideCastle {
		if k.Role() != King {
			return fmt.Errorf("%w: %s: king has left its square", ErrIllegalRemoteMove, notation)
		}
		step := 1
		if to < from {
			step = -1
		}
		rook := -1
		for c := range b.Ray(from, Direction{0, step}, 0) {
			if !b.cells[c].Empty() {
				rook = c
			}
		}
		if rook < 0 || b.cells[rook].Kind != KindOf(Rook, k.White()) || b.castleSide(rook) != castleSide(notation) {
			return fmt.Errorf("%w: %s: path to rook is not clear", ErrIllegalRemoteMove, notation)
		}
		return nil
	}
	if !slices.Contains(b.LegalMoves(from), to) {
		return fmt.Errorf("%w: %s", ErrIllegalRemoteMove, notation)
	}
	return nil
}

func castleSide(token string) Castle {
	if token == KingSideCastle {
		return KingSide
	}
	return QueenSide
}
