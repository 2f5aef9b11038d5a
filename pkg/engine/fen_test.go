package engine

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/notnil/chess"
)

func TestStartFEN(t *testing.T) {
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	for _, whites := range []bool{true, false} {
		if got := NewBoard(whites).FEN(); got != want {
			t.Fatalf("whites=%v FEN = %s, want %s", whites, got, want)
		}
	}
}

func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("parse %s: %v", fen, err)
	}
	game := chess.NewGame(opt)
	var out []string
	for _, m := range game.ValidMoves() {
		out = append(out, m.S1().String()+m.S2().String())
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func ourMoves(b *Board) []string {
	var out []string
	for _, m := range allMoves(b, b.sideToMove) {
		out = append(out, EncodeMove(m[0], m[1], b.whites))
	}
	slices.Sort(out)
	return out
}

// promotes reports whether a move lands a pawn on a back rank, which the
// engine does not handle.
func promotes(b *Board, from, to int) bool {
	return b.cells[from].Kind.Role() == Pawn && (rowOf(to) == 0 || rowOf(to) == numrows-1)
}

func TestMovesMatchReferenceRules(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for game := 0; game < 30; game++ {
		b := NewBoard(game%2 == 1)
		b.castling = false
		for ply := 0; ply < 80; ply++ {
			fen := b.FEN()
			want := referenceMoves(t, fen)
			got := ourMoves(b)
			if !slices.Equal(got, want) {
				t.Fatalf("game %d ply %d %s\n got %v\nwant %v", game, ply, fen, got, want)
			}

			var playable [][2]int
			for _, m := range allMoves(b, b.sideToMove) {
				if !promotes(b, m[0], m[1]) {
					playable = append(playable, m)
				}
			}
			if len(playable) == 0 {
				break
			}
			m := playable[rnd.Intn(len(playable))]
			playRandom(b, m[0], m[1])
		}
	}
}
