package engine

import (
	"slices"
	"testing"
)

func castleBoard(t *testing.T, whites bool, extra map[string]Kind) *Board {
	t.Helper()
	pieces := map[string]Kind{
		"e1": WhiteKing, "a1": WhiteRook, "h1": WhiteRook,
		"e8": BlackKing, "a8": BlackRook, "h8": BlackRook,
	}
	for k, v := range extra {
		pieces[k] = v
	}
	return at(t, whites, pieces)
}

func TestCastlingPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		extra   map[string]Kind
		history []MoveRecord
		noFlag  bool
		want    []string
	}{
		{name: "both sides free", want: []string{"c", "g"}},
		{name: "kingside crossing attacked", extra: map[string]Kind{"f5": BlackRook}, want: []string{"c"}},
		{name: "kingside destination attacked", extra: map[string]Kind{"g5": BlackRook}, want: []string{"c"}},
		{name: "queenside path blocked", extra: map[string]Kind{"b1": WhiteKnight}, want: []string{"g"}},
		{name: "king in check", extra: map[string]Kind{"e5": BlackRook}, want: nil},
		{name: "b-file attack does not matter", extra: map[string]Kind{"b5": BlackRook}, want: []string{"c", "g"}},
		{name: "rook moved and back", history: []MoveRecord{{WhiteRook, "h1h4"}, {BlackPawn, "a7a6"}, {WhiteRook, "h4h1"}}, want: []string{"c"}},
		{name: "king moved", noFlag: true, want: nil},
		{name: "rook missing", extra: map[string]Kind{"a1": Empty}, want: []string{"g"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := castleBoard(t, true, tt.extra)
			b.history = tt.history
			b.castling = !tt.noFlag
			king := cell(t, b, "e1")

			var got []string
			for _, to := range b.castles(king) {
				got = append(got, SquareName(to, true)[:1])
			}
			slices.Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("castles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCastlingFromBlackFrame(t *testing.T) {
	b := castleBoard(t, false, nil)
	king := cell(t, b, "e8")
	if king != 3 {
		t.Fatalf("black king cell = %d, want 3", king)
	}
	got := names(b, b.castles(king))
	if !slices.Equal(got, []string{"c8", "g8"}) {
		t.Fatalf("castles = %v, want [c8 g8]", got)
	}
}

func TestScenarioKingsideCastle(t *testing.T) {
	e := New(true, nil)
	b := castleBoard(t, true, nil)
	e.board = b

	e.SelectCell(4, 0)
	if !slices.Contains(e.Available(), cell(t, b, "g1")) {
		t.Fatalf("g1 not offered: %v", names(b, e.Available()))
	}
	e.SelectCell(6, 0)

	snap := e.Snapshot()
	if snap.Cells[cell(t, b, "g1")].Kind != WhiteKing || snap.Cells[cell(t, b, "f1")].Kind != WhiteRook {
		t.Fatalf("king and rook not relocated: %s", e.FEN())
	}
	if !snap.Cells[cell(t, b, "h1")].Empty() || !snap.Cells[cell(t, b, "e1")].Empty() {
		t.Fatalf("origin cells not cleared: %s", e.FEN())
	}
	if b.castling {
		t.Fatalf("castling still enabled after castling")
	}
	if h := e.History(); len(h) != 1 || h[0].Notation != KingSideCastle {
		t.Fatalf("history = %v, want one %s", h, KingSideCastle)
	}
}

func TestKingStepDisablesCastling(t *testing.T) {
	for _, whites := range []bool{true, false} {
		home, step := "e1", "e2"
		if !whites {
			home, step = "e8", "e7"
		}
		e := New(whites, nil)
		e.board = castleBoard(t, whites, nil)
		e.board.wait = false
		e.board.sideToMove = whites

		play(t, e, home, step)
		// opponent shuffles an a-file rook out and back
		out, back := "a8a7", "a7a8"
		if !whites {
			out, back = "a1a2", "a2a1"
		}
		if err := e.ApplyRemote(out); err != nil {
			t.Fatal(err)
		}
		play(t, e, step, home)
		if err := e.ApplyRemote(back); err != nil {
			t.Fatal(err)
		}

		king := cell(t, e.board, home)
		if e.board.ownKing != king || e.Wait() {
			t.Fatalf("whites=%v: king not home or still waiting", whites)
		}
		if got := e.board.castles(king); len(got) != 0 {
			t.Fatalf("whites=%v: castles offered after king moved: %v", whites, names(e.board, got))
		}
		e.SelectCell(colOf(king), rowOf(king))
		for _, to := range e.Available() {
			if abs(colOf(to)-colOf(king)) == 2 {
				t.Fatalf("whites=%v: selection offers castle to %s", whites, SquareName(to, whites))
			}
		}
	}
}
