package engine

import "testing"

func TestPutRejectsUnknownKind(t *testing.T) {
	b := emptyBoard(true)
	b.put(10, Kind(200))
	if !b.cells[10].Empty() {
		t.Fatalf("unknown kind stored: %v", b.cells[10].Kind)
	}
	b.put(10, BlackKing)
	if b.enemyKing != 10 || b.ownKing != -1 {
		t.Fatalf("kings = own %d enemy %d, want -1 and 10", b.ownKing, b.enemyKing)
	}
	b.put(3, WhiteKing)
	if b.ownKing != 3 {
		t.Fatalf("own king = %d, want 3", b.ownKing)
	}
}

func TestKindSide(t *testing.T) {
	for _, k := range []Kind{WhitePawn, WhiteRook, WhiteKing} {
		if !k.Side() || !k.Valid() {
			t.Fatalf("%s: Side=%v Valid=%v", k, k.Side(), k.Valid())
		}
	}
	for _, k := range []Kind{BlackPawn, BlackRook, BlackKing} {
		if k.Side() || !k.Valid() {
			t.Fatalf("%s: Side=%v Valid=%v", k, k.Side(), k.Valid())
		}
	}
	if Kind(13).Valid() {
		t.Fatalf("kind past WhiteKing is valid")
	}
}
