package cube

import "testing"

func TestParseMovesBasic(t *testing.T) {
	ops, err := ParseMoves("U2 F' x", nil)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []Move{
		FaceMove(FaceUp, true), FaceMove(FaceUp, true),
		FaceMove(FaceFront, false),
		RotationMove(AxisX, true),
	}
	got := ops.Moves()
	if len(got) != len(want) {
		t.Fatalf("got %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("move %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseMovesWideAndSlice(t *testing.T) {
	ops, err := ParseMoves("Rw M2 d'", nil)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []Move{
		WideMove(FaceRight, true),
		SliceMove(Middle, true), SliceMove(Middle, true),
		WideMove(FaceDown, false),
	}
	got := ops.Moves()
	if len(got) != len(want) {
		t.Fatalf("got %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("move %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseMovesUnknownToken(t *testing.T) {
	if _, err := ParseMoves("Q", nil); err == nil {
		t.Errorf("expected an error for an unrecognized token")
	}
}

func TestParseMovesCompositeRequiresDB(t *testing.T) {
	if _, err := ParseMoves("(Sexy)", nil); err == nil {
		t.Errorf("expected an error parsing a composite token with no database")
	}
}

func TestParseMovesCompositeWithDB(t *testing.T) {
	db := NewAlgorithmDB()
	ops, err := ParseMoves("(Sexy) (Sexy)'", db)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if ops.Len() != 2 {
		t.Fatalf("got %d moves, want 2", ops.Len())
	}
	if !ops.Moves()[0].Clockwise || ops.Moves()[1].Clockwise {
		t.Errorf("expected (Sexy) forward and (Sexy)' inverted")
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, tok := range []string{"U", "U'", "F", "B'", "L", "R'", "M", "E'", "S", "x'", "y", "z'"} {
		ops, err := ParseMoves(tok, nil)
		if err != nil {
			t.Fatalf("ParseMoves(%q): %v", tok, err)
		}
		if got := ops.String(); got != tok {
			t.Errorf("round-trip %q -> %q", tok, got)
		}
	}
}
