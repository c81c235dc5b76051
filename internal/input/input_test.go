package input

import (
	"strings"
	"testing"

	"github.com/declanmills/cube/internal/cube"
)

func TestParseScrambleOnly(t *testing.T) {
	doc := `
		# a comment
		Scramble {
			U2 // double up
		}
	`
	got, err := Parse(doc, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := cube.Solved()
	want.Apply(cube.FaceMove(cube.FaceUp, true))
	want.Apply(cube.FaceMove(cube.FaceUp, true))
	if got.Init != want {
		t.Errorf("scramble-only init mismatch")
	}
	if got.Goal != cube.Solved() {
		t.Errorf("goal should default to solved")
	}
}

func TestParseInitAndGoal(t *testing.T) {
	solvedSnap := cube.Solved().Snapshot()
	doc := "Init {\n" + solvedSnap + "}\nGoal {\n" + solvedSnap + "}\n"
	got, err := Parse(doc, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Init != cube.Solved() || got.Goal != cube.Solved() {
		t.Errorf("init/goal should round-trip to solved")
	}
}

func TestParseRejectsInitAndScrambleTogether(t *testing.T) {
	solvedSnap := cube.Solved().Snapshot()
	doc := "Init {\n" + solvedSnap + "}\nScramble { U }\n"
	if _, err := Parse(doc, nil); err == nil {
		t.Errorf("expected an error when both Init and Scramble are present")
	}
}

func TestParseRejectsNeitherInitNorScramble(t *testing.T) {
	if _, err := Parse("Goal { " + cube.Solved().Snapshot() + " }", nil); err == nil {
		t.Errorf("expected an error when neither Init nor Scramble is present")
	}
}

func TestParseRejectsGarbageSuffix(t *testing.T) {
	doc := "Scramble { U } this is not a section"
	if _, err := Parse(doc, nil); err == nil {
		t.Errorf("expected a syntax error for trailing garbage")
	}
}

func TestParseCompositeInScramble(t *testing.T) {
	db := cube.NewAlgorithmDB()
	doc := "Scramble { (Sexy) }"
	got, err := Parse(doc, db)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := cube.Solved()
	for _, tok := range strings.Fields("R U R' U'") {
		ops, err := cube.ParseMoves(tok, nil)
		if err != nil {
			t.Fatalf("ParseMoves: %v", err)
		}
		want = ops.Apply(want)
	}
	if got.Init != want {
		t.Errorf("composite scramble expansion mismatch")
	}
}
