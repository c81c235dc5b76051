package cube

import "testing"

// Fixtures for the literal Scenario B (J-perm) and Scenario C (Z-perm)
// algorithm strings, applied to Solved() and checked facelet-for-facelet.
// Direction-agnostic invariants (inverse law, four-turns-identity, multiset
// preservation) pass even when a ring's turn direction is globally flipped,
// so they cannot catch an asymmetric move-table bug; these two fixtures can.

func TestScenarioBJPermFixture(t *testing.T) {
	ops, err := ParseMoves("R U R' F' R U R' U' R' F R R U' R' U'", nil)
	if err != nil {
		t.Fatalf("parsing J-perm algorithm: %v", err)
	}
	c := Solved()
	for _, m := range ops.Moves() {
		c.Apply(m)
	}

	want := Cube{
		Up:    Face{{Yellow, Yellow, Yellow}, {Yellow, Yellow, Yellow}, {Yellow, Yellow, Yellow}},
		Front: Face{{Red, Green, Green}, {Red, Red, Red}, {Red, Red, Red}},
		Right: Face{{Orange, Red, Red}, {Green, Green, Green}, {Green, Green, Green}},
		Back:  Face{{Green, Orange, Orange}, {Orange, Orange, Orange}, {Orange, Orange, Orange}},
		Left:  Face{{Blue, Blue, Blue}, {Blue, Blue, Blue}, {Blue, Blue, Blue}},
		Down:  Face{{White, White, White}, {White, White, White}, {White, White, White}},
	}

	if c != want {
		t.Errorf("J-perm fixture mismatch:\ngot:\n%swant:\n%s", c.String(), want.String())
	}

	counts := c.ColorCounts()
	for _, col := range ConcreteColors {
		if counts[col] != 9 {
			t.Errorf("color %v count = %d, want 9", col, counts[col])
		}
	}
}

func TestScenarioCZPermFixture(t *testing.T) {
	ops, err := ParseMoves("M' U' M2 U' M2 U' M' U2 M2 U", nil)
	if err != nil {
		t.Fatalf("parsing Z-perm algorithm: %v", err)
	}
	c := Solved()
	for _, m := range ops.Moves() {
		c.Apply(m)
	}

	want := Cube{
		Up:    Face{{Yellow, Yellow, Yellow}, {Yellow, Yellow, Yellow}, {Yellow, Yellow, Yellow}},
		Front: Face{{Red, Green, Red}, {Red, Red, Red}, {Red, Red, Red}},
		Right: Face{{Green, Red, Green}, {Green, Green, Green}, {Green, Green, Green}},
		Back:  Face{{Orange, Blue, Orange}, {Orange, Orange, Orange}, {Orange, Orange, Orange}},
		Left:  Face{{Blue, Orange, Blue}, {Blue, Blue, Blue}, {Blue, Blue, Blue}},
		Down:  Face{{White, White, White}, {White, White, White}, {White, White, White}},
	}

	if c != want {
		t.Errorf("Z-perm fixture mismatch:\ngot:\n%swant:\n%s", c.String(), want.String())
	}
}

// The built-in Jb/ZPerm composites must reproduce the same fixtures when
// looked up and applied through the database, not just when parsed ad hoc.
func TestScenarioFixturesMatchBuiltinComposites(t *testing.T) {
	db := NewAlgorithmDB()

	jb, ok := db.Lookup("Jb")
	if !ok {
		t.Fatal("Jb not registered in builtin algorithm db")
	}
	cJb := Solved()
	cJb.Apply(jb)

	cDirect := Solved()
	ops, _ := ParseMoves("R U R' F' R U R' U' R' F R R U' R' U'", nil)
	for _, m := range ops.Moves() {
		cDirect.Apply(m)
	}
	if cJb != cDirect {
		t.Errorf("Jb composite does not reproduce the literal Scenario B algorithm")
	}

	zp, ok := db.Lookup("ZPerm")
	if !ok {
		t.Fatal("ZPerm not registered in builtin algorithm db")
	}
	cZp := Solved()
	cZp.Apply(zp)

	cDirectZ := Solved()
	opsZ, _ := ParseMoves("M' U' M2 U' M2 U' M' U2 M2 U", nil)
	for _, m := range opsZ.Moves() {
		cDirectZ.Apply(m)
	}
	if cZp != cDirectZ {
		t.Errorf("ZPerm composite does not reproduce the literal Scenario C algorithm")
	}
}
