package cube

import "testing"

func TestBuiltinAlgorithmsLoad(t *testing.T) {
	db := NewAlgorithmDB()
	for _, name := range []string{"Sexy", "SledgeHammer", "Jb", "TPerm"} {
		if _, ok := db.Lookup(name); !ok {
			t.Errorf("expected built-in algorithm %q", name)
		}
	}
}

func TestAlgorithmDBLoadYAMLOverlay(t *testing.T) {
	db := NewAlgorithmDB()
	doc := []byte(`
algorithms:
  - name: Custom
    category: Trigger
    moves: "R U R' U' R U R' U'"
    description: "double sexy for testing"
`)
	if err := db.LoadYAML(doc); err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	m, ok := db.Lookup("Custom")
	if !ok {
		t.Fatalf("expected Custom algorithm after YAML load")
	}
	if len(m.Expansion) != 8 {
		t.Errorf("expansion length = %d, want 8", len(m.Expansion))
	}
}

func TestAlgorithmDBLoadYAMLOverridesBuiltin(t *testing.T) {
	db := NewAlgorithmDB()
	doc := []byte(`
algorithms:
  - name: Sexy
    category: Trigger
    moves: "R U R' U' R U R' U'"
    description: "overridden"
`)
	if err := db.LoadYAML(doc); err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	m, _ := db.Lookup("Sexy")
	if len(m.Expansion) != 8 {
		t.Errorf("override did not take effect: expansion length = %d, want 8", len(m.Expansion))
	}
}

func TestAlgorithmDBLoadYAMLInvalidMoves(t *testing.T) {
	db := NewAlgorithmDB()
	doc := []byte(`
algorithms:
  - name: Bad
    moves: "Q"
`)
	if err := db.LoadYAML(doc); err == nil {
		t.Errorf("expected an error for an algorithm with an invalid move token")
	}
}

func TestAlgorithmCompositeInverseRoundTrips(t *testing.T) {
	db := NewAlgorithmDB()
	m, ok := db.Lookup("Sexy")
	if !ok {
		t.Fatalf("missing Sexy")
	}
	c := Solved()
	c.Apply(m)
	c.Apply(m.Rev())
	if c != Solved() {
		t.Errorf("Sexy move followed by its inverse should return to solved")
	}
}
