package cube

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Algorithm is one named-composite database entry: its expansion plus
// descriptive metadata carried through to CLI output (lookup command) but
// not used by the search engine itself.
type Algorithm struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Moves       string `yaml:"moves"`
	Description string `yaml:"description"`
}

// AlgorithmDB is a named-composite lookup table. Zero value is usable and
// starts empty; NewAlgorithmDB returns one preloaded with the built-in
// defaults.
type AlgorithmDB struct {
	entries map[string]Algorithm
	moves   map[string]Move
}

func NewAlgorithmDB() *AlgorithmDB {
	db := &AlgorithmDB{entries: map[string]Algorithm{}, moves: map[string]Move{}}
	for _, a := range builtinAlgorithms {
		db.mustAdd(a)
	}
	return db
}

func (db *AlgorithmDB) mustAdd(a Algorithm) {
	if err := db.Add(a); err != nil {
		panic(err)
	}
}

// Add parses a's Moves string and registers it as a Composite under a's
// Name. Composites cannot reference other composites.
func (db *AlgorithmDB) Add(a Algorithm) error {
	ops, err := ParseMoves(a.Moves, nil)
	if err != nil {
		return fmt.Errorf("cube: algorithm %q: %w", a.Name, err)
	}
	if db.entries == nil {
		db.entries = map[string]Algorithm{}
		db.moves = map[string]Move{}
	}
	db.entries[a.Name] = a
	db.moves[a.Name] = CompositeMove(a.Name, true, ops.Moves())
	return nil
}

// Lookup implements CompositeLookup.
func (db *AlgorithmDB) Lookup(name string) (Move, bool) {
	m, ok := db.moves[name]
	return m, ok
}

// Get returns the descriptive entry for name.
func (db *AlgorithmDB) Get(name string) (Algorithm, bool) {
	a, ok := db.entries[name]
	return a, ok
}

// All returns every registered algorithm, for CLI listing.
func (db *AlgorithmDB) All() []Algorithm {
	out := make([]Algorithm, 0, len(db.entries))
	for _, a := range db.entries {
		out = append(out, a)
	}
	return out
}

// LoadYAML overlays entries from a YAML document of the form:
//
//	algorithms:
//	  - name: Sexy
//	    category: Trigger
//	    moves: "R U R' U'"
//	    description: "Most common trigger in cubing"
//
// Entries with a name already present are overridden. This completes the
// database hook the teacher's own solving_db.go left unimplemented.
func (db *AlgorithmDB) LoadYAML(data []byte) error {
	var doc struct {
		Algorithms []Algorithm `yaml:"algorithms"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cube: parsing algorithm YAML: %w", err)
	}
	for _, a := range doc.Algorithms {
		if err := db.Add(a); err != nil {
			return err
		}
	}
	return nil
}

// builtinAlgorithms is the default named-composite set, covering the
// triggers and PLL algorithms the method drivers reference by name plus a
// few commonly documented ones for CLI lookup.
var builtinAlgorithms = []Algorithm{
	{Name: "Sexy", Category: "Trigger", Moves: "R U R' U'", Description: "Most common trigger in cubing"},
	{Name: "SledgeHammer", Category: "Trigger", Moves: "R' F R F'", Description: "Common trigger for F2L and OLL"},
	{Name: "Jb", Category: "PLL", Moves: "R U R' F' R U R' U' R' F R2 U' R' U'", Description: "J-perm (b): swaps one edge and one adjacent corner pair"},
	{Name: "Ja", Category: "PLL", Moves: "L' U' L F L' U' L U L F' L2 U L U", Description: "J-perm (a), mirror of Jb"},
	{Name: "F", Category: "PLL", Moves: "R' U' F' R U R' U' R' F R2 U' R' U' R U R' U R", Description: "F-perm"},
	{Name: "V", Category: "PLL", Moves: "R' U R' U' y R' F' R2 U' R' U R' F R F", Description: "V-perm"},
	{Name: "Gb", Category: "PLL", Moves: "R' U' R U D' R2 U R' U R U' R U' R2 D", Description: "G-perm (b)"},
	{Name: "Gd", Category: "PLL", Moves: "R U R' U' D R2 U' R U' R' U R' U R2 D'", Description: "G-perm (d)"},
	{Name: "Na", Category: "PLL", Moves: "R U R' U R U R' F' R U R' U' R' F R2 U' R U2 R' U' R", Description: "N-perm (a)"},
	{Name: "Nb", Category: "PLL", Moves: "R' U R U' R' F' U' F R U R' F R' F' R U' R", Description: "N-perm (b)"},
	{Name: "Aa", Category: "PLL", Moves: "x L2 D2 L' U' L D2 L' U L'", Description: "A-perm (a): cycles three corners"},
	{Name: "Ra", Category: "PLL", Moves: "R U' R' U' R U R D R' U' R D' R' U2 R' U'", Description: "R-perm (a)"},
	{Name: "Rb", Category: "PLL", Moves: "R' U2 R U2 R' F R U R' U' R' F' R2", Description: "R-perm (b)"},
	{Name: "Sune", Category: "OLL", Moves: "R U R' U R U2 R'", Description: "Sune: orients three corners cyclically"},
	{Name: "AntiSune", Category: "OLL", Moves: "R U2 R' U' R U' R'", Description: "Anti-Sune, mirror of Sune"},
	{Name: "TPerm", Category: "PLL", Moves: "R U R' U' R' F R2 U' R' U' R U R' F'", Description: "T-perm: swaps two adjacent corners and two adjacent edges"},
	{Name: "UPermA", Category: "PLL", Moves: "R U' R U R U R U' R' U' R2", Description: "U-perm (a): cycles three edges counter-clockwise"},
	{Name: "UPermB", Category: "PLL", Moves: "R2 U R U R' U' R' U' R' U R'", Description: "U-perm (b): cycles three edges clockwise"},
	{Name: "HPerm", Category: "PLL", Moves: "M2 U M2 U2 M2 U M2", Description: "H-perm: swaps opposite edges"},
	{Name: "ZPerm", Category: "PLL", Moves: "M' U' M2 U' M2 U' M' U2 M2 U", Description: "Z-perm: swaps adjacent edges"},
}
