package method

import "github.com/declanmills/cube/internal/cube"

// mustGoal parses a 54-token CubeSnapshot body (see cube.ParseSnapshot)
// into a sub-goal Cube. It panics on a malformed literal, since a stage
// table entry that fails to parse is a programming error, not a runtime
// one - exactly the construction-time invariant spec.md's error design
// calls for.
func mustGoal(snapshot string) cube.Cube {
	c, err := cube.ParseSnapshot(snapshot)
	if err != nil {
		panic("method: malformed stage sub-goal literal: " + err.Error())
	}
	return c
}

// both returns m and its inverse, the shape every alphabet list below is
// built from.
func both(m cube.Move) []cube.Move {
	return []cube.Move{m, m.Rev()}
}

func faces(fs ...cube.FaceName) []cube.Move {
	var out []cube.Move
	for _, f := range fs {
		out = append(out, both(cube.FaceMove(f, true))...)
	}
	return out
}

func slices(ss ...cube.SliceName) []cube.Move {
	var out []cube.Move
	for _, s := range ss {
		out = append(out, both(cube.SliceMove(s, true))...)
	}
	return out
}

func wide(fs ...cube.FaceName) []cube.Move {
	var out []cube.Move
	for _, f := range fs {
		out = append(out, both(cube.WideMove(f, true))...)
	}
	return out
}

func composites(db *cube.AlgorithmDB, names ...string) []cube.Move {
	var out []cube.Move
	for _, name := range names {
		m, ok := db.Lookup(name)
		if !ok {
			panic("method: unknown composite in alphabet: " + name)
		}
		out = append(out, both(m)...)
	}
	return out
}

// composite looks up a single named composite in its forward direction
// only, for alphabets that (like the grounding source's PLL fallback)
// admit a heavy composite one-way to limit branching.
func composite(db *cube.AlgorithmDB, name string) cube.Move {
	m, ok := db.Lookup(name)
	if !ok {
		panic("method: unknown composite in alphabet: " + name)
	}
	return m
}

// faceDouble builds a double face turn (R2, U2, ...) as a composite move,
// since Move has no dedicated double-turn kind. It is its own inverse:
// Ops.Apply replays the two-move expansion forward or reversed+inverted
// depending on direction, and both directions net the same quarter-turn
// pair.
func faceDouble(f cube.FaceName) cube.Move {
	return cube.CompositeMove(f.String()+"2", true, []cube.Move{
		cube.FaceMove(f, true),
		cube.FaceMove(f, true),
	})
}

func doubles(fs ...cube.FaceName) []cube.Move {
	var out []cube.Move
	for _, f := range fs {
		out = append(out, both(faceDouble(f))...)
	}
	return out
}

func join(groups ...[]cube.Move) []cube.Move {
	var out []cube.Move
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
