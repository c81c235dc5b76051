package method

import "github.com/declanmills/cube/internal/cube"

// LayerByLayer builds the CFOP stage pipeline (cross, F2L x4, OLL, PLL),
// grounded on solver/cfop.rs's stage order, sub-goal literals, and
// alphabets. db resolves the named PLL composites the later fallback
// alphabets reference.
func LayerByLayer(db *cube.AlgorithmDB) []Stage {
	return []Stage{
		{
			Name: "cross",
			SubGoal: mustGoal(
				". . ." +
					". Y ." +
					". . ." +
					". . . . . . . . . . . ." +
					". R . . G . . O . . B ." +
					". R . . G . . O . . B ." +
					". W ." +
					"W W W" +
					". W .",
			),
			Allowed:  faces(cube.FaceFront, cube.FaceBack, cube.FaceUp, cube.FaceDown, cube.FaceRight, cube.FaceLeft),
			MaxDepth: 5,
		},
		{
			Name: "f2l-1",
			SubGoal: mustGoal(
				". . ." +
					". Y ." +
					". . ." +
					". . . . . . . . . . . ." +
					"R R . . G . . O . . B B" +
					"R R . . G . . O . . B B" +
					"W W ." +
					"W W W" +
					". W .",
			),
			Allowed:  faces(cube.FaceFront, cube.FaceBack, cube.FaceUp, cube.FaceRight, cube.FaceLeft),
			MaxDepth: 6,
		},
		{
			Name: "f2l-2",
			SubGoal: mustGoal(
				". . ." +
					". Y ." +
					". . ." +
					". . . . . . . . . . . ." +
					"R R . . G . . O O B B B" +
					"R R . . G . . O O B B B" +
					"W W ." +
					"W W W" +
					"W W .",
			),
			Allowed:  faces(cube.FaceBack, cube.FaceUp, cube.FaceRight, cube.FaceLeft),
			MaxDepth: 8,
		},
		{
			Name: "f2l-3-4",
			SubGoal: mustGoal(
				". . ." +
					". Y ." +
					". . ." +
					". . . . . . . . . . . ." +
					"R R R G G G O O O B B B" +
					"R R R G G G O O O B B B" +
					"W W W" +
					"W W W" +
					"W W W",
			),
			Allowed:  faces(cube.FaceFront, cube.FaceBack, cube.FaceUp, cube.FaceRight),
			MaxDepth: 6,
		},
		{
			Name: "oll",
			SubGoal: mustGoal(
				"Y Y Y" +
					"Y Y Y" +
					"Y Y Y" +
					". . . . . . . . . . . ." +
					"R R R G G G O O O B B B" +
					"R R R G G G O O O B B B" +
					"W W W" +
					"W W W" +
					"W W W",
			),
			Allowed:  faces(cube.FaceRight, cube.FaceUp),
			MaxDepth: 8,
			Fallbacks: []Fallback{
				{Allowed: faces(cube.FaceRight, cube.FaceUp, cube.FaceFront), MaxDepth: 8},
				{Allowed: join(faces(cube.FaceFront, cube.FaceUp, cube.FaceRight), both(cube.WideMove(cube.FaceRight, true))), MaxDepth: 8},
			},
		},
		{
			Name: "pll",
			SubGoal: mustGoal(
				"Y Y Y" +
					"Y Y Y" +
					"Y Y Y" +
					"R R R G G G O O O B B B" +
					"R R R G G G O O O B B B" +
					"R R R G G G O O O B B B" +
					"W W W" +
					"W W W" +
					"W W W",
			),
			Allowed:  join(faces(cube.FaceUp), slices(cube.Middle)),
			MaxDepth: 7,
			Fallbacks: []Fallback{
				{
					Allowed: join(
						faces(cube.FaceUp, cube.FaceFront, cube.FaceRight, cube.FaceDown),
						[]cube.Move{composite(db, "Jb")},
						composites(db, "Sexy", "SledgeHammer"),
					),
					MaxDepth: 5,
				},
				{
					Allowed:  join(faces(cube.FaceUp), composites(db, "Sexy", "SledgeHammer")),
					MaxDepth: 6,
				},
			},
		},
	}
}
