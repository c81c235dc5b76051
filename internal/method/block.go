package method

import "github.com/declanmills/cube/internal/cube"

// Block builds the Roux stage pipeline (first block, second block, CMLL,
// LSE), grounded on solver/roux.rs's stage order, sub-goal literals, and
// alphabets. Its sub-goals use Other (".") exactly where roux.rs uses its
// don't-care marker; every stage is masked with cube.Cube.Mask, the same
// mechanism LayerByLayer's stages use.
func Block() []Stage {
	return []Stage{
		{
			Name: "fb-1",
			SubGoal: mustGoal(
				". . ." +
					". . ." +
					". . ." +
					". . . . . . . . . . . ." +
					"R . . . . . . . . . B B" +
					"R . . . . . . . . . B B" +
					"W . ." +
					"W . ." +
					". . .",
			),
			Allowed:  faces(cube.FaceFront, cube.FaceBack, cube.FaceUp, cube.FaceDown, cube.FaceRight, cube.FaceLeft),
			MaxDepth: 8,
		},
		{
			Name: "fb-2",
			SubGoal: mustGoal(
				". . ." +
					". . ." +
					". . ." +
					". . . . . . . . . . . ." +
					"R . . . . . . . O B B B" +
					"R . . . . . . . O B B B" +
					"W . ." +
					"W . ." +
					"W . .",
			),
			Allowed:  join(faces(cube.FaceBack, cube.FaceUp, cube.FaceRight), doubles(cube.FaceRight)),
			MaxDepth: 8,
		},
		{
			Name: "sb-1",
			SubGoal: mustGoal(
				". . ." +
					". . ." +
					". . ." +
					". . . . . . . . . . . ." +
					"R . R G G . . . O B B B" +
					"R . R G G . . . O B B B" +
					"W . W" +
					"W . W" +
					"W . .",
			),
			Allowed:  join(faces(cube.FaceUp, cube.FaceRight), doubles(cube.FaceRight), slices(cube.Middle)),
			MaxDepth: 8,
		},
		{
			Name: "sb-2",
			SubGoal: mustGoal(
				". . ." +
					". . ." +
					". . ." +
					". . . . . . . . . . . ." +
					"R . R G G G O . O B B B" +
					"R . R G G G O . O B B B" +
					"W . W" +
					"W . W" +
					"W . W",
			),
			Allowed:  join(faces(cube.FaceUp, cube.FaceRight), doubles(cube.FaceRight), slices(cube.Middle)),
			MaxDepth: 8,
		},
		{
			Name: "cmll-1",
			SubGoal: mustGoal(
				"Y . Y" +
					". . ." +
					"Y . Y" +
					". . . . . . . . . . . ." +
					"R . R G G G O . O B B B" +
					"R . R G G G O . O B B B" +
					"W . W" +
					"W . W" +
					"W . W",
			),
			Allowed:  faces(cube.FaceFront, cube.FaceUp, cube.FaceRight),
			MaxDepth: 8,
		},
		{
			Name: "cmll-2",
			SubGoal: mustGoal(
				"Y . Y" +
					". . ." +
					"Y . Y" +
					"R . R G . G O . O B . B" +
					"R . R G G G O . O B B B" +
					"R . R G G G O . O B B B" +
					"W . W" +
					"W . W" +
					"W . W",
			),
			Allowed:  faces(cube.FaceFront, cube.FaceUp, cube.FaceRight),
			MaxDepth: 8,
			Fallbacks: []Fallback{
				{Allowed: join(faces(cube.FaceFront, cube.FaceUp, cube.FaceRight), doubles(cube.FaceRight)), MaxDepth: 8},
			},
		},
		{
			Name: "lse-ul-ur",
			SubGoal: mustGoal(
				"Y . Y" +
					"Y . Y" +
					"Y . Y" +
					"R . R G G G O . O B B B" +
					"R . R G G G O . O B B B" +
					"R . R G G G O . O B B B" +
					"W . W" +
					"W . W" +
					"W . W",
			),
			Allowed:  join(faces(cube.FaceUp), slices(cube.Middle)),
			MaxDepth: 12,
		},
		{
			Name: "lse-finish",
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
			MaxDepth: 12,
		},
	}
}
