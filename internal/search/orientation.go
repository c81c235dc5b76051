package search

import "github.com/declanmills/cube/internal/cube"

// MaxOrientationDepth bounds the whole-cube-rotation closure: most
// methods do not prescribe a holding orientation, so before the main
// search every reorientation of goal reachable in a few rotations is
// registered as an additional goal-side frontier node.
const MaxOrientationDepth = 3

var rotationAlphabet = []cube.Move{
	cube.RotationMove(cube.AxisX, true), cube.RotationMove(cube.AxisX, false),
	cube.RotationMove(cube.AxisY, true), cube.RotationMove(cube.AxisY, false),
	cube.RotationMove(cube.AxisZ, true), cube.RotationMove(cube.AxisZ, false),
}

// orientationClosure BFSes from goal over {x,x',y,y',z,z'} up to
// MaxOrientationDepth, returning the first-found Ops to reach each
// distinct reoriented cube. goal itself maps to an empty Ops.
func orientationClosure(goal cube.Cube) map[cube.Cube]cube.Ops {
	seen := map[cube.Cube]cube.Ops{goal: cube.NewOps()}
	type item struct {
		c   cube.Cube
		ops cube.Ops
	}
	queue := []item{{goal, cube.NewOps()}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.ops.Weight() >= MaxOrientationDepth {
			continue
		}
		last, hasLast := cur.ops.Last()
		lastRepeat, hasRepeat := cur.ops.LastRepeat()
		for _, m := range rotationAlphabet {
			if hasLast && last.Equal(m.Rev()) {
				continue
			}
			if hasRepeat && lastRepeat.Equal(m) {
				continue
			}
			next := cur.c
			next.Apply(m)
			nextOps := cur.ops.Push(m)
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = nextOps
			queue = append(queue, item{next, nextOps})
		}
	}
	return seen
}
