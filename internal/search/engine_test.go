package search

import (
	"testing"

	"github.com/declanmills/cube/internal/cube"
)

func TestSearchSingleMoveSolve(t *testing.T) {
	initial := cube.Solved()
	initial.Apply(cube.FaceMove(cube.FaceUp, true))
	initial.Apply(cube.FaceMove(cube.FaceUp, true))
	goal := cube.Solved()

	allowed := []cube.Move{cube.FaceMove(cube.FaceUp, true), cube.FaceMove(cube.FaceUp, false)}
	solutions := Search(initial, goal, allowed, 3, 1, Config{})

	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}
	sol := solutions[0]
	if sol.Weight() != 2 {
		t.Errorf("solution weight = %d, want 2", sol.Weight())
	}
	got := initial
	got = sol.Apply(got)
	if !got.Matches(goal) {
		t.Errorf("solution %v does not restore goal", sol)
	}
}

func TestSearchReturnsEmptyWhenUnreachable(t *testing.T) {
	initial := cube.Solved()
	initial.Apply(cube.FaceMove(cube.FaceRight, true))
	goal := cube.Solved()
	// Only U moves allowed: cannot undo an R turn.
	allowed := []cube.Move{cube.FaceMove(cube.FaceUp, true), cube.FaceMove(cube.FaceUp, false)}
	solutions := Search(initial, goal, allowed, 4, 1, Config{})
	if len(solutions) != 0 {
		t.Errorf("got %d solutions, want 0", len(solutions))
	}
}

func TestSearchSoundness(t *testing.T) {
	scramble := cube.NewOps(
		cube.FaceMove(cube.FaceRight, true),
		cube.FaceMove(cube.FaceUp, false),
		cube.FaceMove(cube.FaceRight, false),
	)
	initial := scramble.Apply(cube.Solved())
	goal := cube.Solved()
	allowed := []cube.Move{
		cube.FaceMove(cube.FaceUp, true), cube.FaceMove(cube.FaceUp, false),
		cube.FaceMove(cube.FaceRight, true), cube.FaceMove(cube.FaceRight, false),
	}
	solutions := Search(initial, goal, allowed, 6, 3, Config{})
	if len(solutions) == 0 {
		t.Fatalf("expected at least one solution")
	}
	for _, sol := range solutions {
		if sol.Weight() > 6 {
			t.Errorf("solution weight %d exceeds max depth 6", sol.Weight())
		}
		result := sol.Apply(initial)
		if !result.Matches(goal) {
			t.Errorf("solution %v does not reach goal", sol)
		}
	}
}

func TestSearchAlreadySolvedReturnsEmptySequence(t *testing.T) {
	c := cube.Solved()
	solutions := Search(c, c, []cube.Move{cube.FaceMove(cube.FaceUp, true)}, 5, 1, Config{})
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}
	if solutions[0].Len() != 0 {
		t.Errorf("expected an empty solution for an already-solved goal, got %v", solutions[0])
	}
}

func TestSearchWildcardGoalMatchesPartialState(t *testing.T) {
	initial := cube.Solved()
	initial.Apply(cube.FaceMove(cube.FaceUp, true))

	goal := cube.Solved()
	// Only care about the Up face; mask everything else to Wildcard.
	for _, face := range []*cube.Face{&goal.Front, &goal.Back, &goal.Down, &goal.Left, &goal.Right} {
		*face = cube.NewFace(cube.Wildcard)
	}

	allowed := []cube.Move{cube.FaceMove(cube.FaceUp, true), cube.FaceMove(cube.FaceUp, false)}
	solutions := Search(initial, goal, allowed, 3, 1, Config{})
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}
	result := solutions[0].Apply(initial)
	if !result.Matches(goal) {
		t.Errorf("solution does not satisfy wildcard goal")
	}
}
