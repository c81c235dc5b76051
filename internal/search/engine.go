package search

import (
	"container/heap"

	"github.com/declanmills/cube/internal/cube"
)

// Search returns up to numSolutions move sequences, each of weight <=
// maxDepth, whose application to initial yields a cube matching goal.
// Results are in discovery order (the first is generally the shortest).
// Returns an empty slice if none are found within the limits - this is
// not an error.
func Search(initial, goal cube.Cube, allowed []cube.Move, maxDepth, numSolutions int, cfg Config) []cube.Ops {
	log := cfg.logger()
	exact := !initial.HasWildcard() && !goal.HasWildcard()
	maxMapSize := cfg.maxMapSize()

	fromStartMap := map[cube.Cube]cube.Ops{}
	fromGoalMap := map[cube.Cube]cube.Ops{}

	var pq nodeHeap
	order := 0
	push := func(c cube.Cube, ops cube.Ops, fromStart bool) {
		heap.Push(&pq, node{c: c, ops: ops, fromStart: fromStart, order: order})
		order++
	}

	push(initial, cube.NewOps(), true)
	for oc, ops := range orientationClosure(goal) {
		push(oc, ops, false)
	}

	var solutions []cube.Ops
	seenSolutions := map[string]bool{}
	addSolution := func(ops cube.Ops) {
		final := ops.Expand().Shorten()
		key := final.String()
		if seenSolutions[key] {
			return
		}
		seenSolutions[key] = true
		solutions = append(solutions, final)
		if cfg.Verbose {
			log.WithField("weight", final.Weight()).Debugf("solution: %s", final.String())
		}
	}

	for pq.Len() > 0 && len(solutions) < numSolutions {
		n := heap.Pop(&pq).(node)

		ownMap := fromGoalMap
		oppMap := fromStartMap
		if n.fromStart {
			ownMap, oppMap = fromStartMap, fromGoalMap
		}

		if existing, ok := ownMap[n.c]; ok && existing.Weight() <= n.ops.Weight() {
			continue
		}
		ownMap[n.c] = n.ops

		if exact {
			if oppOps, ok := oppMap[n.c]; ok {
				addSolution(joinOps(n.fromStart, n.ops, oppOps))
			}
		} else {
			for oc, oppOps := range oppMap {
				if n.c.Matches(oc) {
					addSolution(joinOps(n.fromStart, n.ops, oppOps))
					break
				}
			}
		}

		if len(solutions) >= numSolutions {
			break
		}
		if n.ops.Weight() >= maxDepth {
			continue
		}
		if !exact && len(fromGoalMap) > maxMapSize {
			continue
		}

		last, hasLast := n.ops.Last()
		lastRepeat, hasRepeat := n.ops.LastRepeat()
		for _, m := range allowed {
			if hasLast && last.Equal(m.Rev()) {
				continue
			}
			if hasLast && last.Equal(m) && (!m.Clockwise) == n.fromStart {
				continue
			}
			if hasRepeat && lastRepeat.Equal(m) {
				continue
			}
			if m.Kind == cube.KindComposite && compositeAlreadyUsed(n.ops, m.Name) {
				continue
			}
			child := n.c
			child.Apply(m)
			childOps := n.ops.Push(m)
			push(child, childOps, n.fromStart)
		}
	}

	return solutions
}

// joinOps concatenates the start-side path with the inverse of the
// goal-side path, regardless of which side just produced the join.
func joinOps(fromStart bool, ops, oppOps cube.Ops) cube.Ops {
	if fromStart {
		return ops.Extend(oppOps.Reverse())
	}
	return oppOps.Extend(ops.Reverse())
}

func compositeAlreadyUsed(ops cube.Ops, name string) bool {
	for _, m := range ops.Moves() {
		if m.Kind == cube.KindComposite && m.Name == name {
			return true
		}
	}
	return false
}
