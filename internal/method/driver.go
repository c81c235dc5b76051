// Package method implements the layer-by-layer (CFOP) and block (Roux)
// method drivers: fixed pipelines of sub-goal + move-alphabet + depth
// tuples that repeatedly invoke the search engine, threading the
// evolving cube state through each stage.
package method

import (
	"fmt"

	"github.com/declanmills/cube/internal/cube"
	"github.com/declanmills/cube/internal/search"
)

// Stage is one step of a method pipeline: a masked sub-goal, the move
// alphabet allowed to reach it, and the depth cap for that search.
// Fallbacks holds further (alphabet, depth) attempts tried in order when
// the primary attempt's search comes back empty; the same sub-goal is
// reused for every fallback.
type Stage struct {
	Name      string
	SubGoal   cube.Cube
	Allowed   []cube.Move
	MaxDepth  int
	Fallbacks []Fallback
}

// Fallback is an alternative (alphabet, depth) pair tried after a
// stage's primary attempt fails.
type Fallback struct {
	Allowed  []cube.Move
	MaxDepth int
}

// ErrStageFailed wraps the name of the stage whose search (and every
// fallback) came back empty.
type ErrStageFailed struct {
	Stage string
}

func (e *ErrStageFailed) Error() string {
	return fmt.Sprintf("method: stage %q failed: search exhausted", e.Stage)
}

// Drive runs a fixed pipeline of stages against an initial cube, applying
// each stage's sub_input masking and accumulating the overall algorithm.
// A stage whose primary search comes back empty tries its Fallbacks in
// order before giving up.
func Drive(initial cube.Cube, stages []Stage, cfg search.Config) (cube.Ops, error) {
	algorithm := cube.NewOps()
	current := initial
	log := cfg.Logger()

	for i, stage := range stages {
		subInput := current.Mask(stage.SubGoal)
		seq := search.Search(subInput, stage.SubGoal, stage.Allowed, stage.MaxDepth, 1, cfg)
		if len(seq) == 0 {
			for _, fb := range stage.Fallbacks {
				seq = search.Search(subInput, stage.SubGoal, fb.Allowed, fb.MaxDepth, 1, cfg)
				if len(seq) > 0 {
					break
				}
			}
		}
		if len(seq) == 0 {
			return cube.Ops{}, &ErrStageFailed{Stage: stage.Name}
		}
		log.WithField("stage", stage.Name).Debugf("solved stage %d/%d in %d moves", i+1, len(stages), seq[0].Weight())
		algorithm = algorithm.Extend(seq[0])
		current = seq[0].Apply(current)
	}

	return algorithm.Expand().Shorten(), nil
}
