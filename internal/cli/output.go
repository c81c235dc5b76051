package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/declanmills/cube/internal/cube"
)

// solution is one {algorithm, length} entry of the JSON output contract.
type solution struct {
	Algorithm string `json:"algorithm"`
	Length    int    `json:"length"`
}

// result is the top-level JSON object every solving command prints: ok
// plus either a solutions list (generic search, -n may be >1) or a
// single solution (method drivers, which only ever produce one).
type result struct {
	OK        bool       `json:"ok"`
	Error     string     `json:"error,omitempty"`
	Solutions []solution `json:"solutions,omitempty"`
	Solution  *solution  `json:"solution,omitempty"`
}

func solutionOf(ops cube.Ops) solution {
	return solution{Algorithm: ops.String(), Length: ops.Weight()}
}

func printResult(r result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(r)
}

// printError prints a failure result and exits 0: per spec.md's External
// Interfaces, the exit code is always 0 and the JSON ok field carries
// success/failure.
func printError(err error) {
	printResult(result{OK: false, Error: err.Error()})
}

// printSolutions prints a successful generic-search result.
func printSolutions(all []cube.Ops) {
	sols := make([]solution, len(all))
	for i, o := range all {
		sols[i] = solutionOf(o)
	}
	printResult(result{OK: true, Solutions: sols})
}

// printSolution prints a successful method-driver result.
func printSolution(ops cube.Ops) {
	s := solutionOf(ops)
	printResult(result{OK: true, Solution: &s})
}

var errSearchExhausted = fmt.Errorf("search exhausted: no solution found within the given depth")
