// Package input implements the external Input grammar: whitespace- and
// comment-tolerant Init/Goal/Scramble sections wrapping a CubeSnapshot or
// MoveSequence, as a small hand-rolled recursive-descent parser (matching
// the teacher's own hand-rolled move_parser.go idiom - no parser-combinator
// library appears anywhere in the retrieved pack).
package input

import (
	"fmt"
	"strings"

	"github.com/declanmills/cube/internal/cube"
)

// Parsed holds the two cubes recovered from an Input document: the
// initial state to search from, and the goal to search for.
type Parsed struct {
	Init cube.Cube
	Goal cube.Cube
}

// Parse consumes an entire Input document (Init/Goal/Scramble sections,
// in any order, `#`/`//`/`;` line comments). Exactly one of Init or
// Scramble must be present; if Goal is absent the canonical solved cube
// is used. named resolves composite move tokens inside a Scramble
// section; pass nil if composites should be rejected there.
func Parse(s string, named cube.CompositeLookup) (Parsed, error) {
	p := &parser{src: s, named: named}
	var haveGoal, haveInit bool
	goal := cube.Solved()
	var initCube cube.Cube
	var scramble cube.Ops
	haveScramble := false

	for {
		p.skipCommentableSpace()
		if p.atEOF() {
			break
		}
		kind, body, err := p.section()
		if err != nil {
			return Parsed{}, err
		}
		switch kind {
		case "Goal":
			c, err := cube.ParseSnapshot(body)
			if err != nil {
				return Parsed{}, err
			}
			goal = c
			haveGoal = true
		case "Init":
			c, err := cube.ParseSnapshot(body)
			if err != nil {
				return Parsed{}, err
			}
			initCube = c
			haveInit = true
		case "Scramble":
			ops, err := cube.ParseMoves(body, named)
			if err != nil {
				return Parsed{}, err
			}
			scramble = ops
			haveScramble = true
		}
	}
	_ = haveGoal

	if haveInit && haveScramble {
		return Parsed{}, fmt.Errorf("%w: at most one of Init/Scramble may be present", cube.ErrInputSemantics)
	}
	if !haveInit && !haveScramble {
		return Parsed{}, fmt.Errorf("%w: one of Init or Scramble must be present", cube.ErrInputSemantics)
	}

	if haveScramble {
		initCube = scramble.Apply(goal)
	}
	return Parsed{Init: initCube, Goal: goal}, nil
}

type parser struct {
	src   string
	pos   int
	named cube.CompositeLookup
}

func (p *parser) atEOF() bool { return p.pos >= len(p.src) }

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// skipCommentableSpace skips whitespace and `#`/`//`/`;` line comments,
// interleaved any number of times.
func (p *parser) skipCommentableSpace() {
	for {
		before := p.pos
		p.skipSpace()
		if p.pos < len(p.src) {
			rest := p.src[p.pos:]
			if strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "#") || strings.HasPrefix(rest, ";") {
				if nl := strings.IndexAny(rest, "\n\r"); nl >= 0 {
					p.pos += nl
				} else {
					p.pos = len(p.src)
				}
				continue
			}
		}
		if p.pos == before {
			return
		}
	}
}

// section parses one `Name { body }` block and returns the section name
// and the raw (unparsed) body text between the braces.
func (p *parser) section() (name, body string, err error) {
	start := p.pos
	for _, kw := range []string{"Init", "Goal", "Scramble"} {
		if strings.HasPrefix(p.src[p.pos:], kw) {
			p.pos += len(kw)
			p.skipCommentableSpace()
			if p.atEOF() || p.src[p.pos] != '{' {
				return "", "", p.syntaxErr(start)
			}
			p.pos++
			bodyStart := p.pos
			depth := 1
			for p.pos < len(p.src) && depth > 0 {
				switch p.src[p.pos] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth > 0 {
					p.pos++
				}
			}
			if depth != 0 {
				return "", "", p.syntaxErr(start)
			}
			// Line comments may also appear inside a section body; they
			// are cut before the body is handed to its own parser.
			lines := strings.Split(p.src[bodyStart:p.pos], "\n")
			for i, line := range lines {
				if j := strings.IndexAny(line, "#;"); j >= 0 {
					line = line[:j]
				}
				if j := strings.Index(line, "//"); j >= 0 {
					line = line[:j]
				}
				lines[i] = line
			}
			body = strings.Join(lines, "\n")
			p.pos++ // consume closing brace
			return kw, body, nil
		}
	}
	return "", "", p.syntaxErr(start)
}

func (p *parser) syntaxErr(at int) error {
	rest := p.src[at:]
	if len(rest) > 40 {
		rest = rest[:40] + "..."
	}
	return fmt.Errorf("%w: cannot consume input starting at %q", cube.ErrInputSyntax, rest)
}
