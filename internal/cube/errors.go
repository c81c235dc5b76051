package cube

import "errors"

// Sentinel error kinds, matched against with errors.Is by callers.
var (
	ErrInputSyntax      = errors.New("input syntax error")
	ErrInputSemantics   = errors.New("input semantics error")
	ErrColorBalance     = errors.New("color balance error")
	ErrNoMovesSpecified = errors.New("no moves specified")
)
