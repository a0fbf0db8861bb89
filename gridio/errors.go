package gridio

import "errors"

var (
	// ErrParse indicates malformed grid or scenario input.
	ErrParse = errors.New("gridio: malformed input")
	// ErrNoGrid indicates a scenario without a grid section.
	ErrNoGrid = errors.New("gridio: scenario has no grid")
)
